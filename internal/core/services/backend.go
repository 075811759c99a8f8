package services

// Backend bundles the typed services over one Requester
type Backend struct {
	Auth        *AuthService
	Students    *StudentService
	Courses     *CourseService
	Enrollments *EnrollmentService
	Attendance  *AttendanceService
	Marks       *MarksService
	Library     *LibraryService
}

// NewBackend wires every service to api
func NewBackend(api Requester) *Backend {
	return &Backend{
		Auth:        NewAuthService(api),
		Students:    NewStudentService(api),
		Courses:     NewCourseService(api),
		Enrollments: NewEnrollmentService(api),
		Attendance:  NewAttendanceService(api),
		Marks:       NewMarksService(api),
		Library:     NewLibraryService(api),
	}
}
