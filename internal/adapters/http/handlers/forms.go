package handlers

import (
	"strconv"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"
)

func text(name, label, value, placeholder string) views.Field {
	return views.Field{Name: name, Label: label, Type: "text", Value: value, Placeholder: placeholder, Required: true}
}

func studentForm(action, submit string, s *domain.Student, full bool) *views.Form {
	if s == nil {
		s = &domain.Student{Status: domain.StudentActive}
	}
	email := text("email", "Email", s.Email, "rahul@example.com")
	email.Type = "email"
	phone := text("phone", "Phone", s.Phone, "9876543210")
	phone.Type = "tel"

	fields := []views.Field{
		text("first_name", "First Name", s.FirstName, "Rahul"),
		text("last_name", "Last Name", s.LastName, "Sharma"),
		email,
		phone,
	}
	if full {
		fields = append(fields,
			views.Field{Name: "dob", Label: "Date of Birth", Type: "date", Value: s.DOB, Required: true},
			views.Field{Name: "gender", Label: "Gender", Type: "select", Required: true,
				Options: views.Options(s.Gender, "", "Select Gender", "Male", "Male", "Female", "Female", "Other", "Other")},
			views.Field{Name: "address", Label: "Address", Type: "textarea", Value: s.Address, Required: true},
		)
	}
	fields = append(fields, views.Field{Name: "status", Label: "Status", Type: "select", Required: true,
		Options: views.Options(s.Status, domain.StudentActive, "Active", domain.StudentInactive, "Inactive")})

	return &views.Form{Action: action, Submit: submit, Cancel: "/students", Fields: fields}
}

func courseForm(action, submit string, course *domain.Course) *views.Form {
	if course == nil {
		course = &domain.Course{}
	}
	credits := text("credits", "Credits", string(course.Credits), "4")
	credits.Type = "number"
	credits.Min = "0"
	return &views.Form{
		Action: action,
		Submit: submit,
		Cancel: "/courses",
		Fields: []views.Field{
			text("name", "Course Name", course.Name, "Computer Science"),
			credits,
			{Name: "description", Label: "Description", Type: "textarea", Value: course.Description, Required: true},
		},
	}
}

func studentOptions(students []domain.Student, selected, prompt string) []views.Option {
	opts := []views.Option{{Value: "", Label: prompt}}
	for _, s := range students {
		id := s.StudentID.String()
		opts = append(opts, views.Option{Value: id, Label: s.FullName() + " (" + s.Email + ")", Selected: id == selected})
	}
	return opts
}

func courseOptions(courses []domain.Course, selected string) []views.Option {
	opts := []views.Option{{Value: "", Label: "-- Choose Course --"}}
	for _, c := range courses {
		id := c.CourseID.String()
		opts = append(opts, views.Option{Value: id, Label: c.Name, Selected: id == selected})
	}
	return opts
}

func bookOptions(books []domain.Book, selected string) []views.Option {
	opts := []views.Option{{Value: "", Label: "Select Book"}}
	for _, b := range books {
		id := b.ID.String()
		label := b.Title
		if b.BookClass != "" {
			label += " (Class " + b.BookClass + ")"
		}
		opts = append(opts, views.Option{Value: id, Label: label, Selected: id == selected})
	}
	return opts
}

func pickers(ref *services.ReferenceData, student, course string) []views.Field {
	return []views.Field{
		{Name: "student_id", Label: "Select Student", Type: "select", Required: true,
			Options: studentOptions(ref.Students, student, "-- Choose Student --")},
		{Name: "course_id", Label: "Select Course", Type: "select", Required: true,
			Options: courseOptions(ref.Courses, course)},
	}
}

func enrollmentForm(ref *services.ReferenceData, student, today string) *views.Form {
	fields := pickers(ref, student, "")
	fields = append(fields,
		views.Field{Name: "enrolled_on", Label: "Enrollment Date", Type: "date", Value: today, Required: true},
		views.Field{Name: "status", Label: "Status", Type: "select", Required: true,
			Options: views.Options("active", "active", "Active", "completed", "Completed", "dropped", "Dropped")},
	)
	return &views.Form{Action: "/enrollments", Submit: "Enroll Student", Cancel: "/enrollments", Fields: fields}
}

func attendanceForm(ref *services.ReferenceData, student, today string) *views.Form {
	fields := pickers(ref, student, "")
	fields = append(fields,
		views.Field{Name: "date", Label: "Date", Type: "date", Value: today, Required: true},
		views.Field{Name: "status", Label: "Status", Type: "select", Required: true,
			Options: views.Options(domain.AttendancePresent, domain.AttendancePresent, "Present", domain.AttendanceAbsent, "Absent")},
		views.Field{Name: "remarks", Label: "Remarks (Optional)", Type: "text", Placeholder: "e.g. Late by 10 mins"},
	)
	return &views.Form{Action: "/attendance", Submit: "Save Attendance", Cancel: "/attendance", Fields: fields}
}

func marksForm(ref *services.ReferenceData, student string) *views.Form {
	pairs := make([]string, 0, len(services.ExamTypes)*2)
	for _, t := range services.ExamTypes {
		label := t
		if t == "Final" {
			label = "Final Exam"
		}
		pairs = append(pairs, t, label)
	}

	fields := pickers(ref, student, "")
	fields = append(fields,
		views.Field{Name: "exam_type", Label: "Exam Type", Type: "select", Required: true, Options: views.Options("Final", pairs...)},
		views.Field{Name: "score", Label: "Score Obtained", Type: "number", Placeholder: "e.g. 85", Min: "0", Step: "any", Required: true},
		views.Field{Name: "max_score", Label: "Max Score", Type: "number", Value: "100", Placeholder: "e.g. 100", Min: "1", Step: "any", Required: true},
	)
	return &views.Form{Action: "/marks", Submit: "Save Marks", Cancel: "/marks", Fields: fields}
}

func assignForm(ref *services.ReferenceData) *views.Form {
	return &views.Form{
		Action: "/library/add",
		Submit: "Assign Book",
		Cancel: "/library",
		Fields: []views.Field{
			{Name: "bookId", Label: "Book", Type: "select", Required: true, Options: bookOptions(ref.Books, "")},
			{Name: "studentId", Label: "Student", Type: "select", Required: true, Options: studentOptions(ref.Students, "", "Select Student")},
		},
	}
}

func recordForm(id string, ref *services.ReferenceData, rec *domain.LibraryRecord) *views.Form {
	var student, book string
	status := domain.RecordIssued
	if rec != nil {
		if rec.Student != nil {
			student = rec.Student.StudentID.String()
		}
		if rec.Book != nil {
			book = rec.Book.ID.String()
		}
		if rec.Status != "" {
			status = rec.Status
		}
	}
	return &views.Form{
		Action: "/library/edit/" + id,
		Submit: "Update Record",
		Cancel: "/library",
		Fields: []views.Field{
			{Name: "studentId", Label: "Student", Type: "select", Required: true, Options: studentOptions(ref.Students, student, "Select Student")},
			{Name: "bookId", Label: "Book", Type: "select", Required: true, Options: bookOptions(ref.Books, book)},
			{Name: "status", Label: "Status", Type: "select", Required: true,
				Options: views.Options(status, domain.RecordIssued, domain.RecordIssued, domain.RecordReturned, domain.RecordReturned)},
		},
	}
}

func bookForm() *views.Form {
	qty := views.Field{Name: "total_quantity", Label: "Total Quantity", Type: "number", Value: strconv.Itoa(1), Min: "1", Required: true}
	return &views.Form{
		Action: "/library/books/add",
		Submit: "Add Book",
		Cancel: "/library/books",
		Fields: []views.Field{
			text("title", "Title", "", "Book title"),
			text("bookClass", "Class", "", "e.g. 10"),
			qty,
		},
	}
}
