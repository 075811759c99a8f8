package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID is an opaque backend identifier. The backend may send it as a JSON
// string or number; it is always handled as a string here.
type ID string

// UnmarshalJSON accepts strings, numbers and null
func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

// String returns the identifier as sent to the backend
func (id ID) String() string { return string(id) }

// Text is a free-form field that some backend versions encode as a number
// (course credits for example).
type Text string

// UnmarshalJSON accepts strings, numbers and null
func (t *Text) UnmarshalJSON(data []byte) error {
	s, err := flexString(data)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

func flexString(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

// Student status values
const (
	StudentActive   = "active"
	StudentInactive = "inactive"
)

// Student mirrors the backend student record
type Student struct {
	StudentID ID     `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	DOB       string `json:"dob,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Address   string `json:"address,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at,omitempty"`
}

// FullName joins first and last name
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Course mirrors the backend course record
type Course struct {
	CourseID    ID     `json:"course_id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Credits     Text   `json:"credits"`
}

// CourseRef is the embedded course sub-object on enrollment, attendance and mark records
type CourseRef struct {
	Name        string `json:"name"`
	Credits     Text   `json:"credits,omitempty"`
	Description string `json:"description,omitempty"`
}

// Enrollment links a student to a course
type Enrollment struct {
	EnrollmentID ID         `json:"enrollment_id"`
	Status       string     `json:"status"`
	EnrolledOn   string     `json:"enrolled_on"`
	Course       *CourseRef `json:"course"`
}

// Attendance status values
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// AttendanceRecord is a single attendance mark for a student in a course
type AttendanceRecord struct {
	AttendanceID ID         `json:"attendance_id"`
	Date         string     `json:"date"`
	Status       string     `json:"status"`
	Remarks      string     `json:"remarks"`
	Course       *CourseRef `json:"course"`
}

// MarkRecord is an exam score for a student in a course
type MarkRecord struct {
	MarksID  ID         `json:"marks_id"`
	ExamType string     `json:"exam_type"`
	Score    float64    `json:"score"`
	MaxScore float64    `json:"max_score"`
	Course   *CourseRef `json:"course"`
}

// Percent returns the score as a percentage of the max score
func (m MarkRecord) Percent() float64 {
	if m.MaxScore <= 0 {
		return 0
	}
	return m.Score / m.MaxScore * 100
}

// Book is a library title with stock counts
type Book struct {
	ID                ID     `json:"id"`
	Title             string `json:"title"`
	BookClass         string `json:"bookClass"`
	TotalQuantity     int    `json:"total_quantity"`
	AvailableQuantity int    `json:"available_quantity"`
	Status            string `json:"status"`
}

// Library record status values
const (
	RecordIssued   = "ISSUED"
	RecordReturned = "RETURNED"
)

// StudentRef is the embedded student sub-object on library records
type StudentRef struct {
	StudentID ID     `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// FullName joins first and last name
func (s StudentRef) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// BookRef is the embedded book sub-object on library records
type BookRef struct {
	ID    ID     `json:"id"`
	Title string `json:"title"`
}

// LibraryRecord is a book issued to a student
type LibraryRecord struct {
	ID         ID          `json:"id"`
	IssuedAt   string      `json:"issuedAt"`
	ReturnDate string      `json:"return_date,omitempty"`
	Status     string      `json:"status"`
	Student    *StudentRef `json:"student"`
	Book       *BookRef    `json:"book"`
}

// PageMeta is the pagination block of a backend list response
type PageMeta struct {
	Total    int `json:"total"`
	Page     int `json:"page"`
	Limit    int `json:"limit"`
	LastPage int `json:"last_page"`
}

// Page is a paginated backend list response
type Page[T any] struct {
	Data []T      `json:"data"`
	Meta PageMeta `json:"meta"`
}
