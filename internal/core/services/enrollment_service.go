package services

import (
	"context"
	"encoding/json"
	"net/url"

	"sms-admin/internal/core/domain"
)

// EnrollmentService links students to courses
type EnrollmentService struct {
	api Requester
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(api Requester) *EnrollmentService {
	return &EnrollmentService{api: api}
}

// EnrollmentInput is the enroll-student form
type EnrollmentInput struct {
	StudentID  string `json:"student_id" form:"student_id" validate:"required"`
	CourseID   string `json:"course_id" form:"course_id" validate:"required"`
	EnrolledOn string `json:"enrolled_on" form:"enrolled_on" validate:"required,datetime=2006-01-02"`
	Status     string `json:"status" form:"status" validate:"required,oneof=active completed dropped"`
}

// Create enrolls a student
func (s *EnrollmentService) Create(ctx context.Context, input *EnrollmentInput) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Post(ctx, "/enrollments", input, nil)
}

// ListByStudent returns the enrollments of one student
func (s *EnrollmentService) ListByStudent(ctx context.Context, studentID string) ([]domain.Enrollment, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/enrollments/students/"+url.PathEscape(studentID), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.Enrollment](raw)
}

// Delete unenrolls
func (s *EnrollmentService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/enrollments/"+url.PathEscape(id), nil)
}
