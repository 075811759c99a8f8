package services

import (
	"context"
	"encoding/json"
	"net/url"

	"sms-admin/internal/core/domain"
)

// AttendanceService records attendance
type AttendanceService struct {
	api Requester
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(api Requester) *AttendanceService {
	return &AttendanceService{api: api}
}

// AttendanceInput is the mark-attendance form
type AttendanceInput struct {
	StudentID string `json:"student_id" form:"student_id" validate:"required"`
	CourseID  string `json:"course_id" form:"course_id" validate:"required"`
	Date      string `json:"date" form:"date" validate:"required,datetime=2006-01-02"`
	Status    string `json:"status" form:"status" validate:"required,oneof=present absent"`
	Remarks   string `json:"remarks" form:"remarks"`
}

// Create marks attendance
func (s *AttendanceService) Create(ctx context.Context, input *AttendanceInput) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Post(ctx, "/attendance", input, nil)
}

// ListByStudent returns the attendance history of one student
func (s *AttendanceService) ListByStudent(ctx context.Context, studentID string) ([]domain.AttendanceRecord, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/attendance/student/"+url.PathEscape(studentID), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.AttendanceRecord](raw)
}
