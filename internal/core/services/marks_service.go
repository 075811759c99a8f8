package services

import (
	"context"
	"encoding/json"
	"net/url"

	"sms-admin/internal/core/domain"
)

// Exam types offered by the marks form
var ExamTypes = []string{"Final", "Midterm", "Quiz", "Assignment"}

// MarksService records exam results
type MarksService struct {
	api Requester
}

// NewMarksService creates a new marks service
func NewMarksService(api Requester) *MarksService {
	return &MarksService{api: api}
}

// MarksInput is the add-marks form. Scores go to the backend as numbers.
// Score is nil when the field was left blank.
type MarksInput struct {
	StudentID string   `json:"student_id" form:"student_id" validate:"required"`
	CourseID  string   `json:"course_id" form:"course_id" validate:"required"`
	ExamType  string   `json:"exam_type" form:"exam_type" validate:"required,oneof=Final Midterm Quiz Assignment"`
	Score     *float64 `json:"score" form:"score" validate:"required,gte=0"`
	MaxScore  float64  `json:"max_score" form:"max_score" validate:"gt=0"`
}

// Create records a result
func (s *MarksService) Create(ctx context.Context, input *MarksInput) error {
	if err := check(input); err != nil {
		return err
	}
	if *input.Score > input.MaxScore {
		return NewValidationError("score", "score must be less than or equal to max_score")
	}
	return s.api.Post(ctx, "/marks", input, nil)
}

// ListByStudent returns the results of one student
func (s *MarksService) ListByStudent(ctx context.Context, studentID string) ([]domain.MarkRecord, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/marks/student/"+url.PathEscape(studentID), nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.MarkRecord](raw)
}
