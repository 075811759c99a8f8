package services

import (
	"context"
	"encoding/json"
	"net/url"

	"sms-admin/internal/core/domain"
	"sms-admin/internal/pkg/pagination"
)

// StudentService manages student records on the backend
type StudentService struct {
	api Requester
}

// NewStudentService creates a new student service
func NewStudentService(api Requester) *StudentService {
	return &StudentService{api: api}
}

// StudentInput is the add-student form. Every field is sent as entered.
type StudentInput struct {
	FirstName string `json:"first_name" form:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" form:"last_name" validate:"notblank"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone" validate:"notblank"`
	DOB       string `json:"dob" form:"dob" validate:"required,datetime=2006-01-02"`
	Gender    string `json:"gender" form:"gender" validate:"required,oneof=Male Female Other"`
	Address   string `json:"address" form:"address" validate:"notblank"`
	Status    string `json:"status" form:"status" validate:"required,oneof=active inactive"`
}

// StudentUpdate is the edit-student form
type StudentUpdate struct {
	FirstName string `json:"first_name" form:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" form:"last_name" validate:"notblank"`
	Email     string `json:"email" form:"email" validate:"required,email"`
	Phone     string `json:"phone" form:"phone"`
	Status    string `json:"status" form:"status" validate:"required,oneof=active inactive"`
}

// List searches students a page at a time
func (s *StudentService) List(ctx context.Context, q pagination.Query) (*domain.Page[domain.Student], error) {
	q = q.Normalize()
	var page domain.Page[domain.Student]
	if err := s.api.Get(ctx, "/students", q.Values(), &page); err != nil {
		return nil, err
	}
	fillMeta(&page.Meta, len(page.Data), q)
	return &page, nil
}

// Options returns up to 100 students for select boxes
func (s *StudentService) Options(ctx context.Context) ([]domain.Student, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/students", url.Values{"limit": {"100"}}, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.Student](raw)
}

// Get fetches one student
func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	var student domain.Student
	if err := s.api.Get(ctx, "/students/"+url.PathEscape(id), nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// Create validates and posts a new student
func (s *StudentService) Create(ctx context.Context, input *StudentInput) (*domain.Student, error) {
	if err := check(input); err != nil {
		return nil, err
	}
	var created domain.Student
	if err := s.api.Post(ctx, "/students", input, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update validates and patches a student
func (s *StudentService) Update(ctx context.Context, id string, input *StudentUpdate) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Patch(ctx, "/students/"+url.PathEscape(id), input, nil)
}

// Delete removes a student
func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/students/"+url.PathEscape(id), nil)
}

// fillMeta completes a meta block the backend left partly empty
func fillMeta(m *domain.PageMeta, rows int, q pagination.Query) {
	if m.Limit == 0 {
		m.Limit = q.Limit
	}
	if m.Page == 0 {
		m.Page = q.Page
	}
	if m.Total == 0 && rows > 0 {
		m.Total = rows
	}
	if m.LastPage == 0 {
		m.LastPage = pagination.NewMeta(m.Total, m.Page, m.Limit).LastPage
	}
}
