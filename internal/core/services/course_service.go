package services

import (
	"context"
	"encoding/json"
	"net/url"

	"sms-admin/internal/core/domain"
	"sms-admin/internal/pkg/pagination"
)

// CourseService manages courses on the backend
type CourseService struct {
	api Requester
}

// NewCourseService creates a new course service
func NewCourseService(api Requester) *CourseService {
	return &CourseService{api: api}
}

// CourseInput is used for both add and edit
type CourseInput struct {
	Name        string `json:"name" form:"name" validate:"notblank"`
	Description string `json:"description" form:"description" validate:"notblank"`
	Credits     string `json:"credits" form:"credits" validate:"required,numeric"`
}

// List searches courses a page at a time
func (s *CourseService) List(ctx context.Context, q pagination.Query) (*domain.Page[domain.Course], error) {
	q = q.Normalize()
	var page domain.Page[domain.Course]
	if err := s.api.Get(ctx, "/courses", q.Values(), &page); err != nil {
		return nil, err
	}
	fillMeta(&page.Meta, len(page.Data), q)
	return &page, nil
}

// Options returns up to 100 courses for select boxes
func (s *CourseService) Options(ctx context.Context) ([]domain.Course, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/courses", url.Values{"limit": {"100"}}, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.Course](raw)
}

// Get fetches one course
func (s *CourseService) Get(ctx context.Context, id string) (*domain.Course, error) {
	var course domain.Course
	if err := s.api.Get(ctx, "/courses/"+url.PathEscape(id), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create validates and posts a new course
func (s *CourseService) Create(ctx context.Context, input *CourseInput) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Post(ctx, "/courses", input, nil)
}

// Update validates and patches a course
func (s *CourseService) Update(ctx context.Context, id string, input *CourseInput) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Patch(ctx, "/courses/"+url.PathEscape(id), input, nil)
}

// Delete removes a course
func (s *CourseService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/courses/"+url.PathEscape(id), nil)
}
