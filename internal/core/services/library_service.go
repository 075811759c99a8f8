package services

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	"sms-admin/internal/core/domain"
)

// LibraryService manages books and issue records
type LibraryService struct {
	api Requester
}

// NewLibraryService creates a new library service
func NewLibraryService(api Requester) *LibraryService {
	return &LibraryService{api: api}
}

// BookInput is the add-book form
type BookInput struct {
	Title         string `json:"title" form:"title" validate:"notblank"`
	BookClass     string `json:"bookClass" form:"bookClass" validate:"notblank"`
	TotalQuantity int    `json:"total_quantity" form:"total_quantity" validate:"gte=1"`
}

// AssignInput issues a book to a student
type AssignInput struct {
	BookID    string `json:"bookId" form:"bookId"`
	StudentID string `json:"studentId" form:"studentId"`
}

// RecordUpdate is the edit-record form
type RecordUpdate struct {
	StudentID string `json:"studentId" form:"studentId" validate:"required"`
	BookID    string `json:"bookId" form:"bookId" validate:"required"`
	Status    string `json:"status" form:"status" validate:"required,oneof=ISSUED RETURNED"`
}

// ListBooks returns every book
func (s *LibraryService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/library/books", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.Book](raw)
}

// GetBook fetches one book
func (s *LibraryService) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/library/books/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeOne[domain.Book](raw)
}

// CreateBook validates and posts a book
func (s *LibraryService) CreateBook(ctx context.Context, input *BookInput) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Post(ctx, "/library/books", input, nil)
}

// DeleteBook removes a book
func (s *LibraryService) DeleteBook(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/library/books/"+url.PathEscape(id), nil)
}

// ListRecords returns every issue record
func (s *LibraryService) ListRecords(ctx context.Context) ([]domain.LibraryRecord, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/library/records", nil, &raw); err != nil {
		return nil, err
	}
	return decodeList[domain.LibraryRecord](raw)
}

// GetRecord fetches one issue record
func (s *LibraryService) GetRecord(ctx context.Context, id string) (*domain.LibraryRecord, error) {
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/library/records/"+url.PathEscape(id), nil, &raw); err != nil {
		return nil, err
	}
	return decodeOne[domain.LibraryRecord](raw)
}

// UpdateRecord validates and patches an issue record
func (s *LibraryService) UpdateRecord(ctx context.Context, id string, input *RecordUpdate) error {
	if err := check(input); err != nil {
		return err
	}
	return s.api.Patch(ctx, "/library/records/"+url.PathEscape(id), input, nil)
}

// DeleteRecord removes an issue record
func (s *LibraryService) DeleteRecord(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/library/records/"+url.PathEscape(id), nil)
}

// Assign issues a book. Both selections are required before anything is sent.
func (s *LibraryService) Assign(ctx context.Context, input *AssignInput) error {
	if strings.TrimSpace(input.BookID) == "" || strings.TrimSpace(input.StudentID) == "" {
		return NewValidationError("bookId", "Select book & student")
	}
	return s.api.Post(ctx, "/library/assign", input, nil)
}
