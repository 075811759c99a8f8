package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sms-admin/internal/core/domain"
	"sms-admin/internal/pkg/pagination"
)

// DashboardService computes the landing page counters
type DashboardService struct {
	backend *Backend
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(backend *Backend) *DashboardService {
	return &DashboardService{backend: backend}
}

// DashboardSummary represents the dashboard cards
type DashboardSummary struct {
	TotalStudents int `json:"total_students"`
	TotalCourses  int `json:"total_courses"`
	TotalBooks    int `json:"total_books"`
	BooksIssued   int `json:"books_issued"`
}

// Summary fetches the counters concurrently
func (s *DashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	data := &DashboardSummary{}
	g, ctx := errgroup.WithContext(ctx)
	one := pagination.Query{Page: 1, Limit: 1}

	g.Go(func() error {
		page, err := s.backend.Students.List(ctx, one)
		if err != nil {
			return err
		}
		data.TotalStudents = page.Meta.Total
		return nil
	})
	g.Go(func() error {
		page, err := s.backend.Courses.List(ctx, one)
		if err != nil {
			return err
		}
		data.TotalCourses = page.Meta.Total
		return nil
	})
	g.Go(func() error {
		books, err := s.backend.Library.ListBooks(ctx)
		if err != nil {
			return err
		}
		data.TotalBooks = len(books)
		return nil
	})
	g.Go(func() error {
		records, err := s.backend.Library.ListRecords(ctx)
		if err != nil {
			return err
		}
		for _, r := range records {
			if r.Status == domain.RecordIssued {
				data.BooksIssued++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
