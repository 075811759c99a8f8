package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"sms-admin/internal/core/domain"
)

// ReferenceData holds the lists behind a form's select boxes
type ReferenceData struct {
	Students []domain.Student
	Courses  []domain.Course
	Books    []domain.Book
}

// LoadReferenceData fetches the requested lists concurrently. The first
// failure cancels the rest and is returned alone.
func LoadReferenceData(ctx context.Context, b *Backend, students, courses, books bool) (*ReferenceData, error) {
	data := &ReferenceData{}
	g, ctx := errgroup.WithContext(ctx)

	if students {
		g.Go(func() error {
			list, err := b.Students.Options(ctx)
			data.Students = list
			return err
		})
	}
	if courses {
		g.Go(func() error {
			list, err := b.Courses.Options(ctx)
			data.Courses = list
			return err
		})
	}
	if books {
		g.Go(func() error {
			list, err := b.Library.ListBooks(ctx)
			data.Books = list
			return err
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return data, nil
}
