package handlers

import (
	"context"
	"net/url"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// studentRecords describes a page that lists one student's records behind
// a student selector: enrollments, attendance and marks.
type studentRecords struct {
	Title    string
	Path     string
	Columns  []string
	Empty    string
	NewLabel string
	Failed   string
	Load     func(ctx context.Context, b *services.Backend, studentID string) ([]views.Row, error)
}

// withStudent appends the selected student to path
func withStudent(path, studentID string) string {
	if studentID == "" {
		return path
	}
	return path + "?" + url.Values{"student_id": {studentID}}.Encode()
}

func (g *Gateway) listStudentRecords(c *fiber.Ctx, r studentRecords) error {
	studentID := c.Query("student_id")
	ctx := c.UserContext()
	b := g.Backend(c)

	p := g.newPage(c, r.Title, r.Path)
	ref, err := services.LoadReferenceData(ctx, b, true, false, false)
	if err != nil {
		if expired(err) {
			return toLogin(c)
		}
		logFailure(c, err)
		p.Flash = &views.Flash{Kind: views.FlashError, Message: "Failed to load dropdown data"}
		ref = &services.ReferenceData{}
	}

	p.Filter = &views.Filter{
		Action: r.Path,
		Name:   "student_id",
		Label:  "Select Student",
		Field: views.Field{
			Name:    "student_id",
			Label:   "Select Student",
			Type:    "select",
			Options: studentOptions(ref.Students, studentID, "-- Choose Student --"),
		},
	}

	table := &views.Table{
		ID:       r.Path[1:] + "-table",
		Columns:  r.Columns,
		Empty:    "Select a student to view records",
		NewURL:   withStudent(r.Path+"/new", studentID),
		NewLabel: r.NewLabel,
	}
	if studentID != "" {
		rows, err := r.Load(ctx, b, studentID)
		switch {
		case err == nil:
			table.Rows = rows
			table.Empty = r.Empty
		case expired(err):
			return toLogin(c)
		default:
			logFailure(c, err)
			p.Flash = &views.Flash{Kind: views.FlashError, Message: r.Failed}
		}
	}
	p.Table = table
	return render(c, p)
}

// formPage loads the select box data and renders the form build returns.
// It is used both for the blank form and to show validation errors.
func (g *Gateway) formPage(c *fiber.Ctx, title, active string, books bool, build func(*services.ReferenceData) *views.Form) (*views.Page, error) {
	b := g.Backend(c)
	ref, err := services.LoadReferenceData(c.UserContext(), b, true, !books, books)
	if err != nil {
		return nil, err
	}
	p := g.newPage(c, title, active)
	p.Back = active
	p.Form = build(ref)
	return p, nil
}
