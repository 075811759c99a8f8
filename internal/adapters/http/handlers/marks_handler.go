package handlers

import (
	"context"
	"strconv"
	"strings"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// MarksHandler serves the marks pages
type MarksHandler struct {
	gw *Gateway
}

// NewMarksHandler creates a new marks handler
func NewMarksHandler(gw *Gateway) *MarksHandler {
	return &MarksHandler{gw: gw}
}

func score(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// List shows the results of the selected student
func (h *MarksHandler) List(c *fiber.Ctx) error {
	return h.gw.listStudentRecords(c, studentRecords{
		Title:    "Marks",
		Path:     "/marks",
		Columns:  []string{"Course", "Exam Type", "Score", "Max Score", "Percentage"},
		Empty:    "No marks found",
		NewLabel: "+ Add Marks",
		Failed:   "Failed to fetch marks",
		Load: func(ctx context.Context, b *services.Backend, studentID string) ([]views.Row, error) {
			list, err := b.Marks.ListByStudent(ctx, studentID)
			if err != nil {
				return nil, err
			}
			rows := make([]views.Row, 0, len(list))
			for _, m := range list {
				course := ""
				if m.Course != nil {
					course = m.Course.Name
				}
				rows = append(rows, views.Row{Cells: []string{
					course,
					m.ExamType,
					score(m.Score),
					score(m.MaxScore),
					strconv.FormatFloat(m.Percent(), 'f', 1, 64) + "%",
				}})
			}
			return rows, nil
		},
	})
}

// New renders the add-marks form
func (h *MarksHandler) New(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	p, err := h.gw.formPage(c, "Add Marks", "/marks", false, func(ref *services.ReferenceData) *views.Form {
		return marksForm(ref, studentID)
	})
	if err != nil {
		return fail(c, err, "Failed to load dropdown data", "/marks")
	}
	return render(c, p)
}

// Create records an exam result
func (h *MarksHandler) Create(c *fiber.Ctx) error {
	var input services.MarksInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Failed to add marks", "/marks/new")
	}
	if strings.TrimSpace(c.FormValue("score")) == "" {
		input.Score = nil
	}

	if err := h.gw.Backend(c).Marks.Create(c.UserContext(), &input); err != nil {
		p, perr := h.gw.formPage(c, "Add Marks", "/marks", false, func(ref *services.ReferenceData) *views.Form {
			return marksForm(ref, input.StudentID)
		})
		if perr != nil {
			return fail(c, err, "Failed to add marks", withStudent("/marks/new", input.StudentID))
		}
		return invalid(c, p, err, "Failed to add marks", withStudent("/marks/new", input.StudentID))
	}
	return done(c, "Marks Added Successfully!", withStudent("/marks", input.StudentID))
}
