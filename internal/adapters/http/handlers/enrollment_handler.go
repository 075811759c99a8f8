package handlers

import (
	"context"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// EnrollmentHandler serves the enrollment pages
type EnrollmentHandler struct {
	gw *Gateway
}

// NewEnrollmentHandler creates a new enrollment handler
func NewEnrollmentHandler(gw *Gateway) *EnrollmentHandler {
	return &EnrollmentHandler{gw: gw}
}

// List shows the enrollments of the selected student
func (h *EnrollmentHandler) List(c *fiber.Ctx) error {
	return h.gw.listStudentRecords(c, studentRecords{
		Title:    "Enrollments",
		Path:     "/enrollments",
		Columns:  []string{"Course", "Credits", "Enrolled On", "Status", ""},
		Empty:    "No enrollments found",
		NewLabel: "+ Enroll Student",
		Failed:   "Failed to fetch enrollments",
		Load: func(ctx context.Context, b *services.Backend, studentID string) ([]views.Row, error) {
			list, err := b.Enrollments.ListByStudent(ctx, studentID)
			if err != nil {
				return nil, err
			}
			rows := make([]views.Row, 0, len(list))
			for _, e := range list {
				var course, credits string
				if e.Course != nil {
					course, credits = e.Course.Name, string(e.Course.Credits)
				}
				rows = append(rows, views.Row{
					Cells: []string{course, credits, e.EnrolledOn, e.Status},
					Actions: []views.Action{{
						Label:   "Unenroll",
						URL:     withStudent("/enrollments/"+e.EnrollmentID.String()+"/delete", studentID),
						Method:  fiber.MethodPost,
						Confirm: "Unenroll this student?",
						Style:   "danger",
					}},
				})
			}
			return rows, nil
		},
	})
}

// New renders the enroll form
func (h *EnrollmentHandler) New(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	p, err := h.gw.formPage(c, "Enroll Student", "/enrollments", false, func(ref *services.ReferenceData) *views.Form {
		return enrollmentForm(ref, studentID, h.gw.today())
	})
	if err != nil {
		return fail(c, err, "Failed to load dropdown data", "/enrollments")
	}
	return render(c, p)
}

// Create enrolls a student in a course
func (h *EnrollmentHandler) Create(c *fiber.Ctx) error {
	var input services.EnrollmentInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Enrollment failed", "/enrollments/new")
	}

	if err := h.gw.Backend(c).Enrollments.Create(c.UserContext(), &input); err != nil {
		p, perr := h.gw.formPage(c, "Enroll Student", "/enrollments", false, func(ref *services.ReferenceData) *views.Form {
			return enrollmentForm(ref, input.StudentID, h.gw.today())
		})
		if perr != nil {
			return fail(c, err, "Enrollment failed", withStudent("/enrollments/new", input.StudentID))
		}
		return invalid(c, p, err, "Enrollment failed", withStudent("/enrollments/new", input.StudentID))
	}
	return done(c, "Student Enrolled Successfully!", withStudent("/enrollments", input.StudentID))
}

// Delete unenrolls
func (h *EnrollmentHandler) Delete(c *fiber.Ctx) error {
	back := withStudent("/enrollments", c.Query("student_id"))
	if err := h.gw.Backend(c).Enrollments.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Failed to delete enrollment", back)
	}
	return done(c, "Unenrolled successfully", back)
}
