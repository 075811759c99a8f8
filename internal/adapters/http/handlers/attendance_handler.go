package handlers

import (
	"context"
	"strings"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// AttendanceHandler serves the attendance pages
type AttendanceHandler struct {
	gw *Gateway
}

// NewAttendanceHandler creates a new attendance handler
func NewAttendanceHandler(gw *Gateway) *AttendanceHandler {
	return &AttendanceHandler{gw: gw}
}

// List shows the attendance history of the selected student
func (h *AttendanceHandler) List(c *fiber.Ctx) error {
	return h.gw.listStudentRecords(c, studentRecords{
		Title:    "Attendance",
		Path:     "/attendance",
		Columns:  []string{"Date", "Course", "Status", "Remarks"},
		Empty:    "No attendance records found",
		NewLabel: "+ Mark Attendance",
		Failed:   "Failed to fetch attendance records",
		Load: func(ctx context.Context, b *services.Backend, studentID string) ([]views.Row, error) {
			list, err := b.Attendance.ListByStudent(ctx, studentID)
			if err != nil {
				return nil, err
			}
			rows := make([]views.Row, 0, len(list))
			for _, a := range list {
				course := ""
				if a.Course != nil {
					course = a.Course.Name
				}
				remarks := a.Remarks
				if remarks == "" {
					remarks = "-"
				}
				rows = append(rows, views.Row{Cells: []string{a.Date, course, strings.ToUpper(a.Status), remarks}})
			}
			return rows, nil
		},
	})
}

// New renders the mark-attendance form
func (h *AttendanceHandler) New(c *fiber.Ctx) error {
	studentID := c.Query("student_id")
	p, err := h.gw.formPage(c, "Mark Attendance", "/attendance", false, func(ref *services.ReferenceData) *views.Form {
		return attendanceForm(ref, studentID, h.gw.today())
	})
	if err != nil {
		return fail(c, err, "Failed to load dropdown data", "/attendance")
	}
	return render(c, p)
}

// Create marks attendance
func (h *AttendanceHandler) Create(c *fiber.Ctx) error {
	var input services.AttendanceInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Failed to mark attendance", "/attendance/new")
	}

	if err := h.gw.Backend(c).Attendance.Create(c.UserContext(), &input); err != nil {
		p, perr := h.gw.formPage(c, "Mark Attendance", "/attendance", false, func(ref *services.ReferenceData) *views.Form {
			return attendanceForm(ref, input.StudentID, h.gw.today())
		})
		if perr != nil {
			return fail(c, err, "Failed to mark attendance", withStudent("/attendance/new", input.StudentID))
		}
		return invalid(c, p, err, "Failed to mark attendance", withStudent("/attendance/new", input.StudentID))
	}
	return done(c, "Attendance Marked Successfully!", withStudent("/attendance", input.StudentID))
}
