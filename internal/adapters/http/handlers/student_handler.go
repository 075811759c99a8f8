package handlers

import (
	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/pagination"

	"github.com/gofiber/fiber/v2"
)

// liveViews are the lists whose search box queries as the user types
var liveViews = []string{"students", "courses"}

// StudentHandler serves the student pages
type StudentHandler struct {
	gw *Gateway
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(gw *Gateway) *StudentHandler {
	return &StudentHandler{gw: gw}
}

// List renders one page of students. Live-search requests get only the
// table, or 204 when a newer search from the same session overtook them.
func (h *StudentHandler) List(c *fiber.Ctx) error {
	q := pagination.FromCtx(c)
	superseded, release := h.gw.stale(c, "students")
	defer release()

	page, err := h.gw.Backend(c).Students.List(c.UserContext(), q)
	if err != nil && expired(err) {
		return toLogin(c)
	}
	if isFetch(c) && superseded() {
		return c.SendStatus(fiber.StatusNoContent)
	}

	table := &views.Table{
		ID:       "students-table",
		Columns:  []string{"Name", "Email", "Phone", "Status", ""},
		Empty:    "No students found",
		Search:   &views.Search{Action: "/students", Value: q.Search, Placeholder: "Search students...", Limit: q.Limit},
		NewURL:   "/students/new",
		NewLabel: "+ Add Student",
	}
	if err == nil {
		for _, s := range page.Data {
			table.Rows = append(table.Rows, studentRow(s))
		}
		table.Pager = views.NewPager("/students", q, pagination.Meta(page.Meta))
	}

	if isFetch(c) {
		if err != nil {
			return c.Status(fiber.StatusBadGateway).SendString("Failed to load students")
		}
		return c.Render("partials/table", table)
	}

	p := h.gw.newPage(c, "Students", "/students")
	p.Table = table
	if err != nil {
		logFailure(c, err)
		p.Flash = &views.Flash{Kind: views.FlashError, Message: "Failed to load students"}
	}
	return render(c, p)
}

func studentRow(s domain.Student) views.Row {
	base := "/students/" + s.StudentID.String()
	return views.Row{
		Cells: []string{s.FullName(), s.Email, s.Phone, s.Status},
		Actions: []views.Action{
			{Label: "View", URL: base, Style: "light"},
			{Label: "Edit", URL: base + "/edit", Style: "light"},
			{Label: "Delete", URL: base + "/delete", Method: fiber.MethodPost, Confirm: "Delete this student?", Style: "danger"},
		},
	}
}

// New renders the add-student form
func (h *StudentHandler) New(c *fiber.Ctx) error {
	p := h.gw.newPage(c, "Add Student", "/students")
	p.Back = "/students"
	p.Form = studentForm("/students", "Add Student", nil, true)
	return render(c, p)
}

// Create sends the add-student form to the backend once
func (h *StudentHandler) Create(c *fiber.Ctx) error {
	var input services.StudentInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Failed to add student", "/students/new")
	}

	if _, err := h.gw.Backend(c).Students.Create(c.UserContext(), &input); err != nil {
		p := h.gw.newPage(c, "Add Student", "/students")
		p.Back = "/students"
		p.Form = studentForm("/students", "Add Student", nil, true)
		return invalid(c, p, err, "Failed to add student", "/students/new")
	}
	return done(c, "Student Added Successfully!", "/students")
}

// Show renders one student
func (h *StudentHandler) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	s, err := h.gw.Backend(c).Students.Get(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Student", "Could not fetch student details", "/students")
	}

	p := h.gw.newPage(c, s.FullName(), "/students")
	p.Back = "/students"
	p.Detail = &views.Detail{
		Items: []views.Item{
			{Label: "First Name", Value: s.FirstName},
			{Label: "Last Name", Value: s.LastName},
			{Label: "Email", Value: s.Email},
			{Label: "Phone", Value: s.Phone},
			{Label: "Date of Birth", Value: s.DOB},
			{Label: "Gender", Value: s.Gender},
			{Label: "Address", Value: s.Address},
			{Label: "Status", Value: s.Status},
		},
		Actions: []views.Action{
			{Label: "Edit", URL: "/students/" + id + "/edit", Style: "primary"},
			{Label: "Delete", URL: "/students/" + id + "/delete", Method: fiber.MethodPost, Confirm: "Delete this student?", Style: "danger"},
		},
	}
	return render(c, p)
}

// Edit renders the edit-student form
func (h *StudentHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	s, err := h.gw.Backend(c).Students.Get(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Student", "Could not fetch student details", "/students")
	}

	p := h.gw.newPage(c, "Edit Student", "/students")
	p.Back = "/students/" + id
	p.Form = studentForm("/students/"+id, "Update Student", s, false)
	return render(c, p)
}

// Update saves the edit-student form
func (h *StudentHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var input services.StudentUpdate
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Failed to update student", "/students/"+id+"/edit")
	}

	if err := h.gw.Backend(c).Students.Update(c.UserContext(), id, &input); err != nil {
		p := h.gw.newPage(c, "Edit Student", "/students")
		p.Back = "/students/" + id
		p.Form = studentForm("/students/"+id, "Update Student", nil, false)
		return invalid(c, p, err, "Failed to update student", "/students/"+id+"/edit")
	}
	return done(c, "Student Updated Successfully!", "/students/"+id)
}

// Delete removes a student
func (h *StudentHandler) Delete(c *fiber.Ctx) error {
	if err := h.gw.Backend(c).Students.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Failed to delete", "/students")
	}
	return done(c, "Student deleted", "/students")
}
