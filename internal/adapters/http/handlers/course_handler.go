package handlers

import (
	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/pagination"

	"github.com/gofiber/fiber/v2"
)

// CourseHandler serves the course pages
type CourseHandler struct {
	gw *Gateway
}

// NewCourseHandler creates a new course handler
func NewCourseHandler(gw *Gateway) *CourseHandler {
	return &CourseHandler{gw: gw}
}

// List renders one page of courses
func (h *CourseHandler) List(c *fiber.Ctx) error {
	q := pagination.FromCtx(c)
	superseded, release := h.gw.stale(c, "courses")
	defer release()

	page, err := h.gw.Backend(c).Courses.List(c.UserContext(), q)
	if err != nil && expired(err) {
		return toLogin(c)
	}
	if isFetch(c) && superseded() {
		return c.SendStatus(fiber.StatusNoContent)
	}

	table := &views.Table{
		ID:       "courses-table",
		Columns:  []string{"Course Name", "Credits", "Description", ""},
		Empty:    "No courses found",
		Search:   &views.Search{Action: "/courses", Value: q.Search, Placeholder: "Search courses...", Limit: q.Limit},
		NewURL:   "/courses/new",
		NewLabel: "+ Add Course",
	}
	if err == nil {
		for _, course := range page.Data {
			base := "/courses/" + course.CourseID.String()
			table.Rows = append(table.Rows, views.Row{
				Cells: []string{course.Name, string(course.Credits), course.Description},
				Actions: []views.Action{
					{Label: "View", URL: base, Style: "light"},
					{Label: "Edit", URL: base + "/edit", Style: "light"},
					{Label: "Delete", URL: base + "/delete", Method: fiber.MethodPost, Confirm: "Delete this course?", Style: "danger"},
				},
			})
		}
		table.Pager = views.NewPager("/courses", q, pagination.Meta(page.Meta))
	}

	if isFetch(c) {
		if err != nil {
			return c.Status(fiber.StatusBadGateway).SendString("Failed to load courses")
		}
		return c.Render("partials/table", table)
	}

	p := h.gw.newPage(c, "Courses", "/courses")
	p.Table = table
	if err != nil {
		logFailure(c, err)
		p.Flash = &views.Flash{Kind: views.FlashError, Message: "Failed to load courses"}
	}
	return render(c, p)
}

// New renders the add-course form
func (h *CourseHandler) New(c *fiber.Ctx) error {
	p := h.gw.newPage(c, "Add Course", "/courses")
	p.Back = "/courses"
	p.Form = courseForm("/courses", "Add Course", nil)
	return render(c, p)
}

// Create sends the add-course form to the backend
func (h *CourseHandler) Create(c *fiber.Ctx) error {
	var input services.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Failed to add course", "/courses/new")
	}

	if err := h.gw.Backend(c).Courses.Create(c.UserContext(), &input); err != nil {
		p := h.gw.newPage(c, "Add Course", "/courses")
		p.Back = "/courses"
		p.Form = courseForm("/courses", "Add Course", nil)
		return invalid(c, p, err, "Failed to add course", "/courses/new")
	}
	return done(c, "Course Added Successfully!", "/courses")
}

// Show renders one course
func (h *CourseHandler) Show(c *fiber.Ctx) error {
	id := c.Params("id")
	course, err := h.gw.Backend(c).Courses.Get(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Course", "Failed to load course", "/courses")
	}

	p := h.gw.newPage(c, course.Name, "/courses")
	p.Back = "/courses"
	p.Detail = &views.Detail{
		Items: []views.Item{
			{Label: "Course Name", Value: course.Name},
			{Label: "Credits", Value: string(course.Credits)},
			{Label: "Description", Value: course.Description},
		},
		Actions: []views.Action{
			{Label: "Edit", URL: "/courses/" + id + "/edit", Style: "primary"},
			{Label: "Delete", URL: "/courses/" + id + "/delete", Method: fiber.MethodPost, Confirm: "Delete this course?", Style: "danger"},
		},
	}
	return render(c, p)
}

// Edit renders the edit-course form
func (h *CourseHandler) Edit(c *fiber.Ctx) error {
	id := c.Params("id")
	course, err := h.gw.Backend(c).Courses.Get(c.UserContext(), id)
	if err != nil {
		return missing(c, err, "Course", "Failed to load course", "/courses")
	}

	p := h.gw.newPage(c, "Edit Course", "/courses")
	p.Back = "/courses"
	p.Form = courseForm("/courses/"+id, "Update Course", course)
	return render(c, p)
}

// Update saves the edit-course form
func (h *CourseHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var input services.CourseInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, domain.ErrInvalidInput, "Failed to update course", "/courses/"+id+"/edit")
	}

	if err := h.gw.Backend(c).Courses.Update(c.UserContext(), id, &input); err != nil {
		p := h.gw.newPage(c, "Edit Course", "/courses")
		p.Back = "/courses"
		p.Form = courseForm("/courses/"+id, "Update Course", nil)
		return invalid(c, p, err, "Failed to update course", "/courses/"+id+"/edit")
	}
	return done(c, "Course Updated Successfully!", "/courses")
}

// Delete removes a course
func (h *CourseHandler) Delete(c *fiber.Ctx) error {
	if err := h.gw.Backend(c).Courses.Delete(c.UserContext(), c.Params("id")); err != nil {
		return fail(c, err, "Failed to delete course", "/courses")
	}
	return done(c, "Course deleted", "/courses")
}
