package handlers

import (
	"log"
	"strconv"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler renders the landing page
type DashboardHandler struct {
	gw *Gateway
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(gw *Gateway) *DashboardHandler {
	return &DashboardHandler{gw: gw}
}

// Show renders the summary cards
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	p := h.gw.newPage(c, "Dashboard", "/dashboard")
	p.Heading = "Welcome to Admin Dashboard"

	summary, err := services.NewDashboardService(h.gw.Backend(c)).Summary(c.UserContext())
	if err != nil {
		if expired(err) {
			return toLogin(c)
		}
		log.Printf("⚠️ Dashboard summary failed [%v]: %v", c.Locals("requestid"), err)
		p.Flash = &views.Flash{Kind: views.FlashError, Message: "Failed to load dashboard"}
		summary = &services.DashboardSummary{}
	}

	p.Cards = []views.Card{
		{Label: "Total Students", Value: strconv.Itoa(summary.TotalStudents), Tone: "blue"},
		{Label: "Total Courses", Value: strconv.Itoa(summary.TotalCourses), Tone: "green"},
		{Label: "Total Books", Value: strconv.Itoa(summary.TotalBooks), Tone: "purple"},
		{Label: "Books Issued", Value: strconv.Itoa(summary.BooksIssued), Tone: "orange"},
	}
	return render(c, p)
}
