package handlers

import (
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// HealthReporter returns the latest backend probe
type HealthReporter interface {
	Status() services.HealthStatus
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	monitor HealthReporter
	mode    string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(monitor HealthReporter, mode string) *HealthHandler {
	return &HealthHandler{monitor: monitor, mode: mode}
}

// HealthCheck handles health check
// @Summary Health check
// @Description Reports the admin app status and the last backend probe; "starting" until the first probe finishes
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response{data=services.HealthStatus}
// @Failure 503 {object} response.Response{data=services.HealthStatus}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *fiber.Ctx) error {
	status := h.monitor.Status()
	if status.Pending() {
		return response.Success(c, "starting", status)
	}
	if !status.Reachable {
		return response.ServiceUnavailable(c, "Backend unreachable", status)
	}
	return response.Success(c, "ok", status)
}

// APIInfo handles API v1 info
// @Summary API v1 Info
// @Description Returns the admin app's JSON endpoints
// @Tags Health
// @Produce json
// @Success 200 {object} response.Response
// @Router /api/v1 [get]
func (h *HealthHandler) APIInfo(c *fiber.Ctx) error {
	return response.Success(c, "Student Management Admin", fiber.Map{
		"mode": h.mode,
		"endpoints": fiber.Map{
			"health":  "/health",
			"session": "/api/v1/session",
			"metrics": "/metrics",
		},
	})
}
