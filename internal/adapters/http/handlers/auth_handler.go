package handlers

import (
	"errors"
	"log"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/apiclient"
	"sms-admin/internal/pkg/guard"
	"sms-admin/internal/pkg/response"
	"sms-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles the login page and the session cookie
type AuthHandler struct {
	gw *Gateway
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(gw *Gateway) *AuthHandler {
	return &AuthHandler{gw: gw}
}

// loginView is the model of the login template
type loginView struct {
	Title string
	Email string
	Error string
	Flash *views.Flash
}

// SessionInfo represents the session state reported to scripts
type SessionInfo struct {
	Authenticated bool   `json:"authenticated"`
	Subject       string `json:"subject,omitempty"`
}

// ShowLogin renders the login form
func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return c.Render("login", loginView{Title: "Login", Flash: views.PopFlash(c)}, "layouts/auth")
}

// Login exchanges the credentials for a token and stores it in the cookie
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	input := &services.LoginInput{
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}

	token, err := h.gw.anonymous().Auth.Login(c.UserContext(), input)
	if err != nil {
		model := loginView{Title: "Login", Email: input.Email}

		var verr *services.ValidationError
		switch {
		case errors.As(err, &verr):
			model.Error = verr.UserMessage()
			return c.Status(fiber.StatusUnprocessableEntity).Render("login", model, "layouts/auth")
		case errors.Is(err, services.ErrInvalidCredentials):
			model.Error = apiclient.MessageOf(err, "Login Failed")
			return c.Status(fiber.StatusUnauthorized).Render("login", model, "layouts/auth")
		default:
			log.Printf("❌ Login failed [%v]: %v", c.Locals("requestid"), err)
			model.Error = apiclient.MessageOf(err, "Login Failed")
			// backend 4xx replies (e.g. throttling) keep their status
			status := response.StatusFor(err)
			if s := apiclient.StatusOf(err); s >= 400 && s < 500 {
				status = s
			}
			return c.Status(status).Render("login", model, "layouts/auth")
		}
	}

	ttl := session.Expiry(token, h.gw.now(), h.gw.ttl)
	h.gw.Store(c).SetToken(token, ttl)

	views.Success(c, "Login Successful !")
	return c.Redirect(guard.HomePath, fiber.StatusSeeOther)
}

// Logout removes the credential cookie
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	store := h.gw.Store(c)
	if token := store.Token(); token != "" {
		fp := session.Fingerprint(token)
		for _, view := range liveViews {
			h.gw.tracker.Forget(fp + ":" + view)
		}
		log.Printf("✅ Logged out [session %s]", fp)
	}
	store.Clear()
	return c.Redirect(guard.LoginPath, fiber.StatusSeeOther)
}

// Root sends the bare host to the dashboard. The route guard has already
// sent anonymous visitors to the login page.
func (h *AuthHandler) Root(c *fiber.Ctx) error {
	return c.Redirect(guard.HomePath, fiber.StatusFound)
}

// Session reports whether the request carries a credential
// @Summary Session state
// @Description Reports whether the browser holds a session credential. The token itself is never returned.
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Response{data=SessionInfo}
// @Router /api/v1/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := h.gw.Store(c).Token()
	return response.Success(c, "OK", SessionInfo{
		Authenticated: token != "",
		Subject:       session.Subject(token),
	})
}
