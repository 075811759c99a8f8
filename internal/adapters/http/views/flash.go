package views

import (
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// Flash kinds
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot toast message carried across a redirect
type Flash struct {
	Kind    string
	Message string
}

// SetFlash stores a message for the next page render
func SetFlash(c *fiber.Ctx, kind, message string) {
	c.Cookie(&fiber.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(kind + ":" + message),
		Path:     "/",
		MaxAge:   60,
		Expires:  time.Now().Add(time.Minute),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	c.Locals(flashCookie, &Flash{Kind: kind, Message: message})
}

// Success is SetFlash with FlashSuccess
func Success(c *fiber.Ctx, message string) { SetFlash(c, FlashSuccess, message) }

// Error is SetFlash with FlashError
func Error(c *fiber.Ctx, message string) { SetFlash(c, FlashError, message) }

// PopFlash returns the pending message, if any, and expires the cookie
func PopFlash(c *fiber.Ctx) *Flash {
	if f, ok := c.Locals(flashCookie).(*Flash); ok {
		c.Locals(flashCookie, nil)
		c.ClearCookie(flashCookie)
		return f
	}

	raw := c.Cookies(flashCookie)
	if raw == "" {
		return nil
	}
	c.ClearCookie(flashCookie)

	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return nil
	}
	kind, message, ok := strings.Cut(decoded, ":")
	if !ok || message == "" {
		return nil
	}
	if kind != FlashSuccess && kind != FlashError {
		kind = FlashError
	}
	return &Flash{Kind: kind, Message: message}
}
