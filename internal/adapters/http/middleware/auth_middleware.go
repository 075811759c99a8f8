package middleware

import (
	"log"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/pkg/guard"
	"sms-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// GuardMetrics counts route guard redirects by target
type GuardMetrics struct {
	redirects *prometheus.CounterVec
}

// NewGuardMetrics registers the guard collectors on reg
func NewGuardMetrics(reg prometheus.Registerer) *GuardMetrics {
	m := &GuardMetrics{
		redirects: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sms_admin",
			Name:      "guard_redirects_total",
			Help:      "Navigations redirected by the route guard.",
		}, []string{"target"}),
	}
	if reg != nil {
		reg.MustRegister(m.redirects)
	}
	return m
}

func (m *GuardMetrics) inc(target string) {
	if m == nil {
		return
	}
	m.redirects.WithLabelValues(target).Inc()
}

// RouteGuard redirects between the login page and the protected pages based
// only on whether the credential cookie is present.
func RouteGuard(rules guard.Rules, cookie session.CookieOptions, metrics *GuardMetrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		hasCredential := session.FromCookie(c, cookie).Token() != ""

		d := rules.Decide(c.Path(), hasCredential)
		if !d.Redirect {
			return c.Next()
		}

		metrics.inc(d.Target)
		return c.Redirect(d.Target, fiber.StatusFound)
	}
}

// SessionExpiry turns a response into a redirect to the login page when a
// backend call inside the handler was answered with 401. The client has
// already cleared the credential cookie by then.
func SessionExpiry(loginPath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if !session.Expired(c) {
			return err
		}

		log.Printf("⚠️ Session expired on %s %s [%v]", c.Method(), c.Path(), c.Locals("requestid"))
		c.Response().ResetBody()
		views.Error(c, "Session expired, please log in again")

		if c.Get("X-Requested-With") == "fetch" {
			c.Set("X-Location", loginPath)
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return c.Redirect(loginPath, fiber.StatusSeeOther)
	}
}
