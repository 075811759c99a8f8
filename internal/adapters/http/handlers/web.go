package handlers

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/core/domain"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/apiclient"
	"sms-admin/internal/pkg/guard"
	"sms-admin/internal/pkg/sequence"
	"sms-admin/internal/pkg/session"

	"github.com/gofiber/fiber/v2"
)

// Gateway builds the per-request collaborators of the page handlers: the
// cookie-backed session store and a backend bound to it.
type Gateway struct {
	api     apiclient.Config
	cookie  session.CookieOptions
	ttl     time.Duration
	metrics *apiclient.Metrics
	tracker *sequence.Tracker
	now     func() time.Time
}

// NewGateway creates a gateway. metrics may be nil.
func NewGateway(api apiclient.Config, cookie session.CookieOptions, ttl time.Duration, metrics *apiclient.Metrics, tracker *sequence.Tracker) *Gateway {
	if api.HTTPClient == nil {
		api.HTTPClient = apiclient.NewHTTPClient(api.Timeout)
	}
	if tracker == nil {
		tracker = sequence.NewTracker()
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Gateway{api: api, cookie: cookie, ttl: ttl, metrics: metrics, tracker: tracker, now: time.Now}
}

// Store returns the session store of the request
func (g *Gateway) Store(c *fiber.Ctx) *session.Cookie {
	return session.FromCookie(c, g.cookie)
}

// Backend returns services authenticated with the request's credential. A
// 401 from the backend clears the cookie and marks the request expired.
func (g *Gateway) Backend(c *fiber.Ctx) *services.Backend {
	return services.NewBackend(g.Client(c))
}

// Client returns the raw API client of the request
func (g *Gateway) Client(c *fiber.Ctx) *apiclient.Client {
	return apiclient.New(g.api, g.Store(c), func(_ context.Context) {
		session.MarkExpired(c)
	}, apiclient.WithMetrics(g.metrics))
}

// anonymous is used by the login form, where a 401 means wrong credentials
func (g *Gateway) anonymous() *services.Backend {
	return services.NewBackend(apiclient.New(g.api, session.NewMemory(), nil, apiclient.WithMetrics(g.metrics)))
}

// stale starts a tracked request for view. superseded reports whether a
// newer one from the same session has begun since; release must be called
// when the request is finished.
func (g *Gateway) stale(c *fiber.Ctx, view string) (superseded func() bool, release func()) {
	key := session.Fingerprint(g.Store(c).Token()) + ":" + view
	seq := g.tracker.Begin(key)
	return func() bool { return !g.tracker.Latest(key, seq) },
		func() { g.tracker.Done(key, seq) }
}

// isFetch reports a live-search request from the page script
func isFetch(c *fiber.Ctx) bool {
	return c.Get("X-Requested-With") == "fetch"
}

// newPage starts a page model with the signed-in user and pending flash
func (g *Gateway) newPage(c *fiber.Ctx, title, active string) *views.Page {
	p := views.NewPage(title, active)
	p.User = session.Subject(g.Store(c).Token())
	p.Flash = views.PopFlash(c)
	return p
}

func render(c *fiber.Ctx, p *views.Page) error {
	return c.Render("page", p, "layouts/main")
}

// done flashes a success message and redirects
func done(c *fiber.Ctx, message, to string) error {
	views.Success(c, message)
	return c.Redirect(to, fiber.StatusSeeOther)
}

// fail flashes the backend's message (or fallback) and redirects back
func fail(c *fiber.Ctx, err error, fallback, back string) error {
	if expired(err) {
		return toLogin(c)
	}
	logFailure(c, err)
	views.Error(c, apiclient.MessageOf(err, fallback))
	return c.Redirect(back, fiber.StatusSeeOther)
}

// missing handles a failed record lookup. A 404 flashes "<what> not found".
func missing(c *fiber.Ctx, err error, what, fallback, back string) error {
	if errors.Is(err, domain.ErrNotFound) {
		views.Error(c, what+" not found")
		return c.Redirect(back, fiber.StatusSeeOther)
	}
	return fail(c, err, fallback, back)
}

// logFailure logs errors the user did not cause
func logFailure(c *fiber.Ctx, err error) {
	if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNotFound) {
		return
	}
	log.Printf("❌ %s %s [%v]: %v", c.Method(), c.Path(), c.Locals("requestid"), err)
}

// expired reports a backend 401
func expired(err error) bool {
	return errors.Is(err, domain.ErrUnauthorized)
}

// toLogin ends a request whose session the backend rejected. SessionExpiry
// rewrites the response once the handler returns.
func toLogin(c *fiber.Ctx) error {
	return c.Redirect(guard.LoginPath, fiber.StatusSeeOther)
}

// invalid re-renders a form with the validation messages inline. Other
// errors go through fail.
func invalid(c *fiber.Ctx, p *views.Page, err error, fallback, back string) error {
	var verr *services.ValidationError
	if !errors.As(err, &verr) {
		return fail(c, err, fallback, back)
	}
	if p.Form != nil {
		fillFromRequest(c, p.Form)
		p.Form.WithErrors(verr.Fields)
		p.Form.Error = verr.UserMessage()
	}
	return c.Status(fiber.StatusUnprocessableEntity).Render("page", p, "layouts/main")
}

// fillFromRequest copies the submitted values back into the form
func fillFromRequest(c *fiber.Ctx, f *views.Form) {
	values := make(map[string]string, len(f.Fields))
	for _, field := range f.Fields {
		values[field.Name] = strings.TrimSpace(c.FormValue(field.Name))
	}
	f.Fill(values)
}

// today is the default date of the attendance and enrollment forms
func (g *Gateway) today() string {
	return g.now().Format("2006-01-02")
}

// CookieOptions returns the credential cookie attributes
func (g *Gateway) CookieOptions() session.CookieOptions {
	return g.cookie
}
