package session

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// CookieOptions are the attributes of the credential cookie
type CookieOptions struct {
	Name     string
	Secure   bool
	SameSite string
	Domain   string
}

// Cookie is a Store backed by the request/response cookies of one fiber request.
type Cookie struct {
	c       *fiber.Ctx
	opts    CookieOptions
	token   string
	touched bool
}

const (
	storeKey   = "session.store"
	expiredKey = "session.expired"
)

// FromCookie binds a Store to the current request. Repeated calls within one
// request return the same store.
func FromCookie(c *fiber.Ctx, opts CookieOptions) *Cookie {
	if s, ok := c.Locals(storeKey).(*Cookie); ok {
		return s
	}
	if opts.Name == "" {
		opts.Name = "token"
	}
	s := &Cookie{c: c, opts: opts}
	c.Locals(storeKey, s)
	return s
}

// MarkExpired flags the request as having hit a backend 401
func MarkExpired(c *fiber.Ctx) {
	c.Locals(expiredKey, true)
}

// Expired reports whether MarkExpired ran for this request
func Expired(c *fiber.Ctx) bool {
	v, _ := c.Locals(expiredKey).(bool)
	return v
}

// Token returns the credential written earlier in this request, or the one
// the browser sent.
func (s *Cookie) Token() string {
	if s.touched {
		return s.token
	}
	return s.c.Cookies(s.opts.Name)
}

// SetToken writes the credential cookie. HTTPOnly stays off so page scripts
// can read the token like the rest of the front end does.
func (s *Cookie) SetToken(token string, ttl time.Duration) {
	s.token = token
	s.touched = true
	s.c.Cookie(&fiber.Cookie{
		Name:     s.opts.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		Expires:  time.Now().Add(ttl),
		Secure:   s.opts.Secure,
		HTTPOnly: false,
		SameSite: s.opts.SameSite,
		Domain:   s.opts.Domain,
	})
}

// Clear expires the credential cookie
func (s *Cookie) Clear() {
	s.token = ""
	s.touched = true
	s.c.Cookie(&fiber.Cookie{
		Name:     s.opts.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Now().Add(-1 * time.Hour),
		Secure:   s.opts.Secure,
		HTTPOnly: false,
		SameSite: s.opts.SameSite,
		Domain:   s.opts.Domain,
	})
}
