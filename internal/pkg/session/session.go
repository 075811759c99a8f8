// Package session holds the session credential capability shared by the
// API client, the route guard and the login/logout handlers.
package session

import (
	"sync"
	"time"
)

// Store is the single place the session credential lives.
type Store interface {
	// Token returns the current credential or "" when there is none.
	Token() string
	// SetToken stores a credential that expires after ttl.
	SetToken(token string, ttl time.Duration)
	// Clear removes the credential.
	Clear()
}

// Memory is an in-process Store for tests and non-browser callers.
type Memory struct {
	mu      sync.Mutex
	token   string
	expires time.Time
	now     func() time.Time
}

// NewMemory creates an empty memory store, optionally seeded with a token
// that never expires.
func NewMemory(token ...string) *Memory {
	m := &Memory{now: time.Now}
	if len(token) > 0 {
		m.token = token[0]
	}
	return m
}

// Token returns the stored token unless it has expired
func (m *Memory) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.token != "" && !m.expires.IsZero() && !m.now().Before(m.expires) {
		m.token = ""
		m.expires = time.Time{}
	}
	return m.token
}

// SetToken stores token; a non-positive ttl means no expiry
func (m *Memory) SetToken(token string, ttl time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.expires = time.Time{}
	if ttl > 0 {
		m.expires = m.now().Add(ttl)
	}
}

// Clear drops the token
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.expires = time.Time{}
}
