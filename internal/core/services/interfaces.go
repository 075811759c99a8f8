package services

import (
	"context"
	"net/url"
)

// Requester is the transport every service talks through. *apiclient.Client
// implements it; tests substitute a client pointed at an httptest server.
type Requester interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Patch(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Pinger reports whether the backend is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}
