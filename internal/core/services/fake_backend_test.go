package services

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"sms-admin/internal/pkg/apiclient"
	"sms-admin/internal/pkg/session"
)

type call struct {
	Method string
	Path   string
	Query  string
	Body   map[string]any
}

type reply struct {
	status int
	body   string
}

// fakeBackend answers canned replies keyed by "METHOD /path" and records calls
type fakeBackend struct {
	mu      sync.Mutex
	replies map[string]reply
	calls   []call
}

func newFakeBackend(t *testing.T) (*fakeBackend, *Backend) {
	t.Helper()
	fb := &fakeBackend{replies: map[string]reply{}}
	srv := httptest.NewServer(fb)
	t.Cleanup(srv.Close)

	api := apiclient.New(apiclient.Config{BaseURL: srv.URL}, session.NewMemory("test-token"), nil)
	return fb, NewBackend(api)
}

func (f *fakeBackend) on(method, path string, status int, body string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.replies[method+" "+path] = reply{status: status, body: body}
}

func (f *fakeBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	f.mu.Lock()
	f.calls = append(f.calls, call{Method: r.Method, Path: r.URL.Path, Query: r.URL.RawQuery, Body: body})
	rep, ok := f.replies[r.Method+" "+r.URL.Path]
	f.mu.Unlock()

	if !ok {
		rep = reply{status: http.StatusNotFound, body: `{"message":"not found"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (f *fakeBackend) recorded(method, path string) []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []call
	for _, c := range f.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func (f *fakeBackend) total() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
