package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sms-admin/internal/core/domain"
	"sms-admin/internal/pkg/session"
)

type captured struct {
	method string
	path   string
	query  url.Values
	auth   string
	ctype  string
	body   []byte
}

func backend(t *testing.T, status int, reply string) (*httptest.Server, *[]captured) {
	t.Helper()
	var seen []captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = append(seen, captured{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.Query(),
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
			body:   b,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, &seen
}

func TestBearerHeaderFollowsStore(t *testing.T) {
	srv, seen := backend(t, http.StatusOK, `{}`)

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "credential present", token: "tok-123", want: "Bearer tok-123"},
		{name: "no credential", token: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*seen = nil
			store := session.NewMemory(tt.token)
			c := New(Config{BaseURL: srv.URL}, store, nil)
			require.NoError(t, c.Get(context.Background(), "/students", nil, nil))
			require.Len(t, *seen, 1)
			assert.Equal(t, tt.want, (*seen)[0].auth)
		})
	}
}

func TestTokenIsReadPerRequest(t *testing.T) {
	srv, seen := backend(t, http.StatusOK, `{}`)
	store := session.NewMemory()
	c := New(Config{BaseURL: srv.URL}, store, nil)

	require.NoError(t, c.Get(context.Background(), "/courses", nil, nil))
	store.SetToken("late-token", 0)
	require.NoError(t, c.Get(context.Background(), "/courses", nil, nil))

	assert.Equal(t, "", (*seen)[0].auth)
	assert.Equal(t, "Bearer late-token", (*seen)[1].auth)
}

func TestUnauthorizedClearsStoreAndRunsPolicyOnce(t *testing.T) {
	srv, _ := backend(t, http.StatusUnauthorized, `{"message":"Unauthorized","statusCode":401}`)
	store := session.NewMemory("expired")
	var calls int32
	c := New(Config{BaseURL: srv.URL}, store, func(ctx context.Context) {
		atomic.AddInt32(&calls, 1)
	})

	err := c.Get(context.Background(), "/students", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, store.Token())
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls))

	err = c.Delete(context.Background(), "/students/1", nil)
	require.Error(t, err)
	assert.EqualValues(t, 2, atomic.LoadInt32(&calls), "one policy call per 401 response")
}

func TestSuccessfulResponsePassesThrough(t *testing.T) {
	srv, seen := backend(t, http.StatusCreated, `{"student_id":"s1","first_name":"Rahul"}`)
	c := New(Config{BaseURL: srv.URL + "/"}, session.NewMemory("t"), func(context.Context) {
		t.Fatal("policy must not run on success")
	})

	in := map[string]string{"first_name": "Rahul"}
	var out domain.Student
	require.NoError(t, c.Post(context.Background(), "students", in, &out))

	assert.Equal(t, domain.ID("s1"), out.StudentID)
	got := (*seen)[0]
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/students", got.path)
	assert.Equal(t, "application/json", got.ctype)
	assert.JSONEq(t, `{"first_name":"Rahul"}`, string(got.body))
}

func TestQueryParameters(t *testing.T) {
	srv, seen := backend(t, http.StatusOK, `{"data":[],"meta":{"total":0,"page":1,"limit":5,"last_page":0}}`)
	c := New(Config{BaseURL: srv.URL}, nil, nil)

	q := url.Values{"search": {"ra hul"}, "page": {"2"}, "limit": {"5"}}
	var page domain.Page[domain.Student]
	require.NoError(t, c.Get(context.Background(), "/students", q, &page))

	assert.Equal(t, "ra hul", (*seen)[0].query.Get("search"))
	assert.Equal(t, "2", (*seen)[0].query.Get("page"))
	assert.Equal(t, 5, page.Meta.Limit)
}

func TestBackendErrors(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		reply    string
		sentinel error
		message  string
		messages []string
	}{
		{name: "string message", status: 400, reply: `{"message":"Email already exists"}`, sentinel: domain.ErrInvalidInput, message: "Email already exists"},
		{name: "message array", status: 400, reply: `{"message":["email must be an email","phone should not be empty"],"error":"Bad Request"}`,
			sentinel: domain.ErrInvalidInput, message: "email must be an email, phone should not be empty",
			messages: []string{"email must be an email", "phone should not be empty"}},
		{name: "not found", status: 404, reply: `{"message":"Student not found"}`, sentinel: domain.ErrNotFound, message: "Student not found"},
		{name: "conflict falls back to error field", status: 409, reply: `{"error":"Conflict"}`, sentinel: domain.ErrConflict, message: "Conflict"},
		{name: "server error without json", status: 500, reply: `oops`, sentinel: domain.ErrBackend},
		{name: "forbidden", status: 403, reply: `{"message":null}`, sentinel: domain.ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := backend(t, tt.status, tt.reply)
			c := New(Config{BaseURL: srv.URL}, session.NewMemory("t"), nil)

			err := c.Patch(context.Background(), "/students/1", map[string]string{}, nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.sentinel)

			var apiErr *Error
			require.True(t, errors.As(err, &apiErr))
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.message, apiErr.Message)
			assert.Equal(t, tt.messages, apiErr.Messages)
			assert.Equal(t, tt.status, StatusOf(err))
		})
	}
}

func TestTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	store := session.NewMemory("t")
	c := New(Config{BaseURL: srv.URL}, store, func(context.Context) {
		t.Fatal("policy must not run without a 401")
	})
	err := c.Get(context.Background(), "/students", nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, "Failed to load students", MessageOf(err, "Failed to load students"))
	assert.Equal(t, "t", store.Token(), "transport errors keep the session")
	assert.ErrorIs(t, c.Ping(context.Background()), domain.ErrBackendUnavailable)
}

func TestDecodeFailure(t *testing.T) {
	srv, _ := backend(t, http.StatusOK, `[1,2`)
	c := New(Config{BaseURL: srv.URL}, nil, nil)
	var out []domain.Course
	err := c.Get(context.Background(), "/courses", nil, &out)
	assert.ErrorIs(t, err, domain.ErrBackend)
}

func TestEmptyBodyIsFine(t *testing.T) {
	srv, _ := backend(t, http.StatusNoContent, ``)
	c := New(Config{BaseURL: srv.URL}, nil, nil)
	var out map[string]any
	assert.NoError(t, c.Delete(context.Background(), "/courses/1", &out))
}

func TestMessageOf(t *testing.T) {
	assert.Equal(t, "", MessageOf(nil, "fallback"))
	assert.Equal(t, "fallback", MessageOf(errors.New("boom"), "fallback"))
	assert.Equal(t, "fallback", MessageOf(&Error{StatusCode: 500}, "fallback"))
	assert.Equal(t, "Invalid", MessageOf(&Error{StatusCode: 400, Message: "Invalid"}, "fallback"))
}

func TestMetrics(t *testing.T) {
	srv, _ := backend(t, http.StatusOK, `{}`)
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	c := New(Config{BaseURL: srv.URL}, nil, nil, WithMetrics(m))

	require.NoError(t, c.Get(context.Background(), "/courses", nil, nil))
	require.NoError(t, c.Get(context.Background(), "/courses", nil, nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "200")))
}

func TestRequestBodyEncodingError(t *testing.T) {
	c := New(Config{BaseURL: "http://127.0.0.1:1"}, nil, nil)
	err := c.Post(context.Background(), "/students", map[string]any{"bad": make(chan int)}, nil)
	require.Error(t, err)
	var typeErr *json.UnsupportedTypeError
	assert.True(t, errors.As(err, &typeErr))
}
