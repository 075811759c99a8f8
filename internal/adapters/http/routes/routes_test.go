package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"sms-admin/internal/adapters/http/handlers"
	"sms-admin/internal/adapters/http/middleware"
	"sms-admin/internal/adapters/http/views"
	"sms-admin/internal/config"
	"sms-admin/internal/core/services"
	"sms-admin/internal/pkg/apiclient"
	"sms-admin/internal/pkg/sequence"
	"sms-admin/internal/pkg/session"
	"sms-admin/web"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendCall struct {
	Method string
	Path   string
	Query  url.Values
	Auth   string
	Body   map[string]any
}

type cannedReply struct {
	status int
	body   string
}

// backend is a fake student management API
type backend struct {
	mu      sync.Mutex
	replies map[string]cannedReply
	calls   []backendCall
}

func (b *backend) on(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.replies[method+" "+path] = cannedReply{status: status, body: body}
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	raw, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(raw, &body)

	b.mu.Lock()
	b.calls = append(b.calls, backendCall{
		Method: r.Method,
		Path:   r.URL.Path,
		Query:  r.URL.Query(),
		Auth:   r.Header.Get("Authorization"),
		Body:   body,
	})
	rep, ok := b.replies[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if !ok {
		rep = cannedReply{status: http.StatusNotFound, body: `{"message":"not found"}`}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(rep.status)
	_, _ = io.WriteString(w, rep.body)
}

func (b *backend) recorded(method, path string) []backendCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []backendCall
	for _, c := range b.calls {
		if c.Method == method && c.Path == path {
			out = append(out, c)
		}
	}
	return out
}

func (b *backend) total() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

type staticMonitor struct{ status services.HealthStatus }

func (m staticMonitor) Status() services.HealthStatus { return m.status }

type harness struct {
	app     *fiber.App
	backend *backend
	reg     *prometheus.Registry
	tracker *sequence.Tracker
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	be := &backend{replies: map[string]cannedReply{}}
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		AppMode: "prod",
		Session: config.SessionConfig{CookieName: "token", TTL: time.Hour},
		Cookie:  config.CookieConfig{SameSite: "lax"},
		RateLimit: config.RateLimitConfig{
			LoginPerMinute: 100,
		},
	}
	reg := prometheus.NewRegistry()
	tracker := sequence.NewTracker()

	app := fiber.New(fiber.Config{
		Views:        views.NewEngine(web.Views(), false),
		ErrorHandler: middleware.CustomErrorHandler,
	})
	middleware.Setup(app, cfg, nil)

	gw := handlers.NewGateway(
		apiclient.Config{BaseURL: srv.URL},
		session.CookieOptions{Name: "token", SameSite: "lax"},
		time.Hour,
		apiclient.NewMetrics(reg),
		tracker,
	)
	Setup(app, Deps{
		Config:   cfg,
		Gateway:  gw,
		Monitor:  staticMonitor{status: services.HealthStatus{Reachable: true, CheckedAt: time.Now()}},
		Registry: reg,
	})
	return &harness{app: app, backend: be, reg: reg, tracker: tracker}
}

func (h *harness) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := h.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func get(path, token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	return req
}

func post(path, token string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: "token", Value: token})
	}
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func setCookies(resp *http.Response) string {
	return strings.Join(resp.Header.Values("Set-Cookie"), "\n")
}

func TestRouteGuard(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200, `{"data":[],"meta":{"total":0,"page":1,"limit":10,"last_page":0}}`)

	tests := []struct {
		name     string
		path     string
		token    string
		status   int
		location string
	}{
		{name: "root without credential", path: "/", status: http.StatusFound, location: "/login"},
		{name: "protected without credential", path: "/dashboard", status: http.StatusFound, location: "/login"},
		{name: "protected subtree without credential", path: "/students/new", status: http.StatusFound, location: "/login"},
		{name: "library without credential", path: "/library/books", status: http.StatusFound, location: "/login"},
		{name: "login with credential", path: "/login", token: "tok", status: http.StatusFound, location: "/dashboard"},
		{name: "login without credential renders", path: "/login", status: http.StatusOK},
		{name: "protected with credential renders", path: "/students", token: "tok", status: http.StatusOK},
		{name: "unknown path is not redirected", path: "/nowhere", status: http.StatusNotFound},
		{name: "lookalike path is not redirected", path: "/studentsx", status: http.StatusNotFound},
		{name: "health is public", path: "/health", status: http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := h.do(t, get(tt.path, tt.token))
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.location, resp.Header.Get("Location"))
		})
	}
}

func TestRootWithCredentialGoesToDashboard(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, get("/", "tok"))
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func studentForm() url.Values {
	return url.Values{
		"first_name": {"Rahul"},
		"last_name":  {"Sharma"},
		"email":      {"rahul@example.com"},
		"phone":      {"9876543210"},
		"dob":        {"2000-01-15"},
		"gender":     {"Male"},
		"address":    {"12 MG Road, Delhi"},
		"status":     {"active"},
	}
}

func TestAddStudentSendsExactlyOnePost(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodPost, "/students", http.StatusCreated, `{"student_id":"s1","first_name":"Rahul"}`)

	resp := h.do(t, post("/students", "tok", studentForm()))

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/students", resp.Header.Get("Location"))
	assert.Contains(t, setCookies(resp), "flash=")

	posts := h.backend.recorded(http.MethodPost, "/students")
	require.Len(t, posts, 1)
	assert.Equal(t, 1, h.backend.total())
	assert.Equal(t, "Bearer tok", posts[0].Auth)
	assert.Equal(t, map[string]any{
		"first_name": "Rahul",
		"last_name":  "Sharma",
		"email":      "rahul@example.com",
		"phone":      "9876543210",
		"dob":        "2000-01-15",
		"gender":     "Male",
		"address":    "12 MG Road, Delhi",
		"status":     "active",
	}, posts[0].Body)
}

func TestAddStudentInvalidFormSendsNothing(t *testing.T) {
	h := newHarness(t)
	form := studentForm()
	form.Set("email", "not-an-email")
	form.Del("first_name")

	resp := h.do(t, post("/students", "tok", form))
	body := readBody(t, resp)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, 0, h.backend.total())
	assert.Contains(t, body, "first_name is required")
	assert.Contains(t, body, `value="Sharma"`, "submitted values are kept")
}

func TestAddStudentBackendErrorFlashesMessage(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodPost, "/students", http.StatusConflict, `{"message":"Email already exists"}`)

	resp := h.do(t, post("/students", "tok", studentForm()))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/students/new", resp.Header.Get("Location"))
	assert.Contains(t, setCookies(resp), url.QueryEscape("error:Email already exists"))
}

func studentPage(n int) string {
	rows := make([]string, n)
	for i := range rows {
		rows[i] = fmt.Sprintf(`{"student_id":"s%d","first_name":"Student","last_name":"%d","email":"s%d@example.com","status":"active"}`, i, i, i)
	}
	return "[" + strings.Join(rows, ",") + "]"
}

func TestStudentListPager(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200,
		`{"data":`+studentPage(5)+`,"meta":{"total":12,"page":1,"limit":5,"last_page":3}}`)

	resp := h.do(t, get("/students?limit=5", "tok"))
	body := readBody(t, resp)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, strings.Count(body, `data-page="`))
	assert.NotContains(t, body, "page-gap")
	assert.Contains(t, body, "Page 1 of 3 (12 total)")
	assert.Equal(t, 5, strings.Count(body, "@example.com</td>"))

	calls := h.backend.recorded(http.MethodGet, "/students")
	require.Len(t, calls, 1)
	assert.Equal(t, "5", calls[0].Query.Get("limit"))
	assert.Equal(t, "1", calls[0].Query.Get("page"))
}

func TestStudentListSinglePageHasNoPager(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200,
		`{"data":`+studentPage(3)+`,"meta":{"total":3,"page":1,"limit":10,"last_page":1}}`)

	body := readBody(t, h.do(t, get("/students", "tok")))
	assert.NotContains(t, body, `data-page="`)
}

func TestLiveSearchReturnsTableOnly(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200,
		`{"data":`+studentPage(1)+`,"meta":{"total":1,"page":1,"limit":10,"last_page":1}}`)

	req := get("/students?search=stud", "tok")
	req.Header.Set("X-Requested-With", "fetch")
	resp := h.do(t, req)
	body := readBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `id="students-table"`)
	assert.NotContains(t, body, "<html")
	assert.Equal(t, "stud", h.backend.recorded(http.MethodGet, "/students")[0].Query.Get("search"))
}

func TestListRequestsDoNotAccumulateTrackerState(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", http.StatusUnauthorized, `{"message":"Unauthorized"}`)
	h.backend.on(http.MethodGet, "/courses", 200, `{"data":[],"meta":{"total":0,"page":1,"limit":10,"last_page":0}}`)

	for i := 0; i < 50; i++ {
		resp := h.do(t, get("/students", fmt.Sprintf("bogus-%d", i)))
		require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	}
	for i := 0; i < 5; i++ {
		req := get("/courses?search=a", "tok")
		req.Header.Set("X-Requested-With", "fetch")
		require.Equal(t, http.StatusOK, h.do(t, req).StatusCode)
	}
	assert.Equal(t, 0, h.tracker.Len())
}

func TestBackend401MidHandlerEndsSession(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", http.StatusUnauthorized, `{"message":"Unauthorized"}`)

	t.Run("page navigation", func(t *testing.T) {
		resp := h.do(t, get("/students", "expired-token"))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Contains(t, setCookies(resp), "token=;")
	})

	t.Run("live search", func(t *testing.T) {
		req := get("/students?search=a", "expired-token")
		req.Header.Set("X-Requested-With", "fetch")
		resp := h.do(t, req)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("X-Location"))
		assert.Contains(t, setCookies(resp), "token=;")
	})

	t.Run("form submission", func(t *testing.T) {
		h.backend.on(http.MethodPost, "/students", http.StatusUnauthorized, `{"message":"Unauthorized"}`)
		resp := h.do(t, post("/students", "expired-token", studentForm()))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login", resp.Header.Get("Location"))
		assert.Len(t, h.backend.recorded(http.MethodPost, "/students"), 1)
	})
}

func TestLogin(t *testing.T) {
	t.Run("success stores the token", func(t *testing.T) {
		h := newHarness(t)
		h.backend.on(http.MethodPost, "/auth/login", http.StatusCreated, `{"access_token":"abc.def"}`)

		resp := h.do(t, post("/login", "", url.Values{"email": {"admin@gmail.com"}, "password": {"secret"}}))
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
		assert.Contains(t, setCookies(resp), "token=abc.def")

		calls := h.backend.recorded(http.MethodPost, "/auth/login")
		require.Len(t, calls, 1)
		assert.Empty(t, calls[0].Auth)
		assert.Equal(t, map[string]any{"email": "admin@gmail.com", "password": "secret"}, calls[0].Body)
	})

	t.Run("wrong credentials", func(t *testing.T) {
		h := newHarness(t)
		h.backend.on(http.MethodPost, "/auth/login", http.StatusUnauthorized, `{"message":"Invalid credentials"}`)

		resp := h.do(t, post("/login", "", url.Values{"email": {"admin@gmail.com"}, "password": {"nope"}}))
		body := readBody(t, resp)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "Invalid credentials")
		assert.NotContains(t, setCookies(resp), "token=")
	})

	t.Run("backend rejection keeps its status and message", func(t *testing.T) {
		h := newHarness(t)
		h.backend.on(http.MethodPost, "/auth/login", http.StatusTooManyRequests, `{"message":"Too many attempts"}`)

		resp := h.do(t, post("/login", "", url.Values{"email": {"admin@gmail.com"}, "password": {"secret"}}))
		body := readBody(t, resp)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Contains(t, body, "Too many attempts")
	})

	t.Run("backend down", func(t *testing.T) {
		h := newHarness(t)
		h.backend.on(http.MethodPost, "/auth/login", http.StatusInternalServerError, `oops`)

		resp := h.do(t, post("/login", "", url.Values{"email": {"admin@gmail.com"}, "password": {"secret"}}))
		body := readBody(t, resp)
		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		assert.Contains(t, body, "Login Failed")
	})

	t.Run("missing fields never reach the backend", func(t *testing.T) {
		h := newHarness(t)
		resp := h.do(t, post("/login", "", url.Values{"email": {"admin@gmail.com"}}))
		body := readBody(t, resp)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, body, "Email &amp; Password required")
		assert.Equal(t, 0, h.backend.total())
	})
}

func TestLogoutClearsCookie(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, post("/logout", "tok", url.Values{}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	assert.Contains(t, setCookies(resp), "token=;")
}

func TestDashboardCards(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200, `{"data":[],"meta":{"total":42,"page":1,"limit":1,"last_page":42}}`)
	h.backend.on(http.MethodGet, "/courses", 200, `{"data":[],"meta":{"total":7,"page":1,"limit":1,"last_page":7}}`)
	h.backend.on(http.MethodGet, "/library/books", 200, `[{"id":1,"title":"A"},{"id":2,"title":"B"}]`)
	h.backend.on(http.MethodGet, "/library/records", 200, `[{"id":1,"status":"ISSUED"},{"id":2,"status":"RETURNED"}]`)

	resp := h.do(t, get("/dashboard", "tok"))
	body := readBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<h2>Total Students</h2>\n    <p>42</p>")
	assert.Contains(t, body, "<h2>Total Courses</h2>\n    <p>7</p>")
	assert.Contains(t, body, "<h2>Total Books</h2>\n    <p>2</p>")
	assert.Contains(t, body, "<h2>Books Issued</h2>\n    <p>1</p>")
}

func TestEnrollmentCreateRedirectsToStudent(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodPost, "/enrollments", http.StatusCreated, `{}`)

	resp := h.do(t, post("/enrollments", "tok", url.Values{
		"student_id":  {"s1"},
		"course_id":   {"c1"},
		"enrolled_on": {"2024-06-01"},
		"status":      {"active"},
	}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/enrollments?student_id=s1", resp.Header.Get("Location"))

	posts := h.backend.recorded(http.MethodPost, "/enrollments")
	require.Len(t, posts, 1)
	assert.Equal(t, map[string]any{"student_id": "s1", "course_id": "c1", "enrolled_on": "2024-06-01", "status": "active"}, posts[0].Body)
}

func TestMarksListForStudent(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200, `{"data":[{"student_id":"s1","first_name":"Rahul","last_name":"Sharma","email":"r@example.com"}]}`)
	h.backend.on(http.MethodGet, "/marks/student/s1", 200,
		`[{"marks_id":1,"exam_type":"Final","score":45,"max_score":50,"course":{"name":"Physics"}}]`)

	body := readBody(t, h.do(t, get("/marks?student_id=s1", "tok")))
	assert.Contains(t, body, "Physics")
	assert.Contains(t, body, "90.0%")
	assert.Contains(t, body, `<option value="s1" selected>`)
}

func TestMarksBlankScoreSendsNothing(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200, `{"data":[]}`)
	h.backend.on(http.MethodGet, "/courses", 200, `{"data":[]}`)
	h.backend.on(http.MethodPost, "/marks", http.StatusCreated, `{}`)

	resp := h.do(t, post("/marks", "tok", url.Values{
		"student_id": {"1"},
		"course_id":  {"c1"},
		"exam_type":  {"Final"},
		"score":      {""},
		"max_score":  {"100"},
	}))
	body := readBody(t, resp)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Empty(t, h.backend.recorded(http.MethodPost, "/marks"))
	assert.Contains(t, body, "score is a required field")
}

func TestMarksZeroScoreIsSent(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodPost, "/marks", http.StatusCreated, `{}`)

	resp := h.do(t, post("/marks", "tok", url.Values{
		"student_id": {"1"},
		"course_id":  {"c1"},
		"exam_type":  {"Final"},
		"score":      {"0"},
		"max_score":  {"100"},
	}))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/marks?student_id=1", resp.Header.Get("Location"))

	posts := h.backend.recorded(http.MethodPost, "/marks")
	require.Len(t, posts, 1)
	assert.Equal(t, 0.0, posts[0].Body["score"])
}

func TestLibraryRecordsArePagedLocally(t *testing.T) {
	h := newHarness(t)
	records := make([]string, 12)
	for i := range records {
		records[i] = fmt.Sprintf(`{"id":%d,"status":"ISSUED","issuedAt":"2024-05-%02dT10:00:00Z","student":{"first_name":"S%d"},"book":{"title":"Book %d"}}`, i+1, i+1, i+1, i+1)
	}
	h.backend.on(http.MethodGet, "/library/records", 200, "["+strings.Join(records, ",")+"]")

	body := readBody(t, h.do(t, get("/library?page=2", "tok")))
	assert.Equal(t, 2, strings.Count(body, `href="/library/view/`))
	assert.Contains(t, body, "Book 11")
	assert.Equal(t, 2, strings.Count(body, `data-page="`))
}

func TestLibraryAssignRequiresBothSelections(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200, `[]`)
	h.backend.on(http.MethodGet, "/library/books", 200, `[]`)

	resp := h.do(t, post("/library/add", "tok", url.Values{"bookId": {"b1"}}))
	body := readBody(t, resp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Select book &amp; student")
	assert.Empty(t, h.backend.recorded(http.MethodPost, "/library/assign"))
}

func TestSessionEndpoint(t *testing.T) {
	h := newHarness(t)

	var env struct {
		Success   bool                 `json:"success"`
		Data      handlers.SessionInfo `json:"data"`
		RequestID string               `json:"request_id"`
	}
	resp := h.do(t, get("/api/v1/session", ""))
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	assert.True(t, env.Success)
	assert.False(t, env.Data.Authenticated)
	assert.NotEmpty(t, env.RequestID)
}

func TestMetricsEndpoint(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students", 200, `{"data":[],"meta":{}}`)
	h.do(t, get("/students", "tok"))
	h.do(t, get("/dashboard", ""))

	body := readBody(t, h.do(t, get("/metrics", "")))
	assert.Contains(t, body, `sms_admin_backend_requests_total{method="GET",status="200"} 1`)
	assert.Contains(t, body, `sms_admin_guard_redirects_total{target="/login"} 1`)
}

func TestStaticAssetsBypassTheGuard(t *testing.T) {
	h := newHarness(t)
	resp := h.do(t, get("/static/app.css", ""))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Cache-Control"), "public")
}

func TestMissingRecordFlashesNotFound(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/students/404", http.StatusNotFound, `{}`)

	resp := h.do(t, get("/students/404", "tok"))
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/students", resp.Header.Get("Location"))
	assert.Contains(t, setCookies(resp), url.QueryEscape("error:Student not found"))
}

func TestCourseDetail(t *testing.T) {
	h := newHarness(t)
	h.backend.on(http.MethodGet, "/courses/c1", 200, `{"course_id":"c1","name":"Physics","credits":4,"description":"Mechanics"}`)

	resp := h.do(t, get("/courses/c1", "tok"))
	body := readBody(t, resp)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<dd>Mechanics</dd>")
	assert.Contains(t, body, "<dd>4</dd>")
}
