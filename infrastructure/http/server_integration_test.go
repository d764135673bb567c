package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"orgconnect/frontend/login"
	"orgconnect/frontend/workspace"
	"orgconnect/infrastructure/config"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/password"
	"orgconnect/infrastructure/scheduler"
	"orgconnect/infrastructure/seed"
	"orgconnect/infrastructure/session"
	"orgconnect/infrastructure/sqlite"
)

var integrationStart = time.Date(2024, 1, 25, 12, 0, 0, 0, time.UTC)

type integrationEnv struct {
	server     *httptest.Server
	db         *sqlite.DB
	sched      *scheduler.Scheduler
	workspaces *workspace.Registry
}

func setupIntegrationServer(t *testing.T) (*integrationEnv, *http.Client) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "server-integration.db")
	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("runtime caller unavailable")
	}
	migrationsDir := filepath.Join(filepath.Dir(file), "..", "sqlite", "migrations")
	if err := sqlite.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}

	hasher := password.NewHasher(password.Params{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32})
	for _, u := range seed.DemoAccounts() {
		if err := login.UpsertAccount(context.Background(), db, hasher, u, "password"); err != nil {
			t.Fatalf("seed account %s: %v", u.Email, err)
		}
	}

	sim := config.Default().Simulation
	sim.Seed = 7
	sched := scheduler.New()
	registry := workspace.NewRegistry(sched, sim, func() time.Time { return integrationStart })

	s := NewServer("127.0.0.1:0", db, session.NewStore(db, time.Hour), registry, hasher, metrics.NewRegistry())
	s.Now = func() time.Time { return integrationStart }
	ts := httptest.NewServer(s.Handler())
	env := &integrationEnv{server: ts, db: db, sched: sched, workspaces: registry}
	t.Cleanup(func() {
		env.server.Close()
		registry.CloseAll()
		_ = env.db.Close()
	})

	return env, newHTTPClient(t)
}

func newHTTPClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("cookie jar: %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, baseURL, path string, data url.Values) *http.Response {
	t.Helper()
	if data == nil {
		data = url.Values{}
	}
	if token := csrfToken(t, client, baseURL); token != "" {
		data.Set("_csrf", token)
	}
	resp, err := client.PostForm(baseURL+path, data)
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	return resp
}

func get(t *testing.T, client *http.Client, baseURL, path string) *http.Response {
	t.Helper()
	resp, err := client.Get(baseURL + path)
	if err != nil {
		t.Fatalf("GET %s failed: %v", path, err)
	}
	return resp
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return string(body)
}

func csrfToken(t *testing.T, client *http.Client, baseURL string) string {
	t.Helper()
	u, err := url.Parse(baseURL)
	if err != nil {
		t.Fatalf("parse base url: %v", err)
	}
	for _, c := range client.Jar.Cookies(u) {
		if c.Name == "X-CSRF-Token" {
			return c.Value
		}
	}
	return ""
}

func loginAs(t *testing.T, client *http.Client, baseURL, email, rawPassword string) {
	t.Helper()

	resp := get(t, client, baseURL, "/login")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected login page 200, got %d", resp.StatusCode)
	}
	_ = resp.Body.Close()

	resp = postForm(t, client, baseURL, "/login", url.Values{
		"email":    {email},
		"password": {rawPassword},
	})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login 303, got %d", resp.StatusCode)
	}
	if location := resp.Header.Get("Location"); location != "/app/dashboard" {
		t.Fatalf("unexpected login redirect: %s", location)
	}
	_ = resp.Body.Close()
}

func TestCSRFPostWithoutTokenRejected(t *testing.T) {
	env, client := setupIntegrationServer(t)

	// No GET first: no CSRF token available in cookie or form.
	resp, err := client.PostForm(env.server.URL+"/login", url.Values{
		"email":    {"john@techcorp.com"},
		"password": {"password"},
	})
	if err != nil {
		t.Fatalf("post login: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for missing csrf, got %d", resp.StatusCode)
	}
}

func TestCSRFPostWithoutToken_SameOriginRefererAccepted(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/app/projects", strings.NewReader(url.Values{"name": {"Referer Project"}}.Encode()))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Referer", env.server.URL+"/app/projects/new")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("post project without csrf token: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected same-origin csrf fallback 303, got %d", resp.StatusCode)
	}
	if !strings.Contains(resp.Header.Get("Location"), "message=Project+created") {
		t.Fatalf("unexpected create project redirect: %s", resp.Header.Get("Location"))
	}
}

func TestCSRFPostWithoutToken_CrossOriginRejected(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")

	req, err := http.NewRequest(http.MethodPost, env.server.URL+"/app/projects", strings.NewReader(""))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Origin", "https://evil.example")
	req.Header.Set("Referer", "https://evil.example/attack")

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("post cross-origin request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for cross-origin missing csrf token, got %d", resp.StatusCode)
	}
}

func TestRootRedirects(t *testing.T) {
	env, client := setupIntegrationServer(t)

	resp := get(t, client, env.server.URL, "/")
	_ = resp.Body.Close()
	if resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %q", resp.Header.Get("Location"))
	}

	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")
	resp = get(t, client, env.server.URL, "/")
	_ = resp.Body.Close()
	if resp.Header.Get("Location") != "/app/dashboard" {
		t.Fatalf("expected redirect to dashboard, got %q", resp.Header.Get("Location"))
	}
}

func TestAppRoutesRequireSession(t *testing.T) {
	env, client := setupIntegrationServer(t)

	for _, path := range []string{"/app/dashboard", "/app/invoices", "/app/audit/export.csv", "/app/api/metrics"} {
		resp := get(t, client, env.server.URL, path)
		_ = resp.Body.Close()
		if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/login" {
			t.Fatalf("%s: expected redirect to /login, got %d %q", path, resp.StatusCode, resp.Header.Get("Location"))
		}
	}
}

func TestLoginInvalidCredentialsShowsHint(t *testing.T) {
	env, client := setupIntegrationServer(t)
	_ = readBody(t, get(t, client, env.server.URL, "/login"))

	resp := postForm(t, client, env.server.URL, "/login", url.Values{"email": {"john@techcorp.com"}, "password": {"wrong"}})
	_ = resp.Body.Close()
	location := resp.Header.Get("Location")
	if !strings.HasPrefix(location, "/login?") {
		t.Fatalf("expected redirect back to login, got %q", location)
	}

	body := readBody(t, get(t, client, env.server.URL, location))
	if !strings.Contains(body, "Invalid credentials. Try john@techcorp.com or sarah@innovate.com with password") {
		t.Fatalf("expected credentials hint on login page")
	}
}

func TestDashboardWelcomesUser(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "sarah@innovate.com", "password")

	body := readBody(t, get(t, client, env.server.URL, "/app/dashboard"))
	if !strings.Contains(body, "Welcome back, Sarah Johnson!") {
		t.Fatalf("expected welcome line for Sarah")
	}
	if !strings.Contains(body, "Innovate Ltd") {
		t.Fatalf("expected organization name on dashboard")
	}
	if env.workspaces.Len() != 1 {
		t.Fatalf("expected one open workspace, got %d", env.workspaces.Len())
	}
}

func TestFeedbackSubmitPrependsEntry(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")
	_ = readBody(t, get(t, client, env.server.URL, "/app/feedback"))

	resp := postForm(t, client, env.server.URL, "/app/feedback", url.Values{
		"projectId": {"2"},
		"rating":    {"4"},
		"comment":   {"Looks good"},
	})
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", resp.StatusCode)
	}

	body := readBody(t, get(t, client, env.server.URL, "/app/feedback?project=2"))
	first := strings.Index(body, "Looks good")
	older := strings.Index(body, "The iOS version needs some UI adjustments")
	if first < 0 || older < 0 || first > older {
		t.Fatalf("expected new feedback above the existing Mobile App entry")
	}
}

func TestAuditExportCSV(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")

	resp := get(t, client, env.server.URL, "/app/audit/export.csv?action=payment_processed")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if cd := resp.Header.Get("Content-Disposition"); cd != `attachment; filename="audit-log-2024-01-25.csv"` {
		t.Fatalf("unexpected content disposition %q", cd)
	}
	lines := strings.Split(strings.TrimRight(readBody(t, resp), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0] != "ID,Timestamp,Action,User,Organization,Resource,Severity,IP Address,Hash" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "AUDIT-2024-005,") {
		t.Fatalf("unexpected row %q", lines[1])
	}
}

func TestSchedulerAdvanceUpdatesAuditPage(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")
	_ = readBody(t, get(t, client, env.server.URL, "/app/dashboard"))

	env.sched.Advance(integrationStart.Add(10 * time.Second))

	body := readBody(t, get(t, client, env.server.URL, "/app/audit"))
	if !strings.Contains(body, " performed") {
		t.Fatalf("expected synthetic audit entry after a tick")
	}
}

func TestInvoicePDFDownload(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")

	resp := get(t, client, env.server.URL, "/app/invoices/INV-2024-001/pdf")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	if body := readBody(t, resp); !strings.HasPrefix(body, "%PDF-") {
		t.Fatalf("expected pdf body")
	}

	resp = get(t, client, env.server.URL, "/app/invoices/INV-1999-000")
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusSeeOther || !strings.Contains(resp.Header.Get("Location"), "/app/invoices?error=") {
		t.Fatalf("expected redirect with error for unknown invoice, got %d %q", resp.StatusCode, resp.Header.Get("Location"))
	}
}

func TestMetricsAPIReturnsLiveCounters(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")

	resp := get(t, client, env.server.URL, "/app/api/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var payload workspace.MetricsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode metrics: %v", err)
	}
	_ = resp.Body.Close()
	if payload.Dashboard.TeamMembers != 24 || payload.Analytics.UpcomingDeadlines != 8 {
		t.Fatalf("unexpected initial metrics: %+v", payload)
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")
	_ = readBody(t, get(t, client, env.server.URL, "/app/dashboard"))

	body := readBody(t, get(t, client, env.server.URL, "/metrics"))
	for _, name := range []string{"orgconnect_open_workspaces", "orgconnect_logins_total", "orgconnect_views_rendered_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition", name)
		}
	}
}

func TestLogoutClosesWorkspace(t *testing.T) {
	env, client := setupIntegrationServer(t)
	loginAs(t, client, env.server.URL, "john@techcorp.com", "password")
	_ = readBody(t, get(t, client, env.server.URL, "/app/dashboard"))
	if env.workspaces.Len() != 1 || env.sched.Len() != 3 {
		t.Fatalf("expected one workspace with 3 jobs, got %d / %d", env.workspaces.Len(), env.sched.Len())
	}

	resp := postForm(t, client, env.server.URL, "/logout", nil)
	_ = resp.Body.Close()
	if resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected redirect to /login, got %q", resp.Header.Get("Location"))
	}
	if env.workspaces.Len() != 0 || env.sched.Len() != 0 {
		t.Fatalf("expected workspace and jobs to be gone, got %d / %d", env.workspaces.Len(), env.sched.Len())
	}

	resp = get(t, client, env.server.URL, "/app/dashboard")
	_ = resp.Body.Close()
	if resp.Header.Get("Location") != "/login" {
		t.Fatalf("expected app to require login again, got %q", resp.Header.Get("Location"))
	}
}

func TestHealthAndAssets(t *testing.T) {
	env, client := setupIntegrationServer(t)

	if body := readBody(t, get(t, client, env.server.URL, "/health")); body != "ok" {
		t.Fatalf("unexpected health body %q", body)
	}
	resp := get(t, client, env.server.URL, "/assets/app.css")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected stylesheet, got %d", resp.StatusCode)
	}
	_ = readBody(t, resp)
}
