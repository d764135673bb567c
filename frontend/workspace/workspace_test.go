package workspace

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orgconnect/frontend/projects"
	sessioncontext "orgconnect/frontend/shared/context"
	"orgconnect/infrastructure/config"
	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/scheduler"
	"orgconnect/models"
)

var (
	t0   = time.Date(2024, 1, 25, 10, 0, 0, 0, time.UTC)
	john = models.User{ID: "1", Name: "John Smith", Organization: "TechCorp Solutions"}
)

func newTestRegistry() (*Registry, *scheduler.Scheduler) {
	sched := scheduler.New()
	sim := config.Default().Simulation
	sim.Seed = 42
	return NewRegistry(sched, sim, func() time.Time { return t0 }), sched
}

func TestOpen_RegistersJobsOnce(t *testing.T) {
	reg, sched := newTestRegistry()

	ws, err := reg.Open("tok", john)
	require.NoError(t, err)
	require.Equal(t, 3, sched.Len())

	again, err := reg.Open("tok", john)
	require.NoError(t, err)
	require.Same(t, ws, again)
	require.Equal(t, 3, sched.Len())
	require.Equal(t, 1, reg.Len())
}

func TestWorkspaces_AreIsolated(t *testing.T) {
	reg, _ := newTestRegistry()
	a, err := reg.Open("a", john)
	require.NoError(t, err)
	b, err := reg.Open("b", john)
	require.NoError(t, err)

	_, err = a.Projects.Create(projects.CreateInput{Name: "Only in A"}, john)
	require.NoError(t, err)
	require.Equal(t, 6, a.Projects.Len())
	require.Equal(t, 5, b.Projects.Len())
}

func TestAdvance_TicksEveryView(t *testing.T) {
	reg, sched := newTestRegistry()
	ws, err := reg.Open("tok", john)
	require.NoError(t, err)
	auditBefore := ws.Audit.Len()

	for sec := 1; sec <= 30; sec++ {
		sched.Advance(t0.Add(time.Duration(sec) * time.Second))
	}

	require.Equal(t, auditBefore+3, ws.Audit.Len())
	require.Equal(t, t0.Add(30*time.Second), ws.Dashboard.Snapshot().UpdatedAt)
	require.Equal(t, t0.Add(30*time.Second), ws.Analytics.Snapshot().UpdatedAt)
}

func TestClose_StopsJobs(t *testing.T) {
	reg, sched := newTestRegistry()
	ws, err := reg.Open("tok", john)
	require.NoError(t, err)
	before := ws.Audit.Len()

	require.True(t, reg.Close("tok"))
	require.False(t, reg.Close("tok"))
	require.Zero(t, sched.Len())
	require.Zero(t, reg.Len())

	sched.Advance(t0.Add(time.Minute))
	require.Equal(t, before, ws.Audit.Len())
	_, ok := reg.Get("tok")
	require.False(t, ok)
}

func TestOpen_RefusesClosedToken(t *testing.T) {
	reg, sched := newTestRegistry()
	_, err := reg.Open("tok", john)
	require.NoError(t, err)
	require.True(t, reg.Close("tok"))

	_, err = reg.Open("tok", john)
	require.ErrorIs(t, err, ErrClosed)
	require.Zero(t, reg.Len())
	require.Zero(t, sched.Len())

	other, err := reg.Open("other", john)
	require.NoError(t, err)
	require.Equal(t, "other", other.Token)
}

func TestMiddleware_RequestAfterCloseDoesNotReopen(t *testing.T) {
	reg, sched := newTestRegistry()
	calls := 0
	handler := reg.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { calls++ }))
	ctx := sessioncontext.NewContextWithSession(context.Background(), models.Session{ID: "tok", User: john})

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/dashboard", nil).WithContext(ctx))
	require.Equal(t, 1, calls)
	require.Equal(t, 3, sched.Len())

	reg.Close("tok")

	// Same session context as a request that loaded it before logout.
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/dashboard", nil).WithContext(ctx))
	require.Equal(t, http.StatusSeeOther, rr.Code)
	require.Equal(t, "/login", rr.Header().Get("Location"))
	require.Equal(t, 1, calls)
	require.Zero(t, reg.Len())
	require.Zero(t, sched.Len())
}

func TestPurgeJob_ForgetsStaleClosedTokens(t *testing.T) {
	reg, _ := newTestRegistry()
	reg.Close("gone")
	job := reg.PurgeJob(func(context.Context) ([]string, error) { return nil, nil }, time.Minute)

	job.Tick(t0.Add(ClosedRetention - time.Second))
	require.True(t, reg.isClosed("gone"))

	job.Tick(t0.Add(ClosedRetention))
	require.False(t, reg.isClosed("gone"))
}

func TestOpen_InvalidIntervalFails(t *testing.T) {
	sched := scheduler.New()
	sim := config.Default().Simulation
	sim.AuditInterval = 0
	reg := NewRegistry(sched, sim, func() time.Time { return t0 })

	_, err := reg.Open("tok", john)
	require.Error(t, err)
	require.Zero(t, sched.Len())
	require.Zero(t, reg.Len())
}

func TestPurgeJob_ClosesExpiredWorkspaces(t *testing.T) {
	reg, _ := newTestRegistry()
	_, err := reg.Open("old", john)
	require.NoError(t, err)
	_, err = reg.Open("fresh", john)
	require.NoError(t, err)

	job := reg.PurgeJob(func(context.Context) ([]string, error) { return []string{"old", "never-opened"}, nil }, time.Minute)
	job.Tick(t0)

	_, ok := reg.Get("old")
	require.False(t, ok)
	_, ok = reg.Get("fresh")
	require.True(t, ok)
}

func TestPurgeJob_ErrorKeepsWorkspaces(t *testing.T) {
	reg, _ := newTestRegistry()
	_, err := reg.Open("tok", john)
	require.NoError(t, err)

	reg.PurgeJob(func(context.Context) ([]string, error) { return nil, errors.New("db down") }, time.Minute).Tick(t0)
	require.Equal(t, 1, reg.Len())
}

func TestMiddleware_PutsWorkspaceOnContext(t *testing.T) {
	reg, _ := newTestRegistry()
	var seen *Workspace
	handler := reg.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
		MetricsQueryHandler(w, r)
	}))

	req := httptest.NewRequest(http.MethodGet, "/app/api/metrics", nil)
	req = req.WithContext(sessioncontext.NewContextWithSession(req.Context(), models.Session{ID: "tok", User: john}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, seen)
	require.Equal(t, "tok", seen.Token)

	var body map[string]map[string]float64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Equal(t, float64(8), body["dashboard"]["activeProjects"])
	require.Equal(t, float64(78), body["analytics"]["projectCompletionRate"])
}

func TestMiddleware_NoSessionRedirects(t *testing.T) {
	reg, _ := newTestRegistry()
	handler := reg.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		t.Fatal("next must not run")
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/app/dashboard", nil))
	require.Equal(t, http.StatusSeeOther, rr.Code)
}

func TestStateResolvers(t *testing.T) {
	reg, _ := newTestRegistry()
	ws, err := reg.Open("tok", john)
	require.NoError(t, err)
	ctx := NewContext(context.Background(), ws)

	f, ok := FeedbackState(ctx)
	require.True(t, ok)
	require.Same(t, ws.Feedback, f)
	inv, ok := InvoicesState(ctx)
	require.True(t, ok)
	require.Len(t, inv.List(records.Criteria{}, t0), 5)

	_, ok = AuditState(context.Background())
	require.False(t, ok)
}
