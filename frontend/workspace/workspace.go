package workspace

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"orgconnect/frontend/analytics"
	"orgconnect/frontend/auditlog"
	"orgconnect/frontend/dashboard"
	"orgconnect/frontend/feedback"
	"orgconnect/frontend/invoices"
	"orgconnect/frontend/projects"
	"orgconnect/infrastructure/cache"
	"orgconnect/infrastructure/config"
	"orgconnect/infrastructure/metrics"
	"orgconnect/infrastructure/scheduler"
	"orgconnect/models"
)

// Job names, also used as the scheduler tick metric label.
const (
	JobDashboard = "dashboard"
	JobAnalytics = "analytics"
	JobAudit     = "audit"
)

// ErrClosed is returned by Open for a session whose workspace was already
// closed. A closed session never gets its workspace back.
var ErrClosed = errors.New("workspace closed")

// ClosedRetention is how long a closed token stays refused. It only has to
// outlast requests that loaded their session before the close.
var ClosedRetention = 10 * time.Minute

// Workspace is the live state of one signed-in session. Every view owns
// its state; nothing is shared between views or sessions.
type Workspace struct {
	Token     string
	User      models.User
	OpenedAt  time.Time
	Dashboard *dashboard.State
	Projects  *projects.State
	Invoices  *invoices.State
	Feedback  *feedback.State
	Audit     *auditlog.State
	Analytics *analytics.State

	stopOnce sync.Once
	stops    []func()
}

func (w *Workspace) stop() {
	w.stopOnce.Do(func() {
		for _, stop := range w.stops {
			stop()
		}
	})
}

// Registry opens and closes workspaces and keeps their jobs on the shared
// scheduler.
type Registry struct {
	sched *scheduler.Scheduler
	sim   config.SimulationConfig
	now   func() time.Time
	open  *cache.Map[string, *Workspace]
	seq   atomic.Uint64

	mu     sync.Mutex
	closed map[string]time.Time
}

func NewRegistry(sched *scheduler.Scheduler, sim config.SimulationConfig, now func() time.Time) *Registry {
	if now == nil {
		now = time.Now
	}
	return &Registry{
		sched: sched,
		sim:   sim,
		now:   now,
		open:   cache.New[string, *Workspace](),
		closed: make(map[string]time.Time),
	}
}

// Open returns the workspace for token, creating it with fresh sample data
// and starting its jobs on first use. A token that was closed gets
// ErrClosed.
func (r *Registry) Open(token string, user models.User) (*Workspace, error) {
	if ws, ok := r.open.Get(token); ok {
		return ws, nil
	}
	if r.isClosed(token) {
		return nil, ErrClosed
	}

	ws, err := r.build(token, user)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	if _, closed := r.closed[token]; closed {
		r.mu.Unlock()
		ws.stop()
		return nil, ErrClosed
	}
	got, existed := r.open.GetOrAdd(token, func() *Workspace { return ws })
	r.mu.Unlock()
	if existed {
		// Lost a race with a concurrent request for the same session.
		ws.stop()
		return got, nil
	}
	metrics.OpenWorkspaces.Inc()
	return got, nil
}

func (r *Registry) build(token string, user models.User) (*Workspace, error) {
	n := r.seq.Add(1)
	seed := r.sim.Seed
	if seed == 0 {
		seed = uint64(r.now().UnixNano())
	}
	rng := func(stream uint64) *rand.Rand {
		return rand.New(rand.NewPCG(seed, n<<2|stream))
	}

	ws := &Workspace{
		Token:     token,
		User:      user,
		OpenedAt:  r.now(),
		Dashboard: dashboard.NewState(rng(0)),
		Projects:  projects.NewState(),
		Invoices:  invoices.NewState(),
		Feedback:  feedback.NewState(),
		Audit:     auditlog.NewState(rng(1), func(n int) { metrics.AuditEvicted.Add(float64(n)) }),
		Analytics: analytics.NewState(rng(2)),
	}

	jobs := []scheduler.Job{
		{Name: JobDashboard, Interval: r.sim.DashboardInterval, Tick: ws.Dashboard.Tick},
		{Name: JobAnalytics, Interval: r.sim.AnalyticsInterval, Tick: ws.Analytics.Tick},
		{Name: JobAudit, Interval: r.sim.AuditInterval, Tick: ws.Audit.Tick},
	}
	start := r.now()
	for _, job := range jobs {
		stop, err := r.sched.Add(job, start)
		if err != nil {
			ws.stop()
			return nil, fmt.Errorf("schedule %s job: %w", job.Name, err)
		}
		ws.stops = append(ws.stops, stop)
	}
	return ws, nil
}

func (r *Registry) Get(token string) (*Workspace, bool) {
	return r.open.Get(token)
}

func (r *Registry) isClosed(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.closed[token]
	return ok
}

// Close stops the jobs of token's workspace and refuses to reopen it. It
// reports whether a workspace was open.
func (r *Registry) Close(token string) bool {
	r.mu.Lock()
	r.closed[token] = r.now()
	ws, ok := r.open.Delete(token)
	r.mu.Unlock()
	if !ok {
		return false
	}
	ws.stop()
	metrics.OpenWorkspaces.Dec()
	return true
}

// CloseAll closes every open workspace.
func (r *Registry) CloseAll() {
	for _, token := range r.open.Keys() {
		r.Close(token)
	}
}

// forgetClosed drops tombstones older than ClosedRetention.
func (r *Registry) forgetClosed(now time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for token, at := range r.closed {
		if now.Sub(at) >= ClosedRetention {
			delete(r.closed, token)
			n++
		}
	}
	return n
}

func (r *Registry) Len() int {
	return r.open.Len()
}
