package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"sync"
	"time"
)

// Job is a recurring tick. Tick receives the time the scheduler was
// advanced to, not wall-clock time.
type Job struct {
	Name     string
	Interval time.Duration
	Tick     func(now time.Time)
}

type entry struct {
	id   uint64
	job  Job
	next time.Time
}

// Scheduler runs jobs when the host advances it. Nothing fires on its own:
// tests call Advance with chosen instants, the server calls Run.
type Scheduler struct {
	mu     sync.Mutex
	nextID uint64
	jobs   map[uint64]*entry
	onTick func(name string)
}

func New() *Scheduler {
	return &Scheduler{jobs: make(map[uint64]*entry)}
}

// OnTick registers an observer called after every tick.
func (s *Scheduler) OnTick(fn func(name string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = fn
}

// Add schedules job to first fire one interval after now. The returned
// function removes it; calling it more than once is harmless.
func (s *Scheduler) Add(job Job, now time.Time) (func(), error) {
	if job.Interval <= 0 {
		return nil, errors.New("job interval must be positive")
	}
	if job.Tick == nil {
		return nil, errors.New("job tick is required")
	}
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.jobs[id] = &entry{id: id, job: job, next: now.Add(job.Interval)}
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.jobs, id)
			s.mu.Unlock()
		})
	}, nil
}

// Len returns the number of scheduled jobs.
func (s *Scheduler) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

// Advance fires every job due at or before now, once, and returns how many
// ran. A job that fell more than one interval behind is not replayed; its
// next run is rescheduled from now.
func (s *Scheduler) Advance(now time.Time) int {
	s.mu.Lock()
	due := make([]*entry, 0)
	for _, e := range s.jobs {
		if e.next.After(now) {
			continue
		}
		e.next = e.next.Add(e.job.Interval)
		if !e.next.After(now) {
			e.next = now.Add(e.job.Interval)
		}
		due = append(due, e)
	}
	onTick := s.onTick
	s.mu.Unlock()

	sort.Slice(due, func(i, j int) bool { return due[i].id < due[j].id })
	for _, e := range due {
		// A job removed by an earlier tick in this batch must not fire.
		if !s.scheduled(e.id) {
			continue
		}
		e.job.Tick(now)
		if onTick != nil {
			onTick(e.job.Name)
		}
	}
	return len(due)
}

func (s *Scheduler) scheduled(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.jobs[id]
	return ok
}

// Run advances the scheduler on wall-clock time every resolution until ctx
// is cancelled.
func (s *Scheduler) Run(ctx context.Context, resolution time.Duration) error {
	if resolution <= 0 {
		return errors.New("scheduler resolution must be positive")
	}
	ticker := time.NewTicker(resolution)
	defer ticker.Stop()
	slog.Info("scheduler started", slog.Duration("resolution", resolution))
	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return ctx.Err()
		case now := <-ticker.C:
			s.Advance(now)
		}
	}
}
