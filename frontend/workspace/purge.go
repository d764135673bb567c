package workspace

import (
	"context"
	"log/slog"
	"time"

	"orgconnect/infrastructure/scheduler"
)

// JobSessionPurge names the expired-session sweep.
const JobSessionPurge = "session_purge"

// PurgeFunc deletes expired sessions and returns their tokens.
type PurgeFunc func(ctx context.Context) ([]string, error)

// PurgeJob sweeps expired sessions every interval, closes the workspaces
// they owned and forgets stale closed tokens.
func (r *Registry) PurgeJob(purge PurgeFunc, interval time.Duration) scheduler.Job {
	return scheduler.Job{
		Name:     JobSessionPurge,
		Interval: interval,
		Tick: func(now time.Time) {
			r.forgetClosed(now)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tokens, err := purge(ctx)
			if err != nil {
				slog.Error("session purge failed", slog.Any("err", err))
				return
			}
			closed := 0
			for _, token := range tokens {
				if r.Close(token) {
					closed++
				}
			}
			if len(tokens) > 0 {
				slog.Info("purged expired sessions", slog.Int("sessions", len(tokens)), slog.Int("workspaces", closed))
			}
		},
	}
}
