package audit

import (
	"orgconnect/infrastructure/records"
	"orgconnect/models"
)

// MaxEntries is how many entries the log retains; older ones are dropped.
const MaxEntries = 50

// Log is a newest-first bounded audit log.
type Log struct {
	store   *records.Store[models.AuditEntry]
	evicted func(n int)
}

// NewLog seeds a log. seed must already be newest-first.
func NewLog(seed []models.AuditEntry) *Log {
	return &Log{store: records.NewStore(seed, records.WithCapacity(MaxEntries))}
}

// OnEvict registers a callback for entries dropped by Append.
func (l *Log) OnEvict(fn func(n int)) {
	l.evicted = fn
}

// Append prepends e and truncates the log to MaxEntries.
func (l *Log) Append(e models.AuditEntry) int {
	dropped := l.store.Prepend(e)
	if dropped > 0 && l.evicted != nil {
		l.evicted(dropped)
	}
	return dropped
}

// Entries returns a newest-first snapshot.
func (l *Log) Entries() []models.AuditEntry {
	return l.store.All()
}

func (l *Log) Len() int {
	return l.store.Len()
}

// SeverityCounts tallies entries per severity.
func SeverityCounts(entries []models.AuditEntry) map[string]int {
	return records.CountBy(entries, func(e models.AuditEntry) string { return e.Severity })
}
