package auditlog

import (
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"time"

	"orgconnect/infrastructure/audit"
	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

// State is one workspace's audit log. The log bounds itself; mu only
// serializes use of rng.
type State struct {
	mu  sync.Mutex
	rng *rand.Rand
	log *audit.Log
}

// NewState seeds the log. onEvict, when set, receives the count of entries
// each append drops.
func NewState(rng *rand.Rand, onEvict func(n int)) *State {
	log := audit.NewLog(seed.AuditEntries())
	if onEvict != nil {
		log.OnEvict(onEvict)
	}
	return &State{rng: rng, log: log}
}

// Tick records one synthetic background event.
func (s *State) Tick(now time.Time) {
	s.mu.Lock()
	entry := audit.Synthetic(s.rng, now)
	s.mu.Unlock()
	s.log.Append(entry)
}

func (s *State) List(c records.Criteria, now time.Time) []models.AuditEntry {
	return records.Filter(s.log.Entries(), c, now)
}

func (s *State) Len() int {
	return s.log.Len()
}

// Actions lists the distinct actions currently in the log, sorted.
func (s *State) Actions() []string {
	counts := records.CountBy(s.log.Entries(), func(e models.AuditEntry) string { return e.Action })
	out := make([]string, 0, len(counts))
	for action := range counts {
		out = append(out, action)
	}
	sort.Strings(out)
	return out
}

// NormalizeActionFilter keeps an action present in the log, else all.
func (s *State) NormalizeActionFilter(raw string) string {
	v := strings.TrimSpace(raw)
	for _, action := range s.Actions() {
		if v == action {
			return v
		}
	}
	return records.CategoryAll
}

func Summarize(list []models.AuditEntry) Summary {
	return Summary{Count: len(list), BySeverity: audit.SeverityCounts(list)}
}
