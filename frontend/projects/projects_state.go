package projects

import (
	"errors"
	"strings"
	"time"

	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

var (
	ErrNameRequired    = errors.New("project name is required")
	ErrInvalidDeadline = errors.New("deadline must be a date like 2024-02-15")
)

// State is one workspace's project list.
type State struct {
	store *records.Store[models.Project]
}

func NewState() *State {
	return &State{store: records.NewStore(seed.Projects())}
}

// List returns the projects matching c in list order. The projects view
// has no date filter, so any range in c is ignored.
func (s *State) List(c records.Criteria, now time.Time) []models.Project {
	c.Range = records.RangeAll
	return records.Filter(s.store.All(), c, now)
}

func (s *State) Len() int {
	return s.store.Len()
}

// Create appends a project owned by user. Only the name is required; the
// project starts unstarted with no budget.
func (s *State) Create(in CreateInput, user models.User) (models.Project, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.Project{}, ErrNameRequired
	}
	var deadline time.Time
	if raw := strings.TrimSpace(in.Deadline); raw != "" {
		d, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return models.Project{}, ErrInvalidDeadline
		}
		deadline = d
	}

	project := models.Project{
		Name:        name,
		Description: strings.TrimSpace(in.Description),
		Progress:    0,
		Status:      models.ProjectNotStarted,
		Priority:    NormalizePriority(in.Priority),
		Deadline:    deadline,
		Team:        user.Organization,
		Assignees:   []string{user.Name},
	}
	s.store.Update(func(current []models.Project) []models.Project {
		var maxID int64
		for _, p := range current {
			maxID = max(maxID, p.ID)
		}
		project.ID = maxID + 1
		return append(current, project)
	})
	return project, nil
}

// NormalizePriority maps unknown priorities to medium.
func NormalizePriority(raw string) string {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case models.PriorityLow:
		return models.PriorityLow
	case models.PriorityHigh:
		return models.PriorityHigh
	default:
		return models.PriorityMedium
	}
}

// NormalizeStatusFilter maps unknown statuses to all.
func NormalizeStatusFilter(raw string) string {
	v := strings.ToLower(strings.TrimSpace(raw))
	for _, status := range Statuses {
		if v == status {
			return v
		}
	}
	return records.CategoryAll
}

// Summarize totals the listed projects.
func Summarize(list []models.Project) Summary {
	return Summary{
		Count:    len(list),
		Budget:   records.Sum(list, func(p models.Project) int64 { return p.Budget }),
		Spent:    records.Sum(list, func(p models.Project) int64 { return p.Spent }),
		ByStatus: records.CountBy(list, func(p models.Project) string { return p.Status }),
	}
}
