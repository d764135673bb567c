package feedback

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"orgconnect/infrastructure/records"
	"orgconnect/infrastructure/seed"
	"orgconnect/models"
)

var (
	ErrProjectRequired = errors.New("please select a project")
	ErrUnknownProject  = errors.New("unknown project")
	ErrCommentRequired = errors.New("please enter a comment")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
)

const (
	MinRating = 1
	MaxRating = 5
)

// State is one workspace's feedback thread.
type State struct {
	store    *records.Store[models.Feedback]
	projects []models.FeedbackProject
}

func NewState() *State {
	return &State{
		store:    records.NewStore(seed.Feedback()),
		projects: seed.FeedbackProjects(),
	}
}

// Projects returns the fixed list feedback can be left on.
func (s *State) Projects() []models.FeedbackProject {
	out := make([]models.FeedbackProject, len(s.projects))
	copy(out, s.projects)
	return out
}

// List returns entries newest-first. The category of c is a project id.
func (s *State) List(c records.Criteria, now time.Time) []models.Feedback {
	c.Range = records.RangeAll
	return records.Filter(s.store.All(), c, now)
}

func (s *State) Len() int {
	return s.store.Len()
}

// Submit validates in and puts the new entry first.
func (s *State) Submit(in SubmitInput, user models.User, now time.Time) (models.Feedback, error) {
	rawID := strings.TrimSpace(in.ProjectID)
	if rawID == "" {
		return models.Feedback{}, ErrProjectRequired
	}
	project, ok := s.project(rawID)
	if !ok {
		return models.Feedback{}, ErrUnknownProject
	}
	comment := strings.TrimSpace(in.Comment)
	if comment == "" {
		return models.Feedback{}, ErrCommentRequired
	}
	rating, err := ParseRating(in.Rating)
	if err != nil {
		return models.Feedback{}, err
	}

	entry := models.Feedback{
		ProjectID:   project.ID,
		ProjectName: project.Name,
		Author:      user.Name,
		AuthorOrg:   user.Organization,
		Comment:     comment,
		Rating:      rating,
		Timestamp:   now.UTC(),
		Replies:     []models.Reply{},
	}
	s.store.Update(func(current []models.Feedback) []models.Feedback {
		var maxID int64
		for _, f := range current {
			maxID = max(maxID, f.ID)
		}
		entry.ID = maxID + 1
		next := make([]models.Feedback, 0, len(current)+1)
		next = append(next, entry)
		return append(next, current...)
	})
	return entry, nil
}

func (s *State) project(rawID string) (models.FeedbackProject, bool) {
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return models.FeedbackProject{}, false
	}
	for _, p := range s.projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.FeedbackProject{}, false
}

// ParseRating accepts whole stars from MinRating to MaxRating.
func ParseRating(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < MinRating || n > MaxRating {
		return 0, ErrInvalidRating
	}
	return n, nil
}

// NormalizeProjectFilter keeps a known project id and maps anything else to all.
func (s *State) NormalizeProjectFilter(raw string) string {
	v := strings.TrimSpace(raw)
	if p, ok := s.project(v); ok {
		return strconv.FormatInt(p.ID, 10)
	}
	return records.CategoryAll
}

func Summarize(list []models.Feedback) Summary {
	return Summary{
		Count:         len(list),
		AverageRating: records.Average(list, func(f models.Feedback) int { return f.Rating }),
	}
}
