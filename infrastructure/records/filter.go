package records

import (
	"strings"
	"time"
)

// CategoryAll disables the category predicate.
const CategoryAll = "all"

// DateRange is a "within the last N days" bucket.
type DateRange string

const (
	RangeAll   DateRange = "all"
	RangeToday DateRange = "today"
	RangeWeek  DateRange = "week"
	RangeMonth DateRange = "month"
)

// ParseDateRange maps query values onto a bucket; unknown values mean all.
func ParseDateRange(raw string) DateRange {
	switch DateRange(strings.ToLower(strings.TrimSpace(raw))) {
	case RangeToday:
		return RangeToday
	case RangeWeek:
		return RangeWeek
	case RangeMonth:
		return RangeMonth
	default:
		return RangeAll
	}
}

// Days returns N for the bucket, 0 when the range is disabled.
func (r DateRange) Days() int {
	switch r {
	case RangeToday:
		return 1
	case RangeWeek:
		return 7
	case RangeMonth:
		return 30
	default:
		return 0
	}
}

// Record is anything a derived view can filter.
type Record interface {
	// FilterText lists the fields searched by the free-text query.
	FilterText() []string
	FilterCategory() string
	FilterTime() time.Time
}

// Criteria is one view's current filter state.
type Criteria struct {
	Query    string
	Category string
	Range    DateRange
}

// Normalize trims input and fills defaults so that the zero value matches everything.
func (c Criteria) Normalize() Criteria {
	c.Query = strings.TrimSpace(c.Query)
	c.Category = strings.TrimSpace(c.Category)
	if c.Category == "" {
		c.Category = CategoryAll
	}
	c.Range = ParseDateRange(string(c.Range))
	return c
}

// IsZero reports whether the criteria select the whole store.
func (c Criteria) IsZero() bool {
	c = c.Normalize()
	return c.Query == "" && c.Category == CategoryAll && c.Range == RangeAll
}

// Matches applies the query, category and date predicates to one record.
func Matches[T Record](rec T, c Criteria, now time.Time) bool {
	c = c.Normalize()
	return matchesQuery(rec.FilterText(), c.Query) &&
		matchesCategory(rec.FilterCategory(), c.Category) &&
		matchesRange(rec.FilterTime(), c.Range, now)
}

// Filter returns the matching records in source order. The result never
// aliases items.
func Filter[T Record](items []T, c Criteria, now time.Time) []T {
	if c.IsZero() {
		out := make([]T, len(items))
		copy(out, items)
		return out
	}
	c = c.Normalize()
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, c, now) {
			out = append(out, item)
		}
	}
	return out
}

func matchesQuery(fields []string, query string) bool {
	if query == "" {
		return true
	}
	needle := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(category, want string) bool {
	return want == CategoryAll || category == want
}

func matchesRange(ts time.Time, r DateRange, now time.Time) bool {
	days := r.Days()
	if days == 0 {
		return true
	}
	if ts.IsZero() {
		return false
	}
	diff := now.Sub(ts).Hours() / 24
	return diff < float64(days)
}
