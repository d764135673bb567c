package html

import (
	"strconv"
	"strings"
	"time"
)

// Money formats whole dollars with thousands separators, e.g. $25,000.
func Money(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)
	var out strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(d)
	}
	if neg {
		return "-$" + out.String()
	}
	return "$" + out.String()
}

// Date renders a calendar date, or "-" when unset.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("Jan 2, 2006")
}

// DateTime renders a timestamp in UTC.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("Jan 2, 2006 15:04:05 UTC")
}
