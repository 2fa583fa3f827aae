// Package entry defines the core capital tracking types: daily entries,
// the savings target, and the currency catalog.
package entry

import (
	"time"
)

// Entry is a single calendar-day capital snapshot. At most one entry
// exists per day; the amount is signed (debt is negative).
type Entry struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// DateString renders the entry date in medium calendar format.
func (e Entry) DateString() string {
	return e.Date.Format("Jan 2, 2006")
}

// Day normalizes t to midnight UTC, the canonical form for calendar-day
// comparison and storage.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return Day(a).Equal(Day(b))
}

// Target is the user-defined goal: reach Amount by Date.
type Target struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
}

// DefaultTarget returns the out-of-the-box goal used before the user has
// configured one.
func DefaultTarget() Target {
	return Target{
		Amount: 20000,
		Date:   time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC),
	}
}
