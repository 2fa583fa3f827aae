// Package goal derives progress toward the savings target from the
// store's latest entry.
package goal

import (
	"time"

	"github.com/rustyeddy/capital/entry"
	"github.com/rustyeddy/capital/store"
)

// Tracker is a read-side view over the store's target and latest entry.
// Target mutations go through it so callers have one goal surface.
type Tracker struct {
	store *store.Store
}

func New(s *store.Store) *Tracker {
	return &Tracker{store: s}
}

// Target returns the current goal.
func (t *Tracker) Target() entry.Target {
	return t.store.Target()
}

// Update replaces the goal. Amount must be finite and positive.
func (t *Tracker) Update(amount float64, date time.Time) error {
	return t.store.SetTarget(amount, date)
}

// Progress returns current/target. ok is false when the store is empty or
// the target amount is not positive; callers must not divide by zero
// themselves. The ratio is not clamped: display layers cap the bar at 1.0
// but report the true percentage.
func (t *Tracker) Progress() (float64, bool) {
	latest, ok := t.store.Latest()
	if !ok {
		return 0, false
	}
	target := t.store.Target()
	if target.Amount <= 0 {
		return 0, false
	}
	return latest.Amount / target.Amount, true
}

// Remaining returns target minus the latest amount; negative once the
// goal is exceeded. ok is false when the store is empty.
func (t *Tracker) Remaining() (float64, bool) {
	latest, ok := t.store.Latest()
	if !ok {
		return 0, false
	}
	return t.store.Target().Amount - latest.Amount, true
}

// Summary bundles the progress numbers for display.
type Summary struct {
	Current   float64
	Remaining float64
	Progress  float64
	Achieved  bool
}

// Summarize returns the full progress picture. ok is false when no
// progress can be computed (empty store or degenerate target).
func (t *Tracker) Summarize() (Summary, bool) {
	progress, ok := t.Progress()
	if !ok {
		return Summary{}, false
	}
	latest, _ := t.store.Latest()
	remaining, _ := t.Remaining()

	return Summary{
		Current:   latest.Amount,
		Remaining: remaining,
		Progress:  progress,
		Achieved:  progress >= 1.0,
	}, true
}
