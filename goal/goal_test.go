package goal

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/capital/persist"
	"github.com/rustyeddy/capital/store"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTracker(t *testing.T) (*Tracker, *store.Store) {
	t.Helper()

	s := store.Open(persist.NewMemory(), zerolog.Nop())
	return New(s), s
}

func TestProgressAgainstLatestEntry(t *testing.T) {
	tracker, s := newTracker(t)

	assert.NoError(t, tracker.Update(1000, day(2027, 1, 1)))
	_, err := s.Upsert(day(2026, 1, 1), 900)
	assert.NoError(t, err)
	_, err = s.Upsert(day(2026, 1, 10), 250)
	assert.NoError(t, err)

	// latest entry is Jan 10, not the largest amount
	progress, ok := tracker.Progress()
	assert.True(t, ok)
	assert.InDelta(t, 0.25, progress, 1e-9)

	remaining, ok := tracker.Remaining()
	assert.True(t, ok)
	assert.InDelta(t, 750, remaining, 1e-9)
}

func TestProgressUndefinedWhenEmpty(t *testing.T) {
	tracker, _ := newTracker(t)

	_, ok := tracker.Progress()
	assert.False(t, ok)
	_, ok = tracker.Remaining()
	assert.False(t, ok)
	_, ok = tracker.Summarize()
	assert.False(t, ok)
}

func TestProgressNotClamped(t *testing.T) {
	tracker, s := newTracker(t)

	assert.NoError(t, tracker.Update(1000, day(2027, 1, 1)))
	_, err := s.Upsert(day(2026, 1, 1), 1500)
	assert.NoError(t, err)

	summary, ok := tracker.Summarize()
	assert.True(t, ok)
	assert.InDelta(t, 1.5, summary.Progress, 1e-9)
	assert.True(t, summary.Achieved)
	assert.InDelta(t, -500, summary.Remaining, 1e-9)
}

func TestUpdateValidates(t *testing.T) {
	tracker, _ := newTracker(t)

	assert.ErrorIs(t, tracker.Update(0, day(2027, 1, 1)), store.ErrInvalidTarget)
	assert.NoError(t, tracker.Update(5000, day(2027, 1, 1)))
	assert.Equal(t, 5000.0, tracker.Target().Amount)
}
