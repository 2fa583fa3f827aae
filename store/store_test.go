package store

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/rustyeddy/capital/entry"
	"github.com/rustyeddy/capital/persist"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) (*Store, *persist.Memory) {
	t.Helper()

	gw := persist.NewMemory()
	return Open(gw, zerolog.Nop()), gw
}

func TestUpsertSameDayReplaces(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Upsert(day(2026, 1, 5), 100)
	assert.NoError(t, err)
	_, err = s.Upsert(time.Date(2026, 1, 5, 18, 30, 0, 0, time.UTC), 250)
	assert.NoError(t, err)

	entries := s.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, 250.0, entries[0].Amount)
}

func TestEntriesStaySorted(t *testing.T) {
	s, _ := newTestStore(t)

	for _, d := range []int{20, 3, 11, 1, 28, 7} {
		_, err := s.Upsert(day(2026, 2, d), float64(d))
		assert.NoError(t, err)
	}
	_, err := s.Upsert(day(2026, 2, 11), 999)
	assert.NoError(t, err)

	entries := s.Entries()
	assert.Len(t, entries, 6)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].Date.Before(entries[i].Date))
	}
}

func TestEntryFor(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Upsert(day(2026, 1, 5), 200)
	assert.NoError(t, err)

	e, ok := s.EntryFor(time.Date(2026, 1, 5, 23, 0, 0, 0, time.UTC))
	assert.True(t, ok)
	assert.Equal(t, 200.0, e.Amount)

	_, ok = s.EntryFor(day(2026, 1, 6))
	assert.False(t, ok)
}

func TestPrevious(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Upsert(day(2026, 1, 1), 100)
	assert.NoError(t, err)
	_, err = s.Upsert(day(2026, 1, 5), 200)
	assert.NoError(t, err)

	prev, ok := s.Previous(day(2026, 1, 10))
	assert.True(t, ok)
	assert.Equal(t, 200.0, prev.Amount)

	prev, ok = s.Previous(day(2026, 1, 5))
	assert.True(t, ok)
	assert.Equal(t, 100.0, prev.Amount)

	_, ok = s.Previous(day(2026, 1, 1))
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	s, _ := newTestStore(t)

	e, err := s.Upsert(day(2026, 1, 1), 100)
	assert.NoError(t, err)

	assert.NoError(t, s.Remove(e))
	assert.Empty(t, s.Entries())

	assert.ErrorIs(t, s.Remove(e), ErrNotFound)
}

func TestUpsertRejectsNonFinite(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Upsert(day(2026, 1, 1), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidAmount)
	_, err = s.Upsert(day(2026, 1, 1), math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidAmount)

	// rejected mutations leave no trace
	assert.Empty(t, s.Entries())
}

func TestSetTargetValidation(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.Target()

	assert.ErrorIs(t, s.SetTarget(0, day(2027, 1, 1)), ErrInvalidTarget)
	assert.ErrorIs(t, s.SetTarget(-5, day(2027, 1, 1)), ErrInvalidTarget)
	assert.ErrorIs(t, s.SetTarget(math.NaN(), day(2027, 1, 1)), ErrInvalidTarget)

	// prior target retained on rejection
	assert.Equal(t, before, s.Target())

	assert.NoError(t, s.SetTarget(50000, day(2027, 1, 1)))
	assert.Equal(t, 50000.0, s.Target().Amount)
}

func TestSetCurrency(t *testing.T) {
	s, _ := newTestStore(t)

	assert.ErrorIs(t, s.SetCurrency("BTC"), ErrUnknownCurrency)
	assert.Equal(t, entry.DefaultCurrency, s.Currency())

	assert.NoError(t, s.SetCurrency(entry.JPY))
	assert.Equal(t, entry.JPY, s.Currency())
}

func TestReset(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Upsert(day(2026, 1, 1), 100)
	assert.NoError(t, err)
	assert.NoError(t, s.SetTarget(99999, day(2030, 1, 1)))
	assert.NoError(t, s.SetCurrency(entry.USD))

	s.Reset()

	assert.Empty(t, s.Entries())
	assert.Equal(t, entry.DefaultTarget(), s.Target())
	assert.Equal(t, entry.DefaultCurrency, s.Currency())
}

func TestMutationsPersistSnapshot(t *testing.T) {
	s, gw := newTestStore(t)

	_, err := s.Upsert(day(2026, 1, 1), 100)
	assert.NoError(t, err)
	assert.Equal(t, 1, gw.Saves)
	assert.Len(t, gw.Snap.Entries, 1)

	assert.NoError(t, s.SetCurrency(entry.GBP))
	assert.Equal(t, 2, gw.Saves)
	assert.Equal(t, "GBP", gw.Snap.Currency)
}

func TestWriteFailureDoesNotRollBack(t *testing.T) {
	s, gw := newTestStore(t)
	gw.SaveErr = errors.New("disk full")

	_, err := s.Upsert(day(2026, 1, 1), 100)
	assert.NoError(t, err)

	// mutation survives in memory even though the write failed
	assert.Len(t, s.Entries(), 1)
}

func TestOpenRestoresSnapshot(t *testing.T) {
	gw := persist.NewMemory()
	gw.Found = true
	gw.Snap = persist.Snapshot{
		Entries: []persist.Record{
			// out of order on purpose, Open must sort
			{ID: "B", Date: day(2026, 1, 5), Amount: 200},
			{ID: "A", Date: day(2026, 1, 1), Amount: 100},
		},
		TargetAmount: 30000,
		TargetDate:   day(2027, 6, 1),
		Currency:     "CHF",
	}

	s := Open(gw, zerolog.Nop())

	entries := s.Entries()
	assert.Len(t, entries, 2)
	assert.Equal(t, 100.0, entries[0].Amount)
	assert.Equal(t, 30000.0, s.Target().Amount)
	assert.Equal(t, entry.CHF, s.Currency())
}

func TestOpenRecoversFromReadFailure(t *testing.T) {
	gw := persist.NewMemory()
	gw.LoadErr = errors.New("corrupt snapshot")

	s := Open(gw, zerolog.Nop())

	assert.Empty(t, s.Entries())
	assert.Equal(t, entry.DefaultTarget(), s.Target())
	assert.Equal(t, entry.DefaultCurrency, s.Currency())
}

func TestOpenIgnoresBadStoredValues(t *testing.T) {
	gw := persist.NewMemory()
	gw.Found = true
	gw.Snap = persist.Snapshot{
		TargetAmount: -1,
		Currency:     "DOGE",
	}

	s := Open(gw, zerolog.Nop())

	assert.Equal(t, entry.DefaultTarget().Amount, s.Target().Amount)
	assert.Equal(t, entry.DefaultCurrency, s.Currency())
}

func TestSubscribersNotifiedPerMutation(t *testing.T) {
	s, _ := newTestStore(t)

	calls := 0
	s.Subscribe(func() { calls++ })

	_, err := s.Upsert(day(2026, 1, 1), 100)
	assert.NoError(t, err)
	assert.NoError(t, s.SetTarget(1000, day(2027, 1, 1)))
	s.Reset()

	assert.Equal(t, 3, calls)

	// rejected mutations do not notify
	_, err = s.Upsert(day(2026, 1, 1), math.NaN())
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}
