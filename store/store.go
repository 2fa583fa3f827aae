// Package store owns the mutable session state: the ordered, one-per-day
// entry sequence, the target, and the session currency. Every mutation
// persists a full snapshot synchronously, best effort, then notifies
// subscribers.
package store

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/rustyeddy/capital/entry"
	"github.com/rustyeddy/capital/id"
	"github.com/rustyeddy/capital/persist"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a finite number")
	ErrInvalidTarget   = errors.New("target amount must be positive and finite")
	ErrUnknownCurrency = errors.New("unknown currency code")
	ErrNotFound        = errors.New("entry not found")
)

// Store is the single owner of session state. It is not safe for
// concurrent use; the design assumes one writer.
type Store struct {
	entries   []entry.Entry
	target    entry.Target
	currency  entry.Currency
	gw        persist.Gateway
	log       zerolog.Logger
	observers []func()
}

// Open restores the session from gw. A missing snapshot yields the
// documented defaults; a malformed one is logged and recovered the same
// way, never propagated.
func Open(gw persist.Gateway, log zerolog.Logger) *Store {
	s := &Store{
		gw:       gw,
		log:      log,
		target:   entry.DefaultTarget(),
		currency: entry.DefaultCurrency,
	}

	snap, found, err := gw.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("load snapshot failed, starting from defaults")
		return s
	}
	if !found {
		return s
	}

	for _, rec := range snap.Entries {
		s.entries = append(s.entries, entry.Entry{
			ID:     rec.ID,
			Date:   entry.Day(rec.Date),
			Amount: rec.Amount,
		})
	}
	s.sortEntries()

	// Absent or out-of-range stored values fall back field by field.
	if snap.TargetAmount > 0 && !math.IsInf(snap.TargetAmount, 0) && !math.IsNaN(snap.TargetAmount) {
		s.target.Amount = snap.TargetAmount
	}
	if !snap.TargetDate.IsZero() {
		s.target.Date = entry.Day(snap.TargetDate)
	}
	if c := entry.Currency(snap.Currency); c.Valid() {
		s.currency = c
	}

	return s
}

// Subscribe registers fn to run after every completed mutation.
func (s *Store) Subscribe(fn func()) {
	s.observers = append(s.observers, fn)
}

// Entries returns a copy of the sorted entry sequence.
func (s *Store) Entries() []entry.Entry {
	out := make([]entry.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Latest returns the chronologically last entry.
func (s *Store) Latest() (entry.Entry, bool) {
	if len(s.entries) == 0 {
		return entry.Entry{}, false
	}
	return s.entries[len(s.entries)-1], true
}

// EntryFor returns the entry on the same calendar day as date.
func (s *Store) EntryFor(date time.Time) (entry.Entry, bool) {
	for _, e := range s.entries {
		if entry.SameDay(e.Date, date) {
			return e, true
		}
	}
	return entry.Entry{}, false
}

// Previous returns the last entry strictly before the calendar day of
// before.
func (s *Store) Previous(before time.Time) (entry.Entry, bool) {
	day := entry.Day(before)
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].Date.Before(day) {
			return s.entries[i], true
		}
	}
	return entry.Entry{}, false
}

// Upsert records amount for the calendar day of date, replacing any entry
// already on that day. Later calls win.
func (s *Store) Upsert(date time.Time, amount float64) (entry.Entry, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return entry.Entry{}, ErrInvalidAmount
	}

	day := entry.Day(date)

	kept := s.entries[:0]
	for _, e := range s.entries {
		if !entry.SameDay(e.Date, day) {
			kept = append(kept, e)
		}
	}
	s.entries = kept

	e := entry.Entry{ID: id.New(), Date: day, Amount: amount}
	s.entries = append(s.entries, e)
	s.sortEntries()

	s.persist()
	s.notify()
	return e, nil
}

// Remove deletes the entry by identity.
func (s *Store) Remove(e entry.Entry) error {
	for i := range s.entries {
		if s.entries[i].ID == e.ID {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			s.notify()
			return nil
		}
	}
	return ErrNotFound
}

// Target returns the current goal.
func (s *Store) Target() entry.Target {
	return s.target
}

// SetTarget replaces the goal atomically. The prior target is retained on
// rejection.
func (s *Store) SetTarget(amount float64, date time.Time) error {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return ErrInvalidTarget
	}
	s.target = entry.Target{Amount: amount, Date: entry.Day(date)}
	s.persist()
	s.notify()
	return nil
}

// Currency returns the session currency.
func (s *Store) Currency() entry.Currency {
	return s.currency
}

// SetCurrency switches the session currency.
func (s *Store) SetCurrency(c entry.Currency) error {
	if !c.Valid() {
		return ErrUnknownCurrency
	}
	s.currency = c
	s.persist()
	s.notify()
	return nil
}

// Reset clears all entries and restores the default target and currency.
func (s *Store) Reset() {
	s.entries = nil
	s.target = entry.DefaultTarget()
	s.currency = entry.DefaultCurrency
	s.persist()
	s.notify()
}

func (s *Store) sortEntries() {
	sort.Slice(s.entries, func(i, j int) bool {
		return s.entries[i].Date.Before(s.entries[j].Date)
	})
}

// persist writes the full snapshot. Failures are logged and swallowed:
// the in-memory state stays authoritative for the rest of the session.
func (s *Store) persist() {
	snap := persist.Snapshot{
		TargetAmount: s.target.Amount,
		TargetDate:   s.target.Date,
		Currency:     string(s.currency),
	}
	for _, e := range s.entries {
		snap.Entries = append(snap.Entries, persist.Record{
			ID:     e.ID,
			Date:   e.Date,
			Amount: e.Amount,
		})
	}

	if err := s.gw.Save(snap); err != nil {
		s.log.Warn().Err(err).Msg("persist snapshot failed")
	}
}

func (s *Store) notify() {
	for _, fn := range s.observers {
		fn()
	}
}
