// Package persist is the durability boundary for session state. The whole
// session is written as one snapshot on every mutation; in-memory state
// stays authoritative between saves.
package persist

import (
	"time"
)

// Record is the serialized form of one capital entry.
type Record struct {
	ID     string    `json:"id"`
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
}

// Snapshot is the full durable session state.
type Snapshot struct {
	Entries      []Record  `json:"entries"`
	TargetAmount float64   `json:"targetAmount"`
	TargetDate   time.Time `json:"targetDate"`
	Currency     string    `json:"currency"`
}

// Gateway reads and writes session snapshots.
type Gateway interface {
	// Load returns the stored snapshot. found is false on first run, when
	// nothing has been saved yet.
	Load() (snap Snapshot, found bool, err error)

	// Save replaces the stored snapshot in full.
	Save(Snapshot) error

	Close() error
}
