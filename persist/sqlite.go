package persist

import (
	"database/sql"
	"fmt"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const Schema = `
CREATE TABLE IF NOT EXISTS entries (
	entry_id TEXT PRIMARY KEY,
	day DATETIME NOT NULL,
	amount REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_entries_day ON entries(day);

CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

const (
	keyTargetAmount = "target_amount"
	keyTargetDate   = "target_date"
	keyCurrency     = "currency"
)

// SQLite stores snapshots in a local SQLite database.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

func (g *SQLite) Load() (Snapshot, bool, error) {
	var snap Snapshot

	settings := map[string]string{}
	rows, err := g.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return Snapshot{}, false, err
	}
	defer rows.Close()
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return Snapshot{}, false, err
		}
		settings[k] = v
	}
	if err := rows.Err(); err != nil {
		return Snapshot{}, false, err
	}

	erows, err := g.db.Query(`SELECT entry_id, day, amount FROM entries ORDER BY day ASC`)
	if err != nil {
		return Snapshot{}, false, err
	}
	defer erows.Close()
	for erows.Next() {
		var rec Record
		if err := erows.Scan(&rec.ID, &rec.Date, &rec.Amount); err != nil {
			return Snapshot{}, false, err
		}
		snap.Entries = append(snap.Entries, rec)
	}
	if err := erows.Err(); err != nil {
		return Snapshot{}, false, err
	}

	if len(settings) == 0 && len(snap.Entries) == 0 {
		return Snapshot{}, false, nil
	}

	if v, ok := settings[keyTargetAmount]; ok {
		amount, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Snapshot{}, false, fmt.Errorf("settings %s: %w", keyTargetAmount, err)
		}
		snap.TargetAmount = amount
	}
	if v, ok := settings[keyTargetDate]; ok {
		date, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return Snapshot{}, false, fmt.Errorf("settings %s: %w", keyTargetDate, err)
		}
		snap.TargetDate = date
	}
	snap.Currency = settings[keyCurrency]

	return snap, true, nil
}

// Save rewrites the whole snapshot in one transaction.
func (g *SQLite) Save(snap Snapshot) error {
	tx, err := g.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return err
	}
	for _, rec := range snap.Entries {
		_, err := tx.Exec(`
			INSERT INTO entries (entry_id, day, amount)
			VALUES (?, ?, ?)`,
			rec.ID, rec.Date, rec.Amount,
		)
		if err != nil {
			return err
		}
	}

	pairs := []struct{ key, value string }{
		{keyTargetAmount, strconv.FormatFloat(snap.TargetAmount, 'f', -1, 64)},
		{keyTargetDate, snap.TargetDate.UTC().Format(time.RFC3339)},
		{keyCurrency, snap.Currency},
	}
	for _, p := range pairs {
		_, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
			p.key, p.value,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (g *SQLite) Close() error {
	return g.db.Close()
}
