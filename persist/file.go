package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// File stores snapshots as a single JSON document on disk.
type File struct {
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (g *File) Load() (Snapshot, bool, error) {
	data, err := os.ReadFile(g.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Snapshot{}, false, nil
	}
	if err != nil {
		return Snapshot{}, false, err
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, false, fmt.Errorf("parse snapshot: %w", err)
	}
	return snap, true, nil
}

func (g *File) Save(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	if err := os.WriteFile(g.path, data, 0644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

func (g *File) Close() error {
	return nil
}
