package persist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileFirstRun(t *testing.T) {
	t.Parallel()

	g := NewFile(filepath.Join(t.TempDir(), "missing.json"))
	defer g.Close()

	_, found, err := g.Load()
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFileRoundtrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capital.json")
	g := NewFile(path)
	defer g.Close()

	want := testSnapshot()
	assert.NoError(t, g.Save(want))

	got, found, err := g.Load()
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Len(t, got.Entries, 2)
	assert.Equal(t, want.Currency, got.Currency)
	assert.InDelta(t, want.TargetAmount, got.TargetAmount, 1e-9)
	assert.True(t, got.Entries[1].Date.Equal(want.Entries[1].Date))
}

func TestFileMalformedSnapshot(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "capital.json")
	assert.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	g := NewFile(path)
	defer g.Close()

	_, _, err := g.Load()
	assert.Error(t, err)
}
