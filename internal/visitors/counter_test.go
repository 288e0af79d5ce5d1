package visitors

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounterRecordAndStats(t *testing.T) {
	c, err := NewCounter(filepath.Join(t.TempDir(), "counts.json"), 0)
	require.NoError(t, err)

	c.Record()
	c.Record()
	c.Record()

	stats := c.Stats()
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(3), stats.Today)
	assert.Len(t, stats.ByDay, 1)
}

func TestCounterFlushAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.json")

	c, err := NewCounter(path, 0)
	require.NoError(t, err)

	c.Record()
	c.Record()
	require.NoError(t, c.Close())

	// A fresh counter picks up the persisted totals
	reloaded, err := NewCounter(path, 0)
	require.NoError(t, err)

	stats := reloaded.Stats()
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(2), stats.Today)
}

func TestCounterToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	c, err := NewCounter(path, 0)
	require.NoError(t, err)

	stats := c.Stats()
	assert.Equal(t, int64(0), stats.Total)
}

func TestCounterPrunesOldDays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "counts.json")

	c, err := NewCounter(path, 0)
	require.NoError(t, err)

	base := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	// A visit well outside the retention window
	c.now = func() time.Time { return base.AddDate(0, 0, -120) }
	c.Record()

	// And one today
	c.now = func() time.Time { return base }
	c.Record()

	require.NoError(t, c.Close())

	reloaded, err := NewCounter(path, 0)
	require.NoError(t, err)
	reloaded.now = func() time.Time { return base }

	stats := reloaded.Stats()
	assert.Equal(t, int64(2), stats.Total)
	assert.Len(t, stats.ByDay, 1)
	assert.Equal(t, int64(1), stats.Today)
}

func TestCounterCloseIsIdempotent(t *testing.T) {
	c, err := NewCounter(filepath.Join(t.TempDir(), "counts.json"), time.Minute)
	require.NoError(t, err)

	c.Record()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
