package visitors

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	dayLayout      = "2006-01-02"
	counterFileMod = 0o644

	retainedDays = 90
)

// Snapshot is the JSON shape persisted to disk and returned to callers.
type Snapshot struct {
	Total int64            `json:"total"`
	Today int64            `json:"today"`
	ByDay map[string]int64 `json:"byDay"`
	AsOf  time.Time        `json:"asOf"`
}

// Counter tracks site visits in memory and persists them to a JSON file.
// Counts survive restarts but a crash loses at most one flush interval.
type Counter struct {
	mu       sync.Mutex
	total    int64
	byDay    map[string]int64
	dirty    bool
	filePath string

	stop    chan struct{}
	stopped sync.WaitGroup
	once    sync.Once

	now func() time.Time
}

func NewCounter(filePath string, flushInterval time.Duration) (*Counter, error) {
	c := &Counter{
		byDay:    make(map[string]int64),
		filePath: filePath,
		stop:     make(chan struct{}),
		now:      time.Now,
	}

	if err := c.load(); err != nil {
		return nil, err
	}

	if flushInterval > 0 {
		c.stopped.Add(1)
		go c.flushLoop(flushInterval)
	}

	return c, nil
}

// Record counts one visit.
func (c *Counter) Record() {
	day := c.now().Format(dayLayout)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.total++
	c.byDay[day]++
	c.dirty = true
}

// Stats returns the current totals.
func (c *Counter) Stats() Snapshot {
	now := c.now()
	today := now.Format(dayLayout)

	c.mu.Lock()
	defer c.mu.Unlock()

	byDay := make(map[string]int64, len(c.byDay))
	for day, count := range c.byDay {
		byDay[day] = count
	}

	return Snapshot{
		Total: c.total,
		Today: c.byDay[today],
		ByDay: byDay,
		AsOf:  now,
	}
}

// Close flushes pending counts and stops the background loop.
func (c *Counter) Close() error {
	c.once.Do(func() {
		close(c.stop)
	})
	c.stopped.Wait()

	return c.flush()
}

func (c *Counter) load() error {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		// A corrupt counter file should not keep the site down.
		log.Printf("Visitor counter file unreadable, starting fresh: %v", err)
		return nil
	}

	c.total = snapshot.Total
	if snapshot.ByDay != nil {
		c.byDay = snapshot.ByDay
	}

	return nil
}

func (c *Counter) flushLoop(interval time.Duration) {
	defer c.stopped.Done()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.flush(); err != nil {
				log.Printf("Visitor counter flush failed: %v", err)
			}
		case <-c.stop:
			return
		}
	}
}

// flush writes the snapshot via a temp file rename so a crash mid-write
// never corrupts the counter file.
func (c *Counter) flush() error {
	c.mu.Lock()
	if !c.dirty {
		c.mu.Unlock()
		return nil
	}

	c.prune()

	snapshot := Snapshot{
		Total: c.total,
		ByDay: make(map[string]int64, len(c.byDay)),
		AsOf:  c.now(),
	}
	for day, count := range c.byDay {
		snapshot.ByDay[day] = count
	}
	c.dirty = false
	c.mu.Unlock()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return err
	}

	tmpPath := c.filePath + ".tmp"
	if err := os.MkdirAll(filepath.Dir(c.filePath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(tmpPath, data, counterFileMod); err != nil {
		return err
	}

	return os.Rename(tmpPath, c.filePath)
}

// prune drops per-day entries older than the retention window. Caller
// holds the lock.
func (c *Counter) prune() {
	cutoff := c.now().AddDate(0, 0, -retainedDays).Format(dayLayout)
	for day := range c.byDay {
		if day < cutoff {
			delete(c.byDay, day)
		}
	}
}
