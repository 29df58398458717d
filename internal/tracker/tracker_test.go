package tracker

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/maxgreen/daykeep/internal/storage"
)

// fakeClock advances one millisecond per reading so generated todo ids are
// strictly increasing. Tests move the day by shifting t.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.t = c.t.Add(time.Millisecond)
	return c.t
}

func (c *fakeClock) AdvanceDays(n int) {
	c.t = c.t.AddDate(0, 0, n)
}

func newTestService(t *testing.T) (*Service, *fakeClock) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "daykeep.json"))
	if err := store.Load(); err != nil {
		t.Fatalf("failed to load store: %v", err)
	}
	clock := newFakeClock()
	svc := NewService(store, WithClock(clock.Now))
	if _, err := svc.BeginSession(); err != nil {
		t.Fatalf("BeginSession() returned unexpected error: %v", err)
	}
	return svc, clock
}
