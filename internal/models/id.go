package models

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// IDGenerator produces todo identifiers that sort lexicographically in
// creation order. The activation policy breaks ties by plain string compare,
// so "oldest eligible task wins" depends on this property holding; do not
// swap in an unordered scheme like UUIDs here.
//
// Ids are decimal millisecond timestamps; calls within the same millisecond
// get a zero-padded sequence suffix ("1712000000000-001"), which still sorts
// after the bare timestamp and in issue order.
type IDGenerator struct {
	now func() time.Time

	mu     sync.Mutex
	lastMS int64
	seq    int
}

// NewIDGenerator returns a generator backed by the given clock. A nil clock
// uses time.Now.
func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns the next identifier.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms <= g.lastMS {
		g.seq++
		if g.seq > 999 {
			// Pad exhausted; claim the next millisecond. Real reads at that
			// millisecond land back in this branch, so ids stay unique.
			g.lastMS++
			g.seq = 0
			return strconv.FormatInt(g.lastMS, 10)
		}
		return fmt.Sprintf("%d-%03d", g.lastMS, g.seq)
	}
	g.lastMS = ms
	g.seq = 0
	return strconv.FormatInt(ms, 10)
}
