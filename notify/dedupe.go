package notify

import (
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

const dedupeTTL = 6 * time.Hour

// deduper remembers dedupe keys for a fixed window. Seen marks the key and
// reports whether it was already present and unexpired.
type deduper struct {
	clock clock.Clock
	ttl   time.Duration

	mu   sync.Mutex
	seen map[string]time.Time
}

func newDeduper(c clock.Clock, ttl time.Duration) *deduper {
	return &deduper{
		clock: c,
		ttl:   ttl,
		seen:  map[string]time.Time{},
	}
}

func (d *deduper) Seen(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.clock.Now()
	for k, at := range d.seen {
		if now.Sub(at) > d.ttl {
			delete(d.seen, k)
		}
	}

	if _, ok := d.seen[key]; ok {
		return true
	}
	d.seen[key] = now
	return false
}
