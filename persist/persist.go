// Package persist is the auto-save bridge between the builder and the
// key-value store: single slot, debounced writes, load-once on startup.
package persist

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/Dhunu/vigovia/models"
)

// Key is the one persistence slot. There is no history and no
// multi-document support behind it.
const Key = "vigovia-itinerary"

const saveTimeout = 5 * time.Second

// Store is the key-value backend. Load returns nil data when the key is
// absent.
type Store interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// Bridge debounces saves: every state change arms a timer, a later change
// re-arms it with a fresh snapshot, and only the settled state is written.
// At most one timer is pending at any moment.
type Bridge struct {
	store Store
	key   string
	delay time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

func NewBridge(store Store) *Bridge {
	return &Bridge{store: store, key: Key, delay: time.Second}
}

// Schedule queues it for saving after the quiet period. The snapshot is
// serialized immediately so later mutations cannot leak into an armed save.
func (b *Bridge) Schedule(it models.Itinerary) {
	data, err := json.Marshal(it)
	if err != nil {
		log.Printf("itinerary marshal error: %v", err)
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.delay, func() { b.write(data) })
}

func (b *Bridge) write(data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := b.store.Save(ctx, b.key, data); err != nil {
		// Not retried; the next state change schedules a fresh save.
		log.Printf("itinerary save error: %v", err)
	}
}

// Load reads the persisted document, once, at startup. A missing or
// unreadable document falls back to the empty itinerary with nothing more
// than a diagnostic log.
func (b *Bridge) Load(ctx context.Context) (models.Itinerary, bool) {
	data, err := b.store.Load(ctx, b.key)
	if err != nil {
		log.Printf("itinerary load error: %v", err)
		return models.NewItinerary(), false
	}
	if len(data) == 0 {
		return models.NewItinerary(), false
	}
	var it models.Itinerary
	if err := json.Unmarshal(data, &it); err != nil {
		log.Printf("saved itinerary unreadable, starting fresh: %v", err)
		return models.NewItinerary(), false
	}
	return it, true
}

// Stop cancels any armed save. Nothing is written after teardown.
func (b *Bridge) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stopped = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
