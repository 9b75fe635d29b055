package hostapi

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ironclad-games/dominion/pkg/dominion"
)

// Registry holds every live World this worldserver instance is hosting,
// keyed by an id it assigns at creation time.
type Registry struct {
	mu           sync.RWMutex
	worlds       map[string]*dominion.World
	nextID       uint64
	logRetention int
}

// NewRegistry returns an empty Registry whose worlds use the core's default
// decision log retention.
func NewRegistry() *Registry {
	return NewRegistryWithRetention(0)
}

// NewRegistryWithRetention returns an empty Registry whose worlds' decision
// log ring buffers hold logRetention entries (spec.md §3: host-configurable,
// default last N=1024). logRetention <= 0 keeps the core's default.
func NewRegistryWithRetention(logRetention int) *Registry {
	return &Registry{worlds: make(map[string]*dominion.World), logRetention: logRetention}
}

// Create constructs a new World for the given seed and registers it under a
// fresh id.
func (r *Registry) Create(seed int64) (string, *dominion.World) {
	id := fmt.Sprintf("w%d", atomic.AddUint64(&r.nextID, 1))
	w := dominion.NewWorldWithRetention(seed, r.logRetention)

	r.mu.Lock()
	r.worlds[id] = w
	r.mu.Unlock()

	return id, w
}

// Get returns the world registered under id, or nil if none exists.
func (r *Registry) Get(id string) *dominion.World {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.worlds[id]
}
