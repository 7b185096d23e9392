// README: In-memory plan registry with TTL sweeping.
package plan

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"

	"github.com/aamank11/WhatsTheMove-Final-MadHacks/internal/types"
)

const janitorInterval = 5 * time.Minute

// Store keeps live plan engines by id. Plans are session-scoped, mutable
// state toggled synchronously by the user, so they live in process memory
// and expire after a TTL.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[types.ID]*storeEntry
}

type storeEntry struct {
	engine    *Engine
	expiresAt time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{ttl: ttl, entries: make(map[types.ID]*storeEntry)}
}

func (s *Store) Put(id types.ID, e *Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = &storeEntry{engine: e, expiresAt: time.Now().Add(s.ttl)}
}

// Get returns the engine and refreshes its TTL.
func (s *Store) Get(id types.ID) (*Engine, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ent, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	if time.Now().After(ent.expiresAt) {
		delete(s.entries, id)
		return nil, false
	}
	ent.expiresAt = time.Now().Add(s.ttl)
	return ent.engine, true
}

// RunJanitor sweeps expired plans until the context is cancelled.
func (s *Store) RunJanitor(ctx context.Context) {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.mu.Lock()
			for id, ent := range s.entries {
				if now.After(ent.expiresAt) {
					delete(s.entries, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

func newID() types.ID {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return types.ID(hex.EncodeToString(b))
}
