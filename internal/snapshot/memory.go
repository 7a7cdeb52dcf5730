package snapshot

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"
)

// MemoryRepository keeps the slot in process memory. It backs the
// storage=memory configuration and the tests. State does not survive a
// restart, which is acceptable for a scoreboard driven at mat-side.
type MemoryRepository struct {
	mu      sync.Mutex
	payload []byte
}

// NewMemoryRepository returns an empty in-memory slot.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Save serializes and stores the snapshot.
func (r *MemoryRepository) Save(_ context.Context, snap Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.payload = data
	r.mu.Unlock()
	return nil
}

// Load decodes the stored payload, if any.
func (r *MemoryRepository) Load(_ context.Context) (Snapshot, error) {
	r.mu.Lock()
	data := r.payload
	r.mu.Unlock()

	if data == nil {
		return Snapshot{}, ErrNoSnapshot
	}
	snap, err := Decode(data)
	if err != nil {
		log.Warn().Err(err).Msg("discarding undecodable snapshot")
		return Snapshot{}, ErrNoSnapshot
	}
	return snap, nil
}

// Delete clears the slot.
func (r *MemoryRepository) Delete(_ context.Context) error {
	r.mu.Lock()
	r.payload = nil
	r.mu.Unlock()
	return nil
}

// seed replaces the raw payload, bypassing Encode. Test helper for
// exercising the corrupt-payload path.
func (r *MemoryRepository) seed(data []byte) {
	r.mu.Lock()
	r.payload = data
	r.mu.Unlock()
}
