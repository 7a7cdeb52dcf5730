// Package snapshot mirrors committed match state into a single named slot
// of a persistent key-value store, and restores it at startup. The running
// flag is deliberately absent from the payload: a restored match is always
// stopped.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/placarlive/scoreboard/internal/models"
)

// DefaultSlot is the fixed slot name the scoreboard persists under.
const DefaultSlot = "placar"

// ErrNoSnapshot is returned when no usable snapshot exists. A slot that was
// never written and a slot whose payload fails to decode both surface as
// this error; callers seed defaults either way.
var ErrNoSnapshot = errors.New("no snapshot available")

// Snapshot is the persisted shape of a match.
type Snapshot struct {
	Competitor1          models.Competitor `json:"competitor1"`
	Competitor2          models.Competitor `json:"competitor2"`
	RemainingTimeSeconds int               `json:"remainingTimeSeconds"`
}

// FromState builds a snapshot from in-memory match state.
func FromState(state models.MatchState) Snapshot {
	return Snapshot{
		Competitor1:          state.Competitor1,
		Competitor2:          state.Competitor2,
		RemainingTimeSeconds: state.RemainingSec,
	}
}

// ToState converts a decoded snapshot back into match state, normalizing
// counters so an edited or stale payload cannot violate the zero floor.
func (s Snapshot) ToState() models.MatchState {
	state := models.MatchState{
		Competitor1:  s.Competitor1,
		Competitor2:  s.Competitor2,
		RemainingSec: s.RemainingTimeSeconds,
	}
	state.Competitor1.ID = 1
	state.Competitor2.ID = 2
	state.Competitor1.Normalize()
	state.Competitor2.Normalize()
	if state.RemainingSec < 0 {
		state.RemainingSec = 0
	}
	if state.Competitor1.Name == "" {
		state.Competitor1.Name = models.DefaultNameOne
	}
	if state.Competitor2.Name == "" {
		state.Competitor2.Name = models.DefaultNameTwo
	}
	return state
}

// Encode serializes a snapshot for storage.
func Encode(s Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode parses a stored payload. Any shape mismatch is ErrNoSnapshot.
func Decode(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: decode: %v", ErrNoSnapshot, err)
	}
	return s, nil
}

// Repository is the single-slot store the match app mirrors into.
type Repository interface {
	Save(ctx context.Context, snap Snapshot) error
	// Load returns ErrNoSnapshot when the slot is empty or undecodable.
	Load(ctx context.Context) (Snapshot, error)
	Delete(ctx context.Context) error
}
