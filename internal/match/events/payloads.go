package events

import (
	"time"

	"github.com/placarlive/scoreboard/internal/models"
)

// Payload types shared between the match app, the gateway and the broker.

// MatchStartedPayload is emitted on the not-running to running transition.
type MatchStartedPayload struct {
	RemainingSec int       `json:"remaining_sec"`
	StartedAt    time.Time `json:"started_at"`
}

// MatchEndedPayload is emitted only when the countdown reaches zero while
// running; an operator stop emits TimerStopped instead.
type MatchEndedPayload struct {
	EndedAt time.Time `json:"ended_at"`
}

// TimerStoppedPayload is emitted when the operator halts the countdown.
type TimerStoppedPayload struct {
	RemainingSec int       `json:"remaining_sec"`
	StoppedAt    time.Time `json:"stopped_at"`
}

// TimerTickPayload is emitted once per second while the match runs.
type TimerTickPayload struct {
	RemainingSec int       `json:"remaining_sec"`
	TickedAt     time.Time `json:"ticked_at"`
}

// TimerAdjustedPayload is emitted when the idle countdown is changed in
// whole-minute steps.
type TimerAdjustedPayload struct {
	DeltaSec     int `json:"delta_sec"`
	RemainingSec int `json:"remaining_sec"`
}

// ScoreAdjustedPayload is emitted after a category score mutation.
type ScoreAdjustedPayload struct {
	Side     models.Side     `json:"side"`
	Category models.Category `json:"category"`
	Delta    int             `json:"delta"`
	Value    int             `json:"value"` // stored value after clamping
	Total    int             `json:"total"`
}

// CounterAdjustedPayload is emitted after an advantage or penalty mutation.
type CounterAdjustedPayload struct {
	Side  models.Side        `json:"side"`
	Kind  models.CounterKind `json:"kind"`
	Delta int                `json:"delta"`
	Value int                `json:"value"`
}

// NameChangedPayload is emitted after a competitor rename.
type NameChangedPayload struct {
	Side models.Side `json:"side"`
	Name string      `json:"name"`
}

// MatchResetPayload is emitted after a full reset.
type MatchResetPayload struct {
	ResetAt      time.Time `json:"reset_at"`
	RemainingSec int       `json:"remaining_sec"`
}

// ToneRequestedPayload asks clients to synthesize a brief audible cue.
type ToneRequestedPayload struct {
	FrequencyHz float64 `json:"frequency_hz"`
	DurationMs  int     `json:"duration_ms"`
	Waveform    string  `json:"waveform"`
}
