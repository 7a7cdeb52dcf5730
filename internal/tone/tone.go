// Package tone emits the scoreboard's audible cues. A cue is a tone
// description (frequency, duration, waveform) that clients synthesize;
// delivery is best-effort and never blocks or fails a state transition.
package tone

import (
	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/match/events"
)

// Cue describes one audible tone.
type Cue struct {
	FrequencyHz float64
	DurationMs  int
	Waveform    string
}

// Fixed cues. The start cue is a short high beep, the end cue a longer
// lower one so the two are distinguishable mat-side.
var (
	StartCue = Cue{FrequencyHz: 880, DurationMs: 300, Waveform: "square"}
	EndCue   = Cue{FrequencyHz: 440, DurationMs: 1200, Waveform: "square"}
)

// Emitter is where cues are delivered; in practice the same fan-out the
// match events take (websocket clients plus the NATS broker).
type Emitter interface {
	Emit(event *events.Event)
}

// Beeper implements match.Sounder by emitting ToneRequested events.
type Beeper struct {
	emitter Emitter
}

// NewBeeper creates a beeper over an emitter.
func NewBeeper(emitter Emitter) *Beeper {
	return &Beeper{emitter: emitter}
}

// PlayStart emits the match-start cue.
func (b *Beeper) PlayStart() {
	b.play(StartCue)
}

// PlayEnd emits the time-expired cue.
func (b *Beeper) PlayEnd() {
	b.play(EndCue)
}

func (b *Beeper) play(cue Cue) {
	if b.emitter == nil {
		return
	}
	event, err := events.New(events.EventTypeToneRequested, events.ToneRequestedPayload{
		FrequencyHz: cue.FrequencyHz,
		DurationMs:  cue.DurationMs,
		Waveform:    cue.Waveform,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to build tone event")
		return
	}
	b.emitter.Emit(event)
}
