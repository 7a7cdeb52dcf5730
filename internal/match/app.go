// Package match holds the scoreboard's business logic: the two competitor
// records, the countdown, and the persistence mirror that follows every
// committed change.
package match

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/match/events"
	"github.com/placarlive/scoreboard/internal/models"
	"github.com/placarlive/scoreboard/internal/snapshot"
)

// Emitter receives every committed scoreboard event. The gateway fans
// events out to websocket clients; the broker publishes them to NATS.
type Emitter interface {
	Emit(event *events.Event)
}

// Sounder plays the audible cues. Implementations are best-effort and must
// never block or fail a state transition.
type Sounder interface {
	PlayStart()
	PlayEnd()
}

// App owns the match state. All mutations are synchronous and total:
// out-of-range adjustments clamp silently instead of erroring. The only
// error paths are shape errors (unknown side, category or counter kind),
// which callers are expected to validate away.
type App struct {
	mu       sync.Mutex
	state    models.MatchState
	tickStop chan struct{} // non-nil exactly while running

	repo        snapshot.Repository
	emitter     Emitter
	sounder     Sounder
	clock       clockwork.Clock
	durationSec int
}

// Option configures an App.
type Option func(*App)

// WithClock injects the clock; tests pass a clockwork fake.
func WithClock(clock clockwork.Clock) Option {
	return func(a *App) { a.clock = clock }
}

// WithDuration overrides the initial countdown length in seconds.
func WithDuration(seconds int) Option {
	return func(a *App) { a.durationSec = seconds }
}

// NewApp creates the match app, seeding state from the snapshot slot when a
// usable one exists. The restored match is always stopped.
func NewApp(ctx context.Context, repo snapshot.Repository, emitter Emitter, sounder Sounder, opts ...Option) *App {
	a := &App{
		repo:        repo,
		emitter:     emitter,
		sounder:     sounder,
		clock:       clockwork.NewRealClock(),
		durationSec: models.DefaultDurationSec,
	}
	for _, opt := range opts {
		opt(a)
	}

	snap, err := repo.Load(ctx)
	switch {
	case err == nil:
		a.state = snap.ToState()
		log.Info().
			Int("remaining_sec", a.state.RemainingSec).
			Msg("restored match from snapshot")
	case errors.Is(err, snapshot.ErrNoSnapshot):
		a.state = models.NewMatchState(a.durationSec)
		log.Info().Msg("no snapshot, starting fresh match")
	default:
		a.state = models.NewMatchState(a.durationSec)
		log.Error().Err(err).Msg("snapshot load failed, starting fresh match")
	}

	return a
}

// State returns a copy of the current match state.
func (a *App) State() models.MatchState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Clone()
}

// SetName replaces a competitor's display name. No validation beyond the
// side, no length limit.
func (a *App) SetName(side models.Side, name string) error {
	if !models.ValidSide(side) {
		return fmt.Errorf("unknown side %d", side)
	}

	a.mu.Lock()
	a.state.Competitor(side).Name = name
	a.mu.Unlock()

	a.persist()
	a.emit(events.EventTypeNameChanged, events.NameChangedPayload{
		Side: side,
		Name: name,
	})
	return nil
}

// AdjustScore adds delta points (a category's fixed value, positive or
// negative) to the competitor's stored value for that category, clamped at
// zero, and recomputes the total.
func (a *App) AdjustScore(side models.Side, category models.Category, delta int) error {
	if !models.ValidSide(side) {
		return fmt.Errorf("unknown side %d", side)
	}
	if !models.ValidCategory(category) {
		return fmt.Errorf("unknown category %q", category)
	}

	a.mu.Lock()
	c := a.state.Competitor(side)
	c.AddScore(category, delta)
	value := c.Scores[category]
	total := c.Total
	a.mu.Unlock()

	a.persist()
	a.emit(events.EventTypeScoreAdjusted, events.ScoreAdjustedPayload{
		Side:     side,
		Category: category,
		Delta:    delta,
		Value:    value,
		Total:    total,
	})
	return nil
}

// AdjustCounter adjusts the advantage or penalty count, clamped at zero.
func (a *App) AdjustCounter(side models.Side, kind models.CounterKind, delta int) error {
	if !models.ValidSide(side) {
		return fmt.Errorf("unknown side %d", side)
	}
	if !models.ValidCounterKind(kind) {
		return fmt.Errorf("unknown counter kind %q", kind)
	}

	a.mu.Lock()
	c := a.state.Competitor(side)
	var value int
	if kind == models.CounterAdvantage {
		c.AddAdvantages(delta)
		value = c.Advantages
	} else {
		c.AddPenalties(delta)
		value = c.Penalties
	}
	a.mu.Unlock()

	a.persist()
	a.emit(events.EventTypeCounterAdjusted, events.CounterAdjustedPayload{
		Side:  side,
		Kind:  kind,
		Delta: delta,
		Value: value,
	})
	return nil
}

// Reset replaces both competitor records with fresh defaults, restores the
// countdown to the initial duration and clears the persisted slot. A
// running countdown is stopped first.
func (a *App) Reset(ctx context.Context) {
	a.Stop()

	a.mu.Lock()
	a.state = models.NewMatchState(a.durationSec)
	remaining := a.state.RemainingSec
	a.mu.Unlock()

	if err := a.repo.Delete(ctx); err != nil {
		log.Error().Err(err).Msg("failed to clear persisted snapshot")
	}
	a.emit(events.EventTypeMatchReset, events.MatchResetPayload{
		ResetAt:      a.clock.Now().UTC(),
		RemainingSec: remaining,
	})
}

// Shutdown stops the countdown and makes a final snapshot write so the
// last committed state is durable before process exit.
func (a *App) Shutdown(ctx context.Context) {
	a.Stop()

	a.mu.Lock()
	snap := snapshot.FromState(a.state.Clone())
	a.mu.Unlock()

	if err := a.repo.Save(ctx, snap); err != nil {
		log.Error().Err(err).Msg("final snapshot write failed")
	}
}

// persist mirrors the committed state into the snapshot slot. Failures are
// logged and never surfaced to the mutation path.
func (a *App) persist() {
	a.mu.Lock()
	snap := snapshot.FromState(a.state.Clone())
	a.mu.Unlock()

	if err := a.repo.Save(context.Background(), snap); err != nil {
		log.Error().Err(err).Msg("snapshot write failed")
	}
}

// emit wraps a payload in an event envelope and hands it to the emitter.
func (a *App) emit(eventType events.EventType, payload any) {
	if a.emitter == nil {
		return
	}
	event, err := events.New(eventType, payload)
	if err != nil {
		log.Error().Err(err).Str("type", string(eventType)).Msg("failed to build event")
		return
	}
	a.emitter.Emit(event)
}
