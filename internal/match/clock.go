package match

import (
	"time"

	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/match/events"
)

// Countdown control. The ticker goroutine is cancelled on every path that
// clears the running flag (operator stop, reset, expiry, shutdown) so no
// orphaned tick can mutate state after a logical stop.

// Start begins the countdown. It is a no-op while already running. If the
// time is exhausted, the countdown is first restored to the initial
// duration, so one user action performs reset-then-start instead of
// starting a zero-length countdown.
func (a *App) Start() {
	a.mu.Lock()
	if a.state.Running {
		a.mu.Unlock()
		return
	}
	if a.state.RemainingSec == 0 {
		a.state.RemainingSec = a.durationSec
	}
	a.state.Running = true
	stopCh := make(chan struct{})
	a.tickStop = stopCh
	remaining := a.state.RemainingSec
	a.mu.Unlock()

	a.persist()
	a.emit(events.EventTypeMatchStarted, events.MatchStartedPayload{
		RemainingSec: remaining,
		StartedAt:    a.clock.Now().UTC(),
	})
	if a.sounder != nil {
		a.sounder.PlayStart()
	}

	go a.runTicker(stopCh)
	log.Info().Int("remaining_sec", remaining).Msg("countdown started")
}

// Stop halts the countdown. Idempotent; stopping an idle match does
// nothing. The running flag is not persisted, so no snapshot write happens
// here.
func (a *App) Stop() {
	a.mu.Lock()
	if !a.state.Running {
		a.mu.Unlock()
		return
	}
	a.state.Running = false
	stopCh := a.tickStop
	a.tickStop = nil
	remaining := a.state.RemainingSec
	a.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	a.emit(events.EventTypeTimerStopped, events.TimerStoppedPayload{
		RemainingSec: remaining,
		StoppedAt:    a.clock.Now().UTC(),
	})
	log.Info().Int("remaining_sec", remaining).Msg("countdown stopped")
}

// AdjustMinutes adds delta whole minutes to the countdown, clamped at
// zero. Permitted only while idle; while running it is silently ignored.
func (a *App) AdjustMinutes(delta int) {
	a.mu.Lock()
	if a.state.Running {
		a.mu.Unlock()
		log.Debug().Int("delta_min", delta).Msg("ignoring minute adjust while running")
		return
	}
	next := a.state.RemainingSec + delta*60
	if next < 0 {
		next = 0
	}
	a.state.RemainingSec = next
	a.mu.Unlock()

	a.persist()
	a.emit(events.EventTypeTimerAdjusted, events.TimerAdjustedPayload{
		DeltaSec:     delta * 60,
		RemainingSec: next,
	})
}

// runTicker drives one tick per second of wall-clock time until stopped or
// expired.
func (a *App) runTicker(stopCh chan struct{}) {
	ticker := a.clock.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.Chan():
			if a.tick() {
				return
			}
		}
	}
}

// tick decrements the countdown by exactly one second. It reports true
// when the ticker goroutine should exit: either the match was stopped
// between the ticker firing and the lock being taken, or the countdown
// just reached zero. Reaching zero clears the running flag before any
// further tick can be processed, so the countdown never goes negative.
func (a *App) tick() (done bool) {
	a.mu.Lock()
	if !a.state.Running {
		a.mu.Unlock()
		return true
	}
	if a.state.RemainingSec > 0 {
		a.state.RemainingSec--
	}
	remaining := a.state.RemainingSec
	expired := remaining == 0
	if expired {
		a.state.Running = false
		a.tickStop = nil
	}
	a.mu.Unlock()

	a.persist()
	a.emit(events.EventTypeTimerTick, events.TimerTickPayload{
		RemainingSec: remaining,
		TickedAt:     a.clock.Now().UTC(),
	})

	if expired {
		a.emit(events.EventTypeMatchEnded, events.MatchEndedPayload{
			EndedAt: a.clock.Now().UTC(),
		})
		if a.sounder != nil {
			a.sounder.PlayEnd()
		}
		log.Info().Msg("countdown expired, match ended")
	}
	return expired
}
