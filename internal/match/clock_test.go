package match

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/placarlive/scoreboard/internal/match/events"
)

func TestStartBeginsCountdownAndEmitsOnce(t *testing.T) {
	app, _, emitter, sounder := newTestApp(t, WithDuration(10), WithClock(clockwork.NewFakeClock()))

	app.Start()
	if !app.State().Running {
		t.Fatal("not running after Start")
	}
	if !emitter.sawType(events.EventTypeMatchStarted) {
		t.Fatal("MatchStarted not emitted")
	}

	// Starting again while running is a no-op.
	app.Start()
	starts, _ := sounder.counts()
	if starts != 1 {
		t.Fatalf("start cue played %d times, want 1", starts)
	}
}

func TestStartWithExhaustedTimeResetsFirst(t *testing.T) {
	app, _, _, _ := newTestApp(t, WithDuration(300), WithClock(clockwork.NewFakeClock()))

	// Drain the countdown entirely while idle.
	app.AdjustMinutes(-5)
	if got := app.State().RemainingSec; got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}

	// One user action: implicit reset-then-start, never a zero-length run.
	app.Start()
	state := app.State()
	if !state.Running {
		t.Fatal("not running")
	}
	if state.RemainingSec != 300 {
		t.Fatalf("remaining = %d, want 300 after implicit reset", state.RemainingSec)
	}
}

func TestTickDecrementsByExactlyOne(t *testing.T) {
	app, _, _, _ := newTestApp(t, WithDuration(5), WithClock(clockwork.NewFakeClock()))

	app.Start()
	for want := 4; want >= 1; want-- {
		if done := app.tick(); done {
			t.Fatalf("tick reported done at remaining %d", want)
		}
		if got := app.State().RemainingSec; got != want {
			t.Fatalf("remaining = %d, want %d", got, want)
		}
	}
}

func TestCountdownAutoStopsAtZero(t *testing.T) {
	app, _, emitter, sounder := newTestApp(t, WithDuration(2), WithClock(clockwork.NewFakeClock()))

	app.Start()
	if done := app.tick(); done {
		t.Fatal("done after first tick")
	}
	if done := app.tick(); !done {
		t.Fatal("not done when reaching zero")
	}

	state := app.State()
	if state.Running {
		t.Fatal("still running at zero")
	}
	if state.RemainingSec != 0 {
		t.Fatalf("remaining = %d, want 0", state.RemainingSec)
	}
	if !emitter.sawType(events.EventTypeMatchEnded) {
		t.Fatal("MatchEnded not emitted")
	}
	_, ends := sounder.counts()
	if ends != 1 {
		t.Fatalf("end cue played %d times, want 1", ends)
	}

	// A stray tick after the auto-stop must not drive time negative or
	// resurrect the countdown.
	if done := app.tick(); !done {
		t.Fatal("tick after expiry should report done")
	}
	if got := app.State().RemainingSec; got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}
}

func TestStopIsIdempotentAndEmitsTimerStopped(t *testing.T) {
	app, _, emitter, _ := newTestApp(t, WithDuration(30), WithClock(clockwork.NewFakeClock()))

	app.Start()
	app.Stop()
	if app.State().Running {
		t.Fatal("running after Stop")
	}
	if !emitter.sawType(events.EventTypeTimerStopped) {
		t.Fatal("TimerStopped not emitted")
	}

	// Stopping an idle match does nothing.
	app.Stop()
}

func TestAdjustMinutesRules(t *testing.T) {
	app, _, _, _ := newTestApp(t, WithDuration(300), WithClock(clockwork.NewFakeClock()))

	// +1 then -1 returns to the original value while idle.
	app.AdjustMinutes(1)
	app.AdjustMinutes(-1)
	if got := app.State().RemainingSec; got != 300 {
		t.Fatalf("remaining = %d, want 300", got)
	}

	// Repeated -1 past zero clamps at zero.
	for i := 0; i < 10; i++ {
		app.AdjustMinutes(-1)
	}
	if got := app.State().RemainingSec; got != 0 {
		t.Fatalf("remaining = %d, want 0", got)
	}

	// Ignored while running.
	app.AdjustMinutes(5)
	app.Start()
	app.AdjustMinutes(-5)
	if got := app.State().RemainingSec; got != 300 {
		t.Fatalf("remaining = %d, want 300 (adjust while running must be ignored)", got)
	}
}

func TestTickerDrivesCountdownOncePerSecond(t *testing.T) {
	fc := clockwork.NewFakeClock()
	app, _, emitter, _ := newTestApp(t, WithDuration(3), WithClock(fc))

	app.Start()

	// Wait for the ticker goroutine to be blocked on the fake clock.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := fc.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("ticker never armed: %v", err)
	}

	for want := 2; want >= 0; want-- {
		fc.Advance(time.Second)
		waitForTick(t, emitter, want)
	}

	waitForEvent(t, emitter, events.EventTypeMatchEnded)
	if app.State().Running {
		t.Fatal("running after expiry")
	}
}

func waitForTick(t *testing.T, emitter *recordingEmitter, wantRemaining int) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case e := <-emitter.ch:
			if e.Type != events.EventTypeTimerTick {
				continue
			}
			payload, err := events.ParsePayload(e)
			if err != nil {
				t.Fatalf("parse tick: %v", err)
			}
			tick := payload.(events.TimerTickPayload)
			if tick.RemainingSec != wantRemaining {
				t.Fatalf("tick remaining = %d, want %d", tick.RemainingSec, wantRemaining)
			}
			return
		case <-deadline:
			t.Fatalf("no tick observed (want remaining %d)", wantRemaining)
		}
	}
}

func waitForEvent(t *testing.T, emitter *recordingEmitter, eventType events.EventType) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		if emitter.sawType(eventType) {
			return
		}
		select {
		case <-emitter.ch:
		case <-deadline:
			t.Fatalf("event %s never emitted", eventType)
		}
	}
}

func TestManualStopPlaysNoEndCue(t *testing.T) {
	app, _, _, sounder := newTestApp(t, WithDuration(60), WithClock(clockwork.NewFakeClock()))

	app.Start()
	app.Stop()

	_, ends := sounder.counts()
	if ends != 0 {
		t.Fatalf("end cue played %d times on manual stop, want 0", ends)
	}
	if got := app.State().RemainingSec; got != 60 {
		t.Fatalf("remaining = %d, want 60", got)
	}
}
