package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event is the envelope every scoreboard event travels in, both over the
// websocket gateway and over the message bus.
type Event struct {
	ID        string          `json:"id"`        // Event UUID
	Type      EventType       `json:"type"`      // Event type
	Timestamp time.Time       `json:"timestamp"` // Event creation time
	Data      json.RawMessage `json:"data"`      // Event-specific payload
}

// EventType identifies a scoreboard event.
type EventType string

const (
	EventTypeMatchStarted    EventType = "MatchStarted"
	EventTypeMatchEnded      EventType = "MatchEnded"
	EventTypeTimerStopped    EventType = "TimerStopped"
	EventTypeTimerTick       EventType = "TimerTick"
	EventTypeTimerAdjusted   EventType = "TimerAdjusted"
	EventTypeScoreAdjusted   EventType = "ScoreAdjusted"
	EventTypeCounterAdjusted EventType = "CounterAdjusted"
	EventTypeNameChanged     EventType = "NameChanged"
	EventTypeMatchReset      EventType = "MatchReset"
	EventTypeToneRequested   EventType = "ToneRequested"
)

// New builds an event envelope around a payload. Marshal failures cannot
// happen for our payload types; they are reported anyway so callers can
// log them.
func New(eventType EventType, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}, nil
}

// ParsePayload decodes an event's data into the payload struct for its type.
// Unknown event types return (nil, nil) so consumers can skip them.
func ParsePayload(event *Event) (any, error) {
	switch event.Type {
	case EventTypeMatchStarted:
		return unmarshal[MatchStartedPayload](event)
	case EventTypeMatchEnded:
		return unmarshal[MatchEndedPayload](event)
	case EventTypeTimerStopped:
		return unmarshal[TimerStoppedPayload](event)
	case EventTypeTimerTick:
		return unmarshal[TimerTickPayload](event)
	case EventTypeTimerAdjusted:
		return unmarshal[TimerAdjustedPayload](event)
	case EventTypeScoreAdjusted:
		return unmarshal[ScoreAdjustedPayload](event)
	case EventTypeCounterAdjusted:
		return unmarshal[CounterAdjustedPayload](event)
	case EventTypeNameChanged:
		return unmarshal[NameChangedPayload](event)
	case EventTypeMatchReset:
		return unmarshal[MatchResetPayload](event)
	case EventTypeToneRequested:
		return unmarshal[ToneRequestedPayload](event)
	default:
		return nil, nil
	}
}

func unmarshal[T any](event *Event) (any, error) {
	var payload T
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}
