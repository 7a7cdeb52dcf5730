package events

import (
	"testing"

	"github.com/placarlive/scoreboard/internal/models"
)

func TestNewWrapsPayload(t *testing.T) {
	event, err := New(EventTypeScoreAdjusted, ScoreAdjustedPayload{
		Side:     models.SideOne,
		Category: models.CategoryMontada,
		Delta:    4,
		Value:    4,
		Total:    4,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if event.ID == "" {
		t.Fatal("missing event id")
	}
	if event.Type != EventTypeScoreAdjusted {
		t.Fatalf("type = %s", event.Type)
	}

	payload, err := ParsePayload(event)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	got := payload.(ScoreAdjustedPayload)
	if got.Category != models.CategoryMontada || got.Total != 4 {
		t.Fatalf("payload = %+v", got)
	}
}

func TestParsePayloadUnknownTypeSkipped(t *testing.T) {
	event, err := New("SomethingElse", map[string]int{"x": 1})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	payload, err := ParsePayload(event)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	if payload != nil {
		t.Fatalf("payload = %v, want nil for unknown type", payload)
	}
}

func TestParsePayloadTone(t *testing.T) {
	event, err := New(EventTypeToneRequested, ToneRequestedPayload{
		FrequencyHz: 880,
		DurationMs:  300,
		Waveform:    "square",
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	payload, err := ParsePayload(event)
	if err != nil {
		t.Fatalf("ParsePayload: %v", err)
	}
	tone := payload.(ToneRequestedPayload)
	if tone.FrequencyHz != 880 || tone.Waveform != "square" {
		t.Fatalf("payload = %+v", tone)
	}
}
