package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/models"
)

// MatchController is what the gateway needs from the match app.
type MatchController interface {
	State() models.MatchState
	SetName(side models.Side, name string) error
	AdjustScore(side models.Side, category models.Category, delta int) error
	AdjustCounter(side models.Side, kind models.CounterKind, delta int) error
	Start()
	Stop()
	AdjustMinutes(delta int)
	Reset(ctx context.Context)
}

// StateHandler serves the full match state, used by clients to seed their
// display on connect or reload.
type StateHandler struct {
	controller MatchController
}

// NewStateHandler creates a new state handler.
func NewStateHandler(controller MatchController) *StateHandler {
	return &StateHandler{controller: controller}
}

// StateResponse is the GET /api/match/state body. Categories ride along so
// clients render labels and point values without hardcoding the rule set.
type StateResponse struct {
	Match      models.MatchState     `json:"match"`
	Categories []models.CategoryInfo `json:"categories"`
}

// HandleGetState handles GET /api/match/state.
func (h *StateHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	resp := StateResponse{
		Match:      h.controller.State(),
		Categories: models.Categories,
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("failed to encode state response")
	}
}

// RegisterStateRoutes registers the state route.
func (h *StateHandler) RegisterStateRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/match/state", h.HandleGetState)
}
