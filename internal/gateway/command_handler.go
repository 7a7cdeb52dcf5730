package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/models"
)

// CommandHandler exposes the scoreboard mutations over HTTP. Commands
// validate shape only (known side, category, counter kind); the domain
// arithmetic itself is total and clamps instead of erroring.
type CommandHandler struct {
	controller MatchController
}

// NewCommandHandler creates a new command handler.
func NewCommandHandler(controller MatchController) *CommandHandler {
	return &CommandHandler{controller: controller}
}

// NameRequest is the POST /api/match/name body.
type NameRequest struct {
	Side models.Side `json:"side"`
	Name string      `json:"name"`
}

// ScoreRequest is the POST /api/match/score body. Delta is the category's
// fixed point value, positive or negative.
type ScoreRequest struct {
	Side     models.Side     `json:"side"`
	Category models.Category `json:"category"`
	Delta    int             `json:"delta"`
}

// CounterRequest is the POST /api/match/counter body. Delta is +1 or -1.
type CounterRequest struct {
	Side  models.Side        `json:"side"`
	Kind  models.CounterKind `json:"kind"`
	Delta int                `json:"delta"`
}

// MinutesRequest is the POST /api/match/timer/minutes body.
type MinutesRequest struct {
	Delta int `json:"delta"`
}

// HandleSetName handles POST /api/match/name.
func (h *CommandHandler) HandleSetName(w http.ResponseWriter, r *http.Request) {
	var req NameRequest
	if !decodeCommand(w, r, &req) {
		return
	}
	if err := h.controller.SetName(req.Side, req.Name); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respondState(w)
}

// HandleAdjustScore handles POST /api/match/score.
func (h *CommandHandler) HandleAdjustScore(w http.ResponseWriter, r *http.Request) {
	var req ScoreRequest
	if !decodeCommand(w, r, &req) {
		return
	}
	if err := h.controller.AdjustScore(req.Side, req.Category, req.Delta); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respondState(w)
}

// HandleAdjustCounter handles POST /api/match/counter.
func (h *CommandHandler) HandleAdjustCounter(w http.ResponseWriter, r *http.Request) {
	var req CounterRequest
	if !decodeCommand(w, r, &req) {
		return
	}
	if err := h.controller.AdjustCounter(req.Side, req.Kind, req.Delta); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.respondState(w)
}

// HandleStart handles POST /api/match/timer/start.
func (h *CommandHandler) HandleStart(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	h.controller.Start()
	h.respondState(w)
}

// HandleStop handles POST /api/match/timer/stop.
func (h *CommandHandler) HandleStop(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	h.controller.Stop()
	h.respondState(w)
}

// HandleAdjustMinutes handles POST /api/match/timer/minutes.
func (h *CommandHandler) HandleAdjustMinutes(w http.ResponseWriter, r *http.Request) {
	var req MinutesRequest
	if !decodeCommand(w, r, &req) {
		return
	}
	h.controller.AdjustMinutes(req.Delta)
	h.respondState(w)
}

// HandleReset handles POST /api/match/reset.
func (h *CommandHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if !requirePost(w, r) {
		return
	}
	h.controller.Reset(r.Context())
	h.respondState(w)
}

// RegisterCommandRoutes registers all mutation routes.
func (h *CommandHandler) RegisterCommandRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/match/name", h.HandleSetName)
	mux.HandleFunc("/api/match/score", h.HandleAdjustScore)
	mux.HandleFunc("/api/match/counter", h.HandleAdjustCounter)
	mux.HandleFunc("/api/match/timer/start", h.HandleStart)
	mux.HandleFunc("/api/match/timer/stop", h.HandleStop)
	mux.HandleFunc("/api/match/timer/minutes", h.HandleAdjustMinutes)
	mux.HandleFunc("/api/match/reset", h.HandleReset)
}

func (h *CommandHandler) respondState(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(h.controller.State()); err != nil {
		log.Error().Err(err).Msg("failed to encode command response")
	}
}

func requirePost(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func decodeCommand(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !requirePost(w, r) {
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}
