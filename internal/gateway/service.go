package gateway

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Service is the scoreboard gateway: websocket fan-out plus the HTTP state
// and command surface.
type Service struct {
	connectionManager *ConnectionManager
	wsHandler         *WebSocketHandler
	stateHandler      *StateHandler
	commandHandler    *CommandHandler
}

// Config holds configuration for the gateway service.
type Config struct {
	ConnectionConfig ConnectionConfig
}

// DefaultConfig returns default gateway configuration.
func DefaultConfig() Config {
	return Config{ConnectionConfig: DefaultConnectionConfig()}
}

// NewService creates the gateway over the match controller.
func NewService(config Config, controller MatchController) *Service {
	return NewServiceWithManager(NewConnectionManager(config.ConnectionConfig), controller)
}

// NewServiceWithManager creates the gateway around an existing connection
// manager, for callers that also wire the manager as an event emitter.
func NewServiceWithManager(cm *ConnectionManager, controller MatchController) *Service {
	return &Service{
		connectionManager: cm,
		wsHandler:         NewWebSocketHandler(cm),
		stateHandler:      NewStateHandler(controller),
		commandHandler:    NewCommandHandler(controller),
	}
}

// ConnectionManager exposes the manager so main can wire it as an event
// emitter.
func (s *Service) ConnectionManager() *ConnectionManager {
	return s.connectionManager
}

// Start runs the broadcast loop until the context ends.
func (s *Service) Start(ctx context.Context) {
	s.connectionManager.Start(ctx)
}

// RegisterRoutes registers every gateway route.
func (s *Service) RegisterRoutes(mux *http.ServeMux) {
	s.wsHandler.RegisterRoutes(mux)
	s.stateHandler.RegisterStateRoutes(mux)
	s.commandHandler.RegisterCommandRoutes(mux)
	log.Info().Msg("scoreboard gateway routes registered")
}
