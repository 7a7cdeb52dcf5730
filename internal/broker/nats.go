// Package broker publishes scoreboard events to NATS, best-effort. The
// connection is acquired lazily on the first publish and reused for the
// lifetime of the process; every failure is logged and swallowed so the
// bus can never block or fail a state transition.
package broker

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/match/events"
)

// Config holds NATS connection settings.
type Config struct {
	URL           string
	SubjectPrefix string // e.g. "scoreboard.events"
	MaxReconnects int
	ReconnectWait time.Duration
}

// DefaultConfig returns the default broker configuration.
func DefaultConfig() Config {
	return Config{
		URL:           nats.DefaultURL,
		SubjectPrefix: "scoreboard.events",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
	}
}

// Publisher is a lazily-connected NATS publisher. It implements
// match.Emitter.
type Publisher struct {
	config Config

	mu       sync.Mutex
	nc       *nats.Conn
	attempts int
}

// NewPublisher creates a publisher. No connection is made until the first
// publish.
func NewPublisher(config Config) *Publisher {
	return &Publisher{config: config}
}

// Emit publishes the event to <prefix>.<event type>. Errors are logged,
// never returned.
func (p *Publisher) Emit(event *events.Event) {
	nc, err := p.conn()
	if err != nil {
		log.Warn().Err(err).Str("type", string(event.Type)).Msg("event not published, NATS unavailable")
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Str("type", string(event.Type)).Msg("failed to marshal event")
		return
	}

	subject := fmt.Sprintf("%s.%s", p.config.SubjectPrefix, event.Type)
	if err := nc.Publish(subject, data); err != nil {
		log.Warn().Err(err).Str("subject", subject).Msg("failed to publish event")
	}
}

// conn returns the shared connection, dialing on first use.
func (p *Publisher) conn() (*nats.Conn, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.nc != nil {
		return p.nc, nil
	}

	opts := []nats.Option{
		nats.MaxReconnects(p.config.MaxReconnects),
		nats.ReconnectWait(p.config.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Warn().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(p.config.URL, opts...)
	if err != nil {
		p.attempts++
		return nil, fmt.Errorf("connect to NATS (attempt %d): %w", p.attempts, err)
	}

	log.Info().Str("url", nc.ConnectedUrl()).Msg("connected to NATS")
	p.nc = nc
	return nc, nil
}

// Close drains and closes the connection if one was ever made.
func (p *Publisher) Close() {
	p.mu.Lock()
	nc := p.nc
	p.nc = nil
	p.mu.Unlock()

	if nc == nil {
		return
	}
	if err := nc.Drain(); err != nil {
		log.Warn().Err(err).Msg("failed to drain NATS connection")
		nc.Close()
	}
}
