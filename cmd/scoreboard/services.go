package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/placarlive/scoreboard/internal/broker"
	"github.com/placarlive/scoreboard/internal/gateway"
	"github.com/placarlive/scoreboard/internal/match"
	"github.com/placarlive/scoreboard/internal/match/events"
	"github.com/placarlive/scoreboard/internal/snapshot"
	"github.com/placarlive/scoreboard/internal/tone"
)

// Services holds the wired application components.
type Services struct {
	Match   *match.App
	Gateway *gateway.Service
	Broker  *broker.Publisher
	DB      *sql.DB
}

// fanoutEmitter delivers each event to every downstream emitter.
type fanoutEmitter struct {
	emitters []match.Emitter
}

func (f *fanoutEmitter) Emit(event *events.Event) {
	for _, e := range f.emitters {
		e.Emit(event)
	}
}

func setupServices(ctx context.Context, cfg *Config) (*Services, error) {
	// Snapshot store
	var repo snapshot.Repository
	var db *sql.DB
	switch cfg.Storage.Backend {
	case "memory":
		log.Warn().Msg("using in-memory snapshot store, state will not survive a restart")
		repo = snapshot.NewMemoryRepository()
	case "postgres":
		var err error
		db, err = setupDatabase()
		if err != nil {
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}
		repo = snapshot.NewPostgresRepository(db, cfg.Storage.Slot)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}

	// Event bus (lazily connected on first publish)
	brokerCfg := broker.DefaultConfig()
	if cfg.NATS.URL != "" {
		brokerCfg.URL = cfg.NATS.URL
	}
	if cfg.NATS.SubjectPrefix != "" {
		brokerCfg.SubjectPrefix = cfg.NATS.SubjectPrefix
	}
	publisher := broker.NewPublisher(brokerCfg)

	// Gateway, wired into the event fan-out together with the bus. The
	// match app is created with the combined emitter, and the gateway is
	// created with the match app; the connection manager is shared.
	cm := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	emitter := &fanoutEmitter{emitters: []match.Emitter{cm, publisher}}
	beeper := tone.NewBeeper(emitter)

	app := match.NewApp(ctx, repo, emitter, beeper,
		match.WithDuration(cfg.Match.DurationSec))

	gw := gateway.NewServiceWithManager(cm, app)

	return &Services{
		Match:   app,
		Gateway: gw,
		Broker:  publisher,
		DB:      db,
	}, nil
}
