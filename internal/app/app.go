package app

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/maelvns/footlogic/external/notifier"
	"github.com/maelvns/footlogic/internal/config"
	"github.com/maelvns/footlogic/internal/domain/event"
	"github.com/maelvns/footlogic/internal/domain/lineup"
	"github.com/maelvns/footlogic/internal/domain/player"
	"github.com/maelvns/footlogic/internal/domain/preset"
	"github.com/maelvns/footlogic/internal/infrastructure/repository/memory"
	"github.com/maelvns/footlogic/internal/infrastructure/repository/postgres"
	"github.com/maelvns/footlogic/internal/interfaces/httpapi"
	idgen "github.com/maelvns/footlogic/internal/platform/id"
	"github.com/maelvns/footlogic/internal/platform/logging"
	"github.com/maelvns/footlogic/internal/usecase"
)

type repositories struct {
	lineups lineup.Repository
	presets preset.Repository
	events  event.Repository
	players player.Repository
}

// NewHTTPServer wires repositories, services and the HTTP router. With an
// empty DB_URL the service runs fully in memory, which is how the demo and
// the test suite run it.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	lineupSvc := usecase.NewLineupService(repos.lineups, logger)
	presetSvc := usecase.NewPresetService(repos.presets, lineupSvc, idgen.NewRandomGenerator(), logger)
	attendanceSvc := usecase.NewAttendanceService(repos.events, repos.players, logger)
	matchSvc := usecase.NewMatchService(repos.events, idgen.NewRandomGenerator(), logger)

	var convocationNotifier usecase.ConvocationNotifier
	if cfg.NotifierEnabled {
		convocationNotifier = notifier.NewWebhookNotifier(notifier.WebhookNotifierConfig{
			WebhookURL:          cfg.NotifierWebhookURL,
			Timeout:             cfg.NotifierTimeout,
			Workers:             cfg.NotifierWorkers,
			Retries:             cfg.NotifierRetries,
			CircuitFailureCount: cfg.NotifierCircuitFailureCount,
			CircuitOpenTimeout:  cfg.NotifierCircuitOpenTimeout,
		}, logger)
	}
	convocationSvc := usecase.NewConvocationService(repos.events, convocationNotifier, logger)

	handler := httpapi.NewHandler(lineupSvc, presetSvc, attendanceSvc, matchSvc, convocationSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if db != nil {
		server.RegisterOnShutdown(func() { _ = db.Close() })
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if strings.TrimSpace(cfg.DBURL) == "" {
		var players []player.Player
		if cfg.SeedDemoData {
			players = memory.SeedPlayers()
		}
		logger.Info("running with in-memory repositories", "seeded", cfg.SeedDemoData)

		return repositories{
			lineups: memory.NewLineupRepository(),
			presets: memory.NewPresetRepository(),
			events:  memory.NewEventRepository(),
			players: memory.NewPlayerRepository(players),
		}, nil, nil
	}

	db, err := otelsqlx.Open("postgres", normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return repositories{}, nil, fmt.Errorf("open database: %w", err)
	}

	logger.Info("running with postgres repositories", "db", dbNameFromURL(cfg.DBURL))

	return repositories{
		lineups: postgres.NewLineupRepository(db),
		presets: postgres.NewPresetRepository(db),
		events:  postgres.NewEventRepository(db),
		players: postgres.NewPlayerRepository(db),
	}, db, nil
}
