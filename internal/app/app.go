package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/keeper-league/external/fantrax"
	"github.com/riskibarqy/keeper-league/internal/config"
	"github.com/riskibarqy/keeper-league/internal/domain/contract"
	"github.com/riskibarqy/keeper-league/internal/domain/league"
	"github.com/riskibarqy/keeper-league/internal/domain/penalty"
	"github.com/riskibarqy/keeper-league/internal/domain/player"
	"github.com/riskibarqy/keeper-league/internal/domain/roster"
	"github.com/riskibarqy/keeper-league/internal/domain/treasury"
	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/keeper-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/keeper-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/keeper-league/internal/platform/cache"
	idgen "github.com/riskibarqy/keeper-league/internal/platform/id"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
	"github.com/riskibarqy/keeper-league/internal/platform/resilience"
	"github.com/riskibarqy/keeper-league/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// App owns the wired dependency graph: storage, domain services, and the
// HTTP server. Close releases everything New acquired.
type App struct {
	Config      config.Config
	Logger      *logging.Logger
	DB          *sqlx.DB
	Server      *http.Server
	SyncService *usecase.RosterSyncService
}

type repositories struct {
	leagues   league.Repository
	players   player.Repository
	contracts contract.Repository
	penalties penalty.Repository
	rosters   roster.Repository
	treasury  treasury.Repository
	writer    roster.PassWriter
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	app := &App{Config: cfg, Logger: logger}

	repos, db, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	app.DB = db

	var rankCache *cache.Store
	if cfg.CacheEnabled {
		rankCache = cache.NewStore(cfg.CacheTTL)
	}

	contractSvc := usecase.NewContractService(repos.leagues, repos.players, repos.contracts, logger)
	spendingSvc := usecase.NewSpendingService(repos.leagues, repos.players, repos.contracts, rankCache, logger)
	penaltySvc := usecase.NewPenaltyService(repos.penalties, logger)
	treasurySvc := usecase.NewTreasuryService(repos.leagues, repos.treasury, idgen.NewRandomGenerator(), logger)

	if cfg.FantraxEnabled {
		provider := fantrax.NewClient(fantrax.ClientConfig{
			BaseURL:    cfg.FantraxBaseURL,
			Token:      cfg.FantraxToken,
			Timeout:    cfg.FantraxTimeout,
			MaxRetries: cfg.FantraxMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.FantraxCircuitEnabled,
				FailureThreshold: cfg.FantraxCircuitFailureCount,
				OpenTimeout:      cfg.FantraxCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.FantraxCircuitHalfOpenMaxReq,
			},
		})
		app.SyncService = usecase.NewRosterSyncService(
			provider,
			repos.leagues,
			repos.contracts,
			repos.rosters,
			repos.writer,
			spendingSvc,
			logger,
		)
	} else {
		logger.Info("roster sync disabled", "reason", "FANTRAX_ENABLED=false")
	}

	handler := httpapi.NewHandler(contractSvc, app.SyncService, spendingSvc, penaltySvc, treasurySvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	app.Server = &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if app.Server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return app, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}

// buildRepositories connects to Postgres when a database URL is configured,
// and falls back to seeded in-memory stores otherwise. The in-memory path
// keeps local development working without a running database.
func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	dbURL := strings.TrimSpace(cfg.DBURL)
	if dbURL == "" || dbURL == "memory" {
		logger.Info("storage backend selected", "backend", "memory")
		contracts := memory.NewContractRepository(memory.SeedContracts())
		penalties := memory.NewPenaltyRepository(nil)
		rosters := memory.NewRosterRepository(memory.SeedSnapshots())

		return repositories{
			leagues:   memory.NewLeagueRepository(memory.SeedLeagues()),
			players:   memory.NewPlayerRepository(memory.SeedPlayers()),
			contracts: contracts,
			penalties: penalties,
			rosters:   rosters,
			treasury:  memory.NewTreasuryRepository(memory.SeedFeeSchedules(), nil),
			writer:    memory.NewPassWriter(contracts, penalties, rosters),
		}, nil, nil
	}

	db, err := connectDB(ctx, cfg)
	if err != nil {
		return repositories{}, nil, err
	}
	logger.Info("storage backend selected", "backend", "postgres", "database", dbNameFromURL(dbURL))

	if err := postgres.BootstrapSeed(ctx, db); err != nil {
		_ = db.Close()
		return repositories{}, nil, fmt.Errorf("bootstrap seed: %w", err)
	}

	rosters := postgres.NewRosterRepository(db)

	return repositories{
		leagues:   postgres.NewLeagueRepository(db),
		players:   postgres.NewPlayerRepository(db),
		contracts: postgres.NewContractRepository(db),
		penalties: postgres.NewPenaltyRepository(db),
		rosters:   rosters,
		treasury:  postgres.NewTreasuryRepository(db),
		writer:    rosters,
	}, db, nil
}

func connectDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(16)
	db.SetMaxIdleConns(8)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
