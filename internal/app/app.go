package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/league-portal/external/supabase"
	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/domain/award"
	"github.com/riskibarqy/league-portal/internal/domain/freeagent"
	"github.com/riskibarqy/league-portal/internal/domain/match"
	"github.com/riskibarqy/league-portal/internal/domain/news"
	"github.com/riskibarqy/league-portal/internal/domain/player"
	"github.com/riskibarqy/league-portal/internal/domain/season"
	"github.com/riskibarqy/league-portal/internal/domain/standing"
	"github.com/riskibarqy/league-portal/internal/domain/team"
	"github.com/riskibarqy/league-portal/internal/infrastructure/account/jwtauth"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/league-portal/internal/infrastructure/repository/rest"
	"github.com/riskibarqy/league-portal/internal/interfaces/httpapi"
	"github.com/riskibarqy/league-portal/internal/platform/database"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

// repositories is the backend-neutral set of stores the use cases read.
type repositories struct {
	seasons    season.Repository
	teams      team.Repository
	matches    match.Repository
	players    player.Repository
	freeAgents freeagent.Repository
	news       news.Repository
	awards     award.Repository
}

// NewHTTPServer wires the configured data source and token verifier into
// the HTTP API. The returned cleanup releases the data source and must be
// called after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	var restClient *supabase.Client
	if cfg.DataSource == config.DataSourceREST || cfg.AuthMode == config.AuthModeRemote {
		client, err := supabase.NewClient(supabase.ClientConfig{
			BaseURL:        cfg.RESTBaseURL,
			APIKey:         cfg.RESTAPIKey,
			Timeout:        cfg.RESTTimeout,
			MaxRetries:     cfg.RESTMaxRetries,
			RetryBackoff:   cfg.RESTRetryBackoff,
			Logger:         logger.Named("supabase"),
			CircuitBreaker: cfg.RESTCircuit,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("build supabase client: %w", err)
		}
		restClient = client
	}

	repos, cleanup, err := newRepositories(ctx, cfg, restClient, logger)
	if err != nil {
		return nil, nil, err
	}

	verifier, err := newTokenVerifier(cfg, restClient)
	if err != nil {
		cleanup()
		return nil, nil, err
	}

	handler := httpapi.NewHandler(newServices(cfg, repos, logger), logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("http api wired",
		"data_source", cfg.DataSource,
		"auth_mode", cfg.AuthMode,
		"sort_locale", cfg.SortLocale.String(),
		"stats_workers", cfg.StatsWorkerCount,
	)

	return server, cleanup, nil
}

func newRepositories(ctx context.Context, cfg config.Config, client *supabase.Client, logger *logging.Logger) (repositories, func(), error) {
	noop := func() {}

	switch cfg.DataSource {
	case config.DataSourceMemory:
		data := memory.Seed()
		if cfg.MemorySeedFile != "" {
			loaded, err := memory.LoadSeedFile(cfg.MemorySeedFile)
			if err != nil {
				return repositories{}, nil, fmt.Errorf("load memory seed: %w", err)
			}
			data = loaded
		}
		repos := memory.NewRepositories(data)
		return repositories{
			seasons:    repos.Seasons,
			teams:      repos.Teams,
			matches:    repos.Matches,
			players:    repos.Players,
			freeAgents: repos.FreeAgents,
			news:       repos.News,
			awards:     repos.Awards,
		}, noop, nil

	case config.DataSourcePostgres:
		db, err := database.Open(ctx, database.Options{
			URL:                         cfg.DBURL,
			DisablePreparedBinaryResult: cfg.DBDisablePreparedBinary,
			MaxOpenConns:                cfg.DBMaxOpenConns,
			MaxIdleConns:                cfg.DBMaxIdleConns,
		})
		if err != nil {
			return repositories{}, nil, err
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				logger.Warn("close postgres failed", "error", err)
			}
		}
		return repositories{
			seasons:    postgres.NewSeasonRepository(db),
			teams:      postgres.NewTeamRepository(db),
			matches:    postgres.NewMatchRepository(db),
			players:    postgres.NewPlayerRepository(db),
			freeAgents: postgres.NewFreeAgentRepository(db),
			news:       postgres.NewNewsRepository(db),
			awards:     postgres.NewAwardRepository(db),
		}, cleanup, nil

	case config.DataSourceREST:
		if client == nil {
			return repositories{}, nil, fmt.Errorf("rest data source requires a supabase client")
		}
		repos := rest.NewRepositories(client, logger.Named("rest"))
		return repositories{
			seasons:    repos.Seasons,
			teams:      repos.Teams,
			matches:    repos.Matches,
			players:    repos.Players,
			freeAgents: repos.FreeAgents,
			news:       repos.News,
			awards:     repos.Awards,
		}, noop, nil
	}

	return repositories{}, nil, fmt.Errorf("unsupported data source %q", cfg.DataSource)
}

func newTokenVerifier(cfg config.Config, client *supabase.Client) (httpapi.TokenVerifier, error) {
	switch cfg.AuthMode {
	case config.AuthModeRemote:
		if client == nil {
			return nil, fmt.Errorf("remote auth requires a supabase client")
		}
		return supabase.NewAuthVerifier(client, cfg.AuthCacheTTL, cfg.AuthCacheMaxEntries), nil
	case config.AuthModeJWT:
		verifier, err := jwtauth.NewVerifier(cfg.AuthJWTSecret, cfg.AuthJWTLeeway)
		if err != nil {
			return nil, fmt.Errorf("build jwt verifier: %w", err)
		}
		return verifier, nil
	}

	return nil, fmt.Errorf("unsupported auth mode %q", cfg.AuthMode)
}

func newServices(cfg config.Config, repos repositories, logger *logging.Logger) httpapi.Services {
	schemas := usecase.NewListSchemas(cfg.SortLocale)
	aggregator := standing.NewAggregator(cfg.SortLocale)
	svcLogger := logger.Named("usecase")

	return httpapi.Services{
		Seasons:    usecase.NewSeasonService(repos.seasons),
		Standings:  usecase.NewStandingService(repos.seasons, repos.teams, repos.matches, aggregator, svcLogger),
		Teams:      usecase.NewTeamService(repos.seasons, repos.teams, repos.matches, aggregator, schemas.Teams, svcLogger),
		Matches:    usecase.NewMatchService(repos.seasons, repos.teams, repos.matches, schemas.Matches),
		Players:    usecase.NewPlayerService(repos.players, schemas.Players),
		FreeAgents: usecase.NewFreeAgentService(repos.freeAgents, schemas.FreeAgents),
		News:       usecase.NewNewsService(repos.news, schemas.News),
		Awards:     usecase.NewAwardService(repos.awards, schemas.Awards),
		Statistics: usecase.NewStatisticsService(
			repos.seasons,
			repos.teams,
			repos.matches,
			repos.players,
			aggregator,
			cfg.StatsWorkerCount,
			svcLogger,
		),
		Dashboard: usecase.NewDashboardService(repos.seasons, repos.teams, repos.matches, repos.players, aggregator, svcLogger),
	}
}
