package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/riskibarqy/fantasy-scoring/internal/config"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fantasy"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/fixture"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/player"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/playerstats"
	"github.com/riskibarqy/fantasy-scoring/internal/domain/scoring"
	"github.com/riskibarqy/fantasy-scoring/internal/infrastructure/lock"
	cacherepo "github.com/riskibarqy/fantasy-scoring/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/fantasy-scoring/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-scoring/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/fantasy-scoring/internal/observability"
	basecache "github.com/riskibarqy/fantasy-scoring/internal/platform/cache"
	idgen "github.com/riskibarqy/fantasy-scoring/internal/platform/id"
	"github.com/riskibarqy/fantasy-scoring/internal/platform/logging"
	"github.com/riskibarqy/fantasy-scoring/internal/platform/resilience"
	"github.com/riskibarqy/fantasy-scoring/internal/usecase"
)

// App is the wired scoring job. Close releases every resource New opened.
type App struct {
	Config  config.Config
	Logger  *logging.Logger
	Scoring *usecase.ScoringService
	Metrics *observability.ScoringMetrics

	closers []func(context.Context) error
}

type repositories struct {
	fixtures fixture.Repository
	players  player.Repository
	stats    playerstats.Repository
	rosters  fantasy.Repository
	scoring  scoring.Repository
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	a := &App{Config: cfg, Logger: logger}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("init uptrace: %w", err)
	}
	a.closers = append(a.closers, shutdownTracing)

	stopProfiler, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		_ = a.Close(ctx)
		return nil, fmt.Errorf("init pyroscope: %w", err)
	}
	a.closers = append(a.closers, func(context.Context) error { return stopProfiler() })

	rules, err := config.LoadScoringRules(cfg.ScoringRulesFile)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	repos, err := a.buildRepositories(ctx, cfg)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	ids := idgen.NewUUIDGenerator()
	locker, err := a.buildLocker(cfg, ids)
	if err != nil {
		_ = a.Close(ctx)
		return nil, err
	}

	a.Metrics = observability.NewScoringMetrics()
	a.Scoring = usecase.NewScoringService(
		repos.fixtures,
		repos.players,
		repos.stats,
		repos.rosters,
		repos.scoring,
		rules,
		ids,
		logger,
		usecase.WithRunLocker(locker),
		usecase.WithRunRecorder(a.Metrics),
		usecase.WithMaxWorkers(cfg.ScoringMaxWorkers),
	)

	logger.InfoContext(ctx, "scoring app ready",
		"env", cfg.AppEnv,
		"storage_driver", cfg.StorageDriver,
		"cache_enabled", cfg.CacheEnabled,
		"redis_lock", cfg.RedisURL != "",
		"max_workers", cfg.ScoringMaxWorkers,
		"minutes_policy", rules.MinutesPolicy,
	)
	return a, nil
}

func (a *App) buildRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	var repos repositories
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		seeded := memory.NewSeededRepositories()
		repos = repositories{
			fixtures: seeded.Fixtures,
			players:  seeded.Players,
			stats:    seeded.Stats,
			rosters:  seeded.Rosters,
			scoring:  seeded.Scoring,
		}
	default:
		db, err := openDB(ctx, cfg)
		if err != nil {
			return repositories{}, err
		}
		a.closers = append(a.closers, func(context.Context) error { return db.Close() })
		repos = repositories{
			fixtures: postgres.NewFixtureRepository(db),
			players:  postgres.NewPlayerRepository(db),
			stats:    postgres.NewPlayerStatsRepository(db),
			rosters:  postgres.NewRosterRepository(db),
			scoring:  postgres.NewScoringRepository(db),
		}
	}

	if cfg.CacheEnabled {
		repos.players = cacherepo.NewPlayerRepository(repos.players, basecache.NewStore[player.Player](cfg.CacheTTL))
	}
	return repos, nil
}

func (a *App) buildLocker(cfg config.Config, ids idgen.Generator) (usecase.RunLocker, error) {
	if cfg.RedisURL == "" {
		return lock.NewLocalLocker(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	a.closers = append(a.closers, func(context.Context) error { return client.Close() })

	breaker := resilience.NewCircuitBreaker(resilience.CircuitBreakerConfig{
		FailureThreshold: cfg.LockCircuitFailureCount,
		OpenTimeout:      cfg.LockCircuitOpenTimeout,
		HalfOpenMaxReq:   1,
	})
	return lock.NewRedisLocker(client, cfg.LockTTL, ids, breaker), nil
}

// PushMetrics sends the run metrics to the configured Pushgateway.
func (a *App) PushMetrics(ctx context.Context) error {
	job := a.Config.PushgatewayJob
	if job == "" {
		job = a.Config.ServiceName
	}
	return a.Metrics.Push(ctx, a.Config.PushgatewayURL, job)
}

func (a *App) Close(ctx context.Context) error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
