// Package app wires storage, stores and usecases from configuration. Both
// the HTTP server and the CLI build on it.
package app

import (
	"context"
	"fmt"

	"go-talent-dashboard/config"
	"go-talent-dashboard/internal/domain"
	"go-talent-dashboard/internal/repository/memory"
	"go-talent-dashboard/internal/repository/postgres"
	"go-talent-dashboard/internal/repository/record"
	redisrepo "go-talent-dashboard/internal/repository/redis"
	"go-talent-dashboard/internal/repository/sqlite"
	"go-talent-dashboard/internal/search"
	"go-talent-dashboard/internal/usecase"
	"go-talent-dashboard/pkg/database"
	"go-talent-dashboard/pkg/logger"
	"go-talent-dashboard/pkg/redis"
	"go-talent-dashboard/pkg/validation"

	goredis "github.com/redis/go-redis/v9"
)

type App struct {
	Storage          domain.SlotStorage
	JobRequirementUC domain.JobRequirementUsecase
	CandidateUC      domain.CandidateUsecase
	ExportUC         domain.ExportUsecase
	SearchUC         domain.SearchUsecase
	DashboardUC      domain.DashboardUsecase
	HealthUC         usecase.HealthUsecase
	// Redis is set when the redis store driver is in use.
	Redis *goredis.Client

	closers []func() error
}

// New opens the configured storage and builds every usecase on top of it.
// ticker overrides the configured stage pacing when non-nil.
func New(ctx context.Context, cfg *config.Config, ticker search.Ticker) (_ *App, err error) {
	a := &App{}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	storage, err := a.openStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Storage = storage

	jobStore, err := record.NewJobRequirementStore(storage)
	if err != nil {
		return nil, err
	}
	candidateStore, err := record.NewCandidateStore(storage)
	if err != nil {
		return nil, err
	}

	source, err := search.NewMockSource()
	if err != nil {
		return nil, err
	}

	dialect := domain.ExportDialect(cfg.ExportDialect)
	if dialect != domain.DialectJSON && dialect != domain.DialectStandard {
		return nil, fmt.Errorf("unknown EXPORT_DIALECT %q", cfg.ExportDialect)
	}

	if ticker == nil {
		ticker = search.TimerTicker{Scale: cfg.SearchStageDelayScale}
	}

	validate := validation.New()
	a.JobRequirementUC = usecase.NewJobRequirementUsecase(jobStore, validate)
	a.CandidateUC = usecase.NewCandidateUsecase(candidateStore, validate)
	a.ExportUC = usecase.NewExportUsecase(a.CandidateUC, dialect)
	a.SearchUC = usecase.NewSearchUsecase(a.JobRequirementUC, candidateStore, source, validate, usecase.SearchConfig{
		Ticker:    ticker,
		MaxActive: cfg.MaxActiveSearches,
	})
	a.DashboardUC = usecase.NewDashboardUsecase(a.JobRequirementUC, a.CandidateUC)
	a.HealthUC = usecase.NewHealthUsecase(storage, cfg.StoreDriver)

	return a, nil
}

func (a *App) openStorage(ctx context.Context, cfg *config.Config) (domain.SlotStorage, error) {
	switch cfg.StoreDriver {
	case config.StoreMemory:
		logger.Log.Warn("Using in-memory storage; data is lost on exit")
		return memory.NewSlotRepository(), nil

	case config.StoreSQLite, "":
		db, err := database.NewSQLiteConnection(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, db.Close)
		return sqlite.NewSlotRepository(ctx, db)

	case config.StorePostgres:
		if cfg.DBUrl == "" {
			return nil, fmt.Errorf("STORE_DRIVER=postgres requires DATABASE_URL")
		}
		pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, func() error { pool.Close(); return nil })
		if err := postgres.EnsureSchema(ctx, pool, cfg.PostgresSlotTable); err != nil {
			return nil, fmt.Errorf("create slot table: %w", err)
		}
		return postgres.NewSlotRepository(pool, cfg.PostgresSlotTable), nil

	case config.StoreRedis:
		client, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, client.Close)
		a.Redis = client
		return redisrepo.NewSlotRepository(client, cfg.RedisKeyPrefix), nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}

// Shutdown stops background searches, then releases storage.
func (a *App) Shutdown(ctx context.Context) error {
	var err error
	if a.SearchUC != nil {
		err = a.SearchUC.Shutdown(ctx)
	}
	if cerr := a.Close(); err == nil {
		err = cerr
	}
	return err
}

func (a *App) Close() error {
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
