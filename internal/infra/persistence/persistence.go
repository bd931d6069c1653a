// Package persistence selects the entity store backend configured for the process.
package persistence

import (
	"log/slog"

	"cafemap/config"
	"cafemap/internal/domain/repository"
	"cafemap/internal/errors"
	"cafemap/internal/infra/persistence/memory"
	"cafemap/internal/infra/persistence/mongo"
	"cafemap/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Store drivers accepted by store.driver.
const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
	DriverMemory   = "memory"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the repository set of one backend.
type Repositories struct {
	fx.Out

	CafeRepo   repository.CafeRepository
	ReviewRepo repository.ReviewRepository
	TxManager  repository.TransactionManager
}

// New opens the configured backend and provides its repositories.
func New(params Params) (Repositories, error) {
	driver := params.Config.Store.Driver
	params.Logger.Info("Opening entity store", slog.String("driver", driver))

	switch driver {
	case DriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			CafeRepo:   postgres.NewCafeRepository(db),
			ReviewRepo: postgres.NewReviewRepository(db),
			TxManager:  postgres.NewTransactionManager(db),
		}, nil
	case DriverMongo:
		store, err := mongo.New(mongo.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			CafeRepo:   mongo.NewCafeRepository(store),
			ReviewRepo: mongo.NewReviewRepository(store),
			TxManager:  mongo.NewTransactionManager(store),
		}, nil
	case DriverMemory:
		store := memory.NewStore()

		return Repositories{
			CafeRepo:   memory.NewCafeRepository(store),
			ReviewRepo: memory.NewReviewRepository(store),
			TxManager:  memory.NewTransactionManager(store),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown store driver %q", driver)
	}
}
