// Package persistence selects the profile store backend from configuration.
package persistence

import (
	"log/slog"

	"fintwin/config"
	"fintwin/internal/domain/repository"
	"fintwin/internal/infra/metrics"
	"fintwin/internal/infra/persistence/memory"
	"fintwin/internal/infra/persistence/mongodb"
	"fintwin/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RepositoryParams holds dependencies for the profile store, injected by Fx
type RepositoryParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// NewProfileRepository creates the ProfileRepository named by storage.driver.
// Only the selected backend is connected.
func NewProfileRepository(params RepositoryParams) (repository.ProfileRepository, error) {
	logger := params.Logger

	switch params.Config.Storage.Driver {
	case config.StorageDriverPostgres:
		if params.Config.Postgres == nil {
			return nil, errors.New("postgres configuration is required for postgres driver")
		}
		logger.Info("Using PostgreSQL profile store")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Metrics:   params.Metrics,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewProfileRepository(db), nil

	case config.StorageDriverMongo:
		logger.Info("Using MongoDB profile store")

		collection, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return mongodb.NewProfileRepository(collection), nil

	case config.StorageDriverMemory:
		logger.Warn("Using in-memory profile store, data is lost on restart")

		return memory.NewProfileRepository(), nil

	default:
		return nil, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewProfileRepository),
)
