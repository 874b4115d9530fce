package postgres

import (
	"context"
	"log/slog"

	"fintwin/config"
	"fintwin/internal/domain/lifecycle"
	"fintwin/internal/infra/metrics"
	"fintwin/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/collectors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// dbStatsName labels the connection pool series exported for the profile store.
const dbStatsName = "profiles"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Metrics *metrics.Metrics `optional:"true"`
	Logger  *slog.Logger
}

// New opens the profile store connection. The profiles table is migrated on start
// and the pool statistics are exported on the metrics registry when one is wired.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Upsert runs in an explicit transaction; single statements need no implicit one.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.Register(collectors.NewDBStatsCollector(sqlDB, dbStatsName)); err != nil {
			return nil, errors.Wrap(err, "failed to register PostgreSQL pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			return migrate(ctx, db, params.Logger)
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// migrate keeps the profiles table and its unique email index in line with the model.
func migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	migrator := db.WithContext(ctx).Migrator()
	existed := migrator.HasTable(&model.ProfileModel{})

	if err := migrator.AutoMigrate(&model.ProfileModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate profiles table")
	}
	if !existed {
		logger.Info("Created profiles table")
	}

	return nil
}
