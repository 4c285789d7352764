// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over an embedded SQLite database.
package sqlite

import (
	"context"
	"log/slog"

	"receiver/config"
	"receiver/internal/domain/lifecycle"
	"receiver/internal/errors"
	"receiver/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the on-device SQLite database and migrates the schema.
func New(params Params) (*gorm.DB, error) {
	dsn := params.Config.SQLite.Path
	if dsn != ":memory:" {
		// WAL keeps the scan producer and upload consumer from blocking each
		// other; busy_timeout covers the remaining write contention.
		dsn += "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Repository operations manage their own transactions where a
		// multi-step mutation needs atomicity.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	if err := db.AutoMigrate(
		&model.SightingModel{},
		&model.QueueRecordModel{},
		&model.WhitelistDeviceModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate SQLite schema")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// A single writer connection sidesteps SQLITE_BUSY storms under the
	// concurrent producer/consumer load.
	sqlDB.SetMaxOpenConns(1)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.Wrap(sqlDB.PingContext(ctx), "failed to ping SQLite")
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
