// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-user-registry/internal/config"
	"github.com/MKhiriev/go-user-registry/internal/logger"
)

// Storages groups the repositories handed to the service layer and owns
// the database connection, if any.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages builds the user store selected by cfg.Storage.Driver.
//
// The memory driver is seeded with [SeedUsers]. The SQL drivers open a
// connection and apply the migrations, which insert the same seed rows into
// a fresh table and start the shared id counter after them.
func NewStorages(ctx context.Context, cfg config.StructuredConfig, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Storage.Driver).Msg("creating new storages...")

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory, "":
		seed := SeedUsers()
		ids, err := NewIDGenerator(cfg.App.IDStrategy, maxID(seed))
		if err != nil {
			return nil, err
		}

		return &Storages{
			UserRepository: NewMemoryUserRepository(seed, ids, logger),
		}, nil

	case config.StorageDriverSQLite, config.StorageDriverPostgres:
		db, err := connect(ctx, cfg.Storage, logger)
		if err != nil {
			return nil, err
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		repo, err := NewUserRepository(db, cfg.App.IDStrategy, logger)
		if err != nil {
			_ = db.Close()
			return nil, err
		}

		return &Storages{UserRepository: repo, db: db}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Storage.Driver)
	}
}

// Close releases the database connection. It is a no-op for the memory store.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

func connect(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*DB, error) {
	if cfg.Driver == config.StorageDriverPostgres {
		db, err := NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}
	return db, nil
}
