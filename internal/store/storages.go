// Package store persists accounts, wrapped keys and encrypted records.
//
// Repositories are written once against database/sql and squirrel and run
// on PostgreSQL (pgx) on the server and SQLite on the client. The dialect
// decides the placeholder format, the migrations and the error mapping.
package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
)

// Storages groups the server repositories.
type Storages struct {
	UserRepository       UserRepository
	WrappedKeyRepository WrappedKeyRepository
	RecordRepository     RecordRepository

	db *DB
}

// NewStorages connects to cfg.DSN, applies migrations and builds the server
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, log), nil
}

// NewStoragesFromDB builds the server repositories on an open connection.
func NewStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:       NewUserRepository(db, log),
		WrappedKeyRepository: NewWrappedKeyRepository(db, log),
		RecordRepository:     NewRecordRepository(db, log),
		db:                   db,
	}
}

// Close closes the underlying connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
