package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
)

// ClientStorages groups the client-side repositories. The client keeps a
// local copy of the wrapped key so it can tell setup from unlock and unlock
// from the cached copy when the server is unreachable.
type ClientStorages struct {
	WrappedKeyCache WrappedKeyCache

	db *DB
}

// NewClientStorages opens the local SQLite database at cfg.DB.DSN (creating
// the file if needed), applies migrations and builds the client repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, config.DB{DSN: cfg.DB.DSN}, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		WrappedKeyCache: NewWrappedKeyCache(db, log),
		db:              db,
	}, nil
}

// Close closes the local database.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
