package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// newSQLiteDB opens a migrated SQLite database in a temp dir.
func newSQLiteDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.DB{DSN: filepath.Join(t.TempDir(), "vault.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { db.Close() })

	return db
}

// newPostgresMockDB wraps sqlmock in a postgres-dialect DB.
func newPostgresMockDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		dialect:            DialectPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func testWrappedKey(data string) models.WrappedKey {
	return models.WrappedKey{
		Envelope: models.Envelope{Data: data, IV: "aXY=", Salt: "c2FsdA==", Tag: "dGFn"},
		KDF:      models.KDFArgon2id,
	}
}

// createOwner inserts a user so that owner ids are real.
func createOwner(t *testing.T, db *DB, login string) int64 {
	t.Helper()

	user, err := NewUserRepository(db, logger.Nop()).CreateUser(context.Background(), models.User{Login: login, AuthHash: "hash"})
	require.NoError(t, err)

	return user.UserID
}
