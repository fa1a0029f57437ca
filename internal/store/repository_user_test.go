package store

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_SQLite(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newSQLiteDB(t), logger.Nop())

	created, err := repo.CreateUser(ctx, models.User{Login: "alice", AuthHash: "h1"})
	require.NoError(t, err)
	assert.Positive(t, created.UserID)
	assert.Equal(t, "alice", created.Login)
	assert.Equal(t, "h1", created.AuthHash)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.FindUserByLogin(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.UserID, found.UserID)
	assert.Equal(t, "h1", found.AuthHash)

	_, err = repo.CreateUser(ctx, models.User{Login: "alice", AuthHash: "h2"})
	assert.ErrorIs(t, err, ErrLoginAlreadyExists)

	_, err = repo.FindUserByLogin(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestCreateUser_Postgres(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"user_id"}).AddRow(7)
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (login,auth_hash,created_at) VALUES ($1,$2,$3) RETURNING user_id")).
					WithArgs("john", "hash", sqlmock.AnyArg()).
					WillReturnRows(rows)
			},
		},
		{
			name: "unique violation",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrLoginAlreadyExists,
		},
		{
			name: "unexpected error",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("INSERT INTO users").
					WillReturnError(errors.New("db network error"))
			},
			wantErr: errors.New("unexpected DB error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newPostgresMockDB(t)
			tt.setup(mock)

			user, err := NewUserRepository(db, logger.Nop()).CreateUser(context.Background(), models.User{Login: "john", AuthHash: "hash"})
			switch {
			case tt.wantErr == nil:
				require.NoError(t, err)
				assert.Equal(t, int64(7), user.UserID)
			case errors.Is(tt.wantErr, ErrLoginAlreadyExists):
				assert.ErrorIs(t, err, ErrLoginAlreadyExists)
			default:
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestFindUserByLogin_RetriesTransientErrors(t *testing.T) {
	db, mock := newPostgresMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT user_id, login, auth_hash, created_at FROM users WHERE login = $1")).
		WithArgs("john").
		WillReturnError(pgError(pgerrcode.SerializationFailure))
	mock.ExpectQuery("SELECT user_id").
		WithArgs("john").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "login", "auth_hash", "created_at"}).
			AddRow(3, "john", "hash", time.Now()))

	user, err := NewUserRepository(db, logger.Nop()).FindUserByLogin(context.Background(), "john")
	require.NoError(t, err)
	assert.Equal(t, int64(3), user.UserID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByLogin_DoesNotRetryPermanentErrors(t *testing.T) {
	db, mock := newPostgresMockDB(t)

	mock.ExpectQuery("SELECT user_id").
		WillReturnError(pgError(pgerrcode.UndefinedTable))

	_, err := NewUserRepository(db, logger.Nop()).FindUserByLogin(context.Background(), "john")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected DB error")
	assert.NoError(t, mock.ExpectationsWereMet())
}
