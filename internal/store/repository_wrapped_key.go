package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/models"
)

// wrappedKeyRepository keeps one wrapped key per owner in "wrapped_keys".
// The same type serves the server repository and the client cache.
type wrappedKeyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewWrappedKeyRepository constructs a [WrappedKeyRepository] backed by db.
func NewWrappedKeyRepository(db *DB, logger *logger.Logger) WrappedKeyRepository {
	logger.Debug().Msg("creating wrapped key repository")
	return &wrappedKeyRepository{db: db, logger: logger}
}

// NewWrappedKeyCache constructs a [WrappedKeyCache] backed by db.
func NewWrappedKeyCache(db *DB, logger *logger.Logger) WrappedKeyCache {
	logger.Debug().Msg("creating wrapped key cache")
	return &wrappedKeyRepository{db: db, logger: logger}
}

func (r *wrappedKeyRepository) SaveWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64) (int64, error) {
	log := logger.FromContext(ctx)

	text, err := models.MarshalWrappedKey(wk)
	if err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	if expectedVersion == 0 {
		query, args, err := buildInsertWrappedKeyQuery(r.db.builder(), ownerID, text, now)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
			if r.db.isUniqueViolation(err) {
				return 0, ErrVersionConflict
			}
			log.Err(err).Str("func", "*wrappedKeyRepository.SaveWrappedKey").Msg("error inserting wrapped key")
			return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		return 1, nil
	}

	query, args, err := buildCompareAndSwapWrappedKeyQuery(r.db.builder(), ownerID, text, expectedVersion, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*wrappedKeyRepository.SaveWrappedKey").Msg("error updating wrapped key")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Info().Str("func", "*wrappedKeyRepository.SaveWrappedKey").
			Int64("expected_version", expectedVersion).
			Msg("wrapped key version conflict")
		return 0, ErrVersionConflict
	}

	return expectedVersion + 1, nil
}

func (r *wrappedKeyRepository) PutWrappedKey(ctx context.Context, stored models.StoredWrappedKey) error {
	text, err := models.MarshalWrappedKey(stored.WrappedKey)
	if err != nil {
		return err
	}

	updatedAt := stored.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	query, args, err := buildUpsertWrappedKeyQuery(r.db.builder(), stored.OwnerID, text, stored.Version, updatedAt)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wrappedKeyRepository.PutWrappedKey").Msg("error caching wrapped key")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *wrappedKeyRepository) GetWrappedKey(ctx context.Context, ownerID int64) (models.StoredWrappedKey, error) {
	query, args, err := buildGetWrappedKeyQuery(r.db.builder(), ownerID)
	if err != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		stored models.StoredWrappedKey
		text   string
	)
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).Scan(&stored.OwnerID, &text, &stored.Version, &stored.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredWrappedKey{}, ErrWrappedKeyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*wrappedKeyRepository.GetWrappedKey").Msg("error reading wrapped key")
		return models.StoredWrappedKey{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	stored.WrappedKey, err = models.UnmarshalWrappedKey(text)
	if err != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("%w: %w", ErrCorruptedRow, err)
	}

	return stored, nil
}

func (r *wrappedKeyRepository) RotateWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error) {
	log := logger.FromContext(ctx)

	text, err := models.MarshalWrappedKey(wk)
	if err != nil {
		return 0, err
	}

	b := r.db.builder()
	keyQuery, keyArgs, err := buildCompareAndSwapWrappedKeyQuery(b, ownerID, text, expectedVersion, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	userQuery, userArgs, err := buildUpdateAuthHashQuery(b, ownerID, authHash)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*wrappedKeyRepository.RotateWrappedKey").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, keyQuery, keyArgs...)
	if err != nil {
		log.Err(err).Str("func", "*wrappedKeyRepository.RotateWrappedKey").Msg("error updating wrapped key")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Info().Str("func", "*wrappedKeyRepository.RotateWrappedKey").
			Int64("expected_version", expectedVersion).
			Msg("wrapped key version conflict")
		return 0, ErrVersionConflict
	}

	result, err = tx.ExecContext(ctx, userQuery, userArgs...)
	if err != nil {
		log.Err(err).Str("func", "*wrappedKeyRepository.RotateWrappedKey").Msg("error updating auth hash")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected, err = result.RowsAffected(); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return 0, ErrNoUserWasFound
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*wrappedKeyRepository.RotateWrappedKey").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	return expectedVersion + 1, nil
}
