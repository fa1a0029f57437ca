// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/models"
)

// recordRepository keeps encrypted records in "records". The field map is
// stored as one JSON text column; the repository never looks inside it.
type recordRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRecordRepository constructs a [RecordRepository] backed by db.
func NewRecordRepository(db *DB, logger *logger.Logger) RecordRepository {
	logger.Debug().Msg("creating record repository")
	return &recordRepository{db: db, logger: logger}
}

// SaveRecord inserts or replaces the record and returns it with the new
// version and update time.
func (r *recordRepository) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	fields, err := json.Marshal(record.Fields)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("error encoding record fields: %w", err)
	}

	now := time.Now().UTC()
	query, args, err := buildSaveRecordQuery(r.db.builder(), record.OwnerID, record.ID, string(fields), now)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&record.Version); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recordRepository.SaveRecord").Msg("error saving record")
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	record.UpdatedAt = now

	return record, nil
}

func (r *recordRepository) GetRecord(ctx context.Context, ownerID int64, recordID string) (models.EncryptedRecord, error) {
	query, args, err := buildGetRecordQuery(r.db.builder(), ownerID, recordID)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		record models.EncryptedRecord
		fields string
	)
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		return r.db.QueryRowContext(ctx, query, args...).
			Scan(&record.ID, &record.OwnerID, &fields, &record.Version, &record.UpdatedAt)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return models.EncryptedRecord{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recordRepository.GetRecord").Msg("error reading record")
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(fields), &record.Fields); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("%w: %w", ErrCorruptedRow, err)
	}

	return record, nil
}

func (r *recordRepository) ListRecordIDs(ctx context.Context, ownerID int64) ([]string, error) {
	query, args, err := buildListRecordIDsQuery(r.db.builder(), ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ids []string
	err = r.db.withRetry(ctx, func(ctx context.Context) error {
		ids = make([]string, 0)

		rows, err := r.db.QueryContext(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				return fmt.Errorf("%w: %w", ErrScanningRows, err)
			}
			ids = append(ids, id)
		}
		return rows.Err()
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recordRepository.ListRecordIDs").Msg("error listing records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ids, nil
}

func (r *recordRepository) DeleteRecord(ctx context.Context, ownerID int64, recordID string) error {
	query, args, err := buildDeleteRecordQuery(r.db.builder(), ownerID, recordID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*recordRepository.DeleteRecord").Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
