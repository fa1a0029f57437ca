package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/models"
)

type recordService struct {
	recordRepository store.RecordRepository

	logger *logger.Logger
}

// NewRecordService returns a [RecordService] over repo. It performs no
// validation; wrap it with [NewRecordValidationService].
func NewRecordService(repo store.RecordRepository, logger *logger.Logger) RecordService {
	return &recordService{
		recordRepository: repo,
		logger:           logger,
	}
}

func (s *recordService) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	saved, err := s.recordRepository.SaveRecord(ctx, record)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("error saving record: %w", err)
	}

	logger.FromContext(ctx).Debug().
		Int64("owner_id", record.OwnerID).
		Str("record_id", record.ID).
		Int("fields", len(record.Fields)).
		Int64("version", saved.Version).
		Msg("record stored")

	return saved, nil
}

func (s *recordService) GetRecord(ctx context.Context, ownerID int64, recordID string) (models.EncryptedRecord, error) {
	record, err := s.recordRepository.GetRecord(ctx, ownerID, recordID)
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("error reading record: %w", err)
	}
	return record, nil
}

func (s *recordService) ListRecordIDs(ctx context.Context, ownerID int64) ([]string, error) {
	ids, err := s.recordRepository.ListRecordIDs(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing records: %w", err)
	}
	return ids, nil
}

func (s *recordService) DeleteRecord(ctx context.Context, ownerID int64, recordID string) error {
	if err := s.recordRepository.DeleteRecord(ctx, ownerID, recordID); err != nil {
		return fmt.Errorf("error deleting record: %w", err)
	}
	return nil
}
