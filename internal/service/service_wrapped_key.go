package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
)

type wrappedKeyService struct {
	wrappedKeyRepository store.WrappedKeyRepository

	// hashKey hashes the new auth hash on rotation, as on registration.
	hashKey string

	logger *logger.Logger
}

// NewWrappedKeyService returns a [WrappedKeyService] over repo. It performs
// no validation; wrap it with [NewWrappedKeyValidationService].
func NewWrappedKeyService(repo store.WrappedKeyRepository, cfg config.App, logger *logger.Logger) WrappedKeyService {
	return &wrappedKeyService{
		wrappedKeyRepository: repo,
		hashKey:              cfg.PasswordHashKey,
		logger:               logger,
	}
}

func (s *wrappedKeyService) PutWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64) (int64, error) {
	version, err := s.wrappedKeyRepository.SaveWrappedKey(ctx, ownerID, wk, expectedVersion)
	if err != nil {
		return 0, fmt.Errorf("error saving wrapped key: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("owner_id", ownerID).
		Int64("version", version).
		Int("kdf", int(wk.KDF)).
		Dict("wrapped_key", logger.EnvelopeSizes(wk.Data, wk.IV, wk.Salt, wk.Tag)).
		Msg("wrapped key stored")

	return version, nil
}

func (s *wrappedKeyService) RotateWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error) {
	version, err := s.wrappedKeyRepository.RotateWrappedKey(ctx, ownerID, wk, expectedVersion, utils.HashString(authHash, s.hashKey))
	if err != nil {
		return 0, fmt.Errorf("error rotating wrapped key: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("owner_id", ownerID).
		Int64("version", version).
		Int("kdf", int(wk.KDF)).
		Msg("wrapped key rotated")

	return version, nil
}

func (s *wrappedKeyService) GetWrappedKey(ctx context.Context, ownerID int64) (models.StoredWrappedKey, error) {
	stored, err := s.wrappedKeyRepository.GetWrappedKey(ctx, ownerID)
	if err != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("error reading wrapped key: %w", err)
	}

	return stored, nil
}
