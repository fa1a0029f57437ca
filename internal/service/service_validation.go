package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

// wrappedKeyFields is the full structural check applied to wrapped keys.
var wrappedKeyFields = []string{
	validators.FieldData,
	validators.FieldIV,
	validators.FieldSalt,
	validators.FieldTag,
	validators.FieldEncoding,
	validators.FieldKDF,
}

// WrappedKeyValidationService checks wrapped keys with the blind validator
// before handing them to the wrapped service. Nothing is decrypted.
type WrappedKeyValidationService struct {
	inner          WrappedKeyService
	validator      validators.Validator
	usersValidator validators.Validator
}

func NewWrappedKeyValidationService() WrappedKeyServiceWrapper {
	return &WrappedKeyValidationService{
		validator:      validators.NewBlindValidator(),
		usersValidator: validators.NewUserValidator(),
	}
}

func (v *WrappedKeyValidationService) PutWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64) (int64, error) {
	if err := v.validatePut(ctx, ownerID, wk, expectedVersion); err != nil {
		return 0, err
	}

	return v.inner.PutWrappedKey(ctx, ownerID, wk, expectedVersion)
}

func (v *WrappedKeyValidationService) RotateWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error) {
	if err := v.validatePut(ctx, ownerID, wk, expectedVersion); err != nil {
		return 0, err
	}
	if expectedVersion == 0 {
		return 0, ErrValidationRotationNeedsBase
	}
	if err := v.usersValidator.Validate(ctx, models.User{AuthHash: authHash}, validators.FieldAuthHash); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.RotateWrappedKey(ctx, ownerID, wk, expectedVersion, authHash)
}

func (v *WrappedKeyValidationService) GetWrappedKey(ctx context.Context, ownerID int64) (models.StoredWrappedKey, error) {
	if ownerID <= 0 {
		return models.StoredWrappedKey{}, ErrValidationNoOwnerID
	}

	return v.inner.GetWrappedKey(ctx, ownerID)
}

func (v *WrappedKeyValidationService) validatePut(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64) error {
	if ownerID <= 0 {
		return ErrValidationNoOwnerID
	}
	if expectedVersion < 0 {
		return ErrValidationNegativeVersion
	}
	if err := v.validator.Validate(ctx, wk, wrappedKeyFields...); err != nil {
		return fmt.Errorf("error during wrapped key validation: %w", err)
	}
	return nil
}

func (v *WrappedKeyValidationService) Wrap(inner WrappedKeyService) WrappedKeyService {
	v.inner = inner
	return v
}

// RecordValidationService checks record ids and every non-null field
// envelope before handing records to the wrapped service.
type RecordValidationService struct {
	inner     RecordService
	validator validators.Validator
}

func NewRecordValidationService() RecordServiceWrapper {
	return &RecordValidationService{
		validator: validators.NewRecordValidator(validators.NewBlindValidator()),
	}
}

func (v *RecordValidationService) SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	if record.OwnerID <= 0 {
		return models.EncryptedRecord{}, ErrValidationNoOwnerID
	}
	if err := v.validator.Validate(ctx, record); err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("error during record validation before saving: %w", err)
	}

	return v.inner.SaveRecord(ctx, record)
}

func (v *RecordValidationService) GetRecord(ctx context.Context, ownerID int64, recordID string) (models.EncryptedRecord, error) {
	if err := v.validateKey(ctx, ownerID, recordID); err != nil {
		return models.EncryptedRecord{}, err
	}

	return v.inner.GetRecord(ctx, ownerID, recordID)
}

func (v *RecordValidationService) ListRecordIDs(ctx context.Context, ownerID int64) ([]string, error) {
	if ownerID <= 0 {
		return nil, ErrValidationNoOwnerID
	}

	return v.inner.ListRecordIDs(ctx, ownerID)
}

func (v *RecordValidationService) DeleteRecord(ctx context.Context, ownerID int64, recordID string) error {
	if err := v.validateKey(ctx, ownerID, recordID); err != nil {
		return err
	}

	return v.inner.DeleteRecord(ctx, ownerID, recordID)
}

func (v *RecordValidationService) validateKey(ctx context.Context, ownerID int64, recordID string) error {
	if ownerID <= 0 {
		return ErrValidationNoOwnerID
	}
	return v.validator.Validate(ctx, recordID)
}

func (v *RecordValidationService) Wrap(inner RecordService) RecordService {
	v.inner = inner
	return v
}
