package store

import (
	"context"

	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts used for authentication.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// WrappedKeyRepository persists one wrapped data key per account.
type WrappedKeyRepository interface {
	// SaveWrappedKey inserts the wrapped key when expectedVersion is zero and
	// otherwise replaces it only if the stored version equals
	// expectedVersion. It returns the new version or [ErrVersionConflict].
	SaveWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64) (int64, error)
	GetWrappedKey(ctx context.Context, ownerID int64) (models.StoredWrappedKey, error)

	// RotateWrappedKey replaces the wrapped key under the same version check
	// as SaveWrappedKey and stores authHash for the owner in one transaction.
	// Used on password change, where both are derived from the password.
	RotateWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error)
}

// WrappedKeyCache is the client-side copy of the server's wrapped key. It
// mirrors whatever the server returned, version included.
type WrappedKeyCache interface {
	PutWrappedKey(ctx context.Context, stored models.StoredWrappedKey) error
	GetWrappedKey(ctx context.Context, ownerID int64) (models.StoredWrappedKey, error)
}

// RecordRepository persists encrypted journal records.
type RecordRepository interface {
	SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error)
	GetRecord(ctx context.Context, ownerID int64, recordID string) (models.EncryptedRecord, error)
	ListRecordIDs(ctx context.Context, ownerID int64) ([]string, error)
	DeleteRecord(ctx context.Context, ownerID int64, recordID string) error
}

// ErrorClassificator maps driver errors of one SQL dialect to
// retry decisions and domain conditions.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
