package service

import (
	"context"

	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=WrappedKeyServiceWrapper,RecordServiceWrapper

// AuthService registers accounts and issues the JWTs that scope every vault
// request to one owner.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// WrappedKeyService stores the single wrapped data key of an owner. The
// server never sees the key itself, only its password-sealed envelope.
type WrappedKeyService interface {
	// PutWrappedKey stores wk when the stored version equals
	// expectedVersion (zero for the first upload) and returns the new version.
	PutWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64) (int64, error)

	// RotateWrappedKey is PutWrappedKey plus a new login credential, applied
	// atomically on password change.
	RotateWrappedKey(ctx context.Context, ownerID int64, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error)

	GetWrappedKey(ctx context.Context, ownerID int64) (models.StoredWrappedKey, error)
}

// RecordService stores encrypted records. Fields are opaque envelopes.
type RecordService interface {
	SaveRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error)
	GetRecord(ctx context.Context, ownerID int64, recordID string) (models.EncryptedRecord, error)
	ListRecordIDs(ctx context.Context, ownerID int64) ([]string, error)
	DeleteRecord(ctx context.Context, ownerID int64, recordID string) error
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// WrappedKeyServiceWrapper defines middleware composition for
// WrappedKeyService. Implementations wrap an existing WrappedKeyService to add
// behavior such as validation.
type WrappedKeyServiceWrapper interface {
	Wrap(WrappedKeyService) WrappedKeyService
}

// RecordServiceWrapper defines middleware composition for RecordService.
type RecordServiceWrapper interface {
	Wrap(RecordService) RecordService
}
