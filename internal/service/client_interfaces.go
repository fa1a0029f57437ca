package service

import (
	"context"

	"github.com/MKhiriev/go-journal-vault/internal/codec"
	"github.com/MKhiriev/go-journal-vault/models"
)

// VaultState is where the client stands with its data key.
type VaultState int

const (
	// NeedsSetup means the account has no wrapped key yet.
	NeedsSetup VaultState = iota + 1
	// NeedsUnlock means a wrapped key exists but no key is held in memory.
	NeedsUnlock
	// Unlocked means the data key is held by the session key store.
	Unlocked
)

func (s VaultState) String() string {
	switch s {
	case NeedsSetup:
		return "needs setup"
	case NeedsUnlock:
		return "locked"
	case Unlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}

// Vault is the client-side entry point: account login, key setup and unlock,
// and record encryption before anything leaves the device.
type Vault interface {
	// Register creates the account with the auth hash derived from password
	// and logs in. It does not create a data key; call Setup afterwards.
	Register(ctx context.Context, login, password string) error

	// Login authenticates with the auth hash derived from password.
	Login(ctx context.Context, login, password string) error

	// Status reports whether setup or unlock is needed. It falls back to the
	// local cache when the server cannot be reached.
	Status(ctx context.Context) (VaultState, error)

	// Setup generates the data key, seals it under password, uploads the
	// wrapped key and unlocks the session. Runs once per account.
	Setup(ctx context.Context, password string) error

	// Unlock unseals the wrapped key into the session key store. Every
	// failure to unseal is reported as [ErrUnlockFailed].
	Unlock(ctx context.Context, password string) error

	// Lock wipes the data key from memory.
	Lock()

	// ChangePassword rewraps the data key under newPassword. The data key
	// and therefore all records stay unchanged.
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error

	// SaveRecord encrypts the named fields of record and stores them under
	// id. An empty id gets a generated one. Only named fields are sent.
	SaveRecord(ctx context.Context, id string, record codec.Record, fields []string) (models.EncryptedRecord, error)

	// LoadRecord fetches and decrypts a record. Fields that fail to decrypt
	// are returned as [codec.Undecryptable] and listed in the failures. With
	// no fields named, every stored field is decrypted.
	LoadRecord(ctx context.Context, id string, fields []string) (codec.Record, []codec.FieldFailure, error)

	ListRecords(ctx context.Context) ([]string, error)
	DeleteRecord(ctx context.Context, id string) error
}
