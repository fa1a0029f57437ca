package crypto

import (
	"context"

	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyGenerator produces fresh data keys.
type KeyGenerator interface {
	// Generate returns a new random 256-bit key, or [ErrEntropyFailure].
	Generate() (DataKey, error)
}

// FieldCipher encrypts and decrypts single text fields. Implementations are
// stateless and safe for concurrent use.
type FieldCipher interface {
	// Encrypt seals plaintext under key into a fresh envelope. Two calls with
	// the same input never produce the same iv.
	Encrypt(plaintext string, key DataKey) (models.Envelope, error)

	// Decrypt opens env with key. Fails with [ErrFormat] on structural
	// problems and [ErrAuthenticationFailure] when the tag does not verify.
	Decrypt(env models.Envelope, key DataKey) (string, error)
}

// PasswordKeyWrap seals a data key under a password-derived key.
//
// Derivation is deliberately slow. It runs off the calling goroutine and
// honours ctx cancellation.
type PasswordKeyWrap interface {
	Seal(ctx context.Context, key DataKey, password string) (models.WrappedKey, error)
	Unseal(ctx context.Context, wrapped models.WrappedKey, password string) (DataKey, error)

	// Rewrap unseals with oldPassword and seals again with newPassword at the
	// current KDF version.
	Rewrap(ctx context.Context, wrapped models.WrappedKey, oldPassword, newPassword string) (models.WrappedKey, error)
}

// AuthHasher derives the credential the client presents to the server at
// login. It is unrelated to the wrapping key.
type AuthHasher interface {
	AuthHash(ctx context.Context, login, password string) (string, error)
}
