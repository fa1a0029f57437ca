package crypto

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the cryptographic core. Callers match them with
// [errors.Is]; returned errors may wrap them with additional context.
var (
	// ErrFormat is returned when an envelope or wrapped key is structurally
	// invalid: undecodable base64, wrong iv/salt/tag length, or an unknown
	// payload format. No cryptographic operation is attempted.
	ErrFormat = errors.New("malformed envelope")

	// ErrAuthenticationFailure is returned when the AEAD tag does not verify.
	ErrAuthenticationFailure = errors.New("authentication failure")

	// ErrEntropyFailure is returned when the secure random source fails or
	// returns fewer bytes than requested. There is no fallback source.
	ErrEntropyFailure = errors.New("secure random source unavailable")

	// ErrInvalidKeySize is returned when a key is not exactly 32 bytes.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrUnsupportedKDF is returned when a wrapped key names a KDF version
	// that is not registered.
	ErrUnsupportedKDF = errors.New("unsupported kdf version")
)

// ErrInvalidCredential is returned by unseal when the wrapped key cannot be
// opened. The same value is returned for a wrong password and for a corrupted
// wrapped key. It matches [ErrAuthenticationFailure] via [errors.Is].
var ErrInvalidCredential = fmt.Errorf("%w: invalid credential", ErrAuthenticationFailure)
