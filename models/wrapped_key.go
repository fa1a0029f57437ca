// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// KDFVersion identifies the password-based key derivation parameters used to
// produce the wrapping key of a [WrappedKey]. Zero is never a valid version.
type KDFVersion int

const (
	// KDFPBKDF2SHA256 is PBKDF2-HMAC-SHA256 with a fixed high iteration count.
	KDFPBKDF2SHA256 KDFVersion = 1

	// KDFArgon2id is Argon2id with the 64 MiB / 4 thread profile.
	KDFArgon2id KDFVersion = 2
)

// WrappedKey is the account's data key sealed under a password-derived key.
// It has the envelope shape; Salt carries the KDF salt and KDF records which
// derivation parameters were used so they can change without breaking old
// wrapped keys.
type WrappedKey struct {
	Envelope

	// KDF is the derivation parameter set used for this wrapped key.
	KDF KDFVersion `json:"kdf"`
}

type wrappedKeyText struct {
	envelopeText
	KDF *KDFVersion `json:"kdf"`
}

// MarshalWrappedKey converts w into its stored JSON text form.
func MarshalWrappedKey(w WrappedKey) (string, error) {
	if !w.IsComplete() || w.KDF <= 0 {
		return "", fmt.Errorf("%w: wrapped key is incomplete", ErrEnvelopeFormat)
	}

	b, err := json.Marshal(w)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnvelopeFormat, err)
	}

	return string(b), nil
}

// UnmarshalWrappedKey parses the stored JSON text form of a wrapped key.
// The four envelope fields and a positive kdf version are all required.
func UnmarshalWrappedKey(text string) (WrappedKey, error) {
	var t wrappedKeyText
	if err := json.Unmarshal([]byte(text), &t); err != nil {
		return WrappedKey{}, fmt.Errorf("%w: %v", ErrEnvelopeFormat, err)
	}

	env, err := t.envelope()
	if err != nil {
		return WrappedKey{}, err
	}
	if t.KDF == nil || *t.KDF <= 0 {
		return WrappedKey{}, fmt.Errorf("%w: field %q is missing", ErrEnvelopeFormat, "kdf")
	}

	return WrappedKey{Envelope: env, KDF: *t.KDF}, nil
}
