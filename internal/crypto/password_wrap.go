// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"github.com/MKhiriev/go-journal-vault/models"
)

// passwordKeyWrap is the private implementation of [PasswordKeyWrap].
type passwordKeyWrap struct {
	random  io.Reader
	version models.KDFVersion
}

// NewPasswordKeyWrap returns a [PasswordKeyWrap] that seals new keys with the
// given KDF version. Zero selects [DefaultKDF]; an unregistered version fails
// with [ErrUnsupportedKDF]. A nil reader selects [crypto/rand.Reader].
func NewPasswordKeyWrap(version models.KDFVersion, random io.Reader) (PasswordKeyWrap, error) {
	if version == 0 {
		version = DefaultKDF
	}
	if _, err := lookupKDF(version); err != nil {
		return nil, err
	}
	if random == nil {
		random = rand.Reader
	}

	return &passwordKeyWrap{random: random, version: version}, nil
}

// Seal implements [PasswordKeyWrap].
//
// The KDF salt is stored in the wrapped key's salt field and the KDF version
// in its kdf field, so the result is self-contained.
func (w *passwordKeyWrap) Seal(ctx context.Context, key DataKey, password string) (models.WrappedKey, error) {
	if !key.Valid() {
		return models.WrappedKey{}, fmt.Errorf("seal: %w", ErrInvalidKeySize)
	}

	params, err := lookupKDF(w.version)
	if err != nil {
		return models.WrappedKey{}, err
	}

	salt, err := randomBytes(w.random, SaltSize)
	if err != nil {
		return models.WrappedKey{}, err
	}
	iv, err := randomBytes(w.random, NonceSize)
	if err != nil {
		return models.WrappedKey{}, err
	}

	wrappingKey, err := params.deriveContext(ctx, password, salt)
	if err != nil {
		return models.WrappedKey{}, err
	}
	defer Zero(wrappingKey)

	gcm, err := newGCM(wrappingKey)
	if err != nil {
		return models.WrappedKey{}, err
	}

	data, tag := split(gcm.Seal(nil, iv, key, nil))

	return models.WrappedKey{
		Envelope: sealedParts{data: data, iv: iv, salt: salt, tag: tag}.envelope(),
		KDF:      w.version,
	}, nil
}

// Unseal implements [PasswordKeyWrap].
//
// A wrong password and a corrupted wrapped key both yield exactly
// [ErrInvalidCredential].
func (w *passwordKeyWrap) Unseal(ctx context.Context, wrapped models.WrappedKey, password string) (DataKey, error) {
	params, err := lookupKDF(wrapped.KDF)
	if err != nil {
		return nil, err
	}

	parts, err := decodeEnvelope(wrapped.Envelope)
	if err != nil {
		return nil, err
	}

	wrappingKey, err := params.deriveContext(ctx, password, parts.salt)
	if err != nil {
		return nil, err
	}
	defer Zero(wrappingKey)

	gcm, err := newGCM(wrappingKey)
	if err != nil {
		return nil, err
	}

	raw, err := gcm.Open(nil, parts.iv, parts.joined(), nil)
	if err != nil {
		return nil, ErrInvalidCredential
	}
	if len(raw) != KeySize {
		Zero(raw)
		return nil, ErrInvalidCredential
	}

	return DataKey(raw), nil
}

// Rewrap implements [PasswordKeyWrap]. The intermediate data key is wiped
// before returning.
func (w *passwordKeyWrap) Rewrap(ctx context.Context, wrapped models.WrappedKey, oldPassword, newPassword string) (models.WrappedKey, error) {
	key, err := w.Unseal(ctx, wrapped, oldPassword)
	if err != nil {
		return models.WrappedKey{}, err
	}
	defer key.Zero()

	rewrapped, err := w.Seal(ctx, key, newPassword)
	if err != nil {
		return models.WrappedKey{}, fmt.Errorf("rewrap: %w", err)
	}

	return rewrapped, nil
}
