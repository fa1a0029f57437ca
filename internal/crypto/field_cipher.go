// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/MKhiriev/go-journal-vault/models"
	"golang.org/x/crypto/hkdf"
)

const (
	// fieldKeyInfo is the HKDF info string for per-field subkeys.
	fieldKeyInfo = "journal-vault/field/v1"

	// payloadUTF8 tags a sealed payload holding UTF-8 text.
	payloadUTF8 byte = 0x01
)

// fieldCipher is the private implementation of [FieldCipher]. It holds no
// key state and is safe for concurrent use.
type fieldCipher struct {
	random io.Reader
}

// NewFieldCipher returns a [FieldCipher] drawing ivs and salts from random.
// A nil reader selects [crypto/rand.Reader].
func NewFieldCipher(random io.Reader) FieldCipher {
	if random == nil {
		random = rand.Reader
	}
	return &fieldCipher{random: random}
}

// Encrypt implements [FieldCipher].
//
// A fresh iv and salt are drawn per call. The salt and the data key feed
// HKDF-SHA256 to produce the AES-256-GCM key for this field only. The sealed
// payload is a one-byte format tag followed by the UTF-8 plaintext, so the
// ciphertext is never empty.
func (c *fieldCipher) Encrypt(plaintext string, key DataKey) (models.Envelope, error) {
	if !key.Valid() {
		return models.Envelope{}, fmt.Errorf("field encrypt: %w", ErrInvalidKeySize)
	}

	iv, err := randomBytes(c.random, NonceSize)
	if err != nil {
		return models.Envelope{}, err
	}
	salt, err := randomBytes(c.random, SaltSize)
	if err != nil {
		return models.Envelope{}, err
	}

	subkey, err := deriveFieldKey(key, salt)
	if err != nil {
		return models.Envelope{}, err
	}
	defer Zero(subkey)

	gcm, err := newGCM(subkey)
	if err != nil {
		return models.Envelope{}, err
	}

	payload := make([]byte, 0, len(plaintext)+1)
	payload = append(payload, payloadUTF8)
	payload = append(payload, plaintext...)
	defer Zero(payload)

	data, tag := split(gcm.Seal(nil, iv, payload, nil))

	return sealedParts{data: data, iv: iv, salt: salt, tag: tag}.envelope(), nil
}

// Decrypt implements [FieldCipher].
//
// Structural problems are reported as [ErrFormat] before any cryptographic
// work. A tag that does not verify is [ErrAuthenticationFailure]; no partial
// plaintext is ever returned.
func (c *fieldCipher) Decrypt(env models.Envelope, key DataKey) (string, error) {
	if !key.Valid() {
		return "", fmt.Errorf("field decrypt: %w: %w", ErrFormat, ErrInvalidKeySize)
	}

	parts, err := decodeEnvelope(env)
	if err != nil {
		return "", err
	}

	subkey, err := deriveFieldKey(key, parts.salt)
	if err != nil {
		return "", err
	}
	defer Zero(subkey)

	gcm, err := newGCM(subkey)
	if err != nil {
		return "", err
	}

	payload, err := gcm.Open(nil, parts.iv, parts.joined(), nil)
	if err != nil {
		return "", ErrAuthenticationFailure
	}
	defer Zero(payload)

	if len(payload) == 0 || payload[0] != payloadUTF8 {
		return "", fmt.Errorf("%w: unknown payload format", ErrFormat)
	}
	if !utf8.Valid(payload[1:]) {
		return "", fmt.Errorf("%w: payload is not valid UTF-8", ErrFormat)
	}

	return string(payload[1:]), nil
}

// deriveFieldKey expands the data key and the envelope salt into a 256-bit
// field subkey.
func deriveFieldKey(key DataKey, salt []byte) ([]byte, error) {
	subkey := make([]byte, KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, salt, []byte(fieldKeyInfo)), subkey); err != nil {
		return nil, fmt.Errorf("derive field key: %w", err)
	}
	return subkey, nil
}
