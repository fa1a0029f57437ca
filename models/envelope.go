// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrEnvelopeFormat is returned when an envelope cannot be converted to or
// from its stored text form: the text is not JSON, or one of the four fields
// is missing, not a string, or empty.
var ErrEnvelopeFormat = errors.New("malformed envelope")

// Envelope is one encrypted field as it travels between the client and the
// server. Every value is a standard base64 string; the server treats the
// whole struct as opaque.
type Envelope struct {
	// Data is the AEAD ciphertext without the authentication tag.
	Data string `json:"data"`

	// IV is the 96-bit GCM nonce.
	IV string `json:"iv"`

	// Salt is the 256-bit salt. For field envelopes it feeds the per-field
	// subkey derivation; for wrapped keys it is the KDF salt.
	Salt string `json:"salt"`

	// Tag is the 128-bit GCM authentication tag.
	Tag string `json:"tag"`
}

// IsComplete reports whether all four fields are non-empty.
func (e Envelope) IsComplete() bool {
	return e.Data != "" && e.IV != "" && e.Salt != "" && e.Tag != ""
}

// envelopeText mirrors Envelope with pointer fields so that a missing JSON
// key can be told apart from an empty string.
type envelopeText struct {
	Data *string `json:"data"`
	IV   *string `json:"iv"`
	Salt *string `json:"salt"`
	Tag  *string `json:"tag"`
}

func (t envelopeText) envelope() (Envelope, error) {
	fields := []struct {
		name  string
		value *string
	}{
		{"data", t.Data},
		{"iv", t.IV},
		{"salt", t.Salt},
		{"tag", t.Tag},
	}
	for _, f := range fields {
		if f.value == nil {
			return Envelope{}, fmt.Errorf("%w: field %q is missing", ErrEnvelopeFormat, f.name)
		}
		if *f.value == "" {
			return Envelope{}, fmt.Errorf("%w: field %q is empty", ErrEnvelopeFormat, f.name)
		}
	}

	return Envelope{Data: *t.Data, IV: *t.IV, Salt: *t.Salt, Tag: *t.Tag}, nil
}

// MarshalEnvelope converts e into its stored JSON text form.
// Incomplete envelopes are rejected with [ErrEnvelopeFormat].
func MarshalEnvelope(e Envelope) (string, error) {
	if !e.IsComplete() {
		return "", fmt.Errorf("%w: envelope is incomplete", ErrEnvelopeFormat)
	}

	b, err := json.Marshal(e)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEnvelopeFormat, err)
	}

	return string(b), nil
}

// UnmarshalEnvelope parses the stored JSON text form of an envelope.
// Returns [ErrEnvelopeFormat] if the text is not a JSON object or any of the
// four fields is missing, not a string, or empty. Unknown keys are ignored.
func UnmarshalEnvelope(text string) (Envelope, error) {
	var t envelopeText
	if err := json.Unmarshal([]byte(text), &t); err != nil {
		return Envelope{}, fmt.Errorf("%w: %v", ErrEnvelopeFormat, err)
	}

	return t.envelope()
}
