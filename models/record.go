// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// EncryptedRecord is a journal record as the server sees it: a set of named
// fields, each holding either an envelope or JSON null. The server never
// learns what the fields contain.
type EncryptedRecord struct {
	// ID is the client-chosen record identifier.
	ID string `json:"id"`

	// OwnerID is the account that owns the record. It is taken from the
	// authenticated request and never from the body.
	OwnerID int64 `json:"-"`

	// Fields maps field names to raw envelope JSON (or null).
	Fields map[string]json.RawMessage `json:"fields"`

	// Version is incremented on every save.
	Version int64 `json:"version"`

	UpdatedAt time.Time `json:"updated_at"`
}

// StoredWrappedKey is a wrapped key together with its optimistic-locking
// version as kept by a repository.
type StoredWrappedKey struct {
	OwnerID    int64
	WrappedKey WrappedKey
	Version    int64
	UpdatedAt  time.Time
}
