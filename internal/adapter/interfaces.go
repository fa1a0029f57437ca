// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the journal-vault server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-journal-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the vault
// server. Only ciphertext and the client-derived auth hash ever cross it.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the bearer token from the
	// Authorization response header is stored and returned with its owner id.
	Register(ctx context.Context, user models.User) (models.Token, error)

	// Login authenticates with the client-derived auth hash. On success the
	// bearer token is stored and returned with its owner id.
	Login(ctx context.Context, user models.User) (models.Token, error)

	// PutWrappedKey uploads the wrapped data key. expectedVersion is zero for
	// the first upload. Returns the new version, or [ErrConflict] (wrapped)
	// when the server holds a different version.
	PutWrappedKey(ctx context.Context, wk models.WrappedKey, expectedVersion int64) (int64, error)

	// RotateWrappedKey replaces the wrapped key and the login credential in
	// one request. Used on password change.
	RotateWrappedKey(ctx context.Context, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error)

	// GetWrappedKey downloads the wrapped data key and its version. Returns
	// [ErrNotFound] (wrapped) when setup has not happened yet.
	GetWrappedKey(ctx context.Context) (models.StoredWrappedKey, error)

	// PutRecord stores an encrypted record and returns it with the version
	// assigned by the server.
	PutRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error)

	GetRecord(ctx context.Context, recordID string) (models.EncryptedRecord, error)
	ListRecordIDs(ctx context.Context) ([]string, error)
	DeleteRecord(ctx context.Context, recordID string) error

	// GetAppVersion returns the server version string.
	GetAppVersion(ctx context.Context) (string, error)
}
