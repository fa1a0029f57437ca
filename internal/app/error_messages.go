// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// journal-vault server handlers, middleware and client commands.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, log entries or terminal output to describe the outcome
// of an operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied login and auth
	// hash do not match an existing account.
	MsgInvalidLoginPassword = "invalid login/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoOwnerIDProvided is returned when a handler requires the owner id
	// from the JWT claim but none is present in the request context.
	MsgNoOwnerIDProvided = "no owner ID provided"

	// MsgLoginAlreadyExists is returned when a registration attempt is
	// rejected because the requested login is already in use.
	MsgLoginAlreadyExists = "login already exists"

	// MsgInvalidEnvelope is returned when a wrapped key or a record field is
	// not a well-formed envelope.
	MsgInvalidEnvelope = "invalid envelope"

	// MsgInvalidRecordID is returned for record ids outside [A-Za-z0-9._-].
	MsgInvalidRecordID = "invalid record id"

	// MsgWrappedKeyNotFound is returned when the account has not completed
	// setup yet.
	MsgWrappedKeyNotFound = "wrapped key not found"

	// MsgRecordNotFound is returned when a read or delete targets a record
	// that does not exist for the current owner.
	MsgRecordNotFound = "record not found"

	// MsgVersionConflict is returned when the expected wrapped key version
	// no longer matches the stored one. The client should reload and retry.
	MsgVersionConflict = "version conflict, please reload"

	// MsgUnlockFailed is the only message shown for a failed unlock. Wrong
	// passwords and corrupted wrapped keys are deliberately not told apart.
	MsgUnlockFailed = "unable to unlock vault: check your password"

	// MsgVaultLocked is shown when an operation needs the data key but the
	// vault is locked.
	MsgVaultLocked = "vault is locked"

	// MsgSetupRequired is shown when the account has no wrapped key yet.
	MsgSetupRequired = "vault is not set up yet"

	// MsgAlreadySetUp is shown when setup runs for an account that already
	// has a wrapped key.
	MsgAlreadySetUp = "vault is already set up"

	// MsgUndecryptable replaces the value of a field that failed to decrypt.
	MsgUndecryptable = "unable to decrypt"
)
