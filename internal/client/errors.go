package client

import "errors"

var (
	// ErrUsage is returned for an unknown command or missing operands.
	ErrUsage = errors.New("invalid usage")

	// ErrNoLogin is returned when no account login is configured.
	ErrNoLogin = errors.New("no login configured, set -login or VAULT_LOGIN")

	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrLoginTaken is returned by register when the login is in use.
	ErrLoginTaken = errors.New("login already exists")

	// ErrEmptyPassword is returned for an empty password.
	ErrEmptyPassword = errors.New("password must not be empty")
)
