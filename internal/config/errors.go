package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid. The underlying rule violation is joined to them.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing server URL or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or an in-memory client DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a missing token sign key on the server).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid listen or timeout settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidVaultConfigs indicates invalid client account or encryption
	// settings (for example, a missing login or unknown KDF version).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidWorkerConfigs indicates invalid background worker settings
	// (for example, zero auto-lock timeout).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidEnvConfigs indicates an environment variable whose value
	// cannot be converted to its field type.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
)
