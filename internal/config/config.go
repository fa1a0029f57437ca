// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client binaries. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds secrets and token parameters of the server and the log
	// destination of the client.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings. The server keeps
	// accounts, wrapped keys and records there; the client keeps its local
	// wrapped-key cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the remote server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Vault holds client-side account and encryption settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Workers holds background worker settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level values that control security, token lifecycle
// and versioning.
type App struct {
	// PasswordHashKey is the HMAC key the server applies to client auth
	// hashes before storing them.
	// Env: APP_PASSWORD_HASH_KEY
	PasswordHashKey string `env:"PASSWORD_HASH_KEY"`

	// TokenSignKey signs and verifies JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of every issued token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version of the running binary.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogPath is the client log file. The client never logs to stdout so
	// that prompts and output stay clean.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Server holds network and timeout settings of the inbound transport.
type Server struct {
	// HTTPAddress is the "host:port" the HTTP server listens on.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver: postgres:// and postgresql:// URLs use pgx,
	// anything else is opened as a SQLite file.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the client's outbound HTTP settings.
type Adapter struct {
	// ServerURL is the base URL of the vault server.
	// Env: ADAPTER_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Vault holds client-side account and encryption settings.
type Vault struct {
	// Login is the account login used for register and login.
	// Env: VAULT_LOGIN
	Login string `env:"LOGIN"`

	// Namespace isolates session handles of different client profiles
	// running in one process.
	// Env: VAULT_NAMESPACE
	Namespace string `env:"NAMESPACE"`

	// KDFVersion selects the password KDF for new wrapped keys.
	// Zero means the library default.
	// Env: VAULT_KDF_VERSION
	KDFVersion int `env:"KDF_VERSION"`

	// Concurrency limits parallel field operations per record.
	// Env: VAULT_CONCURRENCY
	Concurrency int `env:"CONCURRENCY"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// AutoLockTimeout is the idle time after which the session key is
	// cleared.
	// Env: WORKERS_AUTO_LOCK_TIMEOUT
	AutoLockTimeout time.Duration `env:"AUTO_LOCK_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following priority order (later sources override non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
//
// It returns the merged config and the positional arguments left after flag
// parsing.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON()

	cfg, err := b.build()
	if err != nil {
		return nil, nil, err
	}

	return cfg, b.args, nil
}

// GetServerConfig returns the merged configuration validated for the server
// binary.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, _, err := GetStructuredConfig(args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}
