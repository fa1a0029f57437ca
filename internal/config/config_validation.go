// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/jellydator/validation"
)

// known KDF versions; zero selects the default.
var kdfVersions = []any{0, 1, 2}

// validate checks invariants every binary shares: no negative durations.
func (cfg *StructuredConfig) validate() error {
	if err := validation.ValidateStruct(&cfg.App,
		validation.Field(&cfg.App.TokenDuration, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Server,
		validation.Field(&cfg.Server.RequestTimeout, validation.Min(0)),
		validation.Field(&cfg.Server.ShutdownTimeout, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Workers,
		validation.Field(&cfg.Workers.AutoLockTimeout, validation.Min(0)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	return nil
}

// validateServer checks the settings the server binary cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if err := validation.ValidateStruct(&cfg.App,
		validation.Field(&cfg.App.TokenSignKey, validation.Required),
		validation.Field(&cfg.App.PasswordHashKey, validation.Required),
		validation.Field(&cfg.App.TokenIssuer, validation.Required),
		validation.Field(&cfg.App.TokenDuration, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Storage.DB,
		validation.Field(&cfg.Storage.DB.DSN, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStorageConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Server,
		validation.Field(&cfg.Server.HTTPAddress, validation.Required),
		validation.Field(&cfg.Server.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, err)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if err := validation.ValidateStruct(&cfg.Adapter,
		validation.Field(&cfg.Adapter.ServerURL, validation.Required),
		validation.Field(&cfg.Adapter.RequestTimeout, validation.Required),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	if err := validation.ValidateStruct(&cfg.Vault,
		validation.Field(&cfg.Vault.Login, validation.Required),
		validation.Field(&cfg.Vault.Namespace, validation.Required),
		validation.Field(&cfg.Vault.KDFVersion, validation.In(kdfVersions...)),
		validation.Field(&cfg.Vault.Concurrency, validation.Required, validation.Min(1)),
	); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidVaultConfigs, err)
	}

	if cfg.Workers.AutoLockTimeout <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
