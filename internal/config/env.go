// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the process environment. Server and client read
// the same variable set: APP_*, SERVER_*, STORAGE_DB_* for the server and
// ADAPTER_*, VAULT_*, WORKERS_* for the client. CONFIG names the JSON file.
// Unset variables leave their fields zero so later layers can fill them.
//
// A value that cannot be converted is reported as [ErrInvalidEnvConfigs].
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEnvConfigs, err)
	}

	return nil
}
