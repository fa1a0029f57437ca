package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogPath is the client log file.
	LogPath string
	// Version is the client version.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the vault server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file of the local wrapped-key cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientVault holds the account and encryption settings of the client.
type ClientVault struct {
	Login       string
	Namespace   string
	KDFVersion  int
	Concurrency int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutoLockTimeout is the idle interval after which the session locks.
	AutoLockTimeout time.Duration
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Vault   ClientVault
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from
// the merged structured configuration. The positional arguments left after
// flag parsing (the command and its operands) are returned alongside.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg, rest, err := GetStructuredConfig(args)
	if err != nil {
		return nil, nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, rest, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			LogPath: cfg.App.LogPath,
			Version: cfg.App.Version,
		},
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Vault: ClientVault{
			Login:       cfg.Vault.Login,
			Namespace:   cfg.Vault.Namespace,
			KDFVersion:  cfg.Vault.KDFVersion,
			Concurrency: cfg.Vault.Concurrency,
		},
		Workers: ClientWorkers{AutoLockTimeout: cfg.Workers.AutoLockTimeout},
	}
}
