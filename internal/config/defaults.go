package config

import "time"

const (
	defaultHTTPAddress     = "localhost:8080"
	defaultServerURL       = "http://localhost:8080"
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
	defaultTokenIssuer     = "journal-vault"
	defaultTokenDuration   = 24 * time.Hour
	defaultNamespace       = "default"
	defaultConcurrency     = 8
	defaultAutoLockTimeout = 15 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   defaultTokenIssuer,
			TokenDuration: defaultTokenDuration,
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
		},
		Adapter: Adapter{
			ServerURL:      defaultServerURL,
			RequestTimeout: defaultRequestTimeout,
		},
		Vault: Vault{
			Namespace:   defaultNamespace,
			Concurrency: defaultConcurrency,
		},
		Workers: Workers{
			AutoLockTimeout: defaultAutoLockTimeout,
		},
	}
}
