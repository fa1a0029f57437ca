package service

import (
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/session"
	"github.com/MKhiriev/go-journal-vault/internal/store"
)

// ClientServices groups what the client commands need: the vault and the
// session it unlocks.
type ClientServices struct {
	Vault    Vault
	KeyStore *session.KeyStore
	AutoLock *session.AutoLock
}

// NewClientServices wires the vault over the server adapter and the local
// wrapped-key cache. The data key is kept in a process-wide arena under the
// configured namespace.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	keyStore := session.NewKeyStore(session.NewArena(), cfg.Vault.Namespace)

	vault, err := NewVault(serverAdapter, storages.WrappedKeyCache, keyStore, cfg.Vault, VaultComponents{}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating vault: %w", err)
	}

	return &ClientServices{
		Vault:    vault,
		KeyStore: keyStore,
		AutoLock: session.NewAutoLock(keyStore, cfg.Workers.AutoLockTimeout, logger),
	}, nil
}
