package service

import (
	"fmt"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/store"
)

// Services groups the server-side services consumed by the HTTP handlers.
type Services struct {
	AuthService       AuthService
	WrappedKeyService WrappedKeyService
	RecordService     RecordService
	AppInfoService    AppInfoService
}

// NewServices wires the server services over storages. Key and record
// services are wrapped with their validation layers.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, cfg.App, logger),
		WrappedKeyService: NewWrappedKeyValidationService().
			Wrap(NewWrappedKeyService(storages.WrappedKeyRepository, cfg.App, logger)),
		RecordService: NewRecordValidationService().
			Wrap(NewRecordService(storages.RecordRepository, logger)),
		AppInfoService: appInfoService,
	}, nil
}
