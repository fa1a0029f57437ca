// Package handler builds the inbound transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/handler/http"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/service"
)

// Handlers holds one handler per enabled transport.
type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the handlers for every transport that has an address
// in cfg.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
