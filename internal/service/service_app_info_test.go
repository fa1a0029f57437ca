package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_EmptyVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{}, logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestGetAppVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.App{Version: "0.4.0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	assert.Equal(t, "0.4.0", svc.GetAppVersion(ctx))

	cancel()
	assert.Equal(t, "0.4.0", svc.GetAppVersion(ctx), "version does not depend on the request context")
}
