// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/mock"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validWrappedKey() models.WrappedKey {
	return models.WrappedKey{
		Envelope: models.Envelope{Data: "ZGF0YQ==", IV: "aXY=", Salt: "c2FsdA==", Tag: "dGFn"},
		KDF:      models.KDFArgon2id,
	}
}

func newTestWrappedKeyService(t *testing.T) (WrappedKeyService, *mock.MockWrappedKeyRepository) {
	t.Helper()

	repo := mock.NewMockWrappedKeyRepository(gomock.NewController(t))
	svc := NewWrappedKeyValidationService().Wrap(NewWrappedKeyService(repo, testAppConfig, logger.Nop()))
	return svc, repo
}

func TestWrappedKeyService_Put(t *testing.T) {
	svc, repo := newTestWrappedKeyService(t)
	ctx := context.Background()

	repo.EXPECT().SaveWrappedKey(gomock.Any(), int64(7), validWrappedKey(), int64(0)).Return(int64(1), nil)
	version, err := svc.PutWrappedKey(ctx, 7, validWrappedKey(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	repo.EXPECT().SaveWrappedKey(gomock.Any(), int64(7), gomock.Any(), int64(1)).Return(int64(0), store.ErrVersionConflict)
	_, err = svc.PutWrappedKey(ctx, 7, validWrappedKey(), 1)
	assert.ErrorIs(t, err, store.ErrVersionConflict)
}

func TestWrappedKeyService_Rotate(t *testing.T) {
	svc, repo := newTestWrappedKeyService(t)

	repo.EXPECT().
		RotateWrappedKey(gomock.Any(), int64(7), validWrappedKey(), int64(2), utils.HashString(clientAuthHash, "hash-key")).
		Return(int64(3), nil)

	version, err := svc.RotateWrappedKey(context.Background(), 7, validWrappedKey(), 2, clientAuthHash)
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestWrappedKeyService_Get(t *testing.T) {
	svc, repo := newTestWrappedKeyService(t)
	ctx := context.Background()

	repo.EXPECT().GetWrappedKey(gomock.Any(), int64(7)).Return(models.StoredWrappedKey{OwnerID: 7, WrappedKey: validWrappedKey(), Version: 2}, nil)
	stored, err := svc.GetWrappedKey(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.Version)

	repo.EXPECT().GetWrappedKey(gomock.Any(), int64(8)).Return(models.StoredWrappedKey{}, store.ErrWrappedKeyNotFound)
	_, err = svc.GetWrappedKey(ctx, 8)
	assert.ErrorIs(t, err, store.ErrWrappedKeyNotFound)
}
