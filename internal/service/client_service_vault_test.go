// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-journal-vault/internal/adapter"
	"github.com/MKhiriev/go-journal-vault/internal/codec"
	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/crypto"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/mock"
	"github.com/MKhiriev/go-journal-vault/internal/session"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type vaultMocks struct {
	adapter *mock.MockServerAdapter
	cache   *mock.MockWrappedKeyCache
	keys    *mock.MockKeyGenerator
	wrap    *mock.MockPasswordKeyWrap
	hasher  *mock.MockAuthHasher
}

func newTestVault(t *testing.T) (*vault, *vaultMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := &vaultMocks{
		adapter: mock.NewMockServerAdapter(ctrl),
		cache:   mock.NewMockWrappedKeyCache(ctrl),
		keys:    mock.NewMockKeyGenerator(ctrl),
		wrap:    mock.NewMockPasswordKeyWrap(ctrl),
		hasher:  mock.NewMockAuthHasher(ctrl),
	}

	v, err := NewVault(m.adapter, m.cache, session.NewKeyStore(session.NewArena(), t.Name()),
		config.ClientVault{Concurrency: 2},
		VaultComponents{Keys: m.keys, Wrap: m.wrap, Hasher: m.hasher},
		logger.Nop())
	require.NoError(t, err)

	return v.(*vault), m
}

func loggedIn(v *vault, ownerID int64, login string) {
	v.ownerID = ownerID
	v.login = login
}

func testDataKey(seed byte) crypto.DataKey {
	key := make(crypto.DataKey, crypto.KeySize)
	for i := range key {
		key[i] = seed
	}
	return key
}

func sealedKey(data string) models.WrappedKey {
	return models.WrappedKey{
		Envelope: models.Envelope{Data: data, IV: "aXY=", Salt: "c2FsdA==", Tag: "dGFn"},
		KDF:      models.KDFArgon2id,
	}
}

func TestVault_Login(t *testing.T) {
	v, m := newTestVault(t)
	ctx := context.Background()

	m.hasher.EXPECT().AuthHash(gomock.Any(), "alice", "correct horse").Return("auth-hash", nil)
	m.adapter.EXPECT().
		Login(gomock.Any(), models.User{Login: "alice", AuthHash: "auth-hash"}).
		Return(models.Token{OwnerID: 7, SignedString: "jwt"}, nil)

	require.NoError(t, v.Login(ctx, "alice", "correct horse"))

	ownerID, login, err := v.session()
	require.NoError(t, err)
	assert.Equal(t, int64(7), ownerID)
	assert.Equal(t, "alice", login)
}

func TestVault_RegisterFailureKeepsLoggedOut(t *testing.T) {
	v, m := newTestVault(t)

	m.hasher.EXPECT().AuthHash(gomock.Any(), "alice", "pw").Return("auth-hash", nil)
	m.adapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.Token{}, adapter.ErrConflict)

	err := v.Register(context.Background(), "alice", "pw")
	assert.ErrorIs(t, err, adapter.ErrConflict)

	_, _, err = v.session()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestVault_RequiresLogin(t *testing.T) {
	v, _ := newTestVault(t)
	ctx := context.Background()

	_, err := v.Status(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.ErrorIs(t, v.Setup(ctx, "pw"), ErrNotLoggedIn)
	assert.ErrorIs(t, v.Unlock(ctx, "pw"), ErrNotLoggedIn)
	assert.ErrorIs(t, v.ChangePassword(ctx, "a", "b"), ErrNotLoggedIn)

	_, err = v.SaveRecord(ctx, "id", codec.Record{}, nil)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	_, err = v.ListRecords(ctx)
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestVault_Status(t *testing.T) {
	stored := models.StoredWrappedKey{WrappedKey: sealedKey("d3JhcHBlZA=="), Version: 2}

	tests := []struct {
		name    string
		setup   func(m *vaultMocks)
		want    VaultState
		wantErr error
	}{
		{
			name: "needs setup",
			setup: func(m *vaultMocks) {
				m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrNotFound)
			},
			want: NeedsSetup,
		},
		{
			name: "needs unlock refreshes cache",
			setup: func(m *vaultMocks) {
				m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(stored, nil)
				m.cache.EXPECT().PutWrappedKey(gomock.Any(), models.StoredWrappedKey{
					OwnerID: 7, WrappedKey: stored.WrappedKey, Version: 2,
				}).Return(nil)
			},
			want: NeedsUnlock,
		},
		{
			name: "offline uses cache",
			setup: func(m *vaultMocks) {
				m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, errors.New("connection refused"))
				m.cache.EXPECT().GetWrappedKey(gomock.Any(), int64(7)).Return(stored, nil)
			},
			want: NeedsUnlock,
		},
		{
			name: "offline without cache",
			setup: func(m *vaultMocks) {
				m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrBadGateway)
				m.cache.EXPECT().GetWrappedKey(gomock.Any(), int64(7)).Return(models.StoredWrappedKey{}, store.ErrWrappedKeyNotFound)
			},
			wantErr: adapter.ErrBadGateway,
		},
		{
			name: "unauthorized does not fall back",
			setup: func(m *vaultMocks) {
				m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrUnauthorized)
			},
			wantErr: adapter.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, m := newTestVault(t)
			loggedIn(v, 7, "alice")
			tt.setup(m)

			got, err := v.Status(context.Background())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVault_StatusUnlockedSkipsServer(t *testing.T) {
	v, _ := newTestVault(t)
	loggedIn(v, 7, "alice")

	_, err := v.keyStore.Store(testDataKey(1))
	require.NoError(t, err)

	got, err := v.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Unlocked, got)
	assert.Equal(t, "unlocked", got.String())
}

func TestVault_Setup(t *testing.T) {
	v, m := newTestVault(t)
	loggedIn(v, 7, "alice")
	ctx := context.Background()

	wk := sealedKey("c2VhbGVk")

	gomock.InOrder(
		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrNotFound),
		m.keys.EXPECT().Generate().Return(testDataKey(9), nil),
		m.wrap.EXPECT().Seal(gomock.Any(), testDataKey(9), "pw").Return(wk, nil),
		m.adapter.EXPECT().PutWrappedKey(gomock.Any(), wk, int64(0)).Return(int64(1), nil),
		m.cache.EXPECT().PutWrappedKey(gomock.Any(), models.StoredWrappedKey{OwnerID: 7, WrappedKey: wk, Version: 1}).Return(nil),
	)

	require.NoError(t, v.Setup(ctx, "pw"))

	key, ok := v.keyStore.Retrieve()
	require.True(t, ok)
	assert.Equal(t, testDataKey(9), key)
}

func TestVault_SetupAlreadyDone(t *testing.T) {
	t.Run("key on server", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{WrappedKey: sealedKey("eA=="), Version: 1}, nil)

		assert.ErrorIs(t, v.Setup(context.Background(), "pw"), ErrAlreadySetUp)
		assert.False(t, v.keyStore.HasKey())
	})

	t.Run("lost the race", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrNotFound)
		m.keys.EXPECT().Generate().Return(testDataKey(3), nil)
		m.wrap.EXPECT().Seal(gomock.Any(), gomock.Any(), "pw").Return(sealedKey("eA=="), nil)
		m.adapter.EXPECT().PutWrappedKey(gomock.Any(), gomock.Any(), int64(0)).Return(int64(0), fmt.Errorf("put: %w", adapter.ErrConflict))

		assert.ErrorIs(t, v.Setup(context.Background(), "pw"), ErrAlreadySetUp)
		assert.False(t, v.keyStore.HasKey())
	})
}

func TestVault_Unlock(t *testing.T) {
	stored := models.StoredWrappedKey{WrappedKey: sealedKey("c2VhbGVk"), Version: 4}

	t.Run("success", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(stored, nil)
		m.cache.EXPECT().PutWrappedKey(gomock.Any(), gomock.Any()).Return(nil)
		m.wrap.EXPECT().Unseal(gomock.Any(), stored.WrappedKey, "pw").Return(testDataKey(5), nil)

		require.NoError(t, v.Unlock(context.Background(), "pw"))
		assert.Equal(t, session.Unlocked, v.keyStore.State())
	})

	t.Run("wrong password and corrupted key look the same", func(t *testing.T) {
		for _, cause := range []error{crypto.ErrAuthenticationFailure, crypto.ErrFormat} {
			v, m := newTestVault(t)
			loggedIn(v, 7, "alice")

			m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(stored, nil)
			m.cache.EXPECT().PutWrappedKey(gomock.Any(), gomock.Any()).Return(nil)
			m.wrap.EXPECT().Unseal(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, cause)

			err := v.Unlock(context.Background(), "pw")
			assert.ErrorIs(t, err, ErrUnlockFailed)
			assert.NotErrorIs(t, err, cause)
			assert.False(t, v.keyStore.HasKey())
		}
	})

	t.Run("not set up", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrNotFound)

		assert.ErrorIs(t, v.Unlock(context.Background(), "pw"), ErrSetupRequired)
	})

	t.Run("already unlocked keeps the key", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(stored, nil).Times(1)
		m.cache.EXPECT().PutWrappedKey(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		m.wrap.EXPECT().Unseal(gomock.Any(), stored.WrappedKey, "pw").Return(testDataKey(5), nil).Times(1)

		require.NoError(t, v.Unlock(context.Background(), "pw"))
		handle := v.keyStore.Handle()

		require.NoError(t, v.Unlock(context.Background(), "pw"))
		assert.Equal(t, handle, v.keyStore.Handle())

		key, ok := v.keyStore.Retrieve()
		require.True(t, ok)
		assert.Equal(t, testDataKey(5), key)
	})
}

func TestVault_Lock(t *testing.T) {
	v, _ := newTestVault(t)

	_, err := v.keyStore.Store(testDataKey(1))
	require.NoError(t, err)

	v.Lock()
	assert.Equal(t, session.Locked, v.keyStore.State())
}

func TestVault_ChangePassword(t *testing.T) {
	current := models.StoredWrappedKey{WrappedKey: sealedKey("b2xk"), Version: 2}
	rewrapped := sealedKey("bmV3")

	t.Run("success", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		gomock.InOrder(
			m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(current, nil),
			m.wrap.EXPECT().Rewrap(gomock.Any(), current.WrappedKey, "old", "new").Return(rewrapped, nil),
			m.hasher.EXPECT().AuthHash(gomock.Any(), "alice", "new").Return("new-hash", nil),
			m.adapter.EXPECT().RotateWrappedKey(gomock.Any(), rewrapped, int64(2), "new-hash").Return(int64(3), nil),
			m.cache.EXPECT().PutWrappedKey(gomock.Any(), models.StoredWrappedKey{OwnerID: 7, WrappedKey: rewrapped, Version: 3}).Return(nil),
		)

		require.NoError(t, v.ChangePassword(context.Background(), "old", "new"))
	})

	t.Run("wrong old password", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(current, nil)
		m.wrap.EXPECT().Rewrap(gomock.Any(), gomock.Any(), "wrong", "new").Return(models.WrappedKey{}, crypto.ErrAuthenticationFailure)

		assert.ErrorIs(t, v.ChangePassword(context.Background(), "wrong", "new"), ErrUnlockFailed)
	})

	t.Run("concurrent change", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(current, nil)
		m.wrap.EXPECT().Rewrap(gomock.Any(), gomock.Any(), "old", "new").Return(rewrapped, nil)
		m.hasher.EXPECT().AuthHash(gomock.Any(), "alice", "new").Return("new-hash", nil)
		m.adapter.EXPECT().RotateWrappedKey(gomock.Any(), gomock.Any(), int64(2), gomock.Any()).Return(int64(0), adapter.ErrConflict)

		assert.ErrorIs(t, v.ChangePassword(context.Background(), "old", "new"), ErrKeyChangedConcurrently)
	})

	t.Run("server unreachable", func(t *testing.T) {
		v, m := newTestVault(t)
		loggedIn(v, 7, "alice")

		m.adapter.EXPECT().GetWrappedKey(gomock.Any()).Return(models.StoredWrappedKey{}, adapter.ErrBadGateway)

		assert.ErrorIs(t, v.ChangePassword(context.Background(), "old", "new"), adapter.ErrBadGateway)
	})
}

func TestVault_SaveAndLoadRecord(t *testing.T) {
	v, m := newTestVault(t)
	loggedIn(v, 7, "alice")
	ctx := context.Background()

	_, err := v.keyStore.Store(testDataKey(7))
	require.NoError(t, err)

	var sent models.EncryptedRecord
	m.adapter.EXPECT().PutRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.EncryptedRecord) (models.EncryptedRecord, error) {
			sent = r
			r.Version = 1
			return r, nil
		})

	record := codec.Record{"title": "Monday", "body": "it rained", "mood": nil, "local": "kept on device"}
	saved, err := v.SaveRecord(ctx, "entry-1", record, []string{"title", "body", "mood"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	assert.Equal(t, "entry-1", sent.ID)
	assert.Len(t, sent.Fields, 3)
	assert.NotContains(t, sent.Fields, "local")
	assert.Equal(t, "null", string(sent.Fields["mood"]))
	assert.NotContains(t, string(sent.Fields["title"]), "Monday")

	_, err = models.UnmarshalEnvelope(string(sent.Fields["title"]))
	require.NoError(t, err)

	m.adapter.EXPECT().GetRecord(gomock.Any(), "entry-1").Return(sent, nil)

	loaded, failures, err := v.LoadRecord(ctx, "entry-1", nil)
	require.NoError(t, err)
	assert.Empty(t, failures)
	assert.Equal(t, codec.Record{"title": "Monday", "body": "it rained", "mood": nil}, loaded)
}

func TestVault_LoadRecordReportsBrokenFields(t *testing.T) {
	v, m := newTestVault(t)
	loggedIn(v, 7, "alice")

	_, err := v.keyStore.Store(testDataKey(7))
	require.NoError(t, err)

	other, err := crypto.NewFieldCipher(nil).Encrypt("secret", testDataKey(8))
	require.NoError(t, err)
	otherText, err := models.MarshalEnvelope(other)
	require.NoError(t, err)

	m.adapter.EXPECT().GetRecord(gomock.Any(), "entry-1").Return(models.EncryptedRecord{
		ID: "entry-1",
		Fields: map[string]json.RawMessage{
			"title": json.RawMessage(otherText),
			"body":  json.RawMessage(`{"data":"x"}`),
		},
	}, nil)

	loaded, failures, err := v.LoadRecord(context.Background(), "entry-1", []string{"title", "body"})
	require.NoError(t, err)
	require.Len(t, failures, 2)
	assert.Equal(t, "title", failures[0].Field)
	assert.ErrorIs(t, failures[0], crypto.ErrAuthenticationFailure)
	assert.Equal(t, "body", failures[1].Field)
	assert.ErrorIs(t, failures[1], crypto.ErrFormat)

	require.IsType(t, codec.Undecryptable{}, loaded["title"])
	assert.Equal(t, "unable to decrypt", fmt.Sprint(loaded["title"]))
}

func TestVault_RecordsNeedUnlock(t *testing.T) {
	v, _ := newTestVault(t)
	loggedIn(v, 7, "alice")
	ctx := context.Background()

	_, err := v.SaveRecord(ctx, "entry-1", codec.Record{"title": "T"}, []string{"title"})
	assert.ErrorIs(t, err, session.ErrLocked)

	_, _, err = v.LoadRecord(ctx, "entry-1", nil)
	assert.ErrorIs(t, err, session.ErrLocked)
}

func TestVault_SaveRecordGeneratesID(t *testing.T) {
	v, m := newTestVault(t)
	loggedIn(v, 7, "alice")

	_, err := v.keyStore.Store(testDataKey(7))
	require.NoError(t, err)

	m.adapter.EXPECT().PutRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.EncryptedRecord) (models.EncryptedRecord, error) {
			return r, nil
		})

	saved, err := v.SaveRecord(context.Background(), "", codec.Record{"title": "T"}, []string{"title"})
	require.NoError(t, err)
	assert.Len(t, saved.ID, 36)
}

func TestVault_ListAndDeleteRecords(t *testing.T) {
	v, m := newTestVault(t)
	loggedIn(v, 7, "alice")
	ctx := context.Background()

	m.adapter.EXPECT().ListRecordIDs(gomock.Any()).Return([]string{"b", "c", "a"}, nil)
	ids, err := v.ListRecords(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, ids)

	m.adapter.EXPECT().DeleteRecord(gomock.Any(), "a").Return(adapter.ErrNotFound)
	assert.ErrorIs(t, v.DeleteRecord(ctx, "a"), adapter.ErrNotFound)
}
