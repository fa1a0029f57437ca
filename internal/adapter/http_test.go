// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: serverURL, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func signedToken(t *testing.T, ownerID int64) string {
	t.Helper()

	token, err := utils.GenerateJWTToken("test", ownerID, time.Hour, "sign-key")
	require.NoError(t, err)
	return token.SignedString
}

func testWrappedKey() models.WrappedKey {
	return models.WrappedKey{
		Envelope: models.Envelope{Data: "ZGF0YQ==", IV: "aXY=", Salt: "c2FsdA==", Tag: "dGFn"},
		KDF:      models.KDFArgon2id,
	}
}

func TestNewHTTPServerAdapter_InvalidURL(t *testing.T) {
	for _, raw := range []string{"", "   ", "http://"} {
		_, err := NewHTTPServerAdapter(config.ClientAdapter{ServerURL: raw}, logger.Nop())
		assert.ErrorIs(t, err, ErrInvalidServerURL, raw)
	}
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := normalizeBaseURL("localhost:8080/")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", got)

	got, err = normalizeBaseURL(" https://vault.example.com ")
	require.NoError(t, err)
	assert.Equal(t, "https://vault.example.com", got)
}

func TestRegister_Success(t *testing.T) {
	jwt := signedToken(t, 42)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "alice", body["login"])
		assert.Equal(t, "hash", body["auth_hash"])

		w.Header().Set("Authorization", "Bearer "+jwt)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Register(context.Background(), models.User{Login: "alice", AuthHash: "hash"})

	require.NoError(t, err)
	assert.Equal(t, int64(42), token.OwnerID)
	assert.Equal(t, jwt, token.SignedString)
	assert.Equal(t, jwt, a.Token())
}

func TestLogin_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		header  string
		wantErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "conflict", status: http.StatusConflict, wantErr: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "missing bearer", status: http.StatusOK, header: "", wantErr: utils.ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.header != "" {
					w.Header().Set("Authorization", tt.header)
				}
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Login(context.Background(), models.User{Login: "alice", AuthHash: "hash"})

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, a.Token())
		})
	}
}

func TestPutWrappedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/keys/wrapped", r.URL.Path)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))

		var req models.PutWrappedKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(3), req.ExpectedVersion)

		wk, err := models.UnmarshalWrappedKey(string(req.WrappedKey))
		require.NoError(t, err)
		assert.Equal(t, testWrappedKey(), wk)

		_, _ = utils.WriteJSON(w, models.WrappedKeyVersionResponse{Version: 4}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token")

	version, err := a.PutWrappedKey(context.Background(), testWrappedKey(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(4), version)
}

func TestPutWrappedKey_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "version conflict, please reload", http.StatusConflict)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).PutWrappedKey(context.Background(), testWrappedKey(), 1)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestPutWrappedKey_RejectsIncompleteKeyLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).PutWrappedKey(context.Background(), models.WrappedKey{}, 0)
	assert.ErrorIs(t, err, models.ErrEnvelopeFormat)
	assert.False(t, called)
}

func TestRotateWrappedKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/keys/rotate", r.URL.Path)

		var req models.RotateWrappedKeyRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, int64(2), req.ExpectedVersion)
		assert.Equal(t, "new-hash", req.AuthHash)

		_, _ = utils.WriteJSON(w, models.WrappedKeyVersionResponse{Version: 3}, http.StatusOK)
	}))
	defer srv.Close()

	version, err := newTestAdapter(t, srv.URL).RotateWrappedKey(context.Background(), testWrappedKey(), 2, "new-hash")
	require.NoError(t, err)
	assert.Equal(t, int64(3), version)
}

func TestGetWrappedKey(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			_, _ = utils.WriteJSON(w, models.WrappedKeyResponse{WrappedKey: testWrappedKey(), Version: 2}, http.StatusOK)
		}))
		defer srv.Close()

		stored, err := newTestAdapter(t, srv.URL).GetWrappedKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(2), stored.Version)
		assert.Equal(t, testWrappedKey(), stored.WrappedKey)
	})

	t.Run("not found", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "wrapped key not found", http.StatusNotFound)
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).GetWrappedKey(context.Background())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = utils.WriteJSON(w, map[string]any{"wrapped_key": map[string]string{"data": "x"}, "version": 1}, http.StatusOK)
		}))
		defer srv.Close()

		_, err := newTestAdapter(t, srv.URL).GetWrappedKey(context.Background())
		assert.ErrorIs(t, err, models.ErrEnvelopeFormat)
	})
}

func TestRecords(t *testing.T) {
	envelope := json.RawMessage(`{"data":"AWhp","iv":"aXY=","salt":"c2FsdA==","tag":"dGFn"}`)

	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/records/{id}", func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req models.PutRecordRequest
		require.NoError(t, json.Unmarshal(body, &req))
		assert.Equal(t, "entry-1", r.PathValue("id"))
		assert.JSONEq(t, string(envelope), string(req.Fields["body"]))

		_, _ = utils.WriteJSON(w, models.EncryptedRecord{ID: "entry-1", Fields: req.Fields, Version: 1}, http.StatusOK)
	})
	mux.HandleFunc("GET /api/records/{id}", func(w http.ResponseWriter, r *http.Request) {
		if r.PathValue("id") != "entry-1" {
			http.Error(w, "record not found", http.StatusNotFound)
			return
		}
		_, _ = utils.WriteJSON(w, models.EncryptedRecord{ID: "entry-1", Fields: map[string]json.RawMessage{"body": envelope}, Version: 1}, http.StatusOK)
	})
	mux.HandleFunc("GET /api/records/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = utils.WriteJSON(w, models.RecordIDsResponse{IDs: []string{"entry-1"}}, http.StatusOK)
	})
	mux.HandleFunc("DELETE /api/records/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	a := newTestAdapter(t, srv.URL)

	saved, err := a.PutRecord(ctx, models.EncryptedRecord{ID: "entry-1", Fields: map[string]json.RawMessage{"body": envelope}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), saved.Version)

	got, err := a.GetRecord(ctx, "entry-1")
	require.NoError(t, err)
	assert.JSONEq(t, string(envelope), string(got.Fields["body"]))

	_, err = a.GetRecord(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	ids, err := a.ListRecordIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"entry-1"}, ids)

	require.NoError(t, a.DeleteRecord(ctx, "entry-1"))
}

func TestGetAppVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = utils.WriteJSON(w, models.AppVersionResponse{Version: "1.2.3"}, http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token")

	version, err := a.GetAppVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1.2.3", version)
}
