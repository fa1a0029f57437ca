package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-journal-vault/internal/config"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from cfg.ServerURL and configures
// the underlying HTTP client with the resolved base URL and request timeout.
//
// Returns [ErrInvalidServerURL] (wrapped) if cfg.ServerURL is empty or cannot
// be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the login and auth hash to
// POST /api/auth/register.
func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/register", user)
}

// Login implements [ServerAdapter]. It POSTs the login and auth hash to
// POST /api/auth/login.
func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	return h.authenticate(ctx, "/api/auth/login", user)
}

func (h *httpServerAdapter) authenticate(ctx context.Context, path string, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.User{Login: user.Login, AuthHash: user.AuthHash}).
		Post(path)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse bearer token: %w", path, err)
	}
	ownerID, err := utils.ParseOwnerIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("%s parse owner id: %w", path, err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, OwnerID: ownerID}, nil
}

// PutWrappedKey implements [ServerAdapter]. PUT /api/keys/wrapped.
func (h *httpServerAdapter) PutWrappedKey(ctx context.Context, wk models.WrappedKey, expectedVersion int64) (int64, error) {
	text, err := models.MarshalWrappedKey(wk)
	if err != nil {
		return 0, err
	}

	var result models.WrappedKeyVersionResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PutWrappedKeyRequest{WrappedKey: json.RawMessage(text), ExpectedVersion: expectedVersion}).
		SetResult(&result).
		Put("/api/keys/wrapped")
	if err != nil {
		return 0, fmt.Errorf("put wrapped key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	h.logger.Debug().
		Str("func", "*httpServerAdapter.PutWrappedKey").
		Int64("version", result.Version).
		Msg("wrapped key uploaded")

	return result.Version, nil
}

// RotateWrappedKey implements [ServerAdapter]. POST /api/keys/rotate.
func (h *httpServerAdapter) RotateWrappedKey(ctx context.Context, wk models.WrappedKey, expectedVersion int64, authHash string) (int64, error) {
	text, err := models.MarshalWrappedKey(wk)
	if err != nil {
		return 0, err
	}

	var result models.WrappedKeyVersionResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RotateWrappedKeyRequest{
			WrappedKey:      json.RawMessage(text),
			ExpectedVersion: expectedVersion,
			AuthHash:        authHash,
		}).
		SetResult(&result).
		Post("/api/keys/rotate")
	if err != nil {
		return 0, fmt.Errorf("rotate wrapped key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return result.Version, nil
}

// GetWrappedKey implements [ServerAdapter]. GET /api/keys/wrapped.
func (h *httpServerAdapter) GetWrappedKey(ctx context.Context) (models.StoredWrappedKey, error) {
	resp, err := h.authedRequest(ctx).Get("/api/keys/wrapped")
	if err != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("get wrapped key request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StoredWrappedKey{}, err
	}

	var body struct {
		WrappedKey json.RawMessage `json:"wrapped_key"`
		Version    int64           `json:"version"`
	}
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("decode wrapped key response: %w", err)
	}

	wk, err := models.UnmarshalWrappedKey(string(body.WrappedKey))
	if err != nil {
		return models.StoredWrappedKey{}, fmt.Errorf("decode wrapped key response: %w", err)
	}

	return models.StoredWrappedKey{WrappedKey: wk, Version: body.Version}, nil
}

// PutRecord implements [ServerAdapter]. PUT /api/records/{id}.
func (h *httpServerAdapter) PutRecord(ctx context.Context, record models.EncryptedRecord) (models.EncryptedRecord, error) {
	var saved models.EncryptedRecord
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", record.ID).
		SetBody(models.PutRecordRequest{Fields: record.Fields}).
		SetResult(&saved).
		Put("/api/records/{id}")
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("put record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedRecord{}, err
	}

	return saved, nil
}

// GetRecord implements [ServerAdapter]. GET /api/records/{id}.
func (h *httpServerAdapter) GetRecord(ctx context.Context, recordID string) (models.EncryptedRecord, error) {
	var record models.EncryptedRecord
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		SetResult(&record).
		Get("/api/records/{id}")
	if err != nil {
		return models.EncryptedRecord{}, fmt.Errorf("get record request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.EncryptedRecord{}, err
	}

	return record, nil
}

// ListRecordIDs implements [ServerAdapter]. GET /api/records/.
func (h *httpServerAdapter) ListRecordIDs(ctx context.Context) ([]string, error) {
	var ids models.RecordIDsResponse
	resp, err := h.authedRequest(ctx).
		SetResult(&ids).
		Get("/api/records/")
	if err != nil {
		return nil, fmt.Errorf("list records request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return ids.IDs, nil
}

// DeleteRecord implements [ServerAdapter]. DELETE /api/records/{id}.
func (h *httpServerAdapter) DeleteRecord(ctx context.Context, recordID string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", recordID).
		Delete("/api/records/{id}")
	if err != nil {
		return fmt.Errorf("delete record request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetAppVersion implements [ServerAdapter]. GET /api/version.
func (h *httpServerAdapter) GetAppVersion(ctx context.Context) (string, error) {
	var version models.AppVersionResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&version).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return version.Version, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
