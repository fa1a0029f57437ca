package models

import "encoding/json"

// PutWrappedKeyRequest is the body of PUT /api/keys/wrapped.
//
// ExpectedVersion is zero when the account has no wrapped key yet; otherwise
// it must equal the version the client last read.
type PutWrappedKeyRequest struct {
	WrappedKey      json.RawMessage `json:"wrapped_key"`
	ExpectedVersion int64           `json:"expected_version"`
}

// RotateWrappedKeyRequest is the body of POST /api/keys/rotate, sent on
// password change. AuthHash is the credential derived from the new password.
type RotateWrappedKeyRequest struct {
	WrappedKey      json.RawMessage `json:"wrapped_key"`
	ExpectedVersion int64           `json:"expected_version"`
	AuthHash        string          `json:"auth_hash"`
}

// WrappedKeyResponse is the body of GET /api/keys/wrapped.
type WrappedKeyResponse struct {
	WrappedKey WrappedKey `json:"wrapped_key"`
	Version    int64      `json:"version"`
}

// PutRecordRequest is the body of PUT /api/records/{id}.
type PutRecordRequest struct {
	Fields map[string]json.RawMessage `json:"fields"`
}

// RecordIDsResponse is the body of GET /api/records/.
type RecordIDsResponse struct {
	IDs []string `json:"ids"`
}

// WrappedKeyVersionResponse is the body returned by PUT /api/keys/wrapped.
type WrappedKeyVersionResponse struct {
	Version int64 `json:"version"`
}

// AppVersionResponse is the body of GET /api/version.
type AppVersionResponse struct {
	Version string `json:"version"`
}
