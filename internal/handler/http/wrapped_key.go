package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-journal-vault/internal/app"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
)

func (h *Handler) putWrappedKey(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req models.PutWrappedKeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putWrappedKey").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	wk, err := models.UnmarshalWrappedKey(string(req.WrappedKey))
	if err != nil {
		writeError(w, r, "*Handler.putWrappedKey", err)
		return
	}

	version, err := h.services.WrappedKeyService.PutWrappedKey(r.Context(), owner, wk, req.ExpectedVersion)
	if err != nil {
		writeError(w, r, "*Handler.putWrappedKey", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.WrappedKeyVersionResponse{Version: version}, http.StatusOK)
}

func (h *Handler) rotateWrappedKey(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req models.RotateWrappedKeyRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.rotateWrappedKey").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	wk, err := models.UnmarshalWrappedKey(string(req.WrappedKey))
	if err != nil {
		writeError(w, r, "*Handler.rotateWrappedKey", err)
		return
	}

	version, err := h.services.WrappedKeyService.RotateWrappedKey(r.Context(), owner, wk, req.ExpectedVersion, req.AuthHash)
	if err != nil {
		writeError(w, r, "*Handler.rotateWrappedKey", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.WrappedKeyVersionResponse{Version: version}, http.StatusOK)
}

func (h *Handler) getWrappedKey(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	stored, err := h.services.WrappedKeyService.GetWrappedKey(r.Context(), owner)
	if err != nil {
		writeError(w, r, "*Handler.getWrappedKey", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.WrappedKeyResponse{WrappedKey: stored.WrappedKey, Version: stored.Version}, http.StatusOK)
}
