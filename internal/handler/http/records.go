package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-journal-vault/internal/app"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies of the key and record endpoints.
const maxBodyBytes = 4 << 20

func (h *Handler) putRecord(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	var req models.PutRecordRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putRecord").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	saved, err := h.services.RecordService.SaveRecord(r.Context(), models.EncryptedRecord{
		ID:      chi.URLParam(r, "id"),
		OwnerID: owner,
		Fields:  req.Fields,
	})
	if err != nil {
		writeError(w, r, "*Handler.putRecord", err)
		return
	}

	_, _ = utils.WriteJSON(w, saved, http.StatusOK)
}

func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	record, err := h.services.RecordService.GetRecord(r.Context(), owner, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getRecord", err)
		return
	}

	_, _ = utils.WriteJSON(w, record, http.StatusOK)
}

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	ids, err := h.services.RecordService.ListRecordIDs(r.Context(), owner)
	if err != nil {
		writeError(w, r, "*Handler.listRecords", err)
		return
	}
	if ids == nil {
		ids = []string{}
	}

	_, _ = utils.WriteJSON(w, models.RecordIDsResponse{IDs: ids}, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	owner, ok := ownerID(w, r)
	if !ok {
		return
	}

	if err := h.services.RecordService.DeleteRecord(r.Context(), owner, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, "*Handler.deleteRecord", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
