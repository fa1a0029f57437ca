package http

import (
	"net/http"

	"github.com/MKhiriev/go-journal-vault/internal/utils"
	"github.com/MKhiriev/go-journal-vault/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, _ = utils.WriteJSON(w, models.AppVersionResponse{Version: serverVersion}, http.StatusOK)
}
