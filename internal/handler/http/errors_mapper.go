package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-journal-vault/internal/app"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/service"
	"github.com/MKhiriev/go-journal-vault/internal/store"
	"github.com/MKhiriev/go-journal-vault/internal/validators"
	"github.com/MKhiriev/go-journal-vault/models"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{validators.ErrInvalidRecordID, http.StatusBadRequest, app.MsgInvalidRecordID},
	{validators.ErrInvalidEnvelope, http.StatusBadRequest, app.MsgInvalidEnvelope},
	{models.ErrEnvelopeFormat, http.StatusBadRequest, app.MsgInvalidEnvelope},
	{validators.ErrEmptyFields, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationNegativeVersion, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationRotationNeedsBase, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrValidationNoOwnerID, http.StatusUnauthorized, app.MsgNoOwnerIDProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},

	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},
	{store.ErrVersionConflict, http.StatusConflict, app.MsgVersionConflict},
	{store.ErrWrappedKeyNotFound, http.StatusNotFound, app.MsgWrappedKeyNotFound},
	{store.ErrRecordNotFound, http.StatusNotFound, app.MsgRecordNotFound},
}

// statusFromError maps err to an HTTP status and a client-safe message.
// Unknown errors, storage failures included, become 500.
func statusFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status. Details of err
// never reach the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	http.Error(w, message, status)
}
