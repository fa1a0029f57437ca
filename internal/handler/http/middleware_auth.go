package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-journal-vault/internal/app"
	"github.com/MKhiriev/go-journal-vault/internal/logger"
	"github.com/MKhiriev/go-journal-vault/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// The bearer token from the "Authorization" header is validated with
// [service.AuthService.ParseToken] and the owner id from its subject is
// stored in the request context under [utils.OwnerIDCtxKey]. Missing,
// malformed, expired and forged tokens are all answered with
// 401 Unauthorized.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(ErrInvalidAuthorizationHeader).Send()
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.OwnerIDCtxKey, token.OwnerID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ownerID returns the authenticated owner of r. Handlers behind [Handler.auth]
// always have one; a missing id is answered with 401.
func ownerID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.GetOwnerIDFromContext(r.Context())
	if !ok || id <= 0 {
		logger.FromRequest(r).Error().Msg("no owner id in request context")
		http.Error(w, app.MsgNoOwnerIDProvided, http.StatusUnauthorized)
		return 0, false
	}
	return id, true
}
