package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/utils"
)

// auth resolves the bearer token to the owner id stored in the request
// context. Requests without a valid token never reach next.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, r, "Handler.auth", ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			writeError(w, r, "Handler.auth", fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, err))
			return
		}

		token, err := h.services.AuthService.ParseToken(r.Context(), tokenString)
		if err != nil {
			writeError(w, r, "Handler.auth", err)
			return
		}

		log := logger.FromRequest(r).With().Int64("user_id", token.UserID).Logger()
		ctx := utils.WithUserID(log.WithContext(r.Context()), token.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
