package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/models"
)

// register creates the account and signs it in straight away.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var creds models.User
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), creds)
	if err != nil {
		writeError(w, r, "Handler.register", err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("account registered")
	h.issueToken(w, r, user)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var creds models.User
	if err := decodeJSON(w, r, &creds); err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), creds)
	if errors.Is(err, store.ErrNoUserWasFound) {
		// unknown logins answer like wrong passwords
		err = fmt.Errorf("%w: %w", service.ErrWrongPassword, err)
	}
	if err != nil {
		writeError(w, r, "Handler.login", err)
		return
	}

	h.issueToken(w, r, user)
}

// issueToken sets the bearer token on the Authorization header and answers
// with the public part of the user.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request, user models.User) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeError(w, r, "Handler.issueToken", err)
		return
	}

	logger.FromRequest(r).Debug().
		Int64("user_id", user.UserID).
		Dur("valid_for", token.ExpiresIn(time.Now())).
		Msg("token issued")

	w.Header().Set("Authorization", token.Bearer())
	writeJSON(w, r, user.Public(), http.StatusOK)
}
