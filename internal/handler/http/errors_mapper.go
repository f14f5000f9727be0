package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-video-notes/internal/app"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/store"
	"github.com/MKhiriev/go-video-notes/internal/validators"
)

// maxBodyBytes bounds request bodies; a note body is at most 100k characters.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is ordered: the first target matched by errors.Is wins, so
// specific causes come before the generic sentinel wrapping them.
var errorResponses = []errorResponse{
	{validators.ErrEmptyVideoID, http.StatusBadRequest, app.MsgEmptyVideoID},
	{validators.ErrEmptyFolderName, http.StatusBadRequest, app.MsgEmptyFolderName},
	{store.ErrInvalidFolderReference, http.StatusBadRequest, app.MsgInvalidFolderReference},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrWrongPassword, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgInvalidLoginPassword},
	{service.ErrTokenIsExpired, http.StatusUnauthorized, app.MsgTokenIsExpired},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrNoUserIDInContext, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{store.ErrLoginAlreadyExists, http.StatusConflict, app.MsgLoginAlreadyExists},

	{store.ErrNoteNotFound, http.StatusNotFound, app.MsgNoteNotFound},
	{store.ErrFolderNotFound, http.StatusNotFound, app.MsgFolderNotFound},

	{service.ErrAIRateLimited, http.StatusTooManyRequests, app.MsgAIRateLimited},
	{service.ErrAICreditsDepleted, http.StatusPaymentRequired, app.MsgAICreditsDepleted},
	{service.ErrAIGatewayFailed, http.StatusBadGateway, app.MsgAIGatewayFailed},
	{service.ErrAINotConfigured, http.StatusServiceUnavailable, app.MsgAINotConfigured},
}

func statusFromError(err error) int {
	status, _ := responseForError(err)
	return status
}

func responseForError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			return resp.status, resp.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError logs err and answers with the mapped status and message.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status, message := responseForError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Msg(message)

	http.Error(w, message, status)
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON: %w", service.ErrInvalidDataProvided, err)
	}
	return nil
}
