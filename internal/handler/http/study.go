package http

import (
	"net/http"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/models"
)

func (h *Handler) generateAI(w http.ResponseWriter, r *http.Request) {
	var req models.AIRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, "Handler.generateAI", err)
		return
	}

	resp, err := h.services.AIService.Generate(r.Context(), req)
	if err != nil {
		writeError(w, r, "Handler.generateAI", err)
		return
	}

	logger.FromRequest(r).Debug().
		Str("type", string(req.Type)).
		Int("response_length", len(resp.Content)).
		Msg("ai content generated")
	writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) recordStudySession(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.recordStudySession", ErrNoUserIDInContext)
		return
	}

	var session models.StudySession
	if err := decodeJSON(w, r, &session); err != nil {
		writeError(w, r, "Handler.recordStudySession", err)
		return
	}
	session.ID = ""
	session.UserID = userID

	created, err := h.services.StudySessionService.RecordSession(r.Context(), session)
	if err != nil {
		writeError(w, r, "Handler.recordStudySession", err)
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

func (h *Handler) getStudyStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.getStudyStats", ErrNoUserIDInContext)
		return
	}

	stats, err := h.services.StudySessionService.GetStats(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.getStudyStats", err)
		return
	}

	writeJSON(w, r, stats, http.StatusOK)
}
