package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/service"
	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/go-chi/chi/v5"
)

// listNotes answers GET /api/notes?folder_id=&q=&limit= with the notes of the
// caller, most recently updated first.
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.listNotes", ErrNoUserIDInContext)
		return
	}

	filter := models.NoteFilter{
		UserID:   userID,
		FolderID: r.URL.Query().Get("folder_id"),
		Query:    r.URL.Query().Get("q"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, r, "Handler.listNotes", service.ErrInvalidDataProvided)
			return
		}
		filter.Limit = limit
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), filter)
	if err != nil {
		writeError(w, r, "Handler.listNotes", err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	writeJSON(w, r, notes, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.createNote", ErrNoUserIDInContext)
		return
	}

	var note models.Note
	if err := decodeJSON(w, r, &note); err != nil {
		writeError(w, r, "Handler.createNote", err)
		return
	}
	note.ID = ""
	note.UserID = userID

	created, err := h.services.NoteService.CreateNote(r.Context(), note)
	if err != nil {
		writeError(w, r, "Handler.createNote", err)
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

// updateNote overwrites the mutable fields of the note named in the path.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.updateNote", ErrNoUserIDInContext)
		return
	}

	var note models.Note
	if err := decodeJSON(w, r, &note); err != nil {
		writeError(w, r, "Handler.updateNote", err)
		return
	}
	note.ID = chi.URLParam(r, "id")
	note.UserID = userID

	updated, err := h.services.NoteService.UpdateNote(r.Context(), note)
	if err != nil {
		writeError(w, r, "Handler.updateNote", err)
		return
	}

	logger.FromRequest(r).Debug().Str("note_id", updated.ID).Msg("note updated")
	writeJSON(w, r, updated, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.deleteNote", ErrNoUserIDInContext)
		return
	}

	if err := h.services.NoteService.DeleteNote(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, "Handler.deleteNote", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getPublicNote serves a note marked public to anyone, without the owner.
func (h *Handler) getPublicNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.GetPublicNote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "Handler.getPublicNote", err)
		return
	}

	writeJSON(w, r, note, http.StatusOK)
}
