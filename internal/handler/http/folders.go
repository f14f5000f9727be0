package http

import (
	"net/http"

	"github.com/MKhiriev/go-video-notes/internal/utils"
	"github.com/MKhiriev/go-video-notes/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listFolders(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.listFolders", ErrNoUserIDInContext)
		return
	}

	folders, err := h.services.FolderService.ListFolders(r.Context(), userID)
	if err != nil {
		writeError(w, r, "Handler.listFolders", err)
		return
	}
	if folders == nil {
		folders = []models.Folder{}
	}

	writeJSON(w, r, folders, http.StatusOK)
}

func (h *Handler) createFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.createFolder", ErrNoUserIDInContext)
		return
	}

	var folder models.Folder
	if err := decodeJSON(w, r, &folder); err != nil {
		writeError(w, r, "Handler.createFolder", err)
		return
	}
	folder.ID = ""
	folder.UserID = userID

	created, err := h.services.FolderService.CreateFolder(r.Context(), folder)
	if err != nil {
		writeError(w, r, "Handler.createFolder", err)
		return
	}

	writeJSON(w, r, created, http.StatusCreated)
}

// deleteFolder removes the folder; notes in it are kept without a folder.
func (h *Handler) deleteFolder(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, "Handler.deleteFolder", ErrNoUserIDInContext)
		return
	}

	if err := h.services.FolderService.DeleteFolder(r.Context(), chi.URLParam(r, "id"), userID); err != nil {
		writeError(w, r, "Handler.deleteFolder", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
