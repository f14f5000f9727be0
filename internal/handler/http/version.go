package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-video-notes/internal/logger"
)

// headerAIEnabled tells clients whether the AI gateway has an upstream.
const headerAIEnabled = "X-AI-Enabled"

// getServerVersion answers with the version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	info := h.services.AppInfoService

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set(headerAIEnabled, strconv.FormatBool(info.AIEnabled(r.Context())))
	if _, err := io.WriteString(w, info.GetAppVersion(r.Context())); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "Handler.getServerVersion").Send()
	}
}
