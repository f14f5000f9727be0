package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Helpers ----

func newBufferedHandler(buf *bytes.Buffer) *Handler {
	return &Handler{logger: &logger.Logger{Logger: zerolog.New(buf)}}
}

func executeWithTraceID(h *Handler, traceID string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if traceID != "" {
		req.Header.Set(traceIDHeader, traceID)
	}
	rec := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rec, req)
	return rec
}

// ---- withTraceID ----

func TestWithTraceID_ReusesIncomingID(t *testing.T) {
	rec := executeWithTraceID(&Handler{logger: logger.Nop()}, "my-trace", http.NotFoundHandler())

	assert.Equal(t, "my-trace", rec.Header().Get(traceIDHeader))
}

func TestWithTraceID_GeneratesID(t *testing.T) {
	for _, incoming := range []string{"", strings.Repeat("x", maxTraceIDLength+1)} {
		rec := executeWithTraceID(&Handler{logger: logger.Nop()}, incoming, http.NotFoundHandler())

		_, err := uuid.Parse(rec.Header().Get(traceIDHeader))
		assert.NoError(t, err)
	}
}

func TestWithTraceID_RequestLoggerCarriesID(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("inside")
	})

	executeWithTraceID(newBufferedHandler(&buf), "abc-123", next)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "abc-123", entry["trace_id"])
	assert.Equal(t, "inside", entry["message"])
}

func TestWithTraceID_DoesNotMutateParentLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newBufferedHandler(&buf)

	executeWithTraceID(h, "abc-123", http.NotFoundHandler())
	h.logger.Info().Msg("parent")

	assert.NotContains(t, buf.String(), "abc-123")
}
