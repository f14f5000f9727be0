package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
)

// WriteJSON encodes data with HTML escaping off, so note content and
// video URLs travel unchanged, and writes it with statusCode. The body is
// buffered first: an encoding failure is answered with 500 and nothing of
// the partial document reaches the client.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		http.Error(w, "cannot encode response", http.StatusInternalServerError)
		return 0, fmt.Errorf("encode %T response: %w", data, err)
	}

	h := w.Header()
	h.Set("Content-Type", "application/json")
	h.Set("X-Content-Type-Options", "nosniff")
	h.Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}
