package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func newMethodRouter() *chi.Mux {
	router := chi.NewRouter()
	router.MethodNotAllowed(CheckHTTPMethod(router))
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(chi.URLParam(r, "id")))
	})
	return router
}

func TestCheckHTTPMethod(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"registered", http.MethodGet, "/items/7", http.StatusOK, "7"},
		{"wrong method on pattern", http.MethodPost, "/items/7", http.StatusNotFound, ""},
		{"unknown path", http.MethodGet, "/other", http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newMethodRouter().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}
