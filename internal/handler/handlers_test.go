package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-video-notes/internal/config"
	"github.com/MKhiriev/go-video-notes/internal/logger"
	"github.com/MKhiriev/go-video-notes/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers(t *testing.T) {
	tests := []struct {
		name           string
		cfg            config.Server
		wantTransports []string
		wantErr        error
	}{
		{"rest and health", config.Server{HTTPAddress: ":8080", GRPCAddress: ":9090"}, []string{"http", "grpc"}, nil},
		{"rest only", config.Server{HTTPAddress: ":8080"}, []string{"http"}, nil},
		{"health only", config.Server{GRPCAddress: ":9090"}, []string{"grpc"}, nil},
		{"nothing to serve", config.Server{}, nil, errNoHandlersAreCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// constructors only store services, so nil is enough here
			h, err := NewHandlers(nil, nil, tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, h)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantTransports, h.Transports())
			assert.Equal(t, tt.cfg.HTTPAddress != "", h.HTTP != nil)
			assert.Equal(t, tt.cfg.GRPCAddress != "", h.GRPC != nil)
		})
	}
}

func TestNewHandlers_MountsMetrics(t *testing.T) {
	cfg := config.Server{HTTPAddress: ":8080"}

	h, err := NewHandlers(nil, metrics.NewMetrics("handlers_test"), cfg, logger.Nop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	h.HTTP.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	withoutMetrics, err := NewHandlers(nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	rec = httptest.NewRecorder()
	withoutMetrics.HTTP.Init().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
