package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the transport settings of the client.
type ClientAdapter struct {
	// HTTPAddress is the notes server address.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientStorage holds the local SQLite settings.
type ClientStorage struct {
	// Path of the SQLite file keeping the login session.
	Path string
}

// ClientWorkers holds background job settings.
type ClientWorkers struct {
	// SyncInterval is the period of the background refresh.
	SyncInterval time.Duration
}

// ClientEditor holds editor settings.
type ClientEditor struct {
	// DebounceDelay is the idle time before a typed buffer is committed.
	DebounceDelay time.Duration
}

// ClientConfig is the client view of [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Editor  ClientEditor
}

// GetClientConfig maps the merged structured configuration onto the fields
// the client uses and validates them.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{Path: cfg.Storage.Local.Path},
		Workers: ClientWorkers{SyncInterval: cfg.Workers.SyncInterval},
		Editor:  ClientEditor{DebounceDelay: cfg.Editor.DebounceDelay},
	}
}
