package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig mirrors [StructuredConfig] with JSON names and string durations.
type jsonConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		HashKey       string   `json:"hash_key"`
		Version       string   `json:"version"`
	} `json:"app"`

	Storage struct {
		DSN       string `json:"dsn"`
		LocalPath string `json:"local_path"`
	} `json:"storage"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers"`

	AI struct {
		BaseURL string   `json:"base_url"`
		APIKey  string   `json:"api_key"`
		Model   string   `json:"model"`
		Timeout Duration `json:"timeout"`
	} `json:"ai"`

	Cache struct {
		RedisAddress  string   `json:"redis_address"`
		RedisPassword string   `json:"redis_password"`
		RedisDB       int      `json:"redis_db"`
		TTL           Duration `json:"ttl"`
	} `json:"cache"`

	Editor struct {
		DebounceDelay Duration `json:"debounce"`
	} `json:"editor"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var j jsonConfig
	if err := json.NewDecoder(jsonFile).Decode(&j); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  j.App.TokenSignKey,
			TokenIssuer:   j.App.TokenIssuer,
			TokenDuration: time.Duration(j.App.TokenDuration),
			HashKey:       j.App.HashKey,
			Version:       j.App.Version,
		},
		Storage: Storage{
			DB:    DB{DSN: j.Storage.DSN},
			Local: Local{Path: j.Storage.LocalPath},
		},
		Server: Server{
			HTTPAddress:    j.Server.HTTPAddress,
			GRPCAddress:    j.Server.GRPCAddress,
			RequestTimeout: time.Duration(j.Server.RequestTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    j.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(j.Adapter.RequestTimeout),
		},
		Workers: Workers{SyncInterval: time.Duration(j.Workers.SyncInterval)},
		AI: AI{
			BaseURL: j.AI.BaseURL,
			APIKey:  j.AI.APIKey,
			Model:   j.AI.Model,
			Timeout: time.Duration(j.AI.Timeout),
		},
		Cache: Cache{
			RedisAddress:  j.Cache.RedisAddress,
			RedisPassword: j.Cache.RedisPassword,
			RedisDB:       j.Cache.RedisDB,
			TTL:           time.Duration(j.Cache.TTL),
		},
		Editor: Editor{DebounceDelay: time.Duration(j.Editor.DebounceDelay)},
	}, nil
}

// Duration accepts "1h"-style strings or nanosecond numbers in JSON.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	case nil:
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
