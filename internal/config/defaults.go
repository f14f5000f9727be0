package config

import "time"

const (
	DefaultHTTPAddress    = "localhost:8080"
	DefaultTokenIssuer    = "video-notes"
	DefaultLocalDBPath    = "video-notes.db"
	DefaultAIBaseURL      = "https://api.openai.com/v1"
	DefaultAIModel        = "gpt-4o-mini"
	DefaultDebounceDelay  = 800 * time.Millisecond
	DefaultSyncInterval   = 5 * time.Minute
	DefaultRequestTimeout = 30 * time.Second
	DefaultAITimeout      = 60 * time.Second
	DefaultTokenDuration  = 24 * time.Hour
	DefaultCacheTTL       = 24 * time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
		},
		Storage: Storage{
			Local: Local{Path: DefaultLocalDBPath},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultAITimeout,
		},
		Workers: Workers{SyncInterval: DefaultSyncInterval},
		AI: AI{
			BaseURL: DefaultAIBaseURL,
			Model:   DefaultAIModel,
			Timeout: DefaultAITimeout,
		},
		Cache:  Cache{TTL: DefaultCacheTTL},
		Editor: Editor{DebounceDelay: DefaultDebounceDelay},
	}
}
