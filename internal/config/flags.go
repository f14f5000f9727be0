package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds a host and a port. It implements [flag.Value].
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses command-line flags into a partial config.
//
// Flags:
//
//	-a server listen address host:port
//	-grpc-address gRPC health server address host:port
//	-s notes server address used by the client
//	-d PostgreSQL DSN
//	-local-db client SQLite file
//	-c/-config json file path with configs
//	-token-sign-key, -token-issuer, -token-duration
//	-request-timeout inbound request timeout
//	-hash-key cache key HMAC secret
//	-ai-url, -ai-key, -ai-model
//	-redis Redis address for the AI cache
//	-sync-interval background refresh period of the client
//	-debounce editor commit delay
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var cfg StructuredConfig

	fs := flag.NewFlagSet("video-notes", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&cfg.Adapter.HTTPAddress, "s", "", "Notes server address")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Storage.Local.Path, "local-db", "", "Local SQLite file")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&cfg.App.HashKey, "hash-key", "", "Cache key HMAC secret")
	fs.StringVar(&cfg.AI.BaseURL, "ai-url", "", "OpenAI-compatible API base URL")
	fs.StringVar(&cfg.AI.APIKey, "ai-key", "", "AI API key")
	fs.StringVar(&cfg.AI.Model, "ai-model", "", "AI model name")
	fs.StringVar(&cfg.Cache.RedisAddress, "redis", "", "Redis address for the AI cache")
	fs.DurationVar(&cfg.Workers.SyncInterval, "sync-interval", time.Duration(0), "Background refresh period")
	fs.DurationVar(&cfg.Editor.DebounceDelay, "debounce", time.Duration(0), "Editor commit delay")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Server.GRPCAddress = grpcServerAddress.String()

	return &cfg, nil
}

// String returns host:port, or "" when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses host:port. The host must be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}

	a.Host = host
	a.Port = port
	return nil
}
