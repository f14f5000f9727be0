// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks settings that are wrong for either binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Cache.RedisAddress != "" && cfg.Cache.TTL <= 0 {
		return fmt.Errorf("%w: cache ttl must be positive", ErrInvalidServerConfigs)
	}
	return nil
}

func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.AI.BaseURL == "" || cfg.AI.Model == "" || cfg.AI.Timeout <= 0 {
		return ErrInvalidAIConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, ":memory:") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SyncInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.Editor.DebounceDelay <= 0 {
		return ErrInvalidEditorConfigs
	}

	return nil
}
