// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const defaultDotEnvPath = ".env"

// readDotEnv reads DOTENV, or ./.env when DOTENV is unset. A missing
// default file yields no values; a missing explicit one is an error.
func readDotEnv() (map[string]string, error) {
	path, explicit := os.LookupEnv("DOTENV")
	if !explicit || path == "" {
		path, explicit = defaultDotEnvPath, false
	}

	values, err := godotenv.Read(path)
	switch {
	case err == nil:
		return values, nil
	case !explicit && errors.Is(err, os.ErrNotExist):
		return nil, nil
	default:
		return nil, fmt.Errorf("error reading dotenv file %q: %w", path, err)
	}
}

// parseEnv populates cfg via the `env` and `envPrefix` tags. Variables of
// the process shadow the dotenv values, which are never exported.
func parseEnv(cfg any, dotenv map[string]string) error {
	environ := make(map[string]string, len(dotenv))
	for k, v := range dotenv {
		environ[k] = v
	}
	for k, v := range env.ToMap(os.Environ()) {
		environ[k] = v
	}

	if err := env.ParseWithOptions(cfg, env.Options{Environment: environ}); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
