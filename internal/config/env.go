// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// loadDotEnv copies variables from the .env file at path into the process
// environment. Variables that are already set are not overridden, so real
// environment values keep priority. A missing file is not an error.
func loadDotEnv(path string) error {
	if path == "" {
		path = defaultDotEnvPath
	}

	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading .env file %q: %w", path, err)
}

// parseEnv fills cfg from APP_*, SERVER_* and STORAGE_DB_* variables plus
// CONFIG and DOTENV. Unset variables leave fields zero so that later sources
// can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
