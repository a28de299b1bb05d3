// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// dotEnvPath resolves the .env location from DOTENV, falling back to the
// default.
func dotEnvPath() string {
	if p := os.Getenv("DOTENV"); p != "" {
		return p
	}
	return Defaults().DotEnvPath
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading .env file: %w", err)
}
