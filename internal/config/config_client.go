// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ClientConfig configures the command-line API client.
type ClientConfig struct {
	// Address is the base URL of the API server.
	// Env: MIAM_API_ADDRESS
	Address string `env:"MIAM_API_ADDRESS"`

	// Token is the bearer token attached to authenticated requests.
	// Env: MIAM_TOKEN
	Token string `env:"MIAM_TOKEN"`

	// RequestTimeout bounds each outbound request.
	// Env: MIAM_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"MIAM_REQUEST_TIMEOUT"`
}

// GetClientConfig builds the client configuration from the environment and
// the leading flags in args. It returns the positional arguments that follow
// the flags.
func GetClientConfig(args []string) (*ClientConfig, []string, error) {
	cfg := &ClientConfig{
		Address:        "http://127.0.0.1:4000",
		RequestTimeout: 10 * time.Second,
	}
	if err := parseEnv(cfg); err != nil {
		return nil, nil, err
	}

	fs := flag.NewFlagSet("miam-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Address, "a", cfg.Address, "API base URL")
	fs.StringVar(&cfg.Token, "t", cfg.Token, "Bearer token")
	fs.DurationVar(&cfg.RequestTimeout, "timeout", cfg.RequestTimeout, "Request timeout")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing client flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}
