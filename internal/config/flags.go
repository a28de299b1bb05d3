// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the server flags from args (without the program name).
//
// Flags:
//
//	-a               server address in format [host]:port
//	-c, -config      JSON or TOML config file path
//	-k               token signing key
//	-token-issuer    token issuer name
//	-token-duration  token lifetime (e.g. "24h")
//	-request-timeout request timeout (e.g. "30s")
//	-storage         storage driver: file, sqlite3, postgres
//	-data-dir        data directory of the file driver
//	-d               database DSN
//	-cache           cache driver: memory, redis, none
//	-redis           redis address
//	-upload          upload driver: local, s3
//	-upload-dir      local upload directory
//	-upload-url      public base URL of uploaded images
//	-events          events driver: none, amqp
//	-amqp            AMQP URL
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("miam-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var serverAddress NetAddress
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address [host]:port")
	fs.StringVar(&cfg.FilePath, "c", "", "JSON or TOML config file path")
	fs.StringVar(&cfg.FilePath, "config", "", "JSON or TOML config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "k", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.TokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")
	fs.StringVar(&cfg.Storage.Driver, "storage", "", "Storage driver: file, sqlite3, postgres")
	fs.StringVar(&cfg.Storage.DataDir, "data-dir", "", "Data directory of the file storage driver")
	fs.StringVar(&cfg.Storage.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.Cache.Driver, "cache", "", "Cache driver: memory, redis, none")
	fs.StringVar(&cfg.Cache.RedisAddr, "redis", "", "Redis address")
	fs.StringVar(&cfg.Upload.Driver, "upload", "", "Upload driver: local, s3")
	fs.StringVar(&cfg.Upload.Dir, "upload-dir", "", "Local upload directory")
	fs.StringVar(&cfg.Upload.PublicURL, "upload-url", "", "Public base URL of uploaded images")
	fs.StringVar(&cfg.Events.Driver, "events", "", "Events driver: none, amqp")
	fs.StringVar(&cfg.Events.AMQPURL, "amqp", "", "AMQP URL")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.Server.HTTPAddress = serverAddress.String()

	return cfg, nil
}

// String returns a canonical [host]:port string for a NetAddress, or an
// empty string when nothing was set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host means all interfaces. A non-empty host must be
// "localhost" or a valid IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(strings.TrimSpace(s))
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
