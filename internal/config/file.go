// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// fileConfig mirrors [StructuredConfig] for JSON and TOML files. Durations
// are written as strings ("30s", "24h").
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" toml:"token_duration"`
		BcryptCost    int      `json:"bcrypt_cost" toml:"bcrypt_cost"`
		Version       string   `json:"version" toml:"version"`
	} `json:"app" toml:"app"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins" toml:"cors_origins"`
		RateLimit      int      `json:"rate_limit" toml:"rate_limit"`
		RateWindow     Duration `json:"rate_window" toml:"rate_window"`
	} `json:"server" toml:"server"`

	Storage struct {
		Driver  string `json:"driver" toml:"driver"`
		DataDir string `json:"data_dir" toml:"data_dir"`
		DSN     string `json:"dsn" toml:"dsn"`
	} `json:"storage" toml:"storage"`

	Cache struct {
		Driver        string   `json:"driver" toml:"driver"`
		Size          int      `json:"size" toml:"size"`
		TTL           Duration `json:"ttl" toml:"ttl"`
		RedisAddr     string   `json:"redis_addr" toml:"redis_addr"`
		RedisPassword string   `json:"redis_password" toml:"redis_password"`
		RedisDB       int      `json:"redis_db" toml:"redis_db"`
		Prefix        string   `json:"prefix" toml:"prefix"`
	} `json:"cache" toml:"cache"`

	Upload struct {
		Driver      string `json:"driver" toml:"driver"`
		Dir         string `json:"dir" toml:"dir"`
		PublicURL   string `json:"public_url" toml:"public_url"`
		MaxBytes    int64  `json:"max_bytes" toml:"max_bytes"`
		MaxWidth    int    `json:"max_width" toml:"max_width"`
		MaxPixels   int64  `json:"max_pixels" toml:"max_pixels"`
		S3Bucket    string `json:"s3_bucket" toml:"s3_bucket"`
		S3Region    string `json:"s3_region" toml:"s3_region"`
		S3Endpoint  string `json:"s3_endpoint" toml:"s3_endpoint"`
		S3AccessKey string `json:"s3_access_key" toml:"s3_access_key"`
		S3SecretKey string `json:"s3_secret_key" toml:"s3_secret_key"`
		S3PathStyle bool   `json:"s3_path_style" toml:"s3_path_style"`
	} `json:"upload" toml:"upload"`

	Events struct {
		Driver  string `json:"driver" toml:"driver"`
		AMQPURL string `json:"amqp_url" toml:"amqp_url"`
		Queue   string `json:"queue" toml:"queue"`
	} `json:"events" toml:"events"`
}

// parseFile reads a config file. Files ending in .toml are decoded as TOML,
// anything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}
	defer f.Close()

	var fc fileConfig
	if err := decodeFile(f, strings.ToLower(filepath.Ext(path)), &fc); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return fc.toStructured(), nil
}

func decodeFile(r io.Reader, ext string, fc *fileConfig) error {
	if ext == ".toml" {
		return toml.NewDecoder(r).Decode(fc)
	}
	return json.NewDecoder(r).Decode(fc)
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			BcryptCost:    fc.App.BcryptCost,
			Version:       fc.App.Version,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
			CORSOrigins:    fc.Server.CORSOrigins,
			RateLimit:      fc.Server.RateLimit,
			RateWindow:     time.Duration(fc.Server.RateWindow),
		},
		Storage: Storage{
			Driver:  fc.Storage.Driver,
			DataDir: fc.Storage.DataDir,
			DSN:     fc.Storage.DSN,
		},
		Cache: Cache{
			Driver:        fc.Cache.Driver,
			Size:          fc.Cache.Size,
			TTL:           time.Duration(fc.Cache.TTL),
			RedisAddr:     fc.Cache.RedisAddr,
			RedisPassword: fc.Cache.RedisPassword,
			RedisDB:       fc.Cache.RedisDB,
			Prefix:        fc.Cache.Prefix,
		},
		Upload: Upload{
			Driver:      fc.Upload.Driver,
			Dir:         fc.Upload.Dir,
			PublicURL:   fc.Upload.PublicURL,
			MaxBytes:    fc.Upload.MaxBytes,
			MaxWidth:    fc.Upload.MaxWidth,
			MaxPixels:   fc.Upload.MaxPixels,
			S3Bucket:    fc.Upload.S3Bucket,
			S3Region:    fc.Upload.S3Region,
			S3Endpoint:  fc.Upload.S3Endpoint,
			S3AccessKey: fc.Upload.S3AccessKey,
			S3SecretKey: fc.Upload.S3SecretKey,
			S3PathStyle: fc.Upload.S3PathStyle,
		},
		Events: Events{
			Driver:  fc.Events.Driver,
			AMQPURL: fc.Events.AMQPURL,
			Queue:   fc.Events.Queue,
		},
	}
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" in both JSON and TOML.
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
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

// UnmarshalText is used by the TOML decoder.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
