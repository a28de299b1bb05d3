// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// miam-miam server. It is populated by merging a .env file, environment
// variables, command-line flags and an optional JSON or TOML file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing settings and the app version.
	App App `envPrefix:"APP_"`

	// Server holds the listen address and HTTP cross-cutting settings.
	Server Server `envPrefix:"SERVER_"`

	// Storage selects and configures the record store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Cache selects and configures the listing cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Upload selects and configures image storage.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Events selects and configures the domain event publisher.
	Events Events `envPrefix:"EVENTS_"`

	// FilePath is the optional path to a JSON or TOML configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	FilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the process environment
	// before env parsing. A missing file is not an error.
	DotEnvPath string `env:"DOTENV"`
}

// App holds application-level settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign JWT tokens.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the token lifetime.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds the inbound HTTP settings.
type Server struct {
	// HTTPAddress is the listen address in "host:port" form.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins lists allowed origins. "*" allows any.
	// Env: SERVER_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// RateLimit is the number of /api requests allowed per client IP
	// within RateWindow.
	// Env: SERVER_RATE_LIMIT
	RateLimit int `env:"RATE_LIMIT"`

	// RateWindow is the fixed rate limiting window.
	// Env: SERVER_RATE_WINDOW
	RateWindow time.Duration `env:"RATE_WINDOW"`
}

// Storage configures the record store.
type Storage struct {
	// Driver is one of "file", "sqlite3" or "postgres".
	// Env: STORAGE_DRIVER
	Driver string `env:"DRIVER"`

	// DataDir is where the file driver keeps recipes.json and users.json.
	// Env: STORAGE_DATA_DIR
	DataDir string `env:"DATA_DIR"`

	// DSN is the database connection string for the SQL drivers.
	// Env: STORAGE_DSN
	DSN string `env:"DSN"`
}

// Cache configures the listing cache.
type Cache struct {
	// Driver is one of "memory", "redis" or "none".
	// Env: CACHE_DRIVER
	Driver string `env:"DRIVER"`

	// Size is the memory driver's entry ceiling.
	// Env: CACHE_SIZE
	Size int `env:"SIZE"`

	// TTL expires entries that survived invalidation. Zero disables it.
	// Env: CACHE_TTL
	TTL time.Duration `env:"TTL"`

	// Env: CACHE_REDIS_ADDR
	RedisAddr string `env:"REDIS_ADDR"`

	// Env: CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Env: CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`

	// Prefix namespaces redis keys.
	// Env: CACHE_PREFIX
	Prefix string `env:"PREFIX"`
}

// Upload configures image storage.
type Upload struct {
	// Driver is one of "local" or "s3".
	// Env: UPLOAD_DRIVER
	Driver string `env:"DRIVER"`

	// Dir is the local driver's directory, served at /uploads/.
	// Env: UPLOAD_DIR
	Dir string `env:"DIR"`

	// PublicURL is the base URL returned to clients for stored images.
	// Env: UPLOAD_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// MaxBytes caps the uploaded file size.
	// Env: UPLOAD_MAX_BYTES
	MaxBytes int64 `env:"MAX_BYTES"`

	// MaxWidth is the width above which JPEG and PNG images are downscaled.
	// Env: UPLOAD_MAX_WIDTH
	MaxWidth int `env:"MAX_WIDTH"`

	// MaxPixels caps width*height of an upload before it is decoded.
	// Env: UPLOAD_MAX_PIXELS
	MaxPixels int64 `env:"MAX_PIXELS"`

	// Env: UPLOAD_S3_BUCKET
	S3Bucket string `env:"S3_BUCKET"`

	// Env: UPLOAD_S3_REGION
	S3Region string `env:"S3_REGION"`

	// S3Endpoint overrides the AWS endpoint (MinIO, Spaces).
	// Env: UPLOAD_S3_ENDPOINT
	S3Endpoint string `env:"S3_ENDPOINT"`

	// Env: UPLOAD_S3_ACCESS_KEY
	S3AccessKey string `env:"S3_ACCESS_KEY"`

	// Env: UPLOAD_S3_SECRET_KEY
	S3SecretKey string `env:"S3_SECRET_KEY"`

	// S3PathStyle forces path-style addressing.
	// Env: UPLOAD_S3_PATH_STYLE
	S3PathStyle bool `env:"S3_PATH_STYLE"`
}

// Events configures the domain event publisher.
type Events struct {
	// Driver is one of "none" or "amqp".
	// Env: EVENTS_DRIVER
	Driver string `env:"DRIVER"`

	// Env: EVENTS_AMQP_URL
	AMQPURL string `env:"AMQP_URL"`

	// Env: EVENTS_QUEUE
	Queue string `env:"QUEUE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// in the following priority order (later sources override earlier non-zero
// fields):
//  1. .env file (loaded into the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON or TOML file (path resolved from sources 2 and 3)
//
// Fields left zero by every source take the defaults from [Defaults].
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(args).
		withFile().
		build()
}
