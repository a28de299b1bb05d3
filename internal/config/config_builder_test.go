// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{App: App{TokenSignKey: "secret"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilderFailsValidation verifies that defaults alone are not
// enough: the token signing key has no default.
func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)

	defaults := Defaults()
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Equal(t, defaults.App.TokenDuration, cfg.App.TokenDuration)
	assert.Equal(t, ":4000", cfg.Server.HTTPAddress)
	assert.Equal(t, 100, cfg.Server.RateLimit)
	assert.Equal(t, 15*time.Minute, cfg.Server.RateWindow)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSOrigins)
	assert.Equal(t, StorageDriverFile, cfg.Storage.Driver)
	assert.Equal(t, CacheDriverMemory, cfg.Cache.Driver)
	assert.Equal(t, 1024, cfg.Cache.Size)
	assert.Equal(t, int64(5<<20), cfg.Upload.MaxBytes)
	assert.Equal(t, 1600, cfg.Upload.MaxWidth)
	assert.Equal(t, int64(40_000_000), cfg.Upload.MaxPixels)
	assert.Equal(t, EventsDriverNone, cfg.Events.Driver)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigWins verifies that non-zero fields of later configs
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterConfigWins(t *testing.T) {
	first := minimalConfig()
	first.Server.HTTPAddress = "127.0.0.1:1000"
	first.Storage.DataDir = "/first"

	second := &StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:2000"}}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:2000", cfg.Server.HTTPAddress)
	assert.Equal(t, "/first", cfg.Storage.DataDir)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

// ── withEnv / withFlags / withFile ────────────────────────────────────────────

func TestWithEnv_AppendsConfig(t *testing.T) {
	t.Setenv("APP_TOKEN_SIGN_KEY", "from-env")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-env", b.configs[0].App.TokenSignKey)
}

func TestWithFlags_ErrorIsCollected(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithFile_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_UsesLastPath(t *testing.T) {
	path := writeTempFile(t, "cfg.json", `{"storage":{"data_dir":"/from-file"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{FilePath: filepath.Join(t.TempDir(), "ignored.json")},
		&StructuredConfig{FilePath: path},
	)

	b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "/from-file", b.configs[2].Storage.DataDir)
}

func TestWithFile_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{FilePath: filepath.Join(t.TempDir(), "missing.json")})

	b.withFile()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Priority verifies the env < flags < file order.
func TestGetStructuredConfig_Priority(t *testing.T) {
	path := writeTempFile(t, "cfg.toml", `
[storage]
data_dir = "/from-file"
`)
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("STORAGE_DATA_DIR", "/from-env")
	t.Setenv("SERVER_ADDRESS", "127.0.0.1:1111")

	cfg, err := GetStructuredConfig([]string{"-a", "127.0.0.1:2222", "-c", path})
	require.NoError(t, err)

	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "127.0.0.1:2222", cfg.Server.HTTPAddress)
	assert.Equal(t, "/from-file", cfg.Storage.DataDir)
}

func TestGetStructuredConfig_DotEnv(t *testing.T) {
	dotenv := writeTempFile(t, "test.env", "APP_TOKEN_SIGN_KEY=dotenv-key\nAPP_VERSION=9.9.9\n")
	t.Setenv("DOTENV", dotenv)
	// godotenv never overrides set variables; t.Setenv registers the
	// cleanup and Unsetenv clears them for the load.
	for _, k := range []string{"APP_TOKEN_SIGN_KEY", "APP_VERSION"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "dotenv-key", cfg.App.TokenSignKey)
	assert.Equal(t, "9.9.9", cfg.App.Version)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "defaults with key", mutate: func(c *StructuredConfig) {}},
		{name: "no sign key", mutate: func(c *StructuredConfig) { c.App.TokenSignKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "zero rate limit", mutate: func(c *StructuredConfig) { c.Server.RateLimit = 0 }, wantErr: ErrInvalidServerConfigs},
		{name: "unknown storage", mutate: func(c *StructuredConfig) { c.Storage.Driver = "mongo" }, wantErr: ErrInvalidStorageConfigs},
		{name: "sqlite without dsn", mutate: func(c *StructuredConfig) { c.Storage.Driver = StorageDriverSQLite }, wantErr: ErrInvalidStorageConfigs},
		{name: "postgres with dsn", mutate: func(c *StructuredConfig) {
			c.Storage.Driver = StorageDriverPostgres
			c.Storage.DSN = "postgres://localhost/miam"
		}},
		{name: "unknown cache", mutate: func(c *StructuredConfig) { c.Cache.Driver = "memcached" }, wantErr: ErrInvalidCacheConfigs},
		{name: "redis without addr", mutate: func(c *StructuredConfig) { c.Cache.Driver = CacheDriverRedis }, wantErr: ErrInvalidCacheConfigs},
		{name: "s3 without bucket", mutate: func(c *StructuredConfig) { c.Upload.Driver = UploadDriverS3 }, wantErr: ErrInvalidUploadConfigs},
		{name: "unknown upload", mutate: func(c *StructuredConfig) { c.Upload.Driver = "ftp" }, wantErr: ErrInvalidUploadConfigs},
		{name: "amqp without url", mutate: func(c *StructuredConfig) { c.Events.Driver = EventsDriverAMQP }, wantErr: ErrInvalidEventsConfigs},
		{name: "unknown events", mutate: func(c *StructuredConfig) { c.Events.Driver = "kafka" }, wantErr: ErrInvalidEventsConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			cfg.App.TokenSignKey = "secret"
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ── GetClientConfig ───────────────────────────────────────────────────────────

func TestGetClientConfig(t *testing.T) {
	t.Setenv("MIAM_TOKEN", "env-token")

	cfg, rest, err := GetClientConfig([]string{"-a", "http://api.test", "list", "-q", "tarte"})
	require.NoError(t, err)
	assert.Equal(t, "http://api.test", cfg.Address)
	assert.Equal(t, "env-token", cfg.Token)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, []string{"list", "-q", "tarte"}, rest)
}

func TestGetClientConfig_Invalid(t *testing.T) {
	_, _, err := GetClientConfig([]string{"-a", ""})
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)

	_, _, err = GetClientConfig([]string{"-bogus"})
	assert.Error(t, err)
}
