// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Backend driver names accepted in configuration.
const (
	StorageDriverFile     = "file"
	StorageDriverSQLite   = "sqlite3"
	StorageDriverPostgres = "postgres"

	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
	CacheDriverNone   = "none"

	UploadDriverLocal = "local"
	UploadDriverS3    = "s3"

	EventsDriverNone = "none"
	EventsDriverAMQP = "amqp"
)

// Defaults returns the values used for fields no source has set.
func Defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   "miam-miam",
			TokenDuration: 24 * time.Hour,
			BcryptCost:    10,
			Version:       "dev",
		},
		Server: Server{
			HTTPAddress:    ":4000",
			RequestTimeout: 30 * time.Second,
			CORSOrigins:    []string{"*"},
			RateLimit:      100,
			RateWindow:     15 * time.Minute,
		},
		Storage: Storage{
			Driver:  StorageDriverFile,
			DataDir: "data",
		},
		Cache: Cache{
			Driver: CacheDriverMemory,
			Size:   1024,
			TTL:    5 * time.Minute,
			Prefix: "miam:recettes",
		},
		Upload: Upload{
			Driver:    UploadDriverLocal,
			Dir:       "uploads",
			PublicURL: "http://127.0.0.1:4000/uploads",
			MaxBytes:  5 << 20,
			MaxWidth:  1600,
			MaxPixels: 40_000_000,
		},
		Events: Events{
			Driver: EventsDriverNone,
			Queue:  "miam.events",
		},
		DotEnvPath: ".env",
	}
}
