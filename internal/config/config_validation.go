// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"
)

// validate checks the merged [StructuredConfig] before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenDuration <= 0 || cfg.App.BcryptCost <= 0 {
		return fmt.Errorf("%w: token duration and bcrypt cost must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.RateLimit <= 0 || cfg.Server.RateWindow <= 0 {
		return fmt.Errorf("%w: rate limit and window must be positive", ErrInvalidServerConfigs)
	}

	switch cfg.Storage.Driver {
	case StorageDriverFile:
		if cfg.Storage.DataDir == "" {
			return fmt.Errorf("%w: data dir is required", ErrInvalidStorageConfigs)
		}
	case StorageDriverSQLite, StorageDriverPostgres:
		if cfg.Storage.DSN == "" {
			return fmt.Errorf("%w: dsn is required for %s", ErrInvalidStorageConfigs, cfg.Storage.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.Driver)
	}

	if !slices.Contains([]string{CacheDriverMemory, CacheDriverRedis, CacheDriverNone}, cfg.Cache.Driver) {
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidCacheConfigs, cfg.Cache.Driver)
	}
	if cfg.Cache.Driver == CacheDriverRedis && cfg.Cache.RedisAddr == "" {
		return fmt.Errorf("%w: redis address is required", ErrInvalidCacheConfigs)
	}

	switch cfg.Upload.Driver {
	case UploadDriverLocal:
		if cfg.Upload.Dir == "" {
			return fmt.Errorf("%w: upload dir is required", ErrInvalidUploadConfigs)
		}
	case UploadDriverS3:
		if cfg.Upload.S3Bucket == "" || cfg.Upload.S3Region == "" {
			return fmt.Errorf("%w: s3 bucket and region are required", ErrInvalidUploadConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidUploadConfigs, cfg.Upload.Driver)
	}
	if cfg.Upload.PublicURL == "" || cfg.Upload.MaxBytes <= 0 {
		return fmt.Errorf("%w: public url and max bytes are required", ErrInvalidUploadConfigs)
	}

	switch cfg.Events.Driver {
	case EventsDriverNone:
	case EventsDriverAMQP:
		if cfg.Events.AMQPURL == "" || cfg.Events.Queue == "" {
			return fmt.Errorf("%w: amqp url and queue are required", ErrInvalidEventsConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidEventsConfigs, cfg.Events.Driver)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
