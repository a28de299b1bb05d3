// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// names an unknown driver.
var (
	// ErrInvalidAppConfigs indicates missing token or hashing settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing address or rate limit.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidStorageConfigs indicates an unknown storage driver or a
	// driver without its DSN or data directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidCacheConfigs indicates an unknown cache driver or a redis
	// driver without an address.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidUploadConfigs indicates unusable image storage settings.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidEventsConfigs indicates unusable event publisher settings.
	ErrInvalidEventsConfigs = errors.New("invalid events configuration")
	// ErrInvalidAdapterConfigs indicates an API client without an address or
	// timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
