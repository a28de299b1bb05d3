// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs background jobs next to the HTTP server.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

// Pruner drops state that expired before now and reports how many entries
// were removed.
type Pruner interface {
	Prune(now time.Time) int
}
