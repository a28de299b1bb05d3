// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/miam-miam/internal/logger"
)

// Janitor periodically prunes expired entries, e.g. rate limit windows.
type Janitor struct {
	name     string
	pruner   Pruner
	interval time.Duration
	now      func() time.Time

	logger *logger.Logger
}

func NewJanitor(name string, pruner Pruner, interval time.Duration, logger *logger.Logger) *Janitor {
	return &Janitor{
		name:     name,
		pruner:   pruner,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Str("janitor", j.name).Dur("interval", j.interval).Msg("janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Str("janitor", j.name).Msg("janitor stopped")
			return
		case <-ticker.C:
			j.sweep()
		}
	}
}

func (j *Janitor) sweep() int {
	removed := j.pruner.Prune(j.now())
	if removed > 0 {
		j.logger.Debug().Str("janitor", j.name).Int("removed", removed).Msg("expired entries pruned")
	}
	return removed
}
