// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events publishes domain events after successful mutations.
// Publishing is best effort: callers log failures and carry on.
package events

import (
	"context"
	"fmt"

	"github.com/MKhiriev/miam-miam/internal/config"
	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/models"
)

// Publisher delivers domain events to consumers.
type Publisher interface {
	Publish(ctx context.Context, event models.Event) error
	Close() error
}

// NewPublisher returns the publisher selected by cfg.Driver.
func NewPublisher(cfg config.Events, log *logger.Logger) (Publisher, error) {
	switch cfg.Driver {
	case config.EventsDriverNone:
		return Nop(), nil
	case config.EventsDriverAMQP:
		p, err := NewAMQPPublisher(cfg.AMQPURL, cfg.Queue, log)
		if err != nil {
			return nil, err
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown events driver %q", cfg.Driver)
	}
}

type nopPublisher struct{}

// Nop returns a publisher that drops every event.
func Nop() Publisher { return nopPublisher{} }

func (nopPublisher) Publish(context.Context, models.Event) error { return nil }

func (nopPublisher) Close() error { return nil }
