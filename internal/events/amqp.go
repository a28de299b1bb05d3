// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/MKhiriev/miam-miam/internal/logger"
	"github.com/MKhiriev/miam-miam/models"
)

// amqpChannel is the part of *amqp.Channel the publisher uses.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// AMQPPublisher sends events as persistent JSON messages to a durable queue
// through the default exchange.
type AMQPPublisher struct {
	conn    *amqp.Connection
	channel amqpChannel
	queue   string
	logger  *logger.Logger

	mu sync.Mutex
}

// NewAMQPPublisher dials url and declares queue.
func NewAMQPPublisher(url, queue string, log *logger.Logger) (*AMQPPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		log.Err(err).Str("func", "NewAMQPPublisher").Msg("failed to dial broker")
		return nil, fmt.Errorf("error dialing amqp broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("error opening amqp channel: %w", err)
	}

	if _, err = ch.QueueDeclare(
		queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("error declaring queue %q: %w", queue, err)
	}

	log.Info().Str("queue", queue).Msg("publishing events to amqp")

	p := newAMQPPublisher(ch, queue, log)
	p.conn = conn
	return p, nil
}

func newAMQPPublisher(ch amqpChannel, queue string, log *logger.Logger) *AMQPPublisher {
	return &AMQPPublisher{
		channel: ch,
		queue:   queue,
		logger:  log,
	}
}

func (p *AMQPPublisher) Publish(ctx context.Context, event models.Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("error marshaling event: %w", err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Type:         string(event.Type),
		Body:         body,
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.channel.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("error publishing %s event: %w", event.Type, err)
	}

	return nil
}

func (p *AMQPPublisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	err := p.channel.Close()
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
