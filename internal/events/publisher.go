package events

import (
	"context"
	"encoding/json"
	"log"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/opencinema/booking-service/internal/config"
)

// Publisher publishes BookingConfirmedEvent values to a durable AMQP queue.
// It mirrors the teacher's queue_publisher.PublishBookingConfirmed: errors
// are logged and returned so callers may ignore them without interrupting
// the booking request that triggered the event.
type Publisher struct {
	cfg config.BookingEventsConfig
}

// NewPublisher returns a Publisher bound to cfg. When cfg.Enabled is false
// Publish is a silent no-op returning nil, so callers do not need to branch on
// configuration.
func NewPublisher(cfg config.BookingEventsConfig) *Publisher {
	return &Publisher{cfg: cfg}
}

// Publish dials the broker, declares the configured queue and publishes a
// single persistent message for event. Each call opens and closes its own
// connection, matching the teacher's fire-and-forget publisher rather than
// keeping a long-lived channel open; booking volume in this domain is low
// enough that per-call dialing is an acceptable, simple tradeoff.
func (p *Publisher) Publish(ctx context.Context, event BookingConfirmedEvent) error {
	if !p.cfg.Enabled {
		return nil
	}

	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		log.Printf("events: dial failed: %v", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		log.Printf("events: channel open failed: %v", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(
		p.cfg.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		log.Printf("events: queue declare failed: %v", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("events: marshal event failed: %v", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.cfg.Queue, false, false, pub); err != nil {
		log.Printf("events: publish failed: %v", err)
		return err
	}
	return nil
}
