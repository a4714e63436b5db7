package events

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/opencinema/booking-service/internal/config"
)

// StartConsumer connects to the broker configured by cfg, declares the
// queue and consumes BookingConfirmedEvent messages, appending each to
// logs/booking.log in a single-line, human-readable format. It runs a
// reconnect loop with exponential backoff and only returns when cfg is
// disabled; otherwise it blocks forever, logging transient failures the
// way the teacher's booking-confirmed consumer does.
func StartConsumer(cfg config.BookingEventsConfig) error {
	if !cfg.Enabled {
		return nil
	}

	backoff := time.Second
	for {
		conn, err := amqp.Dial(cfg.URL)
		if err != nil {
			log.Printf("events-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, cfg.Queue); err != nil {
			log.Printf("events-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
			continue
		}
	}
}

func consumeLoop(conn *amqp.Connection, queue string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("events-consumer: set QoS failed: %v", err)
	}

	if _, err := ch.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(queue, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("events-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte) error {
	var ev BookingConfirmedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	fpath := filepath.Join("logs", "booking.log")
	f, err := os.OpenFile(fpath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	seatStrs := make([]string, len(ev.Seats))
	for i, s := range ev.Seats {
		seatStrs[i] = fmt.Sprintf("%d", s)
	}

	line := fmt.Sprintf("[%s] Booking confirmed | movie_id=%d movie=%q | theater_id=%d theater=%q | seats=[%s]\n",
		ev.ConfirmedAt.Format(time.RFC3339), ev.MovieID, ev.MovieTitle, ev.TheaterID, ev.TheaterName, strings.Join(seatStrs, ","))

	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}
