package services

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"
)

// BookingCreatedEvent is published to the "booking.created" queue after a
// booking row commits. Consumers (billing, host notifications) are
// external to this service.
type BookingCreatedEvent struct {
	BookingID      uint      `json:"bookingID"`
	ListingID      uint      `json:"listingID"`
	RenterUsername string    `json:"renterUsername"`
	StartDate      time.Time `json:"startDate"`
	EndDate        time.Time `json:"endDate"`
	TotalPrice     string    `json:"totalPrice"`
}

// EventPublisher lets handlers announce bookings without knowing the
// broker; tests inject a fake.
type EventPublisher interface {
	BookingCreated(ctx context.Context, event BookingCreatedEvent) error
}

// QueuePublisher publishes events to RabbitMQ. Publishing is best-effort:
// errors are logged and returned so callers can ignore them without
// failing the request that triggered the event.
type QueuePublisher struct {
	url    string
	logger *logrus.Logger
}

func NewQueuePublisher(url string, logger *logrus.Logger) *QueuePublisher {
	return &QueuePublisher{url: url, logger: logger}
}

const bookingCreatedQueue = "booking.created"

func (p *QueuePublisher) BookingCreated(ctx context.Context, event BookingCreatedEvent) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.logger.WithError(err).Error("rabbitmq dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.logger.WithError(err).Error("rabbitmq channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Idempotent; durable so events survive broker restarts.
	if _, err := ch.QueueDeclare(bookingCreatedQueue, true, false, false, false, nil); err != nil {
		p.logger.WithError(err).Error("rabbitmq queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.logger.WithError(err).Error("marshal booking event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", bookingCreatedQueue, false, false, pub); err != nil {
		p.logger.WithError(err).Error("rabbitmq publish failed")
		return err
	}

	return nil
}
