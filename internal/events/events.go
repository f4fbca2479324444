// Package events publishes booking lifecycle notifications to Kafka. The
// channel is best-effort: publish failures are logged and never affect the
// transaction that produced them.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"talent/config"
	"talent/infras/kafka"
	"talent/infras/otel"
	"talent/shared/constant"
	"talent/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

type BookingEvent struct {
	Event          string `json:"event"`
	BookingID      string `json:"bookingId"`
	SlotID         string `json:"slotId"`
	CandidateID    string `json:"candidateId"`
	InterviewType  string `json:"interviewType"`
	ApplicantEmail string `json:"applicantEmail"`
	OccurredAt     string `json:"occurredAt"`
}

type Publisher interface {
	BookingCreated(ctx context.Context, event BookingEvent)
	BookingCancelled(ctx context.Context, event BookingEvent)
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingCreated(ctx context.Context, event BookingEvent) {
	event.Event = EventBookingCreated
	p.publish(ctx, event)
}

func (p *publisherImpl) BookingCancelled(ctx context.Context, event BookingEvent) {
	event.Event = EventBookingCancelled
	p.publish(ctx, event)
}

func (p *publisherImpl) publish(ctx context.Context, event BookingEvent) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".publish")
	defer scope.End()

	if event.OccurredAt == "" {
		event.OccurredAt = timezone.Now().Format(constant.DateFormat + " " + constant.TimeFormat)
	}

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err := p.client.SendMessages(ctx, p.cfg.Kafka.Topics.BookingEvents, message); err != nil {
		log.Error().Err(err).Str("event", event.Event).Str("bookingID", event.BookingID).Msg("failed to publish booking event")
	}
}
