package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"courtside/config"
	"courtside/infras/kafka"
	"courtside/infras/otel"
	"courtside/shared/constant"
)

const (
	TypeReservationCreated   = "reservation.created"
	TypeReservationConfirmed = "reservation.confirmed"
	TypeReservationCancelled = "reservation.cancelled"
	TypeSlotBlocked          = "slot.blocked"
	TypeSlotUnblocked        = "slot.unblocked"
)

// ReservationEvent is the payload published for every lifecycle
// transition. The notification service consumes these; the engine
// never calls notification endpoints directly.
type ReservationEvent struct {
	Type          string `json:"type"`
	ReservationID string `json:"reservation_id"`
	FacilityID    string `json:"facility_id"`
	SlotDate      string `json:"slot_date"`
	StartTime     string `json:"start_time"`
	Status        string `json:"status"`
	UserRef       string `json:"user_ref,omitempty"`
	Reason        string `json:"reason,omitempty"`
	PaymentRef    string `json:"payment_ref,omitempty"`
	// InsideNotice is set on cancellations that happened inside the
	// facility's cancellation notice window. Informational only.
	InsideNotice bool `json:"inside_notice,omitempty"`
}

type Publisher interface {
	Publish(ctx context.Context, event ReservationEvent) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, ot otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (p *publisherImpl) Publish(ctx context.Context, event ReservationEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute("event.type", event.Type)

	err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic.Reservations, kafka.Message{
		Key:   event.ReservationID,
		Value: event,
	})
	if err != nil {
		log.Error().Err(err).Str("type", event.Type).Msg("failed to publish reservation event")

		return fmt.Errorf("failed to publish reservation event: %w", err)
	}

	return nil
}
