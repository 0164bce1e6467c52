package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"time"

	"dinevibe/config"
	"dinevibe/infras/kafka"
	"dinevibe/infras/otel"
	"dinevibe/shared/constant"

	"github.com/rs/zerolog/log"
)

const (
	TopicReservationStatusChanged  = "reservation.status-changed"
	TopicRestaurantApprovalChanged = "restaurant.approval-changed"
)

type ReservationStatusChanged struct {
	ReservationID string    `json:"reservation_id"`
	Status        string    `json:"status"`
	ChangedBy     string    `json:"changed_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

type RestaurantApprovalChanged struct {
	RestaurantID string    `json:"restaurant_id"`
	Approved     bool      `json:"approved"`
	ChangedBy    string    `json:"changed_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// Publisher emits domain events. Publication is best-effort: failures are
// logged and never propagate to the caller.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, payload any)
}

type kafkaPublisher struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(cfg *config.Config, client kafka.Client, ot otel.Otel) Publisher {
	return &kafkaPublisher{
		client: client,
		cfg:    cfg,
		otel:   ot,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, topic, key string, payload any) {
	if !p.cfg.Kafka.Enable {
		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		c, scope := p.otel.NewScope(c, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
		defer scope.End()

		scope.SetAttribute("event.topic", topic)

		err := p.client.SendMessages(c, topic, kafka.Message{Key: key, Value: payload})
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("topic", topic).Str("key", key).Msg("failed to publish domain event")
		}
	}()
}
