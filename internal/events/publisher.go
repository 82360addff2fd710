package events

//go:generate mockgen -source=publisher.go -destination=mocks/publisher_mock.go -package=mocks

import (
	"context"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/logger"
)

// Ключи маршрутизации событий программы лояльности
const (
	RewardRedeemed     = "loyalty.reward.redeemed"
	PointsEarned       = "loyalty.points.earned"
	PointsExpired      = "loyalty.points.expired"
	AccountEnrolled    = "loyalty.account.enrolled"
	PriceMatchCreated  = "pricematch.submitted"
	PriceMatchReviewed = "pricematch.reviewed"
)

// Publisher - отправка доменных событий
type Publisher interface {
	Publish(ctx context.Context, routingKey string, body any) error
	Close()
}

// Event - конверт события
type Event struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

// NopPublisher используется, когда брокер не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(_ context.Context, routingKey string, _ any) error {
	logger.Debug("Events disabled, skip", routingKey)
	return nil
}

func (NopPublisher) Close() {}

// Emit - публикация без влияния на результат запроса, ошибка только логируется
func Emit(ctx context.Context, p Publisher, routingKey string, payload any) {
	if p == nil {
		return
	}
	event := Event{Type: routingKey, OccurredAt: time.Now().UTC(), Payload: payload}
	if err := p.Publish(ctx, routingKey, event); err != nil {
		logger.Errorw("Failed to publish event", "routingKey", routingKey, "error", err)
	}
}
