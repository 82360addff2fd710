package services

//go:generate mockgen -source=orders.go -destination=mocks/orders_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/client"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/shopspring/decimal"
)

// OrderStatusService - подтверждение оплаты заказа
type OrderStatusService interface {
	GetOrderStatus(ctx context.Context, orderNumber string) (*models.OrderStatus, error)
}

type OrderGetter interface {
	GetOrder(ctx context.Context, orderNumber string) (*client.OrderResponse, error)
}

type OrderStatusChecker struct {
	Client  OrderGetter
	Limiter *client.RateLimiter
}

const (
	ordersRequestTimeout = 10 * time.Second
	ordersRPS            = 10
)

// Создание сервиса
func NewOrderStatusChecker(baseURL string) OrderStatusService {
	return &OrderStatusChecker{
		Client:  client.NewClient(baseURL, &http.Client{Timeout: ordersRequestTimeout}),
		Limiter: client.NewRateLimiter(ordersRPS, ordersRPS),
	}
}

// GetOrderStatus - при ограничении частоты запросов заказ остаётся в ожидании
func (s *OrderStatusChecker) GetOrderStatus(ctx context.Context, orderNumber string) (*models.OrderStatus, error) {
	if s.Limiter.Blocked() {
		return &models.OrderStatus{Status: models.OrderStatusPending}, nil
	}
	if err := s.Limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := s.Client.GetOrder(ctx, orderNumber)
	if err != nil {
		var rateLimitErr *client.RateLimitError
		if errors.As(err, &rateLimitErr) {
			logger.Warn("Too many requests to order service:", orderNumber)
			s.Limiter.BlockFor(rateLimitErr.RetryAfter)
			return &models.OrderStatus{Status: models.OrderStatusPending}, nil
		}
		return nil, err
	}

	switch resp.Status {
	case models.OrderStatusPending, models.OrderStatusPaid, models.OrderStatusCancelled, models.OrderStatusRefunded:
	default:
		logger.Error("Undefined order status:", resp.Status)
		return nil, fmt.Errorf("undefined order status %s", resp.Status)
	}
	return &models.OrderStatus{Status: resp.Status, Total: decimal.NewFromFloat(resp.Total)}, nil
}
