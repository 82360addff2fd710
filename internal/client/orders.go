package client

import (
	"errors"
	"net/http"
	"time"
)

// OrderResponse - состояние заказа в сервисе витрины
type OrderResponse struct {
	Order  string  `json:"order"`
	Status string  `json:"status"`
	Total  float64 `json:"total"`
}

var (
	ErrServiceUnavailable = errors.New("order service unavailable")
	ErrOrderNotFound      = errors.New("order not found in order service")
)

// RateLimitError - сервис попросил подождать
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return "rate limit exceeded"
}

func NewRateLimitError(headers http.Header) *RateLimitError {
	return &RateLimitError{
		RetryAfter: ParseRetryAfter(headers),
	}
}
