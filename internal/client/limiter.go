package client

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter - ограничитель запросов к сервису заказов, умеет блокироваться по Retry-After
type RateLimiter struct {
	limiter      *rate.Limiter
	mu           sync.Mutex
	timer        *time.Timer
	restoreLimit rate.Limit
}

// NewRateLimiter - rps <= 0 означает отсутствие ограничения
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	if burst < 1 {
		burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (rl *RateLimiter) Wait(ctx context.Context) error {
	return rl.limiter.Wait(ctx)
}

// BlockFor - запрет запросов на время, затем возврат прежнего лимита
func (rl *RateLimiter) BlockFor(duration time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	previous := rl.limiter.Limit()
	if rl.timer != nil {
		// повторная блокировка продлевает текущую
		rl.timer.Stop()
		previous = rl.restoreLimit
	}
	rl.restoreLimit = previous
	rl.limiter.SetLimit(0)

	rl.timer = time.AfterFunc(duration, func() {
		rl.mu.Lock()
		defer rl.mu.Unlock()
		rl.limiter.SetLimit(rl.restoreLimit)
		rl.timer = nil
	})
}

// Blocked - признак активной блокировки
func (rl *RateLimiter) Blocked() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	return rl.timer != nil
}

func ParseRetryAfter(headers http.Header) time.Duration {
	retryAfter := headers.Get("Retry-After")
	if retryAfter == "" {
		return time.Minute
	}
	if seconds, err := strconv.Atoi(retryAfter); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(retryAfter); err == nil {
		return time.Until(t)
	}
	return time.Minute
}
