package worker

import (
	"context"
	"sync"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/sony/gobreaker"
)

func InitCircuitBreaker() *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "order-service",
		Timeout: 30 * time.Second, // через 30 сек пробуем подключиться
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Infow("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// PurchaseWorker - подтверждение покупок в сервисе заказов и начисление баллов
type PurchaseWorker struct {
	Purchases    services.PurchaseService
	Breaker      *gobreaker.CircuitBreaker
	WaitGroup    sync.WaitGroup
	QuitChan     chan struct{}
	BatchSize    int
	PollInterval time.Duration
}

func NewPurchaseWorker(purchases services.PurchaseService, batchSize int, pollInterval time.Duration) *PurchaseWorker {
	return &PurchaseWorker{
		Purchases:    purchases,
		Breaker:      InitCircuitBreaker(),
		QuitChan:     make(chan struct{}),
		BatchSize:    batchSize,
		PollInterval: pollInterval,
	}
}

// Start - запускает воркер в фоне
func (w *PurchaseWorker) Start(ctx context.Context) {
	w.WaitGroup.Add(1)
	go w.Run(ctx)
}

// Stop - корректно останавливает воркер
func (w *PurchaseWorker) Stop() {
	close(w.QuitChan)
	w.WaitGroup.Wait()
}

func (w *PurchaseWorker) Run(ctx context.Context) {
	defer w.WaitGroup.Done()

	ticker := time.NewTicker(w.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.QuitChan:
			logger.Info("PurchaseWorker signal stop")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ProcessPurchases(ctx)
		}
	}
}

// ProcessPurchases - обработка пачки покупок; при открытом breaker пачка не захватывается
func (w *PurchaseWorker) ProcessPurchases(ctx context.Context) int {
	if w.Breaker.State() == gobreaker.StateOpen {
		logger.Warn(w.Breaker.Name(), "unavailable. Waiting...")
		return 0
	}

	purchases, err := w.Purchases.ClaimPurchases(ctx, w.BatchSize)
	if err != nil {
		logger.Error("error get purchases for processing", err)
		return 0
	}

	processed := 0
	for _, purchase := range purchases {
		_, err := w.Breaker.Execute(func() (interface{}, error) {
			return nil, w.Purchases.ProcessPurchase(ctx, purchase)
		})
		if err != nil {
			logger.Errorw("Error purchase processing", "order", purchase.OrderNumber, "error", err)
			continue
		}
		processed++
	}
	return processed
}
