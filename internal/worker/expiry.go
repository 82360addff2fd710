package worker

import (
	"context"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/robfig/cron/v3"
)

const expiryJobTimeout = 10 * time.Minute

// cronLogger - вывод cron в общий логгер
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logger.Infow(msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logger.Errorw(msg, append(keysAndValues, "error", err)...)
}

// ExpiryScheduler - периодическое списание сгоревших баллов
type ExpiryScheduler struct {
	cron      *cron.Cron
	purchases services.PurchaseService
	ctx       context.Context
}

func NewExpiryScheduler(ctx context.Context, purchases services.PurchaseService, schedule string) (*ExpiryScheduler, error) {
	log := cronLogger{}
	c := cron.New(cron.WithLogger(log), cron.WithChain(cron.Recover(log), cron.SkipIfStillRunning(log)))

	s := &ExpiryScheduler{cron: c, purchases: purchases, ctx: ctx}
	if _, err := c.AddFunc(schedule, s.ExpirePoints); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ExpiryScheduler) Start() {
	logger.Info("Points expiry scheduler started")
	s.cron.Start()
}

// Stop - ожидает завершения запущенной задачи
func (s *ExpiryScheduler) Stop() {
	<-s.cron.Stop().Done()
	logger.Info("Points expiry scheduler stopped")
}

func (s *ExpiryScheduler) ExpirePoints() {
	ctx, cancel := context.WithTimeout(s.ctx, expiryJobTimeout)
	defer cancel()

	if _, err := s.purchases.ExpirePoints(ctx); err != nil {
		logger.Error("Points expiry job failed", err)
	}
}
