package services

//go:generate mockgen -source=purchases.go -destination=mocks/purchases_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/client"
	"github.com/denmor86/blinds-loyalty/internal/events"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/shopspring/decimal"
)

// DefaultMaxAttempts - сверок до аннулирования неоплаченного заказа, при шаге 5 минут около суток
const DefaultMaxAttempts = 288

var (
	ErrInvalidPurchaseAmount     = errors.New("invalid purchase amount")
	ErrPurchaseAlreadyUploaded   = errors.New("purchase already registered by this user")
	ErrPurchaseUploadedByAnother = errors.New("purchase already registered by another user")
)

type PurchaseService interface {
	AddPurchase(ctx context.Context, userID string, req models.PurchaseRequest) error
	ClaimPurchases(ctx context.Context, count int) ([]models.PurchaseData, error)
	ProcessPurchase(ctx context.Context, purchase models.PurchaseData) error
	ExpirePoints(ctx context.Context) (int64, error)
}

type Purchases struct {
	Tiers       storage.TiersStorage
	Accounts    storage.AccountsStorage
	Purchases   storage.PurchasesStorage
	Orders      OrderStatusService
	Events      events.Publisher
	PointsTTL   time.Duration
	MaxAttempts int // 0 - без ограничения
	Now         func() time.Time
}

// Создание сервиса
func NewPurchases(tiers storage.TiersStorage, accounts storage.AccountsStorage, purchases storage.PurchasesStorage,
	orders OrderStatusService, publisher events.Publisher, pointsTTL time.Duration) *Purchases {
	return &Purchases{
		Tiers:       tiers,
		Accounts:    accounts,
		Purchases:   purchases,
		Orders:      orders,
		Events:      publisher,
		PointsTTL:   pointsTTL,
		MaxAttempts: DefaultMaxAttempts,
		Now:         time.Now,
	}
}

// AddPurchase - регистрация заказа участника для последующего начисления баллов
func (s *Purchases) AddPurchase(ctx context.Context, userID string, req models.PurchaseRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidPurchaseAmount
	}
	if _, err := s.Accounts.GetAccount(ctx, userID); err != nil {
		return err
	}

	existing, err := s.Purchases.GetPurchase(ctx, req.OrderNumber)
	if err != nil && !errors.Is(err, storage.ErrPurchaseNotFound) {
		return err
	}
	if existing != nil {
		if existing.UserID == userID {
			return ErrPurchaseAlreadyUploaded
		}
		return ErrPurchaseUploadedByAnother
	}

	err = s.Purchases.AddPurchase(ctx, models.PurchaseData{
		OrderNumber: req.OrderNumber,
		UserID:      userID,
		Amount:      decimal.NewFromFloat(req.Amount).Round(2),
		Status:      models.PurchaseStatusNew,
		CreatedAt:   s.Now(),
	})
	if errors.Is(err, storage.ErrAlreadyExists) {
		// параллельная регистрация того же заказа
		return ErrPurchaseUploadedByAnother
	}
	return err
}

func (s *Purchases) ClaimPurchases(ctx context.Context, count int) ([]models.PurchaseData, error) {
	return s.Purchases.ClaimPurchasesForProcessing(ctx, count)
}

// ProcessPurchase - сверка заказа с сервисом витрины и начисление баллов по оплаченному.
// Заказ, не оплаченный за MaxAttempts сверок, аннулируется.
func (s *Purchases) ProcessPurchase(ctx context.Context, purchase models.PurchaseData) error {
	if s.attemptsExceeded(purchase.RetryCount - 1) {
		logger.Warnw("Purchase retries exhausted, void purchase", "order", purchase.OrderNumber, "attempts", purchase.RetryCount)
		return s.Purchases.UpdatePurchaseStatus(ctx, purchase.OrderNumber, models.PurchaseStatusVoid)
	}

	order, err := s.Orders.GetOrderStatus(ctx, purchase.OrderNumber)
	if err != nil {
		if errors.Is(err, client.ErrOrderNotFound) {
			logger.Warn("Order not found in order service, void purchase:", purchase.OrderNumber)
			return s.Purchases.UpdatePurchaseStatus(ctx, purchase.OrderNumber, models.PurchaseStatusVoid)
		}
		return err
	}

	switch order.Status {
	case models.OrderStatusPaid:
		return s.accrue(ctx, purchase, order)
	case models.OrderStatusCancelled, models.OrderStatusRefunded:
		logger.Infow("Order not paid, void purchase", "order", purchase.OrderNumber, "status", order.Status)
		return s.Purchases.UpdatePurchaseStatus(ctx, purchase.OrderNumber, models.PurchaseStatusVoid)
	default:
		if s.attemptsExceeded(purchase.RetryCount) {
			logger.Infow("Order still unpaid, void purchase", "order", purchase.OrderNumber, "status", order.Status, "attempts", purchase.RetryCount)
			return s.Purchases.UpdatePurchaseStatus(ctx, purchase.OrderNumber, models.PurchaseStatusVoid)
		}
		return s.Purchases.UpdatePurchaseStatus(ctx, purchase.OrderNumber, models.PurchaseStatusNew)
	}
}

func (s *Purchases) attemptsExceeded(attempts int) bool {
	return s.MaxAttempts > 0 && attempts >= s.MaxAttempts
}

func (s *Purchases) accrue(ctx context.Context, purchase models.PurchaseData, order *models.OrderStatus) error {
	account, err := s.Accounts.GetAccount(ctx, purchase.UserID)
	if err != nil {
		return err
	}
	tiers, err := s.Tiers.GetTiers(ctx)
	if err != nil {
		return err
	}
	progress, err := ResolveTier(tiers, account.LifetimeSpending)
	if err != nil {
		return err
	}

	amount := purchase.Amount
	if order.Total.IsPositive() {
		amount = order.Total
	}
	now := s.Now()
	accrual := models.PurchaseAccrual{
		OrderNumber: purchase.OrderNumber,
		UserID:      purchase.UserID,
		Amount:      amount,
		Points:      EarnedPoints(amount, progress.Current.PointsMultiplier),
		ExpiresAt:   now.Add(s.PointsTTL),
		AccruedAt:   now,
	}
	if err := s.Purchases.AccruePurchase(ctx, accrual); err != nil {
		logger.Errorw("Failed to accrue purchase", "order", purchase.OrderNumber, "error", err)
		return err
	}

	logger.Infow("Points accrued", "order", purchase.OrderNumber, "user", purchase.UserID, "points", accrual.Points)
	events.Emit(ctx, s.Events, events.PointsEarned, map[string]any{
		"userId":      purchase.UserID,
		"orderNumber": purchase.OrderNumber,
		"amount":      amount.StringFixed(2),
		"points":      accrual.Points,
	})
	return nil
}

// ExpirePoints - списание баллов с истёкшим сроком, возвращает общее число сгоревших
func (s *Purchases) ExpirePoints(ctx context.Context) (int64, error) {
	expired, err := s.Accounts.ExpirePoints(ctx, s.Now())
	if err != nil {
		logger.Errorw("Failed to expire points", "error", err)
		return 0, err
	}

	var total int64
	for _, e := range expired {
		total += e.Points
		events.Emit(ctx, s.Events, events.PointsExpired, map[string]any{
			"userId": e.UserID,
			"points": e.Points,
		})
	}
	if total > 0 {
		logger.Infow("Points expired", "accounts", len(expired), "points", total)
	}
	return total, nil
}
