package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы операций в журнале баллов
const (
	TransactionEarned   = "earned"
	TransactionBonus    = "bonus"
	TransactionRedeemed = "redeemed"
	TransactionExpired  = "expired"
)

// Статусы аккаунта лояльности
const (
	AccountStatusActive = "active"
)

// LoyaltyTier - уровень программы лояльности
type LoyaltyTier struct {
	ID                    int64
	Name                  string
	Level                 int
	MinimumSpending       decimal.Decimal
	PointsMultiplier      decimal.Decimal
	DiscountPercentage    decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	Color                 string
	Description           string
}

// LoyaltyAccount - аккаунт пользователя в программе лояльности
type LoyaltyAccount struct {
	ID                  int64
	UserID              string
	CurrentTierID       int64
	TotalPointsEarned   int64
	AvailablePoints     int64
	PointsRedeemed      int64
	PointsExpired       int64
	LifetimeSpending    decimal.Decimal
	CurrentYearSpending decimal.Decimal
	LastPurchaseAt      *time.Time
	Status              string
	EnrolledAt          time.Time
}

// PointsTransaction - запись журнала баллов
type PointsTransaction struct {
	ID            int64
	UserID        string
	Type          string
	Points        int64
	Description   string
	ReferenceType string
	ReferenceID   string
	CreatedAt     time.Time
	ExpiresAt     *time.Time
}

// TierProgress - положение аккаунта относительно уровней
type TierProgress struct {
	Current            LoyaltyTier
	Next               *LoyaltyTier
	Progress           float64
	SpendingToNextTier decimal.Decimal
	PointsToNextTier   int64
}

// AccountSummary - агрегированное состояние аккаунта для выдачи
type AccountSummary struct {
	Account            LoyaltyAccount
	Tier               TierProgress
	PointsExpiringSoon int64
	RecentTransactions []PointsTransaction
}

// TierResponse - уровень для выдачи
type TierResponse struct {
	ID                    int64   `json:"id"`
	Name                  string  `json:"name"`
	Level                 int     `json:"level"`
	MinimumSpending       float64 `json:"minimumSpending"`
	PointsMultiplier      float64 `json:"pointsMultiplier"`
	DiscountPercentage    float64 `json:"discountPercentage"`
	FreeShippingThreshold float64 `json:"freeShippingThreshold"`
	Color                 string  `json:"color,omitempty"`
	Description           string  `json:"description,omitempty"`
}

// NextTierResponse - следующий уровень и прогресс до него
type NextTierResponse struct {
	ID                 int64   `json:"id"`
	Name               string  `json:"name"`
	MinimumSpending    float64 `json:"minimumSpending"`
	PointsToNextTier   int64   `json:"pointsToNextTier"`
	SpendingToNextTier float64 `json:"spendingToNextTier"`
}

// TransactionResponse - операция журнала для выдачи
type TransactionResponse struct {
	Type        string     `json:"type"`
	Points      int64      `json:"points"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
}

// AccountResponse - аккаунт лояльности для выдачи
type AccountResponse struct {
	ID                  int64                 `json:"id"`
	UserID              string                `json:"userId"`
	TotalPointsEarned   int64                 `json:"totalPointsEarned"`
	AvailablePoints     int64                 `json:"availablePoints"`
	PointsRedeemed      int64                 `json:"pointsRedeemed"`
	PointsExpired       int64                 `json:"pointsExpired"`
	PointsExpiringSoon  int64                 `json:"pointsExpiringSoon"`
	LifetimeSpending    float64               `json:"lifetimeSpending"`
	CurrentYearSpending float64               `json:"currentYearSpending"`
	LastPurchaseDate    *time.Time            `json:"lastPurchaseDate,omitempty"`
	CurrentTier         TierResponse          `json:"currentTier"`
	NextTier            *NextTierResponse     `json:"nextTier"`
	TierProgress        float64               `json:"tierProgress"`
	AccountStatus       string                `json:"accountStatus"`
	EnrollmentDate      time.Time             `json:"enrollmentDate"`
	RecentTransactions  []TransactionResponse `json:"recentTransactions"`
}

// NewTierResponse - преобразование уровня для выдачи
func NewTierResponse(t LoyaltyTier) TierResponse {
	return TierResponse{
		ID:                    t.ID,
		Name:                  t.Name,
		Level:                 t.Level,
		MinimumSpending:       t.MinimumSpending.InexactFloat64(),
		PointsMultiplier:      t.PointsMultiplier.InexactFloat64(),
		DiscountPercentage:    t.DiscountPercentage.InexactFloat64(),
		FreeShippingThreshold: t.FreeShippingThreshold.InexactFloat64(),
		Color:                 t.Color,
		Description:           t.Description,
	}
}

// NewTransactionResponse - преобразование операции журнала для выдачи
func NewTransactionResponse(t PointsTransaction) TransactionResponse {
	return TransactionResponse{
		Type:        t.Type,
		Points:      t.Points,
		Description: t.Description,
		Date:        t.CreatedAt,
		ExpiryDate:  t.ExpiresAt,
	}
}

// NewAccountResponse - сборка ответа по сводке аккаунта
func NewAccountResponse(s AccountSummary) AccountResponse {
	a := s.Account
	resp := AccountResponse{
		ID:                  a.ID,
		UserID:              a.UserID,
		TotalPointsEarned:   a.TotalPointsEarned,
		AvailablePoints:     a.AvailablePoints,
		PointsRedeemed:      a.PointsRedeemed,
		PointsExpired:       a.PointsExpired,
		PointsExpiringSoon:  s.PointsExpiringSoon,
		LifetimeSpending:    a.LifetimeSpending.InexactFloat64(),
		CurrentYearSpending: a.CurrentYearSpending.InexactFloat64(),
		LastPurchaseDate:    a.LastPurchaseAt,
		CurrentTier:         NewTierResponse(s.Tier.Current),
		TierProgress:        s.Tier.Progress,
		AccountStatus:       a.Status,
		EnrollmentDate:      a.EnrolledAt,
		RecentTransactions:  make([]TransactionResponse, 0, len(s.RecentTransactions)),
	}
	if next := s.Tier.Next; next != nil {
		resp.NextTier = &NextTierResponse{
			ID:                 next.ID,
			Name:               next.Name,
			MinimumSpending:    next.MinimumSpending.InexactFloat64(),
			PointsToNextTier:   s.Tier.PointsToNextTier,
			SpendingToNextTier: s.Tier.SpendingToNextTier.InexactFloat64(),
		}
	}
	for _, t := range s.RecentTransactions {
		resp.RecentTransactions = append(resp.RecentTransactions, NewTransactionResponse(t))
	}
	return resp
}
