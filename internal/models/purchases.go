package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы покупок для начисления баллов
const (
	PurchaseStatusNew        = "NEW"
	PurchaseStatusProcessing = "PROCESSING"
	PurchaseStatusAccrued    = "ACCRUED"
	PurchaseStatusVoid       = "VOID"
)

// Статусы заказа в сервисе витрины
const (
	OrderStatusPending   = "PENDING"
	OrderStatusPaid      = "PAID"
	OrderStatusCancelled = "CANCELLED"
	OrderStatusRefunded  = "REFUNDED"
)

// PurchaseRequest - регистрация оформленного заказа для начисления баллов
type PurchaseRequest struct {
	OrderNumber string  `json:"orderNumber"`
	Amount      float64 `json:"amount"`
}

// PurchaseData - покупка из хранилища
type PurchaseData struct {
	OrderNumber string
	UserID      string
	Amount      decimal.Decimal
	Status      string
	Points      int64
	RetryCount  int // число взятий в обработку
	CreatedAt   time.Time
}

// PurchaseAccrual - начисление по подтверждённому заказу
type PurchaseAccrual struct {
	OrderNumber string
	UserID      string
	Amount      decimal.Decimal
	Points      int64
	ExpiresAt   time.Time
	AccruedAt   time.Time
}

// PointsExpiry - итог списания сгоревших баллов по пользователю
type PointsExpiry struct {
	UserID string
	Points int64
}

// OrderStatus - состояние заказа в сервисе витрины
type OrderStatus struct {
	Status string
	Total  decimal.Decimal
}
