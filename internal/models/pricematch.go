package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Статусы заявки на price match
const (
	PriceMatchPending  = "pending"
	PriceMatchApproved = "approved"
	PriceMatchRejected = "rejected"
)

// PriceMatchRequest - заявка покупателя, приходит извне
type PriceMatchRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	CompetitorName  string   `json:"competitorName"`
	CompetitorURL   string   `json:"competitorUrl"`
	CompetitorPrice float64  `json:"competitorPrice"`
	ProductID       *int64   `json:"productId,omitempty"`
	CurrentPrice    *float64 `json:"currentPrice,omitempty"`
}

// PriceMatchData - заявка в хранилище
type PriceMatchData struct {
	ID              int64
	UserID          string
	Name            string
	Email           string
	Phone           string
	CompetitorName  string
	CompetitorURL   string
	CompetitorPrice decimal.Decimal
	ProductID       *int64
	CurrentPrice    *decimal.Decimal
	MatchPrice      decimal.Decimal
	Status          string
	AdminNotes      string
	CreatedAt       time.Time
	ReviewedAt      *time.Time
}

// PriceMatchReview - решение администратора
type PriceMatchReview struct {
	Status     string `json:"status"`
	AdminNotes string `json:"adminNotes"`
}

// PriceMatchResponse - заявка для выдачи администратору
type PriceMatchResponse struct {
	ID              int64      `json:"id"`
	UserID          string     `json:"userId,omitempty"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone,omitempty"`
	CompetitorName  string     `json:"competitorName"`
	CompetitorURL   string     `json:"competitorUrl"`
	CompetitorPrice float64    `json:"competitorPrice"`
	ProductID       *int64     `json:"productId,omitempty"`
	CurrentPrice    *float64   `json:"currentPrice,omitempty"`
	MatchPrice      float64    `json:"matchPrice"`
	Status          string     `json:"status"`
	AdminNotes      string     `json:"adminNotes,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
}

// NewPriceMatchResponse - преобразование заявки для выдачи
func NewPriceMatchResponse(d PriceMatchData) PriceMatchResponse {
	resp := PriceMatchResponse{
		ID:              d.ID,
		UserID:          d.UserID,
		Name:            d.Name,
		Email:           d.Email,
		Phone:           d.Phone,
		CompetitorName:  d.CompetitorName,
		CompetitorURL:   d.CompetitorURL,
		CompetitorPrice: d.CompetitorPrice.InexactFloat64(),
		ProductID:       d.ProductID,
		MatchPrice:      d.MatchPrice.InexactFloat64(),
		Status:          d.Status,
		AdminNotes:      d.AdminNotes,
		CreatedAt:       d.CreatedAt,
		ReviewedAt:      d.ReviewedAt,
	}
	if d.CurrentPrice != nil {
		price := d.CurrentPrice.InexactFloat64()
		resp.CurrentPrice = &price
	}
	return resp
}
