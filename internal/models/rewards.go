package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы наград
const (
	RewardDiscountPercentage = "discount_percentage"
	RewardDiscountFixed      = "discount_fixed"
	RewardFreeShipping       = "free_shipping"
	RewardFreeProduct        = "free_product"
)

// Статусы погашения награды
const (
	RedemptionActive    = "active"
	RedemptionUsed      = "used"
	RedemptionCancelled = "cancelled"
	RedemptionExpired   = "expired"
)

// LoyaltyReward - награда из каталога
type LoyaltyReward struct {
	ID                 int64
	Name               string
	Type               string
	PointsCost         int64
	DiscountValue      decimal.Decimal
	DiscountPercentage decimal.Decimal
	FreeProductID      *int64
	MinTierLevel       int
	MaxUsesPerUser     int // 0 - без ограничений
	TotalAvailable     int // 0 - без ограничений
	TotalRedeemed      int
	ValidFrom          *time.Time
	ValidUntil         *time.Time
	MinimumOrderValue  decimal.Decimal
	Description        string
	IsActive           bool
	IsFeatured         bool
	DisplayOrder       int
}

// Value - номинал награды: фиксированная скидка, иначе процент
func (r LoyaltyReward) Value() decimal.Decimal {
	if !r.DiscountValue.IsZero() {
		return r.DiscountValue
	}
	return r.DiscountPercentage
}

// IssuesCoupon - выдаётся ли по награде купон
func (r LoyaltyReward) IssuesCoupon() bool {
	switch r.Type {
	case RewardDiscountPercentage, RewardDiscountFixed, RewardFreeShipping:
		return true
	}
	return false
}

// RewardFilter - фильтр каталога наград
type RewardFilter struct {
	Type         string
	FeaturedOnly bool
	MaxTierLevel int
	Now          time.Time
}

// UserReward - награда каталога вместе с числом погашений пользователя
type UserReward struct {
	Reward          LoyaltyReward
	UserRedemptions int
}

// RewardRedemption - погашение награды
type RewardRedemption struct {
	ID          int64
	UserID      string
	RewardID    int64
	RewardName  string
	PointsUsed  int64
	RewardValue decimal.Decimal
	CouponCode  string
	Status      string
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// RedeemRequest - запрос на погашение награды
type RedeemRequest struct {
	RewardID   int64    `json:"rewardId"`
	OrderTotal *float64 `json:"orderTotal,omitempty"`
}

// RewardRequest - создание награды администратором
type RewardRequest struct {
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	PointsCost         int64      `json:"pointsCost"`
	DiscountValue      float64    `json:"discountValue"`
	DiscountPercentage float64    `json:"discountPercentage"`
	FreeProductID      *int64     `json:"freeProductId,omitempty"`
	MinTierLevel       int        `json:"minTierLevel"`
	MaxUsesPerUser     int        `json:"maxUsesPerUser"`
	TotalAvailable     int        `json:"totalAvailable"`
	ValidFrom          *time.Time `json:"validFrom,omitempty"`
	ValidUntil         *time.Time `json:"validUntil,omitempty"`
	MinimumOrderValue  float64    `json:"minimumOrderValue"`
	Description        string     `json:"description"`
	IsFeatured         bool       `json:"isFeatured"`
	DisplayOrder       int        `json:"displayOrder"`
}

// RewardResponse - награда каталога для выдачи с признаками доступности пользователю
type RewardResponse struct {
	ID                 int64      `json:"id"`
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	PointsCost         int64      `json:"pointsCost"`
	DiscountValue      float64    `json:"discountValue"`
	DiscountPercentage float64    `json:"discountPercentage"`
	FreeProductID      *int64     `json:"freeProductId,omitempty"`
	MinTierLevel       int        `json:"minTierLevel"`
	Description        string     `json:"description"`
	CanAfford          bool       `json:"canAfford"`
	IsAvailable        bool       `json:"isAvailable"`
	HasUsesLeft        bool       `json:"hasUsesLeft"`
	CanRedeem          bool       `json:"canRedeem"`
	UserRedemptions    int        `json:"userRedemptions"`
	MaxUsesPerUser     int        `json:"maxUsesPerUser"`
	TotalAvailable     int        `json:"totalAvailable"`
	TotalRedeemed      int        `json:"totalRedeemed"`
	ValidFrom          *time.Time `json:"validFrom,omitempty"`
	ValidUntil         *time.Time `json:"validUntil,omitempty"`
	MinimumOrderValue  float64    `json:"minimumOrderValue"`
	IsFeatured         bool       `json:"isFeatured"`
	DisplayOrder       int        `json:"displayOrder"`
}

// RewardCatalog - каталог наград с состоянием пользователя
type RewardCatalog struct {
	Rewards       []RewardResponse `json:"rewards"`
	UserPoints    int64            `json:"userPoints"`
	UserTierLevel int              `json:"userTierLevel"`
	Total         int              `json:"total"`
}

// RedemptionResponse - результат погашения
type RedemptionResponse struct {
	ID          int64     `json:"id"`
	RewardID    int64     `json:"rewardId"`
	RewardName  string    `json:"rewardName,omitempty"`
	CouponCode  *string   `json:"couponCode,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
	PointsUsed  int64     `json:"pointsUsed"`
	RewardValue float64   `json:"rewardValue"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewRedemptionResponse - преобразование погашения для выдачи
func NewRedemptionResponse(r RewardRedemption) RedemptionResponse {
	resp := RedemptionResponse{
		ID:          r.ID,
		RewardID:    r.RewardID,
		RewardName:  r.RewardName,
		ExpiresAt:   r.ExpiresAt,
		PointsUsed:  r.PointsUsed,
		RewardValue: r.RewardValue.InexactFloat64(),
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
	if r.CouponCode != "" {
		code := r.CouponCode
		resp.CouponCode = &code
	}
	return resp
}
