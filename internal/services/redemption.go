package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Причины отказа в погашении награды
const (
	ReasonInsufficientPoints = "insufficient_points"
	ReasonNotAvailable       = "not_available"
	ReasonBelowMinimumOrder  = "below_minimum_order"
)

const (
	// срок действия купона после погашения
	RedemptionTTL = 30 * 24 * time.Hour
	couponPrefix  = "LOYALTY-"
)

// RedemptionError - типизированный отказ в погашении
type RedemptionError struct {
	Reason string
	Detail string
}

func (e *RedemptionError) Error() string {
	if e.Detail == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Reason, e.Detail)
}

func notAvailable(detail string) *RedemptionError {
	return &RedemptionError{Reason: ReasonNotAvailable, Detail: detail}
}

// RedemptionCheck - всё, что нужно для решения о погашении
type RedemptionCheck struct {
	Reward          models.LoyaltyReward
	AvailablePoints int64
	TierLevel       int
	UserRedemptions int
	OrderTotal      *decimal.Decimal
	Now             time.Time
}

// CheckRedemption - погашение допустимо, если награда доступна, баллов хватает
// и, при переданной сумме заказа, она не ниже минимальной.
func CheckRedemption(c RedemptionCheck) error {
	r := c.Reward
	if !r.IsActive {
		return notAvailable("reward is not active")
	}
	if c.AvailablePoints < r.PointsCost {
		return &RedemptionError{
			Reason: ReasonInsufficientPoints,
			Detail: fmt.Sprintf("%d points required, %d available", r.PointsCost, c.AvailablePoints),
		}
	}
	if c.TierLevel < r.MinTierLevel {
		return notAvailable("tier level too low for this reward")
	}
	if r.MaxUsesPerUser > 0 && c.UserRedemptions >= r.MaxUsesPerUser {
		return notAvailable("maximum uses per user exceeded")
	}
	if r.TotalAvailable > 0 && r.TotalRedeemed >= r.TotalAvailable {
		return notAvailable("reward no longer available")
	}
	if r.ValidFrom != nil && r.ValidFrom.After(c.Now) {
		return notAvailable("reward not yet available")
	}
	if r.ValidUntil != nil && r.ValidUntil.Before(c.Now) {
		return notAvailable("reward has expired")
	}
	if c.OrderTotal != nil && r.MinimumOrderValue.IsPositive() && c.OrderTotal.LessThan(r.MinimumOrderValue) {
		return &RedemptionError{
			Reason: ReasonBelowMinimumOrder,
			Detail: fmt.Sprintf("minimum order value is %s", r.MinimumOrderValue.StringFixed(2)),
		}
	}
	return nil
}

// RewardAvailability - признаки для каталога наград
func RewardAvailability(ur models.UserReward, availablePoints int64) models.RewardResponse {
	r := ur.Reward
	canAfford := availablePoints >= r.PointsCost
	hasUsesLeft := r.MaxUsesPerUser == 0 || ur.UserRedemptions < r.MaxUsesPerUser
	inStock := r.TotalAvailable == 0 || r.TotalRedeemed < r.TotalAvailable
	isAvailable := hasUsesLeft && inStock

	return models.RewardResponse{
		ID:                 r.ID,
		Name:               r.Name,
		Type:               r.Type,
		PointsCost:         r.PointsCost,
		DiscountValue:      r.DiscountValue.InexactFloat64(),
		DiscountPercentage: r.DiscountPercentage.InexactFloat64(),
		FreeProductID:      r.FreeProductID,
		MinTierLevel:       r.MinTierLevel,
		Description:        r.Description,
		CanAfford:          canAfford,
		IsAvailable:        isAvailable,
		HasUsesLeft:        hasUsesLeft,
		CanRedeem:          canAfford && isAvailable,
		UserRedemptions:    ur.UserRedemptions,
		MaxUsesPerUser:     r.MaxUsesPerUser,
		TotalAvailable:     r.TotalAvailable,
		TotalRedeemed:      r.TotalRedeemed,
		ValidFrom:          r.ValidFrom,
		ValidUntil:         r.ValidUntil,
		MinimumOrderValue:  r.MinimumOrderValue.InexactFloat64(),
		IsFeatured:         r.IsFeatured,
		DisplayOrder:       r.DisplayOrder,
	}
}

// NewCouponCode - код купона для наград со скидкой или доставкой
func NewCouponCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return couponPrefix + strings.ToUpper(id[:12])
}
