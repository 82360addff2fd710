package services

import (
	"errors"
	"sort"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrNoTiers = errors.New("loyalty tiers are not configured")

	hundred = decimal.NewFromInt(100)
)

// ResolveTier - текущий уровень по сумме покупок и прогресс до следующего.
// Текущий уровень - старший из тех, чей порог не превышает сумму; ниже всех порогов - младший уровень.
// Достижение порога сразу переводит на этот уровень, поэтому прогресс к следующему за ним равен 0
// (сумма 500 при порогах 500 и 1500 - Silver с прогрессом 0 к Gold).
func ResolveTier(tiers []models.LoyaltyTier, lifetimeSpending decimal.Decimal) (models.TierProgress, error) {
	if len(tiers) == 0 {
		return models.TierProgress{}, ErrNoTiers
	}
	sorted := make([]models.LoyaltyTier, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Level < sorted[j].Level })

	current := 0
	for i, tier := range sorted {
		if tier.MinimumSpending.LessThanOrEqual(lifetimeSpending) {
			current = i
		}
	}

	result := models.TierProgress{Current: sorted[current], Progress: 100}
	if current+1 >= len(sorted) {
		return result, nil
	}

	next := sorted[current+1]
	result.Next = &next
	result.Progress = TierProgressPercent(lifetimeSpending, result.Current.MinimumSpending, next.MinimumSpending)

	needed := next.MinimumSpending.Sub(lifetimeSpending)
	if needed.IsPositive() {
		result.SpendingToNextTier = needed
		result.PointsToNextTier = needed.Mul(result.Current.PointsMultiplier).Ceil().IntPart()
	}
	return result, nil
}

// TierProgressPercent - clamp((spend - prev) / (next - prev) * 100, 0, 100).
// Совпадающие пороги считаются ошибкой конфигурации и дают 100.
func TierProgressPercent(spend, previousThreshold, nextThreshold decimal.Decimal) float64 {
	span := nextThreshold.Sub(previousThreshold)
	if !span.IsPositive() {
		return 100
	}
	progress := spend.Sub(previousThreshold).Div(span).Mul(hundred)
	switch {
	case progress.IsNegative():
		return 0
	case progress.GreaterThan(hundred):
		return 100
	}
	return progress.Round(2).InexactFloat64()
}

// LowestTier - уровень для новых участников
func LowestTier(tiers []models.LoyaltyTier) (models.LoyaltyTier, error) {
	if len(tiers) == 0 {
		return models.LoyaltyTier{}, ErrNoTiers
	}
	lowest := tiers[0]
	for _, tier := range tiers[1:] {
		if tier.Level < lowest.Level {
			lowest = tier
		}
	}
	return lowest, nil
}

// EarnedPoints - баллы за покупку с учётом множителя уровня, дробная часть отбрасывается
func EarnedPoints(amount decimal.Decimal, multiplier decimal.Decimal) int64 {
	if !amount.IsPositive() {
		return 0
	}
	if !multiplier.IsPositive() {
		multiplier = decimal.NewFromInt(1)
	}
	return amount.Mul(multiplier).Floor().IntPart()
}
