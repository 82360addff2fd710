package services

//go:generate mockgen -source=loyalty.go -destination=mocks/loyalty_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/events"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/shopspring/decimal"
)

const (
	WelcomeBonusPoints = 100
	WelcomeBonusTTL    = 2 * 365 * 24 * time.Hour
	ExpiringSoonWindow = 30 * 24 * time.Hour
	RecentTransactions = 10
)

var (
	ErrAlreadyEnrolled   = errors.New("user already enrolled in loyalty program")
	ErrRewardIDRequired  = errors.New("reward ID is required")
	ErrInvalidRewardData = errors.New("invalid reward data")
)

type LoyaltyService interface {
	GetTiers(ctx context.Context) ([]models.LoyaltyTier, error)
	GetAccount(ctx context.Context, userID string) (*models.AccountSummary, error)
	Enroll(ctx context.Context, userID string) (int64, error)
	GetTransactions(ctx context.Context, userID string) ([]models.PointsTransaction, error)
	GetRewards(ctx context.Context, userID string, rewardType string, featuredOnly bool) (*models.RewardCatalog, error)
	Redeem(ctx context.Context, userID string, req models.RedeemRequest) (*models.RewardRedemption, error)
	GetRedemptions(ctx context.Context, userID string) ([]models.RewardRedemption, error)
	CreateReward(ctx context.Context, req models.RewardRequest) (int64, error)
	RetireReward(ctx context.Context, rewardID int64) error
}

type Loyalty struct {
	Tiers    storage.TiersStorage
	Accounts storage.AccountsStorage
	Rewards  storage.RewardsStorage
	Events   events.Publisher
	Now      func() time.Time
}

// Создание сервиса
func NewLoyalty(tiers storage.TiersStorage, accounts storage.AccountsStorage, rewards storage.RewardsStorage, publisher events.Publisher) *Loyalty {
	return &Loyalty{
		Tiers:    tiers,
		Accounts: accounts,
		Rewards:  rewards,
		Events:   publisher,
		Now:      time.Now,
	}
}

func (s *Loyalty) GetTiers(ctx context.Context) ([]models.LoyaltyTier, error) {
	tiers, err := s.Tiers.GetTiers(ctx)
	if err != nil {
		logger.Errorw("Failed to get tiers", "error", err)
		return nil, err
	}
	return tiers, nil
}

// GetAccount - аккаунт с уровнем, прогрессом, сгорающими баллами и последними операциями
func (s *Loyalty) GetAccount(ctx context.Context, userID string) (*models.AccountSummary, error) {
	account, err := s.Accounts.GetAccount(ctx, userID)
	if err != nil {
		if !errors.Is(err, storage.ErrAccountNotFound) {
			logger.Errorw("Failed to get loyalty account", "user", userID, "error", err)
		}
		return nil, err
	}
	tiers, err := s.Tiers.GetTiers(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := ResolveTier(tiers, account.LifetimeSpending)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	expiring, err := s.Accounts.GetExpiringPoints(ctx, userID, now.Add(ExpiringSoonWindow))
	if err != nil {
		return nil, err
	}
	recent, err := s.Accounts.GetTransactions(ctx, userID, RecentTransactions)
	if err != nil {
		return nil, err
	}

	return &models.AccountSummary{
		Account:            *account,
		Tier:               progress,
		PointsExpiringSoon: expiring,
		RecentTransactions: recent,
	}, nil
}

// Enroll - вступление в программу на младшем уровне с приветственными баллами
func (s *Loyalty) Enroll(ctx context.Context, userID string) (int64, error) {
	tiers, err := s.Tiers.GetTiers(ctx)
	if err != nil {
		return 0, err
	}
	lowest, err := LowestTier(tiers)
	if err != nil {
		logger.Error("Default loyalty tier not found")
		return 0, err
	}

	now := s.Now()
	expiresAt := now.Add(WelcomeBonusTTL)
	account := models.LoyaltyAccount{
		UserID:        userID,
		CurrentTierID: lowest.ID,
		Status:        models.AccountStatusActive,
		EnrolledAt:    now,
	}
	bonus := models.PointsTransaction{
		UserID:        userID,
		Type:          models.TransactionBonus,
		Points:        WelcomeBonusPoints,
		Description:   "Welcome bonus for joining our loyalty program",
		ReferenceType: "signup",
		CreatedAt:     now,
		ExpiresAt:     &expiresAt,
	}

	if err := s.Accounts.CreateAccount(ctx, account, bonus); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return 0, ErrAlreadyEnrolled
		}
		logger.Errorw("Failed to enroll user", "user", userID, "error", err)
		return 0, err
	}

	logger.Infow("User enrolled in loyalty program", "user", userID, "tier", lowest.Name)
	events.Emit(ctx, s.Events, events.AccountEnrolled, map[string]any{
		"userId":      userID,
		"tier":        lowest.Name,
		"bonusPoints": WelcomeBonusPoints,
	})
	return WelcomeBonusPoints, nil
}

func (s *Loyalty) GetTransactions(ctx context.Context, userID string) ([]models.PointsTransaction, error) {
	if _, err := s.Accounts.GetAccount(ctx, userID); err != nil {
		return nil, err
	}
	return s.Accounts.GetTransactions(ctx, userID, 0)
}

// GetRewards - каталог наград, доступных уровню пользователя
func (s *Loyalty) GetRewards(ctx context.Context, userID string, rewardType string, featuredOnly bool) (*models.RewardCatalog, error) {
	account, err := s.Accounts.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	tierLevel, err := s.tierLevel(ctx, account)
	if err != nil {
		return nil, err
	}

	if rewardType == "all" {
		rewardType = ""
	}
	rewards, err := s.Rewards.ListRewards(ctx, userID, models.RewardFilter{
		Type:         rewardType,
		FeaturedOnly: featuredOnly,
		MaxTierLevel: tierLevel,
		Now:          s.Now(),
	})
	if err != nil {
		logger.Errorw("Failed to list rewards", "user", userID, "error", err)
		return nil, err
	}

	catalog := &models.RewardCatalog{
		Rewards:       make([]models.RewardResponse, 0, len(rewards)),
		UserPoints:    account.AvailablePoints,
		UserTierLevel: tierLevel,
		Total:         len(rewards),
	}
	for _, reward := range rewards {
		catalog.Rewards = append(catalog.Rewards, RewardAvailability(reward, account.AvailablePoints))
	}
	return catalog, nil
}

// Redeem - проверка условий и атомарное погашение награды.
// При отказе состояние аккаунта не меняется.
func (s *Loyalty) Redeem(ctx context.Context, userID string, req models.RedeemRequest) (*models.RewardRedemption, error) {
	if req.RewardID <= 0 {
		return nil, ErrRewardIDRequired
	}
	account, err := s.Accounts.GetAccount(ctx, userID)
	if err != nil {
		return nil, err
	}
	reward, err := s.Rewards.GetReward(ctx, req.RewardID)
	if err != nil {
		return nil, err
	}
	tierLevel, err := s.tierLevel(ctx, account)
	if err != nil {
		return nil, err
	}
	used, err := s.Rewards.CountUserRedemptions(ctx, userID, reward.ID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	check := RedemptionCheck{
		Reward:          *reward,
		AvailablePoints: account.AvailablePoints,
		TierLevel:       tierLevel,
		UserRedemptions: used,
		Now:             now,
	}
	if req.OrderTotal != nil {
		total := decimal.NewFromFloat(*req.OrderTotal)
		check.OrderTotal = &total
	}
	if err := CheckRedemption(check); err != nil {
		logger.Warnw("Redemption rejected", "user", userID, "reward", reward.ID, "reason", err.Error())
		return nil, err
	}

	redemption := models.RewardRedemption{
		UserID:      userID,
		RewardID:    reward.ID,
		RewardName:  reward.Name,
		PointsUsed:  reward.PointsCost,
		RewardValue: reward.Value(),
		Status:      models.RedemptionActive,
		ExpiresAt:   now.Add(RedemptionTTL),
		CreatedAt:   now,
	}
	if reward.IssuesCoupon() {
		redemption.CouponCode = NewCouponCode()
	}

	result, err := s.Rewards.RedeemReward(ctx, redemption, reward.MaxUsesPerUser)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInsufficientPoints):
			return nil, &RedemptionError{Reason: ReasonInsufficientPoints, Detail: "points balance changed"}
		case errors.Is(err, storage.ErrRewardUnavailable):
			return nil, notAvailable("reward no longer available")
		case errors.Is(err, storage.ErrUsageLimitReached):
			return nil, notAvailable("maximum uses per user exceeded")
		}
		logger.Errorw("Failed to redeem reward", "user", userID, "reward", reward.ID, "error", err)
		return nil, err
	}

	logger.Infow("Reward redeemed", "user", userID, "reward", reward.ID, "points", reward.PointsCost)
	events.Emit(ctx, s.Events, events.RewardRedeemed, map[string]any{
		"userId":       userID,
		"rewardId":     reward.ID,
		"redemptionId": result.ID,
		"pointsUsed":   result.PointsUsed,
		"couponCode":   result.CouponCode,
	})
	return result, nil
}

func (s *Loyalty) GetRedemptions(ctx context.Context, userID string) ([]models.RewardRedemption, error) {
	return s.Rewards.GetRedemptions(ctx, userID)
}

// CreateReward - добавление награды в каталог
func (s *Loyalty) CreateReward(ctx context.Context, req models.RewardRequest) (int64, error) {
	if err := validateReward(req); err != nil {
		return 0, err
	}
	reward := models.LoyaltyReward{
		Name:               strings.TrimSpace(req.Name),
		Type:               req.Type,
		PointsCost:         req.PointsCost,
		DiscountValue:      decimal.NewFromFloat(req.DiscountValue),
		DiscountPercentage: decimal.NewFromFloat(req.DiscountPercentage),
		FreeProductID:      req.FreeProductID,
		MinTierLevel:       max(req.MinTierLevel, 1),
		MaxUsesPerUser:     req.MaxUsesPerUser,
		TotalAvailable:     req.TotalAvailable,
		ValidFrom:          req.ValidFrom,
		ValidUntil:         req.ValidUntil,
		MinimumOrderValue:  decimal.NewFromFloat(req.MinimumOrderValue),
		Description:        req.Description,
		IsActive:           true,
		IsFeatured:         req.IsFeatured,
		DisplayOrder:       req.DisplayOrder,
	}
	id, err := s.Rewards.AddReward(ctx, reward)
	if err != nil {
		logger.Errorw("Failed to create reward", "error", err)
		return 0, err
	}
	logger.Infow("Reward created", "reward", id, "name", reward.Name)
	return id, nil
}

func (s *Loyalty) RetireReward(ctx context.Context, rewardID int64) error {
	if err := s.Rewards.RetireReward(ctx, rewardID); err != nil {
		return err
	}
	logger.Infow("Reward retired", "reward", rewardID)
	return nil
}

func (s *Loyalty) tierLevel(ctx context.Context, account *models.LoyaltyAccount) (int, error) {
	tiers, err := s.Tiers.GetTiers(ctx)
	if err != nil {
		return 0, err
	}
	for _, tier := range tiers {
		if tier.ID == account.CurrentTierID {
			return tier.Level, nil
		}
	}
	progress, err := ResolveTier(tiers, account.LifetimeSpending)
	if err != nil {
		return 0, err
	}
	return progress.Current.Level, nil
}

func validateReward(req models.RewardRequest) error {
	switch {
	case strings.TrimSpace(req.Name) == "":
		return fmt.Errorf("%w: name is required", ErrInvalidRewardData)
	case req.PointsCost <= 0:
		return fmt.Errorf("%w: points cost must be positive", ErrInvalidRewardData)
	case req.DiscountValue < 0 || req.DiscountPercentage < 0 || req.DiscountPercentage > 100:
		return fmt.Errorf("%w: invalid discount", ErrInvalidRewardData)
	case req.MaxUsesPerUser < 0 || req.TotalAvailable < 0 || req.MinimumOrderValue < 0:
		return fmt.Errorf("%w: limits must not be negative", ErrInvalidRewardData)
	case req.ValidFrom != nil && req.ValidUntil != nil && req.ValidUntil.Before(*req.ValidFrom):
		return fmt.Errorf("%w: validity window is empty", ErrInvalidRewardData)
	}
	switch req.Type {
	case models.RewardDiscountPercentage, models.RewardDiscountFixed, models.RewardFreeShipping:
	case models.RewardFreeProduct:
		if req.FreeProductID == nil {
			return fmt.Errorf("%w: free product reward needs a product", ErrInvalidRewardData)
		}
	default:
		return fmt.Errorf("%w: unknown reward type %q", ErrInvalidRewardData, req.Type)
	}
	return nil
}
