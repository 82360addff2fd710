package storage

//go:generate mockgen -source=storage.go -destination=mocks/storage_mock.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/models"
)

type UsersStorage interface {
	AddUser(ctx context.Context, login string, password string) (string, error)
	GetUser(ctx context.Context, login string) (*models.UserData, error)
}

type TiersStorage interface {
	GetTiers(ctx context.Context) ([]models.LoyaltyTier, error)
}

type AccountsStorage interface {
	GetAccount(ctx context.Context, userID string) (*models.LoyaltyAccount, error)
	CreateAccount(ctx context.Context, account models.LoyaltyAccount, bonus models.PointsTransaction) error
	GetTransactions(ctx context.Context, userID string, limit int) ([]models.PointsTransaction, error)
	GetExpiringPoints(ctx context.Context, userID string, until time.Time) (int64, error)
	ExpirePoints(ctx context.Context, now time.Time) ([]models.PointsExpiry, error)
}

type RewardsStorage interface {
	GetReward(ctx context.Context, rewardID int64) (*models.LoyaltyReward, error)
	ListRewards(ctx context.Context, userID string, filter models.RewardFilter) ([]models.UserReward, error)
	CountUserRedemptions(ctx context.Context, userID string, rewardID int64) (int, error)
	RedeemReward(ctx context.Context, redemption models.RewardRedemption, maxUsesPerUser int) (*models.RewardRedemption, error)
	GetRedemptions(ctx context.Context, userID string) ([]models.RewardRedemption, error)
	AddReward(ctx context.Context, reward models.LoyaltyReward) (int64, error)
	RetireReward(ctx context.Context, rewardID int64) error
}

type PurchasesStorage interface {
	GetPurchase(ctx context.Context, orderNumber string) (*models.PurchaseData, error)
	AddPurchase(ctx context.Context, purchase models.PurchaseData) error
	ClaimPurchasesForProcessing(ctx context.Context, count int) ([]models.PurchaseData, error)
	AccruePurchase(ctx context.Context, accrual models.PurchaseAccrual) error
	UpdatePurchaseStatus(ctx context.Context, orderNumber string, status string) error
}

type PriceMatchStorage interface {
	AddPriceMatch(ctx context.Context, request models.PriceMatchData) (int64, error)
	GetPriceMatches(ctx context.Context, status string) ([]models.PriceMatchData, error)
	ReviewPriceMatch(ctx context.Context, id int64, status string, notes string, reviewedAt time.Time) error
}

type Storage struct {
	Users      UsersStorage
	Tiers      TiersStorage
	Accounts   AccountsStorage
	Rewards    RewardsStorage
	Purchases  PurchasesStorage
	PriceMatch PriceMatchStorage
}

// Создание хранилища
func NewStorage(db *Database) Storage {
	return Storage{
		Users:      NewUsersStorage(db),
		Tiers:      NewTiersStorage(db),
		Accounts:   NewAccountsStorage(db),
		Rewards:    NewRewardsStorage(db),
		Purchases:  NewPurchasesStorage(db),
		PriceMatch: NewPriceMatchStorage(db),
	}
}

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountNotFound    = errors.New("loyalty account not found")
	ErrRewardNotFound     = errors.New("reward not found")
	ErrPurchaseNotFound   = errors.New("purchase not found")
	ErrPriceMatchNotFound = errors.New("price match request not found")

	ErrAlreadyExists      = errors.New("already exists")
	ErrAlreadyReviewed    = errors.New("price match request already reviewed")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrRewardUnavailable  = errors.New("reward no longer available")
	ErrUsageLimitReached  = errors.New("maximum uses per user exceeded")
)
