package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/config"
	"github.com/denmor86/blinds-loyalty/internal/events"
	eventmocks "github.com/denmor86/blinds-loyalty/internal/events/mocks"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/denmor86/blinds-loyalty/internal/storage/mocks"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type loyaltyMocks struct {
	tiers     *mocks.MockTiersStorage
	accounts  *mocks.MockAccountsStorage
	rewards   *mocks.MockRewardsStorage
	publisher *eventmocks.MockPublisher
}

func newTestLoyalty(t *testing.T) (*Loyalty, loyaltyMocks) {
	ctrl := gomock.NewController(t)
	m := loyaltyMocks{
		tiers:     mocks.NewMockTiersStorage(ctrl),
		accounts:  mocks.NewMockAccountsStorage(ctrl),
		rewards:   mocks.NewMockRewardsStorage(ctrl),
		publisher: eventmocks.NewMockPublisher(ctrl),
	}

	config := config.DefaultConfig()
	if err := logger.Initialize(config.Server.LogLevel); err != nil {
		logger.Panic(err)
	}

	loyalty := NewLoyalty(m.tiers, m.accounts, m.rewards, m.publisher)
	loyalty.Now = func() time.Time { return testNow }
	return loyalty, m
}

func testAccount(points int64) *models.LoyaltyAccount {
	return &models.LoyaltyAccount{
		ID:               1,
		UserID:           "user-1",
		CurrentTierID:    2,
		AvailablePoints:  points,
		LifetimeSpending: decimal.NewFromInt(600),
		Status:           models.AccountStatusActive,
	}
}

func checkError(t *testing.T, err error, expected error) {
	t.Helper()
	if err != nil && expected == nil {
		t.Errorf("Expected no error, got '%v'", err)
	} else if err == nil && expected != nil {
		t.Errorf("Expected error, got none")
	} else if err != nil && err.Error() != expected.Error() {
		t.Errorf("Expected error: '%v', got: '%v'", expected, err)
	}
}

func TestLoyaltyService_Redeem(t *testing.T) {
	loyalty, m := newTestLoyalty(t)

	testCases := []struct {
		Name           string
		Request        models.RedeemRequest
		SetupMocks     func()
		ExpectedError  error
		ExpectedReason string
	}{
		{
			Name:          "Error. Missing reward ID #1",
			Request:       models.RedeemRequest{},
			SetupMocks:    func() {},
			ExpectedError: ErrRewardIDRequired,
		},
		{
			Name:    "Error. Not enrolled #2",
			Request: models.RedeemRequest{RewardID: 7},
			SetupMocks: func() {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(nil, storage.ErrAccountNotFound)
			},
			ExpectedError: storage.ErrAccountNotFound,
		},
		{
			Name:    "Error. Unknown reward #3",
			Request: models.RedeemRequest{RewardID: 7},
			SetupMocks: func() {
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(1000), nil)
				m.rewards.EXPECT().GetReward(gomock.Any(), int64(7)).Return(nil, storage.ErrRewardNotFound)
			},
			ExpectedError: storage.ErrRewardNotFound,
		},
		{
			Name:    "Error. 499 points for a 500 point reward #4",
			Request: models.RedeemRequest{RewardID: 7},
			SetupMocks: func() {
				reward := testReward()
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(499), nil)
				m.rewards.EXPECT().GetReward(gomock.Any(), int64(7)).Return(&reward, nil)
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.rewards.EXPECT().CountUserRedemptions(gomock.Any(), "user-1", int64(7)).Return(0, nil)
				// RedeemReward не ожидается: состояние аккаунта не меняется
			},
			ExpectedReason: ReasonInsufficientPoints,
		},
		{
			Name:    "Error. Order below minimum #5",
			Request: models.RedeemRequest{RewardID: 7, OrderTotal: func() *float64 { v := 80.0; return &v }()},
			SetupMocks: func() {
				reward := testReward()
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(1000), nil)
				m.rewards.EXPECT().GetReward(gomock.Any(), int64(7)).Return(&reward, nil)
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.rewards.EXPECT().CountUserRedemptions(gomock.Any(), "user-1", int64(7)).Return(0, nil)
			},
			ExpectedReason: ReasonBelowMinimumOrder,
		},
		{
			Name:    "Error. Concurrent redemption spent the points #6",
			Request: models.RedeemRequest{RewardID: 7},
			SetupMocks: func() {
				reward := testReward()
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(600), nil)
				m.rewards.EXPECT().GetReward(gomock.Any(), int64(7)).Return(&reward, nil)
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.rewards.EXPECT().CountUserRedemptions(gomock.Any(), "user-1", int64(7)).Return(0, nil)
				m.rewards.EXPECT().RedeemReward(gomock.Any(), gomock.Any(), 0).Return(nil, storage.ErrInsufficientPoints)
			},
			ExpectedReason: ReasonInsufficientPoints,
		},
		{
			Name:    "Error. Usage limit reached under lock #7",
			Request: models.RedeemRequest{RewardID: 7},
			SetupMocks: func() {
				reward := testReward()
				reward.MaxUsesPerUser = 1
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(600), nil)
				m.rewards.EXPECT().GetReward(gomock.Any(), int64(7)).Return(&reward, nil)
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.rewards.EXPECT().CountUserRedemptions(gomock.Any(), "user-1", int64(7)).Return(0, nil)
				m.rewards.EXPECT().RedeemReward(gomock.Any(), gomock.Any(), 1).Return(nil, storage.ErrUsageLimitReached)
			},
			ExpectedReason: ReasonNotAvailable,
		},
		{
			Name:    "Success. Coupon issued #8",
			Request: models.RedeemRequest{RewardID: 7},
			SetupMocks: func() {
				reward := testReward()
				m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(600), nil)
				m.rewards.EXPECT().GetReward(gomock.Any(), int64(7)).Return(&reward, nil)
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.rewards.EXPECT().CountUserRedemptions(gomock.Any(), "user-1", int64(7)).Return(0, nil)
				m.rewards.EXPECT().RedeemReward(gomock.Any(), gomock.Any(), 0).DoAndReturn(
					func(_ context.Context, r models.RewardRedemption, _ int) (*models.RewardRedemption, error) {
						if !strings.HasPrefix(r.CouponCode, "LOYALTY-") {
							return nil, errors.New("coupon code missing")
						}
						if r.PointsUsed != 500 || !r.ExpiresAt.Equal(testNow.Add(RedemptionTTL)) {
							return nil, errors.New("unexpected redemption")
						}
						r.ID = 42
						return &r, nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), events.RewardRedeemed, gomock.Any()).Return(nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			redemption, err := loyalty.Redeem(ctx, "user-1", tc.Request)
			if tc.ExpectedReason != "" {
				var gateErr *RedemptionError
				if !errors.As(err, &gateErr) {
					t.Fatalf("Expected RedemptionError, got '%v'", err)
				}
				if gateErr.Reason != tc.ExpectedReason {
					t.Errorf("Expected reason '%s', got '%s'", tc.ExpectedReason, gateErr.Reason)
				}
				return
			}
			checkError(t, err, tc.ExpectedError)
			if tc.ExpectedError == nil && redemption.ID != 42 {
				t.Errorf("Expected redemption 42, got %d", redemption.ID)
			}
		})
	}
}

func TestLoyaltyService_Enroll(t *testing.T) {
	loyalty, m := newTestLoyalty(t)

	testCases := []struct {
		Name          string
		SetupMocks    func()
		ExpectedBonus int64
		ExpectedError error
	}{
		{
			Name: "Success. Welcome bonus #1",
			SetupMocks: func() {
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a models.LoyaltyAccount, bonus models.PointsTransaction) error {
						if a.CurrentTierID != 1 || bonus.Points != WelcomeBonusPoints || bonus.Type != models.TransactionBonus {
							return errors.New("unexpected enrollment")
						}
						if bonus.ExpiresAt == nil || !bonus.ExpiresAt.Equal(testNow.Add(WelcomeBonusTTL)) {
							return errors.New("unexpected bonus expiry")
						}
						return nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), events.AccountEnrolled, gomock.Any()).Return(errors.New("broker down"))
			},
			ExpectedBonus: WelcomeBonusPoints,
		},
		{
			Name: "Error. Already enrolled #2",
			SetupMocks: func() {
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
				m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
			},
			ExpectedError: ErrAlreadyEnrolled,
		},
		{
			Name: "Error. Tiers not configured #3",
			SetupMocks: func() {
				m.tiers.EXPECT().GetTiers(gomock.Any()).Return(nil, nil)
			},
			ExpectedError: ErrNoTiers,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			bonus, err := loyalty.Enroll(context.Background(), "user-1")
			checkError(t, err, tc.ExpectedError)
			if bonus != tc.ExpectedBonus {
				t.Errorf("Expected bonus %d, got %d", tc.ExpectedBonus, bonus)
			}
		})
	}
}

func TestLoyaltyService_GetAccount(t *testing.T) {
	loyalty, m := newTestLoyalty(t)

	recent := []models.PointsTransaction{{ID: 1, Type: models.TransactionBonus, Points: 100}}
	m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(700), nil)
	m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
	m.accounts.EXPECT().GetExpiringPoints(gomock.Any(), "user-1", testNow.Add(ExpiringSoonWindow)).Return(int64(100), nil)
	m.accounts.EXPECT().GetTransactions(gomock.Any(), "user-1", RecentTransactions).Return(recent, nil)

	summary, err := loyalty.GetAccount(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if summary.Tier.Current.Name != "Silver" || summary.Tier.Next == nil || summary.Tier.Next.Name != "Gold" {
		t.Errorf("Unexpected tiers: %+v", summary.Tier)
	}
	if summary.Tier.Progress != 10 {
		t.Errorf("Expected progress 10, got %v", summary.Tier.Progress)
	}
	if summary.PointsExpiringSoon != 100 {
		t.Errorf("Expected 100 expiring points, got %d", summary.PointsExpiringSoon)
	}
	if diff := cmp.Diff(recent, summary.RecentTransactions); diff != "" {
		t.Errorf("Recent transactions mismatch (-want +got):\n%s", diff)
	}
}

func TestLoyaltyService_GetRewards(t *testing.T) {
	loyalty, m := newTestLoyalty(t)

	cheap := testReward()
	cheap.ID, cheap.PointsCost = 1, 100
	expensive := testReward()
	expensive.ID, expensive.PointsCost = 2, 1000

	m.accounts.EXPECT().GetAccount(gomock.Any(), "user-1").Return(testAccount(700), nil)
	m.tiers.EXPECT().GetTiers(gomock.Any()).Return(testTiers(), nil)
	m.rewards.EXPECT().ListRewards(gomock.Any(), "user-1", models.RewardFilter{
		Type:         "",
		FeaturedOnly: true,
		MaxTierLevel: 2,
		Now:          testNow,
	}).Return([]models.UserReward{{Reward: cheap}, {Reward: expensive}}, nil)

	catalog, err := loyalty.GetRewards(context.Background(), "user-1", "all", true)
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	got := []bool{catalog.Rewards[0].CanRedeem, catalog.Rewards[1].CanRedeem}
	if diff := cmp.Diff([]bool{true, false}, got); diff != "" {
		t.Errorf("CanRedeem mismatch (-want +got):\n%s", diff)
	}
	if catalog.Total != 2 || catalog.UserPoints != 700 || catalog.UserTierLevel != 2 {
		t.Errorf("Unexpected catalog: %+v", catalog)
	}
}

func TestLoyaltyService_CreateReward(t *testing.T) {
	loyalty, m := newTestLoyalty(t)

	testCases := []struct {
		Name          string
		Request       models.RewardRequest
		SetupMocks    func()
		ExpectedError bool
	}{
		{
			Name:          "Error. Missing name #1",
			Request:       models.RewardRequest{Type: models.RewardFreeShipping, PointsCost: 200},
			SetupMocks:    func() {},
			ExpectedError: true,
		},
		{
			Name:          "Error. Unknown type #2",
			Request:       models.RewardRequest{Name: "Gift", Type: "gift_card", PointsCost: 200},
			SetupMocks:    func() {},
			ExpectedError: true,
		},
		{
			Name:          "Error. Free product without product #3",
			Request:       models.RewardRequest{Name: "Free sample", Type: models.RewardFreeProduct, PointsCost: 200},
			SetupMocks:    func() {},
			ExpectedError: true,
		},
		{
			Name:    "Success. Free shipping #4",
			Request: models.RewardRequest{Name: " Free shipping ", Type: models.RewardFreeShipping, PointsCost: 200},
			SetupMocks: func() {
				m.rewards.EXPECT().AddReward(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r models.LoyaltyReward) (int64, error) {
						if r.Name != "Free shipping" || r.MinTierLevel != 1 || !r.IsActive {
							return 0, errors.New("unexpected reward")
						}
						return 11, nil
					})
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			_, err := loyalty.CreateReward(context.Background(), tc.Request)
			if tc.ExpectedError {
				if !errors.Is(err, ErrInvalidRewardData) {
					t.Errorf("Expected '%v', got '%v'", ErrInvalidRewardData, err)
				}
				return
			}
			if err != nil {
				t.Errorf("Expected no error, got '%v'", err)
			}
		})
	}
}
