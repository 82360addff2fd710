package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services"
	"github.com/denmor86/blinds-loyalty/internal/services/mocks"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

var tokenAuth = jwtauth.New("HS256", []byte("test-secret"), nil)

// serve - запрос через jwtauth.Verifier; пустой userID означает запрос без токена
func serve(t *testing.T, h http.Handler, method, target, body, userID string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		_, token, err := tokenAuth.Encode(map[string]interface{}{
			"user_id":  userID,
			"username": "jane",
			"role":     models.RoleCustomer,
		})
		if err != nil {
			t.Fatal(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	jwtauth.Verifier(tokenAuth)(h).ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Failed to decode response '%s': %v", rec.Body.String(), err)
	}
	return body
}

func TestRedeemRewardHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLoyalty := mocks.NewMockLoyaltyService(ctrl)
	handler := RedeemRewardHandler(mockLoyalty)

	expiresAt := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		Name           string
		UserID         string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
		ExpectedBody   map[string]any
	}{
		{
			Name:           "Error. No token #1",
			Body:           `{"rewardId":7}`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusUnauthorized,
			ExpectedBody:   map[string]any{"success": false, "error": "Authentication required"},
		},
		{
			Name:           "Error. Malformed body #2",
			UserID:         "user-1",
			Body:           `{"rewardId":`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   map[string]any{"success": false, "error": "Invalid request format"},
		},
		{
			Name:   "Error. Missing reward ID #3",
			UserID: "user-1",
			Body:   `{}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().Redeem(gomock.Any(), "user-1", models.RedeemRequest{}).Return(nil, services.ErrRewardIDRequired)
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   map[string]any{"success": false, "error": "Reward ID is required"},
		},
		{
			Name:   "Error. Insufficient points #4",
			UserID: "user-1",
			Body:   `{"rewardId":7}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().Redeem(gomock.Any(), "user-1", models.RedeemRequest{RewardID: 7}).
					Return(nil, &services.RedemptionError{Reason: services.ReasonInsufficientPoints, Detail: "500 points required, 499 available"})
			},
			ExpectedStatus: http.StatusUnprocessableEntity,
			ExpectedBody: map[string]any{
				"success": false,
				"error":   "insufficient_points: 500 points required, 499 available",
				"reason":  "insufficient_points",
			},
		},
		{
			Name:   "Error. Reward not found #5",
			UserID: "user-1",
			Body:   `{"rewardId":9}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().Redeem(gomock.Any(), "user-1", models.RedeemRequest{RewardID: 9}).Return(nil, storage.ErrRewardNotFound)
			},
			ExpectedStatus: http.StatusNotFound,
			ExpectedBody:   map[string]any{"success": false, "error": "Reward not found"},
		},
		{
			Name:   "Success. Coupon returned #6",
			UserID: "user-1",
			Body:   `{"rewardId":7}`,
			SetupMocks: func() {
				mockLoyalty.EXPECT().Redeem(gomock.Any(), "user-1", models.RedeemRequest{RewardID: 7}).Return(&models.RewardRedemption{
					ID:          42,
					RewardID:    7,
					RewardName:  "10% off",
					PointsUsed:  500,
					RewardValue: decimal.NewFromInt(10),
					CouponCode:  "LOYALTY-ABCDEF123456",
					Status:      models.RedemptionActive,
					ExpiresAt:   expiresAt,
					CreatedAt:   expiresAt.AddDate(0, 0, -30),
				}, nil)
			},
			ExpectedStatus: http.StatusOK,
			ExpectedBody: map[string]any{
				"success": true,
				"message": "Reward redeemed successfully",
				"redemption": map[string]any{
					"id":          float64(42),
					"rewardId":    float64(7),
					"rewardName":  "10% off",
					"couponCode":  "LOYALTY-ABCDEF123456",
					"expiresAt":   "2026-03-31T12:00:00Z",
					"pointsUsed":  float64(500),
					"rewardValue": float64(10),
					"status":      "active",
					"createdAt":   "2026-03-01T12:00:00Z",
				},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			rec := serve(t, handler, http.MethodPost, "/api/loyalty/rewards", tc.Body, tc.UserID)
			if rec.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rec.Code)
			}
			if diff := cmp.Diff(tc.ExpectedBody, decodeBody(t, rec)); diff != "" {
				t.Errorf("Body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetAccountHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockLoyalty := mocks.NewMockLoyaltyService(ctrl)
	handler := GetAccountHandler(mockLoyalty)

	t.Run("Error. Not enrolled #1", func(t *testing.T) {
		mockLoyalty.EXPECT().GetAccount(gomock.Any(), "user-1").Return(nil, storage.ErrAccountNotFound)
		rec := serve(t, handler, http.MethodGet, "/api/loyalty/account", "", "user-1")
		if rec.Code != http.StatusNotFound {
			t.Errorf("Expected status %d, got %d", http.StatusNotFound, rec.Code)
		}
	})

	t.Run("Success. Account with next tier #2", func(t *testing.T) {
		silver := models.LoyaltyTier{ID: 2, Name: "Silver", Level: 2, MinimumSpending: decimal.NewFromInt(500), PointsMultiplier: decimal.RequireFromString("1.25")}
		gold := models.LoyaltyTier{ID: 3, Name: "Gold", Level: 3, MinimumSpending: decimal.NewFromInt(1500)}
		mockLoyalty.EXPECT().GetAccount(gomock.Any(), "user-1").Return(&models.AccountSummary{
			Account: models.LoyaltyAccount{UserID: "user-1", AvailablePoints: 700, LifetimeSpending: decimal.NewFromInt(600)},
			Tier: models.TierProgress{
				Current:            silver,
				Next:               &gold,
				Progress:           10,
				SpendingToNextTier: decimal.NewFromInt(900),
				PointsToNextTier:   1125,
			},
		}, nil)

		rec := serve(t, handler, http.MethodGet, "/api/loyalty/account", "", "user-1")
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status %d, got %d", http.StatusOK, rec.Code)
		}
		account := decodeBody(t, rec)["account"].(map[string]any)
		got := map[string]any{
			"availablePoints": account["availablePoints"],
			"tierProgress":    account["tierProgress"],
			"nextTier":        account["nextTier"],
		}
		expected := map[string]any{
			"availablePoints": float64(700),
			"tierProgress":    float64(10),
			"nextTier": map[string]any{
				"id":                 float64(3),
				"name":               "Gold",
				"minimumSpending":    float64(1500),
				"pointsToNextTier":   float64(1125),
				"spendingToNextTier": float64(900),
			},
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("Account mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestRegisterPurchaseHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPurchases := mocks.NewMockPurchaseService(ctrl)
	handler := RegisterPurchaseHandler(mockPurchases)

	testCases := []struct {
		Name           string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			Name:           "Error. Invalid order number #1",
			Body:           `{"orderNumber":"!","amount":10}`,
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusUnprocessableEntity,
		},
		{
			Name: "Success. Accepted #2",
			Body: `{"orderNumber":"BC-1001","amount":120.5}`,
			SetupMocks: func() {
				mockPurchases.EXPECT().AddPurchase(gomock.Any(), "user-1", models.PurchaseRequest{OrderNumber: "BC-1001", Amount: 120.5}).Return(nil)
			},
			ExpectedStatus: http.StatusAccepted,
		},
		{
			Name: "Success. Already registered by user #3",
			Body: `{"orderNumber":"BC-1001","amount":120.5}`,
			SetupMocks: func() {
				mockPurchases.EXPECT().AddPurchase(gomock.Any(), "user-1", gomock.Any()).Return(services.ErrPurchaseAlreadyUploaded)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name: "Error. Registered by another user #4",
			Body: `{"orderNumber":"BC-1001","amount":120.5}`,
			SetupMocks: func() {
				mockPurchases.EXPECT().AddPurchase(gomock.Any(), "user-1", gomock.Any()).Return(services.ErrPurchaseUploadedByAnother)
			},
			ExpectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			rec := serve(t, handler, http.MethodPost, "/api/loyalty/purchases", tc.Body, "user-1")
			if rec.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rec.Code)
			}
		})
	}
}

func TestSubmitPriceMatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPriceMatch := mocks.NewMockPriceMatchService(ctrl)
	handler := SubmitPriceMatchHandler(mockPriceMatch)

	body := `{"name":"Jane","email":"jane@example.com","competitorName":"Shades Co","competitorUrl":"https://shades.example","competitorPrice":99.99}`

	testCases := []struct {
		Name           string
		UserID         string
		Body           string
		SetupMocks     func()
		ExpectedStatus int
		ExpectedBody   map[string]any
	}{
		{
			Name: "Error. Validation message returned #1",
			Body: body,
			SetupMocks: func() {
				mockPriceMatch.EXPECT().Submit(gomock.Any(), "", gomock.Any()).Return(int64(0), &services.ValidationError{Message: "invalid email address"})
			},
			ExpectedStatus: http.StatusBadRequest,
			ExpectedBody:   map[string]any{"success": false, "error": "invalid email address"},
		},
		{
			Name:   "Success. Signed in customer #2",
			UserID: "user-1",
			Body:   body,
			SetupMocks: func() {
				mockPriceMatch.EXPECT().Submit(gomock.Any(), "user-1", gomock.Any()).Return(int64(12), nil)
			},
			ExpectedStatus: http.StatusCreated,
			ExpectedBody: map[string]any{
				"success":   true,
				"message":   "Price match request submitted successfully",
				"requestId": float64(12),
			},
		},
		{
			Name: "Error. Storage failure hidden #3",
			Body: body,
			SetupMocks: func() {
				mockPriceMatch.EXPECT().Submit(gomock.Any(), "", gomock.Any()).Return(int64(0), storage.ErrAlreadyExists)
			},
			ExpectedStatus: http.StatusInternalServerError,
			ExpectedBody:   map[string]any{"success": false, "error": "Internal Server Error"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			rec := serve(t, handler, http.MethodPost, "/api/price-match", tc.Body, tc.UserID)
			if rec.Code != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, rec.Code)
			}
			if diff := cmp.Diff(tc.ExpectedBody, decodeBody(t, rec)); diff != "" {
				t.Errorf("Body mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
