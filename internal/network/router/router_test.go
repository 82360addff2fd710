package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/denmor86/blinds-loyalty/internal/config"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services/mocks"
	"github.com/go-chi/jwtauth/v5"
	"go.uber.org/mock/gomock"
)

func TestRouter_Access(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	mockIdentity := mocks.NewMockIdentityService(ctrl)
	mockIdentity.EXPECT().GetTokenAuth().Return(tokenAuth).AnyTimes()
	mockLoyalty := mocks.NewMockLoyaltyService(ctrl)
	mockPurchases := mocks.NewMockPurchaseService(ctrl)
	mockPriceMatch := mocks.NewMockPriceMatchService(ctrl)

	cfg := config.Config{Server: config.ServerConfig{CORSOrigins: []string{"*"}}}
	server := httptest.NewServer(NewRouter(cfg, mockIdentity, mockLoyalty, mockPurchases, mockPriceMatch).HandleRouter())
	defer server.Close()

	token := func(role string) string {
		_, s, err := tokenAuth.Encode(map[string]interface{}{"user_id": "user-1", "username": "jane", "role": role})
		if err != nil {
			t.Fatal(err)
		}
		return s
	}

	testCases := []struct {
		Name           string
		Method         string
		Path           string
		Body           string
		Token          string
		SetupMocks     func()
		ExpectedStatus int
	}{
		{
			Name:           "Error. Admin list without token #1",
			Method:         http.MethodGet,
			Path:           "/api/admin/price-match",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Error. Admin list with invalid token #2",
			Method:         http.MethodGet,
			Path:           "/api/admin/price-match",
			Token:          "not-a-token",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:           "Error. Admin list as customer #3",
			Method:         http.MethodGet,
			Path:           "/api/admin/price-match",
			Token:          token(models.RoleCustomer),
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusForbidden,
		},
		{
			Name:   "Success. Admin list as admin #4",
			Method: http.MethodGet,
			Path:   "/api/admin/price-match?status=pending",
			Token:  token(models.RoleAdmin),
			SetupMocks: func() {
				mockPriceMatch.EXPECT().List(gomock.Any(), models.PriceMatchPending).Return(nil, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:           "Error. Account without token #5",
			Method:         http.MethodGet,
			Path:           "/api/loyalty/account",
			SetupMocks:     func() {},
			ExpectedStatus: http.StatusUnauthorized,
		},
		{
			Name:   "Success. Public tiers #6",
			Method: http.MethodGet,
			Path:   "/api/loyalty/tiers",
			SetupMocks: func() {
				mockLoyalty.EXPECT().GetTiers(gomock.Any()).Return([]models.LoyaltyTier{{ID: 1, Name: "Bronze", Level: 1}}, nil)
			},
			ExpectedStatus: http.StatusOK,
		},
		{
			Name:   "Success. Guest price match #7",
			Method: http.MethodPost,
			Path:   "/api/price-match",
			Body:   `{"name":"Jane","email":"jane@example.com","competitorName":"Shades Co","competitorUrl":"https://shades.example","competitorPrice":10}`,
			SetupMocks: func() {
				mockPriceMatch.EXPECT().Submit(gomock.Any(), "", gomock.Any()).Return(int64(1), nil)
			},
			ExpectedStatus: http.StatusCreated,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			tc.SetupMocks()
			req, err := http.NewRequest(tc.Method, server.URL+tc.Path, strings.NewReader(tc.Body))
			if err != nil {
				t.Fatal(err)
			}
			if tc.Token != "" {
				req.Header.Set("Authorization", "Bearer "+tc.Token)
			}
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				t.Fatalf("Request failed: %v", err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.ExpectedStatus {
				t.Errorf("Expected status %d, got %d", tc.ExpectedStatus, resp.StatusCode)
			}
		})
	}
}
