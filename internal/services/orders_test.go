package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/client"
	"github.com/denmor86/blinds-loyalty/internal/models"
	servicemocks "github.com/denmor86/blinds-loyalty/internal/services/mocks"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func TestOrderStatusChecker_GetOrderStatus(t *testing.T) {
	testCases := []struct {
		Name           string
		SetupMocks     func(m *servicemocks.MockOrderGetter)
		ExpectedStatus string
		ExpectedTotal  string
		ExpectedError  error
		ExpectBlocked  bool
	}{
		{
			Name: "Success. Paid order #1",
			SetupMocks: func(m *servicemocks.MockOrderGetter) {
				m.EXPECT().GetOrder(gomock.Any(), "BC-1001").Return(&client.OrderResponse{Order: "BC-1001", Status: "PAID", Total: 249.99}, nil)
			},
			ExpectedStatus: models.OrderStatusPaid,
			ExpectedTotal:  "249.99",
		},
		{
			Name: "Success. Rate limited order stays pending #2",
			SetupMocks: func(m *servicemocks.MockOrderGetter) {
				m.EXPECT().GetOrder(gomock.Any(), "BC-1001").Return(nil, &client.RateLimitError{RetryAfter: time.Minute})
			},
			ExpectedStatus: models.OrderStatusPending,
			ExpectedTotal:  "0",
			ExpectBlocked:  true,
		},
		{
			Name: "Error. Unknown status #3",
			SetupMocks: func(m *servicemocks.MockOrderGetter) {
				m.EXPECT().GetOrder(gomock.Any(), "BC-1001").Return(&client.OrderResponse{Order: "BC-1001", Status: "LOST"}, nil)
			},
			ExpectedError: errors.New("undefined order status LOST"),
		},
		{
			Name: "Error. Order not found #4",
			SetupMocks: func(m *servicemocks.MockOrderGetter) {
				m.EXPECT().GetOrder(gomock.Any(), "BC-1001").Return(nil, client.ErrOrderNotFound)
			},
			ExpectedError: client.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			getter := servicemocks.NewMockOrderGetter(ctrl)
			tc.SetupMocks(getter)
			checker := &OrderStatusChecker{Client: getter, Limiter: client.NewRateLimiter(0, 1)}

			status, err := checker.GetOrderStatus(context.Background(), "BC-1001")
			checkError(t, err, tc.ExpectedError)
			if tc.ExpectedError != nil {
				return
			}
			if status.Status != tc.ExpectedStatus || !status.Total.Equal(decimal.RequireFromString(tc.ExpectedTotal)) {
				t.Errorf("Unexpected status: %+v", status)
			}
			if checker.Limiter.Blocked() != tc.ExpectBlocked {
				t.Errorf("Expected blocked=%v", tc.ExpectBlocked)
			}
		})
	}
}

func TestOrderStatusChecker_SkipsCallsWhileBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	getter := servicemocks.NewMockOrderGetter(ctrl)
	limiter := client.NewRateLimiter(0, 1)
	limiter.BlockFor(time.Minute)

	checker := &OrderStatusChecker{Client: getter, Limiter: limiter}
	// GetOrder не ожидается
	status, err := checker.GetOrderStatus(context.Background(), "BC-1001")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	if status.Status != models.OrderStatusPending {
		t.Errorf("Expected '%s', got '%s'", models.OrderStatusPending, status.Status)
	}
}
