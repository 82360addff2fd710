package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/services/mocks"
	"github.com/sony/gobreaker"
	"go.uber.org/mock/gomock"
)

func TestPurchaseWorker_ProcessPurchases(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPurchases := mocks.NewMockPurchaseService(ctrl)
	w := NewPurchaseWorker(mockPurchases, 10, time.Second)

	batch := []models.PurchaseData{{OrderNumber: "BC-1001"}, {OrderNumber: "BC-1002"}, {OrderNumber: "BC-1003"}}
	mockPurchases.EXPECT().ClaimPurchases(gomock.Any(), 10).Return(batch, nil)
	mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), batch[0]).Return(nil)
	mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), batch[1]).Return(errors.New("order service unavailable"))
	mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), batch[2]).Return(nil)

	if got := w.ProcessPurchases(context.Background()); got != 2 {
		t.Errorf("Expected 2 processed purchases, got %d", got)
	}
}

func TestPurchaseWorker_OpenBreakerSkipsBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPurchases := mocks.NewMockPurchaseService(ctrl)
	w := NewPurchaseWorker(mockPurchases, 5, time.Second)

	batch := make([]models.PurchaseData, 5)
	mockPurchases.EXPECT().ClaimPurchases(gomock.Any(), 5).Return(batch, nil).Times(1)
	mockPurchases.EXPECT().ProcessPurchase(gomock.Any(), gomock.Any()).Return(errors.New("timeout")).Times(5)

	if got := w.ProcessPurchases(context.Background()); got != 0 {
		t.Errorf("Expected 0 processed purchases, got %d", got)
	}
	if w.Breaker.State() != gobreaker.StateOpen {
		t.Fatalf("Expected open breaker, got %s", w.Breaker.State())
	}
	// ClaimPurchases больше не вызывается
	if got := w.ProcessPurchases(context.Background()); got != 0 {
		t.Errorf("Expected 0 processed purchases, got %d", got)
	}
}

func TestExpiryScheduler_ExpirePoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockPurchases := mocks.NewMockPurchaseService(ctrl)

	if _, err := NewExpiryScheduler(context.Background(), mockPurchases, "not a schedule"); err == nil {
		t.Errorf("Expected schedule parse error")
	}

	s, err := NewExpiryScheduler(context.Background(), mockPurchases, "@daily")
	if err != nil {
		t.Fatalf("Expected no error, got '%v'", err)
	}
	mockPurchases.EXPECT().ExpirePoints(gomock.Any()).DoAndReturn(func(ctx context.Context) (int64, error) {
		if _, ok := ctx.Deadline(); !ok {
			t.Errorf("Expected job deadline")
		}
		return 140, nil
	})
	s.ExpirePoints()
}
