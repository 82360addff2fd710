package services

//go:generate mockgen -source=pricematch.go -destination=mocks/pricematch_mock.go -package=mocks

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/events"
	"github.com/denmor86/blinds-loyalty/internal/logger"
	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/denmor86/blinds-loyalty/internal/storage"
	"github.com/denmor86/blinds-loyalty/internal/validators"
	"github.com/shopspring/decimal"
)

// ValidationError - некорректные данные запроса, отклоняются до обращения к хранилищу
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

var ErrInvalidReviewStatus = errors.New("status must be approved or rejected")

var (
	// цена со скидкой 5% от цены конкурента
	matchRatio = decimal.RequireFromString("0.95")
	// цены хранятся как NUMERIC(12,2)
	maxPrice = decimal.New(1, 10)
)

type PriceMatchService interface {
	Submit(ctx context.Context, userID string, req models.PriceMatchRequest) (int64, error)
	List(ctx context.Context, status string) ([]models.PriceMatchData, error)
	Review(ctx context.Context, id int64, review models.PriceMatchReview) error
}

type PriceMatch struct {
	Storage storage.PriceMatchStorage
	Events  events.Publisher
	Now     func() time.Time
}

// Создание сервиса
func NewPriceMatch(storage storage.PriceMatchStorage, publisher events.Publisher) *PriceMatch {
	return &PriceMatch{Storage: storage, Events: publisher, Now: time.Now}
}

// ValidatePriceMatch - проверка заявки. Цены сравниваются после округления до копеек;
// цена конкурента должна быть ниже текущей, если та передана.
func ValidatePriceMatch(req models.PriceMatchRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return invalid("name is required")
	}
	if !validators.CheckEmail(req.Email) {
		return invalid("invalid email address")
	}
	if !validators.CheckPhone(req.Phone) {
		return invalid("invalid phone number")
	}
	if strings.TrimSpace(req.CompetitorName) == "" {
		return invalid("competitor name is required")
	}
	if !validators.CheckURL(req.CompetitorURL) {
		return invalid("invalid competitor URL")
	}
	competitorPrice := roundPrice(req.CompetitorPrice)
	if !competitorPrice.IsPositive() {
		return invalid("competitor price must be positive")
	}
	if competitorPrice.GreaterThanOrEqual(maxPrice) {
		return invalid("competitor price is too large")
	}
	if req.CurrentPrice != nil {
		currentPrice := roundPrice(*req.CurrentPrice)
		if !currentPrice.IsPositive() || currentPrice.GreaterThanOrEqual(maxPrice) {
			return invalid("invalid current price")
		}
		if competitorPrice.GreaterThanOrEqual(currentPrice) {
			return invalid("competitor price must be lower than our current price")
		}
	}
	return nil
}

// roundPrice - цена до копеек, в таком виде она сравнивается и сохраняется
func roundPrice(price float64) decimal.Decimal {
	return decimal.NewFromFloat(price).Round(2)
}

// MatchPrice - предлагаемая цена: цена конкурента минус 5%, до копеек
func MatchPrice(competitorPrice decimal.Decimal) decimal.Decimal {
	return competitorPrice.Mul(matchRatio).Round(2)
}

// Submit - сохранение заявки в статусе pending
func (s *PriceMatch) Submit(ctx context.Context, userID string, req models.PriceMatchRequest) (int64, error) {
	if err := ValidatePriceMatch(req); err != nil {
		logger.Warnw("Price match rejected", "error", err)
		return 0, err
	}

	competitorPrice := roundPrice(req.CompetitorPrice)
	data := models.PriceMatchData{
		UserID:          userID,
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           strings.TrimSpace(req.Phone),
		CompetitorName:  strings.TrimSpace(req.CompetitorName),
		CompetitorURL:   strings.TrimSpace(req.CompetitorURL),
		CompetitorPrice: competitorPrice,
		ProductID:       req.ProductID,
		MatchPrice:      MatchPrice(competitorPrice),
		Status:          models.PriceMatchPending,
		CreatedAt:       s.Now(),
	}
	if req.CurrentPrice != nil {
		current := roundPrice(*req.CurrentPrice)
		data.CurrentPrice = &current
	}

	id, err := s.Storage.AddPriceMatch(ctx, data)
	if err != nil {
		logger.Errorw("Failed to save price match request", "error", err)
		return 0, err
	}

	logger.Infow("Price match request submitted", "id", id, "competitor", data.CompetitorName)
	events.Emit(ctx, s.Events, events.PriceMatchCreated, map[string]any{
		"requestId":       id,
		"competitorName":  data.CompetitorName,
		"competitorPrice": competitorPrice.StringFixed(2),
		"matchPrice":      data.MatchPrice.StringFixed(2),
	})
	return id, nil
}

func (s *PriceMatch) List(ctx context.Context, status string) ([]models.PriceMatchData, error) {
	switch status {
	case "", models.PriceMatchPending, models.PriceMatchApproved, models.PriceMatchRejected:
	default:
		return nil, invalid("unknown status filter")
	}
	return s.Storage.GetPriceMatches(ctx, status)
}

// Review - решение администратора по заявке в статусе pending
func (s *PriceMatch) Review(ctx context.Context, id int64, review models.PriceMatchReview) error {
	if review.Status != models.PriceMatchApproved && review.Status != models.PriceMatchRejected {
		return ErrInvalidReviewStatus
	}
	if err := s.Storage.ReviewPriceMatch(ctx, id, review.Status, strings.TrimSpace(review.AdminNotes), s.Now()); err != nil {
		return err
	}

	logger.Infow("Price match request reviewed", "id", id, "status", review.Status)
	events.Emit(ctx, s.Events, events.PriceMatchReviewed, map[string]any{
		"requestId": id,
		"status":    review.Status,
	})
	return nil
}
