package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

const (
	InsertPriceMatch = `INSERT INTO price_match_requests (user_id, customer_name, email, phone, competitor_name, competitor_url,
							competitor_price, product_id, current_price, match_price, status, created_at)
						VALUES (NULLIF($1, '')::uuid, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
						RETURNING id;`

	GetPriceMatches = `SELECT id, COALESCE(user_id::text, ''), customer_name, email, phone, competitor_name, competitor_url,
						competitor_price, product_id, current_price, match_price, status, admin_notes, created_at, reviewed_at
					   FROM price_match_requests
					   WHERE ($1 = '' OR status = $1)
					   ORDER BY created_at DESC;`

	ReviewPriceMatch = `UPDATE price_match_requests
						SET status = $2, admin_notes = $3, reviewed_at = $4
						WHERE id = $1 AND status = 'pending';`

	PriceMatchExists = `SELECT EXISTS(SELECT 1 FROM price_match_requests WHERE id = $1);`
)

type PriceMatchDatabase struct {
	DB *Database
}

// Создание хранилища заявок price match
func NewPriceMatchStorage(db *Database) PriceMatchStorage {
	return &PriceMatchDatabase{DB: db}
}

func (s *PriceMatchDatabase) AddPriceMatch(ctx context.Context, r models.PriceMatchData) (int64, error) {
	var currentPrice decimal.NullDecimal
	if r.CurrentPrice != nil {
		currentPrice = decimal.NewNullDecimal(*r.CurrentPrice)
	}
	var id int64
	err := s.DB.Pool.QueryRow(ctx, InsertPriceMatch,
		r.UserID, r.Name, r.Email, r.Phone, r.CompetitorName, r.CompetitorURL,
		r.CompetitorPrice, r.ProductID, currentPrice, r.MatchPrice, r.Status, r.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add price match request: %w", err)
	}
	return id, nil
}

func (s *PriceMatchDatabase) GetPriceMatches(ctx context.Context, status string) ([]models.PriceMatchData, error) {
	rows, err := s.DB.Pool.Query(ctx, GetPriceMatches, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get price match requests: %w", err)
	}
	defer rows.Close()

	var requests []models.PriceMatchData
	for rows.Next() {
		var (
			r            models.PriceMatchData
			currentPrice decimal.NullDecimal
		)
		err := rows.Scan(&r.ID, &r.UserID, &r.Name, &r.Email, &r.Phone, &r.CompetitorName, &r.CompetitorURL,
			&r.CompetitorPrice, &r.ProductID, &currentPrice, &r.MatchPrice, &r.Status, &r.AdminNotes, &r.CreatedAt, &r.ReviewedAt)
		if err != nil {
			return nil, fmt.Errorf("failed scan price match request: %w", err)
		}
		if currentPrice.Valid {
			price := currentPrice.Decimal
			r.CurrentPrice = &price
		}
		requests = append(requests, r)
	}
	return requests, rows.Err()
}

// ReviewPriceMatch - решение по заявке, допускается только для заявок в ожидании
func (s *PriceMatchDatabase) ReviewPriceMatch(ctx context.Context, id int64, status string, notes string, reviewedAt time.Time) error {
	tag, err := s.DB.Pool.Exec(ctx, ReviewPriceMatch, id, status, notes, reviewedAt)
	if err != nil {
		return fmt.Errorf("failed to review price match request: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	var exists bool
	if err := s.DB.Pool.QueryRow(ctx, PriceMatchExists, id).Scan(&exists); err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check price match request: %w", err)
	}
	if !exists {
		return ErrPriceMatchNotFound
	}
	return ErrAlreadyReviewed
}
