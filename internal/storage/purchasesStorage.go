package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetPurchase = `SELECT order_number, user_id, amount, status, points, retry_count, created_at FROM loyalty_purchases WHERE order_number = $1;`

	InsertPurchase = `INSERT INTO loyalty_purchases (order_number, user_id, amount, status, created_at, updated_at)
					  VALUES ($1, $2, $3, $4, $5, $5)
					  ON CONFLICT (order_number) DO NOTHING
					  RETURNING order_number;`

	ClaimPurchasesForProcessing = `UPDATE loyalty_purchases
								   SET status = 'PROCESSING',
								       retry_count = retry_count + 1,
								       updated_at = NOW()
								   WHERE order_number IN (
								       SELECT order_number FROM loyalty_purchases
								       WHERE (status = 'NEW' AND (retry_count = 0 OR updated_at < NOW() - INTERVAL '5 minutes'))
								          OR (status = 'PROCESSING' AND updated_at < NOW() - INTERVAL '1 minute')
								       ORDER BY created_at
								       LIMIT $1
								       FOR UPDATE SKIP LOCKED
								   )
								   RETURNING order_number, user_id, amount, status, points, retry_count, created_at;`

	MarkPurchaseAccrued = `UPDATE loyalty_purchases
						   SET status = 'ACCRUED', points = $2, updated_at = NOW()
						   WHERE order_number = $1 AND status NOT IN ('ACCRUED', 'VOID');`

	// уровень пересчитывается по новой сумме покупок
	AccrueAccountPoints = `UPDATE user_loyalty_accounts
						   SET total_points_earned = total_points_earned + $1,
						       available_points = available_points + $1,
						       lifetime_spending = lifetime_spending + $2,
						       current_year_spending = CASE
						           WHEN last_purchase_date IS NOT NULL
						                AND date_part('year', last_purchase_date) = date_part('year', $3::timestamptz)
						           THEN current_year_spending + $2
						           ELSE $2
						       END,
						       last_purchase_date = $3,
						       last_activity_date = NOW(),
						       current_tier_id = COALESCE((
						           SELECT id FROM loyalty_tiers
						           WHERE minimum_spending <= lifetime_spending + $2
						           ORDER BY tier_level DESC
						           LIMIT 1
						       ), current_tier_id)
						   WHERE user_id = $4;`

	UpdatePurchaseStatus = `UPDATE loyalty_purchases SET status = $2, updated_at = NOW() WHERE order_number = $1;`
)

type PurchaseDatabase struct {
	DB *Database
}

// Создание хранилища покупок
func NewPurchasesStorage(db *Database) PurchasesStorage {
	return &PurchaseDatabase{DB: db}
}

func scanPurchase(row pgx.Row) (models.PurchaseData, error) {
	var p models.PurchaseData
	err := row.Scan(&p.OrderNumber, &p.UserID, &p.Amount, &p.Status, &p.Points, &p.RetryCount, &p.CreatedAt)
	return p, err
}

func (s *PurchaseDatabase) GetPurchase(ctx context.Context, orderNumber string) (*models.PurchaseData, error) {
	p, err := scanPurchase(s.DB.Pool.QueryRow(ctx, GetPurchase, orderNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPurchaseNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &p, nil
}

func (s *PurchaseDatabase) AddPurchase(ctx context.Context, p models.PurchaseData) error {
	var number string
	err := s.DB.Pool.QueryRow(ctx, InsertPurchase, p.OrderNumber, p.UserID, p.Amount, p.Status, p.CreatedAt).Scan(&number)
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) || isPgError(err, uniqueViolation) {
		return ErrAlreadyExists
	}
	return fmt.Errorf("failed to add purchase: %w", err)
}

// ClaimPurchasesForProcessing - захват пачки покупок для подтверждения, зависшие в обработке берутся повторно
func (s *PurchaseDatabase) ClaimPurchasesForProcessing(ctx context.Context, count int) ([]models.PurchaseData, error) {
	rows, err := s.DB.Pool.Query(ctx, ClaimPurchasesForProcessing, count)
	if err != nil {
		return nil, fmt.Errorf("failed to claim purchases: %w", err)
	}
	defer rows.Close()

	var purchases []models.PurchaseData
	for rows.Next() {
		p, err := scanPurchase(rows)
		if err != nil {
			return nil, fmt.Errorf("failed scan purchase: %w", err)
		}
		purchases = append(purchases, p)
	}
	return purchases, rows.Err()
}

// AccruePurchase - начисление баллов и суммы покупки в одной транзакции; повторный вызов ничего не меняет
func (s *PurchaseDatabase) AccruePurchase(ctx context.Context, a models.PurchaseAccrual) error {
	return s.DB.WithTx(ctx, "AccruePurchase", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, MarkPurchaseAccrued, a.OrderNumber, a.Points)
		if err != nil {
			return fmt.Errorf("mark purchase accrued: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return nil
		}

		tag, err = tx.Exec(ctx, AccrueAccountPoints, a.Points, a.Amount, a.AccruedAt, a.UserID)
		if err != nil {
			return fmt.Errorf("accrue account points: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrAccountNotFound
		}
		if a.Points == 0 {
			return nil
		}
		expiresAt := a.ExpiresAt
		return insertTransaction(ctx, tx, models.PointsTransaction{
			UserID:        a.UserID,
			Type:          models.TransactionEarned,
			Points:        a.Points,
			Description:   "Purchase " + a.OrderNumber,
			ReferenceType: "order",
			ReferenceID:   a.OrderNumber,
			CreatedAt:     a.AccruedAt,
			ExpiresAt:     &expiresAt,
		})
	})
}

func (s *PurchaseDatabase) UpdatePurchaseStatus(ctx context.Context, orderNumber string, status string) error {
	tag, err := s.DB.Pool.Exec(ctx, UpdatePurchaseStatus, orderNumber, status)
	if err != nil {
		return fmt.Errorf("failed to update purchase status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrPurchaseNotFound
	}
	return nil
}
