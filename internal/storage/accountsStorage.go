package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	GetTiers = `SELECT id, tier_name, tier_level, minimum_spending, points_multiplier, discount_percentage,
					free_shipping_threshold, tier_color, tier_description
				FROM loyalty_tiers ORDER BY tier_level;`

	GetAccount = `SELECT id, user_id, current_tier_id, total_points_earned, available_points, points_redeemed,
					points_expired, lifetime_spending, current_year_spending, last_purchase_date, account_status, enrollment_date
				  FROM user_loyalty_accounts WHERE user_id = $1;`

	InsertAccount = `INSERT INTO user_loyalty_accounts (user_id, current_tier_id, total_points_earned, available_points, last_activity_date)
					 VALUES ($1, $2, $3, $3, NOW())
					 ON CONFLICT (user_id) DO NOTHING
					 RETURNING id;`

	InsertTransaction = `INSERT INTO loyalty_points_transactions
							(user_id, transaction_type, points_amount, description, reference_type, reference_id, earned_date, expiry_date)
						 VALUES ($1, $2, $3, $4, $5, $6, $7, $8);`

	GetTransactions = `SELECT id, user_id, transaction_type, points_amount, description, reference_type, reference_id, earned_date, expiry_date
					   FROM loyalty_points_transactions
					   WHERE user_id = $1
					   ORDER BY earned_date DESC, id DESC
					   LIMIT $2;`

	// $2 - момент, до которого наступил срок баллов; погашения и прежние списания
	// расходуют баллы с ранним сроком первыми
	ExpiryPosition = `SELECT a.available_points, a.points_redeemed, a.points_expired,
						  COALESCE((
						      SELECT SUM(t.points_amount) FROM loyalty_points_transactions t
						      WHERE t.user_id = a.user_id
						        AND t.transaction_type IN ('earned', 'bonus')
						        AND t.expiry_date IS NOT NULL
						        AND t.expiry_date <= $2
						  ), 0)::BIGINT
					  FROM user_loyalty_accounts a
					  WHERE a.user_id = $1`

	GetExpiringPoints = ExpiryPosition + `;`

	LockExpiryPosition = ExpiryPosition + ` FOR UPDATE OF a;`

	MarkExpiredTransactions = `UPDATE loyalty_points_transactions
							   SET expired = TRUE
							   WHERE transaction_type IN ('earned', 'bonus')
							     AND expired = FALSE
							     AND expiry_date IS NOT NULL
							     AND expiry_date <= $1
							   RETURNING user_id;`

	ExpireAccountPoints = `UPDATE user_loyalty_accounts
						   SET available_points = available_points - $1,
						       points_expired = points_expired + $1
						   WHERE user_id = $2;`
)

// лимит выборки журнала без ограничения
const allTransactions = 1 << 30

type TierDatabase struct {
	DB *Database
}

// Создание хранилища уровней
func NewTiersStorage(db *Database) TiersStorage {
	return &TierDatabase{DB: db}
}

func (s *TierDatabase) GetTiers(ctx context.Context) ([]models.LoyaltyTier, error) {
	rows, err := s.DB.Pool.Query(ctx, GetTiers)
	if err != nil {
		return nil, fmt.Errorf("failed to get tiers: %w", err)
	}
	defer rows.Close()

	var tiers []models.LoyaltyTier
	for rows.Next() {
		var t models.LoyaltyTier
		err := rows.Scan(&t.ID, &t.Name, &t.Level, &t.MinimumSpending, &t.PointsMultiplier,
			&t.DiscountPercentage, &t.FreeShippingThreshold, &t.Color, &t.Description)
		if err != nil {
			return nil, fmt.Errorf("failed scan tier: %w", err)
		}
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

type AccountDatabase struct {
	DB *Database
}

// Создание хранилища аккаунтов
func NewAccountsStorage(db *Database) AccountsStorage {
	return &AccountDatabase{DB: db}
}

func (s *AccountDatabase) GetAccount(ctx context.Context, userID string) (*models.LoyaltyAccount, error) {
	var a models.LoyaltyAccount
	err := s.DB.Pool.QueryRow(ctx, GetAccount, userID).Scan(
		&a.ID, &a.UserID, &a.CurrentTierID, &a.TotalPointsEarned, &a.AvailablePoints, &a.PointsRedeemed,
		&a.PointsExpired, &a.LifetimeSpending, &a.CurrentYearSpending, &a.LastPurchaseAt, &a.Status, &a.EnrolledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &a, nil
}

// CreateAccount - создание аккаунта вместе с приветственным начислением в одной транзакции
func (s *AccountDatabase) CreateAccount(ctx context.Context, account models.LoyaltyAccount, bonus models.PointsTransaction) error {
	return s.DB.WithTx(ctx, "CreateAccount", func(tx pgx.Tx) error {
		var id int64
		err := tx.QueryRow(ctx, InsertAccount, account.UserID, account.CurrentTierID, bonus.Points).Scan(&id)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) || isPgError(err, uniqueViolation) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("insert account: %w", err)
		}
		if bonus.Points == 0 {
			return nil
		}
		return insertTransaction(ctx, tx, bonus)
	})
}

func (s *AccountDatabase) GetTransactions(ctx context.Context, userID string, limit int) ([]models.PointsTransaction, error) {
	if limit <= 0 {
		limit = allTransactions
	}
	rows, err := s.DB.Pool.Query(ctx, GetTransactions, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	defer rows.Close()

	var transactions []models.PointsTransaction
	for rows.Next() {
		var t models.PointsTransaction
		err := rows.Scan(&t.ID, &t.UserID, &t.Type, &t.Points, &t.Description, &t.ReferenceType, &t.ReferenceID, &t.CreatedAt, &t.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("failed scan transaction: %w", err)
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetExpiringPoints - баллы, которые сгорят к моменту until, если не будут потрачены раньше
func (s *AccountDatabase) GetExpiringPoints(ctx context.Context, userID string, until time.Time) (int64, error) {
	var available, redeemed, expired, due int64
	err := s.DB.Pool.QueryRow(ctx, GetExpiringPoints, userID, until).Scan(&available, &redeemed, &expired, &due)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrAccountNotFound
		}
		return 0, fmt.Errorf("failed to get expiring points: %w", err)
	}
	return ExpirablePoints(due, redeemed, expired, available), nil
}

// ExpirablePoints - остаток баллов с наступившим сроком при расходе в порядке сроков действия:
// due - сумма начислений с наступившим сроком, погашенные и уже сгоревшие баллы
// покрывают их первыми. Результат не превышает доступный остаток.
func ExpirablePoints(due, redeemed, expired, available int64) int64 {
	return max(0, min(due-redeemed-expired, available))
}

// ExpirePoints - списание сгоревших баллов по аккаунтам, у которых наступил срок начислений.
// Уже погашенные баллы повторно не списываются, баланс не уходит в минус.
func (s *AccountDatabase) ExpirePoints(ctx context.Context, now time.Time) ([]models.PointsExpiry, error) {
	var expired []models.PointsExpiry
	err := s.DB.WithTx(ctx, "ExpirePoints", func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, MarkExpiredTransactions, now)
		if err != nil {
			return fmt.Errorf("mark expired transactions: %w", err)
		}
		seen := make(map[string]struct{})
		var order []string
		for rows.Next() {
			var userID string
			if err := rows.Scan(&userID); err != nil {
				rows.Close()
				return fmt.Errorf("failed scan expired transaction: %w", err)
			}
			if _, ok := seen[userID]; !ok {
				seen[userID] = struct{}{}
				order = append(order, userID)
			}
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}

		for _, userID := range order {
			var available, redeemed, expiredPoints, duePoints int64
			err := tx.QueryRow(ctx, LockExpiryPosition, userID, now).Scan(&available, &redeemed, &expiredPoints, &duePoints)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					continue
				}
				return fmt.Errorf("lock account: %w", err)
			}
			points := ExpirablePoints(duePoints, redeemed, expiredPoints, available)
			if points <= 0 {
				continue
			}
			if _, err := tx.Exec(ctx, ExpireAccountPoints, points, userID); err != nil {
				return fmt.Errorf("expire account points: %w", err)
			}
			err = insertTransaction(ctx, tx, models.PointsTransaction{
				UserID:        userID,
				Type:          models.TransactionExpired,
				Points:        -points,
				Description:   "Points expired",
				ReferenceType: "expiry",
				CreatedAt:     now,
			})
			if err != nil {
				return err
			}
			expired = append(expired, models.PointsExpiry{UserID: userID, Points: points})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expired, nil
}

func insertTransaction(ctx context.Context, q Querier, t models.PointsTransaction) error {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := q.Exec(ctx, InsertTransaction, t.UserID, t.Type, t.Points, t.Description, t.ReferenceType, t.ReferenceID, createdAt, t.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert points transaction: %w", err)
	}
	return nil
}
