package storage

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/denmor86/blinds-loyalty/internal/models"
	"github.com/jackc/pgx/v5"
)

const (
	rewardColumns = `lr.id, lr.reward_name, lr.reward_type, lr.points_cost, lr.discount_value, lr.discount_percentage,
					 lr.free_product_id, lr.min_tier_level, lr.max_uses_per_user, lr.total_available, lr.total_redeemed,
					 lr.valid_from, lr.valid_until, lr.minimum_order_value, lr.reward_description, lr.is_active,
					 lr.is_featured, lr.display_order`

	GetReward = `SELECT ` + rewardColumns + ` FROM loyalty_rewards lr WHERE lr.id = $1;`

	// $1 - пользователь, $2 - уровень, $3 - момент проверки; остальные условия добавляются фильтром
	ListRewards = `SELECT ` + rewardColumns + `, COALESCE(ur.redemption_count, 0)
				   FROM loyalty_rewards lr
				   LEFT JOIN (
				       SELECT reward_id, COUNT(*) AS redemption_count
				       FROM loyalty_reward_redemptions
				       WHERE user_id = $1 AND redemption_status NOT IN ('cancelled', 'expired')
				       GROUP BY reward_id
				   ) ur ON lr.id = ur.reward_id
				   WHERE lr.is_active = TRUE
				     AND lr.min_tier_level <= $2
				     AND (lr.valid_from IS NULL OR lr.valid_from <= $3)
				     AND (lr.valid_until IS NULL OR lr.valid_until >= $3)
				     AND (lr.total_available = 0 OR lr.total_available > lr.total_redeemed)`

	ListRewardsOrder = ` ORDER BY lr.is_featured DESC, lr.display_order ASC, lr.points_cost ASC;`

	CountUserRedemptions = `SELECT COUNT(*) FROM loyalty_reward_redemptions
							WHERE user_id = $1 AND reward_id = $2 AND redemption_status NOT IN ('cancelled', 'expired');`

	// списание только при достаточном остатке
	DebitAccountPoints = `UPDATE user_loyalty_accounts
						  SET available_points = available_points - $1,
						      points_redeemed = points_redeemed + $1,
						      last_activity_date = NOW()
						  WHERE user_id = $2 AND available_points >= $1;`

	ReserveReward = `UPDATE loyalty_rewards
					 SET total_redeemed = total_redeemed + 1
					 WHERE id = $1 AND is_active = TRUE
					   AND (total_available = 0 OR total_redeemed < total_available);`

	InsertRedemption = `INSERT INTO loyalty_reward_redemptions
							(user_id, reward_id, points_used, reward_value, coupon_code, redemption_status, expires_at, created_at)
						VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8)
						RETURNING id;`

	GetRedemptions = `SELECT r.id, r.user_id, r.reward_id, lr.reward_name, r.points_used, r.reward_value,
						COALESCE(r.coupon_code, ''), r.redemption_status, r.expires_at, r.created_at
					  FROM loyalty_reward_redemptions r
					  JOIN loyalty_rewards lr ON lr.id = r.reward_id
					  WHERE r.user_id = $1
					  ORDER BY r.created_at DESC;`

	InsertReward = `INSERT INTO loyalty_rewards (reward_name, reward_type, points_cost, discount_value, discount_percentage,
						free_product_id, min_tier_level, max_uses_per_user, total_available, valid_from, valid_until,
						minimum_order_value, reward_description, is_active, is_featured, display_order)
					VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, TRUE, $14, $15)
					RETURNING id;`

	RetireReward = `UPDATE loyalty_rewards SET is_active = FALSE WHERE id = $1;`
)

type RewardDatabase struct {
	DB *Database
}

// Создание хранилища наград
func NewRewardsStorage(db *Database) RewardsStorage {
	return &RewardDatabase{DB: db}
}

func scanReward(row pgx.Row, extra ...any) (models.LoyaltyReward, error) {
	var r models.LoyaltyReward
	dest := []any{
		&r.ID, &r.Name, &r.Type, &r.PointsCost, &r.DiscountValue, &r.DiscountPercentage,
		&r.FreeProductID, &r.MinTierLevel, &r.MaxUsesPerUser, &r.TotalAvailable, &r.TotalRedeemed,
		&r.ValidFrom, &r.ValidUntil, &r.MinimumOrderValue, &r.Description, &r.IsActive,
		&r.IsFeatured, &r.DisplayOrder,
	}
	err := row.Scan(append(dest, extra...)...)
	return r, err
}

func (s *RewardDatabase) GetReward(ctx context.Context, rewardID int64) (*models.LoyaltyReward, error) {
	reward, err := scanReward(s.DB.Pool.QueryRow(ctx, GetReward, rewardID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrRewardNotFound
		}
		return nil, fmt.Errorf("failed to get reward: %w", err)
	}
	return &reward, nil
}

// ListRewards - каталог наград, доступных уровню пользователя
func (s *RewardDatabase) ListRewards(ctx context.Context, userID string, filter models.RewardFilter) ([]models.UserReward, error) {
	var query strings.Builder
	query.WriteString(ListRewards)
	args := []any{userID, filter.MaxTierLevel, filter.Now}
	if filter.Type != "" {
		args = append(args, filter.Type)
		query.WriteString(" AND lr.reward_type = $" + strconv.Itoa(len(args)))
	}
	if filter.FeaturedOnly {
		query.WriteString(" AND lr.is_featured = TRUE")
	}
	query.WriteString(ListRewardsOrder)

	rows, err := s.DB.Pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	defer rows.Close()

	var rewards []models.UserReward
	for rows.Next() {
		var used int
		reward, err := scanReward(rows, &used)
		if err != nil {
			return nil, fmt.Errorf("failed scan reward: %w", err)
		}
		rewards = append(rewards, models.UserReward{Reward: reward, UserRedemptions: used})
	}
	return rewards, rows.Err()
}

func (s *RewardDatabase) CountUserRedemptions(ctx context.Context, userID string, rewardID int64) (int, error) {
	var count int
	if err := s.DB.Pool.QueryRow(ctx, CountUserRedemptions, userID, rewardID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count redemptions: %w", err)
	}
	return count, nil
}

// RedeemReward - погашение награды в одной транзакции:
// условное списание баллов, повторная проверка лимита под блокировкой строки аккаунта,
// резерв остатка награды, запись погашения и операции в журнале.
func (s *RewardDatabase) RedeemReward(ctx context.Context, redemption models.RewardRedemption, maxUsesPerUser int) (*models.RewardRedemption, error) {
	err := s.DB.WithTx(ctx, "RedeemReward", func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, DebitAccountPoints, redemption.PointsUsed, redemption.UserID)
		if err != nil {
			if isPgError(err, checkViolation) {
				return ErrInsufficientPoints
			}
			return fmt.Errorf("debit points: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrInsufficientPoints
		}

		if maxUsesPerUser > 0 {
			var used int
			if err := tx.QueryRow(ctx, CountUserRedemptions, redemption.UserID, redemption.RewardID).Scan(&used); err != nil {
				return fmt.Errorf("count redemptions: %w", err)
			}
			if used >= maxUsesPerUser {
				return ErrUsageLimitReached
			}
		}

		tag, err = tx.Exec(ctx, ReserveReward, redemption.RewardID)
		if err != nil {
			return fmt.Errorf("reserve reward: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrRewardUnavailable
		}

		err = tx.QueryRow(ctx, InsertRedemption,
			redemption.UserID,
			redemption.RewardID,
			redemption.PointsUsed,
			redemption.RewardValue,
			redemption.CouponCode,
			redemption.Status,
			redemption.ExpiresAt,
			redemption.CreatedAt,
		).Scan(&redemption.ID)
		if err != nil {
			if isPgError(err, uniqueViolation) {
				return ErrAlreadyExists
			}
			return fmt.Errorf("insert redemption: %w", err)
		}

		return insertTransaction(ctx, tx, models.PointsTransaction{
			UserID:        redemption.UserID,
			Type:          models.TransactionRedeemed,
			Points:        -redemption.PointsUsed,
			Description:   "Redeemed: " + redemption.RewardName,
			ReferenceType: "reward_redemption",
			ReferenceID:   strconv.FormatInt(redemption.ID, 10),
			CreatedAt:     redemption.CreatedAt,
		})
	})
	if err != nil {
		return nil, err
	}
	return &redemption, nil
}

func (s *RewardDatabase) GetRedemptions(ctx context.Context, userID string) ([]models.RewardRedemption, error) {
	rows, err := s.DB.Pool.Query(ctx, GetRedemptions, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []models.RewardRedemption
	for rows.Next() {
		var r models.RewardRedemption
		err := rows.Scan(&r.ID, &r.UserID, &r.RewardID, &r.RewardName, &r.PointsUsed, &r.RewardValue,
			&r.CouponCode, &r.Status, &r.ExpiresAt, &r.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed scan redemption: %w", err)
		}
		redemptions = append(redemptions, r)
	}
	return redemptions, rows.Err()
}

func (s *RewardDatabase) AddReward(ctx context.Context, r models.LoyaltyReward) (int64, error) {
	var id int64
	err := s.DB.Pool.QueryRow(ctx, InsertReward,
		r.Name, r.Type, r.PointsCost, r.DiscountValue, r.DiscountPercentage,
		r.FreeProductID, r.MinTierLevel, r.MaxUsesPerUser, r.TotalAvailable, r.ValidFrom, r.ValidUntil,
		r.MinimumOrderValue, r.Description, r.IsFeatured, r.DisplayOrder,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to add reward: %w", err)
	}
	return id, nil
}

func (s *RewardDatabase) RetireReward(ctx context.Context, rewardID int64) error {
	tag, err := s.DB.Pool.Exec(ctx, RetireReward, rewardID)
	if err != nil {
		return fmt.Errorf("failed to retire reward: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRewardNotFound
	}
	return nil
}
