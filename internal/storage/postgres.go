package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"lightning-sats-bot/internal/ledger"
	"lightning-sats-bot/internal/models"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// Postgres implements ledger.Store on top of GORM. Every mutating method is
// one transaction; per-user counters are updated with single guarded
// statements so concurrent transactions cannot produce lost updates.
type Postgres struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Postgres {
	return &Postgres{db: db}
}

func (p *Postgres) UserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := p.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user %d: %w", id, err)
	}
	return &user, nil
}

func (p *Postgres) UserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	if err := p.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user by telegram id %d: %w", telegramID, err)
	}
	return &user, nil
}

func (p *Postgres) UserByReferralCode(ctx context.Context, code string) (*models.User, error) {
	var user models.User
	if err := p.db.WithContext(ctx).Where("referral_code = ?", code).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ledger.ErrUserNotFound
		}
		return nil, fmt.Errorf("fetching user by referral code: %w", err)
	}
	return &user, nil
}

func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if user.ReferrerID != nil {
			edge := models.Referral{
				ReferrerID: *user.ReferrerID,
				ReferredID: user.ID,
				CreatedAt:  user.CreatedAt,
			}
			if err := tx.Create(&edge).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			if strings.Contains(pgErr.ConstraintName, "referral_code") {
				return ledger.ErrCodeCollision
			}
			return ledger.ErrDuplicateUser
		}
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

func (p *Postgres) UpdateLanguage(ctx context.Context, id uint, language string) error {
	return p.updateUserColumn(ctx, id, "language", language)
}

func (p *Postgres) UpdateSubscription(ctx context.Context, id uint, subscribed bool) error {
	return p.updateUserColumn(ctx, id, "is_subscribed", subscribed)
}

func (p *Postgres) updateUserColumn(ctx context.Context, id uint, column string, value interface{}) error {
	res := p.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return fmt.Errorf("updating %s for user %d: %w", column, id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ledger.ErrUserNotFound
	}
	return nil
}

func (p *Postgres) ApplyAdView(ctx context.Context, id uint, adType string, reward decimal.Decimal, now time.Time) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
			"watched_today": gorm.Expr("watched_today + 1"),
			"earned_today":  gorm.Expr("earned_today + ?", reward),
			"earned_total":  gorm.Expr("earned_total + ?", reward),
			"hold_balance":  gorm.Expr("hold_balance + ?", reward),
			"last_active":   now,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ledger.ErrUserNotFound
		}
		return tx.Create(&models.AdView{
			UserID:    id,
			AdType:    adType,
			Reward:    reward,
			CreatedAt: now,
		}).Error
	})
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("applying ad view for user %d: %w", id, err)
	}
	return nil
}

func (p *Postgres) ApplyStreakClaim(ctx context.Context, id uint, claim ledger.StreakClaim) error {
	// The date guard makes concurrent same-day claims settle to exactly one
	// winner without an application-level lock.
	res := p.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND (last_streak_claim IS NULL OR last_streak_claim < ?)", id, claim.Today).
		Updates(map[string]interface{}{
			"streak":            claim.Streak,
			"streak_multiplier": claim.Multiplier,
			"earned_today":      gorm.Expr("earned_today + ?", claim.Bonus),
			"earned_total":      gorm.Expr("earned_total + ?", claim.Bonus),
			"hold_balance":      gorm.Expr("hold_balance + ?", claim.Bonus),
			"last_streak_claim": claim.Today,
			"last_active":       claim.Now,
		})
	if res.Error != nil {
		return fmt.Errorf("applying streak claim for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := p.UserByID(ctx, id); err != nil {
			return err
		}
		return ledger.ErrAlreadyClaimedToday
	}
	return nil
}

func (p *Postgres) CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error {
	err := p.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.User{}).
			Where("id = ? AND balance >= ?", w.UserID, w.Amount).
			Update("balance", gorm.Expr("balance - ?", w.Amount))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			var user models.User
			if err := tx.First(&user, w.UserID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return ledger.ErrUserNotFound
				}
				return err
			}
			return ledger.ErrInsufficientBalance
		}
		return tx.Create(w).Error
	})
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) || errors.Is(err, ledger.ErrInsufficientBalance) {
			return err
		}
		return fmt.Errorf("creating withdrawal for user %d: %w", w.UserID, err)
	}
	return nil
}

func (p *Postgres) ReleaseHold(ctx context.Context, id uint, amount decimal.Decimal) error {
	res := p.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ? AND hold_balance >= ?", id, amount).
		Updates(map[string]interface{}{
			"hold_balance": gorm.Expr("hold_balance - ?", amount),
			"balance":      gorm.Expr("balance + ?", amount),
		})
	if res.Error != nil {
		return fmt.Errorf("releasing hold for user %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		if _, err := p.UserByID(ctx, id); err != nil {
			return err
		}
		return ledger.ErrInsufficientBalance
	}
	return nil
}

func (p *Postgres) CreateContestSubmission(ctx context.Context, s *models.ContestSubmission) error {
	if err := p.db.WithContext(ctx).Create(s).Error; err != nil {
		return fmt.Errorf("creating contest submission: %w", err)
	}
	return nil
}

// ResetDailyStats zeroes the daily counters for every user in one statement,
// so concurrent reward credits never see a half-applied reset.
func (p *Postgres) ResetDailyStats(ctx context.Context) error {
	err := p.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Model(&models.User{}).
		Updates(map[string]interface{}{
			"watched_today": 0,
			"earned_today":  decimal.Zero,
		}).Error
	if err != nil {
		return fmt.Errorf("resetting daily stats: %w", err)
	}
	return nil
}

func (p *Postgres) CountReferrals(ctx context.Context, referrerID uint) (int64, error) {
	var count int64
	err := p.db.WithContext(ctx).Model(&models.Referral{}).
		Where("referrer_id = ?", referrerID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting referrals: %w", err)
	}
	return count, nil
}

func (p *Postgres) ReferralCounts(ctx context.Context, referrerID uint, since time.Time) (ledger.ReferralCounts, error) {
	var counts ledger.ReferralCounts
	err := p.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(*) AS total,
			COUNT(*) FILTER (WHERE EXISTS (
				SELECT 1 FROM ad_views v WHERE v.user_id = r.referred_id
			)) AS active,
			COUNT(*) FILTER (WHERE r.created_at >= ?) AS "new",
			COUNT(*) FILTER (WHERE r.created_at >= ? AND EXISTS (
				SELECT 1 FROM ad_views v WHERE v.user_id = r.referred_id
			)) AS new_active
		FROM referrals r
		WHERE r.referrer_id = ?`, since, since, referrerID).
		Scan(&counts).Error
	if err != nil {
		return ledger.ReferralCounts{}, fmt.Errorf("aggregating referral counts: %w", err)
	}
	return counts, nil
}

func (p *Postgres) ReferralRewardSums(ctx context.Context, referrerID uint, viewsSince, referredSince time.Time) (decimal.Decimal, decimal.Decimal, error) {
	var sums struct {
		AllSum    decimal.Decimal
		RecentSum decimal.Decimal
	}
	err := p.db.WithContext(ctx).Raw(`
		SELECT
			COALESCE(SUM(v.reward), 0) AS all_sum,
			COALESCE(SUM(v.reward) FILTER (WHERE r.created_at >= ?), 0) AS recent_sum
		FROM referrals r
		JOIN ad_views v ON v.user_id = r.referred_id
		WHERE r.referrer_id = ? AND v.created_at >= ?`,
		referredSince, referrerID, viewsSince).
		Scan(&sums).Error
	if err != nil {
		return decimal.Zero, decimal.Zero, fmt.Errorf("aggregating referral rewards: %w", err)
	}
	return sums.AllSum, sums.RecentSum, nil
}
