package ledger

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"lightning-sats-bot/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StreakClaim carries the precomputed result of a claim transition; the store
// applies it atomically, guarded against a concurrent same-day claim.
type StreakClaim struct {
	Streak     int
	Multiplier decimal.Decimal
	Bonus      decimal.Decimal
	Today      time.Time
	Now        time.Time
}

// ReferralCounts are the raw referral counters for one referrer. "Active"
// means the referred user has watched at least one ad.
type ReferralCounts struct {
	Total     int64
	Active    int64
	New       int64
	NewActive int64
}

// Store is the persistence contract of the engine. Every mutating method is a
// single transaction; read-modify-write races on one user are closed inside
// the store with guarded single-statement updates, not application locks.
type Store interface {
	UserByID(ctx context.Context, id uint) (*models.User, error)
	UserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error)
	UserByReferralCode(ctx context.Context, code string) (*models.User, error)
	// CreateUser inserts the user row and, when ReferrerID is set, the
	// referral edge in the same transaction.
	CreateUser(ctx context.Context, user *models.User) error
	UpdateLanguage(ctx context.Context, id uint, language string) error
	UpdateSubscription(ctx context.Context, id uint, subscribed bool) error
	ApplyAdView(ctx context.Context, id uint, adType string, reward decimal.Decimal, now time.Time) error
	ApplyStreakClaim(ctx context.Context, id uint, claim StreakClaim) error
	// CreateWithdrawal debits balance and inserts the request row in one
	// transaction; the debit is conditional on sufficient balance.
	CreateWithdrawal(ctx context.Context, w *models.Withdrawal) error
	ReleaseHold(ctx context.Context, id uint, amount decimal.Decimal) error
	CreateContestSubmission(ctx context.Context, s *models.ContestSubmission) error
	ResetDailyStats(ctx context.Context) error
	CountReferrals(ctx context.Context, referrerID uint) (int64, error)
	ReferralCounts(ctx context.Context, referrerID uint, since time.Time) (ReferralCounts, error)
	// ReferralRewardSums returns the summed ad-view rewards of referred
	// users for views after viewsSince: over all referrals, and restricted
	// to referrals created after referredSince.
	ReferralRewardSums(ctx context.Context, referrerID uint, viewsSince, referredSince time.Time) (all, recent decimal.Decimal, err error)
}

// Engine owns every financial state transition of a user: ad rewards, streak
// claims, referral profit and withdrawals. The presentation layer is a caller
// that renders its results.
type Engine struct {
	store  Store
	policy Policy
	now    func() time.Time
}

func NewEngine(store Store, policy Policy) *Engine {
	return &Engine{
		store:  store,
		policy: policy,
		now:    time.Now,
	}
}

func (e *Engine) Policy() Policy {
	return e.policy
}

// ReferralCode derives the deterministic referral code for a Telegram ID.
func ReferralCode(telegramID int64) string {
	return fmt.Sprintf("ref_%d", telegramID)
}

func (e *Engine) UserByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	return e.store.UserByTelegramID(ctx, telegramID)
}

// RegisterUser creates a user for the given Telegram identity. When a
// referral code resolves to an existing user, the new row is linked to the
// referrer and the referral edge is written in the same transaction. An
// unresolvable code still creates the user, unlinked. A second registration
// for the same Telegram ID fails with ErrDuplicateUser.
func (e *Engine) RegisterUser(ctx context.Context, telegramID int64, username, firstName, lastName, referralCode string) (*models.User, error) {
	now := e.now()
	user := &models.User{
		TelegramID:       telegramID,
		Username:         username,
		FirstName:        firstName,
		LastName:         lastName,
		Language:         "en",
		Balance:          decimal.Zero,
		HoldBalance:      decimal.Zero,
		EarnedToday:      decimal.Zero,
		EarnedTotal:      decimal.Zero,
		StreakMultiplier: multiplierFloor,
		ReferralCode:     ReferralCode(telegramID),
		CreatedAt:        now,
		LastActive:       now,
	}

	if referralCode != "" && referralCode != user.ReferralCode {
		referrer, err := e.store.UserByReferralCode(ctx, referralCode)
		switch {
		case err == nil:
			user.ReferrerID = &referrer.ID
		case errors.Is(err, ErrUserNotFound):
			// Code didn't resolve; the user still registers, unlinked.
		default:
			return nil, err
		}
	}

	if err := e.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (e *Engine) SetLanguage(ctx context.Context, userID uint, language string) error {
	return e.store.UpdateLanguage(ctx, userID, language)
}

func (e *Engine) SetSubscribed(ctx context.Context, userID uint, subscribed bool) error {
	return e.store.UpdateSubscription(ctx, userID, subscribed)
}

// RecordAdView credits one watched ad: watched_today+1 and the reward added
// to earned_today, earned_total and hold_balance, plus one append-only
// AdView record, all in one transaction. The reward is the policy constant,
// never user input.
func (e *Engine) RecordAdView(ctx context.Context, userID uint, adType string, reward decimal.Decimal) error {
	if reward.IsNegative() {
		return fmt.Errorf("negative reward %s", reward)
	}
	return e.store.ApplyAdView(ctx, userID, adType, reward, e.now())
}

// ClaimStreak performs the once-per-calendar-day claim and returns the bonus
// paid. The bonus mirrors RecordAdView's three-field credit and the claim
// date advances to today in the same transaction.
func (e *Engine) ClaimStreak(ctx context.Context, userID uint) (decimal.Decimal, error) {
	user, err := e.store.UserByID(ctx, userID)
	if err != nil {
		return decimal.Zero, err
	}

	now := e.now()
	today := dateOf(now)
	streak, err := nextStreak(user.LastStreakClaim, today, user.Streak)
	if err != nil {
		return decimal.Zero, err
	}

	multiplier := multiplierFor(streak, e.policy.StreakBonusRate)
	bonus := e.policy.StreakBonusBase.Mul(multiplier)

	claim := StreakClaim{
		Streak:     streak,
		Multiplier: multiplier,
		Bonus:      bonus,
		Today:      today,
		Now:        now,
	}
	if err := e.store.ApplyStreakClaim(ctx, userID, claim); err != nil {
		return decimal.Zero, err
	}
	return bonus, nil
}

// Stats is the account view: the user row plus derived tenure and the
// all-time referral count.
type Stats struct {
	User          *models.User
	DaysWithUs    int
	ReferralCount int64
}

func (e *Engine) UserStats(ctx context.Context, telegramID int64) (*Stats, error) {
	user, err := e.store.UserByTelegramID(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	referrals, err := e.store.CountReferrals(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &Stats{
		User:          user,
		DaysWithUs:    int(e.now().Sub(user.CreatedAt).Hours() / 24),
		ReferralCount: referrals,
	}, nil
}

// ReferralStats aggregates a referrer's counters and profit. Profit is the
// flat ReferralShare cut of referred users' ad rewards over the trailing 30
// days: Profit30 across all referrals, NewProfit30 restricted to referrals
// that themselves joined within the window.
type ReferralStats struct {
	TotalReferrals       int64
	ActiveReferrals      int64
	NewReferrals30       int64
	NewActiveReferrals30 int64
	Profit30             decimal.Decimal
	NewProfit30          decimal.Decimal
}

func (e *Engine) ReferralStats(ctx context.Context, userID uint) (*ReferralStats, error) {
	since := e.now().AddDate(0, 0, -30)

	counts, err := e.store.ReferralCounts(ctx, userID, since)
	if err != nil {
		return nil, err
	}

	allSum, recentSum, err := e.store.ReferralRewardSums(ctx, userID, since, since)
	if err != nil {
		return nil, err
	}

	return &ReferralStats{
		TotalReferrals:       counts.Total,
		ActiveReferrals:      counts.Active,
		NewReferrals30:       counts.New,
		NewActiveReferrals30: counts.NewActive,
		Profit30:             allSum.Mul(e.policy.ReferralShare),
		NewProfit30:          recentSum.Mul(e.policy.ReferralShare),
	}, nil
}

// CreateWithdrawal validates the method against the payment-method table and
// debits the withdrawable balance. The debit and the pending request row are
// one transaction; an insufficient balance leaves everything untouched.
// Address syntax is the caller's concern. HoldBalance is never touched here.
func (e *Engine) CreateWithdrawal(ctx context.Context, userID uint, method string, amount decimal.Decimal, address string) (*models.Withdrawal, error) {
	if _, ok := e.policy.Methods[method]; !ok {
		return nil, ErrInvalidMethod
	}
	if !amount.IsPositive() {
		return nil, ErrInsufficientBalance
	}

	w := &models.Withdrawal{
		UserID:    userID,
		RequestID: uuid.New().String(),
		Method:    method,
		Amount:    amount,
		Address:   address,
		Status:    "pending",
		CreatedAt: e.now(),
	}
	if err := e.store.CreateWithdrawal(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

// ReleaseHold moves settled funds from the hold pool to the withdrawable
// balance. Invoked by the settlement postback, never by user actions.
func (e *Engine) ReleaseHold(ctx context.Context, userID uint, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("non-positive release amount %s", amount)
	}
	return e.store.ReleaseHold(ctx, userID, amount)
}

// SubmitContestEntry records a contest submission for out-of-band review.
func (e *Engine) SubmitContestEntry(ctx context.Context, userID uint, contestType, link string) error {
	u, err := url.Parse(link)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("invalid contest link %q", link)
	}
	return e.store.CreateContestSubmission(ctx, &models.ContestSubmission{
		UserID:      userID,
		ContestType: contestType,
		Link:        link,
		Status:      "pending",
		CreatedAt:   e.now(),
	})
}

// ResetDailyStats zeroes every user's daily counters in one statement.
// Invoked by the midnight worker.
func (e *Engine) ResetDailyStats(ctx context.Context) error {
	return e.store.ResetDailyStats(ctx)
}
