package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type User struct {
	ID         uint   `gorm:"primaryKey"`
	TelegramID int64  `gorm:"uniqueIndex;not null"`
	Username   string `gorm:"size:255"`
	FirstName  string `gorm:"size:255"`
	LastName   string `gorm:"size:255"`
	Language   string `gorm:"size:8;default:'en'"`

	// Balance is withdrawable; HoldBalance accrues rewards until the
	// settlement process promotes them. The pools never mix implicitly.
	Balance     decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`
	HoldBalance decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`

	EarnedToday  decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`
	EarnedTotal  decimal.Decimal `gorm:"type:numeric(18,8);not null;default:0"`
	WatchedToday int             `gorm:"not null;default:0"`

	Streak           int             `gorm:"not null;default:0"`
	StreakMultiplier decimal.Decimal `gorm:"type:numeric(6,3);not null;default:1.0"`
	// Calendar date, not a timestamp: the once-per-day gate compares dates,
	// so claims on either side of midnight both count.
	LastStreakClaim *time.Time `gorm:"type:date"`

	IsSubscribed bool   `gorm:"not null;default:false"`
	ReferralCode string `gorm:"size:32;uniqueIndex;not null"`
	ReferrerID   *uint  `gorm:"index"`

	CreatedAt  time.Time
	LastActive time.Time
}
