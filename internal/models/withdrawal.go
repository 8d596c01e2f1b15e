package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Withdrawal struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"not null;index"`
	// RequestID is handed to the external payout processor so retried
	// settlement calls stay idempotent.
	RequestID string          `gorm:"size:36;uniqueIndex;not null"`
	Method    string          `gorm:"size:32;not null"`
	Amount    decimal.Decimal `gorm:"type:numeric(18,8);not null"`
	Address   string          `gorm:"size:255;not null"`
	Status    string          `gorm:"size:32;default:'pending'"`
	CreatedAt time.Time
}
