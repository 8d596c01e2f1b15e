package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AdView is an append-only event log record; rows are never updated.
type AdView struct {
	ID        uint            `gorm:"primaryKey"`
	UserID    uint            `gorm:"not null;index"`
	AdType    string          `gorm:"size:64"`
	Reward    decimal.Decimal `gorm:"type:numeric(18,8);not null"`
	CreatedAt time.Time       `gorm:"index"`
}
