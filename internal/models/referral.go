package models

import (
	"time"
)

// Referral is the referrer -> referred edge, created together with the
// referred user's row. A user can be referred at most once.
type Referral struct {
	ID         uint `gorm:"primaryKey"`
	ReferrerID uint `gorm:"not null;index"`
	ReferredID uint `gorm:"not null;uniqueIndex"`
	CreatedAt  time.Time
}
