package models

import (
	"time"
)

// ContestSubmission entries are reviewed by hand; the bot only records them.
type ContestSubmission struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	ContestType string `gorm:"size:32;not null"`
	Link        string `gorm:"size:512;not null"`
	Status      string `gorm:"size:32;default:'pending'"`
	CreatedAt   time.Time
}
