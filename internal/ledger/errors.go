package ledger

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateUser       = errors.New("user already exists")
	ErrCodeCollision       = errors.New("referral code already taken")
	ErrAlreadyClaimedToday = errors.New("streak already claimed today")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrInvalidMethod       = errors.New("unknown payment method")
)
