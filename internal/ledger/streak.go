package ledger

import (
	"time"

	"github.com/shopspring/decimal"
)

var (
	multiplierFloor = decimal.NewFromInt(1)
	multiplierCap   = decimal.NewFromInt(2)
)

// dateOf truncates a timestamp to its UTC calendar date.
func dateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// nextStreak applies the daily claim transition: a claim on the day after the
// last one continues the streak, a gap of two or more days (or a first claim)
// resets it to 1, and a second claim on the same date is rejected.
func nextStreak(lastClaim *time.Time, today time.Time, current int) (int, error) {
	if lastClaim == nil {
		return 1, nil
	}
	switch dateOf(*lastClaim) {
	case today:
		return 0, ErrAlreadyClaimedToday
	case today.AddDate(0, 0, -1):
		return current + 1, nil
	default:
		return 1, nil
	}
}

// multiplierFor recomputes the streak multiplier from scratch for the given
// streak length: 1.0 + streak*rate, clamped to [1.0, 2.0]. It is a pure
// function of the streak, never compounded from the previous multiplier.
func multiplierFor(streak int, rate decimal.Decimal) decimal.Decimal {
	m := multiplierFloor.Add(rate.Mul(decimal.NewFromInt(int64(streak))))
	if m.GreaterThan(multiplierCap) {
		return multiplierCap
	}
	if m.LessThan(multiplierFloor) {
		return multiplierFloor
	}
	return m
}
