package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNextStreak(t *testing.T) {
	today := date(2025, time.March, 10)

	tests := []struct {
		name      string
		lastClaim *time.Time
		current   int
		want      int
		wantErr   error
	}{
		{
			name:      "never claimed starts at one",
			lastClaim: nil,
			current:   0,
			want:      1,
		},
		{
			name:      "claimed yesterday continues",
			lastClaim: ptr(date(2025, time.March, 9)),
			current:   6,
			want:      7,
		},
		{
			name:      "claimed today rejected",
			lastClaim: ptr(date(2025, time.March, 10)),
			current:   6,
			wantErr:   ErrAlreadyClaimedToday,
		},
		{
			name:      "two day gap resets",
			lastClaim: ptr(date(2025, time.March, 8)),
			current:   40,
			want:      1,
		},
		{
			name:      "long gap resets",
			lastClaim: ptr(date(2024, time.December, 1)),
			current:   200,
			want:      1,
		},
		{
			name: "same date with time component still rejected",
			// 23h59m before "today" midnight comparison should not matter,
			// only the calendar date does.
			lastClaim: ptr(time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)),
			current:   3,
			wantErr:   ErrAlreadyClaimedToday,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := nextStreak(tt.lastClaim, today, tt.current)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMultiplierFor(t *testing.T) {
	rate := decimal.RequireFromString("0.002")

	tests := []struct {
		streak int
		want   string
	}{
		{0, "1"},
		{1, "1.002"},
		{10, "1.02"},
		{500, "2"},   // 1 + 500*0.002 = 2.0 exactly
		{501, "2"},   // clamped
		{10000, "2"}, // clamped
	}

	for _, tt := range tests {
		got := multiplierFor(tt.streak, rate)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
			"streak %d: got %s, want %s", tt.streak, got, tt.want)
	}
}

func TestMultiplierBounds(t *testing.T) {
	rate := decimal.RequireFromString("0.002")
	one := decimal.NewFromInt(1)
	two := decimal.NewFromInt(2)

	for streak := 0; streak <= 2000; streak += 17 {
		m := multiplierFor(streak, rate)
		assert.True(t, m.GreaterThanOrEqual(one), "streak %d below floor: %s", streak, m)
		assert.True(t, m.LessThanOrEqual(two), "streak %d above cap: %s", streak, m)
	}
}

func TestCappedBonusValue(t *testing.T) {
	base := decimal.RequireFromString("0.002")
	m := multiplierFor(500, decimal.RequireFromString("0.002"))
	bonus := base.Mul(m)
	assert.True(t, bonus.Equal(decimal.RequireFromString("0.004")), "got %s", bonus)
}

func TestDateOf(t *testing.T) {
	ts := time.Date(2025, time.March, 10, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, date(2025, time.March, 10), dateOf(ts))
}

func ptr(t time.Time) *time.Time {
	return &t
}
