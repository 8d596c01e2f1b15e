package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommission(t *testing.T) {
	tests := []struct {
		name   string
		method string
		amount string
		want   string
	}{
		{"percent only", "telegram_stars", "10", "0.2"},
		{"percent only crypto bot", "crypto_bot", "1", "0.03"},
		{"fixed only", "usdt_bep20", "5", "1"},
		{"fixed only small", "litecoin", "2", "0.001"},
	}

	methods := DefaultPaymentMethods()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := methods[tt.method]
			require.True(t, ok)
			got := m.Commission(decimal.RequireFromString(tt.amount))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s, want %s", got, tt.want)
		})
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()

	assert.True(t, p.PerAdReward.Equal(decimal.RequireFromString("0.00024")))
	assert.True(t, p.StreakBonusBase.Equal(decimal.RequireFromString("0.002")))
	assert.True(t, p.StreakBonusRate.Equal(decimal.RequireFromString("0.002")))
	assert.True(t, p.ReferralShare.Equal(decimal.RequireFromString("0.2")))
	assert.Equal(t, 250, p.DailyGoal)
	assert.Len(t, p.Methods, 9)

	for id, m := range p.Methods {
		assert.NotEmpty(t, m.Name, "method %s", id)
		assert.True(t, m.MinAmount.IsPositive(), "method %s", id)
		assert.NotEmpty(t, m.Currency, "method %s", id)
	}
}
