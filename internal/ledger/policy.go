package ledger

import (
	"github.com/shopspring/decimal"
)

// PaymentMethod describes one entry of the payout method table: displayed
// name, minimum withdrawable amount and the commission the processor takes.
type PaymentMethod struct {
	Name              string
	MinAmount         decimal.Decimal
	CommissionPercent decimal.Decimal
	CommissionFixed   decimal.Decimal
	Currency          string
}

// Commission returns the fee charged on a withdrawal of the given amount.
func (m PaymentMethod) Commission(amount decimal.Decimal) decimal.Decimal {
	percent := amount.Mul(m.CommissionPercent).Div(decimal.NewFromInt(100))
	return percent.Add(m.CommissionFixed)
}

// Policy holds the earning constants and the payment-method table. These are
// configuration, injected at construction; the engine never reads globals.
type Policy struct {
	PerAdReward     decimal.Decimal
	StreakBonusBase decimal.Decimal
	StreakBonusRate decimal.Decimal
	ReferralShare   decimal.Decimal
	DailyGoal       int
	Methods         map[string]PaymentMethod
}

// DefaultPolicy returns the production earning constants and method table.
func DefaultPolicy() Policy {
	return Policy{
		PerAdReward:     decimal.RequireFromString("0.00024"),
		StreakBonusBase: decimal.RequireFromString("0.002"),
		StreakBonusRate: decimal.RequireFromString("0.002"),
		ReferralShare:   decimal.RequireFromString("0.2"),
		DailyGoal:       250,
		Methods:         DefaultPaymentMethods(),
	}
}

func DefaultPaymentMethods() map[string]PaymentMethod {
	return map[string]PaymentMethod{
		"telegram_stars": {
			Name:              "Telegram Stars",
			MinAmount:         decimal.RequireFromString("0.75"),
			CommissionPercent: decimal.RequireFromString("2.0"),
			CommissionFixed:   decimal.Zero,
			Currency:          "USD",
		},
		"crypto_bot": {
			Name:              "Crypto Bot",
			MinAmount:         decimal.RequireFromString("0.07"),
			CommissionPercent: decimal.RequireFromString("3.0"),
			CommissionFixed:   decimal.Zero,
			Currency:          "USD",
		},
		"usdt_bep20": {
			Name:              "Tether (USDT-BEP-20)",
			MinAmount:         decimal.RequireFromString("2.00"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("1.0"),
			Currency:          "USD",
		},
		"tron": {
			Name:              "Tron (TRX)",
			MinAmount:         decimal.RequireFromString("2.3302"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("2.0"),
			Currency:          "TRX",
		},
		"litecoin": {
			Name:              "Litecoin (LTC)",
			MinAmount:         decimal.RequireFromString("1.20"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("0.001"),
			Currency:          "LTC",
		},
		"bitcoin_cash": {
			Name:              "Bitcoin Cash (BCH)",
			MinAmount:         decimal.RequireFromString("5.8740"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("0.001"),
			Currency:          "BCH",
		},
		"dash": {
			Name:              "Dash (DAA)",
			MinAmount:         decimal.RequireFromString("0.4918"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("0.01"),
			Currency:          "DAA",
		},
		"dogecoin": {
			Name:              "Dogecoin (DOG)",
			MinAmount:         decimal.RequireFromString("7.9464"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("8.0"),
			Currency:          "DOG",
		},
		"ripple": {
			Name:              "Ripple (XRP)",
			MinAmount:         decimal.RequireFromString("70.47"),
			CommissionPercent: decimal.Zero,
			CommissionFixed:   decimal.RequireFromString("0.25"),
			Currency:          "XRP",
		},
	}
}
