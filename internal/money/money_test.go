package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rezonia/order-billing/internal/money"
)

func TestRound(t *testing.T) {
	assert.True(t, money.Round(decimal.RequireFromString("5.905")).Equal(decimal.RequireFromString("5.91")))
	assert.True(t, money.Round(decimal.RequireFromString("5.904")).Equal(decimal.RequireFromString("5.90")))
	assert.True(t, money.Round(decimal.RequireFromString("112.1")).Equal(decimal.RequireFromString("112.10")))
}

func TestFromString(t *testing.T) {
	d, err := money.FromString("65.00")
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.NewFromInt(65)))

	_, err = money.FromString("not-a-number")
	require.Error(t, err)
}

func TestMustFromString(t *testing.T) {
	assert.True(t, money.MustFromString("0.12").Equal(decimal.RequireFromString("0.12")))
	assert.Panics(t, func() { money.MustFromString("invalid") })
}

func TestPaise(t *testing.T) {
	assert.Equal(t, int64(11210), money.Paise(decimal.RequireFromString("112.10")))
	assert.Equal(t, int64(100), money.Paise(decimal.NewFromInt(1)))
	// Sub-paisa remainders truncate toward zero.
	assert.Equal(t, int64(112), money.Paise(decimal.RequireFromString("1.129")))
}

func TestRatePercent(t *testing.T) {
	assert.Equal(t, "12.0", money.RatePercent(decimal.RequireFromString("0.12")))
	assert.Equal(t, "18.0", money.RatePercent(decimal.RequireFromString("0.18")))
	assert.Equal(t, "0.0", money.RatePercent(decimal.Zero))
}

func TestSum(t *testing.T) {
	got := money.Sum([]decimal.Decimal{
		decimal.RequireFromString("70.00"),
		decimal.RequireFromString("30.00"),
	})
	assert.True(t, got.Equal(decimal.NewFromInt(100)))
	assert.True(t, money.Sum(nil).IsZero())
}
