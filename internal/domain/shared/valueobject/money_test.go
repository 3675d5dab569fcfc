package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("creates money with valid amount and currency", func(t *testing.T) {
		m, err := NewMoney(decimal.NewFromFloat(100.50), INR)
		require.NoError(t, err)
		assert.Equal(t, INR, m.Currency())
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(100.50)))
	})

	t.Run("returns error for empty currency", func(t *testing.T) {
		_, err := NewMoney(decimal.NewFromFloat(100), "")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "currency cannot be empty")
	})
}

func TestNewMoneyINR(t *testing.T) {
	m := NewMoneyINR(decimal.NewFromInt(399))
	assert.Equal(t, INR, m.Currency())
	assert.Equal(t, int64(399), m.Amount().IntPart())
}

func TestNewMoneyINRFromString(t *testing.T) {
	m, err := NewMoneyINRFromString("449.50")
	require.NoError(t, err)
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(449.50)))

	_, err = NewMoneyINRFromString("not-a-number")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	price := NewMoneyINR(decimal.NewFromInt(399))

	t.Run("add", func(t *testing.T) {
		total, err := price.Add(NewMoneyINR(decimal.NewFromInt(450)))
		require.NoError(t, err)
		assert.Equal(t, int64(849), total.Amount().IntPart())
	})

	t.Run("add rejects currency mismatch", func(t *testing.T) {
		usd, err := NewMoney(decimal.NewFromInt(10), USD)
		require.NoError(t, err)
		_, err = price.Add(usd)
		assert.Error(t, err)
	})

	t.Run("subtract", func(t *testing.T) {
		diff, err := NewMoneyINR(decimal.NewFromInt(450)).Subtract(price)
		require.NoError(t, err)
		assert.Equal(t, int64(51), diff.Amount().IntPart())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		subtotal := price.MultiplyByInt(2)
		assert.Equal(t, int64(798), subtotal.Amount().IntPart())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	a := NewMoneyINR(decimal.NewFromInt(399))
	b := NewMoneyINR(decimal.NewFromInt(450))

	assert.True(t, a.Equals(NewMoneyINR(decimal.NewFromInt(399))))
	assert.False(t, a.Equals(b))

	less, err := a.LessThan(b)
	require.NoError(t, err)
	assert.True(t, less)

	assert.True(t, ZeroINR().IsZero())
	assert.True(t, a.IsPositive())
	assert.False(t, a.IsNegative())
}

func TestMoney_JSONRoundTrip(t *testing.T) {
	m := NewMoneyINR(decimal.NewFromFloat(399.00))

	raw, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded Money
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, m.Equals(decoded))
	assert.Equal(t, INR, decoded.Currency())
}

func TestMoney_SQLValue(t *testing.T) {
	m := NewMoneyINR(decimal.NewFromInt(1248))

	v, err := m.Value()
	require.NoError(t, err)

	var scanned Money
	require.NoError(t, scanned.Scan(v))
	assert.True(t, m.Equals(scanned))
}
