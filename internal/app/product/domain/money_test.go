package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("rejects zero denominator", func(t *testing.T) {
		_, err := NewMoney(100, 0)
		require.Error(t, err)
	})

	t.Run("represents exact decimal values", func(t *testing.T) {
		m, err := NewMoney(249900, 100) // $2499.00
		require.NoError(t, err)
		assert.Equal(t, "2499.00", m.String())
	})
}

func TestMoney_Comparisons(t *testing.T) {
	fifty, _ := NewMoney(50, 1)
	hundred, _ := NewMoney(100, 1)

	assert.True(t, fifty.LessThan(hundred))
	assert.True(t, hundred.GreaterThan(fifty))
	assert.True(t, hundred.GreaterThanOrEqual(hundred))
	assert.True(t, fifty.Equals(fifty.Copy()))
	assert.True(t, fifty.IsPositive())
	assert.False(t, fifty.IsZero())
	assert.False(t, fifty.IsNegative())
}

func TestMoney_RoundedCents(t *testing.T) {
	tests := []struct {
		name        string
		numerator   int64
		denominator int64
		want        string
	}{
		{"exact cents stay put", 9999, 100, "99.99"},
		{"half rounds away from zero", 2345, 1000, "2.35"},
		{"below half rounds down", 2344, 1000, "2.34"},
		{"negative half rounds away from zero", -2345, 1000, "-2.35"},
		{"ten percent discount on 99.99", 89991, 1000, "89.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoney(tt.numerator, tt.denominator)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.RoundedCents().String())
		})
	}
}

func TestMoney_MultiplyByRat(t *testing.T) {
	price, _ := NewMoney(100, 1)
	discounted := price.MultiplyByRat(big.NewRat(9, 10))
	assert.Equal(t, "90.00", discounted.String())

	// The original value is untouched.
	assert.Equal(t, "100.00", price.String())
}

func TestNewMoneyFromFloat(t *testing.T) {
	m := NewMoneyFromFloat(1500)
	assert.Equal(t, "1500.00", m.String())

	m = NewMoneyFromFloat(40.5)
	assert.Equal(t, "40.50", m.String())
}
