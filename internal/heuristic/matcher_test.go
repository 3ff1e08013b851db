package heuristic

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
}

func newTestMatcher(opts ...Option) *Matcher {
	return NewMatcher(append([]Option{WithClock(testClock)}, opts...)...)
}

func TestMatchISOLine(t *testing.T) {
	m := newTestMatcher()

	c, ok := m.Match("2024-03-15 Whole Foods Market -54.23")
	require.True(t, ok)
	assert.Equal(t, "2024-03-15", c.Date)
	assert.False(t, c.DateInferred)
	assert.Equal(t, "Whole Foods Market", c.Description)
	assert.True(t, decimal.RequireFromString("-54.23").Equal(c.Amount))
}

func TestMatchSlashLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		dayFirst bool
		date     string
		desc     string
		amount   string
	}{
		{"Month-first default", "03/20/2024 Paycheck Deposit 2500.00", false, "2024-03-20", "Paycheck Deposit", "2500.00"},
		{"Day-first locale hint", "20/03/2024 Monthly Rent -1200.00", true, "2024-03-20", "Monthly Rent", "-1200.00"},
		{"Single digit components", "1/2/2024 Shop 9.99", false, "2024-01-02", "Shop", "9.99"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMatcher(WithDayFirst(tc.dayFirst))
			c, ok := m.Match(tc.line)
			require.True(t, ok)
			assert.Equal(t, tc.date, c.Date)
			assert.False(t, c.DateInferred)
			assert.Equal(t, tc.desc, c.Description)
			assert.True(t, decimal.RequireFromString(tc.amount).Equal(c.Amount))
		})
	}
}

func TestMatchAmountFirstLine(t *testing.T) {
	m := newTestMatcher()

	t.Run("Leading minus forces debit", func(t *testing.T) {
		c, ok := m.Match("-$45.00 Gas Station 03/15/2024")
		require.True(t, ok)
		assert.Equal(t, "2024-03-15", c.Date)
		assert.Equal(t, "Gas Station", c.Description)
		assert.True(t, decimal.RequireFromString("-45.00").Equal(c.Amount))
	})

	t.Run("No minus stays positive", func(t *testing.T) {
		c, ok := m.Match("100.00 Customer Refund 2024-01-05")
		require.True(t, ok)
		assert.Equal(t, "2024-01-05", c.Date)
		assert.True(t, decimal.RequireFromString("100.00").Equal(c.Amount))
	})
}

func TestMatchFallbackLine(t *testing.T) {
	m := newTestMatcher()

	t.Run("Trailing amount with no date infers today", func(t *testing.T) {
		c, ok := m.Match("Coffee Shop 4.50")
		require.True(t, ok)
		assert.Equal(t, "2024-06-01", c.Date)
		assert.True(t, c.DateInferred)
		assert.Equal(t, "Coffee Shop", c.Description)
		assert.True(t, decimal.RequireFromString("4.50").Equal(c.Amount))
	})

	t.Run("Date embedded in description is extracted", func(t *testing.T) {
		c, ok := m.Match("03/15/2024 45.99")
		require.True(t, ok)
		assert.Equal(t, "2024-03-15", c.Date)
		assert.False(t, c.DateInferred)
		assert.True(t, decimal.RequireFromString("45.99").Equal(c.Amount))
	})

	t.Run("Negative trailing amount with currency", func(t *testing.T) {
		c, ok := m.Match("Parking garage -$8.00")
		require.True(t, ok)
		assert.True(t, decimal.RequireFromString("-8.00").Equal(c.Amount))
		assert.True(t, c.DateInferred)
	})
}

func TestMatchRejects(t *testing.T) {
	m := newTestMatcher()

	tests := []struct {
		name string
		line string
	}{
		{"No numeric token", "Hello world"},
		{"Magnitude at guard threshold", "Item 0.01"},
		{"Magnitude below guard threshold", "Rounding 0.001"},
		{"Single word", "STATEMENT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := m.Match(tc.line)
			assert.False(t, ok)
		})
	}
}
