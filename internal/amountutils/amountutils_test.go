package amountutils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmoret/bankparse/internal/parsererror"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Plain number", "42.50", "42.50"},
		{"Currency symbol", "$42.50", "42.50"},
		{"Negative with currency", "-$42.50", "-42.50"},
		{"Thousands separators", "1,234,567.89", "1234567.89"},
		{"Surrounding whitespace", "  99.00  ", "99.00"},
		{"Letters stripped", "CHF 12.00", "12.00"},
		{"Empty input", "", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Clean(tc.raw))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
		wantErr  bool
	}{
		{"Canonical negative", "-42.50", "-42.50", false},
		{"Canonical positive", "2500.00", "2500.00", false},
		{"Currency and separators", "-$1,234.50", "-1234.50", false},
		{"Integer", "100", "100", false},
		{"Not a number", "abc", "", true},
		{"Only symbols", "$,", "", true},
		{"Empty", "", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(tc.raw)
			if tc.wantErr {
				require.Error(t, err)
				var invalidAmount *parsererror.InvalidAmountError
				assert.ErrorAs(t, err, &invalidAmount)
				return
			}
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(got),
				"expected %s, got %s", tc.expected, got)
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	// Normalizing an already-canonical amount must return the same value.
	first, err := Parse("-42.50")
	require.NoError(t, err)
	second, err := Parse(first.String())
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}

func TestParseDebit(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"Positive token forced negative", "45.00", "-45.00"},
		{"Already negative stays negative", "-45.00", "-45.00"},
		{"With currency symbol", "$12.34", "-12.34"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseDebit(tc.raw)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(got))
		})
	}
}
