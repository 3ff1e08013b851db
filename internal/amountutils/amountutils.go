// Package amountutils normalizes free-form statement amount tokens into
// signed decimal values.
package amountutils

import (
	"strings"

	"github.com/shopspring/decimal"

	"jmoret/bankparse/internal/parsererror"
)

// Clean strips everything from a raw amount token except digits, the
// decimal point and a sign, removing currency symbols and thousands
// separators. "-$1,234.50" becomes "-1234.50".
func Clean(raw string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9', r == '.', r == '-':
			b.WriteRune(r)
		case r == ',':
			// Thousands separator, dropped.
		}
	}
	return b.String()
}

// Parse converts a raw amount token into a signed decimal. It fails with an
// InvalidAmountError when nothing numeric remains after cleanup; callers
// drop the candidate or substitute per their own policy.
func Parse(raw string) (decimal.Decimal, error) {
	cleaned := Clean(raw)
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &parsererror.InvalidAmountError{Raw: raw, Err: err}
	}
	return d, nil
}

// ParseDebit parses like Parse but forces the result negative. Used when an
// external marker (a debit column, an explicit leading minus on the line)
// decides the sign rather than the token itself.
func ParseDebit(raw string) (decimal.Decimal, error) {
	d, err := Parse(raw)
	if err != nil {
		return decimal.Zero, err
	}
	return d.Abs().Neg(), nil
}
