// Package heuristic implements the rule-based statement parser used
// whenever LLM extraction is unavailable or fails. It is best-effort and
// lossy by design: lines that match no known shape are dropped silently.
package heuristic

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jmoret/bankparse/internal/amountutils"
	"jmoret/bankparse/internal/dateutils"
)

// Candidate is a provisional extraction from one line, before
// categorization finalizes it into a transaction record.
type Candidate struct {
	Date         string
	DateInferred bool
	Description  string
	Amount       decimal.Decimal
}

// Line patterns, in trial order. The first one that matches a line wins;
// no fallthrough between patterns once a shape has matched.
var (
	// 1: YYYY-MM-DD <description> <amount>
	isoLineRe = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(.+?)\s+(-?\d+[.,]?\d*)`)

	// 2: slash date (month-first or day-first per locale hint) <description> <amount>
	slashLineRe = regexp.MustCompile(`(\d{1,2}/\d{1,2}/\d{4})\s+(.+?)\s+(-?\d+[.,]?\d*)`)

	// 3: <amount> <description> <date>, sign from an explicit leading minus
	amountFirstRe = regexp.MustCompile(`^(-?\$?\d+[.,]?\d*)\s+(.+?)\s+(\d{1,2}/\d{1,2}/\d{4}|\d{4}-\d{2}-\d{2})`)

	// 4: <description> <trailing amount-like token>
	trailingAmountRe = regexp.MustCompile(`(.+?)\s+(-?\$?\d+[.,]?\d*)\s*$`)
)

// minAbsAmount guards the fallback pattern against matching plain small
// numbers that are not amounts.
var minAbsAmount = decimal.RequireFromString("0.01")

// Matcher extracts transaction candidates from single statement lines.
// The zero-value-adjacent NewMatcher() reads slash dates month-first and
// uses the wall clock for inferred dates.
type Matcher struct {
	dayFirst bool
	now      func() time.Time
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithDayFirst makes slash dates read as DD/MM/YYYY instead of MM/DD/YYYY.
// This is a locale hint supplied by configuration; the values themselves
// are never inspected to guess the format.
func WithDayFirst(dayFirst bool) Option {
	return func(m *Matcher) { m.dayFirst = dayFirst }
}

// WithClock overrides the clock used when a line carries no date at all.
func WithClock(now func() time.Time) Option {
	return func(m *Matcher) { m.now = now }
}

// NewMatcher creates a line matcher.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Match tries the patterns in order against one trimmed, non-empty line and
// returns at most one candidate. A false return means the line matched no
// shape, or matched one whose amount token failed to parse; either way the
// line is dropped.
func (m *Matcher) Match(line string) (Candidate, bool) {
	if match := isoLineRe.FindStringSubmatch(line); match != nil {
		return m.buildCandidate(match[1], match[2], match[3], false)
	}

	if match := slashLineRe.FindStringSubmatch(line); match != nil {
		return m.buildCandidate(match[1], match[2], match[3], false)
	}

	if match := amountFirstRe.FindStringSubmatch(line); match != nil {
		return m.buildCandidate(match[3], match[2], match[1], strings.HasPrefix(match[1], "-"))
	}

	if match := trailingAmountRe.FindStringSubmatch(line); match != nil {
		return m.matchFallback(match[1], match[2])
	}

	return Candidate{}, false
}

// buildCandidate normalizes the matched tokens into a candidate.
func (m *Matcher) buildCandidate(dateToken, description, amountToken string, forceDebit bool) (Candidate, bool) {
	amount, err := amountutils.Parse(amountToken)
	if err != nil {
		return Candidate{}, false
	}
	if forceDebit {
		amount = amount.Abs().Neg()
	}

	c := Candidate{
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	date, err := dateutils.Normalize(dateToken, m.dayFirst)
	if err != nil {
		// Unrecognizable date token: default to today rather than drop
		// the line. The flag lets consumers tell inferred from extracted.
		c.Date = dateutils.ToISO(m.now())
		c.DateInferred = true
	} else {
		c.Date = date
	}
	return c, true
}

// matchFallback handles the last-resort shape: any description followed by
// a trailing amount-like token. The magnitude guard avoids false positives
// on lines that merely end in a number.
func (m *Matcher) matchFallback(description, amountToken string) (Candidate, bool) {
	amount, err := amountutils.Parse(amountToken)
	if err != nil || amount.Abs().LessThanOrEqual(minAbsAmount) {
		return Candidate{}, false
	}

	c := Candidate{
		Description: strings.TrimSpace(description),
		Amount:      amount,
	}
	if token, ok := dateutils.FindToken(c.Description); ok {
		if date, err := dateutils.Normalize(token, m.dayFirst); err == nil {
			c.Date = date
			return c, true
		}
	}
	c.Date = dateutils.ToISO(m.now())
	c.DateInferred = true
	return c, true
}
