package heuristic

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jmoret/bankparse/internal/categorizer"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/models"
)

func newTestExtractor(t *testing.T, opts ...Option) *Extractor {
	t.Helper()
	cat := categorizer.New(nil, logging.NopLogger{})
	return NewExtractor(newTestMatcher(opts...), cat, logging.NopLogger{})
}

func TestExtractStatement(t *testing.T) {
	e := newTestExtractor(t)

	text := "2024-03-15 Whole Foods Market -54.23\n03/20/2024 Paycheck Deposit 2500.00"
	txs := e.Extract(text)
	require.Len(t, txs, 2)

	assert.Equal(t, "2024-03-15", txs[0].Date)
	assert.Equal(t, "Whole Foods Market", txs[0].Description)
	assert.Equal(t, "Whole Foods Market", txs[0].Merchant)
	assert.True(t, decimal.RequireFromString("-54.23").Equal(txs[0].Amount))
	assert.Equal(t, models.CategoryGroceries, txs[0].Category)
	assert.False(t, txs[0].DateInferred)

	assert.Equal(t, "2024-03-20", txs[1].Date)
	assert.Equal(t, "Paycheck Deposit", txs[1].Description)
	assert.True(t, decimal.RequireFromString("2500.00").Equal(txs[1].Amount))
	assert.Equal(t, models.CategorySalary, txs[1].Category)
}

func TestExtractSkipsBlankAndUnmatchedLines(t *testing.T) {
	e := newTestExtractor(t)

	text := "ACCOUNT STATEMENT\n\n   \nOpening balance notice\n2024-01-02 Corner Cafe -4.75\n"
	txs := e.Extract(text)
	require.Len(t, txs, 1)
	assert.Equal(t, "Corner Cafe", txs[0].Description)
	assert.Equal(t, models.CategoryFoodAndDrink, txs[0].Category)
}

func TestExtractHandlesCRLF(t *testing.T) {
	e := newTestExtractor(t)

	text := "2024-02-01 Netflix Subscription -15.99\r\n2024-02-03 Uber Trip -22.40\r\n"
	txs := e.Extract(text)
	require.Len(t, txs, 2)
	assert.Equal(t, models.CategoryEntertainment, txs[0].Category)
	assert.Equal(t, models.CategoryTransport, txs[1].Category)
}

func TestExtractInfersDateFromClock(t *testing.T) {
	e := newTestExtractor(t)

	txs := e.Extract("Morning coffee 4.50")
	require.Len(t, txs, 1)
	assert.Equal(t, "2024-06-01", txs[0].Date)
	assert.True(t, txs[0].DateInferred)
}

func TestExtractEmptyInput(t *testing.T) {
	e := newTestExtractor(t)

	assert.Empty(t, e.Extract(""))
	assert.Empty(t, e.Extract("\n\n\n"))
}
