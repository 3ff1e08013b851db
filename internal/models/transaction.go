// Package models provides the data structures used throughout the application.
package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Statement amounts travel over the wire as bare JSON numbers,
	// matching the upload API contract and the LLM prompt schema.
	decimal.MarshalJSONWithoutQuotes = true
}

// Transaction is one extracted statement entry. It is the output shape of
// both the heuristic parser and the LLM extraction path, and the record the
// CRUD storage consumes.
type Transaction struct {
	ID           string          `json:"id,omitempty" csv:"ID"`
	Date         string          `json:"date" csv:"Date"`               // Canonical YYYY-MM-DD
	Description  string          `json:"description" csv:"Description"` // Raw statement text for the entry
	Merchant     string          `json:"merchant,omitempty" csv:"Merchant"`
	Amount       decimal.Decimal `json:"amount" csv:"Amount"` // Negative = expense, non-negative = income
	Category     string          `json:"category,omitempty" csv:"Category"`
	DateInferred bool            `json:"dateInferred,omitempty" csv:"-"` // Date was defaulted, not extracted
}

// Validate checks the record invariants: a parsable ISO date, a non-empty
// description, and a category from the closed set (empty is allowed and
// filled in by Normalize).
func (t *Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("transaction has empty description")
	}
	if _, err := time.Parse("2006-01-02", t.Date); err != nil {
		return fmt.Errorf("transaction date %q is not a valid ISO date: %w", t.Date, err)
	}
	if t.Category != "" && !IsValidCategory(t.Category) {
		return fmt.Errorf("unknown category %q", t.Category)
	}
	return nil
}

// Normalize fills the defaulted fields: merchant falls back to the
// description and the category falls back to Other.
func (t *Transaction) Normalize() {
	if strings.TrimSpace(t.Merchant) == "" {
		t.Merchant = t.Description
	}
	if t.Category == "" || !IsValidCategory(t.Category) {
		t.Category = CategoryOther
	}
}

// IsExpense reports whether the transaction takes money out of the account.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}
