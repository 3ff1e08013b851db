package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"jmoret/bankparse/internal/categorizer"
	"jmoret/bankparse/internal/dateutils"
	"jmoret/bankparse/internal/models"
	"jmoret/bankparse/internal/parsererror"
)

// Alternate field names the model (or an upstream tool) may emit per
// target field, in priority order. The adapter tries each in turn, so
// well-formed responses cost one lookup and sloppy ones still land.
var (
	dateFieldNames        = []string{"date", "transaction_date", "transactionDate", "posted", "posting_date", "value_date"}
	descriptionFieldNames = []string{"description", "details", "memo", "narrative", "text"}
	amountFieldNames      = []string{"amount", "value", "total"}
	merchantFieldNames    = []string{"merchant", "payee", "vendor", "counterparty"}
	categoryFieldNames    = []string{"category", "type"}
)

// Adapter turns a raw model response into typed transaction records.
type Adapter struct {
	now func() time.Time
}

// NewAdapter creates a response adapter using the wall clock for records
// whose date cannot be recovered.
func NewAdapter() *Adapter {
	return &Adapter{now: time.Now}
}

// NewAdapterWithClock is the test constructor.
func NewAdapterWithClock(now func() time.Time) *Adapter {
	return &Adapter{now: now}
}

// Decode locates the JSON array in the raw response (first '[' to last
// ']'), decodes it, and adapts each element. Elements that cannot be
// adapted are skipped; a response with no decodable array at all is an
// UpstreamError, which triggers the heuristic fallback upstream.
func (a *Adapter) Decode(raw string) ([]models.Transaction, error) {
	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start == -1 || end <= start {
		return nil, &parsererror.UpstreamError{
			Stage: "decode",
			Err:   fmt.Errorf("response contains no JSON array"),
		}
	}

	dec := json.NewDecoder(strings.NewReader(raw[start : end+1]))
	dec.UseNumber()
	var items []map[string]interface{}
	if err := dec.Decode(&items); err != nil {
		return nil, &parsererror.UpstreamError{Stage: "decode", Err: err}
	}

	txs := make([]models.Transaction, 0, len(items))
	for _, item := range items {
		tx, err := a.adaptRecord(item)
		if err != nil {
			continue
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// adaptRecord maps one loosely-typed response object onto a Transaction,
// resolving each target field through its priority-ordered name list.
func (a *Adapter) adaptRecord(fields map[string]interface{}) (models.Transaction, error) {
	description, ok := firstString(fields, descriptionFieldNames)
	if !ok {
		return models.Transaction{}, fmt.Errorf("record has no description field")
	}

	amount, ok := firstAmount(fields, amountFieldNames)
	if !ok {
		return models.Transaction{}, fmt.Errorf("record has no parsable amount field")
	}

	tx := models.Transaction{
		Description: description,
		Amount:      amount,
	}

	if token, ok := firstString(fields, dateFieldNames); ok {
		if date, err := dateutils.Normalize(token, false); err == nil {
			tx.Date = date
		}
	}
	if tx.Date == "" {
		tx.Date = dateutils.ToISO(a.now())
		tx.DateInferred = true
	}

	if merchant, ok := firstString(fields, merchantFieldNames); ok {
		tx.Merchant = merchant
	}
	if category, ok := firstString(fields, categoryFieldNames); ok && models.IsValidCategory(category) {
		tx.Category = category
	} else {
		tx.Category = categorizer.Categorize(tx.Description, tx.Amount)
	}

	tx.Normalize()
	return tx, nil
}

func firstString(fields map[string]interface{}, names []string) (string, bool) {
	for _, name := range names {
		if v, ok := fields[name]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s), true
			}
		}
	}
	return "", false
}

func firstAmount(fields map[string]interface{}, names []string) (decimal.Decimal, bool) {
	for _, name := range names {
		v, ok := fields[name]
		if !ok {
			continue
		}
		switch n := v.(type) {
		case json.Number:
			if d, err := decimal.NewFromString(n.String()); err == nil {
				return d, true
			}
		case string:
			if d, err := decimal.NewFromString(strings.TrimSpace(n)); err == nil {
				return d, true
			}
		case float64:
			return decimal.NewFromFloat(n), true
		}
	}
	return decimal.Zero, false
}
