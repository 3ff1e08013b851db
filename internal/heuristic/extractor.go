package heuristic

import (
	"strings"

	"jmoret/bankparse/internal/categorizer"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/models"
)

// Extractor turns a whole statement text into an ordered list of
// transactions by running every line through the matcher. It holds no
// state across calls; Extract is a pure function of its input.
type Extractor struct {
	matcher *Matcher
	cat     *categorizer.Categorizer
	logger  logging.Logger
}

// NewExtractor creates a document extractor.
func NewExtractor(matcher *Matcher, cat *categorizer.Categorizer, logger logging.Logger) *Extractor {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Extractor{matcher: matcher, cat: cat, logger: logger}
}

// Extract splits the text on line boundaries and emits one transaction per
// matching line, in order of appearance. Blank lines and unmatched lines
// are skipped.
func (e *Extractor) Extract(text string) []models.Transaction {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	txs := make([]models.Transaction, 0, len(lines)/2)

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		candidate, ok := e.matcher.Match(trimmed)
		if !ok {
			continue
		}

		tx := models.Transaction{
			Date:         candidate.Date,
			DateInferred: candidate.DateInferred,
			Description:  candidate.Description,
			Merchant:     candidate.Description,
			Amount:       candidate.Amount,
			Category:     e.cat.Categorize(candidate.Description, candidate.Amount),
		}
		txs = append(txs, tx)
	}

	e.logger.WithField("count", len(txs)).Debug("Heuristic extraction complete")
	return txs
}
