// Package llm implements the optional language-model extraction path. When
// configured, whole statement texts are sent to Gemini with a fixed
// instruction prompt; the response is decoded defensively. The heuristic
// parser remains the mandatory fallback for any failure here.
package llm

import (
	"context"

	"jmoret/bankparse/internal/models"
)

// Client extracts transactions from raw statement text via a language
// model. Implementations return an UpstreamError on API or decode
// failures so the caller can fall back to the heuristic parser.
type Client interface {
	ExtractTransactions(ctx context.Context, statementText string) ([]models.Transaction, error)
}
