package llm

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/models"
	"jmoret/bankparse/internal/parsererror"
)

const systemInstruction = "You extract bank transactions as a JSON array with fields: " +
	"date (YYYY-MM-DD), amount (number, negative for expenses), description, merchant, " +
	"category (one of: Groceries, Utilities, Food & Drink, Transport, Entertainment, " +
	"Housing, Salary, Investments, Transfers, Other). Ensure valid JSON only."

// GeminiConfig carries the settings for the Gemini extraction client.
type GeminiConfig struct {
	APIKey         string
	Model          string
	Timeout        time.Duration
	MaxPromptChars int // statement text is truncated to this many characters
}

// GeminiClient implements Client against the Google Gemini API.
type GeminiClient struct {
	client  *genai.Client
	cfg     GeminiConfig
	adapter *Adapter
	logger  logging.Logger
}

// NewGeminiClient creates a Gemini-backed extraction client.
func NewGeminiClient(ctx context.Context, cfg GeminiConfig, logger logging.Logger) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("error creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		cfg:     cfg,
		adapter: NewAdapter(),
		logger:  logger,
	}, nil
}

// Close releases the underlying API client.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}

// ExtractTransactions sends the statement text to the model and adapts the
// response. Any failure comes back as an UpstreamError; the caller decides
// whether to fall back.
func (c *GeminiClient) ExtractTransactions(ctx context.Context, statementText string) ([]models.Transaction, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	prompt := systemInstruction + "\n\nBank statement content:\n\n" +
		truncate(statementText, c.cfg.MaxPromptChars) + "\n\nReturn JSON only."

	model := c.client.GenerativeModel(c.cfg.Model)
	model.SetTemperature(0)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, &parsererror.UpstreamError{Stage: "request", Err: err}
	}

	raw := responseText(resp)
	txs, err := c.adapter.Decode(raw)
	if err != nil {
		return nil, err
	}

	c.logger.WithField("count", len(txs)).Info("Extracted transactions with Gemini")
	return txs, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				b.WriteString(string(txt))
			}
		}
		break
	}
	return b.String()
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	return s[:max]
}
