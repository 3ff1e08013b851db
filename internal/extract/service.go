// Package extract orchestrates statement parsing: format readers produce
// text per file, the texts are concatenated, and either the LLM client or
// the heuristic parser turns the result into transactions.
package extract

import (
	"context"
	"fmt"

	"jmoret/bankparse/internal/heuristic"
	"jmoret/bankparse/internal/llm"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/models"
	"jmoret/bankparse/internal/parsererror"
	"jmoret/bankparse/internal/reader"
)

// File is one uploaded statement file.
type File struct {
	Name string
	Data []byte
}

// Service runs the extraction pipeline for a batch of uploaded files.
type Service struct {
	registry  *reader.Registry
	heuristic *heuristic.Extractor
	llm       llm.Client // nil when LLM extraction is not configured
	logger    logging.Logger
}

// NewService wires the pipeline. llmClient may be nil, in which case every
// parse uses the heuristic parser directly.
func NewService(registry *reader.Registry, h *heuristic.Extractor, llmClient llm.Client, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Service{
		registry:  registry,
		heuristic: h,
		llm:       llmClient,
		logger:    logger,
	}
}

// ParseFiles converts each file to text and extracts transactions from the
// concatenated result. A batch with no files is the one hard error; a file
// that cannot be read degrades to a placeholder line so the rest of the
// batch still parses.
func (s *Service) ParseFiles(ctx context.Context, files []File) ([]models.Transaction, error) {
	if len(files) == 0 {
		return nil, parsererror.ErrNoFiles
	}
	return s.ParseText(ctx, s.readFiles(files)), nil
}

// ParseText extracts transactions from raw statement text, preferring the
// LLM path when configured and falling back to the heuristic parser on any
// upstream failure.
func (s *Service) ParseText(ctx context.Context, text string) []models.Transaction {
	if s.llm != nil {
		txs, err := s.llm.ExtractTransactions(ctx, text)
		if err == nil {
			return txs
		}
		s.logger.WithError(err).Warn("LLM extraction failed, falling back to heuristic parser")
	}
	return s.heuristic.Extract(text)
}

// readFiles turns the batch into one text blob, file texts separated by a
// blank line. Unsupported extensions are skipped; unreadable files become
// placeholder lines.
func (s *Service) readFiles(files []File) string {
	var joined string
	for i, f := range files {
		if i > 0 {
			joined += "\n\n"
		}
		r, ok := s.registry.ForFile(f.Name)
		if !ok {
			s.logger.WithField("file", f.Name).Warn("Skipping unsupported file type")
			continue
		}
		text, err := r.ReadText(f.Name, f.Data)
		if err != nil {
			s.logger.WithError(err).WithField("file", f.Name).Error("Failed to read statement file")
			joined += fmt.Sprintf("[Failed to parse: %s]", f.Name)
			continue
		}
		joined += text
	}
	return joined
}
