// Package container wires the application dependencies. All components
// receive their collaborators through constructors; nothing reaches for
// process-wide mutable state.
package container

import (
	"context"
	"fmt"
	"time"

	"jmoret/bankparse/internal/categorizer"
	"jmoret/bankparse/internal/config"
	"jmoret/bankparse/internal/extract"
	"jmoret/bankparse/internal/heuristic"
	"jmoret/bankparse/internal/llm"
	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/reader"
	"jmoret/bankparse/internal/server"
	"jmoret/bankparse/internal/store"
)

// Container holds the wired application dependencies.
type Container struct {
	logger       logging.Logger
	config       *config.Config
	txStore      store.TransactionStore
	mappingStore *store.MappingStore
	aiClient     llm.Client
	categorizer  *categorizer.Categorizer
	extractor    *extract.Service
	server       *server.Server
}

// NewContainer creates and wires all application dependencies from the
// configuration. An unusable AI configuration degrades to heuristic-only
// parsing rather than failing startup.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	mappingStore := store.NewMappingStore(cfg.Categories.MappingsFile)
	cat := categorizer.New(mappingStore, logger)

	matcher := heuristic.NewMatcher(heuristic.WithDayFirst(cfg.Parser.DayFirst))
	extractor := heuristic.NewExtractor(matcher, cat, logger)
	registry := reader.NewRegistry(nil)

	var aiClient llm.Client
	if cfg.AI.Enabled && cfg.AI.APIKey != "" {
		client, err := llm.NewGeminiClient(ctx, llm.GeminiConfig{
			APIKey:         cfg.AI.APIKey,
			Model:          cfg.AI.Model,
			Timeout:        time.Duration(cfg.AI.TimeoutSeconds) * time.Second,
			MaxPromptChars: cfg.AI.MaxPromptChars,
		}, logger)
		if err != nil {
			logger.WithError(err).Warn("LLM extraction unavailable, using heuristic parser only")
		} else {
			aiClient = client
			logger.Info("LLM extraction enabled", logging.Field{Key: "model", Value: cfg.AI.Model})
		}
	} else {
		logger.Info("LLM extraction disabled, using heuristic parser")
	}

	service := extract.NewService(registry, extractor, aiClient, logger)

	txStore := store.NewMemoryStore()
	srv := server.New(txStore, service, logger, cfg.Server.MaxUploadMB)

	return &Container{
		logger:       logger,
		config:       cfg,
		txStore:      txStore,
		mappingStore: mappingStore,
		aiClient:     aiClient,
		categorizer:  cat,
		extractor:    service,
		server:       srv,
	}, nil
}

// Logger returns the configured logger.
func (c *Container) Logger() logging.Logger { return c.logger }

// Config returns the application configuration.
func (c *Container) Config() *config.Config { return c.config }

// TransactionStore returns the transaction storage backend.
func (c *Container) TransactionStore() store.TransactionStore { return c.txStore }

// MappingStore returns the merchant mapping store.
func (c *Container) MappingStore() *store.MappingStore { return c.mappingStore }

// Categorizer returns the transaction categorizer.
func (c *Container) Categorizer() *categorizer.Categorizer { return c.categorizer }

// Extractor returns the statement extraction service.
func (c *Container) Extractor() *extract.Service { return c.extractor }

// Server returns the HTTP API server.
func (c *Container) Server() *server.Server { return c.server }
