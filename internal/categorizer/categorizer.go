// Package categorizer assigns each transaction one of the fixed category
// labels. Two steps: user-maintained merchant mappings from the mapping
// store first, then the built-in keyword table.
package categorizer

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"jmoret/bankparse/internal/logging"
	"jmoret/bankparse/internal/store"
)

// Categorizer resolves categories for extracted transactions.
type Categorizer struct {
	mappings map[string]string // lowercased merchant substring -> category
	keys     []string          // sorted mapping keys, for deterministic matching
	logger   logging.Logger
}

// New creates a Categorizer. The mapping store is optional; with a nil
// store (or an empty mapping file) only the keyword table applies.
func New(mappingStore *store.MappingStore, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		mappings: make(map[string]string),
		logger:   logger,
	}

	if mappingStore != nil {
		mappings, err := mappingStore.Load()
		if err != nil {
			c.logger.WithError(err).Warn("Failed to load merchant mappings")
		} else {
			for key, value := range mappings {
				c.mappings[strings.ToLower(key)] = value
			}
		}
	}

	c.keys = make([]string, 0, len(c.mappings))
	for key := range c.mappings {
		c.keys = append(c.keys, key)
	}
	sort.Strings(c.keys)

	return c
}

// Categorize returns the category for a description and signed amount.
// Custom merchant mappings win over the keyword table.
func (c *Categorizer) Categorize(description string, amount decimal.Decimal) string {
	if category, ok := c.categorizeByMapping(description); ok {
		return category
	}
	return Categorize(description, amount)
}

func (c *Categorizer) categorizeByMapping(description string) (string, bool) {
	if len(c.mappings) == 0 {
		return "", false
	}
	desc := strings.ToLower(description)
	for _, substr := range c.keys {
		if strings.Contains(desc, substr) {
			category := c.mappings[substr]
			c.logger.WithField("category", category).
				Debug("Categorized by merchant mapping")
			return category, true
		}
	}
	return "", false
}
