package store

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"jmoret/bankparse/internal/models"
)

// MappingStore loads and saves user-maintained merchant-to-category
// mappings from a YAML file. The categorizer consults these before its
// built-in keyword table.
type MappingStore struct {
	Path string
}

// NewMappingStore creates a store backed by the given YAML file. An empty
// path or a missing file is not an error; Load just returns no mappings.
func NewMappingStore(path string) *MappingStore {
	return &MappingStore{Path: path}
}

// Load reads the mapping file. Keys are merchant substrings, values are
// category names.
func (s *MappingStore) Load() (map[string]string, error) {
	if s.Path == "" {
		return map[string]string{}, nil
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("error reading mappings file: %w", err)
	}

	mappings := make(map[string]string)
	if err := yaml.Unmarshal(data, &mappings); err != nil {
		return nil, fmt.Errorf("error parsing mappings file: %w", err)
	}
	return mappings, nil
}

// Save writes the mappings back to the YAML file.
func (s *MappingStore) Save(mappings map[string]string) error {
	if s.Path == "" {
		return fmt.Errorf("no mappings file configured")
	}
	data, err := yaml.Marshal(mappings)
	if err != nil {
		return fmt.Errorf("error serializing mappings: %w", err)
	}
	if err := os.WriteFile(s.Path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing mappings file: %w", err)
	}
	return nil
}
