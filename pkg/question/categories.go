package question

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var categoriesYAML []byte

// CategoryMapping pairs a source category name with its artifact
// key.
type CategoryMapping struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"`
}

// CategoryTable is the closed, hand-maintained mapping from source
// category names to artifact keys. Entry order is significant: it
// fixes the category order of the artifact and the report.
type CategoryTable []CategoryMapping

// categoryFile is the embedded document structure.
type categoryFile struct {
	Categories []CategoryMapping `yaml:"categories"`
}

// LoadCategoryTable decodes the embedded category table.
func LoadCategoryTable() (CategoryTable, error) {
	var file categoryFile
	if err := yaml.Unmarshal(categoriesYAML, &file); err != nil {
		return nil, fmt.Errorf("decode category table: %w", err)
	}
	if len(file.Categories) == 0 {
		return nil, fmt.Errorf("category table is empty")
	}

	names := make(map[string]bool, len(file.Categories))
	keys := make(map[string]bool, len(file.Categories))
	for i, entry := range file.Categories {
		if entry.Name == "" || entry.Key == "" {
			return nil, fmt.Errorf(
				"category table entry %d: name and key are required", i,
			)
		}
		if names[entry.Name] {
			return nil, fmt.Errorf(
				"category table: duplicate name %q", entry.Name,
			)
		}
		if keys[entry.Key] {
			return nil, fmt.Errorf(
				"category table: duplicate key %q", entry.Key,
			)
		}
		names[entry.Name] = true
		keys[entry.Key] = true
	}

	return CategoryTable(file.Categories), nil
}

// KeyFor returns the artifact key for a source category name.
// Names absent from the table have no key; their questions never
// reach the output.
func (t CategoryTable) KeyFor(name string) (string, bool) {
	for _, entry := range t {
		if entry.Name == name {
			return entry.Key, true
		}
	}
	return "", false
}
