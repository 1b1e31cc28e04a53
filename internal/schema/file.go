package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Document is the serializable mirror of a Schema, consumed by Init and
// produced by Document(). Initializing an empty schema from Document()
// reproduces an equivalent schema, deprecation flags included.
type Document struct {
	Features       []Feature       `yaml:"features,omitempty"`
	SparseFeatures []SparseFeature `yaml:"sparse_features,omitempty"`
	Domains        []StringDomain  `yaml:"domains,omitempty"`
}

// Document snapshots the schema into its serializable form.
func (s *Schema) Document() *Document {
	doc := &Document{}
	for _, f := range s.features {
		cp := *f
		cp.Environments = append([]string(nil), f.Environments...)
		doc.Features = append(doc.Features, cp)
	}
	for _, sf := range s.sparse {
		cp := *sf
		cp.IndexFeatures = append([]string(nil), sf.IndexFeatures...)
		cp.Environments = append([]string(nil), sf.Environments...)
		doc.SparseFeatures = append(doc.SparseFeatures, cp)
	}
	for _, d := range s.domains {
		cp := *d
		cp.Values = append([]string(nil), d.Values...)
		doc.Domains = append(doc.Domains, cp)
	}
	return doc
}

// LoadDocument reads a schema document from a yaml file.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema file %s: %w", path, err)
	}
	return &doc, nil
}

// SaveDocument writes a schema document as yaml.
func SaveDocument(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write schema file: %w", err)
	}
	return nil
}
