package schema

import "sort"

// FeatureType is the inferred value type of a column.
type FeatureType string

const (
	FeatureString FeatureType = "STRING"
	FeatureInt    FeatureType = "INT"
	FeatureFloat  FeatureType = "FLOAT"
	FeatureBytes  FeatureType = "BYTES"
)

// Severity ranks how serious a detected discrepancy is. The reported severity
// for a column is the maximum over all of its descriptions.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityWarning
	// SeverityGrowth marks expected schema growth (a first-time column):
	// visible, but below an outright error.
	SeverityGrowth
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "WARNING"
	case SeverityGrowth:
		return "GROWTH"
	case SeverityError:
		return "ERROR"
	default:
		return "NONE"
	}
}

func maxSeverity(a, b Severity) Severity {
	if b > a {
		return b
	}
	return a
}

// Description short identifiers.
const (
	DescNewColumn       = "SCHEMA_NEW_COLUMN"
	DescTypeMismatch    = "UNEXPECTED_TYPE"
	DescDomainExtended  = "ENUM_TYPE_NEW_VALUES"
	DescLowPresence     = "FEATURE_PRESENCE"
	DescDomainBadType   = "DOMAIN_INVALID_TYPE"
	DescDomainNotFound  = "DOMAIN_NOT_FOUND"
	DescInvalidPresence = "INVALID_PRESENCE"
)

// Description records one detected discrepancy as a short identifier plus a
// human-readable message.
type Description struct {
	Type    string
	Message string
}

// Anomaly aggregates everything found for one column in an update pass.
type Anomaly struct {
	Column       string
	Severity     Severity
	Descriptions []Description
}

// Presence holds a feature's presence constraints. MinFraction 1.0 means the
// column must appear in every example; MinCount > 0 means it must appear at
// all.
type Presence struct {
	MinFraction float64 `yaml:"min_fraction,omitempty"`
	MinCount    int64   `yaml:"min_count,omitempty"`
}

// Feature describes one column: its expected type, an optional categorical
// domain, presence constraints and environment membership. Features are never
// deleted, only marked deprecated, so schema evolution stays auditable.
type Feature struct {
	Name         string      `yaml:"name"`
	Type         FeatureType `yaml:"type"`
	Domain       string      `yaml:"domain,omitempty"` // name of a StringDomain
	Presence     Presence    `yaml:"presence,omitempty"`
	Environments []string    `yaml:"environments,omitempty"` // nil means all environments
	Deprecated   bool        `yaml:"deprecated,omitempty"`
}

// InEnvironment reports whether the feature is expected in the given
// environment. An empty environment list means the feature belongs to all
// environments; an empty env argument means the check is unscoped.
func (f *Feature) InEnvironment(env string) bool {
	if len(f.Environments) == 0 || env == "" {
		return true
	}
	for _, e := range f.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// SparseFeature is a composite feature spanning multiple underlying columns
// (index columns plus a value column).
type SparseFeature struct {
	Name          string   `yaml:"name"`
	IndexFeatures []string `yaml:"index_features"`
	ValueFeature  string   `yaml:"value_feature"`
	Environments  []string `yaml:"environments,omitempty"`
	Deprecated    bool     `yaml:"deprecated,omitempty"`
}

// StringDomain is a named set of allowed categorical values. Value order is
// preserved for stable serialization; membership is what matters. The value
// set only grows as more data is observed.
type StringDomain struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Schema is the root aggregate: features ordered by name, sparse features,
// and string domains. It is created empty and mutated exclusively through
// engine operations; callers must not insert into the collections directly.
// A Schema is not internally synchronized.
type Schema struct {
	features []*Feature
	sparse   []*SparseFeature
	domains  []*StringDomain
}

// Features returns the features in schema (name) order.
func (s *Schema) Features() []*Feature { return s.features }

// SparseFeatures returns the sparse features in insertion order.
func (s *Schema) SparseFeatures() []*SparseFeature { return s.sparse }

// Domains returns the string domains in creation order.
func (s *Schema) Domains() []*StringDomain { return s.domains }

// GetExistingFeature returns the named feature, or nil.
func (s *Schema) GetExistingFeature(name string) *Feature {
	for _, f := range s.features {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// GetExistingSparseFeature returns the named sparse feature, or nil.
func (s *Schema) GetExistingSparseFeature(name string) *SparseFeature {
	for _, sf := range s.sparse {
		if sf.Name == name {
			return sf
		}
	}
	return nil
}

// getNewFeature inserts a fresh feature, keeping the collection ordered by
// name. Assumes the name is not already taken.
func (s *Schema) getNewFeature(name string) *Feature {
	f := &Feature{Name: name}
	i := sort.Search(len(s.features), func(i int) bool { return s.features[i].Name >= name })
	s.features = append(s.features, nil)
	copy(s.features[i+1:], s.features[i:])
	s.features[i] = f
	return f
}

// IsEmpty reports whether the schema owns no features and no domains.
func (s *Schema) IsEmpty() bool {
	return len(s.features) == 0 && len(s.sparse) == 0 && len(s.domains) == 0
}

// Clear resets the schema to the empty state.
func (s *Schema) Clear() {
	s.features = nil
	s.sparse = nil
	s.domains = nil
}
