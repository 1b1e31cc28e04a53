package schema

import (
	"fmt"
	"sort"

	"drift-scan/internal/stats"
)

// Init populates an empty schema from a document. It fails with no partial
// mutation when the schema is not empty or the document is too malformed to
// repair (duplicate names). Every loaded feature is run through the
// consistency repair so externally supplied schemas are sanitized on entry.
func (s *Schema) Init(doc *Document) error {
	if !s.IsEmpty() {
		return fmt.Errorf("schema is not empty: Init requires a freshly created or cleared schema")
	}
	if doc == nil {
		return fmt.Errorf("schema document is nil")
	}

	var staged Schema
	seenDomains := make(map[string]bool)
	for i := range doc.Domains {
		d := doc.Domains[i]
		if seenDomains[d.Name] {
			return fmt.Errorf("invalid schema document: duplicate domain %q", d.Name)
		}
		seenDomains[d.Name] = true
		staged.domains = append(staged.domains, &StringDomain{
			Name:   d.Name,
			Values: append([]string(nil), d.Values...),
		})
	}

	seenFeatures := make(map[string]bool)
	for i := range doc.Features {
		f := doc.Features[i]
		if seenFeatures[f.Name] {
			return fmt.Errorf("invalid schema document: duplicate feature %q", f.Name)
		}
		seenFeatures[f.Name] = true
		nf := staged.getNewFeature(f.Name)
		nf.Type = f.Type
		nf.Domain = f.Domain
		nf.Presence = f.Presence
		nf.Environments = append([]string(nil), f.Environments...)
		nf.Deprecated = f.Deprecated
	}

	seenSparse := make(map[string]bool)
	for i := range doc.SparseFeatures {
		sf := doc.SparseFeatures[i]
		if seenSparse[sf.Name] {
			return fmt.Errorf("invalid schema document: duplicate sparse feature %q", sf.Name)
		}
		seenSparse[sf.Name] = true
		staged.sparse = append(staged.sparse, &SparseFeature{
			Name:          sf.Name,
			IndexFeatures: append([]string(nil), sf.IndexFeatures...),
			ValueFeature:  sf.ValueFeature,
			Environments:  append([]string(nil), sf.Environments...),
			Deprecated:    sf.Deprecated,
		})
	}

	// Sanitize; fixes here stem from the supplied document, not from data,
	// so the descriptions are not surfaced.
	for _, f := range staged.features {
		staged.updateFeatureSelf(f)
	}

	*s = staged
	return nil
}

// Update reconciles the schema against a statistics snapshot. Every column in
// the snapshot that is not ignored is checked: unknown columns grow the
// schema, known columns are compared and healed. The returned anomalies are
// sorted by column name.
func (s *Schema) Update(st *stats.DatasetStats, config Config) ([]Anomaly, error) {
	return s.update(st, config, nil)
}

// UpdateColumns is Update restricted to the named columns. Columns outside
// the subset are left untouched.
func (s *Schema) UpdateColumns(st *stats.DatasetStats, config Config, columns []string) ([]Anomaly, error) {
	subset := make(map[string]bool, len(columns))
	for _, c := range columns {
		subset[c] = true
	}
	return s.update(st, config, subset)
}

func (s *Schema) update(st *stats.DatasetStats, config Config, subset map[string]bool) ([]Anomaly, error) {
	if st == nil {
		return nil, fmt.Errorf("statistics snapshot is nil")
	}
	u := NewUpdater(config)

	var anomalies []Anomaly
	for i := range st.Features {
		view := &st.Features[i]
		if subset != nil && !subset[view.Name] {
			continue
		}
		if u.Ignored(view.Name) {
			continue
		}
		if s.sparseComponent(view.Name) {
			// Raw columns claimed by a sparse feature are validated as
			// part of that feature, not on their own.
			continue
		}
		severity, descs := s.UpdateColumn(u, view, st.NumExamples)
		if len(descs) == 0 {
			continue
		}
		anomalies = append(anomalies, Anomaly{
			Column:       view.Name,
			Severity:     severity,
			Descriptions: descs,
		})
	}

	sort.Slice(anomalies, func(i, j int) bool { return anomalies[i].Column < anomalies[j].Column })
	return anomalies, nil
}

// UpdateColumn checks a single column against the schema, creating the
// feature on first observation. The result is independent of any other
// column.
func (s *Schema) UpdateColumn(u *Updater, view *stats.FeatureStats, numExamples int64) (Severity, []Description) {
	if f := s.GetExistingFeature(view.Name); f != nil {
		return u.updateFeature(view, s, f, numExamples)
	}
	if s.GetExistingSparseFeature(view.Name) != nil {
		// The name belongs to a sparse feature; never shadow it with a
		// dense feature.
		return SeverityNone, nil
	}
	return u.createColumn(view, s, numExamples)
}

// DeprecateFeature marks the named feature (dense or sparse) deprecated.
// Deprecated features are skipped by updates and by missing-column checks but
// remain in the schema. Unknown names are a no-op.
func (s *Schema) DeprecateFeature(name string) {
	if f := s.GetExistingFeature(name); f != nil {
		f.Deprecated = true
		return
	}
	if sf := s.GetExistingSparseFeature(name); sf != nil {
		sf.Deprecated = true
	}
}

// GetMissingColumns returns, in schema order, the names of non-deprecated
// existence-required features that have no column in the snapshot. env scopes
// the check: a feature restricted to certain environments is only considered
// when the check targets one of them or is unscoped ("" means all).
func (s *Schema) GetMissingColumns(env string, st *stats.DatasetStats) []string {
	var missing []string
	for _, f := range s.features {
		if !s.isExistenceRequired(f, env) {
			continue
		}
		if st == nil || st.Feature(f.Name) == nil {
			missing = append(missing, f.Name)
		}
	}
	for _, sf := range s.sparse {
		if sf.Deprecated || !sparseInEnvironment(sf, env) {
			continue
		}
		if st == nil || st.Feature(sf.ValueFeature) == nil {
			missing = append(missing, sf.Name)
		}
	}
	return missing
}

// isExistenceRequired reports whether the feature must appear in a snapshot
// scoped to env.
func (s *Schema) isExistenceRequired(f *Feature, env string) bool {
	if f.Deprecated {
		return false
	}
	if !f.InEnvironment(env) {
		return false
	}
	return f.Presence.MinCount > 0 || f.Presence.MinFraction > 0
}

func sparseInEnvironment(sf *SparseFeature, env string) bool {
	if len(sf.Environments) == 0 || env == "" {
		return true
	}
	for _, e := range sf.Environments {
		if e == env {
			return true
		}
	}
	return false
}

// sparseComponent reports whether the column is one of a sparse feature's
// underlying index or value columns.
func (s *Schema) sparseComponent(column string) bool {
	for _, sf := range s.sparse {
		if sf.ValueFeature == column {
			return true
		}
		for _, idx := range sf.IndexFeatures {
			if idx == column {
				return true
			}
		}
	}
	return false
}
