package stats

import "sort"

// Basic value types tracked by the per-column type tally.
const (
	TypeString = "STRING"
	TypeInt    = "INT"
	TypeFloat  = "FLOAT"
	TypeBytes  = "BYTES"
)

// LargeValueToken is the placeholder producers record in place of oversized
// strings. It is counting bookkeeping, not an observed value, and is never
// reported by ObservedValues.
const LargeValueToken = "__LARGE_VALUE__"

// ValueCount is one (value, occurrence count) pair from a top-K summary.
type ValueCount struct {
	Value string `yaml:"value"`
	Count int64  `yaml:"count"`
}

// FeatureStats is the observed summary for a single column. It is computed
// externally (collect, mock, or any other producer) and treated as read-only
// by the schema engine.
type FeatureStats struct {
	Name         string           `yaml:"name"`
	TypeCounts   map[string]int64 `yaml:"type_counts,omitempty"`
	Count        int64            `yaml:"count"` // rows where the column is present
	MissingCount int64            `yaml:"missing_count,omitempty"`
	Distinct     int64            `yaml:"distinct,omitempty"`
	TopValues    []ValueCount     `yaml:"top_values,omitempty"`
	UniqueValues []string         `yaml:"unique_values,omitempty"` // full distinct list when small
	NotNull      bool             `yaml:"not_null,omitempty"`      // the source forbids missing values
}

// DatasetStats is one snapshot over a dataset batch: an ordered collection of
// per-column summaries.
type DatasetStats struct {
	Name        string         `yaml:"name,omitempty"`
	NumExamples int64          `yaml:"num_examples"`
	Features    []FeatureStats `yaml:"features"`
}

// Feature returns the stats for the named column, or nil if the snapshot has
// no such column.
func (d *DatasetStats) Feature(name string) *FeatureStats {
	for i := range d.Features {
		if d.Features[i].Name == name {
			return &d.Features[i]
		}
	}
	return nil
}

// Columns lists the column names in snapshot order.
func (d *DatasetStats) Columns() []string {
	names := make([]string, 0, len(d.Features))
	for i := range d.Features {
		names = append(names, d.Features[i].Name)
	}
	return names
}

// DominantType returns the type with the highest tally. Ties break
// alphabetically so the result is deterministic. An empty tally means the
// producer could not classify the column; treat it as bytes.
func (f *FeatureStats) DominantType() string {
	if len(f.TypeCounts) == 0 {
		return TypeBytes
	}
	keys := make([]string, 0, len(f.TypeCounts))
	for k := range f.TypeCounts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	best := keys[0]
	for _, k := range keys[1:] {
		if f.TypeCounts[k] > f.TypeCounts[best] {
			best = k
		}
	}
	return best
}

// FractionPresent is the share of examples in which the column appeared.
func (f *FeatureStats) FractionPresent(numExamples int64) float64 {
	if numExamples <= 0 {
		return 0
	}
	return float64(f.Count) / float64(numExamples)
}

// DistinctEstimate is the number of distinct values, falling back to the
// observed value list when the producer left Distinct unset.
func (f *FeatureStats) DistinctEstimate() int64 {
	if f.Distinct > 0 {
		return f.Distinct
	}
	return int64(len(f.ObservedValues()))
}

// ObservedValues returns the known distinct values of the column: the explicit
// unique-value list when present, otherwise the top-K values. Order follows
// the source list with duplicates and the large-value placeholder removed.
func (f *FeatureStats) ObservedValues() []string {
	if len(f.UniqueValues) > 0 {
		return dedup(f.UniqueValues)
	}
	vals := make([]string, 0, len(f.TopValues))
	for _, vc := range f.TopValues {
		vals = append(vals, vc.Value)
	}
	return dedup(vals)
}

// IsEnumCandidate reports whether the column looks categorical: a string
// column with a small, known set of distinct values.
func (f *FeatureStats) IsEnumCandidate(threshold int) bool {
	if f.DominantType() != TypeString {
		return false
	}
	n := f.DistinctEstimate()
	return n > 0 && n <= int64(threshold)
}

func dedup(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == LargeValueToken || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
