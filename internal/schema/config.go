package schema

const (
	defaultEnumThreshold       = 400
	defaultMinDomainSimilarity = 0.5
)

// Config carries per-run update policy. The zero value is usable; unset
// numeric fields fall back to defaults.
type Config struct {
	// ColumnsToIgnore are skipped entirely: no feature is created or
	// updated for them and no description is emitted.
	ColumnsToIgnore []string `yaml:"columns_to_ignore,omitempty" mapstructure:"columns_to_ignore"`

	// EnumGrouping routes a column to a shared domain name instead of a
	// fresh domain named after the column.
	EnumGrouping map[string]string `yaml:"enum_grouping,omitempty" mapstructure:"enum_grouping"`

	// EnumThreshold is the largest distinct-value count at which a string
	// column is still considered categorical.
	EnumThreshold int `yaml:"enum_threshold,omitempty" mapstructure:"enum_threshold"`

	// MinDomainSimilarity is the Jaccard cutoff above which two value sets
	// are considered near-duplicates by RelatedEnums.
	MinDomainSimilarity float64 `yaml:"min_domain_similarity,omitempty" mapstructure:"min_domain_similarity"`
}

func (c Config) enumThreshold() int {
	if c.EnumThreshold <= 0 {
		return defaultEnumThreshold
	}
	return c.EnumThreshold
}

func (c Config) minDomainSimilarity() float64 {
	if c.MinDomainSimilarity <= 0 {
		return defaultMinDomainSimilarity
	}
	return c.MinDomainSimilarity
}
