package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift-scan/internal/stats"
)

func TestRelatedEnums_GroupsNearDuplicateColumns(t *testing.T) {
	var s Schema
	st := &stats.DatasetStats{NumExamples: 10, Features: []stats.FeatureStats{
		*stringView("color", 10, "red", "blue", "green"),
		*stringView("colour", 10, "red", "blue", "green", "teal"),
		*stringView("status", 10, "active", "inactive"),
	}}

	proposed, err := s.RelatedEnums(st, Config{})
	require.NoError(t, err)

	// Jaccard(color, colour) = 3/4; status matches nothing.
	assert.Equal(t, map[string]string{"colour": "color"}, proposed.EnumGrouping)
}

func TestRelatedEnums_ThresholdIsTunable(t *testing.T) {
	var s Schema
	st := &stats.DatasetStats{NumExamples: 10, Features: []stats.FeatureStats{
		*stringView("color", 10, "red", "blue", "green"),
		*stringView("colour", 10, "red", "blue", "green", "teal"),
	}}

	proposed, err := s.RelatedEnums(st, Config{MinDomainSimilarity: 0.9})
	require.NoError(t, err)
	assert.Empty(t, proposed.EnumGrouping, "a 0.75 overlap is below a 0.9 cutoff")
}

func TestRelatedEnums_FoldsExistingDomains(t *testing.T) {
	var s Schema
	d := s.getStringDomain("shade")
	extendDomain(d, []string{"red", "blue", "green"})
	f := s.getNewFeature("wall_shade")
	f.Type = FeatureString
	f.Domain = "shade"

	st := &stats.DatasetStats{NumExamples: 10, Features: []stats.FeatureStats{
		*stringView("paint", 10, "red", "blue", "green"),
	}}

	proposed, err := s.RelatedEnums(st, Config{})
	require.NoError(t, err)

	// Cluster {shade, paint}; the target is the smaller name "paint", so
	// the features bound to the folded domain are routed there too.
	assert.Equal(t, map[string]string{"wall_shade": "paint"}, proposed.EnumGrouping)
}

func TestRelatedEnums_KeepsExistingGrouping(t *testing.T) {
	var s Schema
	in := Config{EnumGrouping: map[string]string{"x": "y"}}

	proposed, err := s.RelatedEnums(&stats.DatasetStats{}, in)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"x": "y"}, proposed.EnumGrouping)
	assert.Empty(t, in.EnumGrouping["zz"], "input config is not modified")
}

func TestJaccard(t *testing.T) {
	a := map[string]bool{"x": true, "y": true}
	b := map[string]bool{"y": true, "z": true}
	assert.InDelta(t, 1.0/3.0, jaccard(a, b), 1e-9)
	assert.Zero(t, jaccard(a, map[string]bool{}))
}
