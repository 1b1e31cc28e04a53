package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"drift-scan/internal/stats"
)

func stringView(name string, n int64, values ...string) *stats.FeatureStats {
	return &stats.FeatureStats{
		Name:         name,
		TypeCounts:   map[string]int64{stats.TypeString: n},
		Count:        n,
		Distinct:     int64(len(values)),
		UniqueValues: values,
	}
}

func TestCreateColumn_GroupedEnumSharesDomain(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{EnumGrouping: map[string]string{
		"shirt_color": "color",
		"car_color":   "color",
	}})

	sev, _ := u.createColumn(stringView("shirt_color", 5, "red"), &s, 5)
	assert.Equal(t, SeverityGrowth, sev)
	sev, _ = u.createColumn(stringView("car_color", 5, "blue"), &s, 5)
	assert.Equal(t, SeverityGrowth, sev)

	require.Len(t, s.Domains(), 1, "grouped columns share one domain")
	d := s.Domains()[0]
	assert.Equal(t, "color", d.Name)
	assert.ElementsMatch(t, []string{"red", "blue"}, d.Values)
	assert.Equal(t, "color", s.GetExistingFeature("shirt_color").Domain)
	assert.Equal(t, "color", s.GetExistingFeature("car_color").Domain)
}

func TestCreateColumn_UngroupedColumnCannotTakeReservedName(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{EnumGrouping: map[string]string{"shirt_color": "color"}})

	// An ungrouped column named like the grouping target must not capture
	// the shared name before the group materializes.
	u.createColumn(stringView("color", 5, "cyan"), &s, 5)

	f := s.GetExistingFeature("color")
	require.NotNil(t, f)
	assert.Equal(t, "color2", f.Domain)
}

func TestCreateColumn_HighCardinalityStringHasNoDomain(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{EnumThreshold: 2})

	u.createColumn(stringView("uuid", 5, "a", "b", "c"), &s, 5)

	f := s.GetExistingFeature("uuid")
	require.NotNil(t, f)
	assert.Equal(t, FeatureString, f.Type)
	assert.Empty(t, f.Domain)
	assert.Empty(t, s.Domains())
}

func TestCreateColumn_PresenceFromObservation(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{})

	u.createColumn(&stats.FeatureStats{
		Name:       "sometimes",
		TypeCounts: map[string]int64{stats.TypeInt: 6},
		Count:      6, MissingCount: 4,
	}, &s, 10)

	f := s.GetExistingFeature("sometimes")
	require.NotNil(t, f)
	assert.Equal(t, int64(1), f.Presence.MinCount)
	assert.Zero(t, f.Presence.MinFraction, "a partially present column is not marked always-present")
}

func TestCreateColumn_NotNullHintMarksAlwaysPresent(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{})

	// The snapshot only sampled part of the data, but the source declares
	// the column NOT NULL.
	view := stringView("plan", 3, "free", "pro")
	view.NotNull = true
	u.createColumn(view, &s, 10)

	f := s.GetExistingFeature("plan")
	require.NotNil(t, f)
	assert.Equal(t, float64(1), f.Presence.MinFraction)
}

func TestUpdateFeature_LargeValuePlaceholderNotRecorded(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{})
	u.createColumn(stringView("tag", 5, "a", "b"), &s, 5)

	view := stringView("tag", 5, "a", stats.LargeValueToken)
	sev, descs := u.updateFeature(view, &s, s.GetExistingFeature("tag"), 5)

	assert.Equal(t, SeverityNone, sev)
	assert.Empty(t, descs)
	d := s.getExistingStringDomain("tag")
	require.NotNil(t, d)
	assert.NotContains(t, d.Values, stats.LargeValueToken)
}

func TestUpdateFeature_TypeMismatchIsError(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{})
	f := s.getNewFeature("age")
	f.Type = FeatureInt

	sev, descs := u.updateFeature(stringView("age", 5, "young", "old"), &s, f, 5)

	assert.Equal(t, SeverityError, sev)
	require.Len(t, descs, 1)
	assert.Equal(t, DescTypeMismatch, descs[0].Type)
}

func TestUpdateFeature_IntWhereFloatExpectedIsFine(t *testing.T) {
	var s Schema
	u := NewUpdater(Config{})
	f := s.getNewFeature("amount")
	f.Type = FeatureFloat

	sev, descs := u.updateFeature(&stats.FeatureStats{
		Name:       "amount",
		TypeCounts: map[string]int64{stats.TypeInt: 5},
		Count:      5,
	}, &s, f, 5)

	assert.Equal(t, SeverityNone, sev)
	assert.Empty(t, descs)
}

func TestUpdater_IgnoreSetDerivedOnce(t *testing.T) {
	u := NewUpdater(Config{ColumnsToIgnore: []string{"a", "b"}})

	assert.True(t, u.Ignored("a"))
	assert.True(t, u.Ignored("b"))
	assert.False(t, u.Ignored("c"))
}
