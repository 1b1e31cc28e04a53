package schema

import (
	"fmt"
	"strings"

	"drift-scan/internal/stats"
)

// Updater holds the per-run state derived from a Config: the ignore set, the
// enum grouping map, and the set of domain names already spoken for. Build it
// once per update pass and reuse it across all columns.
type Updater struct {
	config    Config
	ignore    map[string]bool
	grouped   map[string]string
	namesUsed map[string]bool
}

// NewUpdater derives the per-run lookup state from a config.
func NewUpdater(config Config) *Updater {
	u := &Updater{
		config:    config,
		ignore:    make(map[string]bool, len(config.ColumnsToIgnore)),
		grouped:   make(map[string]string, len(config.EnumGrouping)),
		namesUsed: make(map[string]bool),
	}
	for _, c := range config.ColumnsToIgnore {
		u.ignore[c] = true
	}
	for col, domain := range config.EnumGrouping {
		u.grouped[col] = domain
		// Reserve every grouping target so an ungrouped column with the
		// same name cannot take it first.
		u.namesUsed[domain] = true
	}
	return u
}

// Ignored reports whether the column is excluded from processing entirely.
func (u *Updater) Ignored(column string) bool { return u.ignore[column] }

// createColumn builds a feature for a previously unseen column, inferring its
// type and, for enum-like string columns, binding a domain. A brand-new
// column is schema growth, not an error.
func (u *Updater) createColumn(view *stats.FeatureStats, s *Schema, numExamples int64) (Severity, []Description) {
	f := s.getNewFeature(view.Name)
	f.Type = featureTypeOf(view.DominantType())
	f.Presence = Presence{MinCount: 1}
	// Fully observed columns, and columns the source declares NOT NULL,
	// are expected in every example from now on.
	if (numExamples > 0 && view.Count >= numExamples) || view.NotNull {
		f.Presence.MinFraction = 1
	}

	if f.Type == FeatureString && view.IsEnumCandidate(u.config.enumThreshold()) {
		var d *StringDomain
		if target, ok := u.grouped[view.Name]; ok {
			d = s.getStringDomain(target)
		} else {
			d = s.getNewStringDomain(view.Name, u.namesUsed)
			u.namesUsed[d.Name] = true
		}
		extendDomain(d, view.ObservedValues())
		f.Domain = d.Name
	}

	desc := Description{
		Type:    DescNewColumn,
		Message: fmt.Sprintf("new column %q (type %s)", view.Name, f.Type),
	}
	return SeverityGrowth, []Description{desc}
}

// updateFeature reconciles an existing feature against freshly observed
// statistics. The schema is healed (domain extended, feature repaired) rather
// than the data rejected; discrepancies come back as descriptions.
func (u *Updater) updateFeature(view *stats.FeatureStats, s *Schema, f *Feature, numExamples int64) (Severity, []Description) {
	if f.Deprecated {
		return SeverityNone, nil
	}

	severity := SeverityNone
	var descs []Description

	observed := featureTypeOf(view.DominantType())
	if observed != f.Type && !(f.Type == FeatureFloat && observed == FeatureInt) {
		// Integers are acceptable where floats are expected.
		descs = append(descs, Description{
			Type: DescTypeMismatch,
			Message: fmt.Sprintf("column %q declared as %s but observed values are %s",
				view.Name, f.Type, observed),
		})
		severity = maxSeverity(severity, SeverityError)
	}

	if f.Domain != "" {
		if d := s.getExistingStringDomain(f.Domain); d != nil {
			if added := extendDomain(d, view.ObservedValues()); len(added) > 0 {
				descs = append(descs, Description{
					Type: DescDomainExtended,
					Message: fmt.Sprintf("domain %q extended with values: %s",
						d.Name, strings.Join(added, ", ")),
				})
				severity = maxSeverity(severity, SeverityWarning)
			}
		}
	}

	if numExamples > 0 {
		frac := view.FractionPresent(numExamples)
		if frac < f.Presence.MinFraction || view.Count < f.Presence.MinCount {
			descs = append(descs, Description{
				Type: DescLowPresence,
				Message: fmt.Sprintf("column %q present in %.4f of examples (%d rows), below the required presence",
					view.Name, frac, view.Count),
			})
			severity = maxSeverity(severity, SeverityError)
		}
	}

	if fixes := s.updateFeatureSelf(f); len(fixes) > 0 {
		descs = append(descs, fixes...)
		severity = maxSeverity(severity, SeverityWarning)
	}

	return severity, descs
}

func featureTypeOf(basicType string) FeatureType {
	switch basicType {
	case stats.TypeString:
		return FeatureString
	case stats.TypeInt:
		return FeatureInt
	case stats.TypeFloat:
		return FeatureFloat
	default:
		return FeatureBytes
	}
}
