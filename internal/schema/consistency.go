package schema

import "fmt"

// updateFeatureSelf checks a single feature for internal contradictions and
// repairs it in place, returning one description per fix. It never fails:
// self-inconsistency is always resolved by adjustment so the schema stays
// usable even when built from imperfect external input.
func (s *Schema) updateFeatureSelf(f *Feature) []Description {
	var descs []Description

	if f.Domain != "" {
		switch {
		case f.Type != FeatureString && f.Type != FeatureBytes:
			descs = append(descs, Description{
				Type: DescDomainBadType,
				Message: fmt.Sprintf("feature %q has type %s but references domain %q; dropped the domain reference",
					f.Name, f.Type, f.Domain),
			})
			f.Domain = ""
		case s.getExistingStringDomain(f.Domain) == nil:
			descs = append(descs, Description{
				Type: DescDomainNotFound,
				Message: fmt.Sprintf("feature %q references unknown domain %q; dropped the domain reference",
					f.Name, f.Domain),
			})
			f.Domain = ""
		}
	}

	if f.Presence.MinFraction < 0 || f.Presence.MinFraction > 1 {
		clamped := f.Presence.MinFraction
		if clamped < 0 {
			clamped = 0
		} else {
			clamped = 1
		}
		descs = append(descs, Description{
			Type: DescInvalidPresence,
			Message: fmt.Sprintf("feature %q has min_fraction %v outside [0, 1]; clamped to %v",
				f.Name, f.Presence.MinFraction, clamped),
		})
		f.Presence.MinFraction = clamped
	}
	if f.Presence.MinCount < 0 {
		descs = append(descs, Description{
			Type: DescInvalidPresence,
			Message: fmt.Sprintf("feature %q has negative min_count %d; reset to 0",
				f.Name, f.Presence.MinCount),
		})
		f.Presence.MinCount = 0
	}

	return descs
}
