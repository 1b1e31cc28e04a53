package schema

import "fmt"

// getExistingStringDomain looks a domain up by exact name. No case folding,
// no fuzzy matching.
func (s *Schema) getExistingStringDomain(name string) *StringDomain {
	for _, d := range s.domains {
		if d.Name == name {
			return d
		}
	}
	return nil
}

// getStringDomain returns the domain with exactly this name, creating it if
// needed. Used for shared (grouped) domains where several columns agree on
// one name.
func (s *Schema) getStringDomain(name string) *StringDomain {
	if d := s.getExistingStringDomain(name); d != nil {
		return d
	}
	d := &StringDomain{Name: name}
	s.domains = append(s.domains, d)
	return d
}

// getNewStringDomain always registers a fresh domain. If the candidate name
// is taken (in the schema or in the reserved set), the smallest integer
// suffix >= 2 that frees it is appended: "foo" taken means try "foo2", then
// "foo3", and so on. The chosen name is permanently bound to the new domain.
func (s *Schema) getNewStringDomain(candidate string, reserved map[string]bool) *StringDomain {
	name := candidate
	for i := 2; s.getExistingStringDomain(name) != nil || reserved[name]; i++ {
		name = fmt.Sprintf("%s%d", candidate, i)
	}
	d := &StringDomain{Name: name}
	s.domains = append(s.domains, d)
	return d
}

// extendDomain adds any values not already in the domain, preserving existing
// values and their order. Returns the values that were actually added; the
// value set never shrinks.
func extendDomain(d *StringDomain, values []string) []string {
	have := make(map[string]bool, len(d.Values))
	for _, v := range d.Values {
		have[v] = true
	}
	var added []string
	for _, v := range values {
		if !have[v] {
			have[v] = true
			d.Values = append(d.Values, v)
			added = append(added, v)
		}
	}
	return added
}
