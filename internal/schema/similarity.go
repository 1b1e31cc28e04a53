package schema

import (
	"sort"

	"drift-scan/internal/stats"
)

// RelatedEnums groups columns whose observed value sets are near-duplicates
// of each other (or of existing domains) and returns a config whose
// EnumGrouping routes each clustered column to one shared domain name. The
// input config is not modified; its grouping entries are carried over. A
// subsequent Update with the returned config merges the near-duplicate
// domains.
func (s *Schema) RelatedEnums(st *stats.DatasetStats, config Config) (Config, error) {
	type candidate struct {
		name   string
		column bool // false: an existing domain contributing its value set
		values map[string]bool
	}
	var cands []candidate

	for _, d := range s.domains {
		set := make(map[string]bool, len(d.Values))
		for _, v := range d.Values {
			set[v] = true
		}
		cands = append(cands, candidate{name: d.Name, values: set})
	}
	if st != nil {
		for i := range st.Features {
			view := &st.Features[i]
			if !view.IsEnumCandidate(config.enumThreshold()) {
				continue
			}
			set := make(map[string]bool)
			for _, v := range view.ObservedValues() {
				set[v] = true
			}
			if len(set) == 0 {
				continue
			}
			cands = append(cands, candidate{name: view.Name, column: true, values: set})
		}
	}

	// Single-linkage clustering over pairwise Jaccard matches.
	parent := make([]int, len(cands))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}
	cutoff := config.minDomainSimilarity()
	for i := 0; i < len(cands); i++ {
		for j := i + 1; j < len(cands); j++ {
			if jaccard(cands[i].values, cands[j].values) >= cutoff {
				parent[find(i)] = find(j)
			}
		}
	}

	clusters := make(map[int][]int)
	for i := range cands {
		root := find(i)
		clusters[root] = append(clusters[root], i)
	}

	out := config
	out.EnumGrouping = make(map[string]string, len(config.EnumGrouping))
	for col, domain := range config.EnumGrouping {
		out.EnumGrouping[col] = domain
	}

	domainColumns := s.enumNameToColumns()
	for _, members := range clusters {
		if len(members) < 2 {
			continue
		}
		// Deterministic target: the lexicographically smallest member name.
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, cands[m].name)
		}
		sort.Strings(names)
		target := names[0]
		for _, m := range members {
			if cands[m].name == target {
				continue
			}
			if cands[m].column {
				out.EnumGrouping[cands[m].name] = target
			} else {
				// An existing domain folded into the cluster: route the
				// features bound to it toward the shared name.
				for _, col := range domainColumns[cands[m].name] {
					out.EnumGrouping[col] = target
				}
			}
		}
	}
	return out, nil
}

// enumNameToColumns maps each domain name to the features currently bound to
// it, in schema order.
func (s *Schema) enumNameToColumns() map[string][]string {
	m := make(map[string][]string)
	for _, f := range s.features {
		if f.Domain != "" {
			m[f.Domain] = append(m[f.Domain], f.Name)
		}
	}
	return m
}

func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for v := range a {
		if b[v] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}
