package collect

import (
	"sort"

	"drift-scan/internal/stats"
)

// Strings longer than this are attributed to stats.LargeValueToken for top-K
// purposes; tracking arbitrary blobs as categorical values is useless.
const largeValueThreshold = 32

// counter keeps per-value counts with a bounded footprint, in the spirit of a
// Misra-Gries sketch: when the map outgrows its budget, all counts decay by
// the current minimum and zeroed entries are dropped. Counts are exact as
// long as the number of distinct values stays within the budget.
type counter struct {
	counts  map[string]int64
	budget  int
	evicted bool
}

func newCounter(budget int) *counter {
	if budget <= 0 {
		budget = 1024
	}
	return &counter{counts: make(map[string]int64), budget: budget}
}

func (c *counter) add(value string) {
	if len(value) > largeValueThreshold {
		value = stats.LargeValueToken
	}
	c.counts[value]++
	if len(c.counts) > c.budget {
		c.decay()
	}
}

func (c *counter) decay() {
	var min int64
	for _, n := range c.counts {
		if min == 0 || n < min {
			min = n
		}
	}
	for v, n := range c.counts {
		if n <= min {
			delete(c.counts, v)
		} else {
			c.counts[v] = n - min
		}
	}
	c.evicted = true
}

// top returns the k highest-count values, ordered by count descending and
// then by value for determinism.
func (c *counter) top(k int) []stats.ValueCount {
	out := make([]stats.ValueCount, 0, len(c.counts))
	for v, n := range c.counts {
		out = append(out, stats.ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if k > 0 && len(out) > k {
		out = out[:k]
	}
	return out
}

// distinct is the tracked distinct-value count. It is exact unless the
// counter had to evict, in which case it is a lower bound.
func (c *counter) distinct() int64 {
	return int64(len(c.counts))
}

// exact reports whether no eviction happened, i.e. the counter saw every
// distinct value.
func (c *counter) exact() bool {
	return !c.evicted
}

// values lists the tracked values in insertion-independent sorted order.
func (c *counter) values() []string {
	out := make([]string, 0, len(c.counts))
	for v := range c.counts {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
