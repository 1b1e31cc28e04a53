package collect

import (
	"strings"
	"testing"

	"drift-scan/internal/stats"
)

func TestCounterTopOrdering(t *testing.T) {
	c := newCounter(100)
	for i := 0; i < 5; i++ {
		c.add("red")
	}
	for i := 0; i < 3; i++ {
		c.add("blue")
	}
	c.add("green")

	top := c.top(2)
	if len(top) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(top))
	}
	if top[0].Value != "red" || top[0].Count != 5 {
		t.Errorf("Expected red x5 first, got %s x%d", top[0].Value, top[0].Count)
	}
	if top[1].Value != "blue" {
		t.Errorf("Expected blue second, got %s", top[1].Value)
	}
	if c.distinct() != 3 || !c.exact() {
		t.Errorf("Expected exact distinct=3, got %d (exact=%v)", c.distinct(), c.exact())
	}
}

func TestCounterFoldsLargeValues(t *testing.T) {
	c := newCounter(100)
	c.add(strings.Repeat("x", largeValueThreshold+1))
	c.add(strings.Repeat("y", largeValueThreshold+10))

	if c.distinct() != 1 {
		t.Errorf("Expected large values to fold into one token, got %d distinct", c.distinct())
	}
	if c.top(1)[0].Value != stats.LargeValueToken {
		t.Errorf("Expected the large-value token, got %q", c.top(1)[0].Value)
	}
}

func TestCounterDecaysPastBudget(t *testing.T) {
	c := newCounter(2)
	for i := 0; i < 10; i++ {
		c.add("heavy")
	}
	c.add("light1")
	c.add("light2")

	if c.exact() {
		t.Error("Expected eviction past the budget")
	}
	if c.counts["heavy"] == 0 {
		t.Error("The heavy hitter must survive the decay")
	}
}

func TestCounterDeterministicTieBreak(t *testing.T) {
	c := newCounter(100)
	c.add("b")
	c.add("a")

	top := c.top(2)
	if top[0].Value != "a" || top[1].Value != "b" {
		t.Errorf("Expected alphabetical tie break, got %v", top)
	}
}
