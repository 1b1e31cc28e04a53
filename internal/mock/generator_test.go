package mock

import (
	"testing"

	"drift-scan/internal/stats"
)

func TestGenerateShape(t *testing.T) {
	ds := Generate(Options{Rows: 200, Seed: 42})

	if ds.NumExamples != 200 {
		t.Errorf("Expected 200 examples, got %d", ds.NumExamples)
	}
	if len(ds.Features) != len(recipes) {
		t.Errorf("Expected %d columns, got %d", len(recipes), len(ds.Features))
	}

	for _, fs := range ds.Features {
		if fs.Count+fs.MissingCount != 200 {
			t.Errorf("Column %s: present+missing = %d, want 200", fs.Name, fs.Count+fs.MissingCount)
		}
		var tallied int64
		for _, n := range fs.TypeCounts {
			tallied += n
		}
		if tallied != fs.Count {
			t.Errorf("Column %s: type tally %d != present count %d", fs.Name, tallied, fs.Count)
		}
	}

	if uid := ds.Feature("user_id"); uid == nil || !uid.NotNull {
		t.Error("user_id never goes missing and should carry the NOT NULL hint")
	}
	if email := ds.Feature("email"); email == nil || email.NotNull {
		t.Error("email has a missing rate and must not claim NOT NULL")
	}
}

func TestGenerateCategoricalColumns(t *testing.T) {
	ds := Generate(Options{Rows: 500, Seed: 7})

	status := ds.Feature("status")
	if status == nil {
		t.Fatal("Expected a status column")
	}
	if status.Distinct < 2 || status.Distinct > 4 {
		t.Errorf("Expected 2..4 distinct statuses, got %d", status.Distinct)
	}
	if len(status.UniqueValues) == 0 {
		t.Error("Expected the small status set to carry an explicit unique list")
	}
	if status.DominantType() != stats.TypeString {
		t.Errorf("Expected STRING status, got %s", status.DominantType())
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	a := Generate(Options{Rows: 100, Seed: 9})
	b := Generate(Options{Rows: 100, Seed: 9})

	for i := range a.Features {
		if a.Features[i].Count != b.Features[i].Count {
			t.Errorf("Column %s: counts differ across equal seeds", a.Features[i].Name)
		}
	}
}
