package mock

import (
	"sort"
	"strconv"

	"github.com/brianvoe/gofakeit/v6"

	"drift-scan/internal/stats"
)

// Options controls the synthetic snapshot.
type Options struct {
	Rows int
	Seed int64
	Name string
}

func (o Options) rows() int {
	if o.Rows <= 0 {
		return 1000
	}
	return o.Rows
}

// column recipe: a name plus a sampler. missingRate is the share of rows in
// which the column is absent.
type recipe struct {
	name        string
	basicType   string
	missingRate float64
	sample      func(f *gofakeit.Faker) string
}

var recipes = []recipe{
	{name: "user_id", basicType: stats.TypeInt, sample: func(f *gofakeit.Faker) string {
		return strconv.Itoa(f.Number(1, 1_000_000))
	}},
	{name: "email", basicType: stats.TypeString, missingRate: 0.02, sample: func(f *gofakeit.Faker) string {
		return f.Email()
	}},
	{name: "color", basicType: stats.TypeString, sample: func(f *gofakeit.Faker) string {
		return f.SafeColor()
	}},
	{name: "status", basicType: stats.TypeString, sample: func(f *gofakeit.Faker) string {
		return f.RandomString([]string{"active", "inactive", "pending", "banned"})
	}},
	{name: "country", basicType: stats.TypeString, missingRate: 0.05, sample: func(f *gofakeit.Faker) string {
		return f.CountryAbr()
	}},
	{name: "amount", basicType: stats.TypeFloat, sample: func(f *gofakeit.Faker) string {
		return strconv.FormatFloat(f.Price(0.99, 999.99), 'f', 2, 64)
	}},
	{name: "age", basicType: stats.TypeInt, missingRate: 0.1, sample: func(f *gofakeit.Faker) string {
		return strconv.Itoa(f.Number(18, 90))
	}},
}

// Generate produces a synthetic statistics snapshot by actually sampling each
// recipe Rows times and tallying, so presence fractions and top-K counts look
// like real profiler output.
func Generate(opts Options) *stats.DatasetStats {
	f := gofakeit.New(opts.Seed)
	n := opts.rows()

	name := opts.Name
	if name == "" {
		name = "mock"
	}
	ds := &stats.DatasetStats{Name: name, NumExamples: int64(n)}

	for _, r := range recipes {
		counts := make(map[string]int64)
		var present, missing int64
		for i := 0; i < n; i++ {
			if r.missingRate > 0 && f.Float64Range(0, 1) < r.missingRate {
				missing++
				continue
			}
			present++
			counts[r.sample(f)]++
		}

		fs := stats.FeatureStats{
			Name:         r.name,
			TypeCounts:   map[string]int64{r.basicType: present},
			Count:        present,
			MissingCount: missing,
			Distinct:     int64(len(counts)),
			TopValues:    topValues(counts, 20),
			NotNull:      r.missingRate == 0,
		}
		if r.basicType == stats.TypeString && len(counts) <= 64 {
			fs.UniqueValues = sortedKeys(counts)
		}
		ds.Features = append(ds.Features, fs)
	}
	return ds
}

func topValues(counts map[string]int64, k int) []stats.ValueCount {
	out := make([]stats.ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, stats.ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})
	if len(out) > k {
		out = out[:k]
	}
	return out
}

func sortedKeys(m map[string]int64) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
