package cmd

import (
	"fmt"
	"log"
	"time"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"drift-scan/internal/collect"
	"drift-scan/internal/dialect"
	"drift-scan/internal/stats"
)

var (
	collectTable  string
	collectSample int
	collectTopK   int
	collectOut    string
)

var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Profile a table into a statistics snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, config, schemaName, err := openDatabase()
		if err != nil {
			return err
		}
		defer db.Close()

		fmt.Printf("📡 Connected to %s (%s)\n", config.Name, config.Driver)

		d := dialect.GetDialect(config.Driver)
		log.Printf("Using Dialect: %s\n", config.Driver)

		// Fetch sample limit from Viper (Flag > Config > Default)
		sample := viper.GetInt("collect.sample_limit")
		if collectSample > 0 {
			sample = collectSample
		}

		log.Printf("Profiling table %s (sample limit: %d)...", collectTable, sample)
		start := time.Now()

		uiprogress.Start()
		// The column count is only known after introspection, so the bar
		// is sized on the first progress callback.
		var bar *uiprogress.Bar
		snapshot, err := collect.Profile(db, d, schemaName, collect.Options{
			Table:       collectTable,
			SampleLimit: sample,
			TopK:        collectTopK,
		}, func(done, total int) {
			if bar == nil {
				bar = uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
				bar.PrependFunc(func(b *uiprogress.Bar) string {
					return "Profiling: "
				})
			}
			bar.Set(done)
		})

		uiprogress.Stop()

		if err != nil {
			return err
		}

		if err := stats.Save(collectOut, snapshot); err != nil {
			return err
		}

		fmt.Println("\n📊 Snapshot Summary:")
		for i, fs := range snapshot.Features {
			fmt.Printf("[%02d] %-24s : %d present / %d missing, %d distinct (presence %s)\n",
				i+1, fs.Name, fs.Count, fs.MissingCount, fs.Distinct,
				collect.FormatShare(fs.Count, snapshot.NumExamples))
		}
		fmt.Println("--------------------------------------------------")
		fmt.Printf("Columns: %d, Examples: %d\n", len(snapshot.Features), snapshot.NumExamples)
		log.Printf("Snapshot written to %s. Time Elapsed: %s", collectOut, time.Since(start))

		return nil
	},
}

func init() {
	RootCmd.AddCommand(collectCmd)

	collectCmd.Flags().StringVarP(&collectTable, "table", "t", "", "Table to profile (required)")
	collectCmd.Flags().IntVar(&collectSample, "sample", 0, "Max rows scanned per column (overrides config)")
	collectCmd.Flags().IntVar(&collectTopK, "topk", 20, "Top values kept per column")
	collectCmd.Flags().StringVarP(&collectOut, "out", "o", "stats.yaml", "Output snapshot file")
	collectCmd.MarkFlagRequired("table")

	viper.BindPFlag("collect.sample_limit", collectCmd.Flags().Lookup("sample"))
	viper.SetDefault("collect.sample_limit", 100000)
}
