package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"drift-scan/internal/mock"
	"drift-scan/internal/stats"
)

var (
	mockOut  string
	mockRows int
	mockSeed int64
)

var mockCmd = &cobra.Command{
	Use:   "mock",
	Short: "Generate a synthetic statistics snapshot",
	Long: `Generates a statistics snapshot from synthetic data (emails, colors,
statuses, amounts) for trying out infer/validate without a database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot := mock.Generate(mock.Options{Rows: mockRows, Seed: mockSeed})
		if err := stats.Save(mockOut, snapshot); err != nil {
			return err
		}
		fmt.Printf("Synthetic snapshot (%d columns, %d examples) written to %s\n",
			len(snapshot.Features), snapshot.NumExamples, mockOut)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(mockCmd)

	mockCmd.Flags().StringVarP(&mockOut, "out", "o", "stats.yaml", "Output snapshot file")
	mockCmd.Flags().IntVar(&mockRows, "rows", 1000, "Number of synthetic examples")
	mockCmd.Flags().Int64Var(&mockSeed, "seed", 0, "Random seed (0 = nondeterministic)")
}
