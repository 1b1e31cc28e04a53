package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"drift-scan/internal/schema"
	"drift-scan/internal/stats"
)

var (
	enumsStats  string
	enumsSchema string
	enumsOut    string
)

var relatedEnumsCmd = &cobra.Command{
	Use:   "related-enums",
	Short: "Propose an enum grouping for near-duplicate categorical columns",
	Long: `Clusters categorical columns (and existing domains) whose value sets are
near-duplicates and emits an enum_grouping map. Feed the result back through
the update.enum_grouping config key so a later infer/validate run merges the
duplicated domains.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := stats.Load(enumsStats)
		if err != nil {
			return err
		}

		var s schema.Schema
		if enumsSchema != "" {
			doc, err := schema.LoadDocument(enumsSchema)
			if err != nil {
				return err
			}
			if err := s.Init(doc); err != nil {
				return err
			}
		}

		proposed, err := s.RelatedEnums(snapshot, updateConfig())
		if err != nil {
			return err
		}

		if len(proposed.EnumGrouping) == 0 {
			fmt.Println("No related enum columns found")
			return nil
		}

		data, err := yaml.Marshal(map[string]interface{}{
			"update": map[string]interface{}{"enum_grouping": proposed.EnumGrouping},
		})
		if err != nil {
			return fmt.Errorf("failed to marshal grouping: %w", err)
		}

		if enumsOut != "" {
			if err := os.WriteFile(enumsOut, data, 0o644); err != nil {
				return fmt.Errorf("failed to write grouping file: %w", err)
			}
			fmt.Printf("Proposed grouping for %d columns written to %s\n", len(proposed.EnumGrouping), enumsOut)
			return nil
		}
		fmt.Print(string(data))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(relatedEnumsCmd)

	relatedEnumsCmd.Flags().StringVarP(&enumsStats, "stats", "s", "", "Statistics snapshot file (required)")
	relatedEnumsCmd.Flags().StringVar(&enumsSchema, "schema", "", "Existing schema file (optional)")
	relatedEnumsCmd.Flags().StringVarP(&enumsOut, "out", "o", "", "Write the grouping to a file instead of stdout")
	relatedEnumsCmd.MarkFlagRequired("stats")
}
