package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"drift-scan/internal/schema"
	"drift-scan/internal/stats"
)

var (
	validateStats   string
	validateSchema  string
	validateColumns []string
	validateEnv     string
	validateUpdate  bool
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a statistics snapshot against a schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := stats.Load(validateStats)
		if err != nil {
			return err
		}
		doc, err := schema.LoadDocument(validateSchema)
		if err != nil {
			return err
		}
		var s schema.Schema
		if err := s.Init(doc); err != nil {
			return err
		}

		config := updateConfig()

		var anomalies []schema.Anomaly
		if len(validateColumns) > 0 {
			anomalies, err = s.UpdateColumns(snapshot, config, validateColumns)
		} else {
			anomalies, err = s.Update(snapshot, config)
		}
		if err != nil {
			return err
		}

		worst := schema.SeverityNone
		if len(anomalies) > 0 {
			fmt.Println("📊 Drift Report:")
			worst = printAnomalies(anomalies)
			fmt.Println("--------------------------------------------------")
		}

		// Missing-column detection only makes sense for whole-snapshot
		// checks; a subset run leaves the rest of the schema untouched.
		var missing []string
		if len(validateColumns) == 0 {
			missing = s.GetMissingColumns(validateEnv, snapshot)
			for _, name := range missing {
				fmt.Printf("[!] %-24s ERROR\n", name)
				fmt.Printf("    └ %s: required column %q has no statistics in this snapshot\n",
					schema.DescLowPresence, name)
			}
			if len(missing) > 0 {
				worst = schema.SeverityError
			}
		}

		if validateUpdate {
			if err := schema.SaveDocument(validateSchema, s.Document()); err != nil {
				return err
			}
			fmt.Printf("Updated schema written to %s\n", validateSchema)
		}

		if len(anomalies) == 0 && len(missing) == 0 {
			fmt.Println("✓ No drift detected")
			return nil
		}
		if worst >= schema.SeverityError {
			return fmt.Errorf("validation found error-level drift")
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(validateCmd)

	validateCmd.Flags().StringVarP(&validateStats, "stats", "s", "", "Statistics snapshot file (required)")
	validateCmd.Flags().StringVar(&validateSchema, "schema", "", "Schema file (required)")
	validateCmd.Flags().StringSliceVarP(&validateColumns, "columns", "c", []string{}, "Restrict the check to these columns")
	validateCmd.Flags().StringVarP(&validateEnv, "environment", "e", "", "Environment scope for missing-column checks (empty = all)")
	validateCmd.Flags().BoolVar(&validateUpdate, "update", false, "Write the healed schema back to the schema file")
	validateCmd.MarkFlagRequired("stats")
	validateCmd.MarkFlagRequired("schema")
}
