package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"drift-scan/internal/schema"
	"drift-scan/internal/stats"
)

var (
	inferStats  string
	inferSchema string
)

var inferCmd = &cobra.Command{
	Use:   "infer",
	Short: "Bootstrap or extend a schema from a statistics snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		snapshot, err := stats.Load(inferStats)
		if err != nil {
			return err
		}

		var s schema.Schema
		if _, err := os.Stat(inferSchema); err == nil {
			doc, err := schema.LoadDocument(inferSchema)
			if err != nil {
				return err
			}
			if err := s.Init(doc); err != nil {
				return err
			}
			log.Printf("Loaded existing schema from %s", inferSchema)
		}

		anomalies, err := s.Update(snapshot, updateConfig())
		if err != nil {
			return err
		}

		if len(anomalies) > 0 {
			fmt.Println("📊 Schema Changes:")
			printAnomalies(anomalies)
			fmt.Println("--------------------------------------------------")
		}

		doc := s.Document()
		if err := schema.SaveDocument(inferSchema, doc); err != nil {
			return err
		}
		fmt.Printf("Schema written to %s (%d features, %d domains)\n",
			inferSchema, len(doc.Features), len(doc.Domains))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(inferCmd)

	inferCmd.Flags().StringVarP(&inferStats, "stats", "s", "", "Statistics snapshot file (required)")
	inferCmd.Flags().StringVar(&inferSchema, "schema", "schema.yaml", "Schema file to create or extend")
	inferCmd.MarkFlagRequired("stats")
}
