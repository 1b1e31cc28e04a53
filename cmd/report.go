package cmd

import (
	"fmt"

	"drift-scan/internal/schema"
)

// printAnomalies renders the per-column report with severity icons and
// returns the highest severity seen.
func printAnomalies(anomalies []schema.Anomaly) schema.Severity {
	worst := schema.SeverityNone
	for _, a := range anomalies {
		icon := "~"
		switch a.Severity {
		case schema.SeverityError:
			icon = "!"
		case schema.SeverityGrowth:
			icon = "+"
		}
		fmt.Printf("[%s] %-24s %s\n", icon, a.Column, a.Severity)
		for _, d := range a.Descriptions {
			fmt.Printf("    └ %s: %s\n", d.Type, d.Message)
		}
		if a.Severity > worst {
			worst = a.Severity
		}
	}
	return worst
}
