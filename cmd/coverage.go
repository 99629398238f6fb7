package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var coverageCmd = &cobra.Command{
	Use:   "coverage",
	Short: "Report which topics resolve without AI assistance",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		report := engine.Coverage()

		if asJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(report)
		}

		fmt.Printf("Solver coverage: %d/%d topics (%d%%)\n\n",
			report.SolverReadyCount, report.TotalTopics, report.CoveragePct)

		for _, tc := range report.Topics {
			mark := "✓"
			if !tc.SolverReady {
				mark = "·"
			}
			fmt.Printf("  %s  grade %d  %s\n", mark, tc.MinGrade, topicgraph.DisplayName(tc.Topic))
		}

		if report.SolverReadyCount < report.TotalTopics {
			fmt.Println("\n· = answered by the AI assistant, not an exact rule")
		}
		if report.SolverReadyCount == report.TotalTopics {
			fmt.Println(strings.Repeat("─", 40))
			fmt.Println("Every topic has an exact rule module.")
		}
		return nil
	},
}

func init() {
	coverageCmd.Flags().Bool("json", false, "Print the report as JSON")
}
