package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List all topics with grade and prerequisites",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")

		report := engine.Coverage()

		fmt.Printf("%-20s  %5s  %-36s  %s\n", "Topic", "Grade", "Prerequisites", "Solver")
		fmt.Println(strings.Repeat("─", 75))

		shown := 0
		for _, tc := range report.Topics {
			if grade != 0 && tc.MinGrade != grade {
				continue
			}
			shown++

			prereqs := "-"
			if len(tc.Prerequisites) > 0 {
				names := make([]string, len(tc.Prerequisites))
				for i, p := range tc.Prerequisites {
					names[i] = string(p)
				}
				prereqs = strings.Join(names, ", ")
			}
			if len(prereqs) > 36 {
				prereqs = prereqs[:33] + "..."
			}

			ready := "exact"
			if !tc.SolverReady {
				ready = "AI only"
			}

			fmt.Printf("%-20s  %5d  %-36s  %s\n",
				topicgraph.DisplayName(tc.Topic), tc.MinGrade, prereqs, ready)
		}

		if grade != 0 && shown == 0 {
			return fmt.Errorf("no topics found for grade %d", grade)
		}
		fmt.Printf("\n%d topics\n", shown)
		return nil
	},
}

func init() {
	topicsCmd.Flags().Int("grade", 0, "Only show topics introduced in this grade")
}
