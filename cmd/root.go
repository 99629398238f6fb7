package cmd

import (
	"github.com/kaisuddinahmed/mymath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mymath",
	Short: "Exact math answers for kids",
	Long: "MyMath — rule-based solver that answers primary-school math questions (grades 1-5)\n" +
		"exactly, with ordered steps and a smaller worked example. No guessing: if no rule\n" +
		"matches, it says so instead of inventing a number.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Bare `mymath` drops straight into the interactive session.
		return launchAsk(cmd, defaultGrade, "")
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MYMATH_DB env var)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(similarCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(coverageCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then MYMATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
