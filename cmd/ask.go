package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/curriculum"
	"github.com/kaisuddinahmed/mymath/internal/store"
	"github.com/kaisuddinahmed/mymath/internal/tui"
)

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Interactive session: type questions, see exact answers",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		curriculumName, _ := cmd.Flags().GetString("curriculum")
		return launchAsk(cmd, grade, curriculumName)
	},
}

func init() {
	askCmd.Flags().IntP("grade", "g", defaultGrade, "Grade level (1-5)")
	askCmd.Flags().String("curriculum", "", "Curriculum for class notes (default nctb)")
}

// launchAsk opens the store and starts the interactive session. Also the
// entry point for a bare `mymath`.
func launchAsk(cmd *cobra.Command, grade int, curriculumName string) error {
	if err := checkGrade(grade); err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	policy := curriculum.Resolve(curriculumName, grade)
	return tui.Run(grade, policy, st.EventRepo(), st.SnapshotRepo())
}
