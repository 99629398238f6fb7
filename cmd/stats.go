package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show activity statistics from the local store",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		repo := st.EventRepo()

		totals, err := repo.SolveTotals(ctx)
		if err != nil {
			return fmt.Errorf("query solve totals: %w", err)
		}

		if len(totals) == 0 {
			fmt.Println("No questions solved yet. Try: mymath solve \"What is 34 + 27?\" --record")
			return nil
		}

		fmt.Println("Questions solved")
		fmt.Println(strings.Repeat("─", 40))
		var total int
		for _, t := range totals {
			fmt.Printf("  %-14s %6d\n", t.SolverUsed, t.Count)
			total += t.Count
		}
		fmt.Println(strings.Repeat("─", 40))
		fmt.Printf("  %-14s %6d\n", "total", total)

		topics, err := repo.TopicsSeen(ctx)
		if err != nil {
			return fmt.Errorf("query topics: %w", err)
		}
		if len(topics) > 0 {
			fmt.Printf("\nTopics seen (%d): %s\n", len(topics), strings.Join(topics, ", "))
		}

		faults, err := repo.FaultCount(ctx)
		if err != nil {
			return fmt.Errorf("query faults: %w", err)
		}
		if faults > 0 {
			fmt.Printf("\nSolver faults recorded: %d\n", faults)
		}

		if snap, err := st.SnapshotRepo().Latest(ctx, "bank_run"); err == nil && snap != nil {
			fmt.Printf("\nLast bank run: %v questions from %v at %s\n",
				snap.Data["total"], snap.Data["source"],
				snap.Timestamp.Local().Format("2006-01-02 15:04"))
		}

		recent, err := repo.RecentSolves(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return fmt.Errorf("query recent solves: %w", err)
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent questions")
			fmt.Println(strings.Repeat("─", 72))
			for _, e := range recent {
				q := e.Question
				if len(q) > 44 {
					q = q[:41] + "..."
				}
				fmt.Printf("  %-16s  %-44s  %s\n",
					e.Timestamp.Local().Format("2006-01-02 15:04"), q, e.Topic)
			}
		}
		return nil
	},
}
