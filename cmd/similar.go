package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/llm"
	"github.com/kaisuddinahmed/mymath/internal/similar"
	"github.com/kaisuddinahmed/mymath/internal/store"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

var similarCmd = &cobra.Command{
	Use:   "similar <question>",
	Short: "Generate a similar practice question (needs an LLM provider)",
	Long: `Generate one practice question similar to the given one.

The generated question is validated before display: it must parse cleanly
and the solve engine must be able to answer it exactly. The engine's own
answer is printed next to the question so an adult can check the work.`,
	Args: cobra.ExactArgs(1),
	RunE: runSimilar,
}

func init() {
	similarCmd.Flags().IntP("grade", "g", defaultGrade, "Grade level (1-5)")
}

func runSimilar(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	grade, _ := cmd.Flags().GetInt("grade")
	if err := checkGrade(grade); err != nil {
		return err
	}
	question := strings.TrimSpace(args[0])
	if question == "" {
		return fmt.Errorf("question is empty")
	}

	// The store records LLM request events; the generator works the same
	// without it, so a broken database only costs telemetry.
	var events store.EventRepo
	if dbPath, err := resolveDBPath(cmd); err == nil {
		if st, err := store.Open(dbPath); err == nil {
			defer st.Close()
			events = st.EventRepo()
		}
	}

	provider, err := llm.NewProviderFromEnv(ctx, events)
	if err != nil {
		return fmt.Errorf("LLM provider: %w", err)
	}

	// Resolve the original first so the prompt carries its topic.
	original := engine.Solve(engine.Question{Text: question, Grade: grade})

	gen := similar.New(provider, similar.DefaultConfig())
	q, err := gen.Generate(ctx, similar.GenerateInput{
		Original: question,
		Topic:    original.Topic,
		Grade:    grade,
	})
	if err != nil {
		return fmt.Errorf("generate similar question: %w", err)
	}

	fmt.Printf("Original: %s\n", question)
	fmt.Printf("  topic %s · answer %s\n\n", topicgraph.DisplayName(original.Topic), original.Answer)
	fmt.Printf("Try this one:\n  %s\n\n", q.Text)
	fmt.Printf("  topic %s · answer %s (%s)\n", topicgraph.DisplayName(q.Topic), q.Answer, q.SolverUsed)
	return nil
}
