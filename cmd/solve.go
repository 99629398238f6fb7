package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/curriculum"
	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/store"
	"github.com/kaisuddinahmed/mymath/internal/topicgraph"
)

// defaultGrade is used when a command is run without --grade.
const defaultGrade = 3

var solveCmd = &cobra.Command{
	Use:   "solve <question>",
	Short: "Solve one question and print the answer with its steps",
	Args:  cobra.ExactArgs(1),
	RunE:  runSolve,
}

func init() {
	solveCmd.Flags().IntP("grade", "g", defaultGrade, "Grade level (1-5)")
	solveCmd.Flags().Bool("json", false, "Print the full result as JSON")
	solveCmd.Flags().String("curriculum", "", "Curriculum for the class note (default nctb)")
	solveCmd.Flags().Bool("record", false, "Record the solve in the local activity store")
}

// solveOutput is the JSON shape of one solved question.
type solveOutput struct {
	engine.SolveResult
	Review         engine.Review `json:"review"`
	CurriculumNote string        `json:"curriculum_note,omitempty"`
	DurationMs     int64         `json:"duration_ms"`
}

func runSolve(cmd *cobra.Command, args []string) error {
	grade, _ := cmd.Flags().GetInt("grade")
	asJSON, _ := cmd.Flags().GetBool("json")
	curriculumName, _ := cmd.Flags().GetString("curriculum")
	record, _ := cmd.Flags().GetBool("record")

	if err := checkGrade(grade); err != nil {
		return err
	}
	question := strings.TrimSpace(args[0])
	if question == "" {
		return fmt.Errorf("question is empty")
	}

	eng := engine.Default()
	var st *store.Store
	if record {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err = store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		// Recovered solver panics land in the store as well as on stderr.
		eng = engine.New(storeFaultSink{repo: st.EventRepo()})
	}

	start := time.Now()
	result := eng.Solve(engine.Question{Text: question, Grade: grade})
	elapsed := time.Since(start)

	policy := curriculum.Resolve(curriculumName, grade)
	note := curriculum.Advise(policy, curriculum.CheckFromResult(question, result))

	if record {
		err := st.EventRepo().AppendSolve(context.Background(), store.SolveEventData{
			RequestID:    uuid.New().String(),
			Question:     question,
			Grade:        grade,
			Topic:        string(result.Topic),
			Answer:       result.Answer,
			SolverUsed:   string(result.SolverUsed),
			IsAboveGrade: result.IsAboveGrade,
			DurationMs:   elapsed.Milliseconds(),
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, "warning: record solve:", err)
		}
	}

	if asJSON {
		out := solveOutput{
			SolveResult:    result,
			Review:         engine.ReviewFor(result),
			CurriculumNote: note,
			DurationMs:     elapsed.Milliseconds(),
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	printResult(question, result, note)
	return nil
}

func printResult(question string, r engine.SolveResult, note string) {
	fmt.Printf("Q: %s\n\n", question)
	fmt.Printf("Topic:   %s", topicgraph.DisplayName(r.Topic))
	if r.IsAboveGrade {
		fmt.Printf("  (usually grade %d+)", r.MinGradeForTopic)
	}
	fmt.Println()
	fmt.Printf("Answer:  %s\n", r.Answer)
	fmt.Printf("Solver:  %s\n", r.SolverUsed)

	if len(r.Steps) > 0 {
		fmt.Println()
		for i, s := range r.Steps {
			fmt.Printf("  %d. %s\n", i+1, s.Title)
			fmt.Printf("     %s\n", s.Text)
		}
	}
	if r.SmallerExample != "" {
		fmt.Printf("\nTry a smaller one: %s\n", r.SmallerExample)
	}
	fmt.Printf("\nRemember: %s\n", engine.ReviewFor(r).Concept)
	if note != "" {
		fmt.Printf("Class note: %s\n", note)
	}
}

// checkGrade validates the grade flag shared by solve, ask, similar
// and bank.
func checkGrade(grade int) error {
	if grade < 1 || grade > 5 {
		return fmt.Errorf("grade must be between 1 and 5, got %d", grade)
	}
	return nil
}
