package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/kaisuddinahmed/mymath/internal/engine"
	"github.com/kaisuddinahmed/mymath/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Run question bank files through the solver",
}

var bankRunCmd = &cobra.Command{
	Use:   "run <file.json>",
	Short: "Solve every question in a bank file and summarize",
	Long: `Solve every question in a JSON bank file.

The file is an array of cases: [{"question": "What is 34 + 27?", "grade": 2}, ...].
Cases without a grade use --grade. The run summary is saved as a snapshot in
the activity store so "mymath stats" can show the latest run.`,
	Args: cobra.ExactArgs(1),
	RunE: runBank,
}

func init() {
	bankRunCmd.Flags().StringP("out", "o", "", "Write per-question results to this JSON file")
	bankRunCmd.Flags().IntP("grade", "g", defaultGrade, "Grade for cases that do not declare one")

	bankCmd.AddCommand(bankRunCmd)
}

// bankCase is one entry of a bank file.
type bankCase struct {
	Question string `json:"question"`
	Grade    int    `json:"grade,omitempty"`
}

// bankResult is one solved entry of the results file.
type bankResult struct {
	Question     string `json:"question"`
	Grade        int    `json:"grade"`
	Topic        string `json:"topic"`
	Answer       string `json:"answer"`
	SolverUsed   string `json:"solver_used"`
	IsAboveGrade bool   `json:"is_above_grade"`
	DurationMs   int64  `json:"duration_ms"`
}

// bankRunDoc is the results file layout.
type bankRunDoc struct {
	Source    string         `json:"source"`
	RanAt     string         `json:"ran_at"`
	Total     int            `json:"total"`
	BySolver  map[string]int `json:"by_solver"`
	ElapsedMs int64          `json:"elapsed_ms"`
	Results   []bankResult   `json:"results"`
}

func runBank(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	fallbackGrade, _ := cmd.Flags().GetInt("grade")
	if err := checkGrade(fallbackGrade); err != nil {
		return err
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read bank file: %w", err)
	}
	var cases []bankCase
	if err := json.Unmarshal(raw, &cases); err != nil {
		return fmt.Errorf("parse bank file: %w", err)
	}
	if len(cases) == 0 {
		return fmt.Errorf("bank file %s has no cases", args[0])
	}

	// A broken database only costs the summary snapshot, not the run.
	var st *store.Store
	if dbPath, err := resolveDBPath(cmd); err == nil {
		if s, err := store.Open(dbPath); err == nil {
			st = s
			defer st.Close()
		} else {
			fmt.Fprintln(os.Stderr, "warning: open store:", err)
		}
	}

	eng := engine.Default()
	if st != nil {
		eng = engine.New(storeFaultSink{repo: st.EventRepo()})
	}

	doc := bankRunDoc{
		Source:   filepath.Base(args[0]),
		RanAt:    time.Now().Format(time.RFC3339),
		Total:    len(cases),
		BySolver: map[string]int{},
		Results:  make([]bankResult, 0, len(cases)),
	}

	runStart := time.Now()
	for i, c := range cases {
		grade := c.Grade
		if grade == 0 {
			grade = fallbackGrade
		}
		if err := checkGrade(grade); err != nil {
			return fmt.Errorf("case %d: %w", i+1, err)
		}

		start := time.Now()
		r := eng.Solve(engine.Question{Text: c.Question, Grade: grade})
		doc.BySolver[string(r.SolverUsed)]++
		doc.Results = append(doc.Results, bankResult{
			Question:     c.Question,
			Grade:        grade,
			Topic:        string(r.Topic),
			Answer:       r.Answer,
			SolverUsed:   string(r.SolverUsed),
			IsAboveGrade: r.IsAboveGrade,
			DurationMs:   time.Since(start).Milliseconds(),
		})
	}
	doc.ElapsedMs = time.Since(runStart).Milliseconds()

	printBankSummary(doc)

	if outPath != "" {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("encode results: %w", err)
		}
		if err := os.WriteFile(outPath, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("write results: %w", err)
		}
		fmt.Printf("\nResults written to %s\n", outPath)
	}

	if st != nil {
		saveBankSnapshot(st.SnapshotRepo(), doc)
	}
	return nil
}

func printBankSummary(doc bankRunDoc) {
	fmt.Printf("Ran %d questions from %s in %dms\n\n", doc.Total, doc.Source, doc.ElapsedMs)
	for _, kind := range []string{"deterministic", "word_problem", "unsupported"} {
		if n := doc.BySolver[kind]; n > 0 {
			fmt.Printf("  %-14s %d\n", kind, n)
		}
	}

	if doc.BySolver["unsupported"] > 0 {
		fmt.Println("\nNo exact rule for:")
		for _, r := range doc.Results {
			if r.SolverUsed == "unsupported" {
				fmt.Printf("  - %s\n", r.Question)
			}
		}
	}
}

// saveBankSnapshot persists the run summary (not the per-case results) and
// keeps only the most recent runs.
func saveBankSnapshot(snapshots store.SnapshotRepo, doc bankRunDoc) {
	ctx := context.Background()
	bySolver := make(map[string]any, len(doc.BySolver))
	for k, v := range doc.BySolver {
		bySolver[k] = v
	}
	err := snapshots.Save(ctx, &store.Snapshot{
		Kind: "bank_run",
		Data: map[string]any{
			"source":     doc.Source,
			"ran_at":     doc.RanAt,
			"total":      doc.Total,
			"by_solver":  bySolver,
			"elapsed_ms": doc.ElapsedMs,
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "warning: save bank snapshot:", err)
		return
	}
	if err := snapshots.Prune(ctx, "bank_run", 20); err != nil {
		fmt.Fprintln(os.Stderr, "warning: prune bank snapshots:", err)
	}
}
