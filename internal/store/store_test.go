package store

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSolveEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	questions := []string{"What is 2 + 3?", "What is 12 - 4?", "What is 1/2 of 8?"}
	for i, q := range questions {
		err := repo.AppendSolve(ctx, SolveEventData{
			RequestID:  "req-" + string(rune('a'+i)),
			Question:   q,
			Grade:      2,
			Topic:      "addition",
			Answer:     "5",
			SolverUsed: "deterministic",
			DurationMs: 3,
		})
		if err != nil {
			t.Fatalf("append solve %d: %v", i, err)
		}
	}

	events, err := repo.RecentSolves(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent solves: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].Question != "What is 1/2 of 8?" {
		t.Errorf("events[0].Question = %q, want the last appended", events[0].Question)
	}
	if events[0].Sequence <= events[1].Sequence {
		t.Errorf("sequences not descending: %d then %d", events[0].Sequence, events[1].Sequence)
	}

	// Field roundtrip.
	last := events[2]
	if last.RequestID != "req-a" {
		t.Errorf("RequestID = %q, want %q", last.RequestID, "req-a")
	}
	if last.Grade != 2 {
		t.Errorf("Grade = %d, want 2", last.Grade)
	}
	if last.SolverUsed != "deterministic" {
		t.Errorf("SolverUsed = %q, want %q", last.SolverUsed, "deterministic")
	}
	if last.DurationMs != 3 {
		t.Errorf("DurationMs = %d, want 3", last.DurationMs)
	}
}

func TestSolveEventQueryLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendSolve(ctx, SolveEventData{
			RequestID:  "req",
			Question:   "What is 1 + 1?",
			Grade:      1,
			Topic:      "addition",
			Answer:     "2",
			SolverUsed: "deterministic",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentSolves(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent solves: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d events, want 2", len(events))
	}
}

func TestSolveTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	kinds := []string{"deterministic", "deterministic", "word_problem", "unsupported"}
	for i, kind := range kinds {
		err := repo.AppendSolve(ctx, SolveEventData{
			RequestID:  "req",
			Question:   "q",
			Grade:      1,
			Topic:      "addition",
			Answer:     "1",
			SolverUsed: kind,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	totals, err := repo.SolveTotals(ctx)
	if err != nil {
		t.Fatalf("solve totals: %v", err)
	}

	byKind := make(map[string]int)
	for _, tot := range totals {
		byKind[tot.SolverUsed] = tot.Count
	}
	if byKind["deterministic"] != 2 {
		t.Errorf("deterministic = %d, want 2", byKind["deterministic"])
	}
	if byKind["word_problem"] != 1 {
		t.Errorf("word_problem = %d, want 1", byKind["word_problem"])
	}
	if byKind["unsupported"] != 1 {
		t.Errorf("unsupported = %d, want 1", byKind["unsupported"])
	}
}

func TestTopicsSeen(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	topics := []string{"fractions", "addition", "fractions", "geometry"}
	for i, topic := range topics {
		err := repo.AppendSolve(ctx, SolveEventData{
			RequestID:  "req",
			Question:   "q",
			Grade:      3,
			Topic:      topic,
			Answer:     "1",
			SolverUsed: "deterministic",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	seen, err := repo.TopicsSeen(ctx)
	if err != nil {
		t.Fatalf("topics seen: %v", err)
	}
	want := []string{"addition", "fractions", "geometry"}
	if len(seen) != len(want) {
		t.Fatalf("got %d topics, want %d: %v", len(seen), len(want), seen)
	}
	for i, topic := range want {
		if seen[i] != topic {
			t.Errorf("seen[%d] = %q, want %q", i, seen[i], topic)
		}
	}
}

func TestSolverFaultAppendAndCount(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	n, err := repo.FaultCount(ctx)
	if err != nil {
		t.Fatalf("fault count (empty): %v", err)
	}
	if n != 0 {
		t.Errorf("fault count = %d, want 0", n)
	}

	err = repo.AppendSolverFault(ctx, SolverFaultEventData{
		SolverName: "fractions",
		Question:   "What is 1/0 of 8?",
		PanicText:  "runtime error: integer divide by zero",
	})
	if err != nil {
		t.Fatalf("append fault: %v", err)
	}

	n, err = repo.FaultCount(ctx)
	if err != nil {
		t.Fatalf("fault count: %v", err)
	}
	if n != 1 {
		t.Errorf("fault count = %d, want 1", n)
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	requests := []LLMRequestEventData{
		{Provider: "mock", Model: "mock-model", Purpose: "similar-question", InputTokens: 100, OutputTokens: 40, LatencyMs: 200, Success: true},
		{Provider: "mock", Model: "mock-model", Purpose: "similar-question", InputTokens: 120, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "mock", Model: "other-model", Purpose: "unknown", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: false, ErrorMessage: "timeout"},
	}
	for i, req := range requests {
		if err := repo.AppendLLMRequest(ctx, req); err != nil {
			t.Fatalf("append LLM request %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	purposes := make(map[string]LLMPurposeUsage)
	for _, u := range byPurpose {
		purposes[u.Purpose] = u
	}
	similar := purposes["similar-question"]
	if similar.Calls != 2 {
		t.Errorf("similar-question calls = %d, want 2", similar.Calls)
	}
	if similar.InputTokens != 220 {
		t.Errorf("similar-question input tokens = %d, want 220", similar.InputTokens)
	}
	if similar.OutputTokens != 90 {
		t.Errorf("similar-question output tokens = %d, want 90", similar.OutputTokens)
	}
	if similar.AvgLatencyMs != 300 {
		t.Errorf("similar-question avg latency = %v, want 300", similar.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 {
		t.Errorf("got %d models, want 2", len(byModel))
	}
}

func TestRecentLLMRequests(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			RequestID: fmt.Sprintf("req-%d", i),
			Provider:  "mock",
			Model:     "mock-model",
			Purpose:   "similar-question",
			Success:   true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.RecentLLMRequests(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Newest first.
	if events[0].RequestID != "req-2" || events[1].RequestID != "req-1" {
		t.Errorf("got order %s, %s; want req-2, req-1", events[0].RequestID, events[1].RequestID)
	}
}

func TestGetLLMRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "req-a",
		Provider:     "mock",
		Model:        "mock-model",
		Purpose:      "similar-question",
		RequestBody:  "[user]\nmake one",
		ResponseBody: `{"question_text":"What is 2 + 3?"}`,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.RecentLLMRequests(ctx, QueryOpts{Limit: 1})
	if err != nil || len(events) != 1 {
		t.Fatalf("recent: %v (%d events)", err, len(events))
	}

	got, err := repo.GetLLMRequest(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected event")
	}
	if got.RequestBody == "" || got.ResponseBody == "" {
		t.Error("bodies should round-trip")
	}

	missing, err := repo.GetLLMRequest(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown id")
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	// No snapshot yet.
	snap, err := repo.Latest(ctx, "bank_run")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	// Save a snapshot. Sequence and timestamp are assigned on save.
	saved := &Snapshot{
		Kind: "bank_run",
		Data: map[string]any{"source": "bank.json", "total": float64(12)},
	}
	if err := repo.Save(ctx, saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	if saved.Sequence == 0 {
		t.Error("expected sequence to be assigned on save")
	}
	if saved.Timestamp.IsZero() {
		t.Error("expected timestamp to be assigned on save")
	}

	// Retrieve it.
	snap, err = repo.Latest(ctx, "bank_run")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Kind != "bank_run" {
		t.Errorf("kind = %q, want %q", snap.Kind, "bank_run")
	}
	if snap.Data["source"] != "bank.json" {
		t.Errorf("data.source = %v, want %q", snap.Data["source"], "bank.json")
	}
	if snap.Data["total"] != float64(12) {
		t.Errorf("data.total = %v, want 12", snap.Data["total"])
	}
}

func TestSnapshotLatestIgnoresOtherKinds(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Snapshot{Kind: "bank_run", Data: map[string]any{"v": "1"}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err := repo.Latest(ctx, "other_kind")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap != nil {
		t.Errorf("expected nil for kind with no snapshots, got %+v", snap)
	}
}

func TestSnapshotLatestReturnsNewest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind:      "bank_run",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"run": float64(i + 1)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	snap, err := repo.Latest(ctx, "bank_run")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data["run"] != float64(3) {
		t.Errorf("data.run = %v, want 3", snap.Data["run"])
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind:      "bank_run",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"run": float64(i + 1)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune to keep 5.
	if err := repo.Prune(ctx, "bank_run", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	// Latest should still be the newest run.
	snap, err := repo.Latest(ctx, "bank_run")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Data["run"] != float64(7) {
		t.Errorf("latest data.run = %v, want 7", snap.Data["run"])
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind:      "bank_run",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"run": float64(i + 1)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, "bank_run", 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func TestSnapshotPruneLeavesOtherKinds(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 3; i++ {
		err := repo.Save(ctx, &Snapshot{
			Kind:      "bank_run",
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      map[string]any{"run": float64(i + 1)},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}
	err := repo.Save(ctx, &Snapshot{Kind: "other_kind", Data: map[string]any{"v": "1"}})
	if err != nil {
		t.Fatalf("save other kind: %v", err)
	}

	if err := repo.Prune(ctx, "bank_run", 1); err != nil {
		t.Fatalf("prune: %v", err)
	}

	other, err := repo.Latest(ctx, "other_kind")
	if err != nil {
		t.Fatalf("latest other kind: %v", err)
	}
	if other == nil {
		t.Error("prune of bank_run should not delete other kinds")
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSolve(ctx, SolveEventData{
		RequestID: "req", Question: "q", Grade: 1, Topic: "addition",
		Answer: "1", SolverUsed: "deterministic",
	})
	if err != nil {
		t.Fatalf("append solve: %v", err)
	}
	err = repo.AppendSolverFault(ctx, SolverFaultEventData{
		SolverName: "patterns", Question: "q",
	})
	if err != nil {
		t.Fatalf("append fault: %v", err)
	}

	solves, err := repo.RecentSolves(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("recent solves: %v", err)
	}
	fault, err := s.Client().SolverFaultEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query fault: %v", err)
	}
	if fault.Sequence <= solves[0].Sequence {
		t.Errorf("fault sequence %d should follow solve sequence %d",
			fault.Sequence, solves[0].Sequence)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"solve_events", "snapshots"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Fatalf("query sqlite_master for %s: %v", table, err)
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
