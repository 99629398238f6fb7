package store

import (
	"context"
	"fmt"

	"github.com/kaisuddinahmed/mymath/ent"
	"github.com/kaisuddinahmed/mymath/ent/solveevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSolve(ctx context.Context, data SolveEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SolveEvent.Create().
		SetSequence(seqNum).
		SetRequestID(data.RequestID).
		SetQuestion(data.Question).
		SetGrade(data.Grade).
		SetTopic(data.Topic).
		SetAnswer(data.Answer).
		SetSolverUsed(data.SolverUsed).
		SetIsAboveGrade(data.IsAboveGrade).
		SetDurationMs(data.DurationMs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save solve event: %w", err)
	}

	return nil
}

func (r *eventRepo) RecentSolves(ctx context.Context, opts QueryOpts) ([]*SolveEvent, error) {
	q := r.client.SolveEvent.Query()
	if opts.After > 0 {
		q = q.Where(solveevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		q = q.Where(solveevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		q = q.Where(solveevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		q = q.Where(solveevent.TimestampLTE(opts.To))
	}
	q = q.Order(ent.Desc(solveevent.FieldSequence))
	if opts.Limit > 0 {
		q = q.Limit(opts.Limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query solve events: %w", err)
	}

	events := make([]*SolveEvent, len(rows))
	for i, row := range rows {
		events[i] = &SolveEvent{
			ID:        row.ID,
			Sequence:  row.Sequence,
			Timestamp: row.Timestamp,
			SolveEventData: SolveEventData{
				RequestID:    row.RequestID,
				Question:     row.Question,
				Grade:        row.Grade,
				Topic:        row.Topic,
				Answer:       row.Answer,
				SolverUsed:   row.SolverUsed,
				IsAboveGrade: row.IsAboveGrade,
				DurationMs:   row.DurationMs,
			},
		}
	}
	return events, nil
}

func (r *eventRepo) SolveTotals(ctx context.Context) ([]SolveTotal, error) {
	var totals []SolveTotal
	err := r.client.SolveEvent.Query().
		GroupBy(solveevent.FieldSolverUsed).
		Aggregate(ent.Count()).
		Scan(ctx, &totals)
	if err != nil {
		return nil, fmt.Errorf("aggregate solve totals: %w", err)
	}
	return totals, nil
}

func (r *eventRepo) TopicsSeen(ctx context.Context) ([]string, error) {
	topics, err := r.client.SolveEvent.Query().
		Unique(true).
		Order(ent.Asc(solveevent.FieldTopic)).
		Select(solveevent.FieldTopic).
		Strings(ctx)
	if err != nil {
		return nil, fmt.Errorf("query topics seen: %w", err)
	}
	return topics, nil
}
