package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSolverFault(ctx context.Context, data SolverFaultEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SolverFaultEvent.Create().
		SetSequence(seqNum).
		SetSolverName(data.SolverName).
		SetQuestion(data.Question).
		SetPanicText(data.PanicText).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save solver fault event: %w", err)
	}

	return nil
}

func (r *eventRepo) FaultCount(ctx context.Context) (int, error) {
	n, err := r.client.SolverFaultEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count solver faults: %w", err)
	}
	return n, nil
}
