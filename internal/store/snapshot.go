package store

import (
	"context"
	"fmt"
	"time"

	"github.com/kaisuddinahmed/mymath/ent"
	"github.com/kaisuddinahmed/mymath/ent/snapshot"
)

// snapshotRepo implements SnapshotRepo using the ent client.
type snapshotRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *snapshotRepo) Save(ctx context.Context, snap *Snapshot) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := snap.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	created, err := r.client.Snapshot.Create().
		SetKind(snap.Kind).
		SetSequence(seqNum).
		SetTimestamp(ts).
		SetData(snap.Data).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	snap.ID = created.ID
	snap.Sequence = seqNum
	snap.Timestamp = ts
	return nil
}

func (r *snapshotRepo) Latest(ctx context.Context, kind string) (*Snapshot, error) {
	s, err := r.client.Snapshot.Query().
		Where(snapshot.KindEQ(kind)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	return &Snapshot{
		ID:        s.ID,
		Kind:      s.Kind,
		Sequence:  s.Sequence,
		Timestamp: s.Timestamp,
		Data:      s.Data,
	}, nil
}

func (r *snapshotRepo) Prune(ctx context.Context, kind string, keep int) error {
	// Find the timestamp threshold: the Nth most recent snapshot of this kind.
	snapshots, err := r.client.Snapshot.Query().
		Where(snapshot.KindEQ(kind)).
		Order(ent.Desc(snapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(snapshots) == 0 {
		return nil // fewer than keep snapshots exist
	}

	threshold := snapshots[0].Timestamp
	_, err = r.client.Snapshot.Delete().
		Where(snapshot.KindEQ(kind), snapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}
