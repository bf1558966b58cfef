package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Tamilselvan-ats/neet-sheet-z/ent"
	"github.com/Tamilselvan-ats/neet-sheet-z/ent/snapshot"
	"github.com/Tamilselvan-ats/neet-sheet-z/internal/tracker"
)

// snapshotsToKeep bounds how many historical state snapshots survive
// a save. Only the latest is ever read back.
const snapshotsToKeep = 20

// TrackerStateRepo persists full tracker state as snapshots. It
// implements tracker.Persister.
type TrackerStateRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

// Save stores the state as a new snapshot and prunes old ones.
func (r *TrackerStateRepo) Save(ctx context.Context, state tracker.State) error {
	dataMap, err := stateToMap(state)
	if err != nil {
		return fmt.Errorf("marshal tracker state: %w", err)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	ts := state.LastSync
	if ts.IsZero() {
		ts = time.Now()
	}

	_, err = r.client.Snapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(ts).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	return r.prune(ctx, snapshotsToKeep)
}

// Load returns the most recent state, or nil when none was saved yet.
func (r *TrackerStateRepo) Load(ctx context.Context) (*tracker.State, error) {
	s, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}

	b, err := json.Marshal(s.Data)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot data: %w", err)
	}
	var state tracker.State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("unmarshal tracker state: %w", err)
	}
	return &state, nil
}

// prune deletes all but the keep most recent snapshots.
func (r *TrackerStateRepo) prune(ctx context.Context, keep int) error {
	old, err := r.client.Snapshot.Query().
		Order(ent.Desc(snapshot.FieldSequence)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(old) == 0 {
		return nil
	}

	_, err = r.client.Snapshot.Delete().
		Where(snapshot.SequenceLTE(old[0].Sequence)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// stateToMap converts tracker state to map[string]any for ent JSON
// storage.
func stateToMap(state tracker.State) (map[string]any, error) {
	b, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
