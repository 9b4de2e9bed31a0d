package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"vocadrill/ent"
	"vocadrill/ent/ledgersnapshot"
	"vocadrill/internal/progress"
)

// keepSnapshots is how many historical ledger rows survive pruning.
// Older rows exist only for recovery; the newest row is authoritative.
const keepSnapshots = 20

// ledgerRepo implements LedgerRepo using the ent client.
type ledgerRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *ledgerRepo) Save(ctx context.Context, p progress.UserProgress) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	dataMap, err := ledgerToMap(p)
	if err != nil {
		return fmt.Errorf("marshal ledger: %w", err)
	}

	_, err = r.client.LedgerSnapshot.Create().
		SetSequence(seqNum).
		SetTimestamp(time.Now().UTC()).
		SetData(dataMap).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save ledger snapshot: %w", err)
	}

	return r.prune(ctx, keepSnapshots)
}

func (r *ledgerRepo) Load(ctx context.Context) (progress.UserProgress, error) {
	row, err := r.client.LedgerSnapshot.Query().
		Order(ent.Desc(ledgersnapshot.FieldTimestamp)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return progress.Initial(), nil
		}
		return progress.UserProgress{}, fmt.Errorf("query latest ledger: %w", err)
	}

	p, ok := mapToLedger(row.Data)
	if !ok {
		// Unreadable content starts the learner fresh rather than
		// wedging the app on a corrupt row.
		return progress.Initial(), nil
	}
	return p, nil
}

// prune deletes all but the keep most recent snapshot rows.
func (r *ledgerRepo) prune(ctx context.Context, keep int) error {
	rows, err := r.client.LedgerSnapshot.Query().
		Order(ent.Desc(ledgersnapshot.FieldTimestamp)).
		Offset(keep).
		Limit(1).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query snapshots for prune: %w", err)
	}
	if len(rows) == 0 {
		return nil
	}

	threshold := rows[0].Timestamp
	_, err = r.client.LedgerSnapshot.Delete().
		Where(ledgersnapshot.TimestampLTE(threshold)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("prune snapshots: %w", err)
	}
	return nil
}

// ledgerToMap converts the ledger to map[string]any for ent JSON storage.
func ledgerToMap(p progress.UserProgress) (map[string]any, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// mapToLedger converts a stored JSON map back into a ledger value.
func mapToLedger(m map[string]any) (progress.UserProgress, bool) {
	b, err := json.Marshal(m)
	if err != nil {
		return progress.UserProgress{}, false
	}
	var p progress.UserProgress
	if err := json.Unmarshal(b, &p); err != nil {
		return progress.UserProgress{}, false
	}
	return p, true
}
