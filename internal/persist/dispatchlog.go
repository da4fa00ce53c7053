package persist

import (
	"context"
	"fmt"

	"github.com/driftvale/server/internal/sched"
)

// DispatchLogRepo appends one row per due system per action, so a run can
// be audited or replayed against the same registry.
type DispatchLogRepo struct {
	db      *DB
	worldID int32
}

func NewDispatchLogRepo(db *DB, worldID int32) *DispatchLogRepo {
	return &DispatchLogRepo{db: db, worldID: worldID}
}

// Append atomically writes the due set for one tick in a single
// transaction. A nil or empty due set writes nothing.
func (r *DispatchLogRepo) Append(ctx context.Context, tick int64, due []sched.Descriptor) error {
	if len(due) == 0 {
		return nil
	}
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("dispatch log begin: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, d := range due {
		if _, err := tx.Exec(ctx,
			`INSERT INTO dispatch_log (world_id, tick, system_id, cadence)
			 VALUES ($1, $2, $3, $4)`,
			r.worldID, tick, d.ID, string(d.Cadence),
		); err != nil {
			return fmt.Errorf("dispatch log insert: %w", err)
		}
	}

	return tx.Commit(ctx)
}
