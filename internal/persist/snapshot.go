package persist

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/driftvale/server/internal/clock"
)

// SnapshotRepo persists the world clock as its plain three-integer triple.
// The stored values are trusted on restore; the engine re-derives nothing.
type SnapshotRepo struct {
	db      *DB
	worldID int32
}

func NewSnapshotRepo(db *DB, worldID int32) *SnapshotRepo {
	return &SnapshotRepo{db: db, worldID: worldID}
}

// Save upserts the current clock snapshot for this world.
func (r *SnapshotRepo) Save(ctx context.Context, tc clock.TickContext) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO world_clock (world_id, tick, hours, days, saved_at)
		 VALUES ($1, $2, $3, $4, now())
		 ON CONFLICT (world_id) DO UPDATE
		 SET tick = EXCLUDED.tick, hours = EXCLUDED.hours,
		     days = EXCLUDED.days, saved_at = now()`,
		r.worldID, tc.Tick, tc.Hours, tc.Days,
	)
	if err != nil {
		return fmt.Errorf("save clock snapshot: %w", err)
	}
	return nil
}

// Load returns the stored snapshot and whether one exists for this world.
func (r *SnapshotRepo) Load(ctx context.Context) (clock.TickContext, bool, error) {
	var tc clock.TickContext
	err := r.db.Pool.QueryRow(ctx,
		`SELECT tick, hours, days FROM world_clock WHERE world_id = $1`,
		r.worldID,
	).Scan(&tc.Tick, &tc.Hours, &tc.Days)
	if errors.Is(err, pgx.ErrNoRows) {
		return clock.TickContext{}, false, nil
	}
	if err != nil {
		return clock.TickContext{}, false, fmt.Errorf("load clock snapshot: %w", err)
	}
	return tc, true, nil
}
