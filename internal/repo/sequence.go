package repo

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type SequenceRepo struct {
	base
}

func NewSequenceRepo(db *sqlx.DB) *SequenceRepo {
	return &SequenceRepo{base: newBase(db)}
}

// NextValue atomically increments and returns the per-collection counter.
// The increment happens in a single upsert statement, so concurrent
// callers never observe the same value, and it runs on the ambient
// transaction: a rollback also rolls the counter back.
func (r *SequenceRepo) NextValue(ctx context.Context, collection string) (int64, error) {
	query, args := r.qb.Insert("counters").
		Columns("name", "value").
		Values(collection, 1).
		Suffix("ON CONFLICT (name) DO UPDATE SET value = counters.value + 1 RETURNING value").
		MustSql()

	var value int64
	if err := r.getContext(ctx, &value, query, args...); err != nil {
		return 0, fmt.Errorf("failed to increment counter %q: %w", collection, err)
	}
	return value, nil
}
