package repository

import (
	"context"
	"database/sql"
	"fmt"
)

// SequenceRepo allocates document numbers from per-kind monotonic
// counters. Counters only ever move forward, so a number is never
// reused even if deletion is ever added.
type SequenceRepo struct {
	db DBTX
}

func NewSequenceRepo(db DBTX) *SequenceRepo { return &SequenceRepo{db: db} }

// Next returns the current counter value for kind and advances it.
// Call it inside the same transaction as the insert that uses the
// number, so a rolled-back insert does not burn a gap silently.
func (r *SequenceRepo) Next(ctx context.Context, kind string) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT next_value FROM document_sequences WHERE kind = ?`, kind).Scan(&n)
	if err == sql.ErrNoRows {
		if _, err := r.db.ExecContext(ctx, `INSERT INTO document_sequences(kind, next_value) VALUES(?, 2)`, kind); err != nil {
			return 0, err
		}
		return 1, nil
	}
	if err != nil {
		return 0, err
	}
	if _, err := r.db.ExecContext(ctx, `UPDATE document_sequences SET next_value = ? WHERE kind = ?`, n+1, kind); err != nil {
		return 0, err
	}
	return n, nil
}

// Advance moves the counter for kind up to at least next. It never
// moves a counter backwards.
func (r *SequenceRepo) Advance(ctx context.Context, kind string, next int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE document_sequences SET next_value = ? WHERE kind = ? AND next_value < ?`, next, kind, next)
	if err != nil {
		return err
	}
	if _, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("advance %s sequence: %w", kind, err)
	}
	return nil
}
