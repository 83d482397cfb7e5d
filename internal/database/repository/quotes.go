package repository

import (
	"context"
	"database/sql"
)

// QuoteRepo handles quotes.
type QuoteRepo struct {
	db DBTX
}

func NewQuoteRepo(db DBTX) *QuoteRepo { return &QuoteRepo{db: db} }

func (r *QuoteRepo) Insert(ctx context.Context, q Quote) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO quotes(number, ref, to_name, issue_date, amount, status, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		q.Number, q.Ref, q.To, q.Date, q.AmountCents, q.Status)
	return err
}

// List returns quotes in insertion order.
func (r *QuoteRepo) List(ctx context.Context) ([]Quote, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT number, ref, to_name, issue_date, amount, status, created_at, updated_at FROM quotes ORDER BY rowid`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// GetByNumber returns nil when no quote has the given number.
func (r *QuoteRepo) GetByNumber(ctx context.Context, number string) (*Quote, error) {
	row := r.db.QueryRowContext(ctx, `SELECT number, ref, to_name, issue_date, amount, status, created_at, updated_at FROM quotes WHERE number = ?`, number)
	q, err := scanQuote(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *QuoteRepo) UpdateStatus(ctx context.Context, number string, status QuoteStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE quotes SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE number = ?`, status, number)
	return err
}

func scanQuote(row scanner) (Quote, error) {
	var q Quote
	if err := row.Scan(&q.Number, &q.Ref, &q.To, &q.Date, &q.AmountCents, &q.Status, &q.CreatedAt, &q.UpdatedAt); err != nil {
		return Quote{}, err
	}
	return q, nil
}
