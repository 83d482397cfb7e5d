package repository

import (
	"context"
	"database/sql"
)

// InvoiceRepo handles invoices.
type InvoiceRepo struct {
	db DBTX
}

func NewInvoiceRepo(db DBTX) *InvoiceRepo { return &InvoiceRepo{db: db} }

func (r *InvoiceRepo) Insert(ctx context.Context, inv Invoice) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO invoices(number, ref, to_name, issue_date, due_date, amount, status, quote_number, created_at, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`,
		inv.Number, inv.Ref, inv.To, inv.Date, inv.DueDate, inv.AmountCents, inv.Status, inv.QuoteNumber)
	return err
}

// List returns invoices in insertion order.
func (r *InvoiceRepo) List(ctx context.Context) ([]Invoice, error) {
	return r.list(ctx, `SELECT number, ref, to_name, issue_date, due_date, amount, status, quote_number, created_at, updated_at FROM invoices ORDER BY rowid`)
}

// ListByCustomer returns the counterparty's invoices in insertion order.
func (r *InvoiceRepo) ListByCustomer(ctx context.Context, customer string) ([]Invoice, error) {
	return r.list(ctx, `SELECT number, ref, to_name, issue_date, due_date, amount, status, quote_number, created_at, updated_at FROM invoices WHERE to_name = ? ORDER BY rowid`, customer)
}

func (r *InvoiceRepo) list(ctx context.Context, query string, args ...interface{}) ([]Invoice, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

// GetByNumber returns nil when no invoice has the given number.
func (r *InvoiceRepo) GetByNumber(ctx context.Context, number string) (*Invoice, error) {
	row := r.db.QueryRowContext(ctx, `SELECT number, ref, to_name, issue_date, due_date, amount, status, quote_number, created_at, updated_at FROM invoices WHERE number = ?`, number)
	inv, err := scanInvoice(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &inv, nil
}

func (r *InvoiceRepo) UpdateStatus(ctx context.Context, number string, status InvoiceStatus) error {
	_, err := r.db.ExecContext(ctx, `UPDATE invoices SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE number = ?`, status, number)
	return err
}

// Counterparties returns every distinct invoice counterparty name.
func (r *InvoiceRepo) Counterparties(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT to_name FROM invoices ORDER BY to_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	return out, rows.Err()
}

func scanInvoice(row scanner) (Invoice, error) {
	var inv Invoice
	var quoteNumber sql.NullString
	if err := row.Scan(&inv.Number, &inv.Ref, &inv.To, &inv.Date, &inv.DueDate, &inv.AmountCents, &inv.Status, &quoteNumber, &inv.CreatedAt, &inv.UpdatedAt); err != nil {
		return Invoice{}, err
	}
	if quoteNumber.Valid {
		inv.QuoteNumber = &quoteNumber.String
	}
	return inv, nil
}
