package repository

import (
	"context"
	"database/sql"
)

// ContactRepo handles contacts.
type ContactRepo struct {
	db DBTX
}

func NewContactRepo(db DBTX) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Insert(ctx context.Context, c Contact) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO contacts(id, name, email, phone, created_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP);
	`,
		c.ID, c.Name, c.Email, c.Phone)
	return err
}

func (r *ContactRepo) List(ctx context.Context) ([]Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, email, phone, created_at FROM contacts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		var c Contact
		var email, phone sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &email, &phone, &c.CreatedAt); err != nil {
			return nil, err
		}
		if email.Valid {
			c.Email = &email.String
		}
		if phone.Valid {
			c.Phone = &phone.String
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
