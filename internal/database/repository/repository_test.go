package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/wessels/haulboard/internal/database"
	"github.com/wessels/haulboard/internal/database/repository"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db, migrations))
	return db
}

func TestQuoteRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewQuoteRepo(db)

	q := repository.Quote{
		Number:      "QT-00001",
		Ref:         "K0M0QGCRR",
		To:          "Ab-Inbev Namibia (Pty) Ltd",
		Date:        time.Date(2024, time.October, 23, 0, 0, 0, 0, time.UTC),
		AmountCents: 1850000,
		Status:      repository.QuoteStatusPending,
	}
	require.NoError(t, repo.Insert(ctx, q))

	got, err := repo.GetByNumber(ctx, "QT-00001")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, q.Ref, got.Ref)
	require.Equal(t, q.To, got.To)
	require.Equal(t, q.AmountCents, got.AmountCents)
	require.Equal(t, repository.QuoteStatusPending, got.Status)

	require.NoError(t, repo.UpdateStatus(ctx, "QT-00001", repository.QuoteStatusAccepted))
	got, err = repo.GetByNumber(ctx, "QT-00001")
	require.NoError(t, err)
	require.Equal(t, repository.QuoteStatusAccepted, got.Status)

	missing, err := repo.GetByNumber(ctx, "QT-99999")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestInvoiceListInsertionOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewInvoiceRepo(db)

	day := time.Date(2024, time.October, 17, 0, 0, 0, 0, time.UTC)
	for i, number := range []string{"INL-00001", "INL-00002", "INL-00003"} {
		inv := repository.Invoice{
			Number:      number,
			Ref:         "REF",
			To:          "Acme",
			Date:        day.AddDate(0, 0, i),
			DueDate:     day.AddDate(0, 1, i),
			AmountCents: int64(1000 * (i + 1)),
			Status:      repository.InvoiceStatusDraft,
		}
		require.NoError(t, repo.Insert(ctx, inv))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "INL-00001", list[0].Number)
	require.Equal(t, "INL-00003", list[2].Number)

	names, err := repo.Counterparties(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Acme"}, names)
}

func TestSequenceMonotonic(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	seqs := repository.NewSequenceRepo(db)

	for want := int64(1); want <= 3; want++ {
		n, err := seqs.Next(ctx, repository.SeqQuote)
		require.NoError(t, err)
		require.Equal(t, want, n)
	}

	// advance only ever moves forward
	require.NoError(t, seqs.Advance(ctx, repository.SeqQuote, 100))
	require.NoError(t, seqs.Advance(ctx, repository.SeqQuote, 10))
	n, err := seqs.Next(ctx, repository.SeqQuote)
	require.NoError(t, err)
	require.Equal(t, int64(100), n)

	// unseeded kinds start at 1
	n, err = seqs.Next(ctx, "statement")
	require.NoError(t, err)
	require.Equal(t, int64(1), n)
}

func TestContactNullableFields(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := repository.NewContactRepo(db)

	email := "ops@abinbev.example"
	require.NoError(t, repo.Insert(ctx, repository.Contact{ID: uuid.NewString(), Name: "Beatrice", Email: &email}))
	require.NoError(t, repo.Insert(ctx, repository.Contact{ID: uuid.NewString(), Name: "Albert"}))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Albert", list[0].Name)
	require.Nil(t, list[0].Email)
	require.NotNil(t, list[1].Email)
	require.Equal(t, email, *list[1].Email)
}
