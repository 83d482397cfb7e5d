package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wessels/haulboard/internal/database/repository"
)

func TestSeedDemo(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	migrations, err := filepath.Abs("migrations")
	require.NoError(t, err)
	require.NoError(t, RunMigrations(db, migrations))

	require.NoError(t, SeedDemo(ctx, db))

	quotes, err := repository.NewQuoteRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 2)
	require.Equal(t, "QT-26349", quotes[0].Number)
	require.Equal(t, repository.QuoteStatusAccepted, quotes[0].Status)

	invoices, err := repository.NewInvoiceRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, invoices, 3)
	require.Equal(t, "INL-26346", invoices[0].Number)
	require.Equal(t, int64(3345187), invoices[0].AmountCents)

	// seeding again must not duplicate anything
	require.NoError(t, SeedDemo(ctx, db))
	quotes, err = repository.NewQuoteRepo(db).List(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	// new allocations continue past the seeded numbers
	seqs := repository.NewSequenceRepo(db)
	n, err := seqs.Next(ctx, repository.SeqQuote)
	require.NoError(t, err)
	require.Equal(t, int64(26351), n)
	n, err = seqs.Next(ctx, repository.SeqInvoice)
	require.NoError(t, err)
	require.Equal(t, int64(26349), n)
}
