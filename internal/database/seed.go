package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/wessels/haulboard/internal/database/repository"
)

// SeedDemo loads the sample records the console ships with, so a fresh
// session has something on the quotes and invoices tables. It is
// idempotent: a database that already holds any quote is left alone.
func SeedDemo(ctx context.Context, db *sql.DB) error {
	quoteRepo := repository.NewQuoteRepo(db)
	existing, err := quoteRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	const abInbev = "Ab-Inbev Namibia (Pty) Ltd"
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	return WithTx(db, func(tx *sql.Tx) error {
		quotes := repository.NewQuoteRepo(tx)
		invoices := repository.NewInvoiceRepo(tx)
		seqs := repository.NewSequenceRepo(tx)

		seedQuotes := []repository.Quote{
			{Number: "QT-26349", Ref: "NBL EXCHANGE", To: abInbev, Date: day(2024, time.October, 20), AmountCents: 600000, Status: repository.QuoteStatusAccepted},
			{Number: "QT-26350", Ref: "K0M0QGCRR", To: abInbev, Date: day(2024, time.October, 23), AmountCents: 1850000, Status: repository.QuoteStatusPending},
		}
		for _, q := range seedQuotes {
			if err := quotes.Insert(ctx, q); err != nil {
				return err
			}
		}

		seedInvoices := []repository.Invoice{
			{Number: "INL-26346", Ref: "K0M0T2RRR", To: abInbev, Date: day(2024, time.October, 17), DueDate: day(2024, time.November, 17), AmountCents: 3345187, Status: repository.InvoiceStatusPaid},
			{Number: "INL-26347", Ref: "NBL EXCHANGE", To: abInbev, Date: day(2024, time.October, 18), DueDate: day(2024, time.November, 18), AmountCents: 541650, Status: repository.InvoiceStatusSent},
			{Number: "INL-26348", Ref: "K0M0QGCRR", To: abInbev, Date: day(2024, time.October, 21), DueDate: day(2024, time.November, 21), AmountCents: 1703906, Status: repository.InvoiceStatusDraft},
		}
		for _, inv := range seedInvoices {
			if err := invoices.Insert(ctx, inv); err != nil {
				return err
			}
		}

		// keep allocation ahead of the seeded numbers
		if err := seqs.Advance(ctx, repository.SeqQuote, 26351); err != nil {
			return err
		}
		return seqs.Advance(ctx, repository.SeqInvoice, 26349)
	})
}
