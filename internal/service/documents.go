package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/wessels/haulboard/internal/database"
	"github.com/wessels/haulboard/internal/database/repository"
)

// Document kinds accepted by UpdateStatus.
const (
	KindQuote   = repository.SeqQuote
	KindInvoice = repository.SeqInvoice
)

// QuoteInput is the creation payload for a quote.
type QuoteInput struct {
	Ref         string
	To          string
	Date        time.Time
	AmountCents int64
}

// InvoiceInput is the creation payload for an invoice. The due date is
// derived from the issue date and the payment term; callers never
// supply it.
type InvoiceInput struct {
	Ref         string
	To          string
	Date        time.Time
	AmountCents int64
}

// DocumentService owns the quote and invoice record sets: creation
// with number allocation, listing, and transition-gated status updates.
type DocumentService struct {
	db       *sql.DB
	quotes   *repository.QuoteRepo
	invoices *repository.InvoiceRepo
	termDays int
	log      zerolog.Logger
}

func NewDocumentService(db *sql.DB, paymentTermDays int, log zerolog.Logger) *DocumentService {
	if paymentTermDays <= 0 {
		paymentTermDays = 30
	}
	return &DocumentService{
		db:       db,
		quotes:   repository.NewQuoteRepo(db),
		invoices: repository.NewInvoiceRepo(db),
		termDays: paymentTermDays,
		log:      log,
	}
}

// ListQuotes returns all quotes in insertion order.
func (s *DocumentService) ListQuotes(ctx context.Context) ([]repository.Quote, error) {
	return s.quotes.List(ctx)
}

// ListInvoices returns all invoices in insertion order.
func (s *DocumentService) ListInvoices(ctx context.Context) ([]repository.Invoice, error) {
	return s.invoices.List(ctx)
}

// AddQuote validates the input, allocates the next QT number and
// inserts the quote as Pending. Allocation and insert share one
// transaction.
func (s *DocumentService) AddQuote(ctx context.Context, in QuoteInput) (repository.Quote, error) {
	if err := validateDocumentInput(in.Ref, in.To, in.Date, in.AmountCents); err != nil {
		return repository.Quote{}, err
	}
	var q repository.Quote
	err := database.WithTx(s.db, func(tx *sql.Tx) error {
		n, err := repository.NewSequenceRepo(tx).Next(ctx, repository.SeqQuote)
		if err != nil {
			return err
		}
		q = repository.Quote{
			Number:      fmt.Sprintf("QT-%05d", n),
			Ref:         strings.TrimSpace(in.Ref),
			To:          strings.TrimSpace(in.To),
			Date:        in.Date,
			AmountCents: in.AmountCents,
			Status:      repository.QuoteStatusPending,
		}
		return repository.NewQuoteRepo(tx).Insert(ctx, q)
	})
	if err != nil {
		return repository.Quote{}, err
	}
	s.log.Info().Str("number", q.Number).Str("to", q.To).Int64("amount_cents", q.AmountCents).Msg("quote created")
	return q, nil
}

// AddInvoice validates the input, allocates the next INL number and
// inserts the invoice as Draft with due date = issue date + payment term.
func (s *DocumentService) AddInvoice(ctx context.Context, in InvoiceInput) (repository.Invoice, error) {
	if err := validateDocumentInput(in.Ref, in.To, in.Date, in.AmountCents); err != nil {
		return repository.Invoice{}, err
	}
	var inv repository.Invoice
	err := database.WithTx(s.db, func(tx *sql.Tx) error {
		n, err := repository.NewSequenceRepo(tx).Next(ctx, repository.SeqInvoice)
		if err != nil {
			return err
		}
		inv = repository.Invoice{
			Number:      fmt.Sprintf("INL-%05d", n),
			Ref:         strings.TrimSpace(in.Ref),
			To:          strings.TrimSpace(in.To),
			Date:        in.Date,
			DueDate:     in.Date.AddDate(0, 0, s.termDays),
			AmountCents: in.AmountCents,
			Status:      repository.InvoiceStatusDraft,
		}
		return repository.NewInvoiceRepo(tx).Insert(ctx, inv)
	})
	if err != nil {
		return repository.Invoice{}, err
	}
	s.log.Info().Str("number", inv.Number).Str("to", inv.To).Int64("amount_cents", inv.AmountCents).Msg("invoice created")
	return inv, nil
}

// UpdateStatus moves the document to newStatus if the transition table
// allows it from the current status.
func (s *DocumentService) UpdateStatus(ctx context.Context, kind, number, newStatus string) error {
	switch kind {
	case KindQuote:
		q, err := s.quotes.GetByNumber(ctx, number)
		if err != nil {
			return err
		}
		if q == nil {
			return fmt.Errorf("%w: quote %s", ErrNotFound, number)
		}
		to := repository.QuoteStatus(newStatus)
		if !quoteTransitionAllowed(q.Status, to) {
			return fmt.Errorf("%w: quote %s cannot move from %s to %s", ErrInvalidTransition, number, q.Status, newStatus)
		}
		if err := s.quotes.UpdateStatus(ctx, number, to); err != nil {
			return err
		}
	case KindInvoice:
		inv, err := s.invoices.GetByNumber(ctx, number)
		if err != nil {
			return err
		}
		if inv == nil {
			return fmt.Errorf("%w: invoice %s", ErrNotFound, number)
		}
		to := repository.InvoiceStatus(newStatus)
		if !invoiceTransitionAllowed(inv.Status, to) {
			return fmt.Errorf("%w: invoice %s cannot move from %s to %s", ErrInvalidTransition, number, inv.Status, newStatus)
		}
		if err := s.invoices.UpdateStatus(ctx, number, to); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: unknown document kind %q", ErrInvalidArgument, kind)
	}
	s.log.Info().Str("kind", kind).Str("number", number).Str("status", newStatus).Msg("status updated")
	return nil
}

func validateDocumentInput(ref, to string, date time.Time, amountCents int64) error {
	if strings.TrimSpace(ref) == "" {
		return fmt.Errorf("%w: ref is required", ErrValidation)
	}
	if strings.TrimSpace(to) == "" {
		return fmt.Errorf("%w: counterparty is required", ErrValidation)
	}
	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrValidation)
	}
	if amountCents < 0 {
		return fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	return nil
}
