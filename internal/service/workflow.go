package service

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/rs/zerolog"

	"github.com/wessels/haulboard/internal/database"
	"github.com/wessels/haulboard/internal/database/repository"
)

// Statement is a read-only aggregate of one counterparty's invoices.
// Outstanding covers Draft and Sent invoices; Paid and Credited are
// settled either way.
type Statement struct {
	Customer         string
	Invoices         []repository.Invoice
	OutstandingCents int64
	GeneratedAt      time.Time
	// Suggestion holds the closest known counterparty name when the
	// statement came back empty, so a typo is recoverable.
	Suggestion string
}

// WorkflowService encodes the cross-entity document workflows:
// quote conversion, invoice send/credit/paid and statements.
type WorkflowService struct {
	db       *sql.DB
	quotes   *repository.QuoteRepo
	invoices *repository.InvoiceRepo
	termDays int
	log      zerolog.Logger
}

func NewWorkflowService(db *sql.DB, paymentTermDays int, log zerolog.Logger) *WorkflowService {
	if paymentTermDays <= 0 {
		paymentTermDays = 30
	}
	return &WorkflowService{
		db:       db,
		quotes:   repository.NewQuoteRepo(db),
		invoices: repository.NewInvoiceRepo(db),
		termDays: paymentTermDays,
		log:      log,
	}
}

// ConvertQuoteToInvoice turns an Accepted quote into a Draft invoice.
// Ref, counterparty and amount carry over from the quote; a re-pricing
// step may pass amountOverrideCents instead. The quote status flip and
// the invoice insert share one transaction, so either both land or
// neither does.
func (s *WorkflowService) ConvertQuoteToInvoice(ctx context.Context, quoteNumber string, amountOverrideCents *int64) (repository.Invoice, error) {
	if amountOverrideCents != nil && *amountOverrideCents < 0 {
		return repository.Invoice{}, fmt.Errorf("%w: amount must not be negative", ErrValidation)
	}
	q, err := s.quotes.GetByNumber(ctx, quoteNumber)
	if err != nil {
		return repository.Invoice{}, err
	}
	if q == nil {
		return repository.Invoice{}, fmt.Errorf("%w: quote %s", ErrNotFound, quoteNumber)
	}
	if q.Status != repository.QuoteStatusAccepted {
		return repository.Invoice{}, fmt.Errorf("%w: quote %s is %s, conversion requires %s", ErrInvalidTransition, quoteNumber, q.Status, repository.QuoteStatusAccepted)
	}

	var inv repository.Invoice
	err = database.WithTx(s.db, func(tx *sql.Tx) error {
		if err := repository.NewQuoteRepo(tx).UpdateStatus(ctx, q.Number, repository.QuoteStatusConverted); err != nil {
			return err
		}
		n, err := repository.NewSequenceRepo(tx).Next(ctx, repository.SeqInvoice)
		if err != nil {
			return err
		}
		amount := q.AmountCents
		if amountOverrideCents != nil {
			amount = *amountOverrideCents
		}
		issued := database.Now()
		inv = repository.Invoice{
			Number:      fmt.Sprintf("INL-%05d", n),
			Ref:         q.Ref,
			To:          q.To,
			Date:        issued,
			DueDate:     issued.AddDate(0, 0, s.termDays),
			AmountCents: amount,
			Status:      repository.InvoiceStatusDraft,
			QuoteNumber: &q.Number,
		}
		return repository.NewInvoiceRepo(tx).Insert(ctx, inv)
	})
	if err != nil {
		return repository.Invoice{}, err
	}
	s.log.Info().Str("quote", q.Number).Str("invoice", inv.Number).Int64("amount_cents", inv.AmountCents).Msg("quote converted")
	return inv, nil
}

// SendInvoice moves a Draft invoice to Sent.
func (s *WorkflowService) SendInvoice(ctx context.Context, number string) error {
	return s.transition(ctx, number, repository.InvoiceStatusSent)
}

// CreditInvoice issues a credit note for a Sent invoice.
func (s *WorkflowService) CreditInvoice(ctx context.Context, number string) error {
	return s.transition(ctx, number, repository.InvoiceStatusCredited)
}

// MarkPaid records payment of a Sent invoice.
func (s *WorkflowService) MarkPaid(ctx context.Context, number string) error {
	return s.transition(ctx, number, repository.InvoiceStatusPaid)
}

func (s *WorkflowService) transition(ctx context.Context, number string, to repository.InvoiceStatus) error {
	inv, err := s.invoices.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	if inv == nil {
		return fmt.Errorf("%w: invoice %s", ErrNotFound, number)
	}
	if !invoiceTransitionAllowed(inv.Status, to) {
		return fmt.Errorf("%w: invoice %s cannot move from %s to %s", ErrInvalidTransition, number, inv.Status, to)
	}
	if err := s.invoices.UpdateStatus(ctx, number, to); err != nil {
		return err
	}
	s.log.Info().Str("invoice", number).Str("status", string(to)).Msg("invoice status updated")
	return nil
}

// CreateStatement aggregates every invoice of the counterparty. An
// unknown counterparty yields an empty statement, not an error.
func (s *WorkflowService) CreateStatement(ctx context.Context, customer string) (Statement, error) {
	customer = strings.TrimSpace(customer)
	if customer == "" {
		return Statement{}, fmt.Errorf("%w: customer name is required", ErrValidation)
	}
	invs, err := s.invoices.ListByCustomer(ctx, customer)
	if err != nil {
		return Statement{}, err
	}
	st := Statement{Customer: customer, Invoices: invs, GeneratedAt: database.Now()}
	for _, inv := range invs {
		if inv.Status == repository.InvoiceStatusDraft || inv.Status == repository.InvoiceStatusSent {
			st.OutstandingCents += inv.AmountCents
		}
	}
	if len(invs) == 0 {
		names, err := s.invoices.Counterparties(ctx)
		if err != nil {
			return Statement{}, err
		}
		st.Suggestion = nearestName(customer, names)
	}
	return st, nil
}

// nearestName returns the candidate closest to input, or "" when even
// the best match is further than half its length away.
func nearestName(input string, candidates []string) string {
	best := ""
	bestDist := -1
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(strings.ToLower(input), strings.ToLower(c))
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if best == "" || bestDist > len(best)/2 {
		return ""
	}
	return best
}
