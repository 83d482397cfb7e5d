package repository

import "time"

// QuoteStatus is the lifecycle state of a quote.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "Pending"
	QuoteStatusAccepted  QuoteStatus = "Accepted"
	QuoteStatusConverted QuoteStatus = "Converted"
)

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft    InvoiceStatus = "Draft"
	InvoiceStatusSent     InvoiceStatus = "Sent"
	InvoiceStatusPaid     InvoiceStatus = "Paid"
	InvoiceStatusCredited InvoiceStatus = "Credited"
)

// Sequence kinds for document number allocation.
const (
	SeqQuote   = "quote"
	SeqInvoice = "invoice"
)

// Quote represents a quote row.
type Quote struct {
	Number      string
	Ref         string
	To          string
	Date        time.Time
	AmountCents int64
	Status      QuoteStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Invoice represents an invoice row. QuoteNumber is set when the
// invoice was produced by converting a quote.
type Invoice struct {
	Number      string
	Ref         string
	To          string
	Date        time.Time
	DueDate     time.Time
	AmountCents int64
	Status      InvoiceStatus
	QuoteNumber *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Contact represents a counterparty contact row.
type Contact struct {
	ID        string
	Name      string
	Email     *string
	Phone     *string
	CreatedAt time.Time
}
