package service

import "github.com/wessels/haulboard/internal/database/repository"

// Every status mutation is gated by these tables. A pair that is not
// listed is rejected, no matter which operation asked for it.
var quoteTransitions = map[repository.QuoteStatus][]repository.QuoteStatus{
	repository.QuoteStatusPending:   {repository.QuoteStatusAccepted},
	repository.QuoteStatusAccepted:  {repository.QuoteStatusConverted},
	repository.QuoteStatusConverted: nil, // terminal
}

var invoiceTransitions = map[repository.InvoiceStatus][]repository.InvoiceStatus{
	repository.InvoiceStatusDraft: {repository.InvoiceStatusSent},
	// a credit note requires the invoice to have been sent first
	repository.InvoiceStatusSent:     {repository.InvoiceStatusPaid, repository.InvoiceStatusCredited},
	repository.InvoiceStatusPaid:     nil, // terminal
	repository.InvoiceStatusCredited: nil, // terminal
}

func quoteTransitionAllowed(from, to repository.QuoteStatus) bool {
	for _, next := range quoteTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func invoiceTransitionAllowed(from, to repository.InvoiceStatus) bool {
	for _, next := range invoiceTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
