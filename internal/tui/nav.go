package tui

import (
	"fmt"

	"github.com/wessels/haulboard/internal/service"
)

type viewState string

const (
	viewDashboard        viewState = "dashboard"
	viewSchedule         viewState = "schedule"
	viewRoutes           viewState = "routes"
	viewStaff            viewState = "staff"
	viewQuotesInvoices   viewState = "quotes-invoices"
	viewAccounting       viewState = "accounting"
	viewActiveDeliveries viewState = "active-deliveries"
)

// viewOrder fixes the tab bar layout and the 1..7 shortcuts.
var viewOrder = []viewState{
	viewDashboard,
	viewSchedule,
	viewRoutes,
	viewStaff,
	viewQuotesInvoices,
	viewAccounting,
	viewActiveDeliveries,
}

var viewTitles = map[viewState]string{
	viewDashboard:        "Dashboard",
	viewSchedule:         "Schedule",
	viewRoutes:           "Routes",
	viewStaff:            "Staff",
	viewQuotesInvoices:   "Quotes & Invoices",
	viewAccounting:       "Accounting",
	viewActiveDeliveries: "Active Deliveries",
}

type modalState string

const (
	modalNone    modalState = ""
	modalQuote   modalState = "quote"
	modalInvoice modalState = "invoice"
	modalContact modalState = "contact"
)

// selectView activates a top-level view. The open modal, if any, is
// left alone.
func (a *App) selectView(v viewState) error {
	known := false
	for _, candidate := range viewOrder {
		if candidate == v {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("%w: unknown view %q", service.ErrInvalidArgument, v)
	}
	a.view = v
	return nil
}

// openModal mounts the creation form for m. The dialog has a single
// slot: opening a second form replaces the first, forms never stack.
func (a *App) openModal(m modalState) {
	if m == modalNone {
		a.closeModal()
		return
	}
	a.modal = m
	a.form = newFormFor(m)
}

// closeModal hides the dialog and discards in-progress form state.
// Closing an already-closed dialog is a no-op.
func (a *App) closeModal() {
	a.modal = modalNone
	a.form = nil
}
