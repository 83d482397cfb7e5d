package tui

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wessels/haulboard/internal/service"
)

func TestSelectView(t *testing.T) {
	t.Parallel()

	a := &App{view: viewDashboard}

	require.NoError(t, a.selectView(viewAccounting))
	require.Equal(t, viewAccounting, a.view)

	err := a.selectView(viewState("payroll"))
	require.ErrorIs(t, err, service.ErrInvalidArgument)
	require.Equal(t, viewAccounting, a.view)
}

func TestViewShortcuts(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0, viewShortcut("1"))
	require.Equal(t, 4, viewShortcut("5"))
	require.Equal(t, viewQuotesInvoices, viewOrder[viewShortcut("5")])
	require.Equal(t, 6, viewShortcut("7"))
	require.Equal(t, -1, viewShortcut("8"))
	require.Equal(t, -1, viewShortcut("0"))
	require.Equal(t, -1, viewShortcut("tab"))
}

func TestModalSingleSlot(t *testing.T) {
	t.Parallel()

	a := &App{view: viewQuotesInvoices}
	require.Equal(t, modalNone, a.modal)

	a.openModal(modalQuote)
	require.Equal(t, modalQuote, a.modal)
	require.NotNil(t, a.form)
	require.Equal(t, "New Quote", a.form.title)

	// opening another dialog replaces the first, nothing stacks
	a.openModal(modalContact)
	require.Equal(t, modalContact, a.modal)
	require.Equal(t, "New Contact", a.form.title)

	a.closeModal()
	require.Equal(t, modalNone, a.modal)
	require.Nil(t, a.form)

	// closing twice is harmless
	a.closeModal()
	require.Equal(t, modalNone, a.modal)

	a.openModal(modalNone)
	require.Equal(t, modalNone, a.modal)
	require.Nil(t, a.form)
}

func TestReopenedFormStartsFresh(t *testing.T) {
	t.Parallel()

	a := &App{view: viewQuotesInvoices}
	a.openModal(modalQuote)
	a.form.inputs[0].SetValue("K0M0QGCRR")
	require.Equal(t, "K0M0QGCRR", a.form.values()[0])

	a.closeModal()
	a.openModal(modalQuote)
	require.Empty(t, a.form.values()[0])
	require.Equal(t, 0, a.form.focus)
}

func TestFormFocusCycle(t *testing.T) {
	t.Parallel()

	f := newFormFor(modalInvoice)
	require.Len(t, f.inputs, 4)
	require.False(t, f.atLast())

	f.next()
	f.next()
	f.next()
	require.True(t, f.atLast())
	f.next()
	require.Equal(t, 0, f.focus)

	f.prev()
	require.Equal(t, 3, f.focus)
}
