package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/wessels/haulboard/internal/config"
	"github.com/wessels/haulboard/internal/database/repository"
	"github.com/wessels/haulboard/internal/money"
	"github.com/wessels/haulboard/internal/service"
)

// styles
var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Underline(true)
	activeTabStyle = lipgloss.NewStyle().Bold(true).Reverse(true).Padding(0, 1)
	tabStyle       = lipgloss.NewStyle().Padding(0, 1)
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type Repos struct {
	Quotes   *repository.QuoteRepo
	Invoices *repository.InvoiceRepo
	Contacts *repository.ContactRepo
}

type Services struct {
	Documents *service.DocumentService
	Workflow  *service.WorkflowService
}

// App ties together views. It is the single actor: every transition
// happens synchronously inside Update.
type App struct {
	ctx      context.Context
	cfg      config.Config
	repos    Repos
	services Services

	view  viewState
	modal modalState
	form  *recordForm

	subTab        int // 0 quotes, 1 invoices
	quotes        []repository.Quote   // newest first
	invoices      []repository.Invoice // newest first
	quoteCursor   int
	invoiceCursor int
	statement     *service.Statement

	status     string
	currency   string
	dateFormat string
}

func New(ctx context.Context, cfg config.Config, repos Repos, services Services) *App {
	return &App{
		ctx:        ctx,
		cfg:        cfg,
		repos:      repos,
		services:   services,
		view:       viewDashboard,
		currency:   cfg.UI.CurrencySymbol,
		dateFormat: cfg.UI.DateFormat,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.loadQuotes(), a.loadInvoices())
}

func (a *App) loadQuotes() tea.Cmd {
	return func() tea.Msg {
		list, err := a.services.Documents.ListQuotes(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return quotesMsg(list)
	}
}

func (a *App) loadInvoices() tea.Cmd {
	return func() tea.Msg {
		list, err := a.services.Documents.ListInvoices(a.ctx)
		if err != nil {
			return errMsg{err}
		}
		return invoicesMsg(list)
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.KeyMsg:
		if a.modal != modalNone {
			return a.handleModalKey(m)
		}
		switch m.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		}
		if idx := viewShortcut(m.String()); idx >= 0 {
			_ = a.selectView(viewOrder[idx])
			a.status = ""
			return a, nil
		}
		if a.view == viewQuotesInvoices {
			return a.handleBillingKey(m)
		}
	case quotesMsg:
		a.quotes = reversed([]repository.Quote(m))
		if a.quoteCursor >= len(a.quotes) {
			a.quoteCursor = 0
		}
	case invoicesMsg:
		a.invoices = reversed([]repository.Invoice(m))
		if a.invoiceCursor >= len(a.invoices) {
			a.invoiceCursor = 0
		}
	case quoteCreatedMsg:
		a.closeModal()
		a.status = "quote " + m.quote.Number + " created"
		return a, a.loadQuotes()
	case invoiceCreatedMsg:
		a.closeModal()
		a.status = "invoice " + m.invoice.Number + " created"
		return a, a.loadInvoices()
	case contactCreatedMsg:
		a.closeModal()
		a.status = "contact " + m.contact.Name + " saved"
	case actionDoneMsg:
		a.status = m.note
		return a, tea.Batch(a.loadQuotes(), a.loadInvoices())
	case statementMsg:
		st := m.statement
		a.statement = &st
		a.status = ""
	case statusMsg:
		a.status = string(m)
	case errMsg:
		a.status = "error: " + m.Error()
	}
	return a, nil
}

func (a *App) handleBillingKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "tab":
		a.subTab = (a.subTab + 1) % 2
		a.statement = nil
	case "esc":
		a.statement = nil
		a.status = ""
	case "up", "k":
		if a.subTab == 0 && a.quoteCursor > 0 {
			a.quoteCursor--
		}
		if a.subTab == 1 && a.invoiceCursor > 0 {
			a.invoiceCursor--
		}
	case "down", "j":
		if a.subTab == 0 && a.quoteCursor < len(a.quotes)-1 {
			a.quoteCursor++
		}
		if a.subTab == 1 && a.invoiceCursor < len(a.invoices)-1 {
			a.invoiceCursor++
		}
	case "n":
		if a.subTab == 0 {
			a.openModal(modalQuote)
		} else {
			a.openModal(modalInvoice)
		}
	case "c":
		a.openModal(modalContact)
	case "a":
		if q := a.selectedQuote(); q != nil {
			return a, a.acceptQuoteCmd(q.Number)
		}
		a.status = "no quote selected"
	case "v":
		if q := a.selectedQuote(); q != nil {
			return a, a.convertCmd(q.Number)
		}
		a.status = "no quote selected"
	case "s":
		if inv := a.selectedInvoice(); inv != nil {
			return a, a.invoiceActionCmd(inv.Number, "sent", a.services.Workflow.SendInvoice)
		}
		a.status = "no invoice selected"
	case "p":
		if inv := a.selectedInvoice(); inv != nil {
			return a, a.invoiceActionCmd(inv.Number, "marked paid", a.services.Workflow.MarkPaid)
		}
		a.status = "no invoice selected"
	case "x":
		if inv := a.selectedInvoice(); inv != nil {
			return a, a.invoiceActionCmd(inv.Number, "credited", a.services.Workflow.CreditInvoice)
		}
		a.status = "no invoice selected"
	case "m":
		if inv := a.selectedInvoice(); inv != nil {
			return a, a.statementCmd(inv.To)
		}
		a.status = "no invoice selected"
	}
	return a, nil
}

func (a *App) handleModalKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.Type {
	case tea.KeyEsc:
		a.closeModal()
		a.status = ""
		return a, nil
	case tea.KeyTab, tea.KeyDown:
		a.form.next()
		return a, nil
	case tea.KeyShiftTab, tea.KeyUp:
		a.form.prev()
		return a, nil
	case tea.KeyEnter:
		if !a.form.atLast() {
			a.form.next()
			return a, nil
		}
		return a.submitForm()
	}
	return a, a.form.Update(m)
}

// submitForm parses and submits the open form. On any failure the
// modal stays open with its input retained; nothing is written.
func (a *App) submitForm() (tea.Model, tea.Cmd) {
	vals := a.form.values()
	switch a.modal {
	case modalQuote:
		date, cents, err := parseDateAndAmount(vals[2], vals[3])
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		in := service.QuoteInput{Ref: vals[0], To: vals[1], Date: date, AmountCents: cents}
		return a, func() tea.Msg {
			q, err := a.services.Documents.AddQuote(a.ctx, in)
			if err != nil {
				return errMsg{err}
			}
			return quoteCreatedMsg{q}
		}
	case modalInvoice:
		date, cents, err := parseDateAndAmount(vals[2], vals[3])
		if err != nil {
			a.status = err.Error()
			return a, nil
		}
		in := service.InvoiceInput{Ref: vals[0], To: vals[1], Date: date, AmountCents: cents}
		return a, func() tea.Msg {
			inv, err := a.services.Documents.AddInvoice(a.ctx, in)
			if err != nil {
				return errMsg{err}
			}
			return invoiceCreatedMsg{inv}
		}
	case modalContact:
		if vals[0] == "" {
			a.status = "contact name is required"
			return a, nil
		}
		c := repository.Contact{ID: uuid.NewString(), Name: vals[0]}
		if vals[1] != "" {
			email := vals[1]
			c.Email = &email
		}
		if vals[2] != "" {
			phone := vals[2]
			c.Phone = &phone
		}
		return a, func() tea.Msg {
			if err := a.repos.Contacts.Insert(a.ctx, c); err != nil {
				return errMsg{err}
			}
			return contactCreatedMsg{c}
		}
	}
	return a, nil
}

func parseDateAndAmount(dateText, amountText string) (time.Time, int64, error) {
	date, err := time.Parse(dateInputFormat, dateText)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("date must look like %s", dateInputFormat)
	}
	cents, err := money.ParseAmount(amountText)
	if err != nil {
		return time.Time{}, 0, err
	}
	return date, cents, nil
}

// commands

func (a *App) acceptQuoteCmd(number string) tea.Cmd {
	return func() tea.Msg {
		if err := a.services.Documents.UpdateStatus(a.ctx, service.KindQuote, number, string(repository.QuoteStatusAccepted)); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{"quote " + number + " accepted"}
	}
}

func (a *App) convertCmd(number string) tea.Cmd {
	return func() tea.Msg {
		inv, err := a.services.Workflow.ConvertQuoteToInvoice(a.ctx, number, nil)
		if err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{"quote " + number + " converted to " + inv.Number}
	}
}

func (a *App) invoiceActionCmd(number, note string, op func(context.Context, string) error) tea.Cmd {
	return func() tea.Msg {
		if err := op(a.ctx, number); err != nil {
			return errMsg{err}
		}
		return actionDoneMsg{"invoice " + number + " " + note}
	}
}

func (a *App) statementCmd(customer string) tea.Cmd {
	return func() tea.Msg {
		st, err := a.services.Workflow.CreateStatement(a.ctx, customer)
		if err != nil {
			return errMsg{err}
		}
		return statementMsg{st}
	}
}

// rendering

func (a *App) View() string {
	body := a.renderTabBar() + "\n\n"
	switch a.view {
	case viewQuotesInvoices:
		body += a.renderBilling()
	default:
		body += mountCollaborator(a.view).render()
	}
	if a.modal != modalNone && a.form != nil {
		body += "\n\n" + a.form.View()
	}
	if a.status != "" {
		body += "\n" + statusStyle.Render(a.status)
	}
	return body
}

func (a *App) renderTabBar() string {
	var tabs []string
	for i, v := range viewOrder {
		label := fmt.Sprintf("%d %s", i+1, viewTitles[v])
		if v == a.view {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (a *App) renderBilling() string {
	out := titleStyle.Render("Quotes and Invoices") + "\n"
	sub := []string{"Quotes", "Invoices"}
	for i, s := range sub {
		if i == a.subTab {
			out += activeTabStyle.Render(s) + " "
		} else {
			out += tabStyle.Render(s) + " "
		}
	}
	out += "\n\n"
	if a.subTab == 0 {
		out += a.renderQuotesTable()
	} else {
		out += a.renderInvoicesTable()
	}
	if a.statement != nil {
		out += "\n" + a.renderStatement()
	}
	return out
}

func (a *App) renderQuotesTable() string {
	out := fmt.Sprintf("  %-10s %-14s %-30s %-12s %14s  %s\n", "NUMBER", "REF", "TO", "DATE", "AMOUNT", "STATUS")
	if len(a.quotes) == 0 {
		out += "  (no quotes yet)\n"
	}
	for i, q := range a.quotes {
		marker := " "
		if i == a.quoteCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-10s %-14s %-30s %-12s %14s  %s\n",
			marker, q.Number, q.Ref, q.To, q.Date.Format(a.dateFormat), money.Format(a.currency, q.AmountCents), q.Status)
	}
	out += "\n[a] Accept  [v] Convert to invoice  [n] New quote  [c] New contact  [tab] Invoices  [q] Quit"
	return out
}

func (a *App) renderInvoicesTable() string {
	out := fmt.Sprintf("  %-10s %-14s %-30s %-12s %-12s %14s  %s\n", "NUMBER", "REF", "TO", "DATE", "DUE DATE", "AMOUNT", "STATUS")
	if len(a.invoices) == 0 {
		out += "  (no invoices yet)\n"
	}
	for i, inv := range a.invoices {
		marker := " "
		if i == a.invoiceCursor {
			marker = "▶"
		}
		out += fmt.Sprintf("%s %-10s %-14s %-30s %-12s %-12s %14s  %s\n",
			marker, inv.Number, inv.Ref, inv.To, inv.Date.Format(a.dateFormat), inv.DueDate.Format(a.dateFormat), money.Format(a.currency, inv.AmountCents), inv.Status)
	}
	out += "\n[s] Send  [p] Mark paid  [x] Credit  [m] Statement  [n] New invoice  [c] New contact  [tab] Quotes  [q] Quit"
	return out
}

func (a *App) renderStatement() string {
	st := a.statement
	out := titleStyle.Render("Statement: "+st.Customer) + "\n"
	if len(st.Invoices) == 0 {
		out += "No invoices on record.\n"
		if st.Suggestion != "" {
			out += fmt.Sprintf("Did you mean %q?\n", st.Suggestion)
		}
	} else {
		for _, inv := range st.Invoices {
			out += fmt.Sprintf("  %-10s %-12s %14s  %s\n", inv.Number, inv.Date.Format(a.dateFormat), money.Format(a.currency, inv.AmountCents), inv.Status)
		}
		out += fmt.Sprintf("Outstanding: %s\n", money.Format(a.currency, st.OutstandingCents))
	}
	out += "[esc] Dismiss"
	return out
}

// selection helpers

func (a *App) selectedQuote() *repository.Quote {
	if len(a.quotes) == 0 || a.quoteCursor >= len(a.quotes) {
		return nil
	}
	return &a.quotes[a.quoteCursor]
}

func (a *App) selectedInvoice() *repository.Invoice {
	if len(a.invoices) == 0 || a.invoiceCursor >= len(a.invoices) {
		return nil
	}
	return &a.invoices[a.invoiceCursor]
}

// viewShortcut maps keys 1..7 to a tab index, -1 otherwise.
func viewShortcut(key string) int {
	if len(key) != 1 || key[0] < '1' || key[0] > '0'+byte(len(viewOrder)) {
		return -1
	}
	return int(key[0] - '1')
}

// reversed copies a list into display order, newest first.
func reversed[T any](in []T) []T {
	out := make([]T, len(in))
	for i := range in {
		out[len(in)-1-i] = in[i]
	}
	return out
}

// messages

type quotesMsg []repository.Quote

type invoicesMsg []repository.Invoice

type quoteCreatedMsg struct{ quote repository.Quote }

type invoiceCreatedMsg struct{ invoice repository.Invoice }

type contactCreatedMsg struct{ contact repository.Contact }

type actionDoneMsg struct{ note string }

type statementMsg struct{ statement service.Statement }

type statusMsg string

type errMsg struct{ error }
