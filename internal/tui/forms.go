package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const dateInputFormat = "2006-01-02"

var formBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

type formField struct {
	label       string
	placeholder string
}

// recordForm is a single-column creation dialog. Values are read back
// positionally on submit; a form instance is built fresh every time
// its modal opens and thrown away when it closes.
type recordForm struct {
	title  string
	labels []string
	inputs []textinput.Model
	focus  int
}

func newRecordForm(title string, fields ...formField) *recordForm {
	f := &recordForm{title: title}
	for i, field := range fields {
		ti := textinput.New()
		ti.Placeholder = field.placeholder
		ti.CharLimit = 64
		if i == 0 {
			ti.Focus()
		}
		f.labels = append(f.labels, field.label)
		f.inputs = append(f.inputs, ti)
	}
	return f
}

func newFormFor(m modalState) *recordForm {
	switch m {
	case modalQuote:
		return newRecordForm("New Quote",
			formField{"Ref", "client reference"},
			formField{"To", "counterparty"},
			formField{"Date", dateInputFormat},
			formField{"Amount", "0.00"},
		)
	case modalInvoice:
		// due date is derived from the issue date and the payment
		// term, so the form does not ask for it
		return newRecordForm("New Invoice",
			formField{"Ref", "client reference"},
			formField{"To", "counterparty"},
			formField{"Date", dateInputFormat},
			formField{"Amount", "0.00"},
		)
	case modalContact:
		return newRecordForm("New Contact",
			formField{"Name", "contact name"},
			formField{"Email", "name@example.com"},
			formField{"Phone", "+264 61 000 000"},
		)
	default:
		return nil
	}
}

func (f *recordForm) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *recordForm) next() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *recordForm) prev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *recordForm) atLast() bool {
	return f.focus == len(f.inputs)-1
}

func (f *recordForm) values() []string {
	out := make([]string, len(f.inputs))
	for i := range f.inputs {
		out[i] = strings.TrimSpace(f.inputs[i].Value())
	}
	return out
}

func (f *recordForm) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(f.title) + "\n")
	for i := range f.inputs {
		b.WriteString(f.labels[i] + ":\n")
		b.WriteString(f.inputs[i].View() + "\n")
	}
	b.WriteString("[enter] Next/Save  [tab] Next field  [esc] Cancel")
	return formBoxStyle.Render(b.String())
}
