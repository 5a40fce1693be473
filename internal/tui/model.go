// Package tui renders the ledger in the terminal: a transaction list with a
// running balance, and an entry form for adding and editing transactions.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/finchapp/finch/internal/client/api"
	"github.com/finchapp/finch/internal/client/form"
	"github.com/finchapp/finch/internal/client/ledger"
)

// State represents the current state of the TUI.
type State int

const (
	StateList State = iota
	StateForm
)

// Form field indexes, in focus order.
const (
	inputDate = iota
	inputPayee
	inputCategory
	inputAmount
	inputCount
)

// Config configures the TUI.
type Config struct {
	Client *api.Client
}

// Model holds the main TUI state.
type Model struct {
	client     *api.Client
	list       *ledger.List
	form       *form.Form
	fieldErrs  form.Errors
	lastError  error
	status     string
	keymap     KeyMap
	inputs     []textinput.Model
	focusIndex int
	cursor     int
	width      int
	height     int
	state      State
	ready      bool
	quitting   bool
}

// NewModel creates a model wired to the given API client.
func NewModel(cfg Config) Model {
	inputs := make([]textinput.Model, inputCount)
	placeholders := [inputCount]string{"YYYY-MM-DD", "Payee", "Category", "Amount"}
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		inputs[i] = ti
	}

	return Model{
		client: cfg.Client,
		list:   ledger.NewList(),
		form:   form.New(),
		keymap: DefaultKeyMap(),
		inputs: inputs,
		state:  StateList,
	}
}

// Run starts the TUI program.
func Run(cfg Config) error {
	p := tea.NewProgram(NewModel(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init triggers the initial fetch.
func (m Model) Init() tea.Cmd {
	return m.loadTransactions()
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case transactionsLoadedMsg:
		m.ready = true
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.lastError = nil
		m.list.Replace(msg.transactions)
		m.clampCursor()
		return m, nil

	case transactionSavedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		if msg.created {
			m.list.Append(*msg.transaction)
		} else {
			m.list.ReplaceByID(*msg.transaction)
		}
		m.resetForm()
		m.state = StateList
		return m, nil

	case transactionDeletedMsg:
		if msg.err != nil {
			m.lastError = msg.err
			return m, nil
		}
		m.list.RemoveByID(msg.id)
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case StateList:
			return m.updateList(msg)
		case StateForm:
			return m.updateForm(msg)
		}
	}

	return m, nil
}

// updateList handles keys in the list view.
func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Refresh):
		return m, m.loadTransactions()

	case key.Matches(msg, m.keymap.Add):
		m.resetForm()
		m.state = StateForm
		return m, m.focusField(inputDate)

	case key.Matches(msg, m.keymap.Edit):
		if m.list.Len() == 0 {
			return m, nil
		}
		m.beginEdit()
		m.state = StateForm
		return m, m.focusField(inputDate)

	case key.Matches(msg, m.keymap.Delete):
		if m.list.Len() == 0 {
			return m, nil
		}
		return m, m.deleteTransaction(m.list.At(m.cursor).ID)
	}

	return m, nil
}

// updateForm handles keys in the form view.
func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Cancel):
		m.resetForm()
		m.state = StateList
		return m, nil

	case key.Matches(msg, m.keymap.Submit):
		return m.submitForm()

	case key.Matches(msg, m.keymap.NextField):
		return m, m.focusField((m.focusIndex + 1) % inputCount)

	case key.Matches(msg, m.keymap.PrevField):
		return m, m.focusField((m.focusIndex + inputCount - 1) % inputCount)
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
	return m, cmd
}

// submitForm validates the form against the current balance and dispatches
// the create or update call. Validation failure keeps the form open with
// every failing field annotated and makes no network call.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	m.form.Date = m.inputs[inputDate].Value()
	m.form.Payee = m.inputs[inputPayee].Value()
	m.form.Category = m.inputs[inputCategory].Value()
	m.form.Amount = m.inputs[inputAmount].Value()

	sub, errs := m.form.Validate(m.list.Balance())
	if len(errs) > 0 {
		m.fieldErrs = errs
		return m, nil
	}

	m.fieldErrs = nil
	m.status = ""

	if mode, ok := m.form.Mode().(form.EditMode); ok {
		return m, m.updateTransaction(mode.ID, sub)
	}
	return m, m.createTransaction(sub)
}

// beginEdit loads the selected row into the form.
func (m *Model) beginEdit() {
	tx := m.list.At(m.cursor)
	m.form.BeginEdit(tx)
	m.inputs[inputDate].SetValue(m.form.Date)
	m.inputs[inputPayee].SetValue(m.form.Payee)
	m.inputs[inputCategory].SetValue(m.form.Category)
	m.inputs[inputAmount].SetValue(m.form.Amount)
	m.fieldErrs = nil
	m.status = ""
}

// resetForm clears the form back to create mode.
func (m *Model) resetForm() {
	m.form.Reset()
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focusIndex = 0
	m.fieldErrs = nil
	m.status = ""
}

// focusField moves keyboard focus to the given input.
func (m *Model) focusField(i int) tea.Cmd {
	m.focusIndex = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	return cmd
}

func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "Loading transactions...\n"
	}

	if m.state == StateForm {
		return m.renderForm()
	}

	return m.renderList()
}

// renderList renders the balance box and transaction table.
func (m Model) renderList() string {
	var sections []string

	sections = append(sections, titleStyle.Render("Finch — Personal Finance Ledger"))

	balance := m.list.Balance()
	sections = append(sections, balanceBoxStyle.Render("Balance  "+renderAmount(balance)))

	if m.lastError != nil {
		sections = append(sections, statusErrorStyle.Render("Error: "+m.lastError.Error()))
	}

	header := fmt.Sprintf("%-12s %-22s %-16s %12s", "Date", "Payee", "Category", "Amount")
	sections = append(sections, headerRowStyle.Render(header))

	if m.list.Len() == 0 {
		sections = append(sections, "No transactions yet. Press 'a' to add one.")
	}

	for i := 0; i < m.list.Len(); i++ {
		tx := m.list.At(i)
		// Pad before styling: ANSI escapes would defeat %12s width.
		amountCell := fmt.Sprintf("%12.2f", tx.Amount)
		if tx.Amount < 0 {
			amountCell = expenseStyle.Render(amountCell)
		} else {
			amountCell = creditStyle.Render(amountCell)
		}
		row := fmt.Sprintf("%-12s %-22s %-16s %s",
			truncate(tx.Date, 12),
			truncate(tx.Payee, 22),
			truncate(tx.Category, 16),
			amountCell,
		)
		if i == m.cursor {
			row = selectedRowStyle.Render(row)
		}
		sections = append(sections, row)
	}

	sections = append(sections, helpStyle.Render(
		"↑/↓ move · a add · e edit · d delete · r refresh · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

// renderForm renders the entry form with inline field errors.
func (m Model) renderForm() string {
	title := "Add Transaction"
	if m.form.Editing() {
		title = "Edit Transaction"
	}

	sections := []string{titleStyle.Render(title)}

	labels := [inputCount]string{"Date", "Payee", "Category", "Amount"}
	fields := [inputCount]form.Field{form.FieldDate, form.FieldPayee, form.FieldCategory, form.FieldAmount}

	for i := range m.inputs {
		sections = append(sections, labelStyle.Render(labels[i])+m.inputs[i].View())
		if msg, ok := m.fieldErrs[fields[i]]; ok {
			sections = append(sections, labelStyle.Render("")+fieldErrorStyle.Render(msg))
		}
	}

	if m.status != "" {
		sections = append(sections, statusErrorStyle.Render(m.status))
	}

	sections = append(sections, helpStyle.Render(
		"tab next field · enter save · esc cancel"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 1 {
		return string(r[:max])
	}
	return string(r[:max-1]) + "…"
}
