package view

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/transaction"
)

type txState int

const (
	txStatePeriod txState = iota
	txStateLoading
	txStateList
)

type TransactionsModel struct {
	svc    *transaction.Service
	userID uuid.UUID

	state  txState
	picker PeriodPicker
	filter transaction.ListFilter

	txs    []*transaction.Transaction
	cursor int
	status string
	err    error
}

func NewTransactionsModel(svc *transaction.Service, userID uuid.UUID) TransactionsModel {
	return TransactionsModel{
		svc:    svc,
		userID: userID,
		state:  txStatePeriod,
		picker: NewPeriodPicker(),
	}
}

func (m TransactionsModel) Title() string { return "Transações" }

func (m TransactionsModel) ShortHelp() string {
	if m.state == txStateList {
		return "↑/↓: navegar | d: excluir | Esc: voltar"
	}

	return "Esc: voltar"
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.picker.Init()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		return m, Back
	}

	switch msg := msg.(type) {
	case PeriodSelectedMsg:
		m.filter = transaction.ListFilter{}
		if !msg.All {
			m.filter.StartDate = new(msg.Start)
			m.filter.EndDate = new(msg.End)
		}

		m.state = txStateLoading

		return m, m.loadCmd()

	case txLoadedMsg:
		m.state = txStateList
		m.err = msg.err
		m.txs = msg.txs
		m.cursor = min(m.cursor, max(len(m.txs)-1, 0))

		return m, nil

	case txDeletedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.status = "Transação excluída."

		return m, m.loadCmd()
	}

	switch m.state {
	case txStatePeriod:
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)

		return m, cmd
	case txStateList:
		return m.updateList(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.txs)-1 {
			m.cursor++
		}
	case "d":
		if len(m.txs) > 0 {
			return m, m.deleteCmd(m.txs[m.cursor].ID)
		}
	}

	return m, nil
}

func (m TransactionsModel) View() string {
	var body string

	switch m.state {
	case txStatePeriod:
		body = m.picker.View()
	case txStateLoading:
		body = "Carregando..."
	case txStateList:
		body = m.viewList()
	}

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		body,
		"",
		dimStyle.Render(m.ShortHelp()),
	))
}

func (m TransactionsModel) viewList() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Erro: %v", m.err))
	}

	if len(m.txs) == 0 {
		return "Nenhuma transação no período."
	}

	selected := lipgloss.NewStyle().Padding(0, 1).Reverse(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Data", "Descrição", "Valor", "Tipo", "Parcela", "Pago").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == m.cursor {
				return selected
			}

			return cell
		})

	for _, tx := range m.txs {
		installment := "-"
		if tx.TotalInstallments > 1 {
			installment = strconv.Itoa(tx.Installment) + "/" + strconv.Itoa(tx.TotalInstallments)
		}

		paid := "não"
		if tx.IsPaid {
			paid = "sim"
		}

		t.Row(FormatDate(tx.Date), tx.Description, FormatAmount(tx.Amount), string(tx.Type), installment, paid)
	}

	out := t.Render()
	if m.status != "" {
		out += "\n" + okStyle.Render(m.status)
	}

	return out
}

type txLoadedMsg struct {
	txs []*transaction.Transaction
	err error
}

type txDeletedMsg struct {
	err error
}

func (m TransactionsModel) loadCmd() tea.Cmd {
	filter := m.filter

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := m.svc.List(ctx, m.userID, filter)

		return txLoadedMsg{txs: txs, err: err}
	}
}

func (m TransactionsModel) deleteCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return txDeletedMsg{err: m.svc.Delete(ctx, m.userID, id)}
	}
}
