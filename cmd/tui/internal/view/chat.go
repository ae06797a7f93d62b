package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/texttx/internal/assistant"
	"github.com/MrJamesThe3rd/texttx/internal/category"
)

// providerTimeout covers a full extraction including one provider round trip.
const providerTimeout = 45 * time.Second

const transcriptLines = 14

type chatState int

const (
	chatStateInput chatState = iota
	chatStateThinking
	chatStateCategory
	chatStateConfirm
)

// chatChoice holds the values bound to the huh fields.
type chatChoice struct {
	categoryID uuid.UUID
	confirmed  bool
}

type ChatModel struct {
	svc    *assistant.Service
	userID uuid.UUID

	state   chatState
	input   textinput.Model
	spinner spinner.Model
	form    *huh.Form
	choice  *chatChoice

	transcript   []string
	previousText string
	draft        assistant.Draft
}

func NewChatModel(svc *assistant.Service, userID uuid.UUID) ChatModel {
	ti := textinput.New()
	ti.Placeholder = "ex: gastei 50 reais no mercado hoje"
	ti.Prompt = "› "
	ti.CharLimit = 280
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return ChatModel{
		svc:     svc,
		userID:  userID,
		state:   chatStateInput,
		input:   ti,
		spinner: s,
		choice:  &chatChoice{},
	}
}

func (m ChatModel) Title() string { return "Nova transação" }

func (m ChatModel) ShortHelp() string {
	switch m.state {
	case chatStateThinking:
		return "Processando..."
	case chatStateCategory, chatStateConfirm:
		return "Esc: cancelar | Enter: confirmar"
	}

	return "Esc: voltar | Enter: enviar"
}

func (m ChatModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ChatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if out, ok := msg.(outcomeMsg); ok {
		return m.handleOutcome(out)
	}

	switch m.state {
	case chatStateInput:
		return m.updateInput(msg)
	case chatStateThinking:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	case chatStateCategory, chatStateConfirm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m ChatModel) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEsc:
			return m, Back
		case tea.KeyEnter:
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}

			m.say("Você", text)
			m.input.Reset()
			m.state = chatStateThinking

			previous := m.previousText
			m.previousText = ""

			return m, tea.Batch(m.spinner.Tick, m.sendCmd(previous, text))
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m ChatModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		m.say("Assistente", "Transação descartada.")
		return m.backToInput()
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	if m.state == chatStateCategory {
		m.state = chatStateThinking
		return m, tea.Batch(m.spinner.Tick, m.selectCategoryCmd(m.draft, m.choice.categoryID))
	}

	if !m.choice.confirmed {
		m.say("Assistente", "Transação descartada.")
		return m.backToInput()
	}

	m.state = chatStateThinking

	return m, tea.Batch(m.spinner.Tick, m.confirmCmd(m.draft))
}

func (m ChatModel) handleOutcome(msg outcomeMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.say("Erro", errorStyle.Render(msg.err.Error()))
		return m.backToInput()
	}

	switch o := msg.out.(type) {
	case assistant.NeedsInfo:
		m.say("Assistente", o.Prompt)
		m.previousText = o.Text

		return m.backToInput()

	case assistant.NeedsCategory:
		m.say("Assistente", o.Prompt)

		if len(o.Categories) == 0 {
			m.say("Assistente", "Nenhuma categoria de despesa cadastrada.")
			return m.backToInput()
		}

		m.draft = o.Draft
		m.choice = &chatChoice{categoryID: o.Categories[0].ID}
		m.form = categoryForm(o.Categories, m.choice)
		m.state = chatStateCategory

		return m, m.form.Init()

	case assistant.NeedsConfirmation:
		m.say("Assistente", o.Prompt)

		m.draft = o.Draft
		m.choice = &chatChoice{confirmed: true}
		m.form = confirmForm(m.choice)
		m.state = chatStateConfirm

		return m, m.form.Init()

	case assistant.Success:
		m.say("Assistente", okStyle.Render(o.Message))
	}

	return m.backToInput()
}

func (m ChatModel) backToInput() (tea.Model, tea.Cmd) {
	m.state = chatStateInput
	m.form = nil
	m.input.Focus()

	return m, textinput.Blink
}

func (m *ChatModel) say(who, text string) {
	m.transcript = append(m.transcript, fmt.Sprintf("%s: %s", titleStyle.Render(who), text))
}

func categoryForm(cats []category.Category, choice *chatChoice) *huh.Form {
	options := make([]huh.Option[uuid.UUID], len(cats))
	for i, c := range cats {
		options[i] = huh.NewOption(c.Name, c.ID)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[uuid.UUID]().
				Title("Categoria").
				Options(options...).
				Value(&choice.categoryID),
		),
	).WithWidth(50).WithShowHelp(false)
}

func confirmForm(choice *chatChoice) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Os dados estão corretos?").
				Affirmative("Sim").
				Negative("Não").
				Value(&choice.confirmed),
		),
	).WithShowHelp(false)
}

func (m ChatModel) View() string {
	lines := m.transcript
	if len(lines) > transcriptLines {
		lines = lines[len(lines)-transcriptLines:]
	}

	var footer string

	switch m.state {
	case chatStateInput:
		footer = m.input.View()
	case chatStateThinking:
		footer = fmt.Sprintf("%s Pensando...", m.spinner.View())
	case chatStateCategory, chatStateConfirm:
		footer = m.form.View()
	}

	return padded.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.Title()),
		"",
		strings.Join(lines, "\n\n"),
		"",
		footer,
		"",
		dimStyle.Render(m.ShortHelp()),
	))
}

type outcomeMsg struct {
	out assistant.Outcome
	err error
}

func (m ChatModel) sendCmd(previous, text string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), providerTimeout)
		defer cancel()

		if previous != "" {
			return outcomeMsg{out: m.svc.Continue(ctx, m.userID, previous, text)}
		}

		return outcomeMsg{out: m.svc.Extract(ctx, m.userID, text)}
	}
}

func (m ChatModel) selectCategoryCmd(draft assistant.Draft, id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		out, err := m.svc.SelectCategory(ctx, m.userID, draft, id)
		if err != nil {
			return outcomeMsg{err: err}
		}

		return outcomeMsg{out: out}
	}
}

func (m ChatModel) confirmCmd(draft assistant.Draft) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		out, err := m.svc.Confirm(ctx, m.userID, draft)
		if err != nil {
			return outcomeMsg{err: err}
		}

		return outcomeMsg{out: out}
	}
}
