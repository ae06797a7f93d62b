package main

import (
	"context"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/texttx/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/texttx/internal/app"
	"github.com/MrJamesThe3rd/texttx/internal/config"
)

type View int

const (
	ViewMenu         View = 0
	ViewChat         View = 1
	ViewTransactions View = 2
)

type model struct {
	app    *app.App
	userID uuid.UUID

	currentView View

	chatView         view.ChatModel
	transactionsView view.TransactionsModel
}

func initialModel(a *app.App, userID uuid.UUID) model {
	return model{
		app:              a,
		userID:           userID,
		currentView:      ViewMenu,
		chatView:         view.NewChatModel(a.Assistant, userID),
		transactionsView: view.NewTransactionsModel(a.Transactions, userID),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.currentView == ViewMenu {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewChat
				return m, m.chatView.Init()
			case "2":
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.app.Transactions, m.userID)

				return m, m.transactionsView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewChat:
		var newModel tea.Model
		newModel, cmd = m.chatView.Update(msg)
		m.chatView = newModel.(view.ChatModel)
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"texttx\n\n" +
				"1. Nova transação\n" +
				"2. Transações\n\n" +
				"q. Sair",
		)
	case ViewChat:
		return m.chatView.View()
	case ViewTransactions:
		return m.transactionsView.View()
	}

	return "Unknown View"
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userID, err := uuid.Parse(cfg.TUI.UserID)
	if err != nil {
		slog.Error("TUI_USER_ID must be a user id", "error", err)
		os.Exit(1)
	}

	// stdout belongs to the terminal UI.
	logFile, err := tea.LogToFile("texttx-tui.log", "texttx")
	if err != nil {
		slog.Error("failed to open log file", "error", err)
		os.Exit(1)
	}
	defer logFile.Close()

	slog.SetDefault(slog.New(slog.NewTextHandler(logFile, nil)))

	a, err := app.New(context.Background(), cfg, false)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	p := tea.NewProgram(initialModel(a, userID), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}
