package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tyrone-yanaga/product-launcher/internal/session"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/tuimsg"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// Standard tea.Msg types
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.formModel.SetSize(msg.Width, msg.Height)
		m.resultsModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		if !m.session.State().IsPending() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.syncStatus()
		return m, cmd

	// Custom messages
	case NavigateMsg:
		m.currentScene = msg.Scene
		return m, nil

	case tuimsg.FieldChangedMsg:
		m.inputs.Set(msg.Field, msg.Value)
		return m, nil

	case tuimsg.FileChosenMsg:
		if msg.Path == "" {
			m.clearFile()
			return m, nil
		}
		m.loadingPath = msg.Path
		return m, loadFileCmd(msg.Path, false)

	case tuimsg.SubmitRequestedMsg:
		switch {
		case msg.FilePath == "":
			m.clearFile()
			return m.begin()
		case msg.FilePath == m.filePath && m.file != nil:
			return m.begin()
		}
		m.loadingPath = msg.FilePath
		return m, loadFileCmd(msg.FilePath, true)

	case FileLoadedMsg:
		if msg.Path != m.loadingPath {
			return m, nil
		}
		m.file = msg.File
		m.filePath = msg.Path
		m.formModel.SetFile(msg.File.Name, "")
		if msg.Submit {
			return m.begin()
		}
		return m, nil

	case FileLoadFailedMsg:
		if msg.Path != m.loadingPath {
			return m, nil
		}
		m.logger.Warn("sales data file unreadable", zap.String("path", msg.Path), zap.Error(msg.Err))
		m.file = nil
		m.filePath = msg.Path
		m.formModel.SetFile("", "Could not read "+msg.Path)
		if msg.Submit {
			return m.begin()
		}
		return m, nil

	case SubmissionResolvedMsg:
		if !m.session.Resolve(msg.Ticket, msg.Result, msg.Err) {
			return m, nil
		}
		m.syncStatus()
		state := m.session.State()
		if state.Kind != session.Success {
			return m, nil
		}
		m.resultsModel.SetResults(msg.Ticket.Payload.File.Name, m.projector.Project(state.Result))
		return m, func() tea.Msg {
			return NavigateMsg{Scene: SceneResults}
		}
	}

	// Delegate to scene-specific update handlers
	return m.updateCurrentScene(msg)
}

// begin starts a submission with the current file and inputs
func (m Model) begin() (tea.Model, tea.Cmd) {
	ticket, err := m.session.Begin(m.file, m.inputs)
	m.syncStatus()
	if err != nil {
		return m, nil
	}
	if m.optimizer == nil {
		m.session.Resolve(ticket, nil, errNoOptimizer)
		m.syncStatus()
		return m, nil
	}
	return m, tea.Batch(submitCmd(m.ctx, m.optimizer, ticket), m.spinner.Tick)
}

func (m *Model) clearFile() {
	m.file = nil
	m.filePath = ""
	m.loadingPath = ""
	m.formModel.SetFile("", "")
}

// syncStatus copies the session state into the form's status line
func (m *Model) syncStatus() {
	state := m.session.State()
	errMsg := ""
	if state.Kind == session.Error {
		errMsg = state.Message
	}
	m.formModel.SetStatus(state.IsPending(), m.spinner.View(), errMsg)
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keyboard shortcuts
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.currentScene == SceneResults {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "esc", "n":
			return m, func() tea.Msg {
				return NavigateMsg{Scene: SceneForm}
			}
		}
	}

	// Let the current scene handle other keys
	return m.updateCurrentScene(msg)
}

// updateCurrentScene delegates updates to the current scene's model
func (m Model) updateCurrentScene(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.currentScene {
	case SceneForm:
		m.formModel, cmd = m.formModel.Update(msg)
	case SceneResults:
		m.resultsModel, cmd = m.resultsModel.Update(msg)
	}
	return m, cmd
}
