package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the current state of the application
func (m Model) View() string {
	var content string
	switch m.currentScene {
	case SceneForm:
		content = m.formModel.View()
	case SceneResults:
		content = m.resultsModel.View()
	default:
		content = "Unknown scene"
	}

	// Wrap content with app styling and status bar
	return m.renderApp(content)
}

// renderApp wraps content with title bar, status bar, and main container
func (m Model) renderApp(content string) string {
	titleBar := m.renderTitleBar()
	statusBar := m.renderStatusBar()

	contentHeight := m.height - 4 // Title (2) + status (1) + padding (1)

	contentContainer := lipgloss.NewStyle().
		Height(max(contentHeight, 0)).
		Render(content)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleBar,
		contentContainer,
		statusBar,
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("SALESOPT - Sales Price Optimizer")
	breadcrumb := SubtitleStyle.Render(m.currentScene.String())

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		breadcrumb,
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	switch m.currentScene {
	case SceneForm:
		shortcuts = []string{
			formatShortcut("enter", "optimize"),
			formatShortcut("tab", "next field"),
			formatShortcut("ctrl+c", "quit"),
		}
	case SceneResults:
		shortcuts = []string{
			formatShortcut("esc", "new optimization"),
			formatShortcut("t", "table"),
			formatShortcut("q", "quit"),
		}
	}

	statusText := strings.Join(shortcuts, " • ")

	// Right-align session state and endpoint
	right := m.session.State().Kind.String()
	if m.endpoint != "" {
		right = m.endpoint + " • " + right
	}
	right = SubtitleStyle.Render(right)
	width := m.width - lipgloss.Width(statusText) - lipgloss.Width(right) - 2
	statusText = statusText + strings.Repeat(" ", max(1, width)) + right

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}
