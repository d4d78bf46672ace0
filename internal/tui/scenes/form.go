package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/tuimsg"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/tuistyles"
)

// Form field indexes, in focus order.
const (
	fieldFile = iota
	fieldProductionCost
	fieldViableSalesPrice
	fieldMaxSalesPrice
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Sales Data File (CSV or Excel)",
	"Production Cost ($)",
	"Minimum Viable Sales Price ($)",
	"Maximum Sales Price ($)",
}

var fieldNames = [fieldCount]string{
	domain.FieldFile,
	domain.FieldProductionCost,
	domain.FieldViableSalesPrice,
	domain.FieldMaxSalesPrice,
}

var (
	keyNext   = key.NewBinding(key.WithKeys("tab", "down"))
	keyPrev   = key.NewBinding(key.WithKeys("shift+tab", "up"))
	keySubmit = key.NewBinding(key.WithKeys("enter"))
)

// FormModel is the submission form: a file path and the three pricing fields.
type FormModel struct {
	inputs   [fieldCount]textinput.Model
	focused  int
	lastPath string

	// Status shown under the fields, set by the root model.
	fileName string
	fileErr  string
	errMsg   string
	pending  bool
	spinner  string

	width  int
	height int
}

// NewFormModel creates a form seeded with the given values
func NewFormModel(filePath string, inputs domain.FormInputs) *FormModel {
	m := &FormModel{lastPath: filePath}

	placeholders := [fieldCount]string{"path/to/sales.csv", "0.00", "0.00", "0.00"}
	values := [fieldCount]string{filePath, inputs.ProductionCost, inputs.ViableSalesPrice, inputs.MaxSalesPrice}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Width = 40
		ti.SetValue(values[i])
		m.inputs[i] = ti
	}
	m.inputs[fieldFile].Focus()

	return m
}

// SetSize updates the scene dimensions
func (m *FormModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	if width > 10 {
		for i := range m.inputs {
			m.inputs[i].Width = min(width-10, 60)
		}
	}
}

// SetFile records the currently selected file, or a load failure for it
func (m *FormModel) SetFile(name, loadErr string) {
	m.fileName = name
	m.fileErr = loadErr
}

// SetStatus updates the submission status line
func (m *FormModel) SetStatus(pending bool, spinner, errMsg string) {
	m.pending = pending
	m.spinner = spinner
	m.errMsg = errMsg
}

// Focused returns the index of the focused field
func (m *FormModel) Focused() int {
	return m.focused
}

// Value returns the current text of the field with the given wire name
func (m *FormModel) Value(name string) string {
	for i, n := range fieldNames {
		if n == name {
			return m.inputs[i].Value()
		}
	}
	return ""
}

// Update handles messages for the form scene
func (m *FormModel) Update(msg tea.Msg) (*FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keyNext):
		return m, m.moveFocus(1)
	case key.Matches(keyMsg, keyPrev):
		return m, m.moveFocus(-1)
	case key.Matches(keyMsg, keySubmit):
		path := strings.TrimSpace(m.inputs[fieldFile].Value())
		m.lastPath = path
		return m, func() tea.Msg {
			return tuimsg.SubmitRequestedMsg{FilePath: path}
		}
	}

	before := m.inputs[m.focused].Value()
	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	after := m.inputs[m.focused].Value()

	if m.focused == fieldFile || before == after {
		return m, cmd
	}

	changed := tuimsg.FieldChangedMsg{Field: fieldNames[m.focused], Value: after}
	return m, tea.Batch(cmd, func() tea.Msg { return changed })
}

// moveFocus cycles focus and reports a new file path when leaving the file field
func (m *FormModel) moveFocus(delta int) tea.Cmd {
	var cmd tea.Cmd
	if m.focused == fieldFile {
		path := strings.TrimSpace(m.inputs[fieldFile].Value())
		if path != m.lastPath {
			m.lastPath = path
			cmd = func() tea.Msg { return tuimsg.FileChosenMsg{Path: path} }
		}
	}

	m.inputs[m.focused].Blur()
	m.focused = (m.focused + delta + fieldCount) % fieldCount
	focusCmd := m.inputs[m.focused].Focus()

	return tea.Batch(cmd, focusCmd)
}

// View renders the form scene
func (m *FormModel) View() string {
	var b strings.Builder

	b.WriteString(tuistyles.TitleStyle.Render("Sales Price Optimizer"))
	b.WriteString("\n")
	b.WriteString(tuistyles.SubtitleStyle.Render("Upload historical sales data and set your pricing bounds"))
	b.WriteString("\n\n")

	for i := range m.inputs {
		labelStyle := tuistyles.FieldLabelStyle
		if i == m.focused {
			labelStyle = tuistyles.FocusedLabelStyle
		}
		b.WriteString(labelStyle.Render(fieldLabels[i]))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if i == fieldFile {
			b.WriteString(m.renderFileInfo())
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if status := m.renderStatus(); status != "" {
		b.WriteString(status)
		b.WriteString("\n\n")
	}

	b.WriteString(renderFormHelp())

	return tuistyles.BorderStyle.Render(b.String())
}

func (m *FormModel) renderFileInfo() string {
	switch {
	case m.fileErr != "":
		return lipgloss.NewStyle().Foreground(tuistyles.ColorDanger).Render(m.fileErr)
	case m.fileName != "":
		info := "Selected: " + m.fileName
		if !domain.NewSelectedFile(m.fileName, nil).HasSupportedExtension() {
			info += "  (expected " + strings.Join(domain.SupportedFileExtensions, ", ") + ")"
		}
		return tuistyles.InfoStyle.Render(info)
	default:
		return tuistyles.HelpStyle.Render("Accepted: " + strings.Join(domain.SupportedFileExtensions, ", "))
	}
}

func (m *FormModel) renderStatus() string {
	if m.pending {
		return m.spinner + " " + tuistyles.InfoStyle.Render("Optimizing...")
	}
	if m.errMsg != "" {
		return tuistyles.ErrorStyle.Render(m.errMsg)
	}
	return ""
}

func renderFormHelp() string {
	return tuistyles.HelpStyle.Render("tab/↓ next field • shift+tab/↑ previous • enter optimize price • ctrl+c quit")
}
