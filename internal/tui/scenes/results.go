package scenes

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/components"
	"github.com/tyrone-yanaga/product-launcher/internal/tui/tuistyles"
)

// maxTableMonths caps the monthly table; the chart always shows every month.
const maxTableMonths = 12

var keyToggleTable = key.NewBinding(key.WithKeys("t"))

// ResultsModel represents the results display scene
type ResultsModel struct {
	model     *display.Model
	projector *display.Projector
	fileName  string
	showTable bool
	width     int
	height    int
}

// NewResultsModel creates a new results scene model
func NewResultsModel(projector *display.Projector) *ResultsModel {
	return &ResultsModel{projector: projector}
}

// SetResults updates the results to display
func (m *ResultsModel) SetResults(fileName string, model *display.Model) {
	m.fileName = fileName
	m.model = model
}

// HasResults reports whether there is anything to show
func (m *ResultsModel) HasResults() bool {
	return m.model != nil
}

// SetSize updates the scene dimensions
func (m *ResultsModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages for the results scene
func (m *ResultsModel) Update(msg tea.Msg) (*ResultsModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keyToggleTable) {
		m.showTable = !m.showTable
	}
	return m, nil
}

// View renders the results scene
func (m *ResultsModel) View() string {
	if m.model == nil {
		return renderNoResultsState()
	}

	sections := []string{
		renderResultsHeader(m.fileName),
		"",
		renderKeyMetrics(m.model, m.columns()),
		"",
		m.renderCharts(),
	}
	if m.showTable {
		sections = append(sections, "", m.renderMonthlyTable())
	}
	sections = append(sections, "", renderResultsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *ResultsModel) columns() int {
	if m.width > 0 && m.width < 124 {
		return 2
	}
	return 4
}

// renderNoResultsState renders empty state
func renderNoResultsState() string {
	return `No results to display.

Submit the form to optimize a sales price.

Press ESC to go back.`
}

// renderResultsHeader renders the header with the source file name
func renderResultsHeader(fileName string) string {
	title := tuistyles.TitleStyle.Render("Optimization Results")
	if fileName == "" {
		return title
	}
	subtitle := tuistyles.SubtitleStyle.Render("Sales data: " + fileName)
	return lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
}

// renderKeyMetrics renders the four result cards
func renderKeyMetrics(model *display.Model, columns int) string {
	cards := []*components.MetricCard{
		components.NewMetricCard("Optimal Sales Price", "$"+model.OptimalPrice).
			WithAccent(tuistyles.ColorSuccess),
		components.NewMetricCard("Expected Revenue", model.TotalRevenue).
			WithAccent(tuistyles.ColorChartRevenue),
		components.NewMetricCard("Total Profit", model.TotalProfit).
			WithAccent(tuistyles.ColorChartProfit),
		components.NewMetricCard("Average Monthly Volume", model.AverageVolume+" units").
			WithAccent(tuistyles.ColorChartVolume),
	}

	return components.MetricGrid(cards, columns)
}

// renderCharts draws money and volume on separate charts so each keeps its own scale
func (m *ResultsModel) renderCharts() string {
	raw := m.model.Raw()
	if raw == nil || len(raw.MonthlyData) == 0 {
		return tuistyles.InfoStyle.Render("No monthly projection returned.")
	}

	width := 72
	if m.width > 20 && m.width-6 < width {
		width = m.width - 6
	}

	money := components.NewASCIIChart("Revenue & Profit").
		WithSize(width, 10).
		WithLabels(raw.Months()).
		AddSeries("Revenue", raw.Revenues(), tuistyles.ColorChartRevenue).
		AddSeries("Profit", raw.Profits(), tuistyles.ColorChartProfit).
		WithValueFormatter(func(v float64) string { return "$" + shortAmount(v) })

	volume := components.NewASCIIChart("Sales Volume").
		WithSize(width, 6).
		WithLabels(raw.Months()).
		AddSeries("Volume", raw.Volumes(), tuistyles.ColorChartVolume).
		WithXAxisLabel("Month")

	return lipgloss.JoinVertical(lipgloss.Left, money.Render(), "", volume.Render())
}

// renderMonthlyTable lists the projection month by month
func (m *ResultsModel) renderMonthlyTable() string {
	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(1, 2)

	headerStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true)

	var content strings.Builder
	header := fmt.Sprintf("%-10s  %16s  %16s  %10s", "Month", "Revenue", "Profit", "Volume")
	content.WriteString(headerStyle.Render(header))
	content.WriteString("\n")
	content.WriteString(strings.Repeat("─", len(header)))
	content.WriteString("\n")

	series := m.model.Series
	shown := min(len(series), maxTableMonths)
	for _, rec := range series[:shown] {
		content.WriteString(fmt.Sprintf("%-10s  %16s  %16s  %10s\n",
			rec.Month,
			m.projector.Currency(rec.Revenue),
			m.projector.Currency(rec.Profit),
			m.projector.Number(rec.Volume)))
	}

	if len(series) > shown {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(fmt.Sprintf("... and %d more months", len(series)-shown)))
	}

	return tableStyle.Render(strings.TrimRight(content.String(), "\n"))
}

// renderResultsHelp renders keyboard shortcuts
func renderResultsHelp() string {
	return tuistyles.HelpStyle.Render("ESC/n new optimization • t toggle monthly table • q quit")
}

// shortAmount formats an axis value in short form
func shortAmount(value float64) string {
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	switch {
	case value >= 1000000:
		return fmt.Sprintf("%s%.1fM", sign, value/1000000)
	case value >= 1000:
		return fmt.Sprintf("%s%.0fK", sign, value/1000)
	}
	return fmt.Sprintf("%s%.0f", sign, value)
}
