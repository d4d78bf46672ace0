package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tyrone-yanaga/product-launcher/internal/tui/tuistyles"
)

// DataSeries represents a single line in a chart
type DataSeries struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// ASCIIChart displays a simple line chart
type ASCIIChart struct {
	Title       string
	Series      []*DataSeries
	Labels      []string // X-axis labels
	Width       int
	Height      int
	ShowLegend  bool
	XAxisLabel  string
	formatValue func(float64) string
}

// NewASCIIChart creates a new ASCII chart
func NewASCIIChart(title string) *ASCIIChart {
	return &ASCIIChart{
		Title:       title,
		Series:      []*DataSeries{},
		Labels:      []string{},
		Width:       60,
		Height:      12,
		ShowLegend:  true,
		formatValue: formatChartValue,
	}
}

// AddSeries adds a data series to the chart
func (c *ASCIIChart) AddSeries(name string, points []float64, color lipgloss.Color) *ASCIIChart {
	c.Series = append(c.Series, &DataSeries{
		Name:   name,
		Points: points,
		Color:  color,
	})
	return c
}

// WithLabels sets the X-axis labels
func (c *ASCIIChart) WithLabels(labels []string) *ASCIIChart {
	c.Labels = labels
	return c
}

// WithSize sets the chart dimensions
func (c *ASCIIChart) WithSize(width, height int) *ASCIIChart {
	if width > 20 {
		c.Width = width
	}
	if height > 2 {
		c.Height = height
	}
	return c
}

// WithXAxisLabel sets the X-axis caption
func (c *ASCIIChart) WithXAxisLabel(label string) *ASCIIChart {
	c.XAxisLabel = label
	return c
}

// WithValueFormatter sets how Y-axis values are printed
func (c *ASCIIChart) WithValueFormatter(f func(float64) string) *ASCIIChart {
	if f != nil {
		c.formatValue = f
	}
	return c
}

// Render returns the styled chart
func (c *ASCIIChart) Render() string {
	if !c.hasPoints() {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder

	if c.Title != "" {
		content.WriteString(tuistyles.TitleStyle.Render(c.Title))
		content.WriteString("\n\n")
	}

	minVal, maxVal := c.getGlobalMinMax()
	content.WriteString(c.renderGrid(minVal, maxVal))

	if c.XAxisLabel != "" {
		content.WriteString("\n")
		content.WriteString(tuistyles.SubtitleStyle.Render(c.XAxisLabel))
	}

	if c.ShowLegend && len(c.Series) > 1 {
		content.WriteString("\n\n")
		content.WriteString(c.renderLegend())
	}

	return content.String()
}

func (c *ASCIIChart) hasPoints() bool {
	for _, s := range c.Series {
		if len(s.Points) > 0 {
			return true
		}
	}
	return false
}

// getGlobalMinMax finds the min and max values across all series, padded by 10%.
// A flat range is widened so every point still maps onto the grid.
func (c *ASCIIChart) getGlobalMinMax() (float64, float64) {
	globalMin := math.Inf(1)
	globalMax := math.Inf(-1)

	for _, series := range c.Series {
		for _, point := range series.Points {
			globalMin = math.Min(globalMin, point)
			globalMax = math.Max(globalMax, point)
		}
	}

	if globalMax == globalMin {
		spread := math.Max(math.Abs(globalMax)*0.1, 1)
		return globalMin - spread, globalMax + spread
	}

	padding := (globalMax - globalMin) * 0.1
	return globalMin - padding, globalMax + padding
}

// column maps the i-th of n points onto the chart width
func column(i, n, chartWidth int) int {
	if n <= 1 {
		return chartWidth / 2
	}
	return int(float64(i) / float64(n-1) * float64(chartWidth-1))
}

// row maps a value onto the chart height, top row being the maximum
func (c *ASCIIChart) row(v, minVal, maxVal float64) int {
	return c.Height - 1 - int((v-minVal)/(maxVal-minVal)*float64(c.Height-1))
}

// renderGrid renders the chart grid with data points
func (c *ASCIIChart) renderGrid(minVal, maxVal float64) string {
	yAxisWidth := 12
	chartWidth := c.Width - yAxisWidth

	grid := make([][]rune, c.Height)
	owner := make([][]int, c.Height)
	for i := range grid {
		grid[i] = make([]rune, chartWidth)
		owner[i] = make([]int, chartWidth)
		for j := range grid[i] {
			grid[i][j] = ' '
			owner[i][j] = -1
		}
	}

	for seriesIdx, series := range c.Series {
		pointChar := c.getSeriesChar(seriesIdx)
		n := len(series.Points)

		for i, point := range series.Points {
			x := column(i, n, chartWidth)
			y := c.row(point, minVal, maxVal)

			if i > 0 {
				prevX := column(i-1, n, chartWidth)
				prevY := c.row(series.Points[i-1], minVal, maxVal)
				c.drawLine(grid, owner, prevX, prevY, x, y, seriesIdx)
			}

			if x >= 0 && x < chartWidth && y >= 0 && y < c.Height {
				grid[y][x] = pointChar
				owner[y][x] = seriesIdx
			}
		}
	}

	var output strings.Builder
	valueRange := maxVal - minVal
	yAxisStyle := lipgloss.NewStyle().
		Foreground(tuistyles.ColorMuted).
		Width(yAxisWidth).
		Align(lipgloss.Right)

	for i, cells := range grid {
		yValue := maxVal - (float64(i)/float64(c.Height-1))*valueRange
		output.WriteString(yAxisStyle.Render(c.formatValue(yValue)))
		output.WriteString(" │ ")

		for j, r := range cells {
			if owner[i][j] < 0 {
				output.WriteRune(r)
				continue
			}
			style := lipgloss.NewStyle().Foreground(c.Series[owner[i][j]].Color)
			output.WriteString(style.Render(string(r)))
		}
		output.WriteString("\n")
	}

	output.WriteString(strings.Repeat(" ", yAxisWidth))
	output.WriteString(" └")
	output.WriteString(strings.Repeat("─", chartWidth))
	output.WriteString("\n")

	if len(c.Labels) > 0 {
		output.WriteString(c.renderXAxisLabels(yAxisWidth, chartWidth))
	}

	return output.String()
}

// getSeriesChar returns the character to use for a series
func (c *ASCIIChart) getSeriesChar(index int) rune {
	chars := []rune{'●', '■', '▲', '♦'}
	return chars[index%len(chars)]
}

// drawLine connects two points using Bresenham's algorithm
func (c *ASCIIChart) drawLine(grid [][]rune, owner [][]int, x0, y0, x1, y1, seriesIdx int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)

	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}

	err := dx - dy
	x, y := x0, y0

	for {
		if x >= 0 && x < len(grid[0]) && y >= 0 && y < len(grid) && grid[y][x] == ' ' {
			grid[y][x] = '·'
			owner[y][x] = seriesIdx
		}

		if x == x1 && y == y1 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// renderXAxisLabels places each shown label under the column of its data point
func (c *ASCIIChart) renderXAxisLabels(yAxisWidth, chartWidth int) string {
	maxLabels := 6
	step := (len(c.Labels) + maxLabels - 1) / maxLabels
	if step == 0 {
		step = 1
	}

	line := []rune(strings.Repeat(" ", chartWidth))
	for i := 0; i < len(c.Labels); i += step {
		label := []rune(shortLabel(c.Labels[i]))
		start := column(i, len(c.Labels), chartWidth)
		if start+len(label) > chartWidth {
			start = chartWidth - len(label)
		}
		if start < 0 {
			continue
		}
		copy(line[start:], label)
	}

	labelStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	return strings.Repeat(" ", yAxisWidth+3) + labelStyle.Render(string(line))
}

// shortLabel abbreviates month names to three characters
func shortLabel(label string) string {
	r := []rune(label)
	if len(r) > 3 {
		return string(r[:3])
	}
	return label
}

// renderLegend renders the chart legend
func (c *ASCIIChart) renderLegend() string {
	var items []string

	for i, series := range c.Series {
		symbol := lipgloss.NewStyle().Foreground(series.Color).Render(string(c.getSeriesChar(i)))
		name := lipgloss.NewStyle().Foreground(tuistyles.ColorForeground).Render(series.Name)
		items = append(items, fmt.Sprintf("%s %s", symbol, name))
	}

	return tuistyles.HelpStyle.Render("Legend: ") + strings.Join(items, " • ")
}

// formatChartValue formats a value for display on Y-axis
func formatChartValue(value float64) string {
	if math.Abs(value) >= 1000000 {
		return fmt.Sprintf("%.1fM", value/1000000)
	} else if math.Abs(value) >= 1000 {
		return fmt.Sprintf("%.1fK", value/1000)
	}
	return fmt.Sprintf("%.0f", value)
}

// abs returns absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
