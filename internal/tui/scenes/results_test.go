package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

func projected(records []domain.MonthlyRecord) (*display.Projector, *display.Model) {
	p := display.NewProjector(language.AmericanEnglish)
	return p, p.Project(&domain.OptimizationResult{
		OptimalPrice:  19.994,
		TotalRevenue:  1234567,
		TotalProfit:   -500,
		AverageVolume: 87.5,
		MonthlyData:   records,
	})
}

func TestResultsModel_EmptyState(t *testing.T) {
	m := NewResultsModel(display.NewProjector(language.AmericanEnglish))
	assert.False(t, m.HasResults())
	assert.Contains(t, m.View(), "No results to display")
}

func TestResultsModel_Cards(t *testing.T) {
	p, model := projected([]domain.MonthlyRecord{{Month: "January", Revenue: 100, Profit: 10, Volume: 5}})
	m := NewResultsModel(p)
	m.SetSize(160, 50)
	m.SetResults("sales.csv", model)

	view := m.View()
	assert.True(t, m.HasResults())
	for _, want := range []string{
		"Optimal Sales Price", "$19.99",
		"Expected Revenue", "$1,234,567",
		"Total Profit", "-$500",
		"Average Monthly Volume", "88 units",
		"Sales data: sales.csv",
		"Revenue & Profit", "Sales Volume",
	} {
		assert.Contains(t, view, want)
	}
}

func TestResultsModel_NoMonthlyData(t *testing.T) {
	p, model := projected([]domain.MonthlyRecord{})
	m := NewResultsModel(p)
	m.SetResults("", model)

	assert.Contains(t, m.View(), "No monthly projection returned.")
}

func TestResultsModel_ToggleTable(t *testing.T) {
	records := make([]domain.MonthlyRecord, 14)
	for i := range records {
		records[i] = domain.MonthlyRecord{Month: "M", Revenue: 1500.5, Profit: 250, Volume: 10}
	}
	p, model := projected(records)
	m := NewResultsModel(p)
	m.SetSize(160, 50)
	m.SetResults("sales.csv", model)

	assert.NotContains(t, m.View(), "more months")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	view := m.View()
	assert.Contains(t, view, "$1,500.5")
	assert.Contains(t, view, "... and 2 more months")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.NotContains(t, m.View(), "more months")
}

func TestShortAmount(t *testing.T) {
	assert.Equal(t, "1.5M", shortAmount(1500000))
	assert.Equal(t, "12K", shortAmount(12000))
	assert.Equal(t, "-3K", shortAmount(-3000))
	assert.Equal(t, "999", shortAmount(999))
}
