package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

func TestProject_ReferenceResponse(t *testing.T) {
	result := &domain.OptimizationResult{
		OptimalPrice:  19.995,
		TotalRevenue:  1234567,
		TotalProfit:   88888,
		AverageVolume: 120.6,
		MonthlyData:   []domain.MonthlyRecord{{Month: "Jan", Revenue: 1000, Profit: 200, Volume: 50}},
	}

	m := NewProjector(language.AmericanEnglish).Project(result)
	require.NotNil(t, m)

	assert.Contains(t, []string{"19.99", "20.00"}, m.OptimalPrice)
	assert.Equal(t, "$1,234,567", m.TotalRevenue)
	assert.Equal(t, "$88,888", m.TotalProfit)
	assert.Equal(t, "121", m.AverageVolume)
	assert.Equal(t, result.MonthlyData, m.Series)
	assert.Same(t, result, m.Raw())
}

func TestProject_SeriesIsPassedThroughInOrder(t *testing.T) {
	series := []domain.MonthlyRecord{
		{Month: "August", Revenue: 8, Profit: 3, Volume: 1.25},
		{Month: "January", Revenue: 1, Profit: -2, Volume: 0},
		{Month: "March", Revenue: 3.333, Profit: 1, Volume: 7},
	}
	m := NewProjector(language.English).Project(&domain.OptimizationResult{MonthlyData: series})

	assert.Equal(t, series, m.Series)
	assert.Equal(t, "August", m.Series[0].Month)
	assert.Equal(t, 3.333, m.Series[2].Revenue)
}

func TestProject_Nil(t *testing.T) {
	assert.Nil(t, NewProjector(language.English).Project(nil))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "12.50", FormatPrice(12.5))
	assert.Equal(t, "0.00", FormatPrice(0))
	assert.Equal(t, "7.00", FormatPrice(7))
	assert.Equal(t, "33.34", FormatPrice(33.335))
}

func TestFormatVolume(t *testing.T) {
	assert.Equal(t, "121", FormatVolume(120.6))
	assert.Equal(t, "120", FormatVolume(120.4))
	assert.Equal(t, "121", FormatVolume(120.5))
	assert.Equal(t, "0", FormatVolume(0.2))
}

func TestProjector_Currency(t *testing.T) {
	p := NewProjector(language.AmericanEnglish)

	assert.Equal(t, "$0", p.Currency(0))
	assert.Equal(t, "$999", p.Currency(999))
	assert.Equal(t, "$1,000", p.Currency(1000))
	assert.Equal(t, "-$4,500", p.Currency(-4500))
	assert.Equal(t, "$1,234.5", p.Currency(1234.5))
}

func TestProjector_Number(t *testing.T) {
	assert.Equal(t, "12,000", NewProjector(language.English).Number(12000))
}
