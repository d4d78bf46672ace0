// Package display projects an optimization result into presentation strings.
package display

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

// Model is the display form of a successful result. Series is the result's monthly
// data, untouched and in its original order, for the chart.
type Model struct {
	OptimalPrice  string                 `json:"optimalPrice" yaml:"optimalPrice"`
	TotalRevenue  string                 `json:"totalRevenue" yaml:"totalRevenue"`
	TotalProfit   string                 `json:"totalProfit" yaml:"totalProfit"`
	AverageVolume string                 `json:"averageVolume" yaml:"averageVolume"`
	Series        []domain.MonthlyRecord `json:"monthlyData" yaml:"monthlyData"`

	raw *domain.OptimizationResult
}

// Raw returns the result the model was projected from.
func (m *Model) Raw() *domain.OptimizationResult {
	return m.raw
}

// Projector formats results for one locale.
type Projector struct {
	printer *message.Printer
}

// NewProjector creates a projector for the given locale.
func NewProjector(tag language.Tag) *Projector {
	return &Projector{printer: message.NewPrinter(tag)}
}

// Project builds the display model for a result.
func (p *Projector) Project(result *domain.OptimizationResult) *Model {
	if result == nil {
		return nil
	}
	return &Model{
		OptimalPrice:  FormatPrice(result.OptimalPrice),
		TotalRevenue:  p.Currency(result.TotalRevenue),
		TotalProfit:   p.Currency(result.TotalProfit),
		AverageVolume: FormatVolume(result.AverageVolume),
		Series:        result.MonthlyData,
		raw:           result,
	}
}

// Currency renders an amount with locale grouping, a leading dollar sign and at most
// two fraction digits.
func (p *Projector) Currency(amount float64) string {
	formatted := p.printer.Sprint(number.Decimal(math.Abs(amount), number.MaxFractionDigits(2)))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Number renders a plain grouped number, used for chart axes.
func (p *Projector) Number(value float64) string {
	return p.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(0)))
}

// FormatPrice renders a price with exactly two decimals, rounding half away from zero
// on the decimal value the server sent (19.995 becomes 20.00).
func FormatPrice(price float64) string {
	return decimal.NewFromFloat(price).StringFixed(2)
}

// FormatVolume rounds to the nearest whole unit, halves rounding up.
func FormatVolume(volume float64) string {
	return decimal.NewFromFloat(math.Floor(volume + 0.5)).String()
}
