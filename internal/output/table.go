package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
)

// TableFormatter renders results as a console table
type TableFormatter struct{}

// Name returns the format name
func (TableFormatter) Name() string { return "table" }

// Format generates the console report
func (tf TableFormatter) Format(model *display.Model) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("SALES PRICE OPTIMIZATION RESULTS\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-26s $%s\n", "Optimal Sales Price:", model.OptimalPrice))
	sb.WriteString(fmt.Sprintf("%-26s %s\n", "Expected Revenue:", model.TotalRevenue))
	sb.WriteString(fmt.Sprintf("%-26s %s\n", "Total Profit:", model.TotalProfit))
	sb.WriteString(fmt.Sprintf("%-26s %s units\n", "Average Monthly Volume:", model.AverageVolume))
	sb.WriteString("\n")

	monthWidth := 12
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
		monthWidth, "Month",
		numWidth, "Revenue",
		numWidth, "Profit",
		numWidth, "Volume"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	if len(model.Series) == 0 {
		sb.WriteString("(no monthly data)\n")
	}
	for _, rec := range model.Series {
		sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s\n",
			monthWidth, tf.truncate(rec.Month, monthWidth),
			numWidth, decimal.NewFromFloat(rec.Revenue).StringFixed(2),
			numWidth, decimal.NewFromFloat(rec.Profit).StringFixed(2),
			numWidth, decimal.NewFromFloat(rec.Volume).StringFixed(2)))
	}
	sb.WriteString(strings.Repeat("=", 60) + "\n")

	return []byte(sb.String()), nil
}

// truncate truncates a string to maxLen
func (tf TableFormatter) truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
