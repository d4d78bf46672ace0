package output

import (
	"bytes"
	"encoding/csv"

	"github.com/shopspring/decimal"

	"github.com/tyrone-yanaga/product-launcher/internal/display"
)

// CSVFormatter renders the monthly series as CSV, one row per month
type CSVFormatter struct{}

// Name returns the format name
func (CSVFormatter) Name() string { return "csv" }

// Format generates the CSV document
func (CSVFormatter) Format(model *display.Model) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write([]string{"Month", "Revenue", "Profit", "Volume"}); err != nil {
		return nil, err
	}
	for _, rec := range model.Series {
		row := []string{
			rec.Month,
			decimal.NewFromFloat(rec.Revenue).StringFixed(2),
			decimal.NewFromFloat(rec.Profit).StringFixed(2),
			decimal.NewFromFloat(rec.Volume).StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
