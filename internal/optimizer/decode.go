package optimizer

import (
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/tyrone-yanaga/product-launcher/internal/domain"
)

// ErrInvalidResult marks a response body that does not have the optimization result shape.
var ErrInvalidResult = errors.New("invalid optimization result")

// wireResult mirrors the response with pointers so that absent or null fields are detectable.
type wireResult struct {
	OptimalPrice  *float64                `json:"optimalPrice"`
	TotalRevenue  *float64                `json:"totalRevenue"`
	TotalProfit   *float64                `json:"totalProfit"`
	AverageVolume *float64                `json:"averageVolume"`
	MonthlyData   *[]domain.MonthlyRecord `json:"monthlyData"`
}

type errorBody struct {
	Error  string `json:"error"`
	Detail any    `json:"detail"`
}

// DecodeResult parses and shape-checks an optimization result.
// A body missing any scalar or the monthly series is rejected as a whole.
func DecodeResult(r io.Reader) (*domain.OptimizationResult, error) {
	var wire wireResult
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResult, err)
	}

	missing := wire.missing()
	if missing != "" {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidResult, missing)
	}

	return &domain.OptimizationResult{
		OptimalPrice:  *wire.OptimalPrice,
		TotalRevenue:  *wire.TotalRevenue,
		TotalProfit:   *wire.TotalProfit,
		AverageVolume: *wire.AverageVolume,
		MonthlyData:   *wire.MonthlyData,
	}, nil
}

func (w *wireResult) missing() string {
	switch {
	case w.OptimalPrice == nil:
		return "optimalPrice"
	case w.TotalRevenue == nil:
		return "totalRevenue"
	case w.TotalProfit == nil:
		return "totalProfit"
	case w.AverageVolume == nil:
		return "averageVolume"
	case w.MonthlyData == nil:
		return "monthlyData"
	}
	return ""
}

// errorDetail pulls the server's explanation out of an error body, if it has one.
func errorDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if eb.Error != "" {
		return eb.Error
	}
	if s, ok := eb.Detail.(string); ok {
		return s
	}
	if eb.Detail != nil {
		return fmt.Sprint(eb.Detail)
	}
	return ""
}
