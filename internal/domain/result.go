package domain

// MonthlyRecord is one point of the projected time series.
type MonthlyRecord struct {
	Month   string  `json:"month" yaml:"month"`
	Revenue float64 `json:"revenue" yaml:"revenue"`
	Profit  float64 `json:"profit" yaml:"profit"`
	Volume  float64 `json:"volume" yaml:"volume"`
}

// OptimizationResult is the optimizer service's answer for one submission.
type OptimizationResult struct {
	OptimalPrice  float64         `json:"optimalPrice"`
	TotalRevenue  float64         `json:"totalRevenue"`
	TotalProfit   float64         `json:"totalProfit"`
	AverageVolume float64         `json:"averageVolume"`
	MonthlyData   []MonthlyRecord `json:"monthlyData"`
}

// Months returns the month labels in series order.
func (r *OptimizationResult) Months() []string {
	labels := make([]string, len(r.MonthlyData))
	for i, rec := range r.MonthlyData {
		labels[i] = rec.Month
	}
	return labels
}

// Revenues returns the revenue series in month order.
func (r *OptimizationResult) Revenues() []float64 {
	return r.series(func(rec MonthlyRecord) float64 { return rec.Revenue })
}

// Profits returns the profit series in month order.
func (r *OptimizationResult) Profits() []float64 {
	return r.series(func(rec MonthlyRecord) float64 { return rec.Profit })
}

// Volumes returns the volume series in month order.
func (r *OptimizationResult) Volumes() []float64 {
	return r.series(func(rec MonthlyRecord) float64 { return rec.Volume })
}

func (r *OptimizationResult) series(pick func(MonthlyRecord) float64) []float64 {
	points := make([]float64, len(r.MonthlyData))
	for i, rec := range r.MonthlyData {
		points[i] = pick(rec)
	}
	return points
}
