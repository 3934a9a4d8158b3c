package domain

// SecurityStatistics describes one security's own return history,
// independent of the factor model. MaxDrawdown is the worst
// peak-to-trough fall of cumulative growth, as a non-positive fraction
type SecurityStatistics struct {
	Symbol                string  `json:"symbol"`
	MeanReturn            float64 `json:"meanReturn"`
	StdDevReturn          float64 `json:"stdDevReturn"`
	AnnualizedReturn      float64 `json:"annualizedReturn"`
	AnnualizedVolatility  float64 `json:"annualizedVolatility"`
	SharpeRatio           float64 `json:"sharpeRatio"`
	MaxDrawdown           float64 `json:"maxDrawdown"`
	PositivePeriodPercent float64 `json:"positivePeriodPercent"`
}
