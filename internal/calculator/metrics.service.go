package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/montanaflynn/stats"
)

// CalculateSecurityStatistics summarizes each security's return series:
// compounded annual return, annualized volatility, Sharpe ratio, max
// drawdown and share of positive periods. results are sorted by Sharpe
// ratio, best first, ties by symbol
func CalculateSecurityStatistics(store domain.ReturnSeriesStore, periodsPerYear int) ([]domain.SecurityStatistics, error) {
	if err := store.Validate(); err != nil {
		return nil, err
	}
	if periodsPerYear <= 0 {
		return nil, fmt.Errorf("periods per year must be positive, got %d", periodsPerYear)
	}

	out := make([]domain.SecurityStatistics, 0, len(store.Returns))
	for _, symbol := range store.Symbols() {
		s, err := calculateStatistics(symbol, store.Returns[symbol], periodsPerYear)
		if err != nil {
			return nil, err
		}
		out = append(out, *s)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].SharpeRatio == out[j].SharpeRatio {
			return out[i].Symbol < out[j].Symbol
		}
		return out[i].SharpeRatio > out[j].SharpeRatio
	})

	return out, nil
}

func calculateStatistics(symbol string, returns []float64, periodsPerYear int) (*domain.SecurityStatistics, error) {
	if len(returns) < 2 {
		return nil, domain.InsufficientDataError{
			Reason: fmt.Sprintf("%s has %d periods, need at least 2 for statistics", symbol, len(returns)),
		}
	}
	mean, err := stats.Mean(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean return for %s: %w", symbol, err)
	}
	stdev, err := stats.StandardDeviationSample(returns)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev for %s: %w", symbol, err)
	}
	if stdev == 0 {
		return nil, domain.DegenerateSeriesError{Symbol: symbol, Series: "returns"}
	}

	positive := 0
	for _, r := range returns {
		if r > 0 {
			positive++
		}
	}

	periods := float64(periodsPerYear)
	return &domain.SecurityStatistics{
		Symbol:                symbol,
		MeanReturn:            mean,
		StdDevReturn:          stdev,
		AnnualizedReturn:      math.Pow(1+mean, periods) - 1,
		AnnualizedVolatility:  stdev * math.Sqrt(periods),
		SharpeRatio:           mean / stdev * math.Sqrt(periods),
		MaxDrawdown:           MaxDrawdown(returns),
		PositivePeriodPercent: 100 * float64(positive) / float64(len(returns)),
	}, nil
}

// MaxDrawdown compounds returns into a growth path and returns the
// deepest fall from a running peak, e.g. -0.25 for a 25% drawdown.
// the path starts at the first compounded value, not at 1
func MaxDrawdown(returns []float64) float64 {
	if len(returns) == 0 {
		return 0
	}
	growth := 1.0
	peak := math.Inf(-1)
	worst := 0.0
	for _, r := range returns {
		growth *= 1 + r
		peak = math.Max(peak, growth)
		if dd := growth/peak - 1; dd < worst {
			worst = dd
		}
	}
	return worst
}
