package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"sort"

	"github.com/montanaflynn/stats"
)

// ConstructFactors builds the market, size-proxy and value-proxy
// series from the universe itself.
//
// there is no market cap or book-to-market data, so full-window
// volatility stands in for size (high vol ~ small) and mean return
// stands in for value (low momentum ~ high book-to-market)
func ConstructFactors(store domain.ReturnSeriesStore, opts domain.FactorOptions) (*domain.FactorSeries, error) {
	if err := store.Validate(); err != nil {
		return nil, err
	}
	symbols := store.Symbols()
	numPeriods := store.NumPeriods()

	minSecurities := opts.MinSecurities
	if minSecurities < 3 {
		minSecurities = 3
	}
	if len(symbols) < minSecurities || numPeriods < opts.MinPeriods {
		return nil, domain.InsufficientDataError{
			Securities:    len(symbols),
			Periods:       numPeriods,
			MinSecurities: minSecurities,
			MinPeriods:    opts.MinPeriods,
		}
	}

	volatility := map[string]float64{}
	momentum := map[string]float64{}
	for _, symbol := range symbols {
		series := store.Returns[symbol]
		stdev, err := stats.StandardDeviationSample(series)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate volatility for %s: %w", symbol, err)
		}
		mean, err := stats.Mean(series)
		if err != nil {
			return nil, fmt.Errorf("failed to calculate momentum for %s: %w", symbol, err)
		}
		volatility[symbol] = stdev
		momentum[symbol] = mean
	}

	third := len(symbols) / 3
	byVolatility := rankSymbols(symbols, volatility, true)
	small, big := byVolatility[:third], byVolatility[len(byVolatility)-third:]

	byMomentum := rankSymbols(symbols, momentum, false)
	high, low := byMomentum[:third], byMomentum[len(byMomentum)-third:]

	out := &domain.FactorSeries{
		Market: make([]float64, numPeriods),
		Size:   make([]float64, numPeriods),
		Value:  make([]float64, numPeriods),
	}
	for t := 0; t < numPeriods; t++ {
		out.Market[t] = crossSectionalMean(store.Returns, symbols, t) - store.RiskFree.At(t)
		out.Size[t] = crossSectionalMean(store.Returns, small, t) - crossSectionalMean(store.Returns, big, t)
		out.Value[t] = crossSectionalMean(store.Returns, high, t) - crossSectionalMean(store.Returns, low, t)
	}

	return out, nil
}

func crossSectionalMean(returns map[string][]float64, symbols []string, t int) float64 {
	sum := 0.0
	for _, symbol := range symbols {
		sum += returns[symbol][t]
	}
	return sum / float64(len(symbols))
}

// rankSymbols orders symbols by metric, ties broken by symbol so the
// factor legs never depend on map iteration order
func rankSymbols(symbols []string, metric map[string]float64, descending bool) []string {
	out := make([]string, len(symbols))
	copy(out, symbols)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := metric[out[i]], metric[out[j]]
		if a == b {
			return out[i] < out[j]
		}
		if descending {
			return a > b
		}
		return a < b
	})
	return out
}
