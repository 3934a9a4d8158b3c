package domain

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"time"
)

var (
	ErrMisaligned = errors.New("return series are not time-aligned")
	ErrNonFinite  = errors.New("return series contain a non-finite value")
)

// RiskFreeRate is either a single per-period rate or one rate
// per period, aligned with the return series
type RiskFreeRate struct {
	Scalar float64
	Series []float64
}

func NewScalarRiskFreeRate(perPeriod float64) RiskFreeRate {
	return RiskFreeRate{Scalar: perPeriod}
}

func (r RiskFreeRate) At(i int) float64 {
	if len(r.Series) > 0 {
		return r.Series[i]
	}
	return r.Scalar
}

// ReturnSeriesStore holds periodic simple returns keyed by symbol.
// all series cover the same periods, in the same order
type ReturnSeriesStore struct {
	Periods  []time.Time
	Returns  map[string][]float64
	RiskFree RiskFreeRate
}

func (s ReturnSeriesStore) Symbols() []string {
	symbols := make([]string, 0, len(s.Returns))
	for symbol := range s.Returns {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// NumPeriods is the length of the (aligned) series
func (s ReturnSeriesStore) NumPeriods() int {
	if len(s.Periods) > 0 {
		return len(s.Periods)
	}
	for _, series := range s.Returns {
		return len(series)
	}
	return 0
}

func (s ReturnSeriesStore) Validate() error {
	n := s.NumPeriods()
	for _, symbol := range s.Symbols() {
		if len(s.Returns[symbol]) != n {
			return fmt.Errorf("%w: %s has %d periods, expected %d", ErrMisaligned, symbol, len(s.Returns[symbol]), n)
		}
		for i, v := range s.Returns[symbol] {
			if !IsFinite(v) {
				return fmt.Errorf("%w: %s is %v on %s", ErrNonFinite, symbol, v, s.periodLabel(i))
			}
		}
	}
	if len(s.RiskFree.Series) > 0 && len(s.RiskFree.Series) != n {
		return fmt.Errorf("%w: risk-free series has %d periods, expected %d", ErrMisaligned, len(s.RiskFree.Series), n)
	}
	for i := 0; i < n; i++ {
		if v := s.RiskFree.At(i); !IsFinite(v) {
			return fmt.Errorf("%w: risk-free rate is %v on %s", ErrNonFinite, v, s.periodLabel(i))
		}
	}
	return nil
}

func (s ReturnSeriesStore) periodLabel(i int) string {
	if i < len(s.Periods) {
		return s.Periods[i].Format(time.DateOnly)
	}
	return fmt.Sprintf("period %d", i)
}

func IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
