package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"math"
	"math/rand"
)

// marketPath is a deterministic, non-constant monthly series
func marketPath(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 0.01*math.Sin(float64(i)) + 0.002*float64(i%4) - 0.003
	}
	return out
}

// randomStore builds a universe of numSecurities series with distinct
// volatilities and drifts
func randomStore(seed int64, numSecurities, numPeriods int) domain.ReturnSeriesStore {
	r := rand.New(rand.NewSource(seed))
	market := marketPath(numPeriods)
	returns := map[string][]float64{}
	for s := 0; s < numSecurities; s++ {
		beta := 0.2 + 1.6*r.Float64()
		drift := 0.01 * (r.Float64() - 0.5)
		noise := 0.005 + 0.03*r.Float64()
		series := make([]float64, numPeriods)
		for t := range series {
			series[t] = drift + beta*market[t] + noise*r.NormFloat64()
		}
		returns[fmt.Sprintf("S%03d", s)] = series
	}
	return domain.ReturnSeriesStore{
		Returns:  returns,
		RiskFree: domain.NewScalarRiskFreeRate(0.05 / 12),
	}
}

func scoredUniverse(n int) []domain.ScoredSecurity {
	out := make([]domain.ScoredSecurity, n)
	for i := range out {
		// scrambled but deterministic scores with some ties
		score := float64((i*7)%n) / 2
		if i%5 == 0 {
			score = 1
		}
		out[i] = domain.ScoredSecurity{
			FactorLoading: domain.FactorLoading{
				Symbol: fmt.Sprintf("T%03d", i),
				Alpha:  0.001 * float64(i%9-3),
				Beta:   float64(i%4) / 2,
			},
			RiskScore: score,
		}
	}
	return out
}

func testFactorOptions() domain.FactorOptions {
	return domain.FactorOptions{
		MinSecurities:  3,
		MinPeriods:     6,
		PeriodsPerYear: 12,
		Workers:        4,
	}
}
