package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

var oneHundred = decimal.NewFromInt(100)

// AllocateWeights picks the top K members of a basket by alpha and
// weights them in proportion to alpha. non-positive alphas are clipped
// to opts.Epsilon first, so every selected holding keeps a small
// positive weight. weights are percentages summing to 100
func AllocateWeights(basket domain.Basket, opts domain.WeightOptions) ([]domain.WeightedHolding, error) {
	if opts.TopK <= 0 {
		return nil, fmt.Errorf("top k must be positive, got %d", opts.TopK)
	}
	if opts.Epsilon <= 0 {
		return nil, fmt.Errorf("epsilon must be positive, got %f", opts.Epsilon)
	}
	if len(basket.Members) < opts.TopK {
		return nil, domain.InsufficientMembersError{
			Basket:  basket.Rank,
			Members: len(basket.Members),
			TopK:    opts.TopK,
		}
	}

	selected := topNByAlpha(basket.Members, opts.TopK)

	rawWeights := make([]float64, len(selected))
	total := 0.0
	for i, s := range selected {
		raw := s.Alpha
		if raw <= 0 || math.IsNaN(raw) {
			raw = opts.Epsilon
		}
		rawWeights[i] = raw
		total += raw
	}

	holdings := make([]domain.WeightedHolding, len(selected))
	sum := 0.0
	for i, s := range selected {
		w := rawWeights[i] / total * 100
		if math.IsNaN(w) || w <= 0 {
			return nil, fmt.Errorf("invalid weight %f for %s", w, s.Symbol)
		}
		holdings[i] = domain.WeightedHolding{
			Symbol: s.Symbol,
			Alpha:  s.Alpha,
			Weight: w,
		}
		sum += w
	}
	if math.Abs(sum-100) > 1e-6 {
		return nil, fmt.Errorf("weights for basket %d should sum to 100, got %f", basket.Rank, sum)
	}

	roundDisplayPercents(holdings)

	return holdings, nil
}

// topNByAlpha returns the n members with the highest alpha, ties
// broken by symbol
func topNByAlpha(members []domain.ScoredSecurity, n int) []domain.ScoredSecurity {
	sorted := make([]domain.ScoredSecurity, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Alpha == sorted[j].Alpha {
			return sorted[i].Symbol < sorted[j].Symbol
		}
		return sorted[i].Alpha > sorted[j].Alpha
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// roundDisplayPercents rounds each weight to two places and pushes the
// rounding residual onto the largest weight, so the displayed
// percentages add up to exactly 100.00
func roundDisplayPercents(holdings []domain.WeightedHolding) {
	if len(holdings) == 0 {
		return
	}
	sum := decimal.Zero
	largest := 0
	for i := range holdings {
		holdings[i].DisplayPercent = decimal.NewFromFloat(holdings[i].Weight).Round(2)
		sum = sum.Add(holdings[i].DisplayPercent)
		if holdings[i].Weight > holdings[largest].Weight {
			largest = i
		}
	}
	diff := oneHundred.Sub(sum)
	if !diff.IsZero() {
		holdings[largest].DisplayPercent = holdings[largest].DisplayPercent.Add(diff)
	}
}
