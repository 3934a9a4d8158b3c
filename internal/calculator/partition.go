package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"sort"
)

// PartitionIntoBaskets sorts the universe ascending by risk score (ties
// by symbol) and cuts it into basketCount contiguous baskets. when the
// universe does not divide evenly, the lowest ranked baskets get one
// extra member each
func PartitionIntoBaskets(securities []domain.ScoredSecurity, basketCount int) ([]domain.Basket, error) {
	if basketCount <= 0 {
		return nil, fmt.Errorf("basket count must be positive, got %d", basketCount)
	}
	if len(securities) < basketCount {
		return nil, domain.InsufficientDataError{
			Reason: fmt.Sprintf("cannot split %d securities into %d non-empty baskets", len(securities), basketCount),
		}
	}

	sorted := make([]domain.ScoredSecurity, len(securities))
	copy(sorted, securities)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].RiskScore == sorted[j].RiskScore {
			return sorted[i].Symbol < sorted[j].Symbol
		}
		return sorted[i].RiskScore < sorted[j].RiskScore
	})

	baseSize := len(sorted) / basketCount
	remainder := len(sorted) % basketCount

	baskets := make([]domain.Basket, 0, basketCount)
	start := 0
	for i := 0; i < basketCount; i++ {
		size := baseSize
		if i < remainder {
			size++
		}
		members := make([]domain.ScoredSecurity, size)
		copy(members, sorted[start:start+size])
		baskets = append(baskets, domain.Basket{
			Rank:    i + 1,
			Members: members,
		})
		start += size
	}

	return baskets, nil
}
