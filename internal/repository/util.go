package repository

import (
	"factorbaskets/internal/domain"
	"sort"
)

// sortMembers restores partition order: ascending risk score, ties by symbol
func sortMembers(members []domain.ScoredSecurity) {
	sort.SliceStable(members, func(i, j int) bool {
		if members[i].RiskScore == members[j].RiskScore {
			return members[i].Symbol < members[j].Symbol
		}
		return members[i].RiskScore < members[j].RiskScore
	})
}
