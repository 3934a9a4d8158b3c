package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
)

// CalculateRiskScores standardizes beta, smb and hml across the whole
// universe (population mean and stdev) and combines them into one score
func CalculateRiskScores(loadings []domain.FactorLoading, weights domain.ScoreWeights) ([]domain.ScoredSecurity, error) {
	if len(loadings) == 0 {
		return nil, domain.InsufficientDataError{Reason: "cannot score an empty universe"}
	}

	betas := make([]float64, len(loadings))
	smbs := make([]float64, len(loadings))
	hmls := make([]float64, len(loadings))
	for i, l := range loadings {
		betas[i] = l.Beta
		smbs[i] = l.SMBLoading
		hmls[i] = l.HMLLoading
	}

	zBeta, err := standardize(betas, "beta")
	if err != nil {
		return nil, err
	}
	zSMB, err := standardize(smbs, "smbLoading")
	if err != nil {
		return nil, err
	}
	zHML, err := standardize(hmls, "hmlLoading")
	if err != nil {
		return nil, err
	}

	out := make([]domain.ScoredSecurity, len(loadings))
	for i, l := range loadings {
		out[i] = domain.ScoredSecurity{
			FactorLoading: l,
			RiskScore:     weights.Beta*zBeta[i] + weights.SMB*zSMB[i] + weights.HML*zHML[i],
		}
	}

	return out, nil
}

func standardize(values []float64, field string) ([]float64, error) {
	if isConstant(values) {
		return nil, domain.ZeroVarianceError{Field: field}
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean of %s: %w", field, err)
	}
	stdev, err := stats.StandardDeviationPopulation(values)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate stdev of %s: %w", field, err)
	}
	if stdev == 0 {
		return nil, domain.ZeroVarianceError{Field: field}
	}

	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - mean) / stdev
	}
	return out, nil
}
