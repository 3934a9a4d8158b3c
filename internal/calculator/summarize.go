package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

var basketNames = map[int]string{
	1: "Low Risk / Defensive",
	2: "Moderate-Low Risk / Stable Growth",
	3: "Moderate Risk / Balanced",
	4: "Moderate-High Risk / Growth",
	5: "High Risk / Aggressive Growth",
}

var riskDescriptions = map[int]string{
	1: "Very Low",
	2: "Low",
	3: "Moderate",
	4: "High",
	5: "Very High",
}

var returnDescriptions = map[int]string{
	1: "Low",
	2: "Moderate-Low",
	3: "Moderate",
	4: "Moderate-High",
	5: "High",
}

// SummarizeBasket aggregates a basket's members into expected
// return / volatility and the two qualitative ratings:
//
//	expectedReturn     = base + mktPremium*avgBeta + sizePremium*avgSMB + valuePremium*avgHML + avgAnnualizedAlpha
//	expectedVolatility = max(floor, marketVol*|avgBeta|)
func SummarizeBasket(basket domain.Basket, opts domain.SummaryOptions) (*domain.BasketSummary, error) {
	n := len(basket.Members)
	if n == 0 {
		return nil, fmt.Errorf("cannot summarize empty basket %d", basket.Rank)
	}

	betas := make([]float64, n)
	smbs := make([]float64, n)
	hmls := make([]float64, n)
	alphas := make([]float64, n)
	scores := make([]float64, n)
	for i, m := range basket.Members {
		betas[i] = m.Beta
		smbs[i] = m.SMBLoading
		hmls[i] = m.HMLLoading
		alphas[i] = m.AnnualizedAlpha
		scores[i] = m.RiskScore
	}

	avg := func(values []float64, field string) (float64, error) {
		m, err := stats.Mean(values)
		if err != nil {
			return 0, fmt.Errorf("failed to average %s for basket %d: %w", field, basket.Rank, err)
		}
		return m, nil
	}
	avgBeta, err := avg(betas, "beta")
	if err != nil {
		return nil, err
	}
	avgSMB, err := avg(smbs, "smb")
	if err != nil {
		return nil, err
	}
	avgHML, err := avg(hmls, "hml")
	if err != nil {
		return nil, err
	}
	avgAlpha, err := avg(alphas, "alpha")
	if err != nil {
		return nil, err
	}
	avgScore, err := avg(scores, "risk score")
	if err != nil {
		return nil, err
	}

	expectedReturn := opts.BaseRate +
		opts.MarketPremium*avgBeta +
		opts.SizePremium*avgSMB +
		opts.ValuePremium*avgHML +
		avgAlpha
	expectedVolatility := math.Max(opts.VolatilityFloor, opts.MarketVolatility*math.Abs(avgBeta))

	riskRating := Rate(expectedVolatility, opts.RiskThresholds)
	returnRating := Rate(expectedReturn, opts.ReturnThresholds)

	return &domain.BasketSummary{
		Rank:               basket.Rank,
		Name:               basketNames[basket.Rank],
		NumSecurities:      n,
		AverageRiskScore:   avgScore,
		AverageBeta:        avgBeta,
		AverageSMB:         avgSMB,
		AverageHML:         avgHML,
		AverageAlpha:       avgAlpha,
		ExpectedReturn:     expectedReturn,
		ExpectedVolatility: expectedVolatility,
		RiskRating:         riskRating,
		ReturnRating:       returnRating,
		RiskDescription:    riskDescriptions[riskRating],
		ReturnDescription:  returnDescriptions[returnRating],
	}, nil
}

// Rate maps value onto 1..len(thresholds)+1: one plus the number of
// (ascending) thresholds the value is strictly above
func Rate(value float64, thresholds []float64) int {
	rating := 1
	for _, t := range thresholds {
		if value > t {
			rating++
		}
	}
	return rating
}
