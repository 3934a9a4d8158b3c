package domain

import "github.com/shopspring/decimal"

// ScoredSecurity joins a loading with its composite risk score
type ScoredSecurity struct {
	FactorLoading
	RiskScore float64 `json:"riskScore"`
}

// Basket is a contiguous slice of the score-sorted universe.
// Rank 1 holds the lowest scores
type Basket struct {
	Rank    int              `json:"rank"`
	Members []ScoredSecurity `json:"members"`
}

func (b Basket) Symbols() []string {
	out := make([]string, len(b.Members))
	for i, m := range b.Members {
		out[i] = m.Symbol
	}
	return out
}

func (b Basket) MinScore() float64 {
	return b.Members[0].RiskScore
}

func (b Basket) MaxScore() float64 {
	return b.Members[len(b.Members)-1].RiskScore
}

type BasketSummary struct {
	Rank               int     `json:"rank"`
	Name               string  `json:"name"`
	NumSecurities      int     `json:"numSecurities"`
	AverageRiskScore   float64 `json:"averageRiskScore"`
	AverageBeta        float64 `json:"averageBeta"`
	AverageSMB         float64 `json:"averageSmb"`
	AverageHML         float64 `json:"averageHml"`
	AverageAlpha       float64 `json:"averageAlpha"`
	ExpectedReturn     float64 `json:"expectedReturn"`
	ExpectedVolatility float64 `json:"expectedVolatility"`
	RiskRating         int     `json:"riskRating"`
	ReturnRating       int     `json:"returnRating"`
	RiskDescription    string  `json:"riskDescription"`
	ReturnDescription  string  `json:"returnDescription"`
}

type WeightedHolding struct {
	Symbol string  `json:"symbol"`
	Alpha  float64 `json:"alpha"`
	// Weight is in percent; weights in one basket sum to 100
	Weight float64 `json:"weight"`
	// DisplayPercent is Weight rounded to two places such that
	// the basket still sums to exactly 100.00
	DisplayPercent decimal.Decimal `json:"displayPercent"`
}

type BasketResult struct {
	Basket   Basket            `json:"basket"`
	Summary  BasketSummary     `json:"summary"`
	Holdings []WeightedHolding `json:"holdings"`
}
