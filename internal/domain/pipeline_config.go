package domain

import (
	"fmt"
	"sort"
)

type ScoreWeights struct {
	Beta float64 `json:"beta"`
	SMB  float64 `json:"smb"`
	HML  float64 `json:"hml"`
}

type FactorOptions struct {
	MinSecurities  int `json:"minSecurities"`
	MinPeriods     int `json:"minPeriods"`
	PeriodsPerYear int `json:"periodsPerYear"`
	Workers        int `json:"workers"`
}

// SummaryOptions hold the premiums and rating breakpoints used to turn
// average loadings into expected return / volatility. the defaults
// come from one historical fit and are illustrative only
type SummaryOptions struct {
	BaseRate         float64   `json:"baseRate"`
	MarketPremium    float64   `json:"marketPremium"`
	SizePremium      float64   `json:"sizePremium"`
	ValuePremium     float64   `json:"valuePremium"`
	MarketVolatility float64   `json:"marketVolatility"`
	VolatilityFloor  float64   `json:"volatilityFloor"`
	RiskThresholds   []float64 `json:"riskThresholds"`
	ReturnThresholds []float64 `json:"returnThresholds"`
}

type WeightOptions struct {
	TopK    int     `json:"topK"`
	Epsilon float64 `json:"epsilon"`
}

type ScreenOptions struct {
	Enabled    bool    `json:"enabled"`
	Expression string  `json:"expression"`
	MinScore   float64 `json:"minScore"`
	MinKept    int     `json:"minKept"`
}

type PipelineConfig struct {
	Factors      FactorOptions  `json:"factors"`
	ScoreWeights ScoreWeights   `json:"scoreWeights"`
	Screen       ScreenOptions  `json:"screen"`
	BasketCount  int            `json:"basketCount"`
	Summary      SummaryOptions `json:"summary"`
	Weights      WeightOptions  `json:"weights"`
}

const DefaultScreenExpression = "12 * (1.5 * alpha + 0.08 * beta + 0.04 * smb + 0.03 * hml)"

func DefaultPipelineConfig() PipelineConfig {
	return PipelineConfig{
		Factors: FactorOptions{
			MinSecurities:  10,
			MinPeriods:     12,
			PeriodsPerYear: 12,
			Workers:        10,
		},
		ScoreWeights: ScoreWeights{
			Beta: 1.0,
			SMB:  0.5,
			HML:  0.5,
		},
		Screen: ScreenOptions{
			Enabled:    false,
			Expression: DefaultScreenExpression,
			MinScore:   0.06,
			MinKept:    100,
		},
		BasketCount: 5,
		Summary: SummaryOptions{
			BaseRate:         0,
			MarketPremium:    0.08,
			SizePremium:      0.03,
			ValuePremium:     0.04,
			MarketVolatility: 0.15,
			VolatilityFloor:  0.05,
			RiskThresholds:   []float64{0.08, 0.12, 0.16, 0.20},
			ReturnThresholds: []float64{0.06, 0.09, 0.12, 0.15},
		},
		Weights: WeightOptions{
			TopK:    7,
			Epsilon: 1e-4,
		},
	}
}

func (c PipelineConfig) Validate() error {
	if c.Factors.MinSecurities < 3 {
		return fmt.Errorf("min securities must be at least 3, got %d", c.Factors.MinSecurities)
	}
	if c.Factors.MinPeriods < 3 {
		return fmt.Errorf("min periods must be at least 3, got %d", c.Factors.MinPeriods)
	}
	if c.Factors.PeriodsPerYear <= 0 {
		return fmt.Errorf("periods per year must be positive, got %d", c.Factors.PeriodsPerYear)
	}
	if c.Factors.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got %d", c.Factors.Workers)
	}
	if c.BasketCount <= 0 {
		return fmt.Errorf("basket count must be positive, got %d", c.BasketCount)
	}
	if c.Weights.TopK <= 0 {
		return fmt.Errorf("top k must be positive, got %d", c.Weights.TopK)
	}
	if c.Weights.Epsilon <= 0 {
		return fmt.Errorf("weight epsilon must be positive, got %f", c.Weights.Epsilon)
	}
	if c.Summary.VolatilityFloor < 0 {
		return fmt.Errorf("volatility floor cannot be negative, got %f", c.Summary.VolatilityFloor)
	}
	if !sort.Float64sAreSorted(c.Summary.RiskThresholds) {
		return fmt.Errorf("risk thresholds must be ascending, got %v", c.Summary.RiskThresholds)
	}
	if !sort.Float64sAreSorted(c.Summary.ReturnThresholds) {
		return fmt.Errorf("return thresholds must be ascending, got %v", c.Summary.ReturnThresholds)
	}
	if c.Screen.Enabled {
		if c.Screen.Expression == "" {
			return fmt.Errorf("screen is enabled but expression is empty")
		}
		if c.Screen.MinKept < c.BasketCount {
			return fmt.Errorf("screen min kept (%d) is smaller than basket count (%d)", c.Screen.MinKept, c.BasketCount)
		}
	}
	return nil
}
