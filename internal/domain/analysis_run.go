package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRun is one generation of derived artifacts for a fixed
// universe snapshot. nothing in it is mutated after the run completes
type AnalysisRun struct {
	RunID       uuid.UUID            `json:"runID"`
	CreatedAt   time.Time            `json:"createdAt"`
	Config      PipelineConfig       `json:"config"`
	Periods     []time.Time          `json:"periods,omitempty"`
	Factors     FactorSeries         `json:"factors"`
	Loadings    []FactorLoading      `json:"loadings"`
	Statistics  []SecurityStatistics `json:"statistics"`
	NumScreened *int                 `json:"numScreened,omitempty"`
	Baskets     []BasketResult       `json:"baskets"`
	Profile     *Profile             `json:"profile,omitempty"`
}

func (r AnalysisRun) Summaries() []BasketSummary {
	out := make([]BasketSummary, len(r.Baskets))
	for i, b := range r.Baskets {
		out[i] = b.Summary
	}
	return out
}
