package calculator

import (
	"factorbaskets/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func member(symbol string, beta, smb, hml, annualizedAlpha, score float64) domain.ScoredSecurity {
	return domain.ScoredSecurity{
		FactorLoading: domain.FactorLoading{
			Symbol:          symbol,
			Beta:            beta,
			SMBLoading:      smb,
			HMLLoading:      hml,
			Alpha:           annualizedAlpha / 12,
			AnnualizedAlpha: annualizedAlpha,
		},
		RiskScore: score,
	}
}

func TestSummarizeBasket(t *testing.T) {
	opts := domain.DefaultPipelineConfig().Summary

	t.Run("happy path", func(t *testing.T) {
		basket := domain.Basket{
			Rank: 3,
			Members: []domain.ScoredSecurity{
				member("A", 1.0, 0.2, -0.1, 0.02, 0.1),
				member("B", 1.5, 0.4, 0.1, 0.04, 0.3),
			},
		}
		summary, err := SummarizeBasket(basket, opts)
		require.NoError(t, err)

		require.Equal(t, "", cmp.Diff(&domain.BasketSummary{
			Rank:               3,
			Name:               "Moderate Risk / Balanced",
			NumSecurities:      2,
			AverageRiskScore:   0.2,
			AverageBeta:        1.25,
			AverageSMB:         0.3,
			AverageHML:         0,
			AverageAlpha:       0.03,
			ExpectedReturn:     0.08*1.25 + 0.03*0.3 + 0.03,
			ExpectedVolatility: 0.15 * 1.25,
			RiskRating:         4,
			ReturnRating:       4,
			RiskDescription:    "High",
			ReturnDescription:  "Moderate-High",
		}, summary, cmpopts.EquateApprox(0, 1e-12)))
	})

	t.Run("volatility floor", func(t *testing.T) {
		basket := domain.Basket{
			Rank: 1,
			Members: []domain.ScoredSecurity{
				member("A", 0.1, 0, 0, 0, -1),
				member("B", -0.1, 0, 0, 0, -0.5),
			},
		}
		summary, err := SummarizeBasket(basket, opts)
		require.NoError(t, err)
		require.Equal(t, 0.05, summary.ExpectedVolatility)
		require.Equal(t, 1, summary.RiskRating)
		require.Equal(t, "Very Low", summary.RiskDescription)
		require.Equal(t, 1, summary.ReturnRating)
		require.Equal(t, "Low Risk / Defensive", summary.Name)
	})

	t.Run("negative beta uses magnitude for volatility", func(t *testing.T) {
		basket := domain.Basket{
			Rank:    1,
			Members: []domain.ScoredSecurity{member("SH", -2, 0, 0, 0, -3)},
		}
		summary, err := SummarizeBasket(basket, opts)
		require.NoError(t, err)
		require.InDelta(t, 0.30, summary.ExpectedVolatility, 1e-12)
		require.InDelta(t, -0.16, summary.ExpectedReturn, 1e-12)
		require.Equal(t, 5, summary.RiskRating)
		require.Equal(t, 1, summary.ReturnRating)
	})

	t.Run("empty basket", func(t *testing.T) {
		_, err := SummarizeBasket(domain.Basket{Rank: 2}, opts)
		require.Error(t, err)
	})
}

func TestRate(t *testing.T) {
	thresholds := []float64{0.06, 0.09, 0.12, 0.15}
	for _, tc := range []struct {
		value    float64
		expected int
	}{
		{-0.2, 1},
		{0.06, 1},
		{0.0601, 2},
		{0.09, 2},
		{0.10, 3},
		{0.12, 3},
		{0.13, 4},
		{0.15, 4},
		{0.151, 5},
		{3, 5},
	} {
		require.Equal(t, tc.expected, Rate(tc.value, thresholds), "value %f", tc.value)
	}
	require.Equal(t, 1, Rate(10, nil))
}
