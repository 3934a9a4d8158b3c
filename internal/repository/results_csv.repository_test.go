package repository

import (
	"factorbaskets/internal/domain"
	"os"
	"path/filepath"
	"testing"

	"github.com/gocarina/gocsv"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testRun() domain.AnalysisRun {
	loadings := []domain.FactorLoading{
		{Symbol: "AAA", Beta: 0.8, SMBLoading: 0.1, HMLLoading: -0.2, Alpha: 0.002, AnnualizedAlpha: 0.024, RSquared: 0.6},
		{Symbol: "BBB", Beta: 1.2, SMBLoading: 0.3, HMLLoading: 0.1, Alpha: 0.001, AnnualizedAlpha: 0.012, RSquared: 0.5},
		{Symbol: "CCC", Beta: 1.0, SMBLoading: 0, HMLLoading: 0, Alpha: -0.001, AnnualizedAlpha: -0.012, RSquared: 0.4},
	}
	return domain.AnalysisRun{
		Loadings: loadings,
		Statistics: []domain.SecurityStatistics{
			{Symbol: "AAA", MeanReturn: 0.01, StdDevReturn: 0.02, AnnualizedReturn: 0.1268, AnnualizedVolatility: 0.0693, SharpeRatio: 1.73, MaxDrawdown: -0.12, PositivePeriodPercent: 62.5},
			{Symbol: "CCC", MeanReturn: -0.002, StdDevReturn: 0.05, AnnualizedReturn: -0.0237, AnnualizedVolatility: 0.1732, SharpeRatio: -0.14, MaxDrawdown: -0.4, PositivePeriodPercent: 45},
		},
		Baskets: []domain.BasketResult{
			{
				Basket: domain.Basket{Rank: 1, Members: []domain.ScoredSecurity{
					{FactorLoading: loadings[0], RiskScore: -1},
				}},
				Summary: domain.BasketSummary{Rank: 1, Name: "Low Risk / Defensive", NumSecurities: 1, RiskRating: 2, RiskDescription: "Low-Moderate"},
				Holdings: []domain.WeightedHolding{
					{Symbol: "AAA", Alpha: 0.002, Weight: 100, DisplayPercent: decimal.NewFromInt(100)},
				},
			},
			{
				Basket: domain.Basket{Rank: 2, Members: []domain.ScoredSecurity{
					{FactorLoading: loadings[1], RiskScore: 1},
				}},
				Summary: domain.BasketSummary{Rank: 2, Name: "High Risk / Aggressive Growth", NumSecurities: 1},
				Holdings: []domain.WeightedHolding{
					{Symbol: "BBB", Alpha: 0.001, Weight: 100, DisplayPercent: decimal.NewFromInt(100)},
				},
			},
		},
	}
}

func TestResultsCsvRepository_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	paths, err := NewResultsCsvRepository().Write(dir, testRun())
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "factor_loadings.csv"),
		filepath.Join(dir, "basket_summary.csv"),
		filepath.Join(dir, "security_statistics.csv"),
		filepath.Join(dir, "basket_1_holdings.csv"),
		filepath.Join(dir, "basket_2_holdings.csv"),
	}, paths)

	t.Run("loadings mark unplaced securities", func(t *testing.T) {
		f, err := os.Open(paths[0])
		require.NoError(t, err)
		defer f.Close()

		rows := []factorLoadingRow{}
		require.NoError(t, gocsv.UnmarshalFile(f, &rows))
		require.Len(t, rows, 3)
		require.Equal(t, "1", rows[0].Basket)
		require.Equal(t, "-1", rows[0].RiskScore)
		require.Equal(t, "2", rows[1].Basket)
		require.Equal(t, "", rows[2].Basket)
		require.Equal(t, "", rows[2].RiskScore)
	})

	t.Run("summary", func(t *testing.T) {
		f, err := os.Open(paths[1])
		require.NoError(t, err)
		defer f.Close()

		rows := []basketSummaryRow{}
		require.NoError(t, gocsv.UnmarshalFile(f, &rows))
		require.Len(t, rows, 2)
		require.Equal(t, "Low Risk / Defensive", rows[0].Name)
		require.Equal(t, 2, rows[0].RiskRating)
	})

	t.Run("security statistics", func(t *testing.T) {
		f, err := os.Open(paths[2])
		require.NoError(t, err)
		defer f.Close()

		rows := []securityStatisticsRow{}
		require.NoError(t, gocsv.UnmarshalFile(f, &rows))
		require.Equal(t, "", cmp.Diff([]securityStatisticsRow{
			{Symbol: "AAA", MeanReturn: 0.01, StdDevReturn: 0.02, AnnualizedReturn: 0.1268, AnnualizedVolatility: 0.0693, SharpeRatio: 1.73, MaxDrawdown: -0.12, PositivePeriodPercent: 62.5},
			{Symbol: "CCC", MeanReturn: -0.002, StdDevReturn: 0.05, AnnualizedReturn: -0.0237, AnnualizedVolatility: 0.1732, SharpeRatio: -0.14, MaxDrawdown: -0.4, PositivePeriodPercent: 45},
		}, rows))
	})

	t.Run("holdings", func(t *testing.T) {
		f, err := os.Open(paths[3])
		require.NoError(t, err)
		defer f.Close()

		rows := []holdingRow{}
		require.NoError(t, gocsv.UnmarshalFile(f, &rows))
		require.Equal(t, "", cmp.Diff([]holdingRow{
			{Symbol: "AAA", Alpha: 0.002, Weight: 100, Percent: "100.00"},
		}, rows))
	})
}
