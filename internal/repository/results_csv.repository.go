package repository

import (
	"factorbaskets/internal/domain"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"golang.org/x/sync/errgroup"
)

type factorLoadingRow struct {
	Symbol          string  `csv:"symbol"`
	Beta            float64 `csv:"beta"`
	SMBLoading      float64 `csv:"smb_loading"`
	HMLLoading      float64 `csv:"hml_loading"`
	Alpha           float64 `csv:"alpha"`
	AnnualizedAlpha float64 `csv:"annualized_alpha"`
	RSquared        float64 `csv:"r_squared"`
	RiskScore       string  `csv:"risk_score"`
	Basket          string  `csv:"basket"`
}

type basketSummaryRow struct {
	Basket             int     `csv:"basket"`
	Name               string  `csv:"name"`
	NumSecurities      int     `csv:"num_securities"`
	AverageRiskScore   float64 `csv:"avg_risk_score"`
	AverageBeta        float64 `csv:"avg_beta"`
	AverageSMB         float64 `csv:"avg_smb"`
	AverageHML         float64 `csv:"avg_hml"`
	AverageAlpha       float64 `csv:"avg_alpha"`
	ExpectedReturn     float64 `csv:"expected_return"`
	ExpectedVolatility float64 `csv:"expected_volatility"`
	RiskRating         int     `csv:"risk_rating"`
	RiskDescription    string  `csv:"risk_description"`
	ReturnRating       int     `csv:"return_rating"`
	ReturnDescription  string  `csv:"return_description"`
}

type securityStatisticsRow struct {
	Symbol                string  `csv:"symbol"`
	MeanReturn            float64 `csv:"mean_return"`
	StdDevReturn          float64 `csv:"stddev_return"`
	AnnualizedReturn      float64 `csv:"annualized_return"`
	AnnualizedVolatility  float64 `csv:"annualized_volatility"`
	SharpeRatio           float64 `csv:"sharpe_ratio"`
	MaxDrawdown           float64 `csv:"max_drawdown"`
	PositivePeriodPercent float64 `csv:"positive_period_percent"`
}

type holdingRow struct {
	Symbol  string  `csv:"symbol"`
	Alpha   float64 `csv:"alpha"`
	Weight  float64 `csv:"weight"`
	Percent string  `csv:"percent"`
}

type ResultsCsvRepository interface {
	Write(dir string, run domain.AnalysisRun) ([]string, error)
}

type resultsCsvRepositoryHandler struct{}

func NewResultsCsvRepository() ResultsCsvRepository {
	return resultsCsvRepositoryHandler{}
}

const (
	factorLoadingsFile     = "factor_loadings.csv"
	basketSummaryFile      = "basket_summary.csv"
	securityStatisticsFile = "security_statistics.csv"
)

func basketHoldingsFile(rank int) string {
	return fmt.Sprintf("basket_%d_holdings.csv", rank)
}

// Write saves loadings, the basket summary table, per-security return
// statistics and one holdings file per basket under dir. files are written concurrently; the paths are
// returned in a fixed order
func (h resultsCsvRepositoryHandler) Write(dir string, run domain.AnalysisRun) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir %s: %w", dir, err)
	}

	placement := map[string]domain.ScoredSecurity{}
	rankBySymbol := map[string]int{}
	for _, b := range run.Baskets {
		for _, m := range b.Basket.Members {
			placement[m.Symbol] = m
			rankBySymbol[m.Symbol] = b.Basket.Rank
		}
	}

	loadingRows := make([]factorLoadingRow, 0, len(run.Loadings))
	for _, l := range run.Loadings {
		row := factorLoadingRow{
			Symbol:          l.Symbol,
			Beta:            l.Beta,
			SMBLoading:      l.SMBLoading,
			HMLLoading:      l.HMLLoading,
			Alpha:           l.Alpha,
			AnnualizedAlpha: l.AnnualizedAlpha,
			RSquared:        l.RSquared,
		}
		if m, ok := placement[l.Symbol]; ok {
			row.RiskScore = fmt.Sprintf("%g", m.RiskScore)
			row.Basket = fmt.Sprintf("%d", rankBySymbol[l.Symbol])
		}
		loadingRows = append(loadingRows, row)
	}

	summaryRows := make([]basketSummaryRow, 0, len(run.Baskets))
	for _, b := range run.Baskets {
		s := b.Summary
		summaryRows = append(summaryRows, basketSummaryRow{
			Basket:             s.Rank,
			Name:               s.Name,
			NumSecurities:      s.NumSecurities,
			AverageRiskScore:   s.AverageRiskScore,
			AverageBeta:        s.AverageBeta,
			AverageSMB:         s.AverageSMB,
			AverageHML:         s.AverageHML,
			AverageAlpha:       s.AverageAlpha,
			ExpectedReturn:     s.ExpectedReturn,
			ExpectedVolatility: s.ExpectedVolatility,
			RiskRating:         s.RiskRating,
			RiskDescription:    s.RiskDescription,
			ReturnRating:       s.ReturnRating,
			ReturnDescription:  s.ReturnDescription,
		})
	}

	statisticsRows := make([]securityStatisticsRow, 0, len(run.Statistics))
	for _, st := range run.Statistics {
		statisticsRows = append(statisticsRows, securityStatisticsRow{
			Symbol:                st.Symbol,
			MeanReturn:            st.MeanReturn,
			StdDevReturn:          st.StdDevReturn,
			AnnualizedReturn:      st.AnnualizedReturn,
			AnnualizedVolatility:  st.AnnualizedVolatility,
			SharpeRatio:           st.SharpeRatio,
			MaxDrawdown:           st.MaxDrawdown,
			PositivePeriodPercent: st.PositivePeriodPercent,
		})
	}

	paths := []string{
		filepath.Join(dir, factorLoadingsFile),
		filepath.Join(dir, basketSummaryFile),
		filepath.Join(dir, securityStatisticsFile),
	}

	var g errgroup.Group
	g.Go(func() error {
		return writeCsv(paths[0], &loadingRows)
	})
	g.Go(func() error {
		return writeCsv(paths[1], &summaryRows)
	})
	g.Go(func() error {
		return writeCsv(paths[2], &statisticsRows)
	})
	for _, b := range run.Baskets {
		path := filepath.Join(dir, basketHoldingsFile(b.Basket.Rank))
		paths = append(paths, path)

		rows := make([]holdingRow, 0, len(b.Holdings))
		for _, holding := range b.Holdings {
			rows = append(rows, holdingRow{
				Symbol:  holding.Symbol,
				Alpha:   holding.Alpha,
				Weight:  holding.Weight,
				Percent: holding.DisplayPercent.StringFixed(2),
			})
		}
		g.Go(func() error {
			return writeCsv(path, &rows)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func writeCsv(path string, rows interface{}) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
