package main

import (
	"factorbaskets/internal/domain"
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

func renderSummaries(run domain.AnalysisRun) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Name", "Stocks", "Beta", "SMB", "HML", "Exp. Return", "Exp. Vol", "Risk", "Return"})
	for _, s := range run.Summaries() {
		t.AppendRow(table.Row{
			s.Rank,
			s.Name,
			s.NumSecurities,
			fmt.Sprintf("%.2f", s.AverageBeta),
			fmt.Sprintf("%.2f", s.AverageSMB),
			fmt.Sprintf("%.2f", s.AverageHML),
			fmt.Sprintf("%.1f%%", s.ExpectedReturn*100),
			fmt.Sprintf("%.1f%%", s.ExpectedVolatility*100),
			fmt.Sprintf("%d %s", s.RiskRating, s.RiskDescription),
			fmt.Sprintf("%d %s", s.ReturnRating, s.ReturnDescription),
		})
	}
	return t.Render()
}

func renderHoldings(b domain.BasketResult) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Symbol", "Alpha", "Weight"})
	for _, h := range b.Holdings {
		t.AppendRow(table.Row{
			h.Symbol,
			fmt.Sprintf("%.4f", h.Alpha),
			h.DisplayPercent.StringFixed(2) + "%",
		})
	}
	return t.Render()
}

// renderStatistics lists the first n securities by Sharpe ratio
func renderStatistics(stats []domain.SecurityStatistics, n int) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Symbol", "Ann. Return", "Ann. Vol", "Sharpe", "Max DD", "Positive"})
	for i, s := range stats {
		if i == n {
			break
		}
		t.AppendRow(table.Row{
			s.Symbol,
			fmt.Sprintf("%.1f%%", s.AnnualizedReturn*100),
			fmt.Sprintf("%.1f%%", s.AnnualizedVolatility*100),
			fmt.Sprintf("%.2f", s.SharpeRatio),
			fmt.Sprintf("%.1f%%", s.MaxDrawdown*100),
			fmt.Sprintf("%.0f%%", s.PositivePeriodPercent),
		})
	}
	return t.Render()
}
