package calculator

import (
	"context"
	"factorbaskets/internal/domain"
	"fmt"
	"sync"

	"gonum.org/v1/gonum/stat"
)

type FactorRegressionService interface {
	CalculateLoadings(ctx context.Context, store domain.ReturnSeriesStore, factors domain.FactorSeries) ([]domain.FactorLoading, error)
}

type factorRegressionServiceHandler struct {
	Workers        int
	MinPeriods     int
	PeriodsPerYear int
}

func NewFactorRegressionService(opts domain.FactorOptions) FactorRegressionService {
	return factorRegressionServiceHandler{
		Workers:        opts.Workers,
		MinPeriods:     opts.MinPeriods,
		PeriodsPerYear: opts.PeriodsPerYear,
	}
}

type regressionInput struct {
	Symbol  string
	Returns []float64
}

type regressionResult struct {
	Symbol  string
	Loading *domain.FactorLoading
	Err     error
}

// CalculateLoadings regresses every security against each factor on a
// pool of workers. results are keyed by symbol, so the output is the same
// whatever order the workers finish in. any failure fails the whole stage
func (h factorRegressionServiceHandler) CalculateLoadings(ctx context.Context, store domain.ReturnSeriesStore, factors domain.FactorSeries) ([]domain.FactorLoading, error) {
	if err := store.Validate(); err != nil {
		return nil, err
	}
	symbols := store.Symbols()
	if len(symbols) == 0 {
		return nil, domain.InsufficientDataError{Reason: "cannot regress an empty universe"}
	}
	if factors.Len() != store.NumPeriods() || len(factors.Size) != factors.Len() || len(factors.Value) != factors.Len() {
		return nil, domain.InsufficientDataError{
			Reason: fmt.Sprintf("factor series (%d periods) not aligned with returns (%d periods)", factors.Len(), store.NumPeriods()),
		}
	}
	if factors.Len() < h.MinPeriods {
		return nil, domain.InsufficientDataError{
			Securities:    len(symbols),
			Periods:       factors.Len(),
			MinSecurities: 1,
			MinPeriods:    h.MinPeriods,
		}
	}
	for _, f := range []struct {
		name   string
		series []float64
	}{
		{domain.FactorMarket, factors.Market},
		{domain.FactorSize, factors.Size},
		{domain.FactorValue, factors.Value},
	} {
		if isConstant(f.series) {
			return nil, domain.DegenerateSeriesError{Symbol: "factors", Series: f.name}
		}
	}

	inputCh := make(chan regressionInput, len(symbols))
	resultCh := make(chan regressionResult, len(symbols))
	for _, symbol := range symbols {
		inputCh <- regressionInput{
			Symbol:  symbol,
			Returns: store.Returns[symbol],
		}
	}
	close(inputCh)

	numGoroutines := h.Workers
	if numGoroutines <= 0 {
		numGoroutines = 1
	}
	if numGoroutines > len(symbols) {
		numGoroutines = len(symbols)
	}

	var wg sync.WaitGroup
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for input := range inputCh {
				if err := ctx.Err(); err != nil {
					resultCh <- regressionResult{Symbol: input.Symbol, Err: err}
					continue
				}
				loading, err := RegressSecurity(input.Symbol, input.Returns, factors, h.PeriodsPerYear)
				resultCh <- regressionResult{
					Symbol:  input.Symbol,
					Loading: loading,
					Err:     err,
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	loadingsBySymbol := map[string]domain.FactorLoading{}
	errorsBySymbol := map[string]error{}
	for res := range resultCh {
		if res.Err != nil {
			errorsBySymbol[res.Symbol] = res.Err
			continue
		}
		loadingsBySymbol[res.Symbol] = *res.Loading
	}

	out := make([]domain.FactorLoading, 0, len(symbols))
	for _, symbol := range symbols {
		if err, ok := errorsBySymbol[symbol]; ok {
			return nil, fmt.Errorf("failed to regress %s: %w", symbol, err)
		}
		out = append(out, loadingsBySymbol[symbol])
	}

	return out, nil
}

// RegressSecurity runs three independent simple regressions of the
// security's returns: one per factor
func RegressSecurity(symbol string, returns []float64, factors domain.FactorSeries, periodsPerYear int) (*domain.FactorLoading, error) {
	if len(returns) != factors.Len() {
		return nil, domain.InsufficientDataError{
			Reason: fmt.Sprintf("%s has %d periods but factors have %d", symbol, len(returns), factors.Len()),
		}
	}
	if len(returns) < 3 {
		return nil, domain.InsufficientDataError{
			Reason: fmt.Sprintf("%s has %d periods, need at least 3", symbol, len(returns)),
		}
	}
	if isConstant(returns) {
		return nil, domain.DegenerateSeriesError{Symbol: symbol, Series: "returns"}
	}

	market, err := simpleRegression(symbol, domain.FactorMarket, factors.Market, returns)
	if err != nil {
		return nil, err
	}
	size, err := simpleRegression(symbol, domain.FactorSize, factors.Size, returns)
	if err != nil {
		return nil, err
	}
	value, err := simpleRegression(symbol, domain.FactorValue, factors.Value, returns)
	if err != nil {
		return nil, err
	}

	return &domain.FactorLoading{
		Symbol:          symbol,
		Beta:            market.Slope,
		SMBLoading:      size.Slope,
		HMLLoading:      value.Slope,
		Alpha:           market.Intercept,
		AnnualizedAlpha: market.Intercept * float64(periodsPerYear),
		RSquared:        market.RSquared,
	}, nil
}

type regressionFit struct {
	Slope     float64
	Intercept float64
	RSquared  float64
}

// simpleRegression fits y = intercept + slope*x by ordinary least squares
func simpleRegression(symbol, factor string, x, y []float64) (*regressionFit, error) {
	if isConstant(x) {
		return nil, domain.DegenerateSeriesError{Symbol: symbol, Series: factor}
	}
	intercept, slope := stat.LinearRegression(x, y, nil, false)
	return &regressionFit{
		Slope:     slope,
		Intercept: intercept,
		RSquared:  stat.RSquared(x, y, nil, intercept, slope),
	}, nil
}

func isConstant(series []float64) bool {
	if len(series) < 2 {
		return true
	}
	for _, v := range series[1:] {
		if v != series[0] {
			return false
		}
	}
	return true
}
