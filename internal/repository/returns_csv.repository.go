package repository

import (
	"factorbaskets/internal/domain"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/gocarina/gocsv"
)

// ReturnRow is one observation in long format
type ReturnRow struct {
	Date   string  `csv:"date" json:"date"`
	Symbol string  `csv:"symbol" json:"symbol"`
	Return float64 `csv:"return" json:"return"`
}

// PriceRow is one adjusted close in long format
type PriceRow struct {
	Date   string  `csv:"date"`
	Symbol string  `csv:"symbol"`
	Price  float64 `csv:"price"`
}

type ReturnsCsvRepository interface {
	Load(path string) (*domain.ReturnSeriesStore, error)
	Read(r io.Reader) (*domain.ReturnSeriesStore, error)
}

type returnsCsvRepositoryHandler struct{}

func NewReturnsCsvRepository() ReturnsCsvRepository {
	return returnsCsvRepositoryHandler{}
}

func (h returnsCsvRepositoryHandler) Load(path string) (*domain.ReturnSeriesStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open returns file: %w", err)
	}
	defer f.Close()

	return h.Read(f)
}

func (h returnsCsvRepositoryHandler) Read(r io.Reader) (*domain.ReturnSeriesStore, error) {
	rows := []ReturnRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse returns csv: %w", err)
	}
	return PivotReturns(rows)
}

// PricesCsvRepository reads prices and converts them to simple returns
type PricesCsvRepository interface {
	Load(path string) (*domain.ReturnSeriesStore, error)
	Read(r io.Reader) (*domain.ReturnSeriesStore, error)
}

type pricesCsvRepositoryHandler struct{}

func NewPricesCsvRepository() PricesCsvRepository {
	return pricesCsvRepositoryHandler{}
}

func (h pricesCsvRepositoryHandler) Load(path string) (*domain.ReturnSeriesStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open prices file: %w", err)
	}
	defer f.Close()

	return h.Read(f)
}

func (h pricesCsvRepositoryHandler) Read(r io.Reader) (*domain.ReturnSeriesStore, error) {
	rows := []PriceRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse prices csv: %w", err)
	}
	returnRows, err := PricesToReturns(rows)
	if err != nil {
		return nil, err
	}
	return PivotReturns(returnRows)
}

// PricesToReturns computes period-over-period simple returns per symbol.
// the first observation of each symbol has no return and is dropped
func PricesToReturns(rows []PriceRow) ([]ReturnRow, error) {
	type observation struct {
		date  time.Time
		raw   string
		price float64
	}
	bySymbol := map[string][]observation{}
	for _, row := range rows {
		symbol := strings.TrimSpace(row.Symbol)
		if symbol == "" {
			return nil, fmt.Errorf("price row on %s has no symbol", row.Date)
		}
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, err
		}
		if !domain.IsFinite(row.Price) {
			return nil, fmt.Errorf("%w: %s has price %v on %s", domain.ErrNonFinite, symbol, row.Price, row.Date)
		}
		if row.Price <= 0 {
			return nil, fmt.Errorf("%s has non-positive price %f on %s", symbol, row.Price, row.Date)
		}
		bySymbol[symbol] = append(bySymbol[symbol], observation{date: date, raw: row.Date, price: row.Price})
	}

	out := []ReturnRow{}
	for symbol, observations := range bySymbol {
		sort.Slice(observations, func(i, j int) bool {
			return observations[i].date.Before(observations[j].date)
		})
		for i := 1; i < len(observations); i++ {
			if observations[i].date.Equal(observations[i-1].date) {
				return nil, fmt.Errorf("%s has more than one price on %s", symbol, observations[i].raw)
			}
			out = append(out, ReturnRow{
				Date:   observations[i].raw,
				Symbol: symbol,
				Return: observations[i].price/observations[i-1].price - 1,
			})
		}
	}

	return out, nil
}

// PivotReturns turns long rows into aligned series, one per symbol,
// ordered by date. every symbol must have exactly one value on every
// date; gaps are rejected rather than filled
func PivotReturns(rows []ReturnRow) (*domain.ReturnSeriesStore, error) {
	if len(rows) == 0 {
		return nil, domain.InsufficientDataError{Reason: "no return observations"}
	}

	valuesBySymbol := map[string]map[time.Time]float64{}
	dateSet := map[time.Time]struct{}{}
	for _, row := range rows {
		symbol := strings.TrimSpace(row.Symbol)
		if symbol == "" {
			return nil, fmt.Errorf("return row on %s has no symbol", row.Date)
		}
		date, err := parseDate(row.Date)
		if err != nil {
			return nil, err
		}
		if _, ok := valuesBySymbol[symbol]; !ok {
			valuesBySymbol[symbol] = map[time.Time]float64{}
		}
		if _, ok := valuesBySymbol[symbol][date]; ok {
			return nil, fmt.Errorf("%s has more than one return on %s", symbol, row.Date)
		}
		if !domain.IsFinite(row.Return) {
			return nil, fmt.Errorf("%w: %s is %v on %s", domain.ErrNonFinite, symbol, row.Return, row.Date)
		}
		valuesBySymbol[symbol][date] = row.Return
		dateSet[date] = struct{}{}
	}

	periods := make([]time.Time, 0, len(dateSet))
	for date := range dateSet {
		periods = append(periods, date)
	}
	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Before(periods[j])
	})

	returns := map[string][]float64{}
	for symbol, values := range valuesBySymbol {
		series := make([]float64, len(periods))
		for i, date := range periods {
			v, ok := values[date]
			if !ok {
				return nil, fmt.Errorf("%w: %s has no return on %s", domain.ErrMisaligned, symbol, date.Format(time.DateOnly))
			}
			series[i] = v
		}
		returns[symbol] = series
	}

	return &domain.ReturnSeriesStore{
		Periods: periods,
		Returns: returns,
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.DateOnly, time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("failed to parse date %q", s)
}
