package interestrate

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/gocarina/gocsv"
)

// yieldRow is one point on the curve; rate is annual, in decimal
type yieldRow struct {
	TermMonths int     `csv:"term_months"`
	Rate       float64 `csv:"rate"`
}

type InterestRateMap struct {
	Rates map[int]float64
}

// GetRate returns the rate for monthsOut, interpolating linearly between
// the two nearest terms and clamping outside the curve
func (im InterestRateMap) GetRate(monthsOut int) (float64, error) {
	if len(im.Rates) == 0 {
		return 0, fmt.Errorf("yield curve is empty")
	}
	v, ok := im.Rates[monthsOut]
	if ok {
		return v, nil
	}

	keys := []int{}
	for k := range im.Rates {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	if monthsOut < keys[0] {
		return im.Rates[keys[0]], nil
	}
	if monthsOut > keys[len(keys)-1] {
		return im.Rates[keys[len(keys)-1]], nil
	}

	for i := 0; i < len(keys)-1; i++ {
		key1 := keys[i]
		key2 := keys[i+1]
		if monthsOut > key1 && monthsOut < key2 {
			frac := float64(monthsOut-key1) / float64(key2-key1)
			return im.Rates[key1] + frac*(im.Rates[key2]-im.Rates[key1]), nil
		}
	}
	return 0, fmt.Errorf("unable to compute rate for %d months", monthsOut)
}

func ReadYieldCurve(r io.Reader) (*InterestRateMap, error) {
	rows := []yieldRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse yield curve: %w", err)
	}

	out := map[int]float64{}
	for _, row := range rows {
		if row.TermMonths <= 0 {
			return nil, fmt.Errorf("yield curve term must be positive, got %d", row.TermMonths)
		}
		if _, ok := out[row.TermMonths]; ok {
			return nil, fmt.Errorf("yield curve has term %d more than once", row.TermMonths)
		}
		out[row.TermMonths] = row.Rate
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("yield curve has no rows")
	}

	return &InterestRateMap{
		Rates: out,
	}, nil
}

func LoadYieldCurve(path string) (*InterestRateMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open yield curve file: %w", err)
	}
	defer f.Close()

	return ReadYieldCurve(f)
}
