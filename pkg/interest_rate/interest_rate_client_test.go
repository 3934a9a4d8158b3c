package interestrate

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestReadYieldCurve(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		in := "term_months,rate\n1,0.0148\n3,0.0155\n12,0.0159\n120,0.0192\n"
		response, err := ReadYieldCurve(strings.NewReader(in))
		require.NoError(t, err)

		require.Equal(
			t,
			"",
			cmp.Diff(
				&InterestRateMap{
					Rates: map[int]float64{
						1:   0.0148,
						3:   0.0155,
						12:  0.0159,
						120: 0.0192,
					},
				},
				response,
				cmp.Comparer(func(i, j float64) bool {
					return math.Abs(i-j) < 0.0001
				}),
			),
		)
	})

	t.Run("duplicate term", func(t *testing.T) {
		_, err := ReadYieldCurve(strings.NewReader("term_months,rate\n1,0.01\n1,0.02\n"))
		require.Error(t, err)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := ReadYieldCurve(strings.NewReader("term_months,rate\n"))
		require.Error(t, err)
	})
}

func TestInterestRateMap_GetRate(t *testing.T) {
	im := InterestRateMap{Rates: map[int]float64{1: 0.01, 3: 0.02, 12: 0.05}}

	for _, tc := range []struct {
		months   int
		expected float64
	}{
		{1, 0.01},
		{2, 0.015},
		{6, 0.03},
		{12, 0.05},
		{0, 0.01},
		{360, 0.05},
	} {
		rate, err := im.GetRate(tc.months)
		require.NoError(t, err)
		require.InDelta(t, tc.expected, rate, 1e-12, "months %d", tc.months)
	}

	_, err := InterestRateMap{}.GetRate(1)
	require.Error(t, err)
}
