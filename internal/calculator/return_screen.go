package calculator

import (
	"factorbaskets/internal/domain"
	"fmt"
	"math"
	"sort"

	"github.com/maja42/goval"
)

type screenedLoading struct {
	domain.FactorLoading
	ReturnScore float64
}

// ScreenByReturnScore keeps the securities whose return score clears
// opts.MinScore. when too few clear it, the top opts.MinKept by score
// are kept instead. output is ordered by symbol
func ScreenByReturnScore(loadings []domain.FactorLoading, opts domain.ScreenOptions) ([]domain.FactorLoading, error) {
	scored := make([]screenedLoading, 0, len(loadings))
	for _, l := range loadings {
		score, err := EvaluateReturnScore(opts.Expression, l)
		if err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", l.Symbol, err)
		}
		scored = append(scored, screenedLoading{FactorLoading: l, ReturnScore: score})
	}

	kept := []screenedLoading{}
	for _, s := range scored {
		if s.ReturnScore > opts.MinScore {
			kept = append(kept, s)
		}
	}

	if len(kept) < opts.MinKept {
		sort.SliceStable(scored, func(i, j int) bool {
			if scored[i].ReturnScore == scored[j].ReturnScore {
				return scored[i].Symbol < scored[j].Symbol
			}
			return scored[i].ReturnScore > scored[j].ReturnScore
		})
		kept = scored
		if len(kept) > opts.MinKept {
			kept = kept[:opts.MinKept]
		}
	}

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Symbol < kept[j].Symbol
	})
	out := make([]domain.FactorLoading, len(kept))
	for i, k := range kept {
		out[i] = k.FactorLoading
	}
	return out, nil
}

func screenFunctions() map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		"abs": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return 0, fmt.Errorf("abs needs 1 arg, got %d", len(args))
			}
			v, err := toFloat(args[0])
			if err != nil {
				return 0, err
			}
			return math.Abs(v), nil
		},
		"max": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("max needs at least 1 arg, got %d", len(args))
			}
			out := math.Inf(-1)
			for _, a := range args {
				v, err := toFloat(a)
				if err != nil {
					return 0, err
				}
				out = math.Max(out, v)
			}
			return out, nil
		},
		"min": func(args ...interface{}) (interface{}, error) {
			if len(args) < 1 {
				return 0, fmt.Errorf("min needs at least 1 arg, got %d", len(args))
			}
			out := math.Inf(1)
			for _, a := range args {
				v, err := toFloat(a)
				if err != nil {
					return 0, err
				}
				out = math.Min(out, v)
			}
			return out, nil
		},
	}
}

// EvaluateReturnScore evaluates expression with the loading's fields
// bound as variables
func EvaluateReturnScore(expression string, l domain.FactorLoading) (float64, error) {
	eval := goval.NewEvaluator()
	variables := map[string]interface{}{
		"alpha":           l.Alpha,
		"annualizedAlpha": l.AnnualizedAlpha,
		"beta":            l.Beta,
		"smb":             l.SMBLoading,
		"hml":             l.HMLLoading,
		"rSquared":        l.RSquared,
	}
	result, err := eval.Evaluate(expression, variables, screenFunctions())
	if err != nil {
		return 0, fmt.Errorf("failed to evaluate return score expression: %w", err)
	}

	r, err := toFloat(result)
	if err != nil {
		return 0, err
	} else if math.IsNaN(r) {
		return 0, fmt.Errorf("calculated NaN as expression result")
	} else if math.IsInf(r, 0) {
		return 0, fmt.Errorf("calculated infinity as expression result")
	}
	return r, nil
}

func toFloat(v interface{}) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case int:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("failed to convert %v (%T) to float", v, v)
	}
}
