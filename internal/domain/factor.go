package domain

const (
	FactorMarket = "market"
	FactorSize   = "size"
	FactorValue  = "value"
)

// FactorSeries are aligned with the return series they were built from
type FactorSeries struct {
	Market []float64 `json:"market"`
	Size   []float64 `json:"size"`
	Value  []float64 `json:"value"`
}

func (f FactorSeries) Len() int {
	return len(f.Market)
}

type FactorLoading struct {
	Symbol          string  `json:"symbol"`
	Beta            float64 `json:"beta"`
	SMBLoading      float64 `json:"smbLoading"`
	HMLLoading      float64 `json:"hmlLoading"`
	Alpha           float64 `json:"alpha"`
	AnnualizedAlpha float64 `json:"annualizedAlpha"`
	RSquared        float64 `json:"rSquared"`
}
