package api

import (
	"factorbaskets/internal/domain"
	"factorbaskets/internal/repository"
	"fmt"

	"github.com/gin-gonic/gin"
)

type buildBasketsRequest struct {
	Returns []repository.ReturnRow `json:"returns"`
	// RiskFreeRate is annual; the configured rate is used when omitted
	RiskFreeRate *float64 `json:"riskFreeRate"`
	BasketCount  *int     `json:"basketCount"`
	TopK         *int     `json:"topK"`
}

type buildBasketsResponse struct {
	RunID      string                      `json:"runID"`
	Loadings   []domain.FactorLoading      `json:"loadings"`
	Statistics []domain.SecurityStatistics `json:"statistics"`
	Baskets    []domain.BasketResult       `json:"baskets"`
	Profile    *domain.Profile             `json:"profile"`
}

func (m ApiHandler) buildBaskets(c *gin.Context) {
	var requestBody buildBasketsRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to parse request: %w", err), c, 400)
		return
	}

	store, err := repository.PivotReturns(requestBody.Returns)
	if err != nil {
		returnErrorJsonCode(err, c, errorStatusCode(err))
		return
	}

	cfg := m.Config.PipelineConfig()
	if requestBody.BasketCount != nil {
		cfg.BasketCount = *requestBody.BasketCount
	}
	if requestBody.TopK != nil {
		cfg.Weights.TopK = *requestBody.TopK
	}

	if requestBody.RiskFreeRate != nil {
		store.RiskFree = domain.NewScalarRiskFreeRate(*requestBody.RiskFreeRate / float64(cfg.Factors.PeriodsPerYear))
	} else {
		rf, err := m.Config.RiskFreeRate()
		if err != nil {
			returnErrorJson(fmt.Errorf("failed to resolve risk free rate: %w", err), c)
			return
		}
		store.RiskFree = rf
	}

	run, err := m.PipelineService.Run(c.Request.Context(), *store, cfg)
	if err != nil {
		returnErrorJsonCode(err, c, errorStatusCode(err))
		return
	}

	c.JSON(200, buildBasketsResponse{
		RunID:      run.RunID.String(),
		Loadings:   run.Loadings,
		Statistics: run.Statistics,
		Baskets:    run.Baskets,
		Profile:    run.Profile,
	})
}
