package api

import (
	"github.com/gin-gonic/gin"
)

type feature struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Detail           string `json:"detail"`
}

var features = []feature{
	{
		Title:            "Factor-based risk scoring",
		ShortDescription: "Every stock is measured against market, size and value factors.",
		Detail:           "Monthly returns are regressed on a market factor and on size and value proxies built from the universe itself. The loadings are standardized and combined into a single composite risk score.",
	},
	{
		Title:            "Five risk-tiered baskets",
		ShortDescription: "From defensive to aggressive growth.",
		Detail:           "The universe is ranked by risk score and cut into equal-sized baskets, so each basket holds a contiguous band of risk from Low Risk / Defensive to High Risk / Aggressive Growth.",
	},
	{
		Title:            "Expected return and volatility",
		ShortDescription: "Each basket comes with a forecast and plain-language ratings.",
		Detail:           "Average factor exposures and alpha are turned into an expected annual return and volatility, then rated on a five-step scale from Very Low to Very High.",
	},
	{
		Title:            "Alpha-weighted holdings",
		ShortDescription: "The strongest names in every basket, sized by alpha.",
		Detail:           "Each basket's top seven stocks by alpha are weighted in proportion to their alpha. Weights always add up to exactly 100%.",
	},
}

func (m ApiHandler) getFeatures(c *gin.Context) {
	c.JSON(200, features)
}
