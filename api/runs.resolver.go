package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func (m ApiHandler) getRun(c *gin.Context) {
	runID, err := uuid.Parse(c.Param("runID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid run id: %w", err), c, 400)
		return
	}

	run, err := m.PipelineService.Get(c.Request.Context(), runID)
	if err != nil {
		returnErrorJsonCode(err, c, errorStatusCode(err))
		return
	}

	c.JSON(200, run)
}
