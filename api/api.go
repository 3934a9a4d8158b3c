package api

import (
	"database/sql"
	"errors"
	"factorbaskets/internal/config"
	"factorbaskets/internal/domain"
	"factorbaskets/internal/logger"
	"factorbaskets/internal/service"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db              *sql.DB
	Config          config.Config
	PipelineService service.PipelineService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(m.loggerMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to factor baskets"})
	})
	router.GET("/features", m.getFeatures)
	router.POST("/baskets", m.buildBaskets)
	router.GET("/runs/:runID", m.getRun)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	return m.InitializeRouterEngine().Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.FromContext(c).Errorw("request failed", "status", code, "error", err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// errorStatusCode maps pipeline failures caused by the submitted data to
// 422 so clients can tell them apart from server faults
func errorStatusCode(err error) int {
	var (
		insufficientData    domain.InsufficientDataError
		degenerateSeries    domain.DegenerateSeriesError
		zeroVariance        domain.ZeroVarianceError
		insufficientMembers domain.InsufficientMembersError
		stageErr            domain.StageError
	)
	switch {
	case errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPersistenceDisabled):
		return http.StatusNotImplemented
	case errors.As(err, &insufficientData),
		errors.As(err, &degenerateSeries),
		errors.As(err, &zeroVariance),
		errors.As(err, &insufficientMembers),
		errors.Is(err, domain.ErrMisaligned),
		errors.Is(err, domain.ErrNonFinite):
		return http.StatusUnprocessableEntity
	case errors.As(err, &stageErr) && stageErr.Stage == service.StageValidate:
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func (m ApiHandler) loggerMiddleware(c *gin.Context) {
	requestID := uuid.New()
	lg := logger.FromContext(c.Request.Context()).With(
		"requestID", requestID.String(),
		"method", c.Request.Method,
		"route", c.FullPath(),
	)
	c.Set("requestID", requestID.String())
	c.Set(logger.ContextKey, lg)
	c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), lg))

	start := time.Now()
	c.Next()

	lg.Infow("handled request", "status", c.Writer.Status(), "elapsedMs", time.Since(start).Milliseconds())
}
