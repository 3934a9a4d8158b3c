package api

import (
	"bytes"
	"encoding/json"
	"factorbaskets/internal/config"
	"factorbaskets/internal/domain"
	"factorbaskets/internal/repository"
	"factorbaskets/internal/service"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	d := domain.DefaultPipelineConfig()
	return config.Config{
		Pipeline: config.PipelineConfig{
			MinSecurities:  d.Factors.MinSecurities,
			MinPeriods:     d.Factors.MinPeriods,
			PeriodsPerYear: d.Factors.PeriodsPerYear,
			Workers:        d.Factors.Workers,
			BasketCount:    d.BasketCount,
			TopK:           d.Weights.TopK,
			Epsilon:        d.Weights.Epsilon,
			ScoreWeights: config.ScoreWeightsConfig{
				Beta: d.ScoreWeights.Beta,
				SMB:  d.ScoreWeights.SMB,
				HML:  d.ScoreWeights.HML,
			},
			Summary: config.SummaryConfig{
				MarketPremium:    d.Summary.MarketPremium,
				SizePremium:      d.Summary.SizePremium,
				ValuePremium:     d.Summary.ValuePremium,
				MarketVolatility: d.Summary.MarketVolatility,
				VolatilityFloor:  d.Summary.VolatilityFloor,
				RiskThresholds:   d.Summary.RiskThresholds,
				ReturnThresholds: d.Summary.ReturnThresholds,
			},
			Screen: config.ScreenConfig{
				Expression: d.Screen.Expression,
				MinScore:   d.Screen.MinScore,
				MinKept:    d.Screen.MinKept,
			},
		},
		RiskFree: config.RiskFreeConfig{AnnualRate: 0.05, TermMonths: 1},
		Api:      config.ApiConfig{Port: 3009},
	}
}

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{
		Config:          testConfig(),
		PipelineService: service.NewPipelineService(nil, nil),
	}
	return handler.InitializeRouterEngine()
}

func returnRows(numSecurities, numPeriods int) []repository.ReturnRow {
	rows := []repository.ReturnRow{}
	start := time.Date(2021, 1, 1, 0, 0, 0, 0, time.UTC)
	for s := 0; s < numSecurities; s++ {
		beta := 0.2 + 0.05*float64(s)
		for p := 0; p < numPeriods; p++ {
			market := 0.01*math.Sin(float64(p)) + 0.002*float64(p%4)
			idio := 0.003 * math.Cos(float64(p*(s+1)))
			rows = append(rows, repository.ReturnRow{
				Date:   start.AddDate(0, p, 0).Format(time.DateOnly),
				Symbol: fmt.Sprintf("TKR%02d", s),
				Return: 0.0005*float64(s%7) + beta*market + idio,
			})
		}
	}
	return rows
}

func doJson(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestApi(t *testing.T) {
	router := testRouter()

	t.Run("welcome", func(t *testing.T) {
		w := doJson(router, http.MethodGet, "/", nil)
		require.Equal(t, 200, w.Code)
	})

	t.Run("features", func(t *testing.T) {
		w := doJson(router, http.MethodGet, "/features", nil)
		require.Equal(t, 200, w.Code)

		out := []feature{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out, len(features))
		for _, f := range out {
			require.NotEmpty(t, f.Title)
			require.NotEmpty(t, f.ShortDescription)
			require.NotEmpty(t, f.Detail)
		}
	})

	t.Run("build baskets", func(t *testing.T) {
		w := doJson(router, http.MethodPost, "/baskets", buildBasketsRequest{
			Returns: returnRows(40, 24),
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := buildBasketsResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out.Loadings, 40)
		require.Len(t, out.Statistics, 40)
		for i := 1; i < len(out.Statistics); i++ {
			require.GreaterOrEqual(t, out.Statistics[i-1].SharpeRatio, out.Statistics[i].SharpeRatio)
		}
		require.Len(t, out.Baskets, 5)
		for _, b := range out.Baskets {
			require.Len(t, b.Basket.Members, 8)
			require.Len(t, b.Holdings, 7)
		}
		_, err := uuid.Parse(out.RunID)
		require.NoError(t, err)
	})

	t.Run("overrides basket count and k", func(t *testing.T) {
		basketCount, topK, rf := 4, 3, 0.02
		w := doJson(router, http.MethodPost, "/baskets", buildBasketsRequest{
			Returns:      returnRows(20, 24),
			BasketCount:  &basketCount,
			TopK:         &topK,
			RiskFreeRate: &rf,
		})
		require.Equal(t, 200, w.Code, w.Body.String())

		out := buildBasketsResponse{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
		require.Len(t, out.Baskets, 4)
		require.Len(t, out.Baskets[0].Holdings, 3)
	})

	t.Run("too few securities", func(t *testing.T) {
		w := doJson(router, http.MethodPost, "/baskets", buildBasketsRequest{
			Returns: returnRows(5, 24),
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("missing observation", func(t *testing.T) {
		rows := returnRows(40, 24)
		rows = rows[1:]
		w := doJson(router, http.MethodPost, "/baskets", buildBasketsRequest{Returns: rows})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/baskets", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("runs without persistence", func(t *testing.T) {
		w := doJson(router, http.MethodGet, "/runs/"+uuid.New().String(), nil)
		require.Equal(t, http.StatusNotImplemented, w.Code)
	})

	t.Run("invalid run id", func(t *testing.T) {
		w := doJson(router, http.MethodGet, "/runs/not-a-uuid", nil)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func Test_errorStatusCode(t *testing.T) {
	for _, tc := range []struct {
		err      error
		expected int
	}{
		{domain.StageError{Stage: service.StageFactors, Err: domain.InsufficientDataError{Securities: 3}}, 422},
		{domain.StageError{Stage: service.StageRegress, Err: fmt.Errorf("failed to regress X: %w", domain.DegenerateSeriesError{Symbol: "X"})}, 422},
		{domain.StageError{Stage: service.StageScore, Err: domain.ZeroVarianceError{Field: "beta"}}, 422},
		{domain.StageError{Stage: service.StageWeights, Err: domain.InsufficientMembersError{}}, 422},
		{fmt.Errorf("%w: gap", domain.ErrMisaligned), 422},
		{domain.StageError{Stage: service.StageFactors, Err: fmt.Errorf("%w: X is NaN", domain.ErrNonFinite)}, 422},
		{domain.StageError{Stage: service.StageValidate, Err: fmt.Errorf("bad")}, 400},
		{fmt.Errorf("%w: x", domain.ErrRunNotFound), 404},
		{service.ErrPersistenceDisabled, 501},
		{domain.StageError{Stage: service.StagePersist, Err: fmt.Errorf("conn refused")}, 500},
	} {
		require.Equal(t, tc.expected, errorStatusCode(tc.err), tc.err.Error())
	}
}
