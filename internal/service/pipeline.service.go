package service

import (
	"context"
	"database/sql"
	"errors"
	"factorbaskets/internal/calculator"
	"factorbaskets/internal/domain"
	"factorbaskets/internal/logger"
	"factorbaskets/internal/repository"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	StageValidate  = "validate config"
	StageFactors   = "construct factors"
	StageRegress   = "regress loadings"
	StageStats     = "security statistics"
	StageScreen    = "screen returns"
	StageScore     = "score risk"
	StagePartition = "partition baskets"
	StageSummarize = "summarize baskets"
	StageWeights   = "allocate weights"
	StagePersist   = "persist run"
)

var ErrPersistenceDisabled = errors.New("analysis runs are not persisted in this deployment")

type PipelineService interface {
	Run(ctx context.Context, store domain.ReturnSeriesStore, cfg domain.PipelineConfig) (*domain.AnalysisRun, error)
	Get(ctx context.Context, runID uuid.UUID) (*domain.AnalysisRun, error)
}

type pipelineServiceHandler struct {
	Db                    *sql.DB
	AnalysisRunRepository repository.AnalysisRunRepository
}

// NewPipelineService builds the service. with a nil repository runs are
// returned but never stored
func NewPipelineService(db *sql.DB, analysisRunRepository repository.AnalysisRunRepository) PipelineService {
	return pipelineServiceHandler{
		Db:                    db,
		AnalysisRunRepository: analysisRunRepository,
	}
}

// Run takes one universe snapshot through every stage. any failure
// aborts the run and no partial result is returned
func (h pipelineServiceHandler) Run(ctx context.Context, store domain.ReturnSeriesStore, cfg domain.PipelineConfig) (*domain.AnalysisRun, error) {
	lg := logger.FromContext(ctx)
	profile, endProfile := domain.NewProfile()

	if err := cfg.Validate(); err != nil {
		return nil, domain.StageError{Stage: StageValidate, Err: err}
	}

	run := &domain.AnalysisRun{
		RunID:     uuid.New(),
		CreatedAt: time.Now().UTC(),
		Config:    cfg,
		Periods:   store.Periods,
	}
	lg = lg.With("runID", run.RunID.String())
	lg.Infow("starting analysis run", "securities", len(store.Returns), "periods", store.NumPeriods())

	_, endSpan := profile.StartNewSpan(StageFactors)
	factors, err := calculator.ConstructFactors(store, cfg.Factors)
	endSpan()
	if err != nil {
		return nil, domain.StageError{Stage: StageFactors, Err: err}
	}
	run.Factors = *factors
	lg.Debugw("constructed factors", "periods", factors.Len())

	_, endSpan = profile.StartNewSpan(StageRegress)
	loadings, err := calculator.NewFactorRegressionService(cfg.Factors).CalculateLoadings(ctx, store, *factors)
	endSpan()
	if err != nil {
		return nil, domain.StageError{Stage: StageRegress, Err: err}
	}
	run.Loadings = loadings
	lg.Debugw("calculated loadings", "securities", len(loadings))

	_, endSpan = profile.StartNewSpan(StageStats)
	statistics, err := calculator.CalculateSecurityStatistics(store, cfg.Factors.PeriodsPerYear)
	endSpan()
	if err != nil {
		return nil, domain.StageError{Stage: StageStats, Err: err}
	}
	run.Statistics = statistics

	universe := loadings
	if cfg.Screen.Enabled {
		_, endSpan = profile.StartNewSpan(StageScreen)
		universe, err = calculator.ScreenByReturnScore(loadings, cfg.Screen)
		endSpan()
		if err != nil {
			return nil, domain.StageError{Stage: StageScreen, Err: err}
		}
		numScreened := len(universe)
		run.NumScreened = &numScreened
		lg.Infow("screened universe", "kept", numScreened, "of", len(loadings))
	}

	_, endSpan = profile.StartNewSpan(StageScore)
	scored, err := calculator.CalculateRiskScores(universe, cfg.ScoreWeights)
	endSpan()
	if err != nil {
		return nil, domain.StageError{Stage: StageScore, Err: err}
	}

	_, endSpan = profile.StartNewSpan(StagePartition)
	baskets, err := calculator.PartitionIntoBaskets(scored, cfg.BasketCount)
	endSpan()
	if err != nil {
		return nil, domain.StageError{Stage: StagePartition, Err: err}
	}

	results := make([]domain.BasketResult, len(baskets))
	_, endSpan = profile.StartNewSpan(StageSummarize)
	for i, b := range baskets {
		summary, err := calculator.SummarizeBasket(b, cfg.Summary)
		if err != nil {
			endSpan()
			return nil, domain.StageError{Stage: StageSummarize, Err: err}
		}
		results[i] = domain.BasketResult{
			Basket:  b,
			Summary: *summary,
		}
	}
	endSpan()

	_, endSpan = profile.StartNewSpan(StageWeights)
	for i, b := range baskets {
		holdings, err := calculator.AllocateWeights(b, cfg.Weights)
		if err != nil {
			endSpan()
			return nil, domain.StageError{Stage: StageWeights, Err: err}
		}
		results[i].Holdings = holdings
	}
	endSpan()
	run.Baskets = results

	endProfile()
	run.Profile = profile

	if h.AnalysisRunRepository != nil {
		start := time.Now()
		if err := h.persist(*run); err != nil {
			return nil, domain.StageError{Stage: StagePersist, Err: err}
		}
		lg.Debugw("persisted analysis run", "elapsedMs", time.Since(start).Milliseconds())
	}

	for _, r := range results {
		lg.Infow(
			"built basket",
			"rank", r.Summary.Rank,
			"securities", r.Summary.NumSecurities,
			"expectedReturn", r.Summary.ExpectedReturn,
			"expectedVolatility", r.Summary.ExpectedVolatility,
		)
	}
	lg.Infow("finished analysis run", "totalMs", *profile.TotalMs)

	return run, nil
}

func (h pipelineServiceHandler) persist(run domain.AnalysisRun) error {
	if h.Db == nil {
		return h.AnalysisRunRepository.Add(nil, run)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if err := h.AnalysisRunRepository.Add(tx, run); err != nil {
		return fmt.Errorf("failed to add analysis run: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit analysis run: %w", err)
	}
	return nil
}

func (h pipelineServiceHandler) Get(ctx context.Context, runID uuid.UUID) (*domain.AnalysisRun, error) {
	if h.AnalysisRunRepository == nil {
		return nil, ErrPersistenceDisabled
	}
	run, err := h.AnalysisRunRepository.Get(runID)
	if err != nil {
		return nil, err
	}
	logger.FromContext(ctx).Debugw("loaded analysis run", "runID", runID.String())
	return run, nil
}
