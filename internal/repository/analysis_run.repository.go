package repository

import (
	"database/sql"
	"encoding/json"
	"errors"
	"factorbaskets/internal/db/models/postgres/public/model"
	"factorbaskets/internal/db/models/postgres/public/table"
	"factorbaskets/internal/domain"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AnalysisRunRepository interface {
	Add(tx *sql.Tx, run domain.AnalysisRun) error
	Get(id uuid.UUID) (*domain.AnalysisRun, error)
}

type analysisRunRepositoryHandler struct {
	Db *sql.DB
}

func NewAnalysisRunRepository(db *sql.DB) AnalysisRunRepository {
	return analysisRunRepositoryHandler{Db: db}
}

// Add writes the run, its loadings, baskets and holdings. with a nil tx
// it opens and commits its own
func (h analysisRunRepositoryHandler) Add(tx *sql.Tx, run domain.AnalysisRun) error {
	if tx == nil {
		ownTx, err := h.Db.Begin()
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer ownTx.Rollback()

		if err := h.add(ownTx, run); err != nil {
			return err
		}
		if err := ownTx.Commit(); err != nil {
			return fmt.Errorf("failed to commit analysis run: %w", err)
		}
		return nil
	}
	return h.add(tx, run)
}

func (h analysisRunRepositoryHandler) add(tx *sql.Tx, run domain.AnalysisRun) error {
	runModel, err := analysisRunModel(run)
	if err != nil {
		return err
	}

	query := table.AnalysisRun.
		INSERT(table.AnalysisRun.AllColumns).
		MODEL(runModel)
	if _, err := query.Exec(tx); err != nil {
		return fmt.Errorf("failed to insert analysis run: %w", err)
	}

	loadingModels := factorLoadingModels(run)
	if len(loadingModels) > 0 {
		loadingQuery := table.FactorLoading.
			INSERT(table.FactorLoading.AllColumns).
			MODELS(loadingModels)
		if _, err := loadingQuery.Exec(tx); err != nil {
			return fmt.Errorf("failed to insert factor loadings: %w", err)
		}
	}

	basketModels := []model.Basket{}
	holdingModels := []model.BasketHolding{}
	for _, b := range run.Baskets {
		basketID := uuid.New()
		basketModels = append(basketModels, basketModel(run.RunID, basketID, b.Summary))
		for _, holding := range b.Holdings {
			holdingModels = append(holdingModels, model.BasketHolding{
				BasketHoldingID: uuid.New(),
				BasketID:        basketID,
				Symbol:          holding.Symbol,
				Alpha:           holding.Alpha,
				Weight:          holding.Weight,
				DisplayPercent:  holding.DisplayPercent,
			})
		}
	}

	if len(basketModels) > 0 {
		basketQuery := table.Basket.
			INSERT(table.Basket.AllColumns).
			MODELS(basketModels)
		if _, err := basketQuery.Exec(tx); err != nil {
			return fmt.Errorf("failed to insert baskets: %w", err)
		}
	}
	if len(holdingModels) > 0 {
		holdingQuery := table.BasketHolding.
			INSERT(table.BasketHolding.AllColumns).
			MODELS(holdingModels)
		if _, err := holdingQuery.Exec(tx); err != nil {
			return fmt.Errorf("failed to insert basket holdings: %w", err)
		}
	}

	return nil
}

func (h analysisRunRepositoryHandler) Get(id uuid.UUID) (*domain.AnalysisRun, error) {
	runQuery := table.AnalysisRun.
		SELECT(table.AnalysisRun.AllColumns).
		WHERE(table.AnalysisRun.AnalysisRunID.EQ(postgres.UUID(id)))

	runModel := model.AnalysisRun{}
	err := runQuery.Query(h.Db, &runModel)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", domain.ErrRunNotFound, id.String())
	} else if err != nil {
		return nil, fmt.Errorf("failed to get analysis run %s: %w", id.String(), err)
	}

	loadingQuery := table.FactorLoading.
		SELECT(table.FactorLoading.AllColumns).
		WHERE(table.FactorLoading.AnalysisRunID.EQ(postgres.UUID(id))).
		ORDER_BY(table.FactorLoading.Symbol.ASC())
	loadingModels := []model.FactorLoading{}
	if err := loadingQuery.Query(h.Db, &loadingModels); err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get factor loadings for run %s: %w", id.String(), err)
	}

	basketQuery := table.Basket.
		SELECT(table.Basket.AllColumns).
		WHERE(table.Basket.AnalysisRunID.EQ(postgres.UUID(id))).
		ORDER_BY(table.Basket.Rank.ASC())
	basketModels := []model.Basket{}
	if err := basketQuery.Query(h.Db, &basketModels); err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return nil, fmt.Errorf("failed to get baskets for run %s: %w", id.String(), err)
	}

	holdingModels := []model.BasketHolding{}
	if len(basketModels) > 0 {
		basketIDs := []postgres.Expression{}
		for _, b := range basketModels {
			basketIDs = append(basketIDs, postgres.UUID(b.BasketID))
		}
		holdingQuery := table.BasketHolding.
			SELECT(table.BasketHolding.AllColumns).
			WHERE(table.BasketHolding.BasketID.IN(basketIDs...)).
			ORDER_BY(table.BasketHolding.Alpha.DESC(), table.BasketHolding.Symbol.ASC())
		if err := holdingQuery.Query(h.Db, &holdingModels); err != nil && !errors.Is(err, qrm.ErrNoRows) {
			return nil, fmt.Errorf("failed to get basket holdings for run %s: %w", id.String(), err)
		}
	}

	return analysisRunFromModels(runModel, loadingModels, basketModels, holdingModels)
}

func analysisRunModel(run domain.AnalysisRun) (*model.AnalysisRun, error) {
	configBytes, err := json.Marshal(run.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	periods := run.Periods
	if periods == nil {
		periods = []time.Time{}
	}
	periodBytes, err := json.Marshal(periods)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal periods: %w", err)
	}
	factorBytes, err := json.Marshal(run.Factors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal factors: %w", err)
	}
	statistics := run.Statistics
	if statistics == nil {
		statistics = []domain.SecurityStatistics{}
	}
	statisticsBytes, err := json.Marshal(statistics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statistics: %w", err)
	}

	out := &model.AnalysisRun{
		AnalysisRunID: run.RunID,
		CreatedAt:     run.CreatedAt,
		Config:        string(configBytes),
		NumSecurities: int32(len(run.Loadings)),
		NumPeriods:    int32(run.Factors.Len()),
		Periods:       string(periodBytes),
		Factors:       string(factorBytes),
		Statistics:    string(statisticsBytes),
	}
	if run.NumScreened != nil {
		n := int32(*run.NumScreened)
		out.NumScreened = &n
	}
	if run.Profile != nil {
		profileBytes, err := json.Marshal(run.Profile)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal profile: %w", err)
		}
		profile := string(profileBytes)
		out.Profile = &profile
	}

	return out, nil
}

func factorLoadingModels(run domain.AnalysisRun) []model.FactorLoading {
	type placement struct {
		score float64
		rank  int32
	}
	placements := map[string]placement{}
	for _, b := range run.Baskets {
		for _, m := range b.Basket.Members {
			placements[m.Symbol] = placement{score: m.RiskScore, rank: int32(b.Basket.Rank)}
		}
	}

	out := make([]model.FactorLoading, 0, len(run.Loadings))
	for _, l := range run.Loadings {
		m := model.FactorLoading{
			FactorLoadingID: uuid.New(),
			AnalysisRunID:   run.RunID,
			Symbol:          l.Symbol,
			Beta:            l.Beta,
			SmbLoading:      l.SMBLoading,
			HmlLoading:      l.HMLLoading,
			Alpha:           l.Alpha,
			AnnualizedAlpha: l.AnnualizedAlpha,
			RSquared:        l.RSquared,
		}
		if p, ok := placements[l.Symbol]; ok {
			score, rank := p.score, p.rank
			m.RiskScore = &score
			m.BasketRank = &rank
		}
		out = append(out, m)
	}
	return out
}

func basketModel(runID, basketID uuid.UUID, s domain.BasketSummary) model.Basket {
	return model.Basket{
		BasketID:           basketID,
		AnalysisRunID:      runID,
		Rank:               int32(s.Rank),
		Name:               s.Name,
		NumSecurities:      int32(s.NumSecurities),
		AverageRiskScore:   s.AverageRiskScore,
		AverageBeta:        s.AverageBeta,
		AverageSmb:         s.AverageSMB,
		AverageHml:         s.AverageHML,
		AverageAlpha:       s.AverageAlpha,
		ExpectedReturn:     s.ExpectedReturn,
		ExpectedVolatility: s.ExpectedVolatility,
		RiskRating:         int32(s.RiskRating),
		ReturnRating:       int32(s.ReturnRating),
		RiskDescription:    s.RiskDescription,
		ReturnDescription:  s.ReturnDescription,
	}
}

func analysisRunFromModels(
	runModel model.AnalysisRun,
	loadingModels []model.FactorLoading,
	basketModels []model.Basket,
	holdingModels []model.BasketHolding,
) (*domain.AnalysisRun, error) {
	run := &domain.AnalysisRun{
		RunID:     runModel.AnalysisRunID,
		CreatedAt: runModel.CreatedAt,
		Loadings:  []domain.FactorLoading{},
		Baskets:   []domain.BasketResult{},
	}
	if err := json.Unmarshal([]byte(runModel.Config), &run.Config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := json.Unmarshal([]byte(runModel.Periods), &run.Periods); err != nil {
		return nil, fmt.Errorf("failed to unmarshal periods: %w", err)
	}
	if err := json.Unmarshal([]byte(runModel.Factors), &run.Factors); err != nil {
		return nil, fmt.Errorf("failed to unmarshal factors: %w", err)
	}
	if runModel.Statistics != "" {
		if err := json.Unmarshal([]byte(runModel.Statistics), &run.Statistics); err != nil {
			return nil, fmt.Errorf("failed to unmarshal statistics: %w", err)
		}
	}
	if runModel.NumScreened != nil {
		n := int(*runModel.NumScreened)
		run.NumScreened = &n
	}
	if runModel.Profile != nil {
		profile := &domain.Profile{}
		if err := json.Unmarshal([]byte(*runModel.Profile), profile); err != nil {
			return nil, fmt.Errorf("failed to unmarshal profile: %w", err)
		}
		run.Profile = profile
	}

	membersByRank := map[int32][]domain.ScoredSecurity{}
	for _, m := range loadingModels {
		loading := domain.FactorLoading{
			Symbol:          m.Symbol,
			Beta:            m.Beta,
			SMBLoading:      m.SmbLoading,
			HMLLoading:      m.HmlLoading,
			Alpha:           m.Alpha,
			AnnualizedAlpha: m.AnnualizedAlpha,
			RSquared:        m.RSquared,
		}
		run.Loadings = append(run.Loadings, loading)
		if m.BasketRank != nil && m.RiskScore != nil {
			membersByRank[*m.BasketRank] = append(membersByRank[*m.BasketRank], domain.ScoredSecurity{
				FactorLoading: loading,
				RiskScore:     *m.RiskScore,
			})
		}
	}

	holdingsByBasket := map[uuid.UUID][]domain.WeightedHolding{}
	for _, m := range holdingModels {
		holdingsByBasket[m.BasketID] = append(holdingsByBasket[m.BasketID], domain.WeightedHolding{
			Symbol:         m.Symbol,
			Alpha:          m.Alpha,
			Weight:         m.Weight,
			DisplayPercent: m.DisplayPercent,
		})
	}

	for _, b := range basketModels {
		members := membersByRank[b.Rank]
		sortMembers(members)
		run.Baskets = append(run.Baskets, domain.BasketResult{
			Basket: domain.Basket{
				Rank:    int(b.Rank),
				Members: members,
			},
			Summary: domain.BasketSummary{
				Rank:               int(b.Rank),
				Name:               b.Name,
				NumSecurities:      int(b.NumSecurities),
				AverageRiskScore:   b.AverageRiskScore,
				AverageBeta:        b.AverageBeta,
				AverageSMB:         b.AverageSmb,
				AverageHML:         b.AverageHml,
				AverageAlpha:       b.AverageAlpha,
				ExpectedReturn:     b.ExpectedReturn,
				ExpectedVolatility: b.ExpectedVolatility,
				RiskRating:         int(b.RiskRating),
				ReturnRating:       int(b.ReturnRating),
				RiskDescription:    b.RiskDescription,
				ReturnDescription:  b.ReturnDescription,
			},
			Holdings: holdingsByBasket[b.BasketID],
		})
	}

	return run, nil
}
