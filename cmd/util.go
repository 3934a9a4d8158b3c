package cmd

import (
	"database/sql"
	"factorbaskets/api"
	"factorbaskets/internal/config"
	"factorbaskets/internal/repository"
	"factorbaskets/internal/service"
	"fmt"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func CloseDependencies(handler *api.ApiHandler) {
	if handler.Db == nil {
		return
	}
	if err := handler.Db.Close(); err != nil {
		zap.S().Errorw("failed to close db", "error", err.Error())
	}
}

// InitializeDependencies wires the api handler from config. without a
// db url runs are computed but not stored
func InitializeDependencies(configPath string) (*api.ApiHandler, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var dbConn *sql.DB
	var analysisRunRepository repository.AnalysisRunRepository
	if cfg.Db.Url != "" {
		dbConn, err = sql.Open("postgres", cfg.Db.Url)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
		analysisRunRepository = repository.NewAnalysisRunRepository(dbConn)
	}

	pipelineService := service.NewPipelineService(dbConn, analysisRunRepository)

	return &api.ApiHandler{
		Db:              dbConn,
		Config:          *cfg,
		PipelineService: pipelineService,
	}, nil
}
