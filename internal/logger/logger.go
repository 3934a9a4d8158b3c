package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envVar      = "BASKETS_ENV"
	levelEnvVar = "BASKETS_LOG_LEVEL"
)

// New builds a development logger when BASKETS_ENV=dev and a json
// production logger otherwise. BASKETS_LOG_LEVEL overrides the level
func New() *zap.SugaredLogger {
	env := os.Getenv(envVar)

	var cfg zap.Config
	if strings.ToLower(env) == "dev" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
		cfg.InitialFields = map[string]interface{}{envVar: env}
	}

	if raw := os.Getenv(levelEnvVar); raw != "" {
		var level zapcore.Level
		if err := level.UnmarshalText([]byte(raw)); err != nil {
			panic(fmt.Errorf("invalid %s %q: %w", levelEnvVar, raw, err))
		}
		cfg.Level = zap.NewAtomicLevelAt(level)
	}

	logger, err := cfg.Build(zap.AddStacktrace(zap.ErrorLevel))
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

// ContextKey is a plain string so gin handlers can c.Set it
const ContextKey = "LOGGER"

func NewContext(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, logger)
}

// FromContext falls back to the global logger when ctx has none
func FromContext(ctx context.Context) *zap.SugaredLogger {
	logger, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok || logger == nil {
		return zap.S()
	}
	return logger
}

func init() {
	zap.ReplaceGlobals(New().Desugar())
}
