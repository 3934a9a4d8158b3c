package config

import (
	"factorbaskets/internal/domain"
	interestrate "factorbaskets/pkg/interest_rate"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "BASKETS"

type Config struct {
	Pipeline PipelineConfig `mapstructure:"pipeline"`
	RiskFree RiskFreeConfig `mapstructure:"risk_free"`
	Db       DbConfig       `mapstructure:"db"`
	Api      ApiConfig      `mapstructure:"api"`
	Output   OutputConfig   `mapstructure:"output"`
}

type PipelineConfig struct {
	MinSecurities  int                `mapstructure:"min_securities"`
	MinPeriods     int                `mapstructure:"min_periods"`
	PeriodsPerYear int                `mapstructure:"periods_per_year"`
	Workers        int                `mapstructure:"workers"`
	BasketCount    int                `mapstructure:"basket_count"`
	TopK           int                `mapstructure:"top_k"`
	Epsilon        float64            `mapstructure:"epsilon"`
	ScoreWeights   ScoreWeightsConfig `mapstructure:"score_weights"`
	Summary        SummaryConfig      `mapstructure:"summary"`
	Screen         ScreenConfig       `mapstructure:"screen"`
}

type ScoreWeightsConfig struct {
	Beta float64 `mapstructure:"beta"`
	SMB  float64 `mapstructure:"smb"`
	HML  float64 `mapstructure:"hml"`
}

type SummaryConfig struct {
	BaseRate         float64   `mapstructure:"base_rate"`
	MarketPremium    float64   `mapstructure:"market_premium"`
	SizePremium      float64   `mapstructure:"size_premium"`
	ValuePremium     float64   `mapstructure:"value_premium"`
	MarketVolatility float64   `mapstructure:"market_volatility"`
	VolatilityFloor  float64   `mapstructure:"volatility_floor"`
	RiskThresholds   []float64 `mapstructure:"risk_thresholds"`
	ReturnThresholds []float64 `mapstructure:"return_thresholds"`
}

type ScreenConfig struct {
	Enabled    bool    `mapstructure:"enabled"`
	Expression string  `mapstructure:"expression"`
	MinScore   float64 `mapstructure:"min_score"`
	MinKept    int     `mapstructure:"min_kept"`
}

// RiskFreeConfig picks the risk-free rate: a flat annual rate, or a
// point on a yield curve read from csv when YieldCurveFile is set
type RiskFreeConfig struct {
	AnnualRate     float64 `mapstructure:"annual_rate"`
	YieldCurveFile string  `mapstructure:"yield_curve_file"`
	TermMonths     int     `mapstructure:"term_months"`
}

type DbConfig struct {
	Url string `mapstructure:"url"`
}

type ApiConfig struct {
	Port int `mapstructure:"port"`
}

type OutputConfig struct {
	Dir string `mapstructure:"dir"`
}

func setDefaults(v *viper.Viper) {
	d := domain.DefaultPipelineConfig()

	v.SetDefault("pipeline.min_securities", d.Factors.MinSecurities)
	v.SetDefault("pipeline.min_periods", d.Factors.MinPeriods)
	v.SetDefault("pipeline.periods_per_year", d.Factors.PeriodsPerYear)
	v.SetDefault("pipeline.workers", d.Factors.Workers)
	v.SetDefault("pipeline.basket_count", d.BasketCount)
	v.SetDefault("pipeline.top_k", d.Weights.TopK)
	v.SetDefault("pipeline.epsilon", d.Weights.Epsilon)

	v.SetDefault("pipeline.score_weights.beta", d.ScoreWeights.Beta)
	v.SetDefault("pipeline.score_weights.smb", d.ScoreWeights.SMB)
	v.SetDefault("pipeline.score_weights.hml", d.ScoreWeights.HML)

	v.SetDefault("pipeline.summary.base_rate", d.Summary.BaseRate)
	v.SetDefault("pipeline.summary.market_premium", d.Summary.MarketPremium)
	v.SetDefault("pipeline.summary.size_premium", d.Summary.SizePremium)
	v.SetDefault("pipeline.summary.value_premium", d.Summary.ValuePremium)
	v.SetDefault("pipeline.summary.market_volatility", d.Summary.MarketVolatility)
	v.SetDefault("pipeline.summary.volatility_floor", d.Summary.VolatilityFloor)
	v.SetDefault("pipeline.summary.risk_thresholds", d.Summary.RiskThresholds)
	v.SetDefault("pipeline.summary.return_thresholds", d.Summary.ReturnThresholds)

	v.SetDefault("pipeline.screen.enabled", d.Screen.Enabled)
	v.SetDefault("pipeline.screen.expression", d.Screen.Expression)
	v.SetDefault("pipeline.screen.min_score", d.Screen.MinScore)
	v.SetDefault("pipeline.screen.min_kept", d.Screen.MinKept)

	v.SetDefault("risk_free.annual_rate", 0.05)
	v.SetDefault("risk_free.yield_curve_file", "")
	v.SetDefault("risk_free.term_months", 1)

	v.SetDefault("db.url", "")
	v.SetDefault("api.port", 3009)
	v.SetDefault("output.dir", "output")
}

// Load reads defaults, then an optional yaml file, then BASKETS_*
// environment variables (a .env file in the working directory is
// loaded first). with an empty path ./config/baskets.yaml is used if
// present
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("baskets")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || path != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{}
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func (c Config) PipelineConfig() domain.PipelineConfig {
	p := c.Pipeline
	return domain.PipelineConfig{
		Factors: domain.FactorOptions{
			MinSecurities:  p.MinSecurities,
			MinPeriods:     p.MinPeriods,
			PeriodsPerYear: p.PeriodsPerYear,
			Workers:        p.Workers,
		},
		ScoreWeights: domain.ScoreWeights{
			Beta: p.ScoreWeights.Beta,
			SMB:  p.ScoreWeights.SMB,
			HML:  p.ScoreWeights.HML,
		},
		Screen: domain.ScreenOptions{
			Enabled:    p.Screen.Enabled,
			Expression: p.Screen.Expression,
			MinScore:   p.Screen.MinScore,
			MinKept:    p.Screen.MinKept,
		},
		BasketCount: p.BasketCount,
		Summary: domain.SummaryOptions{
			BaseRate:         p.Summary.BaseRate,
			MarketPremium:    p.Summary.MarketPremium,
			SizePremium:      p.Summary.SizePremium,
			ValuePremium:     p.Summary.ValuePremium,
			MarketVolatility: p.Summary.MarketVolatility,
			VolatilityFloor:  p.Summary.VolatilityFloor,
			RiskThresholds:   p.Summary.RiskThresholds,
			ReturnThresholds: p.Summary.ReturnThresholds,
		},
		Weights: domain.WeightOptions{
			TopK:    p.TopK,
			Epsilon: p.Epsilon,
		},
	}
}

func (c Config) Validate() error {
	if err := c.PipelineConfig().Validate(); err != nil {
		return err
	}
	if c.RiskFree.AnnualRate <= -1 {
		return fmt.Errorf("risk free annual rate must be above -1, got %f", c.RiskFree.AnnualRate)
	}
	if c.RiskFree.YieldCurveFile != "" && c.RiskFree.TermMonths <= 0 {
		return fmt.Errorf("risk free term months must be positive, got %d", c.RiskFree.TermMonths)
	}
	if c.Api.Port <= 0 || c.Api.Port > 65535 {
		return fmt.Errorf("api port out of range: %d", c.Api.Port)
	}
	return nil
}

// RiskFreeRate resolves the configured annual rate to a per-period rate
func (c Config) RiskFreeRate() (domain.RiskFreeRate, error) {
	annual := c.RiskFree.AnnualRate
	if c.RiskFree.YieldCurveFile != "" {
		curve, err := interestrate.LoadYieldCurve(c.RiskFree.YieldCurveFile)
		if err != nil {
			return domain.RiskFreeRate{}, err
		}
		annual, err = curve.GetRate(c.RiskFree.TermMonths)
		if err != nil {
			return domain.RiskFreeRate{}, fmt.Errorf("failed to get %d month rate: %w", c.RiskFree.TermMonths, err)
		}
	}
	return domain.NewScalarRiskFreeRate(annual / float64(c.Pipeline.PeriodsPerYear)), nil
}
