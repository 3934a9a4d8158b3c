package main

import (
	"context"
	"factorbaskets/cmd"
	"factorbaskets/internal/config"
	"factorbaskets/internal/domain"
	"factorbaskets/internal/logger"
	"factorbaskets/internal/repository"
	"factorbaskets/internal/service"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "baskets",
	Short: "Sort a stock universe into risk-tiered, alpha-weighted baskets",
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "config file path (default: ./config/baskets.yaml)")

	runCmd.Flags().String("returns", "", "csv of date,symbol,return rows (date,symbol,price with --prices)")
	runCmd.Flags().Bool("prices", false, "input holds prices; convert to simple returns first")
	runCmd.Flags().String("out", "", "output directory (default: output.dir from config)")
	runCmd.Flags().Bool("persist", false, "store the run in postgres (requires db.url)")
	runCmd.Flags().Bool("screen", false, "enable the return screen before partitioning")
	_ = runCmd.MarkFlagRequired("returns")

	serveCmd.Flags().Int("port", 0, "port to listen on (default: api.port from config)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Build baskets from a returns file and print them",
	RunE: func(c *cobra.Command, args []string) error {
		configPath, _ := c.Flags().GetString("config")
		returnsPath, _ := c.Flags().GetString("returns")
		prices, _ := c.Flags().GetBool("prices")
		outDir, _ := c.Flags().GetString("out")
		persist, _ := c.Flags().GetBool("persist")
		screen, _ := c.Flags().GetBool("screen")

		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		if outDir == "" {
			outDir = cfg.Output.Dir
		}

		store, err := loadStore(returnsPath, prices)
		if err != nil {
			return err
		}
		store.RiskFree, err = cfg.RiskFreeRate()
		if err != nil {
			return fmt.Errorf("failed to resolve risk free rate: %w", err)
		}

		pipelineConfig := cfg.PipelineConfig()
		if screen {
			pipelineConfig.Screen.Enabled = true
		}

		pipelineService := service.NewPipelineService(nil, nil)
		if persist {
			if cfg.Db.Url == "" {
				return fmt.Errorf("--persist requires db.url to be configured")
			}
			apiHandler, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(apiHandler)
			pipelineService = apiHandler.PipelineService
		}

		ctx := logger.NewContext(context.Background(), zap.S())
		run, err := pipelineService.Run(ctx, *store, pipelineConfig)
		if err != nil {
			return err
		}

		paths, err := repository.NewResultsCsvRepository().Write(outDir, *run)
		if err != nil {
			return err
		}

		out := c.OutOrStdout()
		fmt.Fprintf(out, "run %s: %d securities, %d periods\n\n", run.RunID, len(run.Loadings), run.Factors.Len())
		fmt.Fprintln(out, renderSummaries(*run))
		for _, b := range run.Baskets {
			fmt.Fprintf(out, "\nBasket %d: %s\n", b.Summary.Rank, b.Summary.Name)
			fmt.Fprintln(out, renderHoldings(b))
		}
		fmt.Fprintln(out, "\nTop securities by Sharpe ratio")
		fmt.Fprintln(out, renderStatistics(run.Statistics, 10))
		fmt.Fprintln(out)
		for _, p := range paths {
			fmt.Fprintf(out, "wrote %s\n", p)
		}
		return nil
	},
}

func loadStore(path string, prices bool) (*domain.ReturnSeriesStore, error) {
	if prices {
		return repository.NewPricesCsvRepository().Load(path)
	}
	return repository.NewReturnsCsvRepository().Load(path)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the http api",
	RunE: func(c *cobra.Command, args []string) error {
		configPath, _ := c.Flags().GetString("config")
		port, _ := c.Flags().GetInt("port")

		apiHandler, err := cmd.InitializeDependencies(configPath)
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(apiHandler)

		if port == 0 {
			port = apiHandler.Config.Api.Port
		}
		return apiHandler.StartApi(port)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
