package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopsearch/internal/catalog"
	"shopsearch/internal/config"
	"shopsearch/internal/infrastructure/logger"
	"shopsearch/internal/server"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "catalogserver",
	Short: "Serve a fixture product catalog over the recommendation API",
	Long: `catalogserver answers /health, /products, /suggestions and /recommendations
from an in-memory catalog so shopsearch can be run and tested locally.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().IntP("port", "p", 0, "port to listen on (default 8000)")
	rootCmd.Flags().String("catalog", "", "JSON product catalog (default bundled sample)")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Logs go to stderr; the server has no UI to protect.
	zapLogger, err := logger.New(cfg.Log.Level, "")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer zapLogger.Sync()

	products, err := catalog.LoadProducts(cfg.Server.CatalogPath)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}
	zapLogger.Info("catalog loaded",
		zap.Int("products", len(products)),
		zap.String("path", cfg.Server.CatalogPath),
	)

	catalogCtrl := catalog.NewModule(products, zapLogger)
	router := server.NewRouter(catalogCtrl, zapLogger)
	srv := server.New(cfg.Server.Port, router, zapLogger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		return err
	}

	zapLogger.Info("server stopped gracefully")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
