package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopsearch/internal/config"
	"shopsearch/internal/infrastructure/logger"
	"shopsearch/internal/product"
	"shopsearch/internal/search"
	"shopsearch/internal/tui"
)

const healthCheckTimeout = 3 * time.Second

var configPath string

var rootCmd = &cobra.Command{
	Use:   "shopsearch",
	Short: "Search products and browse recommendations in the terminal",
	Long: `shopsearch is a terminal client for the product recommendation API.

Type to get keyword suggestions, press enter to fetch recommendations.
Use --compact for a plain search box without suggestions.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.Flags().String("base-url", "", "recommendation API base url (default http://localhost:8000)")
	rootCmd.Flags().String("log-level", "", "log level: debug, info, warn, error")
	rootCmd.Flags().String("log-file", "", "file to write logs to (default shopsearch.log)")
	rootCmd.Flags().Bool("compact", false, "disable keyword suggestions")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer zapLogger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := product.NewModule(cfg.API, zapLogger)

	healthCtx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	if err := client.Health(healthCtx); err != nil {
		zapLogger.Warn("recommendation api not reachable", zap.String("baseUrl", client.BaseURL()), zap.Error(err))
	}
	cancel()

	model := tui.New(ctx, client, search.Options{Suggestions: cfg.Widget.Suggestions}, zapLogger.Named("ui"))
	program := tea.NewProgram(model, tea.WithContext(ctx), tea.WithReportFocus())

	zapLogger.Info("starting search ui",
		zap.String("baseUrl", client.BaseURL()),
		zap.Bool("suggestions", cfg.Widget.Suggestions),
	)
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("running ui: %w", err)
	}

	zapLogger.Info("search ui closed")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
