package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mwhitfield/sentiment_chatbot/internal/config"
	"github.com/mwhitfield/sentiment_chatbot/internal/console"
	"github.com/mwhitfield/sentiment_chatbot/internal/response_engine"
	"github.com/mwhitfield/sentiment_chatbot/internal/sentiment"
	"github.com/mwhitfield/sentiment_chatbot/internal/session_manager"
	pkgconfig "github.com/mwhitfield/sentiment_chatbot/pkg/config"
	"github.com/mwhitfield/sentiment_chatbot/pkg/logger"
	"github.com/mwhitfield/sentiment_chatbot/pkg/metrics"
)

func main() {
	var (
		tier1Only  bool
		configFile string
		logLevel   string
	)

	rootCmd := &cobra.Command{
		Use:   "chatbot",
		Short: "An interactive chatbot with conversation sentiment analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			// A missing .env file is fine; real env vars still apply.
			_ = godotenv.Load()

			var cfg config.AppConfig
			if err := pkgconfig.GetConfig(&cfg, configFile, true); err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if logLevel != "" {
				cfg.Logging.Level = logLevel
			}
			if tier1Only {
				cfg.Chat.Tier2Enabled = false
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			log := logger.NewLogger(logger.Config{
				Level:   cfg.GetLogLevel(),
				Format:  cfg.Logging.Format,
				Service: cfg.ServiceName,
			})
			cfg.LogConfig(log)

			return run(cmd.Context(), cfg, log)
		},
	}

	rootCmd.Flags().BoolVar(&tier1Only, "tier1-only", false,
		"disable per-message sentiment display and mood trend")
	rootCmd.Flags().StringVar(&configFile, "config-file", "config.yaml",
		"path to the YAML configuration file")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "",
		"override the configured log level (debug, info, warn, error)")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.AppConfig, log logger.Logger) error {
	var m *metrics.Metrics
	if cfg.Monitoring.MetricsEnabled {
		m = metrics.NewMetrics(log)
		m.Serve(cfg.Monitoring.MetricsPort)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := m.Shutdown(shutdownCtx); err != nil {
				log.Warn("metrics server shutdown failed", logger.ErrorField(err))
			}
		}()
	}

	engine := response_engine.New(response_engine.Config{
		MaxExpressionLength: cfg.Chat.MaxExpressionLength,
	})

	session, err := session_manager.New(session_manager.Config{
		Engine:          engine,
		Scorer:          sentiment.NewAnalyzer(),
		Logger:          log,
		Metrics:         m,
		ContextLookback: cfg.Chat.ContextLookback,
	})
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	log.Info("session started", logger.SessionIDField(session.ID()))

	ui, err := console.New(console.Config{
		Session: session,
		Logger:  log,
		Tier2:   cfg.Chat.Tier2Enabled,
		In:      os.Stdin,
		Out:     os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("failed to create console: %w", err)
	}

	return ui.Run(ctx)
}
