package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"carfleet/internal/api"
	"carfleet/internal/config"
	"carfleet/internal/logging"
	"carfleet/internal/metrics"
	"carfleet/internal/telemetry"
	"carfleet/internal/ui"
)

var _ ui.FleetClient = (*api.Client)(nil)

// options holds the parsed CLI flags.
type options struct {
	configPath string
	route      string
}

func parseFlags() options {
	var opts options

	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&opts.route, "route", ui.PathVehicles, "screen to open at startup (e.g. /statistics, /vehicles/edit/<id>)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: carfleet [flags]\n\n")
		fmt.Fprintf(os.Stderr, "carfleet is a terminal front end for the Car Fleet API.\n")
		fmt.Fprintf(os.Stderr, "Settings are read from --config, then .env and the environment.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()
	return opts
}

func run(opts options) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()
	tp, err := telemetry.Setup(ctx, telemetry.Options{
		Endpoint:    cfg.Telemetry.Endpoint,
		ServiceName: cfg.Telemetry.ServiceName,
		Insecure:    cfg.Telemetry.Insecure,
	})
	if err != nil {
		return fmt.Errorf("failed to set up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.Warn("failed to flush traces", zap.Error(err))
		}
	}()

	m := metrics.New()
	if cfg.Metrics.Addr != "" {
		srv := metrics.NewServer(m, cfg.Metrics.Addr, logger)
		if err := srv.Start(); err != nil {
			return fmt.Errorf("failed to start metrics server: %w", err)
		}
		defer func() {
			stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
			defer cancel()
			_ = srv.Stop(stopCtx)
		}()
	}

	client := api.New(cfg.API.BaseURL,
		api.WithLogger(logger),
		api.WithMetrics(m),
		api.WithTracer(telemetry.Tracer()),
	)
	logger.Info("starting carfleet",
		zap.String("api", client.BaseURL()),
		zap.String("route", opts.route),
		zap.Bool("tracing", tp.Enabled()),
	)

	model := ui.NewAppModel(client, logger, opts.route).AsTeaModel()
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "carfleet: %v\n", err)
		os.Exit(1)
	}
}
