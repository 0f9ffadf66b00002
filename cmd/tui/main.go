package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghuser/wardrobe/pkg/app"
	"github.com/ghuser/wardrobe/pkg/config"
	"github.com/ghuser/wardrobe/pkg/events"
	"github.com/ghuser/wardrobe/pkg/logger"
	"github.com/ghuser/wardrobe/pkg/telemetry"
	appsvcs "github.com/ghuser/wardrobe/services/catalog/application/services"
	"github.com/ghuser/wardrobe/services/catalog/application/subscribers"
	"github.com/ghuser/wardrobe/services/catalog/application/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "wardrobe:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		return err
	}

	// stdout belongs to the terminal UI
	logFile, err := os.OpenFile(cfg.TUILogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close() //nolint:errcheck
	log := logger.NewWithWriter(cfg, logFile)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg, "tui")
	if err != nil {
		return fmt.Errorf("setup otel: %w", err)
	}
	defer otelShutdown(context.Background()) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus := events.NewEventBus(log)
	defer eventBus.Close() //nolint:errcheck

	appConfig := &app.Application{Config: cfg, Logger: log, EventBus: eventBus}
	svcs, err := appsvcs.New(appConfig)
	if err != nil {
		return fmt.Errorf("build catalog services: %w", err)
	}
	if err := subscribers.Register(ctx, appConfig, svcs.Activity); err != nil {
		return fmt.Errorf("register subscribers: %w", err)
	}

	log.Info("terminal ui starting", "sort_scope", cfg.CatalogSortScope, "strict_prices", cfg.CatalogStrictPrices)
	p := tea.NewProgram(tui.New(ctx, svcs.Catalog, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	log.Info("terminal ui stopped")
	return nil
}
