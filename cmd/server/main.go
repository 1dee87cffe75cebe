package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dailygrid/dailygrid/internal/api"
	"github.com/dailygrid/dailygrid/internal/config"
	"github.com/dailygrid/dailygrid/internal/factory"
	"github.com/dailygrid/dailygrid/internal/scheduler"
	"github.com/dailygrid/dailygrid/internal/services/ingest"
	"github.com/dailygrid/dailygrid/pkg/telemetry"
)

func main() {
	// A missing .env file is fine; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	telemetry.Init()

	app, err := factory.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Replay the transcript before serving so stats never expose a
	// partially caught-up view.
	if cfg.TranscriptPath != "" {
		history := ingest.NewTranscriptProvider(cfg.TranscriptPath)
		report, err := app.IngestController.Catchup(ctx, history, app.Directory)
		if err != nil {
			logger.Error("startup catch-up failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("startup catch-up complete",
			slog.Int("messages_scanned", report.MessagesScanned),
			slog.Int("results_ingested", report.ResultsIngested),
			slog.Int("players", report.Players),
			slog.Duration("duration", report.Duration),
		)
	}

	if cfg.RecomputeDaily {
		daily := &scheduler.Daily{
			Hour:     cfg.RecomputeHour,
			Minute:   cfg.RecomputeMinute,
			Location: app.Location,
			Job:      app.IngestController.RecomputeAll,
			Clock:    app.Clock,
			Logger:   logger.With(slog.String("job", "streak_recompute")),
		}
		go daily.Run(ctx)
	}

	router := api.NewRouter(api.RouterConfig{
		Logger:           logger,
		IngestController: app.IngestController,
		StatsService:     app.StatsService,
		CalendarService:  app.CalendarService,
		Storage:          app.Storage,
		Directory:        app.Directory,
		Puzzle:           app.Puzzle,
		Clock:            app.Clock,
		Location:         app.Location,
		TransportLimit:   cfg.TransportLimit,
	})

	serverConfig := api.DefaultServerConfig()
	serverConfig.Addr = cfg.Addr
	server := api.NewServer(router, serverConfig, logger)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
