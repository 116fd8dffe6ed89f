package main

import (
	"autochannel/domain/event"
	"autochannel/infrastructure/discord"
	"autochannel/infrastructure/grpc/server"
	"autochannel/internal"
	"autochannel/repositories"
	"autochannel/runtime"
	"autochannel/runtime/workers"
	"autochannel/services"
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Autochannel terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires every component and blocks until a signal or a fatal error.
// Deferred cleanups run before the exit code reaches main.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := config.Validate(); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) {
		endpoint := "/inspect"
		url := fmt.Sprintf("http://localhost:%d%s?prefix=%s", config.DebugPort, endpoint, repositories.TemplatePrefix)
		logger.Info("Debug Badger inspector available", "url", url)
		database.StartDebugServer(db, config.DebugPort, endpoint, ConfigMapper)
	}

	store := repositories.NewConfigRepository(db, logger)
	if err := store.SeedMessages(services.DefaultMessages); err != nil {
		return exitRuntime, fmt.Errorf("seeding messages failed: %w", err)
	}

	// 3. Platform gateway & health
	events := make(chan event.Event, config.BufferSize)
	gateway, err := discord.NewGateway(config.DiscordToken, events, logger)
	if err != nil {
		return exitConfig, err
	}
	healthServer := server.NewHealthServer(logger)

	// 4. Lifecycle, commands & supervision
	lifecycle := runtime.NewLifecycle(logger,
		runtime.NewRegistry(), runtime.NewTracker(),
		gateway, store, healthServer,
		config.PlatformTimeout, config.PersistRetries, config.JoinCooldown)
	gateway.HandleCommands(config.CommandPrefix, services.NewAutochannelService(logger, lifecycle, store, config.CommandPrefix))

	sup := workers.NewSupervisor(logger, config.RestartInterval)
	for i := 0; i < config.NumberOfWorkers; i++ {
		sup.Add(workers.NewEventWorker(gateway.Events(), lifecycle, logger))
	}
	sup.Add(workers.NewHealthMonitoringWorker(logger, lifecycle, events, config.MetricInterval, config.BacklogWarnPercent))

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 2)
	supDone := make(chan struct{})
	go func() {
		logger.Info("Starting supervisor...", "event_workers", config.NumberOfWorkers)
		sup.Run(ctx)
		close(supDone)
	}()

	address := fmt.Sprintf("0.0.0.0:%d", config.HealthPort)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	go func() {
		if err := healthServer.Serve(listener); err != nil {
			errChan <- err
		}
	}()

	if err := gateway.Open(); err != nil {
		sup.Stop()
		healthServer.Stop()
		return exitRuntime, err
	}

	// 6. Wait for Stop or Error
	code := exitOK
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err = <-errChan:
		logger.Error("Fatal error, shutting down", "err", err)
		code = exitRuntime
	}

	// 7. Graceful shutdown: stop consuming events, then remove every temp channel
	// while the REST client is still usable.
	logger.Info("Shutting down gracefully...")
	_ = gateway.Close()
	sup.Stop()
	<-supDone

	cleanupCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	lifecycle.Shutdown(cleanupCtx)
	healthServer.Stop()
	logger.Info("Program stopped cleanly")

	return code, err
}

func buildBadgerOpts(config internal.Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)

	if logger.Enabled(ctx, slog.LevelDebug) {
		options = options.WithLoggingLevel(badger.DEBUG).
			WithBypassLockGuard(true)
	} else {
		options = options.WithLoggingLevel(badger.WARNING)
	}

	return options
}

// ConfigMapper renders the stored configuration in the debug inspector.
func ConfigMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	row.Detail = repositories.DecodeValue(val)
	switch {
	case strings.HasPrefix(key, repositories.TemplatePrefix):
		row.Type = "TEMPLATE"
	case strings.HasPrefix(key, repositories.MessagePrefix):
		row.Type = "MESSAGE"
	case key == repositories.FallbackKey:
		row.Type = "FALLBACK"
	}
	return row
}
