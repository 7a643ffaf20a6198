// streamtest connects to the backend WebSocket and logs the stream without
// the terminal UI. Useful for checking a backend before pointing the full
// client at it.
//
// Usage: go run ./cmd/streamtest --config config.yaml --verbose
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kitedesk/kitedesk/internal/api"
	"github.com/kitedesk/kitedesk/internal/config"
	"github.com/kitedesk/kitedesk/internal/connection"
	"github.com/kitedesk/kitedesk/internal/router"
	"github.com/kitedesk/kitedesk/internal/tickstore"
	"github.com/kitedesk/kitedesk/internal/watchlist"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty uses built-in defaults)")
	verbose := flag.Bool("verbose", false, "log at debug level")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	// Check the REST side before subscribing, so a dead backend shows up as
	// one clear line instead of a silent stream.
	apiClient := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)
	healthCtx, healthCancel := context.WithTimeout(ctx, cfg.API.Timeout)
	if health, err := apiClient.GetHealth(healthCtx); err != nil {
		logger.Warn("backend health check failed", "error", err)
	} else {
		logger.Info("backend health",
			"status", health.Status,
			"authenticated", health.Authenticated,
			"connections", health.ActiveConnections,
			"watchlists", health.WatchlistsCount,
		)
	}
	healthCancel()

	ticks := tickstore.New()
	lists := watchlist.New()

	connMgr := connection.NewManager(connection.ManagerConfig{
		URL:              cfg.Stream.URL,
		PingInterval:     cfg.Stream.PingInterval,
		ReconnectDelay:   cfg.Stream.ReconnectDelay,
		HandshakeTimeout: cfg.Stream.HandshakeTimeout,
		WriteTimeout:     cfg.Stream.WriteTimeout,
		EventBufferSize:  cfg.Stream.EventBufferSize,
	}, logger)

	rtr := router.New(connMgr.Events(), ticks, lists, logger)
	rtr.Start(ctx)

	logger.Info("connecting", "url", cfg.Stream.URL)
	if err := connMgr.Connect(); err != nil {
		logger.Error("connect failed", "error", err)
		os.Exit(1)
	}

	// Stats printer
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				stats := rtr.Stats()
				status := connMgr.Status()
				logger.Info("stats",
					"conn_state", status.State.String(),
					"received", stats.Received,
					"snapshots", stats.Replaced,
					"updates", stats.Merged,
					"ignored", stats.Ignored,
					"server_errors", stats.ServerErrs,
					"instruments", ticks.Len(),
					"watchlists", lists.Len(),
				)
			}
		}
	}()

	logger.Info("streaming started - press Ctrl+C to stop")

	<-ctx.Done()

	logger.Info("shutting down...")
	connMgr.Stop()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	rtr.Stop(shutdownCtx)

	logger.Info("shutdown complete")
}
