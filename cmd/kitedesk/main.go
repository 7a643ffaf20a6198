// kitedesk is the watchlist terminal: it connects to the local backend,
// streams live instrument data, and renders the active watchlist as a
// sortable quote table.
//
// Usage: kitedesk --config ~/.config/kitedesk/config.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/kitedesk/kitedesk/internal/api"
	"github.com/kitedesk/kitedesk/internal/config"
	"github.com/kitedesk/kitedesk/internal/connection"
	"github.com/kitedesk/kitedesk/internal/router"
	"github.com/kitedesk/kitedesk/internal/tickstore"
	"github.com/kitedesk/kitedesk/internal/ui"
	"github.com/kitedesk/kitedesk/internal/version"
	"github.com/kitedesk/kitedesk/internal/watchlist"
)

func main() {
	configPath := flag.String("config", "", "path to config file (empty uses built-in defaults)")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("kitedesk " + version.String())
		return
	}

	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}

	logger, closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to set up logging:", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	logger.Info("starting kitedesk",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	ticks := tickstore.New()
	lists := watchlist.New()

	apiClient := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logger),
	)

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

	// An unreachable backend at startup is not fatal: the UI shows the
	// closed state and the user can retry with the reconnect key.
	if err := connMgr.Connect(); err != nil {
		logger.Warn("initial connect failed", "error", err)
	}

	prog := tea.NewProgram(
		ui.New(ticks, lists, connMgr, apiClient, cfg.UI.Locale, cfg.UI.RefreshInterval, logger),
		tea.WithAltScreen(),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := prog.Run()
		cancel()
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		prog.Quit()
		return nil
	})

	runErr := g.Wait()

	// Shutdown order: the manager closes the event channel, which lets the
	// router drain and exit.
	connMgr.Stop()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.API.Timeout)
	defer shutdownCancel()
	rtr.Stop(shutdownCtx)

	if runErr != nil {
		logger.Error("terminal error", "error", runErr)
		fmt.Fprintln(os.Stderr, "kitedesk:", runErr)
		os.Exit(1)
	}

	logger.Info("kitedesk stopped")
}

// setupLogging builds the slog logger. The TUI owns the terminal, so logs go
// to the configured file; with no file configured they are discarded.
func setupLogging(cfg config.LogConfig) (*slog.Logger, func(), error) {
	var w io.Writer = io.Discard
	closeLog := func() {}

	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLevel(cfg.Level),
	}))
	return logger, closeLog, nil
}

func parseLevel(s string) slog.Level {
	switch s {
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
