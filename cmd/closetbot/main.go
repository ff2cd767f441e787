package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/ClosetBot_Go/internal/bootstrap"
	"github.com/osse101/ClosetBot_Go/internal/command"
	"github.com/osse101/ClosetBot_Go/internal/config"
	"github.com/osse101/ClosetBot_Go/internal/discord"
	"github.com/osse101/ClosetBot_Go/internal/server"
	"github.com/osse101/ClosetBot_Go/internal/wardrobe"
)

// ShutdownTimeout bounds the whole shutdown sequence
const ShutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("ClosetBot failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	bootstrap.SetupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := bootstrap.OpenStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("failed to open item store: %w", err)
	}

	svc := wardrobe.NewService(store, time.Now)
	dispatcher := command.NewDispatcher(svc,
		command.WithLocation(cfg.Location()),
		command.WithTimeout(cfg.Store.Timeout))

	bot, err := discord.New(discord.Config{
		Token:              cfg.Discord.Token,
		AppID:              cfg.Discord.AppID,
		ForceCommandUpdate: cfg.Discord.ForceCommandUpdate,
	}, dispatcher)
	if err != nil {
		_ = closeStore(context.Background())
		return err
	}

	srv := server.NewServer(cfg.HTTPPort, cfg.Version, store, bot)
	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.Start()
	}()

	if err := bot.Start(); err != nil {
		shutdown(srv, nil, closeStore)
		return err
	}

	runErr := waitForExit(ctx, srvErr)
	shutdown(srv, bot, closeStore)
	return runErr
}

// waitForExit blocks until a shutdown signal or the HTTP server stops.
// A server failure is returned so the process exits non-zero.
func waitForExit(ctx context.Context, srvErr <-chan error) error {
	select {
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
		return nil
	case err := <-srvErr:
		if err != nil {
			slog.Error("HTTP server failed", "error", err)
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}

func shutdown(srv *server.Server, bot *discord.Bot, closeStore bootstrap.CloseFunc) {
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	components := bootstrap.ShutdownComponents{Server: srv, CloseStore: closeStore}
	if bot != nil {
		components.Gateway = bot
	}
	bootstrap.GracefulShutdown(ctx, components)
}
