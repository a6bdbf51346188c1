package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wb-go/wbf/zlog"

	"github.com/acochrane/send-relay/internal/config"
	"github.com/acochrane/send-relay/internal/worker"
	"github.com/acochrane/send-relay/internal/worker/client"
	"github.com/acochrane/send-relay/internal/worker/lock"
	"github.com/acochrane/send-relay/pkg/wasend"
)

func main() {
	zlog.Init()
	cfg := config.Must()

	if err := run(cfg); err != nil {
		if errors.Is(err, lock.ErrAlreadyRunning) {
			zlog.Logger.Error().Err(err).Msg("refusing to start a second worker instance")
		} else {
			zlog.Logger.Error().Err(err).Msg("worker terminated")
		}
		os.Exit(1)
	}
}

// run keeps every exit path after lock acquisition on the defer, so the lock
// marker is always removed on a clean or signalled shutdown.
func run(cfg *config.Config) error {
	if cfg.Worker.BaseURL == "" {
		return fmt.Errorf("coordinator base URL is not configured (BASE_URL)")
	}
	if cfg.Auth.WorkerToken == "" {
		return fmt.Errorf("worker token is not configured (WORKER_API_TOKEN)")
	}
	if cfg.Worker.LockPath == "" {
		return fmt.Errorf("worker lock path is not configured")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	lk, err := lock.Acquire(cfg.Worker.LockPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := lk.Release(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to release dispatch lock")
		}
	}()

	zlog.Logger.Info().
		Str("base_url", cfg.Worker.BaseURL).
		Str("lock_path", cfg.Worker.LockPath).
		Msg("worker starting")

	api := client.New(cfg.Worker.BaseURL, cfg.Auth.WorkerToken, cfg.Worker.RequestTimeout, cfg.Retry)
	sender := wasend.NewClient(cfg.Sender.BridgeURL, cfg.Sender.SendTimeout)
	reporter := worker.NewReporter(api)

	poller := worker.NewPoller(
		api,
		sender,
		reporter,
		cfg.Worker.PollInterval,
		cfg.Worker.MessageDelay,
		cfg.Worker.BatchLimit,
	)

	if err := poller.Run(ctx); err != nil {
		return err
	}

	zlog.Logger.Info().Msg("worker shutdown complete")
	return nil
}
