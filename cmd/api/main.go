package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/riskibarqy/keeper-league/internal/app"
	"github.com/riskibarqy/keeper-league/internal/config"
	"github.com/riskibarqy/keeper-league/internal/observability"
	"github.com/riskibarqy/keeper-league/internal/platform/logging"
	"github.com/sourcegraph/conc"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	stopPyroscope, err := observability.InitPyroscope(cfg, logger)
	if err != nil {
		logger.Error("init pyroscope", "error", err)
		os.Exit(1)
	}

	pprofSrv, err := observability.StartPprofServer(cfg, logger)
	if err != nil {
		logger.Error("start pprof server", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	var wg conc.WaitGroup

	wg.Go(func() {
		logger.Info("http server starting", "addr", cfg.HTTPAddr)
		if err := application.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server failed", "error", err)
			stop()
		}
	})

	if cfg.SyncEnabled && application.SyncService != nil {
		wg.Go(func() {
			runSyncLoop(ctx, application, cfg, logger)
		})
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := application.Server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
	if err := observability.StopPprofServer(pprofSrv, logger, 5*time.Second); err != nil {
		logger.Error("stop pprof server", "error", err)
	}
	if err := stopPyroscope(); err != nil {
		logger.Error("stop pyroscope", "error", err)
	}
	if err := shutdownUptrace(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
	if err := application.Close(); err != nil {
		logger.Error("close app", "error", err)
	}

	wg.Wait()
	logger.Info("http server stopped")
}

// runSyncLoop drives the periodic roster sweep. The first pass runs on
// startup so a fresh deploy does not wait a full interval before catching
// up on drops.
func runSyncLoop(ctx context.Context, application *app.App, cfg config.Config, logger *logging.Logger) {
	ticker := time.NewTicker(cfg.SyncInterval)
	defer ticker.Stop()

	runOnce := func() {
		result, err := application.SyncService.SyncAllLeagues(ctx, cfg.SyncWorkerCount)
		if err != nil {
			logger.ErrorContext(ctx, "scheduled roster sync failed", "error", err)
			return
		}
		logger.InfoContext(ctx, "scheduled roster sync finished",
			"leagues", result.LeagueCount,
			"succeeded", result.SuccessCount,
			"failed", result.FailedCount,
		)
	}

	runOnce()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			runOnce()
		}
	}
}
