package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/martinlinchr/website-response-status-code-monitoring/internal/config"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/domain"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/httpapi"
	apimw "github.com/martinlinchr/website-response-status-code-monitoring/internal/httpapi/middleware"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/logging"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/notify"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/probe"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo/memory"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/repo/postgres"
	"github.com/martinlinchr/website-response-status-code-monitoring/internal/scheduler"
)

func main() {
	cfg := config.FromEnv()
	logger, err := logging.NewLogger(cfg.LogDir, cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var store repo.TargetStore
	if cfg.DatabaseURL != "" {
		pg, err := postgres.New(ctx, cfg.DatabaseURL, logger)
		if err != nil {
			logger.Fatal("store_connect_failed", zap.Error(err))
		}
		defer pg.Close()
		if err := pg.Migrate(ctx); err != nil {
			logger.Fatal("store_migrate_failed", zap.Error(err))
		}
		logger.Info("store_postgres")
		store = pg
	} else {
		logger.Info("store_memory")
		store = memory.New()
	}

	seedTargets(ctx, cfg, store, logger)

	alerts := buildAlerts(cfg, logger)

	eval := probe.NewHTTPEvaluator(cfg.SampleTimeout, cfg.SampleCount, alerts, logger)
	runner := scheduler.NewRunner(logger, store, eval)
	if err := runner.Start(cfg.CheckSchedule); err != nil {
		logger.Fatal("scheduler_start_failed", zap.String("schedule", cfg.CheckSchedule), zap.Error(err))
	}

	api := httpapi.NewServer(logger, store, runner)
	keys := apimw.Keys{Public: cfg.PublicAPIKeys, Admin: cfg.AdminAPIKeys}
	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(keys, cfg.AllowedOrigins, cfg.PublicRPM, cfg.PublicBurst, cfg.AdminRPM, cfg.AdminBurst),
	}

	go func() {
		logger.Info("api_listen", zap.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("api_listen_failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown_started")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api_shutdown_error", zap.Error(err))
	}
	runner.Stop()
	logger.Info("shutdown_complete")
}

// seedTargets loads the optional YAML seed file and upserts each entry.
// A bad entry is logged and skipped; the server still starts.
func seedTargets(ctx context.Context, cfg config.Config, store repo.TargetStore, logger *zap.Logger) {
	if cfg.TargetsFile == "" {
		return
	}
	seeds, err := config.LoadTargets(cfg.TargetsFile)
	if err != nil {
		logger.Fatal("targets_file_invalid", zap.String("path", cfg.TargetsFile), zap.Error(err))
	}
	seeded := 0
	for _, s := range seeds {
		t := domain.Target{URL: s.URL, LatencyThresholdSeconds: s.LatencyThresholdSeconds}
		if err := store.Upsert(ctx, &t); err != nil {
			logger.Warn("seed_target_error", zap.String("url", s.URL), zap.Error(err))
			continue
		}
		seeded++
	}
	logger.Info("targets_seeded", zap.Int("count", seeded), zap.String("path", cfg.TargetsFile))
}

// buildAlerts assembles the configured alert channels. With none configured
// the monitor still runs; evaluations simply have nowhere to report.
func buildAlerts(cfg config.Config, logger *zap.Logger) notify.Notifier {
	var channels notify.Multi
	if e := notify.NewEmail(cfg.BrevoAPIKey, cfg.AlertEmailFrom, cfg.AlertEmailTo, cfg.AlertSenderName); e != nil {
		channels = append(channels, e)
		logger.Info("alert_channel", zap.String("kind", "email"), zap.String("to", cfg.AlertEmailTo))
	}
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		channels = append(channels, s)
		logger.Info("alert_channel", zap.String("kind", "slack"))
	}
	if len(channels) == 0 {
		logger.Warn("no_alert_channels")
	}
	if cfg.AlertCooldown > 0 {
		return notify.NewCooldown(channels, cfg.AlertCooldown)
	}
	return channels
}
