package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"

	"github.com/GoSim-25-26J-441/scaffold-forge-backend/config"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/github"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/jobs"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/logging"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/metrics"
	statusrepo "github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/status/repository"
	"github.com/GoSim-25-26J-441/scaffold-forge-backend/internal/templates/catalog"
)

func main() {
	if err := run(); err != nil {
		logrus.WithError(err).Fatal("scaffold-forge api failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.Log.Level, cfg.Log.Format, os.Stdout)
	bootstrap.SetGinMode(cfg.App.Environment, cfg.App.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logrus.Infof("Starting %s %s (%s)", cfg.App.Name, cfg.App.Version, cfg.App.Environment)

	database, err := bootstrap.OpenDB(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer database.Close()
	logrus.Info("Database connection established")

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer rdb.Close()

	gh, err := github.NewClient(github.Config{
		Token:       cfg.GitHub.Token,
		BaseURL:     cfg.GitHub.APIURL,
		Branch:      cfg.GitHub.DefaultBranch,
		UploadDelay: cfg.GitHub.UploadDelay,
	})
	if err != nil {
		return err
	}
	if gh.TestConnection(ctx) {
		logrus.Info("GitHub API connection verified")
	} else {
		logrus.Warn("GitHub API connection failed")
	}

	cat, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("build template catalog: %w", err)
	}

	collector := metrics.NewCollector()
	reg := prometheus.NewRegistry()
	reg.MustRegister(collector, collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:       cfg.App.Name,
		Version:           cfg.App.Version,
		Debug:             cfg.App.Debug,
		APIPrefix:         cfg.Server.APIPrefix,
		CORSOrigins:       cfg.Server.CORSOrigins,
		RateLimitRequests: cfg.RateLimit.Requests,
		RateLimitWindow:   cfg.RateLimit.Window,
		CacheTTL:          cfg.Redis.CacheTTL,
		SQL:               database.SQL,
		DB:                database,
		Redis:             rdb,
		GitHub:            gh,
		Catalog:           cat,
		Metrics:           collector,
		Registry:          reg,
	})

	scheduler := jobs.NewScheduler()
	if err := scheduler.AddStatusCleanup(cfg.Status.CleanupSchedule, cfg.Status.RetentionDays, statusrepo.NewCheckRepository(rdb)); err != nil {
		return err
	}
	scheduler.Start()

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logrus.Infof("HTTP server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logrus.Info("Shutdown signal received")
	case err := <-errChan:
		logrus.Errorf("Server error: %v", err)
	}

	logrus.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.Errorf("HTTP server shutdown error: %v", err)
	}
	select {
	case <-scheduler.Stop().Done():
	case <-shutdownCtx.Done():
		logrus.Warn("Cron jobs still running at shutdown")
	}

	logrus.Info("Application shutdown completed")
	return nil
}
