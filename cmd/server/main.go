package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"stockwatch/internal/acquisition"
	"stockwatch/internal/api"
	"stockwatch/internal/config"
	"stockwatch/internal/quote"
	"stockwatch/internal/recorder"
	"stockwatch/internal/scheduler"
	"stockwatch/internal/watchlist"
)

func main() {
	// .env is optional; real deployments use environment variables directly.
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}

	if level, err := log.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}
	log.Info("stockwatch starting...")

	// Init provider and acquisition service
	provider := quote.NewYahooProvider(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Infof("data source: %s", provider.Name())
	svc := acquisition.NewService(provider)

	// Init watchlist store
	store := watchlist.NewStore(svc)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler (opt-in)
	if cfg.Schedule.RefreshCron != "" {
		sched := scheduler.NewScheduler(ctx, store, svc, rec)
		if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
			log.Fatalf("register cron task: %v", err)
		}
		sched.Start()
		defer sched.Stop()
		if os.Getenv("RUN_ON_START") == "true" {
			log.Info("RUN_ON_START enabled, refreshing now")
			go sched.RunNow()
		}
	}

	// Init HTTP server
	srv := &http.Server{
		Addr:    cfg.Server.Listen,
		Handler: api.NewRouter(api.NewHandlers(store, svc)),
	}
	go func() {
		log.Infof("listening on %s", cfg.Server.Listen)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("http shutdown: %v", err)
	}
	log.Info("stockwatch stopped")
}
