package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nuraksworld/sl-market-friend-data/internal/assembler"
	"github.com/nuraksworld/sl-market-friend-data/internal/config"
	"github.com/nuraksworld/sl-market-friend-data/internal/fetchers"
	"github.com/nuraksworld/sl-market-friend-data/internal/logger"
	"github.com/nuraksworld/sl-market-friend-data/internal/server"
	"github.com/nuraksworld/sl-market-friend-data/internal/storage"
)

func main() {
	once := flag.Bool("once", false, "run a single snapshot update and exit")
	flag.Parse()

	ctx := context.Background()
	log := logger.Global().WithComponent("main")

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Error("failed to load configuration", err)
		os.Exit(1)
	}
	applyLogConfig(cfg)
	log = logger.Global().WithComponent("main")

	mode := storage.DeploymentLocal
	if cfg.GCSBucket != "" {
		mode = storage.DeploymentGCS
	}
	log.Infof("starting snapshot service (env=%s, storage=%s)", cfg.Environment, mode)

	store, err := storage.NewClient(ctx, mode, cfg)
	if err != nil {
		log.Error("failed to initialize storage", err)
		os.Exit(1)
	}

	fetcher := fetchers.New(time.Duration(cfg.FetchTimeoutSeconds)*time.Second, cfg.FetchRetries)
	asm := assembler.New(cfg, fetcher)
	srv := server.NewServer(cfg, asm, store)
	defer srv.Close()

	if *once {
		// One-shot mode for external schedulers: the snapshot is always
		// written, so a successful write means exit 0 regardless of how
		// many sources failed.
		if _, err := srv.RunUpdate(ctx); err != nil {
			log.Error("snapshot update failed", err)
			os.Exit(1)
		}
		return
	}

	var scheduler *cron.Cron
	if cfg.UpdateSchedule != "" {
		scheduler = cron.New()
		_, err := scheduler.AddFunc(cfg.UpdateSchedule, func() {
			if _, err := srv.RunUpdate(context.Background()); err != nil {
				log.Error("scheduled snapshot update failed", err)
			}
		})
		if err != nil {
			log.Error("invalid UPDATE_SCHEDULE", err)
			os.Exit(1)
		}
		scheduler.Start()
		log.Infof("scheduled snapshot updates: %s", cfg.UpdateSchedule)
	}

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("listening on :%s", cfg.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("http server error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Info("shutting down")
	if scheduler != nil {
		scheduler.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", err)
	}
}

func applyLogConfig(cfg *config.Config) {
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		logger.Global().SetLevel(level)
	}
	if format, ok := logger.ParseFormat(cfg.LogFormat); ok {
		logger.Global().SetFormat(format)
	}
}
