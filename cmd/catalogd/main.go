// Command catalogd runs the catalog extraction HTTP service.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dubas14/HairCareStore/internal/api"
	"github.com/Dubas14/HairCareStore/internal/classify"
	"github.com/Dubas14/HairCareStore/internal/cms"
	"github.com/Dubas14/HairCareStore/internal/config"
	"github.com/Dubas14/HairCareStore/internal/pipeline"
	"github.com/Dubas14/HairCareStore/internal/refdata"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	taxonomy, err := refdata.DefaultTaxonomy()
	if err != nil {
		log.Error("taxonomy init failed", "error", err)
		os.Exit(1)
	}
	classifier, err := classify.New(classify.DefaultRules(), taxonomy)
	if err != nil {
		log.Error("classifier init failed", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cmsClient *cms.Client
	if cfg.SeedEnabled() {
		cmsClient = cms.NewClient(cfg.CMSBaseURL)
		loginCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
		err := cmsClient.Login(loginCtx, cfg.CMSEmail, cfg.CMSPassword)
		cancel()
		if err != nil {
			log.Error("cms login failed", "error", err)
			os.Exit(1)
		}
		defer cmsClient.Close()
		log.Info("cms seeding enabled", "url", cfg.CMSBaseURL)
	} else {
		log.Info("cms seeding disabled, jobs stop after classification")
	}

	worker := pipeline.NewWorker(classifier, cmsClient, cfg.MaxConcurrentSeed, log)
	orch := pipeline.NewOrchestrator(worker, cfg.WorkerCount, cfg.MaxQueueSize, cfg.JobTTL, log)
	orch.Start(ctx)
	defer orch.Stop()

	server := api.NewServer(cfg, orch, taxonomy, refdata.Brands(), log)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("http server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("http shutdown failed", "error", err)
	}
}
