// @title Cat Feeding Tracker API
// @version 1.0
// @description Calorías diarias (RER/DER) y cronograma de comidas para gatos.
// @BasePath /
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cat-feeding-tracker/internal/adapters/foodfacts/openpetfoodfacts"
	"cat-feeding-tracker/internal/platform/config"
	"cat-feeding-tracker/internal/platform/logger"
	"cat-feeding-tracker/internal/ports/foodfacts"
	"cat-feeding-tracker/internal/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Sin config no hay logger configurado todavía.
		l := logger.NewNop()
		if fallback, ferr := logger.NewFromEnv(); ferr == nil {
			l = fallback
		}
		l.Error("invalid configuration", map[string]any{"error": err})
		os.Exit(1)
	}

	log, err := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})
	if err != nil {
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	var lookup foodfacts.Lookuper = foodfacts.Disabled{}
	if cfg.Lookup.Enabled {
		client, err := openpetfoodfacts.New(openpetfoodfacts.Options{
			BaseURL:   cfg.Lookup.BaseURL,
			Timeout:   cfg.Lookup.Timeout,
			UserAgent: cfg.Lookup.UserAgent,
			Logger:    log,
		})
		if err != nil {
			log.Error("food lookup disabled", map[string]any{"error": err})
		} else {
			lookup = client
		}
	}

	r := router.NewRouter(router.Options{
		Logger:           log,
		Lookup:           lookup,
		BalanceThreshold: &cfg.Schedule.BalanceThreshold,
	})

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "lookup_enabled": cfg.Lookup.Enabled})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", map[string]any{"error": err})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", map[string]any{"error": err})
	}
	log.Info("server stopped", nil)
}
