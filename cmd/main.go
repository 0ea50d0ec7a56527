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

	"thattukada/internal/cart"
	"thattukada/internal/catalog"
	"thattukada/internal/config"
	httpapi "thattukada/internal/http"
	"thattukada/internal/postgrest"
	"thattukada/internal/service"

	_ "thattukada/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		logger, _ = zap.NewProduction()
	} else {
		logger, _ = zap.NewDevelopment()
	}
	defer logger.Sync()

	// Режим выбирается один раз: оба параметра подключения на месте —
	// работаем с удалённым бэкендом, иначе fallback на данные в памяти
	var store catalog.Store
	var uploader service.Uploader
	if cfg.Supabase.Configured() {
		client := postgrest.NewClient(cfg.Supabase.URL, cfg.Supabase.AnonKey, logger)
		store = catalog.NewRemoteStore(client)
		uploader = client
		logger.Info("using remote backend", zap.String("url", cfg.Supabase.URL))
	} else {
		store = catalog.NewMemoryStore(catalog.DefaultSeed())
		logger.Warn("SUPABASE_URL / SUPABASE_ANON_KEY not set, falling back to in-memory data")
	}

	svc := service.NewCatalogService(store, service.Options{
		Uploader:    uploader,
		SaveTimeout: cfg.SaveTimeout,
	}, logger)

	srv := httpapi.NewServer(svc, cart.NewManager(), logger)

	httpServer := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: srv.Engine(),
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", httpServer.Addr), zap.String("mode", store.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", zap.Error(err))
	}
}
