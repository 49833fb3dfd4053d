// @title Records Dashboard API
// @version 1.0
// @description Session-scoped records dashboard: filters, charts, paginated table, CSV export and theme.
// @BasePath /api/v1
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-records-dashboard/internal/api"
	"go-records-dashboard/internal/api/handler"
	"go-records-dashboard/internal/config"
	"go-records-dashboard/internal/dashboard"
	"go-records-dashboard/internal/model"
	"go-records-dashboard/internal/pipeline"
	"go-records-dashboard/internal/store"
)

func main() {
	config.LoadDotEnv()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Init DB
	if err := store.InitDB(cfg.Database.Path); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer store.Close()

	client := pipeline.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	registry := dashboard.NewRegistry(client, preferenceStore, logFetch,
		dashboard.WithSessionLimit(cfg.Server.SessionLimit))
	defer registry.Close()

	r := api.NewRouter(handler.NewDashboardHandler(registry, cfg.Environment == "production"), cfg.Server.CorsOrigins)

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("📡 Records API: %s", cfg.Upstream.BaseURL)
		serverErr <- r.Start(cfg.Server.Addr(), cfg.Server.ReadTimeout, cfg.Server.WriteTimeout)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	case sig := <-shutdown:
		log.Printf("🛑 Received %v, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := r.Shutdown(ctx); err != nil {
		log.Printf("❌ Graceful shutdown failed: %v", err)
	}
	log.Println("✅ Server stopped")
}

func preferenceStore(sessionID string) dashboard.KVStore {
	return store.Preferences{SessionID: sessionID}
}

func logFetch(sessionID string, o dashboard.LoadOutcome) {
	entry := model.FetchLog{
		SessionID:   sessionID,
		Token:       o.Token,
		Query:       o.Query,
		RecordCount: o.RecordCount,
		Stale:       o.Stale,
	}
	if o.Err != nil {
		entry.Error = o.Err.Error()
	}
	if err := store.SaveFetchLog(entry); err != nil {
		log.Printf("⚠️ Failed to save fetch log: %v", err)
	}
}
