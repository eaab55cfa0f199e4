// Package main is the entry point for the MindToEye API server.
// It loads configuration, wires the generation providers and storage,
// sets up routing, and starts the HTTP server with graceful shutdown.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mindtoeye/internal/ai"
	"mindtoeye/internal/brand"
	"mindtoeye/internal/cache"
	"mindtoeye/internal/config"
	"mindtoeye/internal/handlers"
	"mindtoeye/internal/router"
	"mindtoeye/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// In-memory storage, seeded with sample data in development.
	st := store.NewMemStore()
	if cfg.IsDev() {
		if err := st.Seed(logger); err != nil {
			slog.Error("failed to seed store", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Valkey (optional — the service runs without a cache).
	var conceptCache *cache.ConceptCache
	if cfg.ValkeyHost != "" {
		valkeyClient, err := cache.ConnectValkey(cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
		if err != nil {
			slog.Error("failed to connect to valkey", "error", err)
			os.Exit(1)
		}
		defer valkeyClient.Close()
		conceptCache = cache.NewConceptCache(valkeyClient, cache.DefaultConceptTTL)
	} else {
		slog.Warn("valkey not configured — concept caching disabled")
	}

	// Initialize the text provider registry with all configured providers.
	registry := ai.NewRegistry(cfg.AIProvider, map[string]ai.ProviderConfig{
		"anthropic": {APIKey: cfg.AnthropicKey, Model: cfg.AnthropicModel, BaseURL: cfg.AnthropicURL},
		"openai":    {APIKey: cfg.OpenAIKey, Model: cfg.OpenAIModel, BaseURL: cfg.OpenAIURL},
	})

	slog.Info("text providers initialized",
		"active", registry.ActiveName(),
		"available", registry.Available(),
	)

	// Replicate image generation (optional — logo synthesis falls back to
	// deterministic placeholders without it).
	var images ai.ImageProvider
	if cfg.ReplicateToken != "" {
		images = ai.NewReplicate(ai.ProviderConfig{
			APIKey:  cfg.ReplicateToken,
			Model:   cfg.ReplicateModel,
			BaseURL: cfg.ReplicateURL,
		})
		slog.Info("image provider initialized", "model", cfg.ReplicateModel)
	} else {
		slog.Warn("replicate not configured — logos will use placeholders")
	}

	gen := brand.NewGenerator(registry, images, logger)
	h := handlers.New(st, gen, registry, images, conceptCache, logger)
	r := router.New(h)

	// WriteTimeout must accommodate generation endpoints that wait on LLM
	// and image-model responses (typically 10-60s end to end).
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
