package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/karbonhq/karbon/internal/agent"
	"github.com/karbonhq/karbon/internal/cache"
	"github.com/karbonhq/karbon/internal/config"
	"github.com/karbonhq/karbon/internal/groq"
	"github.com/karbonhq/karbon/internal/ratelimit"
	"github.com/karbonhq/karbon/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	}))
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	client, err := groq.NewClient(cfg.GroqBaseURL, cfg.GroqAPIKey, time.Duration(cfg.HTTPTimeoutSeconds)*time.Second)
	if err != nil {
		slog.Error("Failed to create Groq client", "error", err)
		os.Exit(1)
	}

	d := deps{
		cfg:      cfg,
		agent:    agent.New(client, cfg),
		registry: tools.NewRegistry(),
		limiter: ratelimit.NewRateLimiter(ratelimit.Config{
			IPLimitPerMin:   cfg.IPLimitPerMin,
			BurstMultiplier: 2,
		}),
		cache: cache.New(time.Duration(cfg.CacheTTLMinutes) * time.Minute),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: setupRouter(d),
	}

	go func() {
		slog.Info("Starting server", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited")
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
