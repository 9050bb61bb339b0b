package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bimakw/holder-insight/internal/application/services"
	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/infrastructure/ai"
	"github.com/bimakw/holder-insight/internal/infrastructure/cache"
	"github.com/bimakw/holder-insight/internal/infrastructure/httpclient"
	"github.com/bimakw/holder-insight/internal/infrastructure/solscan"
	"github.com/bimakw/holder-insight/internal/presentation/handlers"
	"github.com/bimakw/holder-insight/internal/presentation/middleware"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	logger := setupLogger(cfg.Log.Level)
	defer logger.Sync()

	logger.Info("Starting holder-insight API",
		zap.Int("port", cfg.API.Port),
		zap.Int("default_top_n", cfg.Analyzer.TopN),
	)

	// Connect to Redis cache (optional)
	var redisCache *cache.RedisCache
	redisCache, err = cache.NewRedisCache(cfg.Redis, logger)
	if err != nil {
		logger.Warn("Failed to connect to Redis, running without cache", zap.Error(err))
		redisCache = nil
	} else {
		defer redisCache.Close()
	}

	// Create upstream clients
	solscanHTTP := httpclient.New(httpclient.ClientConfig{
		Timeout:   cfg.Solscan.RequestTimeout,
		RateLimit: cfg.Solscan.RateLimit,
	}, logger)
	solscanClient := solscan.NewClient(cfg.Solscan, solscanHTTP, logger)
	fetcher := solscan.NewFetcher(solscanClient, cfg.Solscan, logger)

	openaiHTTP := httpclient.New(httpclient.ClientConfig{
		Timeout: cfg.OpenAI.RequestTimeout,
	}, logger)
	summarizer := ai.NewSummarizer(cfg.OpenAI, openaiHTTP, logger)

	// Create services
	analyzerService := services.NewAnalyzerService(fetcher, logger)

	var summaryCache services.SummaryCache
	if redisCache != nil {
		summaryCache = redisCache
	}
	summaryService := services.NewSummaryService(analyzerService, summarizer, summaryCache, cfg.Analyzer, logger)

	// Create handlers
	analysisHandler := handlers.NewAnalysisHandler(summaryService, logger)

	var cacheChecker handlers.HealthChecker
	if redisCache != nil {
		cacheChecker = redisCache
	}
	healthHandler := handlers.NewHealthHandler(solscanClient, cacheChecker)

	// Setup router
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Metrics())
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RateLimiter(cfg.API.RateLimitRPS))

	// Health endpoints (no rate limiting)
	r.Get("/health", healthHandler.Health)
	r.Get("/ready", healthHandler.Ready)
	r.Get("/live", healthHandler.Live)
	r.Handle("/metrics", promhttp.Handler())

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/tokens/{address}/analysis", analysisHandler.GetTokenAnalysis)
	})

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.API.Host, cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.API.ReadTimeout,
		WriteTimeout: cfg.API.WriteTimeout,
	}

	// Run server in goroutine
	go func() {
		logger.Info("API server starting", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server error", zap.Error(err))
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("Received shutdown signal, shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.API.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func setupLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	return logger
}
