package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bimakw/holder-insight/internal/application/services"
	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/infrastructure/ai"
	"github.com/bimakw/holder-insight/internal/infrastructure/cache"
	"github.com/bimakw/holder-insight/internal/infrastructure/httpclient"
	"github.com/bimakw/holder-insight/internal/infrastructure/solscan"
)

// One-shot run: analyze a single token and print the summary to stdout.
func main() {
	var (
		tokenAddress = flag.String("token", "", "token address to analyze (44 characters)")
		topN         = flag.Int("top-n", 0, "number of top holders to analyze (10, 20, 30 or 40; 0 uses TOP_N)")
		noCache      = flag.Bool("no-cache", false, "skip the Redis summary cache")
	)
	flag.Parse()

	if *tokenAddress == "" {
		fmt.Fprintln(os.Stderr, "usage: analyze -token <address> [-top-n N] [-no-cache]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := setupLogger(cfg.Log.Level)
	defer logger.Sync()

	// Cache is optional for one-shot runs
	var summaryCache services.SummaryCache
	if !*noCache {
		redisCache, err := cache.NewRedisCache(cfg.Redis, logger)
		if err != nil {
			logger.Warn("Failed to connect to Redis, running without cache", zap.Error(err))
		} else {
			defer redisCache.Close()
			summaryCache = redisCache
		}
	}

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

	analyzer := services.NewAnalyzerService(fetcher, logger)
	summaryService := services.NewSummaryService(analyzer, summarizer, summaryCache, cfg.Analyzer, logger)

	summary, err := summaryService.Summarize(context.Background(), *tokenAddress, *topN)
	if err != nil {
		logger.Error("Analysis failed", zap.Error(err))
		os.Exit(1)
	}

	fmt.Println(summary)
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
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	logger, _ := config.Build()
	return logger
}
