package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
)

var (
	analysesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_runs_total",
		Help: "Total number of full analysis runs performed",
	})
	summaryCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_summary_cache_hits_total",
		Help: "Total number of summary requests served from cache",
	})
	summaryCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "analyzer_summary_cache_misses_total",
		Help: "Total number of summary requests that missed the cache",
	})
)

// SummaryCache is the cache surface the entry point uses: a presence check
// via Get and a write. Entries are never invalidated or expired here.
type SummaryCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// SummaryService is the process entry point. It validates input, consults
// the external cache keyed by token address and on a miss runs the analyzer
// followed by the summarizer.
type SummaryService struct {
	analyzer    *AnalyzerService
	summarizer  upstream.Summarizer
	cache       SummaryCache
	defaultTopN int
	logger      *zap.Logger
}

// NewSummaryService creates a new summary service. cache may be nil, in
// which case every request performs a full run.
func NewSummaryService(
	analyzer *AnalyzerService,
	summarizer upstream.Summarizer,
	cache SummaryCache,
	cfg config.AnalyzerConfig,
	logger *zap.Logger,
) *SummaryService {
	return &SummaryService{
		analyzer:    analyzer,
		summarizer:  summarizer,
		cache:       cache,
		defaultTopN: cfg.TopN,
		logger:      logger,
	}
}

// CacheKey derives the cache key for a token address
func CacheKey(tokenAddress string) string {
	return "analysis-" + tokenAddress
}

// Summarize returns the summary for a token, producing and caching it on a
// cache miss. topN == 0 selects the configured default. On a cache hit no
// upstream call is made.
func (s *SummaryService) Summarize(ctx context.Context, tokenAddress string, topN int) (string, error) {
	if topN == 0 {
		topN = s.defaultTopN
	}
	if err := ValidateTopN(topN); err != nil {
		return "", err
	}
	if err := ValidateTokenAddress(tokenAddress); err != nil {
		return "", err
	}

	key := CacheKey(tokenAddress)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil {
			s.logger.Debug("Cache hit", zap.String("key", key))
			summaryCacheHits.Inc()
			return cached, nil
		}
		summaryCacheMisses.Inc()
	}

	result, err := s.analyzer.Analyze(ctx, tokenAddress, topN)
	if err != nil {
		return "", err
	}
	analysesTotal.Inc()

	summary, err := s.summarizer.Summarize(ctx, result)
	if err != nil {
		return "", fmt.Errorf("failed to summarize analysis: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, summary); err != nil {
			s.logger.Warn("Failed to cache summary", zap.String("key", key), zap.Error(err))
		}
	}

	return summary, nil
}
