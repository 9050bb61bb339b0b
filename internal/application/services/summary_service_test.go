package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
	"github.com/bimakw/holder-insight/internal/testutil"
)

func setupSummaryTest() (*SummaryService, *testutil.MockAnalyticsGateway, *testutil.MockSummarizer, *testutil.MockSummaryCache) {
	gateway := testutil.NewMockAnalyticsGateway()
	summarizer := testutil.NewMockSummarizer()
	summaryCache := testutil.NewMockSummaryCache()
	logger := zap.NewNop()

	analyzer := NewAnalyzerService(gateway, logger)
	service := NewSummaryService(analyzer, summarizer, summaryCache, config.AnalyzerConfig{TopN: 10}, logger)

	return service, gateway, summarizer, summaryCache
}

func TestSummaryService_Summarize_InvalidAddress(t *testing.T) {
	service, gateway, _, _ := setupSummaryTest()

	_, err := service.Summarize(context.Background(), "tooshort", 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gateway.CallCount() != 0 {
		t.Errorf("expected no upstream calls before validation, got %d", gateway.CallCount())
	}
}

func TestSummaryService_Summarize_InvalidTopN(t *testing.T) {
	service, gateway, _, _ := setupSummaryTest()

	_, err := service.Summarize(context.Background(), testutil.TestTokenAddress, 15)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if gateway.CallCount() != 0 {
		t.Errorf("expected no upstream calls, got %d", gateway.CallCount())
	}
}

func TestSummaryService_Summarize_CacheHit(t *testing.T) {
	service, gateway, summarizer, summaryCache := setupSummaryTest()

	summaryCache.Preload(CacheKey(testutil.TestTokenAddress), "cached summary")

	got, err := service.Summarize(context.Background(), testutil.TestTokenAddress, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "cached summary" {
		t.Errorf("expected cached summary, got %q", got)
	}
	if gateway.CallCount() != 0 {
		t.Errorf("expected zero upstream calls on cache hit, got %d", gateway.CallCount())
	}
	if summarizer.CallCount() != 0 {
		t.Errorf("expected zero summarizer calls on cache hit, got %d", summarizer.CallCount())
	}
}

func TestSummaryService_Summarize_CacheMissStoresResult(t *testing.T) {
	service, gateway, summarizer, summaryCache := setupSummaryTest()

	gateway.TopHoldersFunc = func(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error) {
		if limit != 10 {
			t.Errorf("expected default top-N 10, got %d", limit)
		}
		return testutil.CreateTestHolderRecords(limit), nil
	}
	summarizer.SummarizeFunc = func(ctx context.Context, result *entities.AnalysisResult) (string, error) {
		return "  fresh summary  ", nil
	}

	got, err := service.Summarize(context.Background(), testutil.TestTokenAddress, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "  fresh summary  " {
		t.Errorf("unexpected summary %q", got)
	}

	stored, ok := summaryCache.Stored(CacheKey(testutil.TestTokenAddress))
	if !ok {
		t.Fatal("expected summary to be cached")
	}
	if stored != got {
		t.Errorf("cached %q, returned %q", stored, got)
	}
}

func TestSummaryService_Summarize_SummarizerFailure(t *testing.T) {
	service, gateway, summarizer, summaryCache := setupSummaryTest()

	gateway.TopHoldersFunc = func(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error) {
		return testutil.CreateTestHolderRecords(limit), nil
	}
	summarizer.SummarizeFunc = func(ctx context.Context, result *entities.AnalysisResult) (string, error) {
		return "", errors.New("empty response from summarization API")
	}

	_, err := service.Summarize(context.Background(), testutil.TestTokenAddress, 10)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "failed to summarize") {
		t.Errorf("unexpected error message: %v", err)
	}
	if _, ok := summaryCache.Stored(CacheKey(testutil.TestTokenAddress)); ok {
		t.Error("expected nothing cached on summarizer failure")
	}
}

func TestSummaryService_Summarize_NilCache(t *testing.T) {
	gateway := testutil.NewMockAnalyticsGateway()
	summarizer := testutil.NewMockSummarizer()
	logger := zap.NewNop()

	analyzer := NewAnalyzerService(gateway, logger)
	service := NewSummaryService(analyzer, summarizer, nil, config.AnalyzerConfig{TopN: 10}, logger)

	gateway.TopHoldersFunc = func(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error) {
		return testutil.CreateTestHolderRecords(limit), nil
	}

	got, err := service.Summarize(context.Background(), testutil.TestTokenAddress, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "test summary" {
		t.Errorf("unexpected summary %q", got)
	}
}
