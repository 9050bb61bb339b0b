package testutil

import (
	"context"
	"sync"

	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
	"github.com/bimakw/holder-insight/internal/infrastructure/cache"
)

// MockCall records one invocation of a mock method
type MockCall struct {
	Method string
	Args   []interface{}
}

// MockAnalyticsGateway is a mock implementation of upstream.AnalyticsGateway
type MockAnalyticsGateway struct {
	mu sync.Mutex

	// Function hooks for custom behavior
	TokenMetaFunc          func(ctx context.Context, tokenAddress string) (*entities.Token, error)
	TopHoldersFunc         func(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error)
	TransactionHistoryFunc func(ctx context.Context, walletAddress, tokenAddress string) ([]entities.BalanceChange, error)
	FirstActivityFunc      func(ctx context.Context, walletAddress, tokenAddress string) (*string, error)
	OtherTokensFunc        func(ctx context.Context, walletAddress string) ([]entities.OtherToken, error)

	// Call tracking
	Calls []MockCall
}

// NewMockAnalyticsGateway creates a new mock gateway
func NewMockAnalyticsGateway() *MockAnalyticsGateway {
	return &MockAnalyticsGateway{
		Calls: make([]MockCall, 0),
	}
}

func (m *MockAnalyticsGateway) record(method string, args ...interface{}) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: method, Args: args})
	m.mu.Unlock()
}

// CallCount returns the number of recorded calls across all methods
func (m *MockAnalyticsGateway) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockAnalyticsGateway) TokenMeta(ctx context.Context, tokenAddress string) (*entities.Token, error) {
	m.record("TokenMeta", tokenAddress)
	if m.TokenMetaFunc != nil {
		return m.TokenMetaFunc(ctx, tokenAddress)
	}
	token := CreateTestToken(TokenWithAddress(tokenAddress))
	return &token, nil
}

func (m *MockAnalyticsGateway) TopHolders(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error) {
	m.record("TopHolders", tokenAddress, limit)
	if m.TopHoldersFunc != nil {
		return m.TopHoldersFunc(ctx, tokenAddress, limit)
	}
	return []upstream.HolderRecord{}, nil
}

func (m *MockAnalyticsGateway) TransactionHistory(ctx context.Context, walletAddress, tokenAddress string) ([]entities.BalanceChange, error) {
	m.record("TransactionHistory", walletAddress, tokenAddress)
	if m.TransactionHistoryFunc != nil {
		return m.TransactionHistoryFunc(ctx, walletAddress, tokenAddress)
	}
	return []entities.BalanceChange{}, nil
}

func (m *MockAnalyticsGateway) FirstActivity(ctx context.Context, walletAddress, tokenAddress string) (*string, error) {
	m.record("FirstActivity", walletAddress, tokenAddress)
	if m.FirstActivityFunc != nil {
		return m.FirstActivityFunc(ctx, walletAddress, tokenAddress)
	}
	return nil, nil
}

func (m *MockAnalyticsGateway) OtherTokens(ctx context.Context, walletAddress string) ([]entities.OtherToken, error) {
	m.record("OtherTokens", walletAddress)
	if m.OtherTokensFunc != nil {
		return m.OtherTokensFunc(ctx, walletAddress)
	}
	return []entities.OtherToken{}, nil
}

// MockSummarizer is a mock implementation of upstream.Summarizer
type MockSummarizer struct {
	mu sync.Mutex

	SummarizeFunc func(ctx context.Context, result *entities.AnalysisResult) (string, error)

	Calls []MockCall
}

// NewMockSummarizer creates a new mock summarizer
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{
		Calls: make([]MockCall, 0),
	}
}

// CallCount returns the number of recorded Summarize calls
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

func (m *MockSummarizer) Summarize(ctx context.Context, result *entities.AnalysisResult) (string, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, MockCall{Method: "Summarize", Args: []interface{}{result}})
	m.mu.Unlock()

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, result)
	}
	return "test summary", nil
}

// MockSummaryCache is an in-memory mock of the summary cache
type MockSummaryCache struct {
	mu      sync.Mutex
	entries map[string]string

	GetFunc func(ctx context.Context, key string) (string, error)
	SetFunc func(ctx context.Context, key, value string) error

	GetCalls int
	SetCalls int
}

// NewMockSummaryCache creates a new mock cache
func NewMockSummaryCache() *MockSummaryCache {
	return &MockSummaryCache{
		entries: make(map[string]string),
	}
}

// Preload seeds the cache with an entry
func (m *MockSummaryCache) Preload(key, value string) {
	m.mu.Lock()
	m.entries[key] = value
	m.mu.Unlock()
}

func (m *MockSummaryCache) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	m.GetCalls++
	m.mu.Unlock()

	if m.GetFunc != nil {
		return m.GetFunc(ctx, key)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.entries[key]
	if !ok {
		return "", cache.ErrCacheMiss
	}
	return val, nil
}

func (m *MockSummaryCache) Set(ctx context.Context, key, value string) error {
	m.mu.Lock()
	m.SetCalls++
	m.mu.Unlock()

	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

// Stored returns the cached value for a key, if any
func (m *MockSummaryCache) Stored(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.entries[key]
	return val, ok
}
