package services

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
)

var holdersAnalyzed = promauto.NewCounter(prometheus.CounterOpts{
	Name: "analyzer_holders_analyzed_total",
	Help: "Total number of holders analyzed",
})

// AnalyzerService orchestrates one analysis run: token metadata, the top-N
// holder listing and the per-holder aggregate, one holder at a time with no
// parallelism.
type AnalyzerService struct {
	gateway upstream.AnalyticsGateway
	logger  *zap.Logger
}

// NewAnalyzerService creates a new analyzer service
func NewAnalyzerService(gateway upstream.AnalyticsGateway, logger *zap.Logger) *AnalyzerService {
	return &AnalyzerService{
		gateway: gateway,
		logger:  logger,
	}
}

// Analyze builds the aggregate result for the top-N holders of a token. Any
// upstream failure during any step aborts the whole run; there is no partial
// output and no resumption.
func (s *AnalyzerService) Analyze(ctx context.Context, tokenAddress string, topN int) (*entities.AnalysisResult, error) {
	holders, err := s.gateway.TopHolders(ctx, tokenAddress, topN)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top holders: %w", err)
	}

	token, err := s.gateway.TokenMeta(ctx, tokenAddress)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token metadata: %w", err)
	}

	analysis := make([]entities.Holder, 0, len(holders))
	for _, record := range holders {
		transactions, err := s.gateway.TransactionHistory(ctx, record.Address, tokenAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch transactions for holder %s: %w", record.Address, err)
		}

		details := ClassifyHolder(transactions)

		otherTokens, err := s.gateway.OtherTokens(ctx, record.Address)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch holdings for holder %s: %w", record.Address, err)
		}

		firstActivity, err := s.gateway.FirstActivity(ctx, record.Address, tokenAddress)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch first activity for holder %s: %w", record.Address, err)
		}

		analysis = append(analysis, entities.Holder{
			WalletAddress:     record.Address,
			TokenBalance:      record.Amount,
			Rank:              record.Rank,
			FirstActivityDate: firstActivity,
			OtherTokens:       otherTokens,
			HolderDetails:     details,
			Transactions:      transactions,
		})
		holdersAnalyzed.Inc()

		s.logger.Debug("Analyzed holder",
			zap.Int("rank", record.Rank),
			zap.String("wallet", record.Address),
			zap.String("type", details.HolderType),
		)
	}

	return &entities.AnalysisResult{
		Token:    *token,
		Analysis: analysis,
		Date:     time.Now().UTC(),
	}, nil
}
