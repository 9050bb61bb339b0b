package solscan

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
)

// Pagination contract for transaction history: pages of 40, at most 100
// entries retained per holder.
const (
	transactionPageSize = 40
	transactionCap      = 100
)

// Fetcher implements upstream.AnalyticsGateway on top of the raw client. It
// owns the pagination loop, the inter-page courtesy delay and the
// per-held-token metadata fan-out.
type Fetcher struct {
	client    *Client
	pageDelay time.Duration
	logger    *zap.Logger
}

// NewFetcher creates a new analytics fetcher
func NewFetcher(client *Client, cfg config.SolscanConfig, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client:    client,
		pageDelay: cfg.PageDelay,
		logger:    logger,
	}
}

// TokenMeta retrieves metadata for a token
func (f *Fetcher) TokenMeta(ctx context.Context, tokenAddress string) (*entities.Token, error) {
	return f.client.TokenMeta(ctx, tokenAddress)
}

// TopHolders retrieves the top holders of a token ordered by rank
func (f *Fetcher) TopHolders(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error) {
	return f.client.TopHolders(ctx, tokenAddress, limit)
}

// TransactionHistory accumulates newest-first balance-change pages until a
// short page signals exhaustion or the running total reaches the cap. The
// final page is truncated so callers always see at most 100 entries. Any
// upstream failure aborts the whole operation with no partial result.
func (f *Fetcher) TransactionHistory(ctx context.Context, walletAddress, tokenAddress string) ([]entities.BalanceChange, error) {
	var history []entities.BalanceChange

	for page := 1; ; page++ {
		batch, err := f.client.BalanceChanges(ctx, walletAddress, tokenAddress, BalanceChangeQuery{
			SortOrder: "desc",
			Page:      page,
			PageSize:  transactionPageSize,
		})
		if err != nil {
			return nil, err
		}

		history = append(history, batch...)

		if len(batch) < transactionPageSize || len(history) >= transactionCap {
			break
		}

		// Courtesy pause between page fetches, not a backoff.
		time.Sleep(f.pageDelay)
	}

	if len(history) > transactionCap {
		history = history[:transactionCap]
	}

	f.logger.Debug("Fetched transaction history",
		zap.String("wallet", walletAddress),
		zap.Int("count", len(history)),
	)

	return history, nil
}

// FirstActivity returns the time of the earliest balance change for a wallet
// and token, or nil when no history exists
func (f *Fetcher) FirstActivity(ctx context.Context, walletAddress, tokenAddress string) (*string, error) {
	records, err := f.client.BalanceChanges(ctx, walletAddress, tokenAddress, BalanceChangeQuery{
		SortOrder: "asc",
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	t := records[0].Time
	return &t, nil
}

// OtherTokens lists a wallet's non-zero holdings and joins each with token
// metadata. One metadata call is issued per distinct held token; repeat mints
// within the same wallet are looked up once.
func (f *Fetcher) OtherTokens(ctx context.Context, walletAddress string) ([]entities.OtherToken, error) {
	accounts, err := f.client.TokenAccounts(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	metaByMint := make(map[string]*entities.Token)
	tokens := make([]entities.OtherToken, 0, len(accounts))
	for _, acct := range accounts {
		meta, ok := metaByMint[acct.TokenAddress]
		if !ok {
			meta, err = f.client.TokenMeta(ctx, acct.TokenAddress)
			if err != nil {
				return nil, err
			}
			metaByMint[acct.TokenAddress] = meta
		}

		tokens = append(tokens, entities.OtherToken{
			Token:         *meta,
			Amount:        acct.Amount,
			TokenDecimals: acct.TokenDecimals,
		})
	}

	return tokens, nil
}
