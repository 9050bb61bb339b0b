package upstream

import (
	"context"
	"encoding/json"

	"github.com/bimakw/holder-insight/internal/domain/entities"
)

// HolderRecord is one row of the upstream token-holders listing
type HolderRecord struct {
	Address string
	Amount  json.Number
	Rank    int
}

// AnalyticsGateway defines the read operations the analyzer needs from the
// upstream analytics API
type AnalyticsGateway interface {
	// TokenMeta retrieves metadata for a token
	TokenMeta(ctx context.Context, tokenAddress string) (*entities.Token, error)

	// TopHolders retrieves the top holders of a token ordered by rank
	TopHolders(ctx context.Context, tokenAddress string, limit int) ([]HolderRecord, error)

	// TransactionHistory retrieves a wallet's balance changes for a token,
	// newest first, capped at 100 entries
	TransactionHistory(ctx context.Context, walletAddress, tokenAddress string) ([]entities.BalanceChange, error)

	// FirstActivity returns the time of the earliest balance change for a
	// wallet and token, or nil when no history exists
	FirstActivity(ctx context.Context, walletAddress, tokenAddress string) (*string, error)

	// OtherTokens retrieves all non-zero token holdings of a wallet, each
	// enriched with token metadata
	OtherTokens(ctx context.Context, walletAddress string) ([]entities.OtherToken, error)
}
