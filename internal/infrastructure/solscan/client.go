package solscan

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/domain/upstream"
	"github.com/bimakw/holder-insight/internal/infrastructure/httpclient"
)

var upstreamRequests = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "solscan_requests_total",
		Help: "Total number of requests issued against the Solscan API",
	},
	[]string{"endpoint"},
)

// Client issues raw calls against the Solscan pro API. Every response arrives
// wrapped in a {"data": ...} envelope. Authentication is a bearer-style
// "token" header carrying the API key.
type Client struct {
	http    *httpclient.Client
	baseURL string
	apiKey  string
	logger  *zap.Logger
}

// NewClient creates a new Solscan API client
func NewClient(cfg config.SolscanConfig, httpClient *httpclient.Client, logger *zap.Logger) *Client {
	return &Client{
		http:    httpClient,
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

func (c *Client) headers() map[string]string {
	return map[string]string{
		"accept": "application/json",
		"token":  c.apiKey,
	}
}

// tokenMetaData mirrors the token/meta payload
type tokenMetaData struct {
	Address  string  `json:"address"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	Icon     string  `json:"icon"`
	Price    float64 `json:"price"`
	Decimals int     `json:"decimals"`
	Supply   string  `json:"supply"`
}

// TokenMeta retrieves metadata for a token
func (c *Client) TokenMeta(ctx context.Context, tokenAddress string) (*entities.Token, error) {
	upstreamRequests.WithLabelValues("token/meta").Inc()

	var envelope struct {
		Data tokenMetaData `json:"data"`
	}
	err := c.http.Get(ctx, c.baseURL+"/token/meta",
		map[string]string{"address": tokenAddress},
		c.headers(), &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token meta: %w", err)
	}

	return &entities.Token{
		Address:  envelope.Data.Address,
		Name:     envelope.Data.Name,
		Symbol:   envelope.Data.Symbol,
		Icon:     envelope.Data.Icon,
		Price:    envelope.Data.Price,
		Decimals: envelope.Data.Decimals,
		Supply:   envelope.Data.Supply,
	}, nil
}

// holderItem mirrors one row of the token/holders listing
type holderItem struct {
	Address string      `json:"address"`
	Amount  json.Number `json:"amount"`
	Rank    int         `json:"rank"`
}

// TopHolders retrieves the top holders of a token ordered by rank. The page
// size doubles as the limit: one page of exactly limit rows is requested.
func (c *Client) TopHolders(ctx context.Context, tokenAddress string, limit int) ([]upstream.HolderRecord, error) {
	upstreamRequests.WithLabelValues("token/holders").Inc()

	var envelope struct {
		Data struct {
			Items []holderItem `json:"items"`
			Total int          `json:"total"`
		} `json:"data"`
	}
	err := c.http.Get(ctx, c.baseURL+"/token/holders",
		map[string]string{
			"address":   tokenAddress,
			"page_size": strconv.Itoa(limit),
		},
		c.headers(), &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch top holders: %w", err)
	}

	holders := make([]upstream.HolderRecord, len(envelope.Data.Items))
	for i, item := range envelope.Data.Items {
		holders[i] = upstream.HolderRecord{
			Address: item.Address,
			Amount:  item.Amount,
			Rank:    item.Rank,
		}
	}
	return holders, nil
}

// balanceChangeRecord mirrors one account/balance_change row. Only the fields
// the analysis projects are decoded; everything else upstream sends is
// dropped here.
type balanceChangeRecord struct {
	TransID    string      `json:"trans_id"`
	Fee        json.Number `json:"fee"`
	Amount     json.Number `json:"amount"`
	Time       string      `json:"time"`
	ChangeType string      `json:"change_type"`
}

// BalanceChangeQuery controls sorting and pagination of a balance-change
// request. Zero Page/PageSize are omitted so the upstream default applies.
type BalanceChangeQuery struct {
	SortOrder string
	Page      int
	PageSize  int
}

// BalanceChanges retrieves one page of balance-change history for a wallet
// and token
func (c *Client) BalanceChanges(ctx context.Context, walletAddress, tokenAddress string, q BalanceChangeQuery) ([]entities.BalanceChange, error) {
	upstreamRequests.WithLabelValues("account/balance_change").Inc()

	query := map[string]string{
		"address":     walletAddress,
		"token":       tokenAddress,
		"sort_by":     "block_time",
		"sort_order":  q.SortOrder,
		"remove_spam": "true",
	}
	if q.Page > 0 {
		query["page"] = strconv.Itoa(q.Page)
	}
	if q.PageSize > 0 {
		query["page_size"] = strconv.Itoa(q.PageSize)
	}

	var envelope struct {
		Data []balanceChangeRecord `json:"data"`
	}
	err := c.http.Get(ctx, c.baseURL+"/account/balance_change", query, c.headers(), &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch balance changes: %w", err)
	}

	changes := make([]entities.BalanceChange, len(envelope.Data))
	for i, rec := range envelope.Data {
		changes[i] = entities.BalanceChange{
			TransID:    rec.TransID,
			Fee:        rec.Fee,
			Amount:     rec.Amount,
			Time:       rec.Time,
			ChangeType: rec.ChangeType,
		}
	}
	return changes, nil
}

// tokenAccountItem mirrors one account/token-accounts row
type tokenAccountItem struct {
	TokenAddress  string      `json:"token_address"`
	Amount        json.Number `json:"amount"`
	TokenDecimals int         `json:"token_decimals"`
}

// TokenAccounts retrieves a wallet's non-zero token accounts
func (c *Client) TokenAccounts(ctx context.Context, walletAddress string) ([]tokenAccountItem, error) {
	upstreamRequests.WithLabelValues("account/token-accounts").Inc()

	var envelope struct {
		Data []tokenAccountItem `json:"data"`
	}
	err := c.http.Get(ctx, c.baseURL+"/account/token-accounts",
		map[string]string{
			"address":   walletAddress,
			"type":      "token",
			"page_size": "40",
			"hide_zero": "true",
		},
		c.headers(), &envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch token accounts: %w", err)
	}
	return envelope.Data, nil
}

// HealthCheck probes the upstream API with a lightweight metadata request so
// the health endpoint can report reachability
func (c *Client) HealthCheck(ctx context.Context) error {
	// wrapped SOL mint, guaranteed to exist
	_, err := c.TokenMeta(ctx, "So11111111111111111111111111111111111111112")
	return err
}
