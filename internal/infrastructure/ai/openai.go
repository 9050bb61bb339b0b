package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"

	"github.com/bimakw/holder-insight/internal/config"
	"github.com/bimakw/holder-insight/internal/domain/entities"
	"github.com/bimakw/holder-insight/internal/infrastructure/httpclient"
)

var summarizerRequests = promauto.NewCounter(prometheus.CounterOpts{
	Name: "summarizer_requests_total",
	Help: "Total number of completion requests issued to the summarization API",
})

const systemPrompt = "You are a helpful assistant that summarizes blockchain analysis results."

// Summarizer sends an analysis result to the OpenAI chat-completions API and
// returns the generated prose. One completion request per call, fixed
// parameters, no streaming.
type Summarizer struct {
	http   *httpclient.Client
	cfg    config.OpenAIConfig
	logger *zap.Logger
}

// NewSummarizer creates a new OpenAI-backed summarizer
func NewSummarizer(cfg config.OpenAIConfig, httpClient *httpclient.Client, logger *zap.Logger) *Summarizer {
	return &Summarizer{
		http:   httpClient,
		cfg:    cfg,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// holderSummary is the per-holder view sent to the model. Transaction detail
// is deliberately excluded; it is not needed for prose.
type holderSummary struct {
	WalletAddress     string                 `json:"wallet_address"`
	TokenBalance      json.Number            `json:"token_balance"`
	Rank              int                    `json:"rank"`
	FirstActivityDate *string                `json:"first_activity_date"`
	OtherTokens       []entities.OtherToken  `json:"other_tokens"`
	HolderDetails     entities.HolderDetails `json:"holder_details"`
}

// Summarize issues one completion request and returns the trimmed response
// text. A transport error, non-success status or a response without choices
// is fatal for the run.
func (s *Summarizer) Summarize(ctx context.Context, result *entities.AnalysisResult) (string, error) {
	prompt, err := buildPrompt(result)
	if err != nil {
		return "", fmt.Errorf("failed to serialize analysis: %w", err)
	}

	reqBody := chatRequest{
		Model: s.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   s.cfg.MaxTokens,
	}

	summarizerRequests.Inc()

	var resp chatResponse
	err = s.http.PostJSON(ctx, s.cfg.BaseURL+"/chat/completions", reqBody,
		map[string]string{"Authorization": "Bearer " + s.cfg.APIKey}, &resp)
	if err != nil {
		return "", fmt.Errorf("summarization request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("empty response from summarization API")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)

	s.logger.Debug("Generated summary",
		zap.String("token", result.Token.Address),
		zap.Int("length", len(summary)),
	)

	return summary, nil
}

// buildPrompt serializes the token, the stripped per-holder summaries and the
// run date into a single text block for the user message
func buildPrompt(result *entities.AnalysisResult) (string, error) {
	summaries := make([]holderSummary, len(result.Analysis))
	for i, h := range result.Analysis {
		summaries[i] = holderSummary{
			WalletAddress:     h.WalletAddress,
			TokenBalance:      h.TokenBalance,
			Rank:              h.Rank,
			FirstActivityDate: h.FirstActivityDate,
			OtherTokens:       h.OtherTokens,
			HolderDetails:     h.HolderDetails,
		}
	}

	tokenJSON, err := json.Marshal(result.Token)
	if err != nil {
		return "", err
	}
	analysisJSON, err := json.Marshal(summaries)
	if err != nil {
		return "", err
	}

	block := fmt.Sprintf("Token: %s\nAnalysis Data: %s\nDate of Analysis: %s",
		tokenJSON, analysisJSON, result.Date.Format(time.RFC3339))

	return "Summarize the following blockchain analysis data in a human-readable form:\n\n" + block, nil
}
