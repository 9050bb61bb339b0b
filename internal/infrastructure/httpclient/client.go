package httpclient

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"resty.dev/v3"
)

// UpstreamError reports a non-success response from a remote API. Callers can
// errors.As on it to map upstream failures to their own status codes.
type UpstreamError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d for %s", e.StatusCode, e.URL)
}

// ClientConfig holds settings for the outbound HTTP client
type ClientConfig struct {
	Timeout   time.Duration // per-request timeout
	RateLimit int           // requests per minute, 0 disables limiting
	UserAgent string
}

// Client is a thin JSON-over-HTTP client shared by the upstream adapters.
// Every request observes the configured timeout and rate limit.
type Client struct {
	client  *resty.Client
	logger  *zap.Logger
	limiter *rate.Limiter
}

// New creates a new HTTP client
func New(cfg ClientConfig, logger *zap.Logger) *Client {
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(cfg.RateLimit)/60), 1)
	}

	restyClient := resty.New().
		SetTimeout(cfg.Timeout).
		AddRequestMiddleware(func(c *resty.Client, r *resty.Request) error {
			if limiter != nil {
				limiterCtx, cancel := context.WithTimeout(r.Context(), cfg.Timeout)
				defer cancel()
				if err := limiter.Wait(limiterCtx); err != nil {
					return err
				}
			}
			if cfg.UserAgent != "" {
				r.SetHeader("User-Agent", cfg.UserAgent)
			}
			logger.Debug("Outgoing request", zap.String("url", r.URL))
			return nil
		}).
		AddResponseMiddleware(func(c *resty.Client, resp *resty.Response) error {
			if resp.StatusCode() >= 400 {
				logger.Warn("HTTP request failed",
					zap.Int("status", resp.StatusCode()),
					zap.String("url", resp.Request.URL),
				)
			}
			return nil
		})

	return &Client{
		client:  restyClient,
		logger:  logger,
		limiter: limiter,
	}
}

// Get issues a GET request and decodes the JSON response body into out
func (c *Client) Get(ctx context.Context, url string, query, headers map[string]string, out interface{}) error {
	req := c.client.R().
		SetContext(ctx).
		SetQueryParams(query).
		SetResult(out)

	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(url)
	if err != nil {
		c.logger.Error("HTTP GET request failed", zap.String("url", url), zap.Error(err))
		return err
	}

	if resp.StatusCode() >= 400 {
		return &UpstreamError{StatusCode: resp.StatusCode(), URL: url, Body: resp.String()}
	}

	return nil
}

// PostJSON issues a POST request with a JSON body and decodes the JSON
// response body into out
func (c *Client) PostJSON(ctx context.Context, url string, body interface{}, headers map[string]string, out interface{}) error {
	req := c.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(out)

	if headers != nil {
		req.SetHeaders(headers)
	}
	req.SetHeader("Content-Type", "application/json")

	resp, err := req.Post(url)
	if err != nil {
		c.logger.Error("HTTP POST request failed", zap.String("url", url), zap.Error(err))
		return err
	}

	if resp.StatusCode() >= 400 {
		return &UpstreamError{StatusCode: resp.StatusCode(), URL: url, Body: resp.String()}
	}

	return nil
}
