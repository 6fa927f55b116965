package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/infrastructure/metrics"
	"github.com/iho/gobroker/internal/usecase"
)

// Client is an HTTP client for the external quote gateway. The gateway is
// authoritative: a not-found answer is final, while transport failures and
// 5xx responses are retried briefly and then surfaced as
// domain.ErrPricingUnavailable so the caller may retry the whole operation.
type Client struct {
	baseURL string
	cli     *http.Client
	metrics *metrics.Metrics

	maxRetries      uint64
	initialInterval time.Duration
}

// NewClient creates a new quote gateway client. metrics may be nil.
func NewClient(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:         baseURL,
		cli:             &http.Client{Timeout: timeout},
		metrics:         m,
		maxRetries:      2,
		initialInterval: 100 * time.Millisecond,
	}
}

type quoteResponse struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Lookup fetches the current quote for symbol.
func (c *Client) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	if err := domain.ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	start := time.Now()

	var quote *domain.Quote

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.initialInterval

	err := backoff.Retry(func() error {
		q, err := c.fetch(ctx, symbol)
		if err != nil {
			if errors.Is(err, domain.ErrUnknownSymbol) {
				return backoff.Permanent(err)
			}
			return err
		}

		quote = q
		return nil
	}, backoff.WithContext(backoff.WithMaxRetries(b, c.maxRetries), ctx))

	c.record(time.Since(start), err)

	if err != nil {
		if errors.Is(err, domain.ErrUnknownSymbol) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrPricingUnavailable, err)
	}

	return quote, nil
}

func (c *Client) fetch(ctx context.Context, symbol string) (*domain.Quote, error) {
	u := fmt.Sprintf("%s/v1/quote/%s", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("User-Agent", "gobroker/1.0")

	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrUnknownSymbol
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("quote gateway returned %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("quote gateway returned %d", resp.StatusCode))
	}

	var raw quoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, err
	}

	if raw.Symbol == "" {
		raw.Symbol = symbol
	}

	if !raw.Price.IsPositive() {
		return nil, backoff.Permanent(fmt.Errorf("quote gateway returned non-positive price for %s", symbol))
	}

	return &domain.Quote{
		Symbol: domain.NormalizeSymbol(raw.Symbol),
		Name:   raw.Name,
		Price:  raw.Price,
	}, nil
}

func (c *Client) record(elapsed time.Duration, err error) {
	if c.metrics == nil {
		return
	}

	result := "ok"

	switch {
	case errors.Is(err, domain.ErrUnknownSymbol):
		result = "not_found"
	case err != nil:
		result = "error"
	}

	c.metrics.QuoteLookups.WithLabelValues(result).Inc()
	c.metrics.QuoteDuration.Observe(elapsed.Seconds())
}

var _ usecase.QuoteService = (*Client)(nil)
