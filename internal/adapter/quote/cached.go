package quote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/infrastructure/metrics"
	"github.com/iho/gobroker/internal/usecase"
)

// CachedService wraps a QuoteService with a short-lived cache. Only
// successful lookups are cached; unknown symbols and gateway failures always
// go to the upstream so a transient error never gets pinned.
type CachedService struct {
	upstream usecase.QuoteService
	cache    usecase.Cache
	ttl      time.Duration
	logger   zerolog.Logger
	metrics  *metrics.Metrics
}

func NewCachedService(upstream usecase.QuoteService, cache usecase.Cache, ttl time.Duration, logger zerolog.Logger, m *metrics.Metrics) *CachedService {
	return &CachedService{
		upstream: upstream,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
		metrics:  m,
	}
}

type cachedQuote struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

func (s *CachedService) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	key := cacheKey(symbol)

	if raw, err := s.cache.Get(ctx, key); err == nil {
		var cq cachedQuote
		if err := json.Unmarshal([]byte(raw), &cq); err == nil {
			s.recordCache("hit")
			return &domain.Quote{Symbol: cq.Symbol, Name: cq.Name, Price: cq.Price}, nil
		}
		// A corrupt value is treated as a miss and overwritten below.
		s.logger.Warn().Str("symbol", symbol).Msg("discarding malformed cached quote")
	} else if !errors.Is(err, usecase.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote cache read failed")
	}

	s.recordCache("miss")

	quote, err := s.upstream.Lookup(ctx, symbol)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(cachedQuote{Symbol: quote.Symbol, Name: quote.Name, Price: quote.Price})
	if err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.ttl); err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("quote cache write failed")
		}
	}

	return quote, nil
}

func (s *CachedService) recordCache(outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.QuoteCacheHit.WithLabelValues(outcome).Inc()
}

func cacheKey(symbol string) string {
	return fmt.Sprintf("quote:%s", symbol)
}

var _ usecase.QuoteService = (*CachedService)(nil)
