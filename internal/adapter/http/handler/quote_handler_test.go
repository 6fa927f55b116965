package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/adapter/http/dto"
	"github.com/iho/gobroker/internal/domain"
)

type quoteServiceStub struct {
	lookupFn func(ctx context.Context, symbol string) (*domain.Quote, error)
}

func (s *quoteServiceStub) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	return s.lookupFn(ctx, symbol)
}

func TestQuoteHandler_Lookup(t *testing.T) {
	handler := NewQuoteHandler(&quoteServiceStub{
		lookupFn: func(ctx context.Context, symbol string) (*domain.Quote, error) {
			if symbol != "AAPL" {
				t.Fatalf("expected AAPL, got %s", symbol)
			}
			return &domain.Quote{
				Symbol: "AAPL",
				Name:   "Apple Inc.",
				Price:  decimal.RequireFromString("150.25"),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/quotes/AAPL", nil)
	req = setChiURLParam(req, "symbol", "AAPL")
	rec := httptest.NewRecorder()

	handler.Lookup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.QuoteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Symbol != "AAPL" || !resp.Price.Equal(decimal.RequireFromString("150.25")) {
		t.Fatalf("unexpected quote response: %+v", resp)
	}
}

func TestQuoteHandler_Lookup_UnknownSymbol(t *testing.T) {
	handler := NewQuoteHandler(&quoteServiceStub{
		lookupFn: func(ctx context.Context, symbol string) (*domain.Quote, error) {
			return nil, domain.ErrUnknownSymbol
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/quotes/ZZZZ", nil)
	req = setChiURLParam(req, "symbol", "ZZZZ")
	rec := httptest.NewRecorder()

	handler.Lookup(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestQuoteHandler_Lookup_GatewayDown(t *testing.T) {
	handler := NewQuoteHandler(&quoteServiceStub{
		lookupFn: func(ctx context.Context, symbol string) (*domain.Quote, error) {
			return nil, domain.ErrPricingUnavailable
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/quotes/AAPL", nil)
	req = setChiURLParam(req, "symbol", "AAPL")
	rec := httptest.NewRecorder()

	handler.Lookup(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
