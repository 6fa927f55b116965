package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/adapter/http/dto"
	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/usecase"
)

type tradeServiceStub struct {
	buyFn  func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error)
	sellFn func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error)
}

func (s *tradeServiceStub) Buy(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
	return s.buyFn(ctx, input)
}

func (s *tradeServiceStub) Sell(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
	return s.sellFn(ctx, input)
}

func tradeBody(t *testing.T, accountID, symbol string, quantity int64) *bytes.Reader {
	t.Helper()

	body, err := json.Marshal(dto.TradeRequest{AccountID: accountID, Symbol: symbol, Quantity: quantity})
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	return bytes.NewReader(body)
}

func TestTradeHandler_Buy_Success(t *testing.T) {
	receipt := &domain.Receipt{
		EntryID:     "entry-1",
		AccountID:   "acc-1",
		Side:        domain.SideBuy,
		Symbol:      "AAPL",
		Quantity:    10,
		UnitPrice:   decimal.RequireFromString("150.00"),
		TotalAmount: decimal.RequireFromString("1500.00"),
		CashAfter:   decimal.RequireFromString("8500.00"),
	}

	var captured usecase.TradeInput
	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
			captured = input
			return receipt, nil
		},
		sellFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/trades/buy", tradeBody(t, "acc-1", "AAPL", 10))
	rec := httptest.NewRecorder()

	handler.Buy(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	if captured.AccountID != "acc-1" || captured.Symbol != "AAPL" || captured.Quantity != 10 {
		t.Fatalf("unexpected input: %+v", captured)
	}

	var resp dto.ReceiptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Side != "buy" || !resp.CashAfter.Equal(decimal.RequireFromString("8500.00")) {
		t.Fatalf("unexpected receipt: %+v", resp)
	}
}

func TestTradeHandler_Buy_InvalidJSON(t *testing.T) {
	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
			t.Fatal("Buy should not be called for invalid payload")
			return nil, nil
		},
		sellFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) { return nil, nil },
	})

	req := httptest.NewRequest(http.MethodPost, "/trades/buy", bytes.NewBufferString("{oops"))
	rec := httptest.NewRecorder()

	handler.Buy(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTradeHandler_Buy_RejectionStatuses(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity},
		{"invalid quantity", domain.ErrInvalidQuantity, http.StatusBadRequest},
		{"unknown symbol", domain.ErrUnknownSymbol, http.StatusNotFound},
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound},
		{"pricing down", domain.ErrPricingUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewTradeHandler(&tradeServiceStub{
				buyFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
					return nil, tt.err
				},
				sellFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) { return nil, nil },
			})

			req := httptest.NewRequest(http.MethodPost, "/trades/buy", tradeBody(t, "acc-1", "AAPL", 10))
			rec := httptest.NewRecorder()

			handler.Buy(rec, req)

			if rec.Code != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, rec.Code)
			}
		})
	}
}

func TestTradeHandler_Sell_Success(t *testing.T) {
	receipt := &domain.Receipt{
		EntryID:     "entry-2",
		AccountID:   "acc-1",
		Side:        domain.SideSell,
		Symbol:      "AAPL",
		Quantity:    -4,
		UnitPrice:   decimal.RequireFromString("160.00"),
		TotalAmount: decimal.RequireFromString("-640.00"),
		CashAfter:   decimal.RequireFromString("9140.00"),
	}

	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) { return nil, nil },
		sellFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
			return receipt, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/trades/sell", tradeBody(t, "acc-1", "AAPL", 4))
	rec := httptest.NewRecorder()

	handler.Sell(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.ReceiptResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Side != "sell" || resp.Quantity != -4 {
		t.Fatalf("unexpected receipt: %+v", resp)
	}
}

func TestTradeHandler_Sell_InsufficientShares(t *testing.T) {
	handler := NewTradeHandler(&tradeServiceStub{
		buyFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) { return nil, nil },
		sellFn: func(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error) {
			return nil, domain.ErrInsufficientShares
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/trades/sell", tradeBody(t, "acc-1", "AAPL", 100))
	rec := httptest.NewRecorder()

	handler.Sell(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
}
