package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iho/gobroker/internal/adapter/http/dto"
	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/usecase"
)

// TradeService defines the behavior needed by TradeHandler.
type TradeService interface {
	Buy(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error)
	Sell(ctx context.Context, input usecase.TradeInput) (*domain.Receipt, error)
}

// TradeHandler handles buy and sell order requests.
type TradeHandler struct {
	tradeUC TradeService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(tradeUC TradeService) *TradeHandler {
	return &TradeHandler{tradeUC: tradeUC}
}

// Buy executes a purchase at the current quoted price.
func (h *TradeHandler) Buy(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.tradeUC.Buy)
}

// Sell executes a disposal at the current quoted price.
func (h *TradeHandler) Sell(w http.ResponseWriter, r *http.Request) {
	h.execute(w, r, h.tradeUC.Sell)
}

func (h *TradeHandler) execute(w http.ResponseWriter, r *http.Request, fn func(context.Context, usecase.TradeInput) (*domain.Receipt, error)) {
	var req dto.TradeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	receipt, err := fn(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "trade rejected", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.ReceiptFromDomain(receipt))
}
