package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobroker/internal/adapter/http/dto"
	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/usecase"
)

// PortfolioService defines the behavior needed by PortfolioHandler.
type PortfolioService interface {
	Holdings(ctx context.Context, accountID string) ([]domain.Holding, error)
	Valuate(ctx context.Context, accountID string) (*domain.Valuation, error)
	History(ctx context.Context, input usecase.HistoryInput) ([]*domain.Entry, error)
}

// PortfolioHandler serves derived views over the trade ledger.
type PortfolioHandler struct {
	portfolioUC PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(portfolioUC PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolioUC: portfolioUC}
}

// Holdings lists the account's net positions.
func (h *PortfolioHandler) Holdings(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	holdings, err := h.portfolioUC.Holdings(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get holdings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListHoldingsResponse{
		Holdings: dto.HoldingsFromDomain(holdings),
		Total:    int64(len(holdings)),
	})
}

// Portfolio values every position at its live price and returns the snapshot.
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	valuation, err := h.portfolioUC.Valuate(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to value portfolio", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ValuationFromDomain(valuation))
}

// History lists the account's ledger entries in insertion order.
func (h *PortfolioHandler) History(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing account ID", "")
		return
	}

	entries, err := h.portfolioUC.History(r.Context(), usecase.HistoryInput{
		AccountID: id,
		Limit:     parseIntQuery(r, "limit", 50),
		Offset:    parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get history", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ListEntriesResponse{
		Entries: dto.EntriesFromDomain(entries),
		Total:   int64(len(entries)),
	})
}
