package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iho/gobroker/internal/adapter/http/dto"
	"github.com/iho/gobroker/internal/usecase"
)

// QuoteHandler exposes symbol lookups against the quote gateway.
type QuoteHandler struct {
	quotes usecase.QuoteService
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(quotes usecase.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Lookup returns the current quote for a symbol.
func (h *QuoteHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	symbol := chi.URLParam(r, "symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "missing symbol", "")
		return
	}

	quote, err := h.quotes.Lookup(r.Context(), symbol)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to look up quote", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.QuoteFromDomain(quote))
}
