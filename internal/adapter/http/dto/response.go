package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
)

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Cash      decimal.Decimal `json:"cash"`
	Version   int64           `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts domain account to response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Cash:      a.Cash,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ReceiptResponse represents a committed trade in API responses.
type ReceiptResponse struct {
	EntryID     string          `json:"entry_id"`
	AccountID   string          `json:"account_id"`
	Side        string          `json:"side"`
	Symbol      string          `json:"symbol"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CashAfter   decimal.Decimal `json:"cash_after"`
	ExecutedAt  time.Time       `json:"executed_at"`
}

// ReceiptFromDomain converts domain receipt to response.
func ReceiptFromDomain(r *domain.Receipt) *ReceiptResponse {
	return &ReceiptResponse{
		EntryID:     r.EntryID,
		AccountID:   r.AccountID,
		Side:        string(r.Side),
		Symbol:      r.Symbol,
		Quantity:    r.Quantity,
		UnitPrice:   r.UnitPrice,
		TotalAmount: r.TotalAmount,
		CashAfter:   r.CashAfter,
		ExecutedAt:  r.ExecutedAt,
	}
}

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID          string          `json:"id"`
	AccountID   string          `json:"account_id"`
	Side        string          `json:"side"`
	Symbol      string          `json:"symbol"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	CreatedAt   time.Time       `json:"created_at"`
}

// EntryFromDomain converts domain entry to response.
func EntryFromDomain(e *domain.Entry) *EntryResponse {
	return &EntryResponse{
		ID:          e.ID,
		AccountID:   e.AccountID,
		Side:        string(e.Side()),
		Symbol:      e.Symbol,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		TotalAmount: e.TotalAmount,
		CreatedAt:   e.CreatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []*domain.Entry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e)
	}
	return result
}

// HoldingResponse represents a net position in API responses.
type HoldingResponse struct {
	Symbol    string          `json:"symbol"`
	Quantity  int64           `json:"quantity"`
	CostBasis decimal.Decimal `json:"cost_basis"`
}

// HoldingsFromDomain converts domain holdings to responses.
func HoldingsFromDomain(holdings []domain.Holding) []HoldingResponse {
	result := make([]HoldingResponse, len(holdings))
	for i, h := range holdings {
		result[i] = HoldingResponse{
			Symbol:    h.Symbol,
			Quantity:  h.Quantity,
			CostBasis: h.CostBasis,
		}
	}
	return result
}

// PositionResponse represents one valued holding in a portfolio.
type PositionResponse struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name,omitempty"`
	Quantity  int64           `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Value     decimal.Decimal `json:"value"`
	CostBasis decimal.Decimal `json:"cost_basis"`
}

// ValuationResponse represents a portfolio valuation in API responses.
type ValuationResponse struct {
	AccountID  string             `json:"account_id"`
	Cash       decimal.Decimal    `json:"cash"`
	Positions  []PositionResponse `json:"positions"`
	TotalValue decimal.Decimal    `json:"total_value"`
	AsOf       time.Time          `json:"as_of"`
}

// ValuationFromDomain converts domain valuation to response.
func ValuationFromDomain(v *domain.Valuation) *ValuationResponse {
	positions := make([]PositionResponse, len(v.Positions))
	for i, p := range v.Positions {
		positions[i] = PositionResponse{
			Symbol:    p.Symbol,
			Name:      p.Name,
			Quantity:  p.Quantity,
			Price:     p.Price,
			Value:     p.Value,
			CostBasis: p.CostBasis,
		}
	}
	return &ValuationResponse{
		AccountID:  v.AccountID,
		Cash:       v.Cash,
		Positions:  positions,
		TotalValue: v.TotalValue,
		AsOf:       v.AsOf,
	}
}

// QuoteResponse represents a quote in API responses.
type QuoteResponse struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name,omitempty"`
	Price  decimal.Decimal `json:"price"`
}

// QuoteFromDomain converts domain quote to response.
func QuoteFromDomain(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		Symbol: q.Symbol,
		Name:   q.Name,
		Price:  q.Price,
	}
}

// ListAccountsResponse wraps a page of accounts.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// ListEntriesResponse wraps a page of ledger entries.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int64            `json:"total"`
}

// ListHoldingsResponse wraps an account's net positions.
type ListHoldingsResponse struct {
	Holdings []HoldingResponse `json:"holdings"`
	Total    int64             `json:"total"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
