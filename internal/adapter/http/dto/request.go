package dto

import (
	"github.com/iho/gobroker/internal/usecase"
)

// CreateAccountRequest represents a request to open a trading account.
type CreateAccountRequest struct {
	Name string `json:"name"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name: r.Name,
	}
}

// TradeRequest represents a buy or sell order.
type TradeRequest struct {
	AccountID string `json:"account_id"`
	Symbol    string `json:"symbol"`
	Quantity  int64  `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *TradeRequest) ToUseCaseInput() usecase.TradeInput {
	return usecase.TradeInput{
		AccountID: r.AccountID,
		Symbol:    r.Symbol,
		Quantity:  r.Quantity,
	}
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
