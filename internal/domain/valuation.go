package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is one valued holding inside a portfolio valuation.
type Position struct {
	Symbol    string
	Name      string
	Quantity  int64
	Price     decimal.Decimal
	Value     decimal.Decimal
	CostBasis decimal.Decimal
}

// Valuation is the ephemeral portfolio snapshot: each held symbol valued at
// its live price, plus cash. Recomputed on every request; never persisted.
type Valuation struct {
	AccountID  string
	Cash       decimal.Decimal
	Positions  []Position
	TotalValue decimal.Decimal
	AsOf       time.Time
}

// Receipt summarizes a committed trade.
type Receipt struct {
	EntryID     string
	AccountID   string
	Side        Side
	Symbol      string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
	CashAfter   decimal.Decimal
	ExecutedAt  time.Time
}
