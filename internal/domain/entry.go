package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Side distinguishes acquisitions from disposals.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Entry is one immutable record in the trade ledger. Quantity is signed:
// positive for buys, negative for sells. TotalAmount carries the same sign
// and always equals Quantity times UnitPrice. Corrections are written as new
// offsetting entries; rows are never updated or deleted.
type Entry struct {
	CreatedAt   time.Time
	ID          string
	AccountID   string
	Symbol      string
	Quantity    int64
	UnitPrice   decimal.Decimal
	TotalAmount decimal.Decimal
}

// Side reports whether the entry records a buy or a sell.
func (e *Entry) Side() Side {
	if e.Quantity < 0 {
		return SideSell
	}
	return SideBuy
}

// Validate checks the entry's internal consistency before it is appended.
func (e *Entry) Validate() error {
	if e.Quantity == 0 {
		return ErrInvalidQuantity
	}

	if err := ValidateSymbol(e.Symbol); err != nil {
		return err
	}

	if !e.UnitPrice.IsPositive() {
		return ErrInconsistentEntry
	}

	want := e.UnitPrice.Mul(decimal.NewFromInt(e.Quantity))
	if !e.TotalAmount.Equal(want) {
		return ErrInconsistentEntry
	}

	return nil
}
