package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a trading account holding a cash balance.
type Account struct {
	ID        string
	Name      string
	Cash      decimal.Decimal
	Version   int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks if the account has enough cash to cover amount.
func (a *Account) ValidateDebit(amount decimal.Decimal) error {
	if a.Cash.Sub(amount).IsNegative() {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the cash balance after spending amount.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Cash.Sub(amount)
}

// ApplyCredit returns the cash balance after receiving amount.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Cash.Add(amount)
}
