package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrNegativeCash       = errors.New("cash balance must not be negative")
	ErrInvalidAccountName = errors.New("invalid account name")

	// Trade errors
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrInvalidSymbol      = errors.New("invalid ticker symbol")
	ErrUnknownSymbol      = errors.New("unknown ticker symbol")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrNoSuchHolding      = errors.New("no holding for symbol")

	// Ledger errors
	ErrEntryNotFound     = errors.New("ledger entry not found")
	ErrInconsistentEntry = errors.New("entry total does not equal quantity times unit price")
	ErrNegativeHolding   = errors.New("negative net holding detected")

	// Quote errors
	ErrPricingUnavailable = errors.New("pricing unavailable")
)
