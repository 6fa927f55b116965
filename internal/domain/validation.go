package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// Validation constants
const (
	MaxSymbolLength      = 10
	MaxAccountNameLength = 255
	MaxTradeQuantity     = 1_000_000_000
)

var symbolRegex = regexp.MustCompile(`^[A-Z][A-Z0-9.\-]*$`)

// NormalizeSymbol upper-cases and trims a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// ValidateSymbol validates a normalized ticker symbol.
func ValidateSymbol(symbol string) error {
	if symbol == "" {
		return fmt.Errorf("%w: symbol is blank", ErrInvalidSymbol)
	}

	if len(symbol) > MaxSymbolLength {
		return fmt.Errorf("%w: symbol exceeds %d characters", ErrInvalidSymbol, MaxSymbolLength)
	}

	if !symbolRegex.MatchString(symbol) {
		return fmt.Errorf("%w: %q is not an uppercase ticker", ErrInvalidSymbol, symbol)
	}

	return nil
}

// ValidateQuantity validates a requested trade quantity.
func ValidateQuantity(quantity int64) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	if quantity > MaxTradeQuantity {
		return fmt.Errorf("%w: maximum quantity is %d", ErrInvalidQuantity, int64(MaxTradeQuantity))
	}

	return nil
}

// ValidateAccountName validates an account display name.
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidAccountName)
	}

	if len(name) > MaxAccountNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidAccountName, MaxAccountNameLength)
	}

	return nil
}

// ValidatePagination validates and limits pagination parameters.
func ValidatePagination(limit, offset int) (int, int) {
	const MaxPageSize = 1000
	const DefaultPageSize = 50

	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
