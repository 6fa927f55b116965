package domain

import "github.com/shopspring/decimal"

// Quote is a point-in-time price for a ticker symbol as reported by the
// external quote gateway. Prices are authoritative and uncached at this
// layer; callers decide whether to cache.
type Quote struct {
	Symbol string
	Name   string
	Price  decimal.Decimal
}
