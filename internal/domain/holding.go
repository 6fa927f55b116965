package domain

import "github.com/shopspring/decimal"

// Holding is the derived net position for one symbol. It is a materialized
// view over the ledger, never stored: Quantity is the sum of signed entry
// quantities, CostBasis the sum of total amounts across buy entries.
type Holding struct {
	Symbol    string
	Quantity  int64
	CostBasis decimal.Decimal
}

// AggregateHoldings folds a sequence of ledger entries into net holdings.
// Symbols whose net quantity reaches exactly zero are omitted. A negative
// net quantity means the sell-side invariant was breached somewhere upstream
// and fails loudly rather than being silently clamped.
func AggregateHoldings(entries []*Entry) ([]Holding, error) {
	net := make(map[string]int64)
	basis := make(map[string]decimal.Decimal)

	var order []string
	for _, e := range entries {
		if _, seen := net[e.Symbol]; !seen {
			order = append(order, e.Symbol)
			basis[e.Symbol] = decimal.Zero
		}

		net[e.Symbol] += e.Quantity
		if e.Quantity > 0 {
			basis[e.Symbol] = basis[e.Symbol].Add(e.TotalAmount)
		}
	}

	holdings := make([]Holding, 0, len(order))
	for _, symbol := range order {
		qty := net[symbol]
		if qty < 0 {
			return nil, ErrNegativeHolding
		}
		if qty == 0 {
			continue
		}
		holdings = append(holdings, Holding{
			Symbol:    symbol,
			Quantity:  qty,
			CostBasis: basis[symbol],
		})
	}

	return holdings, nil
}
