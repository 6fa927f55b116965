package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/infrastructure/postgres/generated"
	"github.com/iho/gobroker/internal/usecase"
)

// EntryRepository implements usecase.EntryRepository over the append-only
// transactions table.
type EntryRepository struct {
	pool    *pgxpool.Pool
	queries *generated.Queries
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		queries: generated.New(pool),
	}
}

// Create appends a new ledger entry inside tx.
func (r *EntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	_, err := queries.CreateTransaction(ctx, generated.CreateTransactionParams{
		ID:          entry.ID,
		AccountID:   entry.AccountID,
		Symbol:      entry.Symbol,
		Quantity:    entry.Quantity,
		UnitPrice:   decimalToNumeric(entry.UnitPrice),
		TotalAmount: decimalToNumeric(entry.TotalAmount),
		CreatedAt:   timeToPgTimestamptz(entry.CreatedAt),
	})

	return err
}

// ListByAccount retrieves ledger entries in insertion order.
func (r *EntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	rows, err := r.queries.GetTransactionsByAccount(ctx, generated.GetTransactionsByAccountParams{
		AccountID: accountID,
		Limit:     int32(limit),
		Offset:    int32(offset),
	})
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, rowToEntry(row))
	}

	return entries, nil
}

// HoldingsByAccount aggregates net quantity and cost basis per symbol by
// summation over the ledger. A negative aggregate means the sell-side
// invariant was breached and is surfaced, never clamped.
func (r *EntryRepository) HoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error) {
	rows, err := r.queries.GetHoldingsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	holdings := make([]domain.Holding, 0, len(rows))
	for _, row := range rows {
		if row.Quantity < 0 {
			return nil, fmt.Errorf("%w: %s has net quantity %d", domain.ErrNegativeHolding, row.Symbol, row.Quantity)
		}

		holdings = append(holdings, domain.Holding{
			Symbol:    row.Symbol,
			Quantity:  row.Quantity,
			CostBasis: numericToDecimal(row.CostBasis),
		})
	}

	return holdings, nil
}

// NetQuantity sums signed quantities for one symbol inside tx.
func (r *EntryRepository) NetQuantity(ctx context.Context, tx usecase.Transaction, accountID, symbol string) (int64, error) {
	pgxTx := tx.(*Tx).PgxTx()
	queries := generated.New(pgxTx)

	return queries.GetNetQuantity(ctx, generated.GetNetQuantityParams{
		AccountID: accountID,
		Symbol:    symbol,
	})
}

func rowToEntry(row generated.Transaction) *domain.Entry {
	return &domain.Entry{
		ID:          row.ID,
		AccountID:   row.AccountID,
		Symbol:      row.Symbol,
		Quantity:    row.Quantity,
		UnitPrice:   numericToDecimal(row.UnitPrice),
		TotalAmount: numericToDecimal(row.TotalAmount),
		CreatedAt:   row.CreatedAt.Time,
	}
}
