package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
)

// PortfolioUseCase derives holdings, history, and valuations from the
// ledger. All operations are read-only and idempotent; a valuation racing a
// concurrent trade may observe either side of it, which is acceptable since
// valuations are advisory.
type PortfolioUseCase struct {
	accountRepo AccountRepository
	entryRepo   EntryRepository
	quotes      QuoteService
}

// NewPortfolioUseCase creates a new PortfolioUseCase.
func NewPortfolioUseCase(accountRepo AccountRepository, entryRepo EntryRepository, quotes QuoteService) *PortfolioUseCase {
	return &PortfolioUseCase{
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		quotes:      quotes,
	}
}

// Holdings returns the account's current net position per symbol.
func (uc *PortfolioUseCase) Holdings(ctx context.Context, accountID string) ([]domain.Holding, error) {
	if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	return uc.entryRepo.HoldingsByAccount(ctx, accountID)
}

// Valuate prices every held symbol at its live quote and sums with cash.
// A failed quote fails the whole valuation: silently omitting a holding
// would understate total value.
func (uc *PortfolioUseCase) Valuate(ctx context.Context, accountID string) (*domain.Valuation, error) {
	account, err := uc.accountRepo.GetByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	holdings, err := uc.entryRepo.HoldingsByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	valuation := &domain.Valuation{
		AccountID:  account.ID,
		Cash:       account.Cash,
		Positions:  make([]domain.Position, 0, len(holdings)),
		TotalValue: account.Cash,
		AsOf:       time.Now().UTC(),
	}

	for _, h := range holdings {
		quoteCtx, cancel := context.WithTimeout(ctx, DefaultQuoteTimeout)
		quote, err := uc.quotes.Lookup(quoteCtx, h.Symbol)
		cancel()
		if err != nil {
			return nil, err
		}

		value := quote.Price.Mul(decimal.NewFromInt(h.Quantity))
		valuation.Positions = append(valuation.Positions, domain.Position{
			Symbol:    h.Symbol,
			Name:      quote.Name,
			Quantity:  h.Quantity,
			Price:     quote.Price,
			Value:     value,
			CostBasis: h.CostBasis,
		})
		valuation.TotalValue = valuation.TotalValue.Add(value)
	}

	return valuation, nil
}

// HistoryInput represents input for listing ledger entries.
type HistoryInput struct {
	AccountID string
	Limit     int
	Offset    int
}

// History lists the account's ledger entries in insertion order.
func (uc *PortfolioUseCase) History(ctx context.Context, input HistoryInput) ([]*domain.Entry, error) {
	if _, err := uc.accountRepo.GetByID(ctx, input.AccountID); err != nil {
		return nil, err
	}

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.entryRepo.ListByAccount(ctx, input.AccountID, limit, offset)
}
