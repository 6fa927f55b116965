package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/infrastructure/metrics"
)

// TradeUseCase validates and executes buy/sell intents against the ledger.
// Each trade runs as one database transaction scoped to a single account:
// the account row is locked first, then inventory and funds checks, the
// ledger append, and the cash update all happen under that lock. A rejected
// trade leaves the ledger and cash untouched.
type TradeUseCase struct {
	txManager   TransactionManager
	accountRepo AccountRepository
	entryRepo   EntryRepository
	quotes      QuoteService
	idGen       IDGenerator
	metrics     *metrics.Metrics
	retrier     Retrier
}

// NewTradeUseCase creates a new TradeUseCase. metrics may be nil.
func NewTradeUseCase(
	txManager TransactionManager,
	accountRepo AccountRepository,
	entryRepo EntryRepository,
	quotes QuoteService,
	idGen IDGenerator,
	m *metrics.Metrics,
) *TradeUseCase {
	return &TradeUseCase{
		txManager:   txManager,
		accountRepo: accountRepo,
		entryRepo:   entryRepo,
		quotes:      quotes,
		idGen:       idGen,
		metrics:     m,
	}
}

// WithRetrier re-runs the transactional section of each trade through r when
// the database reports a deadlock or serialization failure.
func (uc *TradeUseCase) WithRetrier(r Retrier) *TradeUseCase {
	uc.retrier = r
	return uc
}

// TradeInput represents a buy or sell intent.
type TradeInput struct {
	AccountID string
	Symbol    string
	Quantity  int64
}

// Buy purchases quantity shares of symbol at the current quoted price.
func (uc *TradeUseCase) Buy(ctx context.Context, input TradeInput) (*domain.Receipt, error) {
	start := time.Now()

	receipt, err := uc.execute(ctx, input, domain.SideBuy)
	uc.record(domain.SideBuy, time.Since(start), err)

	return receipt, err
}

// Sell disposes of quantity shares of symbol at the current quoted price.
// Proceeds are proportional to the quantity sold, never the full holding.
func (uc *TradeUseCase) Sell(ctx context.Context, input TradeInput) (*domain.Receipt, error) {
	start := time.Now()

	receipt, err := uc.execute(ctx, input, domain.SideSell)
	uc.record(domain.SideSell, time.Since(start), err)

	return receipt, err
}

func (uc *TradeUseCase) execute(ctx context.Context, input TradeInput, side domain.Side) (*domain.Receipt, error) {
	// 1. Validate inputs before touching any collaborator.
	if err := domain.ValidateQuantity(input.Quantity); err != nil {
		return nil, err
	}

	symbol := domain.NormalizeSymbol(input.Symbol)
	if err := domain.ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	// 2. For sells, check the position before pricing. This is advisory
	// only; the authoritative re-check happens under the account lock.
	if side == domain.SideSell {
		if err := uc.checkPosition(ctx, input.AccountID, symbol, input.Quantity); err != nil {
			return nil, err
		}
	}

	// 3. Price the trade. The gateway is authoritative; an unknown symbol is
	// surfaced as-is, transport failures as ErrPricingUnavailable.
	quoteCtx, cancel := context.WithTimeout(ctx, DefaultQuoteTimeout)
	defer cancel()

	quote, err := uc.quotes.Lookup(quoteCtx, symbol)
	if err != nil {
		return nil, err
	}

	if !quote.Price.IsPositive() {
		return nil, domain.ErrPricingUnavailable
	}

	total := quote.Price.Mul(decimal.NewFromInt(input.Quantity))

	// 4. Commit under one transaction with the account row locked. The
	// whole transaction is re-run on deadlock or serialization failure.
	var receipt *domain.Receipt

	run := func() error {
		r, err := uc.executeTx(ctx, input, side, symbol, quote.Price, total)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	}

	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, run)
	} else {
		err = run()
	}
	if err != nil {
		return nil, err
	}

	return receipt, nil
}

func (uc *TradeUseCase) executeTx(ctx context.Context, input TradeInput, side domain.Side, symbol string, price, total decimal.Decimal) (*domain.Receipt, error) {
	txCtx, cancelTx := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancelTx()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(txCtx)

	account, err := uc.accountRepo.GetByIDForUpdate(txCtx, tx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.Cash.IsNegative() {
		return nil, domain.ErrNegativeCash
	}

	now := time.Now().UTC()

	var entry *domain.Entry
	var cashAfter decimal.Decimal

	switch side {
	case domain.SideBuy:
		if err := account.ValidateDebit(total); err != nil {
			return nil, err
		}

		cashAfter = account.ApplyDebit(total)
		entry = &domain.Entry{
			ID:          uc.idGen.Generate(),
			AccountID:   account.ID,
			Symbol:      symbol,
			Quantity:    input.Quantity,
			UnitPrice:   price,
			TotalAmount: total,
			CreatedAt:   now,
		}

	case domain.SideSell:
		held, err := uc.entryRepo.NetQuantity(txCtx, tx, account.ID, symbol)
		if err != nil {
			return nil, err
		}

		if held < 0 {
			return nil, domain.ErrNegativeHolding
		}

		if held == 0 {
			return nil, domain.ErrNoSuchHolding
		}

		if input.Quantity > held {
			return nil, domain.ErrInsufficientShares
		}

		cashAfter = account.ApplyCredit(total)
		entry = &domain.Entry{
			ID:          uc.idGen.Generate(),
			AccountID:   account.ID,
			Symbol:      symbol,
			Quantity:    -input.Quantity,
			UnitPrice:   price,
			TotalAmount: total.Neg(),
			CreatedAt:   now,
		}
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(txCtx, tx, entry); err != nil {
		return nil, err
	}

	if cashAfter.IsNegative() {
		return nil, domain.ErrNegativeCash
	}

	if err := uc.accountRepo.UpdateCash(txCtx, tx, account.ID, cashAfter, now); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	return &domain.Receipt{
		EntryID:     entry.ID,
		AccountID:   account.ID,
		Side:        side,
		Symbol:      symbol,
		Quantity:    input.Quantity,
		UnitPrice:   price,
		TotalAmount: entry.TotalAmount,
		CashAfter:   cashAfter,
		ExecutedAt:  now,
	}, nil
}

func (uc *TradeUseCase) checkPosition(ctx context.Context, accountID, symbol string, quantity int64) error {
	holdings, err := uc.entryRepo.HoldingsByAccount(ctx, accountID)
	if err != nil {
		return err
	}

	for _, h := range holdings {
		if h.Symbol != symbol {
			continue
		}
		if quantity > h.Quantity {
			return domain.ErrInsufficientShares
		}
		return nil
	}

	return domain.ErrNoSuchHolding
}

func (uc *TradeUseCase) record(side domain.Side, elapsed time.Duration, err error) {
	if uc.metrics == nil {
		return
	}

	if err != nil {
		uc.metrics.TradesRejected.WithLabelValues(string(side)).Inc()
		return
	}

	uc.metrics.TradesExecuted.WithLabelValues(string(side)).Inc()
	uc.metrics.TradeDuration.Observe(elapsed.Seconds())
}
