package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Account, error)
	UpdateCash(ctx context.Context, tx Transaction, id string, cash decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

// EntryRepository defines data access for the append-only trade ledger.
type EntryRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.Entry) error
	ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	// HoldingsByAccount aggregates net quantity and cost basis per symbol.
	// Symbols with a net quantity of zero are omitted.
	HoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error)
	// NetQuantity sums signed quantities for one symbol inside tx. Used by
	// sells under the account row lock so the inventory check cannot race
	// with a concurrent trade on the same account.
	NetQuantity(ctx context.Context, tx Transaction, accountID, symbol string) (int64, error)
}

// QuoteService looks up live prices from the external quote gateway.
type QuoteService interface {
	// Lookup returns the current quote for symbol. It fails with
	// domain.ErrUnknownSymbol when the gateway does not know the symbol and
	// domain.ErrPricingUnavailable on transport failures or timeouts.
	Lookup(ctx context.Context, symbol string) (*domain.Quote, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient storage errors such as
// deadlocks and serialization failures. The operation must be safe to
// repeat from scratch.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// ErrCacheMiss is returned by Cache.Get when the key does not exist.
var ErrCacheMiss = errors.New("cache miss")

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
