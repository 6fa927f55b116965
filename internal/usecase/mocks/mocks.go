package mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/usecase"
)

// MockAccountRepository is a mock implementation of AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	CreateFunc           func(ctx context.Context, account *domain.Account) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error)
	UpdateCashFunc       func(ctx context.Context, tx usecase.Transaction, id string, cash decimal.Decimal, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{
		accounts: make(map[string]*domain.Account),
	}
}

func (m *MockAccountRepository) Create(ctx context.Context, account *domain.Account) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if acc, ok := m.accounts[id]; ok {
		return acc, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Account, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockAccountRepository) UpdateCash(ctx context.Context, tx usecase.Transaction, id string, cash decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateCashFunc != nil {
		return m.UpdateCashFunc(ctx, tx, id, cash, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if acc, ok := m.accounts[id]; ok {
		acc.Cash = cash
		acc.Version++
		acc.UpdatedAt = updatedAt
	}
	return nil
}

func (m *MockAccountRepository) List(ctx context.Context, limit, offset int) ([]*domain.Account, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, acc := range m.accounts {
		accounts = append(accounts, acc)
	}
	return accounts, nil
}

// MockEntryRepository is a mock implementation of EntryRepository backed by
// an in-memory append-only slice, so holdings derive from real summation.
type MockEntryRepository struct {
	mu      sync.RWMutex
	entries []*domain.Entry

	CreateFunc            func(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error
	ListByAccountFunc     func(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error)
	HoldingsByAccountFunc func(ctx context.Context, accountID string) ([]domain.Holding, error)
	NetQuantityFunc       func(ctx context.Context, tx usecase.Transaction, accountID, symbol string) (int64, error)
}

func NewMockEntryRepository() *MockEntryRepository {
	return &MockEntryRepository{}
}

func (m *MockEntryRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.Entry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockEntryRepository) ListByAccount(ctx context.Context, accountID string, limit, offset int) ([]*domain.Entry, error) {
	if m.ListByAccountFunc != nil {
		return m.ListByAccountFunc(ctx, accountID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []*domain.Entry
	for _, e := range m.entries {
		if e.AccountID == accountID {
			result = append(result, e)
		}
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (m *MockEntryRepository) HoldingsByAccount(ctx context.Context, accountID string) ([]domain.Holding, error) {
	if m.HoldingsByAccountFunc != nil {
		return m.HoldingsByAccountFunc(ctx, accountID)
	}
	entries, err := m.ListByAccount(ctx, accountID, 0, 0)
	if err != nil {
		return nil, err
	}
	return domain.AggregateHoldings(entries)
}

func (m *MockEntryRepository) NetQuantity(ctx context.Context, tx usecase.Transaction, accountID, symbol string) (int64, error) {
	if m.NetQuantityFunc != nil {
		return m.NetQuantityFunc(ctx, tx, accountID, symbol)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var net int64
	for _, e := range m.entries {
		if e.AccountID == accountID && e.Symbol == symbol {
			net += e.Quantity
		}
	}
	return net, nil
}

// Entries returns a copy of all recorded entries.
func (m *MockEntryRepository) Entries() []*domain.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	copied := make([]*domain.Entry, len(m.entries))
	copy(copied, m.entries)
	return copied
}

// MockQuoteService is a mock implementation of QuoteService.
type MockQuoteService struct {
	mu     sync.RWMutex
	quotes map[string]*domain.Quote

	LookupFunc func(ctx context.Context, symbol string) (*domain.Quote, error)
}

func NewMockQuoteService() *MockQuoteService {
	return &MockQuoteService{
		quotes: make(map[string]*domain.Quote),
	}
}

// SetQuote registers a static quote for symbol.
func (m *MockQuoteService) SetQuote(symbol, name string, price decimal.Decimal) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quotes[symbol] = &domain.Quote{Symbol: symbol, Name: name, Price: price}
}

func (m *MockQuoteService) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	if m.LookupFunc != nil {
		return m.LookupFunc(ctx, symbol)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if q, ok := m.quotes[symbol]; ok {
		return q, nil
	}
	return nil, domain.ErrUnknownSymbol
}

// MockTransaction is a mock implementation of Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error

	Committed  bool
	RolledBack bool
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	m.Committed = true
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	if !m.Committed {
		m.RolledBack = true
	}
	return nil
}

// MockTransactionManager is a mock implementation of TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)

	LastTx *MockTransaction
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	m.LastTx = &MockTransaction{}
	return m.LastTx, nil
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return fmt.Sprintf("mock-id-%d", m.counter)
}
