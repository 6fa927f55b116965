package quote

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/iho/gobroker/internal/domain"
	"github.com/iho/gobroker/internal/usecase"
)

// StaticService serves quotes from a fixed in-memory table. It backs local
// development and demos where no quote gateway is reachable.
type StaticService struct {
	mu     sync.RWMutex
	quotes map[string]domain.Quote
}

// NewStaticService creates a provider pre-loaded with a handful of familiar
// symbols.
func NewStaticService() *StaticService {
	s := &StaticService{quotes: make(map[string]domain.Quote)}

	s.Register("AAPL", "Apple Inc.", decimal.NewFromFloat(150.00))
	s.Register("GOOG", "Alphabet Inc.", decimal.NewFromFloat(140.50))
	s.Register("MSFT", "Microsoft Corporation", decimal.NewFromFloat(310.25))
	s.Register("AMZN", "Amazon.com Inc.", decimal.NewFromFloat(135.75))
	s.Register("NFLX", "Netflix Inc.", decimal.NewFromFloat(485.10))

	return s
}

// Register adds or replaces a quoted symbol.
func (s *StaticService) Register(symbol, name string, price decimal.Decimal) {
	symbol = domain.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.quotes[symbol] = domain.Quote{Symbol: symbol, Name: name, Price: price}
}

func (s *StaticService) Lookup(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	if err := domain.ValidateSymbol(symbol); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	q, ok := s.quotes[symbol]
	if !ok {
		return nil, domain.ErrUnknownSymbol
	}

	quote := q
	return &quote, nil
}

var _ usecase.QuoteService = (*StaticService)(nil)
