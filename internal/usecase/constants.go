package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database transaction
	// This prevents long-running trades from blocking the account row
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultQuoteTimeout bounds a single quote gateway call
	DefaultQuoteTimeout = 5 * time.Second

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour
)
