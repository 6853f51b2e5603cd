package usecase

import "time"

const (
	// DefaultTransactionTimeout is the maximum duration for a database
	// transaction. Prevents long-running transactions from blocking rows.
	DefaultTransactionTimeout = 10 * time.Second

	// DefaultListLimit is the page size when the caller does not set one.
	DefaultListLimit = 20

	// MaxListLimit caps the page size.
	MaxListLimit = 100
)
