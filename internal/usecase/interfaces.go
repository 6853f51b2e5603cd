package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
)

// BranchRepository defines data access for vendor branches.
type BranchRepository interface {
	Create(ctx context.Context, branch *domain.VendorBranch) error
	GetByID(ctx context.Context, id int64) (*domain.VendorBranch, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.VendorBranch, error)
	Update(ctx context.Context, branch *domain.VendorBranch) error
	UpdateQuantity(ctx context.Context, tx Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.VendorBranch, error)
	ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error)
	ListByCity(ctx context.Context, city string) ([]*domain.VendorBranch, error)
	ListByState(ctx context.Context, state string) ([]*domain.VendorBranch, error)
	ListByCountry(ctx context.Context, country string) ([]*domain.VendorBranch, error)
}

// HoldingRepository defines data access for virtual gold holdings.
type HoldingRepository interface {
	Create(ctx context.Context, holding *domain.VirtualGoldHolding) error
	GetByID(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id int64) (*domain.VirtualGoldHolding, error)
	GetByUserAndBranch(ctx context.Context, userID, branchID int64) (*domain.VirtualGoldHolding, error)
	Update(ctx context.Context, holding *domain.VirtualGoldHolding) error
	UpdateQuantity(ctx context.Context, tx Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error
	List(ctx context.Context, limit, offset int) ([]*domain.VirtualGoldHolding, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error)
	ListByUserAndVendor(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error)
}

// PhysicalGoldRepository defines data access for physical gold transactions.
// Records are created inside the conversion transaction and never mutated.
type PhysicalGoldRepository interface {
	Create(ctx context.Context, tx Transaction, pgt *domain.PhysicalGoldTransaction) error
	GetByID(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error)
	ListByBranch(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error)
}

// HistoryRepository defines data access for transaction history.
// Append-only: Create is the only writer and runs inside the owning
// unit of work.
type HistoryRepository interface {
	Create(ctx context.Context, tx Transaction, record *domain.TransactionHistory) error
	List(ctx context.Context, limit, offset int) ([]*domain.TransactionHistory, error)
	ListByBranch(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error)
	ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error)
	ListByType(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error)
}

// PaymentRepository defines data access for payments.
type PaymentRepository interface {
	Create(ctx context.Context, tx Transaction, payment *domain.Payment) error
	GetByID(ctx context.Context, id int64) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error)
	ListByMethod(ctx context.Context, method domain.PaymentMethod) ([]*domain.Payment, error)
}

// UserLookup resolves users by id.
type UserLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// VendorLookup resolves vendors by id.
type VendorLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Vendor, error)
}

// AddressLookup resolves addresses by id.
type AddressLookup interface {
	GetByID(ctx context.Context, id int64) (*domain.Address, error)
}

// PriceSource reads a vendor's current gold unit price. The price is an
// external opaque value read at the moment of conversion.
type PriceSource interface {
	CurrentGoldPrice(ctx context.Context, vendorID int64) (decimal.Decimal, error)
}

// OutboxRepository defines data access for outbox events.
type OutboxRepository interface {
	Create(ctx context.Context, tx Transaction, event *domain.OutboxEvent) error
	GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublished(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublished(ctx context.Context, before time.Time) error
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

// Retrier retries a unit of work on transient database failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique reference strings.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
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
