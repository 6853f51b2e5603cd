package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/infrastructure/metrics"
)

// BranchUseCase handles vendor branch inventory logic.
type BranchUseCase struct {
	txManager   TransactionManager
	branchRepo  BranchRepository
	historyRepo HistoryRepository
	outboxRepo  OutboxRepository
	vendors     VendorLookup
	addresses   AddressLookup
	retrier     Retrier
	metrics     *metrics.Metrics
}

// NewBranchUseCase creates a new BranchUseCase.
func NewBranchUseCase(
	txManager TransactionManager,
	branchRepo BranchRepository,
	historyRepo HistoryRepository,
	outboxRepo OutboxRepository,
	vendors VendorLookup,
	addresses AddressLookup,
	retrier Retrier,
	metrics *metrics.Metrics,
) *BranchUseCase {
	return &BranchUseCase{
		txManager:   txManager,
		branchRepo:  branchRepo,
		historyRepo: historyRepo,
		outboxRepo:  outboxRepo,
		vendors:     vendors,
		addresses:   addresses,
		retrier:     retrier,
		metrics:     metrics,
	}
}

// CreateBranchInput represents input for creating a vendor branch.
type CreateBranchInput struct {
	VendorID  int64
	AddressID int64
	Quantity  decimal.Decimal
}

// CreateBranch creates a new vendor branch after resolving its vendor and
// address references.
func (uc *BranchUseCase) CreateBranch(ctx context.Context, input CreateBranchInput) (*domain.VendorBranch, error) {
	if _, err := uc.vendors.GetByID(ctx, input.VendorID); err != nil {
		return nil, err
	}

	if _, err := uc.addresses.GetByID(ctx, input.AddressID); err != nil {
		return nil, err
	}

	if input.Quantity.IsNegative() {
		return nil, &domain.InvalidGoldQuantityError{Reason: "gold quantity must not be negative"}
	}

	now := time.Now().UTC()
	branch := &domain.VendorBranch{
		VendorID:  input.VendorID,
		AddressID: input.AddressID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.branchRepo.Create(ctx, branch); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.BranchesCreated.Inc()
	}

	return branch, nil
}

// GetBranch retrieves a branch by ID.
func (uc *BranchUseCase) GetBranch(ctx context.Context, id int64) (*domain.VendorBranch, error) {
	return uc.branchRepo.GetByID(ctx, id)
}

// ListBranchesInput represents input for listing branches.
type ListBranchesInput struct {
	Limit  int
	Offset int
}

// ListBranches lists branches with pagination.
func (uc *BranchUseCase) ListBranches(ctx context.Context, input ListBranchesInput) ([]*domain.VendorBranch, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	return uc.branchRepo.List(ctx, input.Limit, input.Offset)
}

// ListBranchesByVendor lists branches owned by a vendor. A vendor with no
// branches is reported as not found.
func (uc *BranchUseCase) ListBranchesByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error) {
	branches, err := uc.branchRepo.ListByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	if len(branches) == 0 {
		return nil, domain.ErrBranchNotFound
	}

	return branches, nil
}

// ListBranchesByCity lists branches located in a city. Empty is fine.
func (uc *BranchUseCase) ListBranchesByCity(ctx context.Context, city string) ([]*domain.VendorBranch, error) {
	return uc.branchRepo.ListByCity(ctx, city)
}

// ListBranchesByState lists branches located in a state.
func (uc *BranchUseCase) ListBranchesByState(ctx context.Context, state string) ([]*domain.VendorBranch, error) {
	return uc.branchRepo.ListByState(ctx, state)
}

// ListBranchesByCountry lists branches located in a country.
func (uc *BranchUseCase) ListBranchesByCountry(ctx context.Context, country string) ([]*domain.VendorBranch, error) {
	return uc.branchRepo.ListByCountry(ctx, country)
}

// ListBranchTransactions lists the transaction history of a branch. The
// branch must exist.
func (uc *BranchUseCase) ListBranchTransactions(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error) {
	if _, err := uc.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	return uc.historyRepo.ListByBranch(ctx, branchID)
}

// UpdateBranchInput represents input for updating a vendor branch.
type UpdateBranchInput struct {
	BranchID  int64
	VendorID  int64
	AddressID int64
	Quantity  decimal.Decimal
}

// UpdateBranch overwrites a branch's vendor, address and quantity. The
// quantity overwrite is unconditional; only transfer enforces balance rules.
func (uc *BranchUseCase) UpdateBranch(ctx context.Context, input UpdateBranchInput) (*domain.VendorBranch, error) {
	branch, err := uc.branchRepo.GetByID(ctx, input.BranchID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.vendors.GetByID(ctx, input.VendorID); err != nil {
		return nil, err
	}

	if _, err := uc.addresses.GetByID(ctx, input.AddressID); err != nil {
		return nil, err
	}

	branch.VendorID = input.VendorID
	branch.AddressID = input.AddressID
	branch.Quantity = input.Quantity
	branch.UpdatedAt = time.Now().UTC()

	if err := uc.branchRepo.Update(ctx, branch); err != nil {
		return nil, err
	}

	return branch, nil
}

// TransferInput represents input for a branch-to-branch gold transfer.
type TransferInput struct {
	SourceBranchID      int64
	DestinationBranchID int64
	Quantity            decimal.Decimal
}

// TransferResult describes a committed transfer.
type TransferResult struct {
	SourceBranchID      int64
	DestinationBranchID int64
	Quantity            decimal.Decimal
	TransferredAt       time.Time
}

// Transfer atomically moves gold quantity between two branches. Both rows
// are locked in ascending id order so concurrent transfers cannot deadlock,
// and both updates commit together or not at all.
func (uc *BranchUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.SourceBranchID == input.DestinationBranchID {
		return nil, domain.ErrSameBranch
	}

	start := time.Now()

	var result *TransferResult
	op := func() error {
		txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
		defer cancel()

		tx, err := uc.txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		first, second := input.SourceBranchID, input.DestinationBranchID
		if second < first {
			first, second = second, first
		}

		locked := make(map[int64]*domain.VendorBranch, 2)
		for _, id := range []int64{first, second} {
			branch, err := uc.branchRepo.GetByIDForUpdate(txCtx, tx, id)
			if err != nil {
				return err
			}
			locked[id] = branch
		}

		source := locked[input.SourceBranchID]
		dest := locked[input.DestinationBranchID]

		if err := source.ValidateDebit(input.Quantity); err != nil {
			return err
		}

		now := time.Now().UTC()

		if err := uc.branchRepo.UpdateQuantity(txCtx, tx, source.ID, source.ApplyDebit(input.Quantity), now); err != nil {
			return err
		}

		if err := uc.branchRepo.UpdateQuantity(txCtx, tx, dest.ID, dest.ApplyCredit(input.Quantity), now); err != nil {
			return err
		}

		event := &domain.OutboxEvent{
			AggregateID:   formatID(source.ID),
			AggregateType: domain.AggregateTypeBranch,
			EventType:     domain.EventTypeBranchTransferred,
			Payload: map[string]any{
				"source_branch_id":      source.ID,
				"destination_branch_id": dest.ID,
				"quantity":              input.Quantity.String(),
			},
			CreatedAt: now,
		}
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return err
		}

		if err := tx.Commit(txCtx); err != nil {
			return err
		}

		result = &TransferResult{
			SourceBranchID:      input.SourceBranchID,
			DestinationBranchID: input.DestinationBranchID,
			Quantity:            input.Quantity,
			TransferredAt:       now,
		}

		return nil
	}

	var err error
	if uc.retrier != nil {
		err = uc.retrier.Retry(ctx, op)
	} else {
		err = op()
	}
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}

// formatID renders an entity id as an outbox aggregate id.
func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
