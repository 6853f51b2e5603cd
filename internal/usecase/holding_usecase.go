package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/infrastructure/metrics"
)

// HoldingUseCase handles virtual gold holding logic, including the
// conversion of virtual gold into a physical delivery.
type HoldingUseCase struct {
	txManager    TransactionManager
	holdingRepo  HoldingRepository
	branchRepo   BranchRepository
	physicalRepo PhysicalGoldRepository
	historyRepo  HistoryRepository
	outboxRepo   OutboxRepository
	users        UserLookup
	vendors      VendorLookup
	prices       PriceSource
	idGen        IDGenerator
	retrier      Retrier
	metrics      *metrics.Metrics
}

// NewHoldingUseCase creates a new HoldingUseCase.
func NewHoldingUseCase(
	txManager TransactionManager,
	holdingRepo HoldingRepository,
	branchRepo BranchRepository,
	physicalRepo PhysicalGoldRepository,
	historyRepo HistoryRepository,
	outboxRepo OutboxRepository,
	users UserLookup,
	vendors VendorLookup,
	prices PriceSource,
	idGen IDGenerator,
	retrier Retrier,
	metrics *metrics.Metrics,
) *HoldingUseCase {
	return &HoldingUseCase{
		txManager:    txManager,
		holdingRepo:  holdingRepo,
		branchRepo:   branchRepo,
		physicalRepo: physicalRepo,
		historyRepo:  historyRepo,
		outboxRepo:   outboxRepo,
		users:        users,
		vendors:      vendors,
		prices:       prices,
		idGen:        idGen,
		retrier:      retrier,
		metrics:      metrics,
	}
}

// CreateHoldingInput represents input for creating a holding.
type CreateHoldingInput struct {
	UserID   int64
	BranchID int64
	Quantity decimal.Decimal
}

// CreateHolding creates a new virtual gold holding. A user may hold at most
// one holding per branch.
func (uc *HoldingUseCase) CreateHolding(ctx context.Context, input CreateHoldingInput) (*domain.VirtualGoldHolding, error) {
	if _, err := uc.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	if _, err := uc.branchRepo.GetByID(ctx, input.BranchID); err != nil {
		return nil, err
	}

	existing, err := uc.holdingRepo.GetByUserAndBranch(ctx, input.UserID, input.BranchID)
	if err != nil && !errors.Is(err, domain.ErrHoldingNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrHoldingAlreadyExists
	}

	now := time.Now().UTC()
	holding := &domain.VirtualGoldHolding{
		UserID:    input.UserID,
		BranchID:  input.BranchID,
		Quantity:  input.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.holdingRepo.Create(ctx, holding); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.HoldingsCreated.Inc()
	}

	return holding, nil
}

// GetHolding retrieves a holding by ID.
func (uc *HoldingUseCase) GetHolding(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error) {
	return uc.holdingRepo.GetByID(ctx, id)
}

// ListHoldingsInput represents input for listing holdings.
type ListHoldingsInput struct {
	Limit  int
	Offset int
}

// ListHoldings lists holdings with pagination.
func (uc *HoldingUseCase) ListHoldings(ctx context.Context, input ListHoldingsInput) ([]*domain.VirtualGoldHolding, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	return uc.holdingRepo.List(ctx, input.Limit, input.Offset)
}

// ListHoldingsByUser lists a user's holdings. The user must exist; an
// existing user with no holdings gets an empty list.
func (uc *HoldingUseCase) ListHoldingsByUser(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.holdingRepo.ListByUser(ctx, userID)
}

// ListHoldingsByUserAndVendor lists a user's holdings at a vendor's
// branches. The user is resolved first, then the vendor.
func (uc *HoldingUseCase) ListHoldingsByUserAndVendor(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := uc.vendors.GetByID(ctx, vendorID); err != nil {
		return nil, err
	}

	return uc.holdingRepo.ListByUserAndVendor(ctx, userID, vendorID)
}

// UpdateHoldingInput represents input for updating a holding.
type UpdateHoldingInput struct {
	HoldingID int64
	UserID    int64
	BranchID  int64
	Quantity  decimal.Decimal
}

// UpdateHolding overwrites a holding's user, branch and quantity.
func (uc *HoldingUseCase) UpdateHolding(ctx context.Context, input UpdateHoldingInput) (*domain.VirtualGoldHolding, error) {
	if _, err := uc.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	if _, err := uc.branchRepo.GetByID(ctx, input.BranchID); err != nil {
		return nil, err
	}

	holding, err := uc.holdingRepo.GetByID(ctx, input.HoldingID)
	if err != nil {
		return nil, err
	}

	holding.UserID = input.UserID
	holding.BranchID = input.BranchID
	holding.Quantity = input.Quantity
	holding.UpdatedAt = time.Now().UTC()

	if err := uc.holdingRepo.Update(ctx, holding); err != nil {
		return nil, err
	}

	return holding, nil
}

// ConvertToPhysicalInput represents input for converting virtual gold into
// a physical delivery.
type ConvertToPhysicalInput struct {
	HoldingID int64
	Quantity  decimal.Decimal
}

// ConversionResult describes a committed conversion.
type ConversionResult struct {
	HoldingID         int64
	RemainingQuantity decimal.Decimal
	Physical          *domain.PhysicalGoldTransaction
	History           *domain.TransactionHistory
	ConvertedAt       time.Time
}

// ConvertToPhysical converts quantity of a virtual holding into a physical
// gold transaction in a single unit of work: the holding debit, the physical
// transaction, the history record and the outbox event all commit together
// or not at all. The vendor price is read inside the transaction, at the
// moment of conversion.
func (uc *HoldingUseCase) ConvertToPhysical(ctx context.Context, input ConvertToPhysicalInput) (*ConversionResult, error) {
	start := time.Now()

	var result *ConversionResult
	op := func() error {
		txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
		defer cancel()

		tx, err := uc.txManager.Begin(txCtx)
		if err != nil {
			return err
		}
		defer func() { _ = tx.Rollback(txCtx) }()

		holding, err := uc.holdingRepo.GetByIDForUpdate(txCtx, tx, input.HoldingID)
		if err != nil {
			return err
		}

		if err := holding.ValidateConversion(input.Quantity); err != nil {
			return err
		}

		now := time.Now().UTC()
		remaining := holding.ApplyDebit(input.Quantity)

		if err := uc.holdingRepo.UpdateQuantity(txCtx, tx, holding.ID, remaining, now); err != nil {
			return err
		}

		user, err := uc.users.GetByID(txCtx, holding.UserID)
		if err != nil {
			return err
		}

		physical := &domain.PhysicalGoldTransaction{
			UserID:            holding.UserID,
			BranchID:          holding.BranchID,
			DeliveryAddressID: user.AddressID,
			Quantity:          input.Quantity,
			CreatedAt:         now,
		}
		if err := uc.physicalRepo.Create(txCtx, tx, physical); err != nil {
			return err
		}

		branch, err := uc.branchRepo.GetByID(txCtx, holding.BranchID)
		if err != nil {
			return err
		}

		price, err := uc.prices.CurrentGoldPrice(txCtx, branch.VendorID)
		if err != nil {
			return err
		}

		record := &domain.TransactionHistory{
			Reference: uc.idGen.Generate(),
			UserID:    holding.UserID,
			BranchID:  holding.BranchID,
			Type:      domain.TransactionTypeConvertToPhysical,
			Status:    domain.TransactionStatusSuccess,
			Quantity:  input.Quantity,
			Amount:    input.Quantity.Mul(price),
			CreatedAt: now,
		}
		if err := uc.historyRepo.Create(txCtx, tx, record); err != nil {
			return err
		}

		event := &domain.OutboxEvent{
			AggregateID:   formatID(holding.ID),
			AggregateType: domain.AggregateTypeHolding,
			EventType:     domain.EventTypeHoldingConverted,
			Payload: map[string]any{
				"holding_id":              holding.ID,
				"user_id":                 holding.UserID,
				"branch_id":               holding.BranchID,
				"quantity":                input.Quantity.String(),
				"amount":                  record.Amount.String(),
				"physical_transaction_id": physical.ID,
				"delivery_address_id":     physical.DeliveryAddressID,
			},
			CreatedAt: now,
		}
		if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
			return err
		}

		if err := tx.Commit(txCtx); err != nil {
			return err
		}

		result = &ConversionResult{
			HoldingID:         holding.ID,
			RemainingQuantity: remaining,
			Physical:          physical,
			History:           record,
			ConvertedAt:       now,
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
		uc.metrics.ConversionsCreated.Inc()
		uc.metrics.ConversionDuration.Observe(time.Since(start).Seconds())
	}

	return result, nil
}
