package usecase

import (
	"context"

	"github.com/auric/goldvault/internal/domain"
)

// PhysicalGoldUseCase serves read paths over physical gold transactions.
type PhysicalGoldUseCase struct {
	physicalRepo PhysicalGoldRepository
	branchRepo   BranchRepository
	users        UserLookup
}

// NewPhysicalGoldUseCase creates a new PhysicalGoldUseCase.
func NewPhysicalGoldUseCase(physicalRepo PhysicalGoldRepository, branchRepo BranchRepository, users UserLookup) *PhysicalGoldUseCase {
	return &PhysicalGoldUseCase{
		physicalRepo: physicalRepo,
		branchRepo:   branchRepo,
		users:        users,
	}
}

// GetTransaction retrieves a physical gold transaction by ID.
func (uc *PhysicalGoldUseCase) GetTransaction(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error) {
	return uc.physicalRepo.GetByID(ctx, id)
}

// ListByUser lists physical gold transactions for a user. The user must
// exist.
func (uc *PhysicalGoldUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.physicalRepo.ListByUser(ctx, userID)
}

// ListByBranch lists physical gold transactions for a branch. The branch
// must exist.
func (uc *PhysicalGoldUseCase) ListByBranch(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error) {
	if _, err := uc.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	return uc.physicalRepo.ListByBranch(ctx, branchID)
}
