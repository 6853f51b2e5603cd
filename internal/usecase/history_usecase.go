package usecase

import (
	"context"

	"github.com/auric/goldvault/internal/domain"
)

// HistoryUseCase serves read paths over the append-only transaction
// history. There are no mutating operations; the only writer is the
// conversion path, inside its transaction.
type HistoryUseCase struct {
	historyRepo HistoryRepository
	branchRepo  BranchRepository
	users       UserLookup
}

// NewHistoryUseCase creates a new HistoryUseCase.
func NewHistoryUseCase(historyRepo HistoryRepository, branchRepo BranchRepository, users UserLookup) *HistoryUseCase {
	return &HistoryUseCase{
		historyRepo: historyRepo,
		branchRepo:  branchRepo,
		users:       users,
	}
}

// ListHistoryInput represents input for listing history records.
type ListHistoryInput struct {
	Limit  int
	Offset int
}

// List lists history records with pagination.
func (uc *HistoryUseCase) List(ctx context.Context, input ListHistoryInput) ([]*domain.TransactionHistory, error) {
	if input.Limit <= 0 {
		input.Limit = DefaultListLimit
	}
	if input.Limit > MaxListLimit {
		input.Limit = MaxListLimit
	}
	return uc.historyRepo.List(ctx, input.Limit, input.Offset)
}

// ListByBranch lists history records for a branch. The branch must exist.
func (uc *HistoryUseCase) ListByBranch(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error) {
	if _, err := uc.branchRepo.GetByID(ctx, branchID); err != nil {
		return nil, err
	}

	return uc.historyRepo.ListByBranch(ctx, branchID)
}

// ListByUser lists history records for a user. The user must exist.
func (uc *HistoryUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.historyRepo.ListByUser(ctx, userID)
}

// ListByStatus lists history records with the given status.
func (uc *HistoryUseCase) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error) {
	return uc.historyRepo.ListByStatus(ctx, status)
}

// ListByType lists history records with the given type.
func (uc *HistoryUseCase) ListByType(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error) {
	return uc.historyRepo.ListByType(ctx, typ)
}
