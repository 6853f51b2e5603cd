package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
	"github.com/auric/goldvault/internal/usecase/mocks"
)

func seedVendor(vendors *mocks.MockVendorLookup, id int64) {
	vendors.Vendors[id] = &domain.Vendor{
		ID:               id,
		Name:             "Aurum Traders",
		CurrentGoldPrice: decimal.NewFromInt(5000),
	}
}

func seedAddress(addresses *mocks.MockAddressLookup, id int64) {
	addresses.Addresses[id] = &domain.Address{
		ID:      id,
		Street:  "12 Mint Road",
		City:    "Mumbai",
		State:   "Maharashtra",
		Country: "India",
	}
}

func newBranchUseCase(
	branchRepo *mocks.MockBranchRepository,
	historyRepo *mocks.MockHistoryRepository,
	outboxRepo *mocks.MockOutboxRepository,
	vendors *mocks.MockVendorLookup,
	addresses *mocks.MockAddressLookup,
	txMgr *mocks.MockTxManager,
) *usecase.BranchUseCase {
	return usecase.NewBranchUseCase(txMgr, branchRepo, historyRepo, outboxRepo, vendors, addresses, nil, nil)
}

func TestBranchUseCase_CreateBranch(t *testing.T) {
	tests := []struct {
		name        string
		input       usecase.CreateBranchInput
		expectError bool
		errorType   error
	}{
		{
			name:        "successful creation",
			input:       usecase.CreateBranchInput{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(100)},
			expectError: false,
		},
		{
			name:        "zero quantity allowed",
			input:       usecase.CreateBranchInput{VendorID: 1, AddressID: 1, Quantity: decimal.Zero},
			expectError: false,
		},
		{
			name:        "unknown vendor",
			input:       usecase.CreateBranchInput{VendorID: 99, AddressID: 1, Quantity: decimal.NewFromInt(100)},
			expectError: true,
			errorType:   domain.ErrVendorNotFound,
		},
		{
			name:        "unknown address",
			input:       usecase.CreateBranchInput{VendorID: 1, AddressID: 99, Quantity: decimal.NewFromInt(100)},
			expectError: true,
			errorType:   domain.ErrAddressNotFound,
		},
		{
			name:        "negative quantity",
			input:       usecase.CreateBranchInput{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(-1)},
			expectError: true,
			errorType:   domain.ErrInvalidGoldQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			branchRepo := mocks.NewMockBranchRepository()
			vendors := mocks.NewMockVendorLookup()
			addresses := mocks.NewMockAddressLookup()
			seedVendor(vendors, 1)
			seedAddress(addresses, 1)

			uc := newBranchUseCase(branchRepo, mocks.NewMockHistoryRepository(), mocks.NewMockOutboxRepository(), vendors, addresses, mocks.NewMockTxManager())
			branch, err := uc.CreateBranch(context.Background(), tt.input)

			if tt.expectError {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errorType != nil && !errors.Is(err, tt.errorType) {
					t.Errorf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if branch.ID == 0 {
				t.Error("expected assigned branch id")
			}
			if !branch.Quantity.Equal(tt.input.Quantity) {
				t.Errorf("expected quantity %s, got %s", tt.input.Quantity, branch.Quantity)
			}
		})
	}
}

func TestBranchUseCase_ListBranchesByVendor(t *testing.T) {
	branchRepo := mocks.NewMockBranchRepository()
	vendors := mocks.NewMockVendorLookup()
	addresses := mocks.NewMockAddressLookup()
	seedVendor(vendors, 1)
	seedAddress(addresses, 1)

	branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(10)})

	uc := newBranchUseCase(branchRepo, mocks.NewMockHistoryRepository(), mocks.NewMockOutboxRepository(), vendors, addresses, mocks.NewMockTxManager())

	t.Run("vendor with branches", func(t *testing.T) {
		branches, err := uc.ListBranchesByVendor(context.Background(), 1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(branches) != 1 {
			t.Errorf("expected 1 branch, got %d", len(branches))
		}
	})

	t.Run("vendor without branches is not found", func(t *testing.T) {
		_, err := uc.ListBranchesByVendor(context.Background(), 42)
		if !errors.Is(err, domain.ErrBranchNotFound) {
			t.Errorf("expected ErrBranchNotFound, got %v", err)
		}
	})

	t.Run("city without branches is empty, not an error", func(t *testing.T) {
		branches, err := uc.ListBranchesByCity(context.Background(), "Nowhere")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(branches) != 0 {
			t.Errorf("expected empty result, got %d", len(branches))
		}
	})
}

func TestBranchUseCase_UpdateBranch(t *testing.T) {
	branchRepo := mocks.NewMockBranchRepository()
	vendors := mocks.NewMockVendorLookup()
	addresses := mocks.NewMockAddressLookup()
	seedVendor(vendors, 1)
	seedVendor(vendors, 2)
	seedAddress(addresses, 1)

	branch := branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(50)})

	uc := newBranchUseCase(branchRepo, mocks.NewMockHistoryRepository(), mocks.NewMockOutboxRepository(), vendors, addresses, mocks.NewMockTxManager())

	// The quantity overwrite is unconditional, even downward.
	updated, err := uc.UpdateBranch(context.Background(), usecase.UpdateBranchInput{
		BranchID:  branch.ID,
		VendorID:  2,
		AddressID: 1,
		Quantity:  decimal.NewFromInt(5),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.VendorID != 2 {
		t.Errorf("expected vendor 2, got %d", updated.VendorID)
	}
	if !updated.Quantity.Equal(decimal.NewFromInt(5)) {
		t.Errorf("expected quantity 5, got %s", updated.Quantity)
	}

	t.Run("unknown branch", func(t *testing.T) {
		_, err := uc.UpdateBranch(context.Background(), usecase.UpdateBranchInput{
			BranchID: 999, VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(5),
		})
		if !errors.Is(err, domain.ErrBranchNotFound) {
			t.Errorf("expected ErrBranchNotFound, got %v", err)
		}
	})
}

func TestBranchUseCase_Transfer(t *testing.T) {
	newFixture := func(sourceQty, destQty int64) (*usecase.BranchUseCase, *mocks.MockBranchRepository, *mocks.MockOutboxRepository, *mocks.MockTxManager, *domain.VendorBranch, *domain.VendorBranch) {
		branchRepo := mocks.NewMockBranchRepository()
		outboxRepo := mocks.NewMockOutboxRepository()
		txMgr := mocks.NewMockTxManager()
		vendors := mocks.NewMockVendorLookup()
		addresses := mocks.NewMockAddressLookup()
		seedVendor(vendors, 1)
		seedAddress(addresses, 1)

		source := branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(sourceQty)})
		dest := branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(destQty)})

		uc := newBranchUseCase(branchRepo, mocks.NewMockHistoryRepository(), outboxRepo, vendors, addresses, txMgr)
		return uc, branchRepo, outboxRepo, txMgr, source, dest
	}

	t.Run("moves quantity and conserves the total", func(t *testing.T) {
		uc, branchRepo, outboxRepo, txMgr, source, dest := newFixture(100, 20)

		result, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: dest.ID,
			Quantity:            decimal.NewFromInt(30),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Quantity.Equal(decimal.NewFromInt(30)) {
			t.Errorf("expected quantity 30, got %s", result.Quantity)
		}

		gotSource, _ := branchRepo.GetByID(context.Background(), source.ID)
		gotDest, _ := branchRepo.GetByID(context.Background(), dest.ID)
		if !gotSource.Quantity.Equal(decimal.NewFromInt(70)) {
			t.Errorf("expected source 70, got %s", gotSource.Quantity)
		}
		if !gotDest.Quantity.Equal(decimal.NewFromInt(50)) {
			t.Errorf("expected dest 50, got %s", gotDest.Quantity)
		}

		total := gotSource.Quantity.Add(gotDest.Quantity)
		if !total.Equal(decimal.NewFromInt(120)) {
			t.Errorf("total quantity changed: %s", total)
		}

		if !txMgr.LastTx.Committed {
			t.Error("expected transaction commit")
		}
		events := outboxRepo.Events()
		if len(events) != 1 || events[0].EventType != domain.EventTypeBranchTransferred {
			t.Errorf("expected one branch.transferred event, got %v", events)
		}
	})

	t.Run("exact balance drains the source", func(t *testing.T) {
		uc, branchRepo, _, _, source, dest := newFixture(5, 0)

		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: dest.ID,
			Quantity:            decimal.NewFromInt(5),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		gotSource, _ := branchRepo.GetByID(context.Background(), source.ID)
		if !gotSource.Quantity.IsZero() {
			t.Errorf("expected drained source, got %s", gotSource.Quantity)
		}
	})

	t.Run("insufficient balance leaves both untouched", func(t *testing.T) {
		uc, branchRepo, outboxRepo, txMgr, source, dest := newFixture(5, 0)

		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: dest.ID,
			Quantity:            decimal.NewFromInt(6),
		})
		if !errors.Is(err, domain.ErrInvalidGoldQuantity) {
			t.Fatalf("expected ErrInvalidGoldQuantity, got %v", err)
		}

		gotSource, _ := branchRepo.GetByID(context.Background(), source.ID)
		gotDest, _ := branchRepo.GetByID(context.Background(), dest.ID)
		if !gotSource.Quantity.Equal(decimal.NewFromInt(5)) || !gotDest.Quantity.IsZero() {
			t.Errorf("balances changed: source=%s dest=%s", gotSource.Quantity, gotDest.Quantity)
		}
		if txMgr.LastTx.Committed {
			t.Error("expected no commit")
		}
		if !txMgr.LastTx.RolledBack {
			t.Error("expected rollback")
		}
		if len(outboxRepo.Events()) != 0 {
			t.Error("expected no outbox event")
		}
	})

	t.Run("same branch rejected before any work", func(t *testing.T) {
		uc, _, _, txMgr, source, _ := newFixture(5, 0)

		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: source.ID,
			Quantity:            decimal.NewFromInt(1),
		})
		if !errors.Is(err, domain.ErrSameBranch) {
			t.Fatalf("expected ErrSameBranch, got %v", err)
		}
		if txMgr.LastTx != nil {
			t.Error("expected no transaction")
		}
	})

	t.Run("unknown branch aborts the transaction", func(t *testing.T) {
		uc, _, _, txMgr, source, _ := newFixture(5, 0)

		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: 999,
			Quantity:            decimal.NewFromInt(1),
		})
		if !errors.Is(err, domain.ErrBranchNotFound) {
			t.Fatalf("expected ErrBranchNotFound, got %v", err)
		}
		if txMgr.LastTx.Committed {
			t.Error("expected no commit")
		}
	})

	t.Run("locks branches in ascending id order", func(t *testing.T) {
		uc, branchRepo, _, _, source, dest := newFixture(100, 50)

		var order []int64
		branchRepo.GetByIDForUpdateFunc = func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VendorBranch, error) {
			order = append(order, id)
			return branchRepo.GetByID(ctx, id)
		}

		// Transfer from the higher id to the lower one; the lock order must
		// still be ascending.
		if _, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      dest.ID,
			DestinationBranchID: source.ID,
			Quantity:            decimal.NewFromInt(1),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(order) != 2 || order[0] != source.ID || order[1] != dest.ID {
			t.Errorf("expected lock order [%d %d], got %v", source.ID, dest.ID, order)
		}
	})

	t.Run("outbox failure rolls everything back", func(t *testing.T) {
		uc, _, outboxRepo, txMgr, source, dest := newFixture(100, 0)

		injected := errors.New("outbox unavailable")
		outboxRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
			return injected
		}

		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: dest.ID,
			Quantity:            decimal.NewFromInt(10),
		})
		if !errors.Is(err, injected) {
			t.Fatalf("expected injected error, got %v", err)
		}
		if txMgr.LastTx.Committed {
			t.Error("expected no commit")
		}
		if !txMgr.LastTx.RolledBack {
			t.Error("expected rollback")
		}
	})

	t.Run("retrier wraps the operation", func(t *testing.T) {
		branchRepo := mocks.NewMockBranchRepository()
		txMgr := mocks.NewMockTxManager()
		vendors := mocks.NewMockVendorLookup()
		addresses := mocks.NewMockAddressLookup()
		seedVendor(vendors, 1)
		seedAddress(addresses, 1)

		source := branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(10)})
		dest := branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.Zero})

		retrier := &mocks.MockRetrier{}
		uc := usecase.NewBranchUseCase(txMgr, branchRepo, mocks.NewMockHistoryRepository(), mocks.NewMockOutboxRepository(), vendors, addresses, retrier, nil)

		_, err := uc.Transfer(context.Background(), usecase.TransferInput{
			SourceBranchID:      source.ID,
			DestinationBranchID: dest.ID,
			Quantity:            decimal.NewFromInt(1),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if retrier.Calls != 1 {
			t.Errorf("expected 1 retrier call, got %d", retrier.Calls)
		}
	})
}

func TestBranchUseCase_ListBranchTransactions(t *testing.T) {
	branchRepo := mocks.NewMockBranchRepository()
	historyRepo := mocks.NewMockHistoryRepository()
	vendors := mocks.NewMockVendorLookup()
	addresses := mocks.NewMockAddressLookup()

	branch := branchRepo.Seed(&domain.VendorBranch{VendorID: 1, AddressID: 1, Quantity: decimal.NewFromInt(10)})
	_ = historyRepo.Create(context.Background(), nil, &domain.TransactionHistory{
		Reference: "ref-1",
		UserID:    1,
		BranchID:  branch.ID,
		Type:      domain.TransactionTypeConvertToPhysical,
		Status:    domain.TransactionStatusSuccess,
		Quantity:  decimal.NewFromInt(2),
		Amount:    decimal.NewFromInt(10000),
		CreatedAt: time.Now().UTC(),
	})

	uc := newBranchUseCase(branchRepo, historyRepo, mocks.NewMockOutboxRepository(), vendors, addresses, mocks.NewMockTxManager())

	records, err := uc.ListBranchTransactions(context.Background(), branch.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("expected 1 record, got %d", len(records))
	}

	_, err = uc.ListBranchTransactions(context.Background(), 999)
	if !errors.Is(err, domain.ErrBranchNotFound) {
		t.Errorf("expected ErrBranchNotFound, got %v", err)
	}
}
