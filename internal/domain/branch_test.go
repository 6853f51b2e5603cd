package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestVendorBranch_ValidateDebit(t *testing.T) {
	branch := &VendorBranch{ID: 1, Quantity: decimal.NewFromInt(5)}

	if err := branch.ValidateDebit(decimal.NewFromInt(5)); err != nil {
		t.Errorf("debit of full quantity should be allowed: %v", err)
	}

	err := branch.ValidateDebit(decimal.NewFromInt(6))
	if err == nil {
		t.Fatal("expected error for debit above quantity")
	}
	if !errors.Is(err, ErrInvalidGoldQuantity) {
		t.Errorf("expected ErrInvalidGoldQuantity match, got %v", err)
	}
	if err.Error() != "insufficient gold in the source branch" {
		t.Errorf("unexpected message: %q", err.Error())
	}
}

func TestVendorBranch_TransferConservation(t *testing.T) {
	source := &VendorBranch{ID: 1, Quantity: decimal.NewFromInt(5)}
	dest := &VendorBranch{ID: 2, Quantity: decimal.NewFromInt(3)}

	before := source.Quantity.Add(dest.Quantity)

	q := decimal.NewFromInt(5)
	newSource := source.ApplyDebit(q)
	newDest := dest.ApplyCredit(q)

	if !newSource.Add(newDest).Equal(before) {
		t.Errorf("transfer must conserve total quantity: %s + %s != %s", newSource, newDest, before)
	}
	if !newSource.Equal(decimal.Zero) {
		t.Errorf("expected source 0, got %s", newSource)
	}
	if !newDest.Equal(decimal.NewFromInt(8)) {
		t.Errorf("expected dest 8, got %s", newDest)
	}
}
