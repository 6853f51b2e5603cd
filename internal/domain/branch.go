package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorBranch represents a vendor branch holding physical gold inventory.
type VendorBranch struct {
	ID        int64
	VendorID  int64
	AddressID int64
	Quantity  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateDebit checks whether quantity can be moved out of the branch.
func (b *VendorBranch) ValidateDebit(quantity decimal.Decimal) error {
	if b.Quantity.LessThan(quantity) {
		return &InvalidGoldQuantityError{Reason: "insufficient gold in the source branch"}
	}
	return nil
}

// ApplyDebit returns the branch quantity after a debit.
func (b *VendorBranch) ApplyDebit(quantity decimal.Decimal) decimal.Decimal {
	return b.Quantity.Sub(quantity)
}

// ApplyCredit returns the branch quantity after a credit.
func (b *VendorBranch) ApplyCredit(quantity decimal.Decimal) decimal.Decimal {
	return b.Quantity.Add(quantity)
}
