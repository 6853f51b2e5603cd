package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VirtualGoldHolding represents a user's claim on a vendor branch's
// virtual gold inventory.
type VirtualGoldHolding struct {
	ID        int64
	UserID    int64
	BranchID  int64
	Quantity  decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateConversion checks whether quantity can be converted out of the
// holding. A conversion of the full balance is allowed.
func (h *VirtualGoldHolding) ValidateConversion(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return &InvalidGoldQuantityError{Reason: "Invalid gold quantity"}
	}

	if h.Quantity.LessThan(quantity) {
		return &InvalidGoldQuantityError{Reason: "Quantity must be less than " + h.Quantity.String()}
	}

	return nil
}

// ApplyDebit returns the holding quantity after a conversion debit.
func (h *VirtualGoldHolding) ApplyDebit(quantity decimal.Decimal) decimal.Decimal {
	return h.Quantity.Sub(quantity)
}
