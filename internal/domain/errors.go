package domain

import "errors"

var (
	// Reference lookup errors
	ErrUserNotFound    = errors.New("user not found")
	ErrVendorNotFound  = errors.New("vendor not found")
	ErrAddressNotFound = errors.New("address not found")

	// Ledger entity errors
	ErrBranchNotFound       = errors.New("vendor branch not found")
	ErrHoldingNotFound      = errors.New("virtual gold holding not found")
	ErrPhysicalTxNotFound   = errors.New("physical gold transaction not found")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrHoldingAlreadyExists = errors.New("virtual gold holding already exists for user and branch")

	// Quantity errors
	ErrInvalidGoldQuantity = errors.New("invalid gold quantity")
	ErrSameBranch          = errors.New("cannot transfer to the same branch")

	// Payment errors
	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
)

// InvalidGoldQuantityError carries the caller-facing reason for a rejected
// quantity. It matches ErrInvalidGoldQuantity under errors.Is.
type InvalidGoldQuantityError struct {
	Reason string
}

func (e *InvalidGoldQuantityError) Error() string {
	return e.Reason
}

func (e *InvalidGoldQuantityError) Is(target error) bool {
	return target == ErrInvalidGoldQuantity
}
