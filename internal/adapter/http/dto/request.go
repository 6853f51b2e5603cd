package dto

import (
	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// CreateBranchRequest represents a request to create a vendor branch.
type CreateBranchRequest struct {
	VendorID  int64           `json:"vendor_id"`
	AddressID int64           `json:"address_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateBranchRequest) ToUseCaseInput() usecase.CreateBranchInput {
	return usecase.CreateBranchInput{
		VendorID:  r.VendorID,
		AddressID: r.AddressID,
		Quantity:  r.Quantity,
	}
}

// UpdateBranchRequest represents a request to overwrite a vendor branch.
type UpdateBranchRequest struct {
	VendorID  int64           `json:"vendor_id"`
	AddressID int64           `json:"address_id"`
	Quantity  decimal.Decimal `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateBranchRequest) ToUseCaseInput(branchID int64) usecase.UpdateBranchInput {
	return usecase.UpdateBranchInput{
		BranchID:  branchID,
		VendorID:  r.VendorID,
		AddressID: r.AddressID,
		Quantity:  r.Quantity,
	}
}

// TransferRequest represents a request to move gold between branches.
type TransferRequest struct {
	SourceBranchID      int64           `json:"source_branch_id"`
	DestinationBranchID int64           `json:"destination_branch_id"`
	Quantity            decimal.Decimal `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *TransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		SourceBranchID:      r.SourceBranchID,
		DestinationBranchID: r.DestinationBranchID,
		Quantity:            r.Quantity,
	}
}

// CreateHoldingRequest represents a request to create a virtual holding.
type CreateHoldingRequest struct {
	UserID   int64           `json:"user_id"`
	BranchID int64           `json:"branch_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateHoldingRequest) ToUseCaseInput() usecase.CreateHoldingInput {
	return usecase.CreateHoldingInput{
		UserID:   r.UserID,
		BranchID: r.BranchID,
		Quantity: r.Quantity,
	}
}

// UpdateHoldingRequest represents a request to overwrite a holding.
type UpdateHoldingRequest struct {
	UserID   int64           `json:"user_id"`
	BranchID int64           `json:"branch_id"`
	Quantity decimal.Decimal `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateHoldingRequest) ToUseCaseInput(holdingID int64) usecase.UpdateHoldingInput {
	return usecase.UpdateHoldingInput{
		HoldingID: holdingID,
		UserID:    r.UserID,
		BranchID:  r.BranchID,
		Quantity:  r.Quantity,
	}
}

// ConvertRequest represents a request to convert virtual gold to physical.
type ConvertRequest struct {
	Quantity decimal.Decimal `json:"quantity"`
}

// ToUseCaseInput converts to use case input.
func (r *ConvertRequest) ToUseCaseInput(holdingID int64) usecase.ConvertToPhysicalInput {
	return usecase.ConvertToPhysicalInput{
		HoldingID: holdingID,
		Quantity:  r.Quantity,
	}
}

// CreatePaymentRequest represents a request to record a payment.
type CreatePaymentRequest struct {
	UserID int64           `json:"user_id"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
}

// ToUseCaseInput converts to use case input.
func (r *CreatePaymentRequest) ToUseCaseInput() usecase.CreatePaymentInput {
	return usecase.CreatePaymentInput{
		UserID: r.UserID,
		Amount: r.Amount,
		Method: domain.PaymentMethod(r.Method),
	}
}
