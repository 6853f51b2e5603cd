package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// BranchResponse represents a vendor branch in API responses.
type BranchResponse struct {
	ID        int64           `json:"id"`
	VendorID  int64           `json:"vendor_id"`
	AddressID int64           `json:"address_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// BranchFromDomain converts a domain branch to a response.
func BranchFromDomain(b *domain.VendorBranch) *BranchResponse {
	return &BranchResponse{
		ID:        b.ID,
		VendorID:  b.VendorID,
		AddressID: b.AddressID,
		Quantity:  b.Quantity,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// BranchesFromDomain converts domain branches to responses.
func BranchesFromDomain(branches []*domain.VendorBranch) []*BranchResponse {
	result := make([]*BranchResponse, len(branches))
	for i, b := range branches {
		result[i] = BranchFromDomain(b)
	}
	return result
}

// TransferResponse represents a committed transfer in API responses.
type TransferResponse struct {
	SourceBranchID      int64           `json:"source_branch_id"`
	DestinationBranchID int64           `json:"destination_branch_id"`
	Quantity            decimal.Decimal `json:"quantity"`
	TransferredAt       time.Time       `json:"transferred_at"`
}

// TransferFromResult converts a transfer result to a response.
func TransferFromResult(r *usecase.TransferResult) *TransferResponse {
	return &TransferResponse{
		SourceBranchID:      r.SourceBranchID,
		DestinationBranchID: r.DestinationBranchID,
		Quantity:            r.Quantity,
		TransferredAt:       r.TransferredAt,
	}
}

// HoldingResponse represents a virtual holding in API responses.
type HoldingResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	BranchID  int64           `json:"branch_id"`
	Quantity  decimal.Decimal `json:"quantity"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// HoldingFromDomain converts a domain holding to a response.
func HoldingFromDomain(h *domain.VirtualGoldHolding) *HoldingResponse {
	return &HoldingResponse{
		ID:        h.ID,
		UserID:    h.UserID,
		BranchID:  h.BranchID,
		Quantity:  h.Quantity,
		CreatedAt: h.CreatedAt,
		UpdatedAt: h.UpdatedAt,
	}
}

// HoldingsFromDomain converts domain holdings to responses.
func HoldingsFromDomain(holdings []*domain.VirtualGoldHolding) []*HoldingResponse {
	result := make([]*HoldingResponse, len(holdings))
	for i, h := range holdings {
		result[i] = HoldingFromDomain(h)
	}
	return result
}

// PhysicalResponse represents a physical gold transaction in API responses.
type PhysicalResponse struct {
	ID                int64           `json:"id"`
	UserID            int64           `json:"user_id"`
	BranchID          int64           `json:"branch_id"`
	DeliveryAddressID int64           `json:"delivery_address_id"`
	Quantity          decimal.Decimal `json:"quantity"`
	CreatedAt         time.Time       `json:"created_at"`
}

// PhysicalFromDomain converts a domain physical transaction to a response.
func PhysicalFromDomain(p *domain.PhysicalGoldTransaction) *PhysicalResponse {
	return &PhysicalResponse{
		ID:                p.ID,
		UserID:            p.UserID,
		BranchID:          p.BranchID,
		DeliveryAddressID: p.DeliveryAddressID,
		Quantity:          p.Quantity,
		CreatedAt:         p.CreatedAt,
	}
}

// PhysicalsFromDomain converts domain physical transactions to responses.
func PhysicalsFromDomain(list []*domain.PhysicalGoldTransaction) []*PhysicalResponse {
	result := make([]*PhysicalResponse, len(list))
	for i, p := range list {
		result[i] = PhysicalFromDomain(p)
	}
	return result
}

// HistoryResponse represents a history record in API responses.
type HistoryResponse struct {
	ID        int64           `json:"id"`
	Reference string          `json:"reference"`
	UserID    int64           `json:"user_id"`
	BranchID  int64           `json:"branch_id"`
	Type      string          `json:"transaction_type"`
	Status    string          `json:"transaction_status"`
	Quantity  decimal.Decimal `json:"quantity"`
	Amount    decimal.Decimal `json:"amount"`
	CreatedAt time.Time       `json:"created_at"`
}

// HistoryFromDomain converts a domain history record to a response.
func HistoryFromDomain(h *domain.TransactionHistory) *HistoryResponse {
	return &HistoryResponse{
		ID:        h.ID,
		Reference: h.Reference,
		UserID:    h.UserID,
		BranchID:  h.BranchID,
		Type:      string(h.Type),
		Status:    string(h.Status),
		Quantity:  h.Quantity,
		Amount:    h.Amount,
		CreatedAt: h.CreatedAt,
	}
}

// HistoriesFromDomain converts domain history records to responses.
func HistoriesFromDomain(records []*domain.TransactionHistory) []*HistoryResponse {
	result := make([]*HistoryResponse, len(records))
	for i, h := range records {
		result[i] = HistoryFromDomain(h)
	}
	return result
}

// ConversionResponse represents a committed conversion in API responses.
type ConversionResponse struct {
	HoldingID         int64             `json:"holding_id"`
	RemainingQuantity decimal.Decimal   `json:"remaining_quantity"`
	Physical          *PhysicalResponse `json:"physical_transaction"`
	History           *HistoryResponse  `json:"history"`
	ConvertedAt       time.Time         `json:"converted_at"`
}

// ConversionFromResult converts a conversion result to a response.
func ConversionFromResult(r *usecase.ConversionResult) *ConversionResponse {
	return &ConversionResponse{
		HoldingID:         r.HoldingID,
		RemainingQuantity: r.RemainingQuantity,
		Physical:          PhysicalFromDomain(r.Physical),
		History:           HistoryFromDomain(r.History),
		ConvertedAt:       r.ConvertedAt,
	}
}

// PaymentResponse represents a payment in API responses.
type PaymentResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Amount    decimal.Decimal `json:"amount"`
	Method    string          `json:"method"`
	Status    string          `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PaymentFromDomain converts a domain payment to a response.
func PaymentFromDomain(p *domain.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Amount:    p.Amount,
		Method:    string(p.Method),
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// PaymentsFromDomain converts domain payments to responses.
func PaymentsFromDomain(payments []*domain.Payment) []*PaymentResponse {
	result := make([]*PaymentResponse, len(payments))
	for i, p := range payments {
		result[i] = PaymentFromDomain(p)
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Timestamp time.Time `json:"timestamp"`
	Error     string    `json:"error"`
	Message   string    `json:"message,omitempty"`
}
