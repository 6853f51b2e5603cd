package domain

import "time"

// Event types
const (
	EventTypeBranchTransferred = "branch.transferred"
	EventTypeHoldingConverted  = "holding.converted"
	EventTypePaymentCreated    = "payment.created"
)

// Aggregate types
const (
	AggregateTypeBranch  = "branch"
	AggregateTypeHolding = "holding"
	AggregateTypePayment = "payment"
)

// OutboxEvent represents an event to be published after its owning
// transaction commits.
type OutboxEvent struct {
	ID            string
	AggregateID   string
	AggregateType string
	EventType     string
	Payload       map[string]any
	CreatedAt     time.Time
	PublishedAt   *time.Time
	Published     bool
}

// BranchTransferredEvent payload
type BranchTransferredEvent struct {
	SourceBranchID      int64  `json:"source_branch_id"`
	DestinationBranchID int64  `json:"destination_branch_id"`
	Quantity            string `json:"quantity"`
}

// HoldingConvertedEvent payload
type HoldingConvertedEvent struct {
	HoldingID         int64  `json:"holding_id"`
	UserID            int64  `json:"user_id"`
	BranchID          int64  `json:"branch_id"`
	Quantity          string `json:"quantity"`
	Amount            string `json:"amount"`
	PhysicalTxID      int64  `json:"physical_transaction_id"`
	DeliveryAddressID int64  `json:"delivery_address_id"`
}

// PaymentCreatedEvent payload
type PaymentCreatedEvent struct {
	PaymentID int64  `json:"payment_id"`
	UserID    int64  `json:"user_id"`
	Amount    string `json:"amount"`
	Method    string `json:"method"`
}
