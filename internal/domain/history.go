package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a quantity-affecting event.
type TransactionType string

const (
	TransactionTypeConvertToPhysical TransactionType = "CONVERT_TO_PHYSICAL"
	TransactionTypeTransfer          TransactionType = "TRANSFER"
	TransactionTypeBuy               TransactionType = "BUY"
	TransactionTypeSell              TransactionType = "SELL"
)

var validTransactionTypes = map[TransactionType]bool{
	TransactionTypeConvertToPhysical: true,
	TransactionTypeTransfer:          true,
	TransactionTypeBuy:               true,
	TransactionTypeSell:              true,
}

// IsValid checks if the transaction type is known.
func (t TransactionType) IsValid() bool {
	return validTransactionTypes[t]
}

// TransactionStatus is the terminal status of a recorded event.
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "SUCCESS"
	TransactionStatusFailure TransactionStatus = "FAILURE"
)

// IsValid checks if the transaction status is known.
func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusSuccess || s == TransactionStatusFailure
}

// TransactionHistory is one immutable record of a quantity-affecting event.
// Amount is quantity multiplied by the vendor's gold price at event time.
// Reference is a ULID assigned at write time.
type TransactionHistory struct {
	ID        int64
	Reference string
	UserID    int64
	BranchID  int64
	Type      TransactionType
	Status    TransactionStatus
	Quantity  decimal.Decimal
	Amount    decimal.Decimal
	CreatedAt time.Time
}
