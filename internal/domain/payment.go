package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentMethod is the instrument used to fund a purchase.
type PaymentMethod string

const (
	PaymentMethodUPI        PaymentMethod = "UPI"
	PaymentMethodCard       PaymentMethod = "CARD"
	PaymentMethodNetBanking PaymentMethod = "NET_BANKING"
)

var validPaymentMethods = map[PaymentMethod]bool{
	PaymentMethodUPI:        true,
	PaymentMethodCard:       true,
	PaymentMethodNetBanking: true,
}

// IsValid checks if the payment method is known.
func (m PaymentMethod) IsValid() bool {
	return validPaymentMethods[m]
}

// PaymentStatus is the settlement status of a payment.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailure PaymentStatus = "FAILURE"
)

// IsValid checks if the payment status is known.
func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPending || s == PaymentStatusSuccess || s == PaymentStatusFailure
}

// Payment records money paid by a user to fund gold purchases.
type Payment struct {
	ID        int64
	UserID    int64
	Amount    decimal.Decimal
	Method    PaymentMethod
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate validates a payment before it is accepted.
func (p *Payment) Validate() error {
	if p.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPaymentAmount
	}

	if !p.Method.IsValid() {
		return ErrInvalidPaymentMethod
	}

	return nil
}
