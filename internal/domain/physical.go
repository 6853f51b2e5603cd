package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PhysicalGoldTransaction records gold converted out of virtual form for
// physical delivery. Created exactly once per successful conversion and
// immutable thereafter. DeliveryAddressID is a snapshot of the user's
// address at conversion time.
type PhysicalGoldTransaction struct {
	ID                int64
	UserID            int64
	BranchID          int64
	DeliveryAddressID int64
	Quantity          decimal.Decimal
	CreatedAt         time.Time
}
