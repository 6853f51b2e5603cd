package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is a reference entity resolved by id. Identity management lives
// outside this service; the ledger only needs the owning user and the
// delivery address snapshot at conversion time.
type User struct {
	ID        int64
	Name      string
	Email     string
	AddressID int64
	CreatedAt time.Time
}

// Vendor is a reference entity. CurrentGoldPrice is the vendor's unit price
// read at the moment of conversion, never locked earlier.
type Vendor struct {
	ID               int64
	Name             string
	CurrentGoldPrice decimal.Decimal
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Address is a reference entity used for branch locations and deliveries.
type Address struct {
	ID         int64
	Street     string
	City       string
	State      string
	Country    string
	PostalCode string
}
