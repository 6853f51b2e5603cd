package domain

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestVirtualGoldHolding_ValidateConversion(t *testing.T) {
	holding := &VirtualGoldHolding{
		ID:       1,
		UserID:   10,
		BranchID: 20,
		Quantity: decimal.NewFromInt(10),
	}

	tests := []struct {
		name       string
		quantity   decimal.Decimal
		wantErr    bool
		wantReason string
	}{
		{
			name:     "partial conversion allowed",
			quantity: decimal.NewFromInt(7),
			wantErr:  false,
		},
		{
			name:     "conversion of full balance allowed",
			quantity: decimal.NewFromInt(10),
			wantErr:  false,
		},
		{
			name:       "zero quantity rejected",
			quantity:   decimal.Zero,
			wantErr:    true,
			wantReason: "Invalid gold quantity",
		},
		{
			name:       "negative quantity rejected",
			quantity:   decimal.NewFromInt(-3),
			wantErr:    true,
			wantReason: "Invalid gold quantity",
		},
		{
			name:       "quantity above balance rejected",
			quantity:   decimal.RequireFromString("10.001"),
			wantErr:    true,
			wantReason: "Quantity must be less than 10",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := holding.ValidateConversion(tt.quantity)
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalidGoldQuantity) {
				t.Errorf("expected ErrInvalidGoldQuantity match, got %v", err)
			}
			if err.Error() != tt.wantReason {
				t.Errorf("expected reason %q, got %q", tt.wantReason, err.Error())
			}
		})
	}
}

func TestVirtualGoldHolding_ApplyDebit(t *testing.T) {
	holding := &VirtualGoldHolding{Quantity: decimal.NewFromInt(10)}

	got := holding.ApplyDebit(decimal.NewFromInt(7))
	if !got.Equal(decimal.NewFromInt(3)) {
		t.Errorf("expected 3, got %s", got)
	}

	// ApplyDebit does not mutate the holding
	if !holding.Quantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("expected holding quantity unchanged, got %s", holding.Quantity)
	}
}
