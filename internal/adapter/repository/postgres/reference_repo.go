package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
)

// UserRepository implements usecase.UserLookup.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT id, name, email, address_id, created_at FROM users WHERE id = $1`

	var user domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.AddressID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}

		return nil, err
	}

	return &user, nil
}

// VendorRepository implements usecase.VendorLookup and usecase.PriceSource.
type VendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository creates a new VendorRepository.
func NewVendorRepository(pool *pgxpool.Pool) *VendorRepository {
	return &VendorRepository{pool: pool}
}

// GetByID retrieves a vendor by ID.
func (r *VendorRepository) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	query := `SELECT id, name, current_gold_price, created_at, updated_at FROM vendors WHERE id = $1`

	var (
		vendor domain.Vendor
		price  pgtype.Numeric
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&vendor.ID,
		&vendor.Name,
		&price,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVendorNotFound
		}

		return nil, err
	}

	vendor.CurrentGoldPrice = numericToDecimal(price)

	return &vendor, nil
}

// CurrentGoldPrice reads the vendor's unit price at the moment of the call.
func (r *VendorRepository) CurrentGoldPrice(ctx context.Context, vendorID int64) (decimal.Decimal, error) {
	query := `SELECT current_gold_price FROM vendors WHERE id = $1`

	var price pgtype.Numeric
	err := r.pool.QueryRow(ctx, query, vendorID).Scan(&price)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrVendorNotFound
		}

		return decimal.Zero, err
	}

	return numericToDecimal(price), nil
}

// AddressRepository implements usecase.AddressLookup.
type AddressRepository struct {
	pool *pgxpool.Pool
}

// NewAddressRepository creates a new AddressRepository.
func NewAddressRepository(pool *pgxpool.Pool) *AddressRepository {
	return &AddressRepository{pool: pool}
}

// GetByID retrieves an address by ID.
func (r *AddressRepository) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	query := `SELECT id, street, city, state, country, postal_code FROM addresses WHERE id = $1`

	var address domain.Address
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&address.ID,
		&address.Street,
		&address.City,
		&address.State,
		&address.Country,
		&address.PostalCode,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAddressNotFound
		}

		return nil, err
	}

	return &address, nil
}
