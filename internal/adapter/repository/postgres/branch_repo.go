package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// BranchRepository implements usecase.BranchRepository.
type BranchRepository struct {
	pool *pgxpool.Pool
}

// NewBranchRepository creates a new BranchRepository.
func NewBranchRepository(pool *pgxpool.Pool) *BranchRepository {
	return &BranchRepository{pool: pool}
}

const branchColumns = `id, vendor_id, address_id, quantity, created_at, updated_at`

// Create inserts a new vendor branch and assigns its id.
func (r *BranchRepository) Create(ctx context.Context, branch *domain.VendorBranch) error {
	query := `
		INSERT INTO vendor_branches (vendor_id, address_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return r.pool.QueryRow(ctx, query,
		branch.VendorID,
		branch.AddressID,
		decimalToNumeric(branch.Quantity),
		branch.CreatedAt,
		branch.UpdatedAt,
	).Scan(&branch.ID)
}

// GetByID retrieves a branch by ID.
func (r *BranchRepository) GetByID(ctx context.Context, id int64) (*domain.VendorBranch, error) {
	query := `SELECT ` + branchColumns + ` FROM vendor_branches WHERE id = $1`

	branch, err := scanBranch(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBranchNotFound
		}

		return nil, err
	}

	return branch, nil
}

// GetByIDForUpdate retrieves a branch by ID with a FOR UPDATE lock.
func (r *BranchRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VendorBranch, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + branchColumns + ` FROM vendor_branches WHERE id = $1 FOR UPDATE`

	branch, err := scanBranch(pgxTx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBranchNotFound
		}

		return nil, err
	}

	return branch, nil
}

// Update overwrites a branch's vendor, address and quantity.
func (r *BranchRepository) Update(ctx context.Context, branch *domain.VendorBranch) error {
	query := `
		UPDATE vendor_branches
		SET vendor_id = $2, address_id = $3, quantity = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		branch.ID,
		branch.VendorID,
		branch.AddressID,
		decimalToNumeric(branch.Quantity),
		branch.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrBranchNotFound
	}

	return nil
}

// UpdateQuantity updates the quantity of a branch within a transaction.
func (r *BranchRepository) UpdateQuantity(ctx context.Context, tx usecase.Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE vendor_branches SET quantity = $2, updated_at = $3 WHERE id = $1`

	_, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(quantity), updatedAt)

	return err
}

// List retrieves branches ordered by id.
func (r *BranchRepository) List(ctx context.Context, limit, offset int) ([]*domain.VendorBranch, error) {
	query := `SELECT ` + branchColumns + ` FROM vendor_branches ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBranches(rows)
}

// ListByVendor retrieves branches owned by a vendor.
func (r *BranchRepository) ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error) {
	query := `SELECT ` + branchColumns + ` FROM vendor_branches WHERE vendor_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBranches(rows)
}

// ListByCity retrieves branches located in a city.
func (r *BranchRepository) ListByCity(ctx context.Context, city string) ([]*domain.VendorBranch, error) {
	return r.listByAddressField(ctx, "city", city)
}

// ListByState retrieves branches located in a state.
func (r *BranchRepository) ListByState(ctx context.Context, state string) ([]*domain.VendorBranch, error) {
	return r.listByAddressField(ctx, "state", state)
}

// ListByCountry retrieves branches located in a country.
func (r *BranchRepository) ListByCountry(ctx context.Context, country string) ([]*domain.VendorBranch, error) {
	return r.listByAddressField(ctx, "country", country)
}

func (r *BranchRepository) listByAddressField(ctx context.Context, field, value string) ([]*domain.VendorBranch, error) {
	query := `
		SELECT b.id, b.vendor_id, b.address_id, b.quantity, b.created_at, b.updated_at
		FROM vendor_branches b
		JOIN addresses a ON a.id = b.address_id
		WHERE a.` + field + ` = $1
		ORDER BY b.id
	`

	rows, err := r.pool.Query(ctx, query, value)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanBranches(rows)
}

func scanBranch(row pgx.Row) (*domain.VendorBranch, error) {
	var (
		branch   domain.VendorBranch
		quantity pgtype.Numeric
	)

	err := row.Scan(
		&branch.ID,
		&branch.VendorID,
		&branch.AddressID,
		&quantity,
		&branch.CreatedAt,
		&branch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	branch.Quantity = numericToDecimal(quantity)

	return &branch, nil
}

func scanBranches(rows pgx.Rows) ([]*domain.VendorBranch, error) {
	var branches []*domain.VendorBranch
	for rows.Next() {
		branch, err := scanBranch(rows)
		if err != nil {
			return nil, err
		}
		branches = append(branches, branch)
	}

	return branches, rows.Err()
}
