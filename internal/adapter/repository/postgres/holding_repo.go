package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

const pgErrUniqueViolation = "23505"

// HoldingRepository implements usecase.HoldingRepository.
type HoldingRepository struct {
	pool *pgxpool.Pool
}

// NewHoldingRepository creates a new HoldingRepository.
func NewHoldingRepository(pool *pgxpool.Pool) *HoldingRepository {
	return &HoldingRepository{pool: pool}
}

const holdingColumns = `id, user_id, branch_id, quantity, created_at, updated_at`

// Create inserts a new holding and assigns its id. The unique constraint on
// (user_id, branch_id) backs up the duplicate check done by the use case.
func (r *HoldingRepository) Create(ctx context.Context, holding *domain.VirtualGoldHolding) error {
	query := `
		INSERT INTO virtual_gold_holdings (user_id, branch_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		holding.UserID,
		holding.BranchID,
		decimalToNumeric(holding.Quantity),
		holding.CreatedAt,
		holding.UpdatedAt,
	).Scan(&holding.ID)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgErrUniqueViolation {
		return domain.ErrHoldingAlreadyExists
	}

	return err
}

// GetByID retrieves a holding by ID.
func (r *HoldingRepository) GetByID(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error) {
	query := `SELECT ` + holdingColumns + ` FROM virtual_gold_holdings WHERE id = $1`

	holding, err := scanHolding(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHoldingNotFound
		}

		return nil, err
	}

	return holding, nil
}

// GetByIDForUpdate retrieves a holding by ID with a FOR UPDATE lock.
func (r *HoldingRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VirtualGoldHolding, error) {
	pgxTx := tx.(*Tx).PgxTx()

	query := `SELECT ` + holdingColumns + ` FROM virtual_gold_holdings WHERE id = $1 FOR UPDATE`

	holding, err := scanHolding(pgxTx.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHoldingNotFound
		}

		return nil, err
	}

	return holding, nil
}

// GetByUserAndBranch retrieves the holding a user has at a branch.
func (r *HoldingRepository) GetByUserAndBranch(ctx context.Context, userID, branchID int64) (*domain.VirtualGoldHolding, error) {
	query := `SELECT ` + holdingColumns + ` FROM virtual_gold_holdings WHERE user_id = $1 AND branch_id = $2`

	holding, err := scanHolding(r.pool.QueryRow(ctx, query, userID, branchID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrHoldingNotFound
		}

		return nil, err
	}

	return holding, nil
}

// Update overwrites a holding's user, branch and quantity.
func (r *HoldingRepository) Update(ctx context.Context, holding *domain.VirtualGoldHolding) error {
	query := `
		UPDATE virtual_gold_holdings
		SET user_id = $2, branch_id = $3, quantity = $4, updated_at = $5
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		holding.ID,
		holding.UserID,
		holding.BranchID,
		decimalToNumeric(holding.Quantity),
		holding.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrHoldingNotFound
	}

	return nil
}

// UpdateQuantity updates the quantity of a holding within a transaction.
func (r *HoldingRepository) UpdateQuantity(ctx context.Context, tx usecase.Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `UPDATE virtual_gold_holdings SET quantity = $2, updated_at = $3 WHERE id = $1`

	_, err := pgxTx.Exec(ctx, query, id, decimalToNumeric(quantity), updatedAt)

	return err
}

// List retrieves holdings ordered by id.
func (r *HoldingRepository) List(ctx context.Context, limit, offset int) ([]*domain.VirtualGoldHolding, error) {
	query := `SELECT ` + holdingColumns + ` FROM virtual_gold_holdings ORDER BY id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHoldings(rows)
}

// ListByUser retrieves a user's holdings.
func (r *HoldingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error) {
	query := `SELECT ` + holdingColumns + ` FROM virtual_gold_holdings WHERE user_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHoldings(rows)
}

// ListByUserAndVendor retrieves a user's holdings at a vendor's branches.
func (r *HoldingRepository) ListByUserAndVendor(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error) {
	query := `
		SELECT h.id, h.user_id, h.branch_id, h.quantity, h.created_at, h.updated_at
		FROM virtual_gold_holdings h
		JOIN vendor_branches b ON b.id = h.branch_id
		WHERE h.user_id = $1 AND b.vendor_id = $2
		ORDER BY h.id
	`

	rows, err := r.pool.Query(ctx, query, userID, vendorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHoldings(rows)
}

func scanHolding(row pgx.Row) (*domain.VirtualGoldHolding, error) {
	var (
		holding  domain.VirtualGoldHolding
		quantity pgtype.Numeric
	)

	err := row.Scan(
		&holding.ID,
		&holding.UserID,
		&holding.BranchID,
		&quantity,
		&holding.CreatedAt,
		&holding.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	holding.Quantity = numericToDecimal(quantity)

	return &holding, nil
}

func scanHoldings(rows pgx.Rows) ([]*domain.VirtualGoldHolding, error) {
	var holdings []*domain.VirtualGoldHolding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, err
		}
		holdings = append(holdings, holding)
	}

	return holdings, rows.Err()
}
