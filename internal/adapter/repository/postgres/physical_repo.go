package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// PhysicalGoldRepository implements usecase.PhysicalGoldRepository.
type PhysicalGoldRepository struct {
	pool *pgxpool.Pool
}

// NewPhysicalGoldRepository creates a new PhysicalGoldRepository.
func NewPhysicalGoldRepository(pool *pgxpool.Pool) *PhysicalGoldRepository {
	return &PhysicalGoldRepository{pool: pool}
}

const physicalColumns = `id, user_id, branch_id, delivery_address_id, quantity, created_at`

// Create inserts a physical gold transaction within a transaction and
// assigns its id.
func (r *PhysicalGoldRepository) Create(ctx context.Context, tx usecase.Transaction, pgt *domain.PhysicalGoldTransaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO physical_gold_transactions (user_id, branch_id, delivery_address_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	return pgxTx.QueryRow(ctx, query,
		pgt.UserID,
		pgt.BranchID,
		pgt.DeliveryAddressID,
		decimalToNumeric(pgt.Quantity),
		pgt.CreatedAt,
	).Scan(&pgt.ID)
}

// GetByID retrieves a physical gold transaction by ID.
func (r *PhysicalGoldRepository) GetByID(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error) {
	query := `SELECT ` + physicalColumns + ` FROM physical_gold_transactions WHERE id = $1`

	pgt, err := scanPhysical(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPhysicalTxNotFound
		}

		return nil, err
	}

	return pgt, nil
}

// ListByUser retrieves a user's physical gold transactions.
func (r *PhysicalGoldRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error) {
	query := `SELECT ` + physicalColumns + ` FROM physical_gold_transactions WHERE user_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPhysicals(rows)
}

// ListByBranch retrieves the physical gold transactions fulfilled by a branch.
func (r *PhysicalGoldRepository) ListByBranch(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error) {
	query := `SELECT ` + physicalColumns + ` FROM physical_gold_transactions WHERE branch_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPhysicals(rows)
}

func scanPhysical(row pgx.Row) (*domain.PhysicalGoldTransaction, error) {
	var (
		pgt      domain.PhysicalGoldTransaction
		quantity pgtype.Numeric
	)

	err := row.Scan(
		&pgt.ID,
		&pgt.UserID,
		&pgt.BranchID,
		&pgt.DeliveryAddressID,
		&quantity,
		&pgt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	pgt.Quantity = numericToDecimal(quantity)

	return &pgt, nil
}

func scanPhysicals(rows pgx.Rows) ([]*domain.PhysicalGoldTransaction, error) {
	var list []*domain.PhysicalGoldTransaction
	for rows.Next() {
		pgt, err := scanPhysical(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, pgt)
	}

	return list, rows.Err()
}
