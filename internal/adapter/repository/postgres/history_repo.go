package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// HistoryRepository implements usecase.HistoryRepository. The history table
// is append only; records are never updated or deleted.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a new HistoryRepository.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

const historyColumns = `id, reference, user_id, branch_id, transaction_type, status, quantity, amount, created_at`

// Create inserts a history record within a transaction and assigns its id.
func (r *HistoryRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionHistory) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transaction_history (reference, user_id, branch_id, transaction_type, status, quantity, amount, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	return pgxTx.QueryRow(ctx, query,
		record.Reference,
		record.UserID,
		record.BranchID,
		string(record.Type),
		string(record.Status),
		decimalToNumeric(record.Quantity),
		decimalToNumeric(record.Amount),
		record.CreatedAt,
	).Scan(&record.ID)
}

// List retrieves history records, newest first.
func (r *HistoryRepository) List(ctx context.Context, limit, offset int) ([]*domain.TransactionHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM transaction_history ORDER BY id DESC LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

// ListByBranch retrieves a branch's history records, newest first.
func (r *HistoryRepository) ListByBranch(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM transaction_history WHERE branch_id = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, branchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

// ListByUser retrieves a user's history records, newest first.
func (r *HistoryRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM transaction_history WHERE user_id = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

// ListByStatus retrieves history records with the given status, newest first.
func (r *HistoryRepository) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM transaction_history WHERE status = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

// ListByType retrieves history records of the given type, newest first.
func (r *HistoryRepository) ListByType(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error) {
	query := `SELECT ` + historyColumns + ` FROM transaction_history WHERE transaction_type = $1 ORDER BY id DESC`

	rows, err := r.pool.Query(ctx, query, string(typ))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanHistories(rows)
}

func scanHistory(row pgx.Row) (*domain.TransactionHistory, error) {
	var (
		record   domain.TransactionHistory
		quantity pgtype.Numeric
		amount   pgtype.Numeric
	)

	err := row.Scan(
		&record.ID,
		&record.Reference,
		&record.UserID,
		&record.BranchID,
		&record.Type,
		&record.Status,
		&quantity,
		&amount,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Quantity = numericToDecimal(quantity)
	record.Amount = numericToDecimal(amount)

	return &record, nil
}

func scanHistories(rows pgx.Rows) ([]*domain.TransactionHistory, error) {
	var records []*domain.TransactionHistory
	for rows.Next() {
		record, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, rows.Err()
}
