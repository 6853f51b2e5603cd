package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/infrastructure/metrics"
)

// PaymentUseCase handles payments funding gold purchases.
type PaymentUseCase struct {
	txManager   TransactionManager
	paymentRepo PaymentRepository
	outboxRepo  OutboxRepository
	users       UserLookup
	metrics     *metrics.Metrics
}

// NewPaymentUseCase creates a new PaymentUseCase.
func NewPaymentUseCase(
	txManager TransactionManager,
	paymentRepo PaymentRepository,
	outboxRepo OutboxRepository,
	users UserLookup,
	metrics *metrics.Metrics,
) *PaymentUseCase {
	return &PaymentUseCase{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		outboxRepo:  outboxRepo,
		users:       users,
		metrics:     metrics,
	}
}

// CreatePaymentInput represents input for creating a payment.
type CreatePaymentInput struct {
	UserID int64
	Amount decimal.Decimal
	Method domain.PaymentMethod
}

// CreatePayment records a new pending payment and its outbox event in one
// transaction.
func (uc *PaymentUseCase) CreatePayment(ctx context.Context, input CreatePaymentInput) (*domain.Payment, error) {
	if _, err := uc.users.GetByID(ctx, input.UserID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	payment := &domain.Payment{
		UserID:    input.UserID,
		Amount:    input.Amount,
		Method:    input.Method,
		Status:    domain.PaymentStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := payment.Validate(); err != nil {
		return nil, err
	}

	txCtx, cancel := context.WithTimeout(ctx, DefaultTransactionTimeout)
	defer cancel()

	tx, err := uc.txManager.Begin(txCtx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(txCtx) }()

	if err := uc.paymentRepo.Create(txCtx, tx, payment); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		AggregateID:   formatID(payment.ID),
		AggregateType: domain.AggregateTypePayment,
		EventType:     domain.EventTypePaymentCreated,
		Payload: map[string]any{
			"payment_id": payment.ID,
			"user_id":    payment.UserID,
			"amount":     payment.Amount.String(),
			"method":     string(payment.Method),
		},
		CreatedAt: now,
	}
	if err := uc.outboxRepo.Create(txCtx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(txCtx); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.PaymentsCreated.Inc()
	}

	return payment, nil
}

// GetPayment retrieves a payment by ID.
func (uc *PaymentUseCase) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return uc.paymentRepo.GetByID(ctx, id)
}

// ListByUser lists a user's payments. The user must exist.
func (uc *PaymentUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	if _, err := uc.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	return uc.paymentRepo.ListByUser(ctx, userID)
}

// ListByStatus lists payments with the given status.
func (uc *PaymentUseCase) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	return uc.paymentRepo.ListByStatus(ctx, status)
}

// ListByMethod lists payments made with the given method.
func (uc *PaymentUseCase) ListByMethod(ctx context.Context, method domain.PaymentMethod) ([]*domain.Payment, error) {
	return uc.paymentRepo.ListByMethod(ctx, method)
}
