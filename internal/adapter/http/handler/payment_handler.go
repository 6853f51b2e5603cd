package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/auric/goldvault/internal/adapter/http/dto"
	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// PaymentService defines the behavior needed by PaymentHandler.
type PaymentService interface {
	CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*domain.Payment, error)
	GetPayment(ctx context.Context, id int64) (*domain.Payment, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Payment, error)
	ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error)
	ListByMethod(ctx context.Context, method domain.PaymentMethod) ([]*domain.Payment, error)
}

// PaymentHandler handles payment HTTP requests.
type PaymentHandler struct {
	paymentUC PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentUC PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// Create records a new payment.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	payment, err := h.paymentUC.CreatePayment(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create payment", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.PaymentFromDomain(payment))
}

// Get retrieves a payment by ID.
func (h *PaymentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid payment ID", err.Error())
		return
	}

	payment, err := h.paymentUC.GetPayment(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get payment", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentFromDomain(payment))
}

// List lists payments filtered by status or method. One filter is required.
func (h *PaymentHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		payments []*domain.Payment
		err      error
	)

	switch {
	case r.URL.Query().Get("status") != "":
		status := domain.PaymentStatus(r.URL.Query().Get("status"))
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid payment status", string(status))
			return
		}
		payments, err = h.paymentUC.ListByStatus(ctx, status)
	case r.URL.Query().Get("method") != "":
		method := domain.PaymentMethod(r.URL.Query().Get("method"))
		if !method.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid payment method", string(method))
			return
		}
		payments, err = h.paymentUC.ListByMethod(ctx, method)
	default:
		writeError(w, http.StatusBadRequest, "missing filter", "status or method query parameter is required")
		return
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentsFromDomain(payments))
}

// ListByUser lists payments made by a user.
func (h *PaymentHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	payments, err := h.paymentUC.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list payments", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PaymentsFromDomain(payments))
}
