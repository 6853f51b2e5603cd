package handler

import (
	"context"
	"net/http"

	"github.com/auric/goldvault/internal/adapter/http/dto"
	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// HistoryService defines the behavior needed by HistoryHandler.
type HistoryService interface {
	List(ctx context.Context, input usecase.ListHistoryInput) ([]*domain.TransactionHistory, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error)
	ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error)
	ListByType(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error)
}

// HistoryHandler handles transaction history HTTP requests.
type HistoryHandler struct {
	historyUC HistoryService
}

// NewHistoryHandler creates a new HistoryHandler.
func NewHistoryHandler(historyUC HistoryService) *HistoryHandler {
	return &HistoryHandler{historyUC: historyUC}
}

// List lists history records, optionally filtered by status or type.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		records []*domain.TransactionHistory
		err     error
	)

	switch {
	case r.URL.Query().Get("status") != "":
		status := domain.TransactionStatus(r.URL.Query().Get("status"))
		if !status.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid transaction status", string(status))
			return
		}
		records, err = h.historyUC.ListByStatus(ctx, status)
	case r.URL.Query().Get("type") != "":
		typ := domain.TransactionType(r.URL.Query().Get("type"))
		if !typ.IsValid() {
			writeError(w, http.StatusBadRequest, "invalid transaction type", string(typ))
			return
		}
		records, err = h.historyUC.ListByType(ctx, typ)
	default:
		records, err = h.historyUC.List(ctx, usecase.ListHistoryInput{
			Limit:  parseIntQuery(r, "limit", 20),
			Offset: parseIntQuery(r, "offset", 0),
		})
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoriesFromDomain(records))
}

// ListByUser lists history records for a user.
func (h *HistoryHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	records, err := h.historyUC.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoriesFromDomain(records))
}
