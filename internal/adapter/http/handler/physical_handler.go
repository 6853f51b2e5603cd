package handler

import (
	"context"
	"net/http"

	"github.com/auric/goldvault/internal/adapter/http/dto"
	"github.com/auric/goldvault/internal/domain"
)

// PhysicalService defines the behavior needed by PhysicalHandler.
type PhysicalService interface {
	GetTransaction(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error)
	ListByBranch(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error)
}

// PhysicalHandler handles physical gold transaction HTTP requests.
type PhysicalHandler struct {
	physicalUC PhysicalService
}

// NewPhysicalHandler creates a new PhysicalHandler.
func NewPhysicalHandler(physicalUC PhysicalService) *PhysicalHandler {
	return &PhysicalHandler{physicalUC: physicalUC}
}

// Get retrieves a physical gold transaction by ID.
func (h *PhysicalHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid transaction ID", err.Error())
		return
	}

	tx, err := h.physicalUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get physical transaction", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PhysicalFromDomain(tx))
}

// ListByUser lists physical gold transactions for a user.
func (h *PhysicalHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	list, err := h.physicalUC.ListByUser(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list physical transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PhysicalsFromDomain(list))
}

// ListByBranch lists physical gold transactions fulfilled by a branch.
func (h *PhysicalHandler) ListByBranch(w http.ResponseWriter, r *http.Request) {
	branchID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid branch ID", err.Error())
		return
	}

	list, err := h.physicalUC.ListByBranch(r.Context(), branchID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list physical transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.PhysicalsFromDomain(list))
}
