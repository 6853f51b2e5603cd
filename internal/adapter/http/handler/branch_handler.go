package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/auric/goldvault/internal/adapter/http/dto"
	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// BranchService defines the behavior needed by BranchHandler.
type BranchService interface {
	CreateBranch(ctx context.Context, input usecase.CreateBranchInput) (*domain.VendorBranch, error)
	GetBranch(ctx context.Context, id int64) (*domain.VendorBranch, error)
	ListBranches(ctx context.Context, input usecase.ListBranchesInput) ([]*domain.VendorBranch, error)
	ListBranchesByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error)
	ListBranchesByCity(ctx context.Context, city string) ([]*domain.VendorBranch, error)
	ListBranchesByState(ctx context.Context, state string) ([]*domain.VendorBranch, error)
	ListBranchesByCountry(ctx context.Context, country string) ([]*domain.VendorBranch, error)
	ListBranchTransactions(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error)
	UpdateBranch(ctx context.Context, input usecase.UpdateBranchInput) (*domain.VendorBranch, error)
	Transfer(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error)
}

// BranchHandler handles vendor branch HTTP requests.
type BranchHandler struct {
	branchUC BranchService
}

// NewBranchHandler creates a new BranchHandler.
func NewBranchHandler(branchUC BranchService) *BranchHandler {
	return &BranchHandler{branchUC: branchUC}
}

// Create creates a new vendor branch.
func (h *BranchHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	branch, err := h.branchUC.CreateBranch(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create branch", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.BranchFromDomain(branch))
}

// Get retrieves a branch by ID.
func (h *BranchHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid branch ID", err.Error())
		return
	}

	branch, err := h.branchUC.GetBranch(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get branch", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BranchFromDomain(branch))
}

// List lists branches, optionally filtered by vendor or location. The
// vendor filter treats an empty result as not found; location filters
// return an empty list.
func (h *BranchHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		branches []*domain.VendorBranch
		err      error
	)

	switch {
	case r.URL.Query().Get("vendor_id") != "":
		branches, err = h.branchUC.ListBranchesByVendor(ctx, parseInt64Query(r, "vendor_id"))
	case r.URL.Query().Get("city") != "":
		branches, err = h.branchUC.ListBranchesByCity(ctx, r.URL.Query().Get("city"))
	case r.URL.Query().Get("state") != "":
		branches, err = h.branchUC.ListBranchesByState(ctx, r.URL.Query().Get("state"))
	case r.URL.Query().Get("country") != "":
		branches, err = h.branchUC.ListBranchesByCountry(ctx, r.URL.Query().Get("country"))
	default:
		branches, err = h.branchUC.ListBranches(ctx, usecase.ListBranchesInput{
			Limit:  parseIntQuery(r, "limit", 20),
			Offset: parseIntQuery(r, "offset", 0),
		})
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list branches", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BranchesFromDomain(branches))
}

// Update overwrites a branch.
func (h *BranchHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid branch ID", err.Error())
		return
	}

	var req dto.UpdateBranchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	branch, err := h.branchUC.UpdateBranch(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update branch", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.BranchFromDomain(branch))
}

// Transfer moves gold between two branches.
func (h *BranchHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.branchUC.Transfer(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to transfer gold", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransferFromResult(result))
}

// ListTransactions lists a branch's transaction history.
func (h *BranchHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid branch ID", err.Error())
		return
	}

	records, err := h.branchUC.ListBranchTransactions(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list branch transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HistoriesFromDomain(records))
}
