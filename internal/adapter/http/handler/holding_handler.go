package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/auric/goldvault/internal/adapter/http/dto"
	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// HoldingService defines the behavior needed by HoldingHandler.
type HoldingService interface {
	CreateHolding(ctx context.Context, input usecase.CreateHoldingInput) (*domain.VirtualGoldHolding, error)
	GetHolding(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error)
	ListHoldings(ctx context.Context, input usecase.ListHoldingsInput) ([]*domain.VirtualGoldHolding, error)
	ListHoldingsByUser(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error)
	ListHoldingsByUserAndVendor(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error)
	UpdateHolding(ctx context.Context, input usecase.UpdateHoldingInput) (*domain.VirtualGoldHolding, error)
	ConvertToPhysical(ctx context.Context, input usecase.ConvertToPhysicalInput) (*usecase.ConversionResult, error)
}

// HoldingHandler handles virtual gold holding HTTP requests.
type HoldingHandler struct {
	holdingUC HoldingService
}

// NewHoldingHandler creates a new HoldingHandler.
func NewHoldingHandler(holdingUC HoldingService) *HoldingHandler {
	return &HoldingHandler{holdingUC: holdingUC}
}

// Create creates a new holding.
func (h *HoldingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	holding, err := h.holdingUC.CreateHolding(r.Context(), req.ToUseCaseInput())
	if err != nil {
		writeError(w, mapDomainError(err), "failed to create holding", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, dto.HoldingFromDomain(holding))
}

// Get retrieves a holding by ID.
func (h *HoldingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid holding ID", err.Error())
		return
	}

	holding, err := h.holdingUC.GetHolding(r.Context(), id)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to get holding", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingFromDomain(holding))
}

// List lists holdings, optionally filtered by user and vendor.
func (h *HoldingHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var (
		holdings []*domain.VirtualGoldHolding
		err      error
	)

	userID := parseInt64Query(r, "user_id")
	vendorID := parseInt64Query(r, "vendor_id")

	switch {
	case userID != 0 && vendorID != 0:
		holdings, err = h.holdingUC.ListHoldingsByUserAndVendor(ctx, userID, vendorID)
	case userID != 0:
		holdings, err = h.holdingUC.ListHoldingsByUser(ctx, userID)
	default:
		holdings, err = h.holdingUC.ListHoldings(ctx, usecase.ListHoldingsInput{
			Limit:  parseIntQuery(r, "limit", 20),
			Offset: parseIntQuery(r, "offset", 0),
		})
	}
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list holdings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingsFromDomain(holdings))
}

// ListByUser lists holdings for a user.
func (h *HoldingHandler) ListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user ID", err.Error())
		return
	}

	holdings, err := h.holdingUC.ListHoldingsByUser(r.Context(), userID)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to list holdings", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingsFromDomain(holdings))
}

// Update overwrites a holding.
func (h *HoldingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid holding ID", err.Error())
		return
	}

	var req dto.UpdateHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	holding, err := h.holdingUC.UpdateHolding(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to update holding", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.HoldingFromDomain(holding))
}

// Convert converts part of a holding into a physical gold transaction.
func (h *HoldingHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid holding ID", err.Error())
		return
	}

	var req dto.ConvertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := h.holdingUC.ConvertToPhysical(r.Context(), req.ToUseCaseInput(id))
	if err != nil {
		writeError(w, mapDomainError(err), "failed to convert holding", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.ConversionFromResult(result))
}
