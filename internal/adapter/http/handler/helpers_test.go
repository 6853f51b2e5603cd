package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/auric/goldvault/internal/adapter/http/dto"
	"github.com/auric/goldvault/internal/domain"
)

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestParseIDParam(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/branches/42", nil)
	req = setChiURLParam(req, "id", "42")
	if got, err := parseIDParam(req, "id"); err != nil || got != 42 {
		t.Fatalf("expected 42, got %d (%v)", got, err)
	}

	req = httptest.NewRequest(http.MethodGet, "/branches/abc", nil)
	req = setChiURLParam(req, "id", "abc")
	if _, err := parseIDParam(req, "id"); err == nil {
		t.Fatal("expected error for non-numeric id")
	}

	req = httptest.NewRequest(http.MethodGet, "/branches/0", nil)
	req = setChiURLParam(req, "id", "0")
	if _, err := parseIDParam(req, "id"); err == nil {
		t.Fatal("expected error for non-positive id")
	}
}

func TestParseIntQuery(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/branches?limit=50", nil)
	if got := parseIntQuery(req, "limit", 10); got != 50 {
		t.Fatalf("expected limit=50, got %d", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/branches?limit=invalid", nil)
	if got := parseIntQuery(req, "limit", 10); got != 10 {
		t.Fatalf("expected fallback to default, got %d", got)
	}

	req.URL = &url.URL{RawQuery: ""}
	if got := parseIntQuery(req, "limit", 25); got != 25 {
		t.Fatalf("expected default when missing, got %d", got)
	}
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"branch not found", domain.ErrBranchNotFound, http.StatusNotFound},
		{"holding not found", domain.ErrHoldingNotFound, http.StatusNotFound},
		{"payment not found", domain.ErrPaymentNotFound, http.StatusNotFound},
		{"holding already exists", domain.ErrHoldingAlreadyExists, http.StatusConflict},
		{"invalid quantity sentinel", domain.ErrInvalidGoldQuantity, http.StatusBadRequest},
		{"invalid quantity with reason", &domain.InvalidGoldQuantityError{Reason: "Invalid gold quantity"}, http.StatusBadRequest},
		{"same branch", domain.ErrSameBranch, http.StatusBadRequest},
		{"invalid payment method", domain.ErrInvalidPaymentMethod, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := mapDomainError(tt.err); got != tt.expected {
				t.Fatalf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	rr := httptest.NewRecorder()
	payload := map[string]string{"status": "ok"}

	writeJSON(rr, http.StatusCreated, payload)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rr.Code)
	}

	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content-type application/json, got %s", ct)
	}

	var decoded map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if decoded["status"] != "ok" {
		t.Fatalf("expected payload to round-trip, got %+v", decoded)
	}
}

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()

	writeError(rr, http.StatusBadRequest, "bad request", "detail")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}

	if resp.Error != "bad request" {
		t.Fatalf("expected error message to propagate, got %+v", resp)
	}

	if resp.Timestamp.IsZero() {
		t.Fatal("expected timestamp to be set")
	}
}
