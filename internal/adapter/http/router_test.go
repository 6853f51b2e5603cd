package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/auric/goldvault/internal/adapter/http/handler"
	apimiddleware "github.com/auric/goldvault/internal/adapter/http/middleware"
	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"vendor_id":1,"address_id":1,"quantity":"100"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/branches/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/branches/",
		"GET /api/v1/branches/",
		"POST /api/v1/branches/transfer",
		"GET /api/v1/branches/{id}",
		"PUT /api/v1/branches/{id}",
		"GET /api/v1/branches/{id}/transactions",
		"POST /api/v1/holdings/",
		"POST /api/v1/holdings/{id}/convert",
		"GET /api/v1/transactions",
		"GET /api/v1/physical/{id}",
		"POST /api/v1/payments/",
		"GET /api/v1/users/{id}/holdings",
		"GET /api/v1/users/{id}/payments",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		BranchHandler:   handler.NewBranchHandler(&stubBranchService{}),
		HoldingHandler:  handler.NewHoldingHandler(&stubHoldingService{}),
		HistoryHandler:  handler.NewHistoryHandler(&stubHistoryService{}),
		PhysicalHandler: handler.NewPhysicalHandler(&stubPhysicalService{}),
		PaymentHandler:  handler.NewPaymentHandler(&stubPaymentService{}),
		HealthHandler:   &handler.HealthHandler{},
		Logger:          zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubBranchService struct{}

func (stubBranchService) CreateBranch(ctx context.Context, input usecase.CreateBranchInput) (*domain.VendorBranch, error) {
	return &domain.VendorBranch{ID: 1}, nil
}

func (stubBranchService) GetBranch(ctx context.Context, id int64) (*domain.VendorBranch, error) {
	return &domain.VendorBranch{ID: id}, nil
}

func (stubBranchService) ListBranches(ctx context.Context, input usecase.ListBranchesInput) ([]*domain.VendorBranch, error) {
	return []*domain.VendorBranch{}, nil
}

func (stubBranchService) ListBranchesByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error) {
	return []*domain.VendorBranch{}, nil
}

func (stubBranchService) ListBranchesByCity(ctx context.Context, city string) ([]*domain.VendorBranch, error) {
	return []*domain.VendorBranch{}, nil
}

func (stubBranchService) ListBranchesByState(ctx context.Context, state string) ([]*domain.VendorBranch, error) {
	return []*domain.VendorBranch{}, nil
}

func (stubBranchService) ListBranchesByCountry(ctx context.Context, country string) ([]*domain.VendorBranch, error) {
	return []*domain.VendorBranch{}, nil
}

func (stubBranchService) ListBranchTransactions(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error) {
	return []*domain.TransactionHistory{}, nil
}

func (stubBranchService) UpdateBranch(ctx context.Context, input usecase.UpdateBranchInput) (*domain.VendorBranch, error) {
	return &domain.VendorBranch{ID: input.BranchID}, nil
}

func (stubBranchService) Transfer(ctx context.Context, input usecase.TransferInput) (*usecase.TransferResult, error) {
	return &usecase.TransferResult{}, nil
}

type stubHoldingService struct{}

func (stubHoldingService) CreateHolding(ctx context.Context, input usecase.CreateHoldingInput) (*domain.VirtualGoldHolding, error) {
	return &domain.VirtualGoldHolding{ID: 1}, nil
}

func (stubHoldingService) GetHolding(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error) {
	return &domain.VirtualGoldHolding{ID: id}, nil
}

func (stubHoldingService) ListHoldings(ctx context.Context, input usecase.ListHoldingsInput) ([]*domain.VirtualGoldHolding, error) {
	return []*domain.VirtualGoldHolding{}, nil
}

func (stubHoldingService) ListHoldingsByUser(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error) {
	return []*domain.VirtualGoldHolding{}, nil
}

func (stubHoldingService) ListHoldingsByUserAndVendor(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error) {
	return []*domain.VirtualGoldHolding{}, nil
}

func (stubHoldingService) UpdateHolding(ctx context.Context, input usecase.UpdateHoldingInput) (*domain.VirtualGoldHolding, error) {
	return &domain.VirtualGoldHolding{ID: input.HoldingID}, nil
}

func (stubHoldingService) ConvertToPhysical(ctx context.Context, input usecase.ConvertToPhysicalInput) (*usecase.ConversionResult, error) {
	return &usecase.ConversionResult{HoldingID: input.HoldingID}, nil
}

type stubHistoryService struct{}

func (stubHistoryService) List(ctx context.Context, input usecase.ListHistoryInput) ([]*domain.TransactionHistory, error) {
	return []*domain.TransactionHistory{}, nil
}

func (stubHistoryService) ListByUser(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error) {
	return []*domain.TransactionHistory{}, nil
}

func (stubHistoryService) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error) {
	return []*domain.TransactionHistory{}, nil
}

func (stubHistoryService) ListByType(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error) {
	return []*domain.TransactionHistory{}, nil
}

type stubPhysicalService struct{}

func (stubPhysicalService) GetTransaction(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error) {
	return &domain.PhysicalGoldTransaction{ID: id}, nil
}

func (stubPhysicalService) ListByUser(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error) {
	return []*domain.PhysicalGoldTransaction{}, nil
}

func (stubPhysicalService) ListByBranch(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error) {
	return []*domain.PhysicalGoldTransaction{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}

type stubPaymentService struct{}

func (stubPaymentService) CreatePayment(ctx context.Context, input usecase.CreatePaymentInput) (*domain.Payment, error) {
	return &domain.Payment{ID: 1}, nil
}

func (stubPaymentService) GetPayment(ctx context.Context, id int64) (*domain.Payment, error) {
	return &domain.Payment{ID: id}, nil
}

func (stubPaymentService) ListByUser(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	return []*domain.Payment{}, nil
}

func (stubPaymentService) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	return []*domain.Payment{}, nil
}

func (stubPaymentService) ListByMethod(ctx context.Context, method domain.PaymentMethod) ([]*domain.Payment, error) {
	return []*domain.Payment{}, nil
}
