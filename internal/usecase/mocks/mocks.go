package mocks

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/auric/goldvault/internal/domain"
	"github.com/auric/goldvault/internal/usecase"
)

// MockTransaction records commit/rollback calls.
type MockTransaction struct {
	mu         sync.Mutex
	Committed  bool
	RolledBack bool

	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (t *MockTransaction) Commit(ctx context.Context) error {
	if t.CommitFunc != nil {
		return t.CommitFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.Committed = true
	return nil
}

func (t *MockTransaction) Rollback(ctx context.Context) error {
	if t.RollbackFunc != nil {
		return t.RollbackFunc(ctx)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.Committed {
		t.RolledBack = true
	}
	return nil
}

// MockTxManager is a mock implementation of TransactionManager. It hands
// out MockTransactions and remembers the last one for assertions.
type MockTxManager struct {
	mu     sync.Mutex
	LastTx *MockTransaction

	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{}
}

func (m *MockTxManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	tx := &MockTransaction{}
	m.mu.Lock()
	m.LastTx = tx
	m.mu.Unlock()
	return tx, nil
}

// MockRetrier runs the operation once, without backoff.
type MockRetrier struct {
	Calls int

	RetryFunc func(ctx context.Context, operation func() error) error
}

func (r *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	r.Calls++
	if r.RetryFunc != nil {
		return r.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockBranchRepository is a mock implementation of BranchRepository.
type MockBranchRepository struct {
	mu       sync.RWMutex
	branches map[int64]*domain.VendorBranch
	nextID   int64

	CreateFunc           func(ctx context.Context, branch *domain.VendorBranch) error
	GetByIDFunc          func(ctx context.Context, id int64) (*domain.VendorBranch, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VendorBranch, error)
	UpdateFunc           func(ctx context.Context, branch *domain.VendorBranch) error
	UpdateQuantityFunc   func(ctx context.Context, tx usecase.Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error
	ListFunc             func(ctx context.Context, limit, offset int) ([]*domain.VendorBranch, error)
	ListByVendorFunc     func(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error)
	ListByCityFunc       func(ctx context.Context, city string) ([]*domain.VendorBranch, error)
	ListByStateFunc      func(ctx context.Context, state string) ([]*domain.VendorBranch, error)
	ListByCountryFunc    func(ctx context.Context, country string) ([]*domain.VendorBranch, error)
}

func NewMockBranchRepository() *MockBranchRepository {
	return &MockBranchRepository{branches: make(map[int64]*domain.VendorBranch)}
}

// Seed stores a branch directly, assigning an id when missing.
func (m *MockBranchRepository) Seed(branch *domain.VendorBranch) *domain.VendorBranch {
	m.mu.Lock()
	defer m.mu.Unlock()
	if branch.ID == 0 {
		m.nextID++
		branch.ID = m.nextID
	} else if branch.ID > m.nextID {
		m.nextID = branch.ID
	}
	m.branches[branch.ID] = branch
	return branch
}

func (m *MockBranchRepository) Create(ctx context.Context, branch *domain.VendorBranch) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, branch)
	}
	m.Seed(branch)
	return nil
}

func (m *MockBranchRepository) GetByID(ctx context.Context, id int64) (*domain.VendorBranch, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if b, ok := m.branches[id]; ok {
		copy := *b
		return &copy, nil
	}
	return nil, domain.ErrBranchNotFound
}

func (m *MockBranchRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VendorBranch, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockBranchRepository) Update(ctx context.Context, branch *domain.VendorBranch) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, branch)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.branches[branch.ID]; !ok {
		return domain.ErrBranchNotFound
	}
	copy := *branch
	m.branches[branch.ID] = &copy
	return nil
}

func (m *MockBranchRepository) UpdateQuantity(ctx context.Context, tx usecase.Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, tx, id, quantity, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.branches[id]
	if !ok {
		return domain.ErrBranchNotFound
	}
	b.Quantity = quantity
	b.UpdatedAt = updatedAt
	return nil
}

func (m *MockBranchRepository) List(ctx context.Context, limit, offset int) ([]*domain.VendorBranch, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var branches []*domain.VendorBranch
	for _, b := range m.branches {
		branches = append(branches, b)
	}
	return branches, nil
}

func (m *MockBranchRepository) ListByVendor(ctx context.Context, vendorID int64) ([]*domain.VendorBranch, error) {
	if m.ListByVendorFunc != nil {
		return m.ListByVendorFunc(ctx, vendorID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var branches []*domain.VendorBranch
	for _, b := range m.branches {
		if b.VendorID == vendorID {
			branches = append(branches, b)
		}
	}
	return branches, nil
}

func (m *MockBranchRepository) ListByCity(ctx context.Context, city string) ([]*domain.VendorBranch, error) {
	if m.ListByCityFunc != nil {
		return m.ListByCityFunc(ctx, city)
	}
	return nil, nil
}

func (m *MockBranchRepository) ListByState(ctx context.Context, state string) ([]*domain.VendorBranch, error) {
	if m.ListByStateFunc != nil {
		return m.ListByStateFunc(ctx, state)
	}
	return nil, nil
}

func (m *MockBranchRepository) ListByCountry(ctx context.Context, country string) ([]*domain.VendorBranch, error) {
	if m.ListByCountryFunc != nil {
		return m.ListByCountryFunc(ctx, country)
	}
	return nil, nil
}

// MockHoldingRepository is a mock implementation of HoldingRepository.
type MockHoldingRepository struct {
	mu       sync.RWMutex
	holdings map[int64]*domain.VirtualGoldHolding
	nextID   int64

	CreateFunc             func(ctx context.Context, holding *domain.VirtualGoldHolding) error
	GetByIDFunc            func(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error)
	GetByIDForUpdateFunc   func(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VirtualGoldHolding, error)
	GetByUserAndBranchFunc func(ctx context.Context, userID, branchID int64) (*domain.VirtualGoldHolding, error)
	UpdateFunc             func(ctx context.Context, holding *domain.VirtualGoldHolding) error
	UpdateQuantityFunc     func(ctx context.Context, tx usecase.Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error
	ListFunc               func(ctx context.Context, limit, offset int) ([]*domain.VirtualGoldHolding, error)
	ListByUserFunc         func(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error)
	ListByUserAndVendorFn  func(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error)
}

func NewMockHoldingRepository() *MockHoldingRepository {
	return &MockHoldingRepository{holdings: make(map[int64]*domain.VirtualGoldHolding)}
}

// Seed stores a holding directly, assigning an id when missing.
func (m *MockHoldingRepository) Seed(holding *domain.VirtualGoldHolding) *domain.VirtualGoldHolding {
	m.mu.Lock()
	defer m.mu.Unlock()
	if holding.ID == 0 {
		m.nextID++
		holding.ID = m.nextID
	} else if holding.ID > m.nextID {
		m.nextID = holding.ID
	}
	m.holdings[holding.ID] = holding
	return holding
}

func (m *MockHoldingRepository) Create(ctx context.Context, holding *domain.VirtualGoldHolding) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, holding)
	}
	m.Seed(holding)
	return nil
}

func (m *MockHoldingRepository) GetByID(ctx context.Context, id int64) (*domain.VirtualGoldHolding, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if h, ok := m.holdings[id]; ok {
		copy := *h
		return &copy, nil
	}
	return nil, domain.ErrHoldingNotFound
}

func (m *MockHoldingRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id int64) (*domain.VirtualGoldHolding, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockHoldingRepository) GetByUserAndBranch(ctx context.Context, userID, branchID int64) (*domain.VirtualGoldHolding, error) {
	if m.GetByUserAndBranchFunc != nil {
		return m.GetByUserAndBranchFunc(ctx, userID, branchID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, h := range m.holdings {
		if h.UserID == userID && h.BranchID == branchID {
			copy := *h
			return &copy, nil
		}
	}
	return nil, domain.ErrHoldingNotFound
}

func (m *MockHoldingRepository) Update(ctx context.Context, holding *domain.VirtualGoldHolding) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, holding)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.holdings[holding.ID]; !ok {
		return domain.ErrHoldingNotFound
	}
	copy := *holding
	m.holdings[holding.ID] = &copy
	return nil
}

func (m *MockHoldingRepository) UpdateQuantity(ctx context.Context, tx usecase.Transaction, id int64, quantity decimal.Decimal, updatedAt time.Time) error {
	if m.UpdateQuantityFunc != nil {
		return m.UpdateQuantityFunc(ctx, tx, id, quantity, updatedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok := m.holdings[id]
	if !ok {
		return domain.ErrHoldingNotFound
	}
	h.Quantity = quantity
	h.UpdatedAt = updatedAt
	return nil
}

func (m *MockHoldingRepository) List(ctx context.Context, limit, offset int) ([]*domain.VirtualGoldHolding, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var holdings []*domain.VirtualGoldHolding
	for _, h := range m.holdings {
		holdings = append(holdings, h)
	}
	return holdings, nil
}

func (m *MockHoldingRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.VirtualGoldHolding, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var holdings []*domain.VirtualGoldHolding
	for _, h := range m.holdings {
		if h.UserID == userID {
			holdings = append(holdings, h)
		}
	}
	return holdings, nil
}

func (m *MockHoldingRepository) ListByUserAndVendor(ctx context.Context, userID, vendorID int64) ([]*domain.VirtualGoldHolding, error) {
	if m.ListByUserAndVendorFn != nil {
		return m.ListByUserAndVendorFn(ctx, userID, vendorID)
	}
	return m.ListByUser(ctx, userID)
}

// MockPhysicalGoldRepository is a mock implementation of
// PhysicalGoldRepository.
type MockPhysicalGoldRepository struct {
	mu           sync.RWMutex
	transactions map[int64]*domain.PhysicalGoldTransaction
	nextID       int64

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, pgt *domain.PhysicalGoldTransaction) error
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error)
	ListByUserFunc   func(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error)
	ListByBranchFunc func(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error)
}

func NewMockPhysicalGoldRepository() *MockPhysicalGoldRepository {
	return &MockPhysicalGoldRepository{transactions: make(map[int64]*domain.PhysicalGoldTransaction)}
}

func (m *MockPhysicalGoldRepository) Create(ctx context.Context, tx usecase.Transaction, pgt *domain.PhysicalGoldTransaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, pgt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	pgt.ID = m.nextID
	copy := *pgt
	m.transactions[pgt.ID] = &copy
	return nil
}

func (m *MockPhysicalGoldRepository) GetByID(ctx context.Context, id int64) (*domain.PhysicalGoldTransaction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.transactions[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPhysicalTxNotFound
}

func (m *MockPhysicalGoldRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.PhysicalGoldTransaction, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.PhysicalGoldTransaction
	for _, p := range m.transactions {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPhysicalGoldRepository) ListByBranch(ctx context.Context, branchID int64) ([]*domain.PhysicalGoldTransaction, error) {
	if m.ListByBranchFunc != nil {
		return m.ListByBranchFunc(ctx, branchID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.PhysicalGoldTransaction
	for _, p := range m.transactions {
		if p.BranchID == branchID {
			out = append(out, p)
		}
	}
	return out, nil
}

// All returns every stored physical transaction.
func (m *MockPhysicalGoldRepository) All() []*domain.PhysicalGoldTransaction {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.PhysicalGoldTransaction
	for _, p := range m.transactions {
		out = append(out, p)
	}
	return out
}

// MockHistoryRepository is a mock implementation of HistoryRepository.
type MockHistoryRepository struct {
	mu      sync.RWMutex
	records []*domain.TransactionHistory
	nextID  int64

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, record *domain.TransactionHistory) error
	ListFunc         func(ctx context.Context, limit, offset int) ([]*domain.TransactionHistory, error)
	ListByBranchFunc func(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error)
	ListByUserFunc   func(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error)
	ListByStatusFunc func(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error)
	ListByTypeFunc   func(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error)
}

func NewMockHistoryRepository() *MockHistoryRepository {
	return &MockHistoryRepository{}
}

func (m *MockHistoryRepository) Create(ctx context.Context, tx usecase.Transaction, record *domain.TransactionHistory) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, record)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	record.ID = m.nextID
	copy := *record
	m.records = append(m.records, &copy)
	return nil
}

func (m *MockHistoryRepository) List(ctx context.Context, limit, offset int) ([]*domain.TransactionHistory, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.TransactionHistory(nil), m.records...), nil
}

func (m *MockHistoryRepository) ListByBranch(ctx context.Context, branchID int64) ([]*domain.TransactionHistory, error) {
	if m.ListByBranchFunc != nil {
		return m.ListByBranchFunc(ctx, branchID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.TransactionHistory
	for _, r := range m.records {
		if r.BranchID == branchID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockHistoryRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.TransactionHistory, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.TransactionHistory
	for _, r := range m.records {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockHistoryRepository) ListByStatus(ctx context.Context, status domain.TransactionStatus) ([]*domain.TransactionHistory, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.TransactionHistory
	for _, r := range m.records {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *MockHistoryRepository) ListByType(ctx context.Context, typ domain.TransactionType) ([]*domain.TransactionHistory, error) {
	if m.ListByTypeFunc != nil {
		return m.ListByTypeFunc(ctx, typ)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.TransactionHistory
	for _, r := range m.records {
		if r.Type == typ {
			out = append(out, r)
		}
	}
	return out, nil
}

// All returns every stored history record.
func (m *MockHistoryRepository) All() []*domain.TransactionHistory {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.TransactionHistory(nil), m.records...)
}

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mu       sync.RWMutex
	payments map[int64]*domain.Payment
	nextID   int64

	CreateFunc       func(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error
	GetByIDFunc      func(ctx context.Context, id int64) (*domain.Payment, error)
	ListByUserFunc   func(ctx context.Context, userID int64) ([]*domain.Payment, error)
	ListByStatusFunc func(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error)
	ListByMethodFunc func(ctx context.Context, method domain.PaymentMethod) ([]*domain.Payment, error)
}

func NewMockPaymentRepository() *MockPaymentRepository {
	return &MockPaymentRepository{payments: make(map[int64]*domain.Payment)}
}

func (m *MockPaymentRepository) Create(ctx context.Context, tx usecase.Transaction, payment *domain.Payment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, payment)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	payment.ID = m.nextID
	copy := *payment
	m.payments[payment.ID] = &copy
	return nil
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if p, ok := m.payments[id]; ok {
		return p, nil
	}
	return nil, domain.ErrPaymentNotFound
}

func (m *MockPaymentRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Payment, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPaymentRepository) ListByStatus(ctx context.Context, status domain.PaymentStatus) ([]*domain.Payment, error) {
	if m.ListByStatusFunc != nil {
		return m.ListByStatusFunc(ctx, status)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.Status == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *MockPaymentRepository) ListByMethod(ctx context.Context, method domain.PaymentMethod) ([]*domain.Payment, error) {
	if m.ListByMethodFunc != nil {
		return m.ListByMethodFunc(ctx, method)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.Payment
	for _, p := range m.payments {
		if p.Method == method {
			out = append(out, p)
		}
	}
	return out, nil
}

// MockOutboxRepository is a mock implementation of OutboxRepository.
type MockOutboxRepository struct {
	mu     sync.RWMutex
	events []*domain.OutboxEvent

	CreateFunc          func(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error
	GetUnpublishedFunc  func(ctx context.Context, limit int) ([]*domain.OutboxEvent, error)
	MarkPublishedFunc   func(ctx context.Context, id string, publishedAt time.Time) error
	DeletePublishedFunc func(ctx context.Context, before time.Time) error
}

func NewMockOutboxRepository() *MockOutboxRepository {
	return &MockOutboxRepository{}
}

func (m *MockOutboxRepository) Create(ctx context.Context, tx usecase.Transaction, event *domain.OutboxEvent) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, event)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, event)
	return nil
}

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*domain.OutboxEvent, error) {
	if m.GetUnpublishedFunc != nil {
		return m.GetUnpublishedFunc(ctx, limit)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []*domain.OutboxEvent
	for _, e := range m.events {
		if !e.Published {
			out = append(out, e)
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, id string, publishedAt time.Time) error {
	if m.MarkPublishedFunc != nil {
		return m.MarkPublishedFunc(ctx, id, publishedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.events {
		if e.ID == id {
			e.Published = true
			e.PublishedAt = &publishedAt
		}
	}
	return nil
}

func (m *MockOutboxRepository) DeletePublished(ctx context.Context, before time.Time) error {
	if m.DeletePublishedFunc != nil {
		return m.DeletePublishedFunc(ctx, before)
	}
	return nil
}

// Events returns every stored outbox event.
func (m *MockOutboxRepository) Events() []*domain.OutboxEvent {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.OutboxEvent(nil), m.events...)
}

// MockIDGenerator is a mock implementation of IDGenerator.
type MockIDGenerator struct {
	mu      sync.Mutex
	counter int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counter++
	return "ref-" + strconv.Itoa(m.counter)
}

// MockUserLookup is a map-backed UserLookup.
type MockUserLookup struct {
	Users map[int64]*domain.User

	GetByIDFunc func(ctx context.Context, id int64) (*domain.User, error)
}

func NewMockUserLookup() *MockUserLookup {
	return &MockUserLookup{Users: make(map[int64]*domain.User)}
}

func (m *MockUserLookup) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	if u, ok := m.Users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

// MockVendorLookup is a map-backed VendorLookup.
type MockVendorLookup struct {
	Vendors map[int64]*domain.Vendor

	GetByIDFunc func(ctx context.Context, id int64) (*domain.Vendor, error)
}

func NewMockVendorLookup() *MockVendorLookup {
	return &MockVendorLookup{Vendors: make(map[int64]*domain.Vendor)}
}

func (m *MockVendorLookup) GetByID(ctx context.Context, id int64) (*domain.Vendor, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	if v, ok := m.Vendors[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVendorNotFound
}

// MockAddressLookup is a map-backed AddressLookup.
type MockAddressLookup struct {
	Addresses map[int64]*domain.Address

	GetByIDFunc func(ctx context.Context, id int64) (*domain.Address, error)
}

func NewMockAddressLookup() *MockAddressLookup {
	return &MockAddressLookup{Addresses: make(map[int64]*domain.Address)}
}

func (m *MockAddressLookup) GetByID(ctx context.Context, id int64) (*domain.Address, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	if a, ok := m.Addresses[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAddressNotFound
}
