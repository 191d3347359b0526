package payment

import (
	"context"
	"testing"
	"time"

	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSupplierPayableRepository is a mock implementation of SupplierPayableRepository
type MockSupplierPayableRepository struct {
	mock.Mock
}

func (m *MockSupplierPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.SupplierPayable, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SupplierPayable), args.Error(1)
}

func (m *MockSupplierPayableRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) (*payment.SupplierPayable, error) {
	args := m.Called(ctx, unitID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.SupplierPayable), args.Error(1)
}

func (m *MockSupplierPayableRepository) FindAll(ctx context.Context, filter payment.SupplierPayableFilter) ([]payment.SupplierPayable, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payment.SupplierPayable), args.Error(1)
}

func (m *MockSupplierPayableRepository) Count(ctx context.Context, filter payment.SupplierPayableFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSupplierPayableRepository) Summarize(ctx context.Context) (*payment.PayableSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.PayableSummary), args.Error(1)
}

func (m *MockSupplierPayableRepository) Save(ctx context.Context, payable *payment.SupplierPayable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockSupplierPayableRepository) SaveWithLock(ctx context.Context, payable *payment.SupplierPayable) error {
	args := m.Called(ctx, payable)
	return args.Error(0)
}

func (m *MockSupplierPayableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// mapIdempotencyStore is an in-process IdempotencyStore for tests
type mapIdempotencyStore struct {
	seen map[string]bool
}

func newMapIdempotencyStore() *mapIdempotencyStore {
	return &mapIdempotencyStore{seen: make(map[string]bool)}
}

func (s *mapIdempotencyStore) MarkProcessed(_ context.Context, key string, _ time.Duration) (bool, error) {
	if s.seen[key] {
		return false, nil
	}
	s.seen[key] = true
	return true, nil
}

func (s *mapIdempotencyStore) IsProcessed(_ context.Context, key string) (bool, error) {
	return s.seen[key], nil
}

func (s *mapIdempotencyStore) Close() error { return nil }

func newServiceWithPayable(t *testing.T, sp *payment.SupplierPayable) (*PayableService, *MockSupplierPayableRepository) {
	t.Helper()
	repo := new(MockSupplierPayableRepository)
	repo.On("FindByID", mock.Anything, sp.ID).Return(sp, nil)
	svc := NewPayableService(repo, newMapIdempotencyStore(), shared.DefaultIdempotencyConfig())
	return svc, repo
}

func lumpPayable(t *testing.T, target valueobject.Money) *payment.SupplierPayable {
	t.Helper()
	sp, err := payment.NewSupplierPayable(uuid.New(), uuid.New(), "Importadora Norte", target)
	require.NoError(t, err)
	return sp
}

func TestPayableService_RecordPayment_Lump(t *testing.T) {
	sp := lumpPayable(t, 500000)
	svc, repo := newServiceWithPayable(t, sp)
	repo.On("SaveWithLock", mock.Anything, sp).Return(nil)

	resp, err := svc.RecordPayment(context.Background(), sp.ID, RecordPaymentCommand{
		Cash: 200000,
		Date: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "PARTIAL", resp.Status)
	assert.Equal(t, valueobject.Money(200000), resp.TotalPaid)
	assert.Equal(t, valueobject.Money(300000), resp.Outstanding)
	repo.AssertCalled(t, "SaveWithLock", mock.Anything, sp)
}

func TestPayableService_RecordPayment_InstallmentPath(t *testing.T) {
	sp, err := payment.NewInstallmentPayable(uuid.New(), uuid.New(), "Importadora Norte",
		900000, 3, 30, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	svc, repo := newServiceWithPayable(t, sp)
	repo.On("SaveWithLock", mock.Anything, sp).Return(nil)

	resp, err := svc.RecordPayment(context.Background(), sp.ID, RecordPaymentCommand{
		InstallmentNumber: 1,
		Cash:              300000,
	})
	require.NoError(t, err)

	assert.Equal(t, "PARTIAL", resp.Status)
	require.Len(t, resp.Installments, 3)
	assert.Equal(t, "PAID", resp.Installments[0].Status)
}

func TestPayableService_RecordPayment_IdempotentReplay(t *testing.T) {
	sp := lumpPayable(t, 500000)
	svc, repo := newServiceWithPayable(t, sp)
	repo.On("SaveWithLock", mock.Anything, sp).Return(nil)

	cmd := RecordPaymentCommand{Cash: 200000, IdempotencyKey: "form-123"}

	_, err := svc.RecordPayment(context.Background(), sp.ID, cmd)
	require.NoError(t, err)

	// The replay returns the current ledger without touching the store.
	resp, err := svc.RecordPayment(context.Background(), sp.ID, cmd)
	require.NoError(t, err)
	assert.Equal(t, valueobject.Money(200000), resp.TotalPaid)
	repo.AssertNumberOfCalls(t, "SaveWithLock", 1)
}

func TestPayableService_RecordPayment_DomainErrorNotSaved(t *testing.T) {
	sp := lumpPayable(t, 500000)
	svc, repo := newServiceWithPayable(t, sp)

	_, err := svc.RecordPayment(context.Background(), sp.ID, RecordPaymentCommand{Wire: 100000})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MISSING_WIRE_REFERENCE", domainErr.Code)
	repo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestPayableService_RecordPayment_ConcurrencyConflictSurfaces(t *testing.T) {
	sp := lumpPayable(t, 500000)
	svc, repo := newServiceWithPayable(t, sp)
	repo.On("SaveWithLock", mock.Anything, sp).Return(shared.ErrConcurrencyConflict)

	_, err := svc.RecordPayment(context.Background(), sp.ID, RecordPaymentCommand{Cash: 100000})
	assert.ErrorIs(t, err, shared.ErrConcurrencyConflict)
}

func TestPayableService_RedistributeSchedule_RequiresAcknowledgement(t *testing.T) {
	sp, err := payment.NewInstallmentPayable(uuid.New(), uuid.New(), "Importadora Norte",
		900000, 3, 30, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, sp.RecordInstallmentPayment(1, payment.PaymentInstrumentSet{Cash: 300000}, time.Now()))

	svc, repo := newServiceWithPayable(t, sp)
	repo.On("SaveWithLock", mock.Anything, sp).Return(nil)

	_, err = svc.RedistributeSchedule(context.Background(), sp.ID, RedistributeCommand{Count: 2})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "SCHEDULE_HAS_PAYMENTS", domainErr.Code)

	resp, err := svc.RedistributeSchedule(context.Background(), sp.ID, RedistributeCommand{
		Count:           2,
		AcknowledgeLoss: true,
	})
	require.NoError(t, err)
	require.Len(t, resp.Installments, 2)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestPayableService_GetPayable_NotFound(t *testing.T) {
	repo := new(MockSupplierPayableRepository)
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(nil, shared.ErrNotFound)
	svc := NewPayableService(repo, newMapIdempotencyStore(), shared.DefaultIdempotencyConfig())

	_, err := svc.GetPayable(context.Background(), id)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}
