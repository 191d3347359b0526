package payment

import (
	"context"
	"testing"

	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockTradeInRepository is a mock implementation of TradeInRepository
type MockTradeInRepository struct {
	mock.Mock
}

func (m *MockTradeInRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.TradeIn, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.TradeIn), args.Error(1)
}

func (m *MockTradeInRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]payment.TradeIn, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]payment.TradeIn), args.Error(1)
}

func (m *MockTradeInRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payment.TradeIn, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payment.TradeIn), args.Error(1)
}

func (m *MockTradeInRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTradeInRepository) Save(ctx context.Context, tradeIn *payment.TradeIn) error {
	args := m.Called(ctx, tradeIn)
	return args.Error(0)
}

// MockUnitRepository is a mock implementation of inventory.UnitRepository
type MockUnitRepository struct {
	mock.Mock
}

func (m *MockUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Unit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindByIMEI(ctx context.Context, imei string) (*inventory.Unit, error) {
	args := m.Called(ctx, imei)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) FindAll(ctx context.Context, filter inventory.UnitFilter) ([]inventory.Unit, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Unit), args.Error(1)
}

func (m *MockUnitRepository) Count(ctx context.Context, filter inventory.UnitFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnitRepository) Save(ctx context.Context, unit *inventory.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) SaveWithLock(ctx context.Context, unit *inventory.Unit) error {
	args := m.Called(ctx, unit)
	return args.Error(0)
}

func (m *MockUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func availableUnit(t *testing.T) *inventory.Unit {
	t.Helper()
	u, err := inventory.NewUnit("356938035643809", "Samsung", "Galaxy S23", "256GB", "Negro",
		inventory.ConditionGradeGood, inventory.UnitOriginPurchase, 450000)
	require.NoError(t, err)
	return u
}

func TestTradeInService_Evaluate(t *testing.T) {
	svc := NewTradeInService(new(MockTradeInRepository), new(MockUnitRepository))

	eval := svc.Evaluate(700000, 450000)
	assert.Equal(t, valueobject.Money(250000), eval.Difference)
	assert.Equal(t, "CUSTOMER_OWES", eval.Direction)

	eval = svc.Evaluate(450000, 700000)
	assert.Equal(t, valueobject.Money(-250000), eval.Difference)
	assert.Equal(t, "BUSINESS_OWES", eval.Direction)
}

func TestTradeInService_EvaluateAndRecord(t *testing.T) {
	outgoing := availableUnit(t)
	tradeInRepo := new(MockTradeInRepository)
	unitRepo := new(MockUnitRepository)
	unitRepo.On("FindByID", mock.Anything, outgoing.ID).Return(outgoing, nil)
	unitRepo.On("SaveWithLock", mock.Anything, outgoing).Return(nil)
	unitRepo.On("Save", mock.Anything, mock.AnythingOfType("*inventory.Unit")).Return(nil)
	tradeInRepo.On("Save", mock.Anything, mock.AnythingOfType("*payment.TradeIn")).Return(nil)

	svc := NewTradeInService(tradeInRepo, unitRepo)
	resp, err := svc.EvaluateAndRecord(context.Background(), RecordTradeInCommand{
		OutgoingUnitID: outgoing.ID,
		OutgoingPrice:  700000,
		CustomerID:     uuid.New(),
		Incoming: IncomingUnitAppraisal{
			IMEI:           "356938035643810",
			Brand:          "Apple",
			Model:          "iPhone 12",
			Condition:      inventory.ConditionGradeFair,
			AppraisedValue: 450000,
		},
		SettlementCash: 250000,
	})
	require.NoError(t, err)

	assert.Equal(t, "CUSTOMER_OWES", resp.Direction)
	assert.Equal(t, valueobject.Money(250000), resp.Difference)
	assert.Equal(t, valueobject.Zero, resp.SettlementOutstanding)
	// Profit on the outgoing unit: 700.000 - 450.000 cost, no repairs.
	assert.Equal(t, valueobject.Money(250000), resp.Profit)
	assert.Equal(t, inventory.UnitStatusSold, outgoing.Status)

	unitRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*inventory.Unit"))
	tradeInRepo.AssertCalled(t, "Save", mock.Anything, mock.AnythingOfType("*payment.TradeIn"))
}

func TestTradeInService_EvaluateAndRecord_SoldUnitRejected(t *testing.T) {
	outgoing := availableUnit(t)
	require.NoError(t, outgoing.MarkSold())

	unitRepo := new(MockUnitRepository)
	unitRepo.On("FindByID", mock.Anything, outgoing.ID).Return(outgoing, nil)
	svc := NewTradeInService(new(MockTradeInRepository), unitRepo)

	_, err := svc.EvaluateAndRecord(context.Background(), RecordTradeInCommand{
		OutgoingUnitID: outgoing.ID,
		OutgoingPrice:  700000,
		CustomerID:     uuid.New(),
		Incoming: IncomingUnitAppraisal{
			IMEI:           "356938035643810",
			Brand:          "Apple",
			Model:          "iPhone 12",
			Condition:      inventory.ConditionGradeFair,
			AppraisedValue: 450000,
		},
	})
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNIT_NOT_AVAILABLE", domainErr.Code)
	unitRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}
