package inventory

import (
	"testing"
	"time"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUnit(t *testing.T) *Unit {
	t.Helper()
	u, err := NewUnit("356938035643809", "Samsung", "Galaxy S23", "256GB", "Negro",
		ConditionGradeGood, UnitOriginPurchase, 450000)
	require.NoError(t, err)
	return u
}

func TestNewUnit(t *testing.T) {
	u := newTestUnit(t)

	assert.Equal(t, UnitStatusAvailable, u.Status)
	assert.Equal(t, valueobject.Money(450000), u.AcquisitionCost)
	assert.Equal(t, valueobject.Zero, u.RepairCost)
	assert.Equal(t, "Samsung Galaxy S23 256GB Negro", u.DisplayName())
	require.Len(t, u.GetDomainEvents(), 1)
	assert.Equal(t, "UnitRegistered", u.GetDomainEvents()[0].EventType())
}

func TestNewUnit_TradeInOriginStartsTradedIn(t *testing.T) {
	u, err := NewUnit("356938035643810", "Apple", "iPhone 13", "128GB", "Blanco",
		ConditionGradeFair, UnitOriginTradeIn, 300000)
	require.NoError(t, err)

	assert.Equal(t, UnitStatusTradedIn, u.Status)
	assert.False(t, u.IsAvailable())
}

func TestNewUnit_Validation(t *testing.T) {
	tests := []struct {
		name     string
		imei     string
		brand    string
		cond     ConditionGrade
		origin   UnitOrigin
		cost     valueobject.Money
		wantCode string
	}{
		{"blank imei", "  ", "Samsung", ConditionGradeGood, UnitOriginPurchase, 1000, "INVALID_IMEI"},
		{"missing brand", "356938035643809", "", ConditionGradeGood, UnitOriginPurchase, 1000, "INVALID_MODEL"},
		{"bad condition", "356938035643809", "Samsung", ConditionGrade("MINT"), UnitOriginPurchase, 1000, "INVALID_CONDITION"},
		{"bad origin", "356938035643809", "Samsung", ConditionGradeGood, UnitOrigin("GIFT"), 1000, "INVALID_ORIGIN"},
		{"negative cost", "356938035643809", "Samsung", ConditionGradeGood, UnitOriginPurchase, -1, "INVALID_AMOUNT"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewUnit(tc.imei, tc.brand, "Galaxy S23", "", "", tc.cond, tc.origin, tc.cost)
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		})
	}
}

func TestUnit_ReserveAndRelease(t *testing.T) {
	u := newTestUnit(t)

	require.NoError(t, u.Reserve())
	assert.Equal(t, UnitStatusReserved, u.Status)

	// Double reserve fails.
	err := u.Reserve()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "UNIT_NOT_AVAILABLE", domainErr.Code)

	require.NoError(t, u.Release())
	assert.Equal(t, UnitStatusAvailable, u.Status)
}

func TestUnit_MarkSold(t *testing.T) {
	t.Run("from available", func(t *testing.T) {
		u := newTestUnit(t)
		require.NoError(t, u.MarkSold())
		assert.Equal(t, UnitStatusSold, u.Status)
		require.NotNil(t, u.SoldAt)
	})

	t.Run("from reserved consumes the hold", func(t *testing.T) {
		u := newTestUnit(t)
		require.NoError(t, u.Reserve())
		require.NoError(t, u.MarkSold())
		assert.Equal(t, UnitStatusSold, u.Status)
	})

	t.Run("sold twice fails", func(t *testing.T) {
		u := newTestUnit(t)
		require.NoError(t, u.MarkSold())
		err := u.MarkSold()
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "UNIT_NOT_AVAILABLE", domainErr.Code)
	})
}

func TestUnit_RepairCostAccumulates(t *testing.T) {
	u := newTestUnit(t)

	require.NoError(t, u.AddRepairCost(30000))
	require.NoError(t, u.AddRepairCost(15000))
	assert.Equal(t, valueobject.Money(45000), u.RepairCost)
	assert.Equal(t, valueobject.Money(495000), u.TotalCost())

	require.NoError(t, u.MarkSold())
	assert.Error(t, u.AddRepairCost(10000))
}

func TestUnit_MarkRefurbished(t *testing.T) {
	u, err := NewUnit("356938035643810", "Apple", "iPhone 13", "128GB", "Blanco",
		ConditionGradeForRepair, UnitOriginTradeIn, 300000)
	require.NoError(t, err)

	require.NoError(t, u.MarkRefurbished(ConditionGradeGood))
	assert.Equal(t, UnitStatusAvailable, u.Status)
	assert.Equal(t, ConditionGradeGood, u.Condition)

	// Only traded-in units go through refurbishment.
	assert.Error(t, newTestUnit(t).MarkRefurbished(ConditionGradeGood))
}

func TestReservation_Lifecycle(t *testing.T) {
	expiry := time.Now().Add(72 * time.Hour)
	r, err := NewReservation(uuid.New(), uuid.New(), 50000, expiry)
	require.NoError(t, err)
	assert.Equal(t, ReservationStatusActive, r.Status)
	assert.False(t, r.IsExpired())

	require.NoError(t, r.Consume())
	assert.Equal(t, ReservationStatusConsumed, r.Status)
	assert.Error(t, r.Cancel())

	r2, err := NewReservation(uuid.New(), uuid.New(), 0, expiry)
	require.NoError(t, err)
	require.NoError(t, r2.Cancel())
	assert.Equal(t, ReservationStatusCancelled, r2.Status)
}

func TestNewReservation_Validation(t *testing.T) {
	_, err := NewReservation(uuid.Nil, uuid.New(), 50000, time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = NewReservation(uuid.New(), uuid.New(), -1, time.Now().Add(time.Hour))
	assert.Error(t, err)

	_, err = NewReservation(uuid.New(), uuid.New(), 50000, time.Now().Add(-time.Hour))
	assert.Error(t, err)
}
