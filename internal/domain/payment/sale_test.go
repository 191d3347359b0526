package payment

import (
	"testing"

	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceDue(t *testing.T) {
	assert.Equal(t, valueobject.Money(800000), PriceDue(PricingModeCash, 800000, 900000))
	assert.Equal(t, valueobject.Money(900000), PriceDue(PricingModeFinanced, 800000, 900000))
}

func TestNewSale_Cash(t *testing.T) {
	s, err := NewSale(uuid.New(), uuid.New(), PricingModeCash, 800000, 900000,
		PaymentInstrumentSet{Cash: 500000, Debit: 300000})
	require.NoError(t, err)

	assert.Equal(t, valueobject.Money(800000), s.PriceDue)
	assert.Equal(t, valueobject.Money(800000), s.CollectedTotal)
	assert.Equal(t, valueobject.Zero, s.Outstanding)
	assert.True(t, s.IsSettled())
	require.Len(t, s.GetDomainEvents(), 1)
	assert.Equal(t, "SaleRecorded", s.GetDomainEvents()[0].EventType())
}

func TestNewSale_CashPartiallyCollected(t *testing.T) {
	s, err := NewSale(uuid.New(), uuid.New(), PricingModeCash, 800000, 900000,
		PaymentInstrumentSet{Cash: 500000})
	require.NoError(t, err)

	assert.Equal(t, valueobject.Money(500000), s.CollectedTotal)
	assert.Equal(t, valueobject.Money(300000), s.Outstanding)
	assert.False(t, s.IsSettled())
}

func TestNewSale_FinancedHasZeroOutstanding(t *testing.T) {
	// Whatever the operator enters as the allocation, a financed sale is
	// collected in full by definition.
	for _, allocation := range []PaymentInstrumentSet{
		{},
		{Cash: 100000},
		{Debit: 900000},
	} {
		s, err := NewSale(uuid.New(), uuid.New(), PricingModeFinanced, 800000, 900000, allocation)
		require.NoError(t, err)
		assert.Equal(t, valueobject.Money(900000), s.CollectedTotal)
		assert.Equal(t, valueobject.Zero, s.Outstanding)
		assert.True(t, s.IsSettled())
	}
}

func TestNewSale_Validation(t *testing.T) {
	unit, cust := uuid.New(), uuid.New()

	_, err := NewSale(uuid.Nil, cust, PricingModeCash, 800000, 0, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_UNIT")

	_, err = NewSale(unit, uuid.Nil, PricingModeCash, 800000, 0, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_CUSTOMER")

	_, err = NewSale(unit, cust, PricingMode("LAYAWAY"), 800000, 0, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_PRICING_MODE")

	_, err = NewSale(unit, cust, PricingModeCash, 0, 900000, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_AMOUNT")

	_, err = NewSale(unit, cust, PricingModeCash, 800000, 0, PaymentInstrumentSet{Wire: 100000})
	assertDomainCode(t, err, "MISSING_WIRE_REFERENCE")
}

func TestSale_Profit(t *testing.T) {
	s, err := NewSale(uuid.New(), uuid.New(), PricingModeCash, 800000, 900000,
		PaymentInstrumentSet{Cash: 800000})
	require.NoError(t, err)

	assert.Equal(t, valueobject.Money(250000), s.Profit(500000, 50000))
	// Loss keeps its sign.
	assert.Equal(t, valueobject.Money(-100000), s.Profit(850000, 50000))
}
