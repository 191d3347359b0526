package payment

import (
	"testing"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentInstrumentSet_Total(t *testing.T) {
	set := PaymentInstrumentSet{Cash: 100000, Wire: 250000, Debit: 50000}
	assert.Equal(t, valueobject.Money(400000), set.Total())
	assert.Equal(t, valueobject.Money(350000), set.CashWireTotal())
}

func TestPaymentInstrumentSet_Validate(t *testing.T) {
	tests := []struct {
		name     string
		set      PaymentInstrumentSet
		wantCode string
	}{
		{"cash only is fine", PaymentInstrumentSet{Cash: 100000}, ""},
		{"wire with reference is fine", PaymentInstrumentSet{Wire: 100000, WireReference: "TX1"}, ""},
		{"wire without reference fails", PaymentInstrumentSet{Wire: 100000}, "MISSING_WIRE_REFERENCE"},
		{"wire with blank reference fails", PaymentInstrumentSet{Wire: 100000, WireReference: "   "}, "MISSING_WIRE_REFERENCE"},
		{"zero wire needs no reference", PaymentInstrumentSet{Cash: 5000}, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.set.Validate()
			if tc.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			var domainErr *shared.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, tc.wantCode, domainErr.Code)
		})
	}
}

func TestPaymentInstrumentSet_ValidateExpected(t *testing.T) {
	err := PaymentInstrumentSet{}.ValidateExpected()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "NON_POSITIVE_TOTAL", domainErr.Code)

	assert.NoError(t, PaymentInstrumentSet{Cash: 1000}.ValidateExpected())
}

func TestPaymentInstrumentSet_ValidateAgainstRemaining(t *testing.T) {
	set := PaymentInstrumentSet{Cash: 400000}

	assert.NoError(t, set.ValidateAgainstRemaining(400000))
	assert.NoError(t, set.ValidateAgainstRemaining(500000))

	err := set.ValidateAgainstRemaining(333333)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "EXCEEDS_INSTALLMENT", domainErr.Code)
}

func TestPaymentInstrumentSet_Accumulate(t *testing.T) {
	base := PaymentInstrumentSet{Cash: 100000, Wire: 200000, WireReference: "TX1"}

	t.Run("amounts add", func(t *testing.T) {
		got := base.Accumulate(PaymentInstrumentSet{Cash: 50000, Wire: 100000, WireReference: "TX2"})
		assert.Equal(t, valueobject.Money(150000), got.Cash)
		assert.Equal(t, valueobject.Money(300000), got.Wire)
		assert.Equal(t, "TX2", got.WireReference)
	})

	t.Run("blank incoming reference keeps the old one", func(t *testing.T) {
		got := base.Accumulate(PaymentInstrumentSet{Cash: 50000})
		assert.Equal(t, "TX1", got.WireReference)
	})
}
