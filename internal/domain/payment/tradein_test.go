package payment

import (
	"testing"

	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateTradeIn(t *testing.T) {
	tests := []struct {
		name           string
		outgoingPrice  valueobject.Money
		appraisedValue valueobject.Money
		wantDifference valueobject.Money
		wantDirection  TradeDirection
	}{
		{"customer owes", 700000, 450000, 250000, TradeDirectionCustomerOwes},
		{"business owes", 450000, 700000, -250000, TradeDirectionBusinessOwes},
		{"even trade", 500000, 500000, 0, TradeDirectionEven},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			difference, direction := EvaluateTradeIn(tc.outgoingPrice, tc.appraisedValue)
			assert.Equal(t, tc.wantDifference, difference)
			assert.Equal(t, tc.wantDirection, direction)
		})
	}
}

func TestProfitOnSale(t *testing.T) {
	assert.Equal(t, valueobject.Money(150000), ProfitOnSale(700000, 500000, 50000))
	// Selling under cost yields a signed loss, never clamped.
	assert.Equal(t, valueobject.Money(-50000), ProfitOnSale(450000, 480000, 20000))
}

func TestNewTradeIn(t *testing.T) {
	ti, err := NewTradeIn(uuid.New(), uuid.New(), uuid.New(), 700000, 450000,
		PaymentInstrumentSet{Cash: 100000, Wire: 100000, WireReference: "TX5"})
	require.NoError(t, err)

	assert.Equal(t, valueobject.Money(250000), ti.Difference)
	assert.Equal(t, TradeDirectionCustomerOwes, ti.Direction)
	assert.Equal(t, valueobject.Money(50000), ti.SettlementOutstanding())
	require.Len(t, ti.GetDomainEvents(), 1)
	assert.Equal(t, "TradeInRecorded", ti.GetDomainEvents()[0].EventType())
}

func TestNewTradeIn_Validation(t *testing.T) {
	out, in, cust := uuid.New(), uuid.New(), uuid.New()

	_, err := NewTradeIn(uuid.Nil, in, cust, 700000, 450000, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_UNIT")

	_, err = NewTradeIn(out, in, uuid.Nil, 700000, 450000, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_CUSTOMER")

	_, err = NewTradeIn(out, in, cust, 0, 450000, PaymentInstrumentSet{})
	assertDomainCode(t, err, "INVALID_AMOUNT")

	_, err = NewTradeIn(out, in, cust, 700000, 450000, PaymentInstrumentSet{Wire: 50000})
	assertDomainCode(t, err, "MISSING_WIRE_REFERENCE")
}

func TestTradeIn_SettlementOutstanding_Even(t *testing.T) {
	ti, err := NewTradeIn(uuid.New(), uuid.New(), uuid.New(), 500000, 500000, PaymentInstrumentSet{})
	require.NoError(t, err)

	assert.Equal(t, TradeDirectionEven, ti.Direction)
	assert.Equal(t, valueobject.Zero, ti.SettlementOutstanding())
}

func TestTradeIn_SettlementOutstanding_BusinessOwes(t *testing.T) {
	// The shop owes the customer 250.000 and has handed over 250.000 cash.
	ti, err := NewTradeIn(uuid.New(), uuid.New(), uuid.New(), 450000, 700000,
		PaymentInstrumentSet{Cash: 250000})
	require.NoError(t, err)

	assert.Equal(t, TradeDirectionBusinessOwes, ti.Direction)
	assert.Equal(t, valueobject.Zero, ti.SettlementOutstanding())
}

func TestTradeIn_Profit(t *testing.T) {
	ti, err := NewTradeIn(uuid.New(), uuid.New(), uuid.New(), 700000, 450000, PaymentInstrumentSet{})
	require.NoError(t, err)

	assert.Equal(t, valueobject.Money(170000), ti.Profit(500000, 30000))
}
