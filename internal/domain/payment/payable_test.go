package payment

import (
	"testing"
	"time"

	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLumpPayable(t *testing.T, target valueobject.Money) *SupplierPayable {
	t.Helper()
	sp, err := NewSupplierPayable(uuid.New(), uuid.New(), "Importadora Norte", target)
	require.NoError(t, err)
	return sp
}

func newInstallmentPayable(t *testing.T, target valueobject.Money, count int) *SupplierPayable {
	t.Helper()
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sp, err := NewInstallmentPayable(uuid.New(), uuid.New(), "Importadora Norte", target, count, 30, start)
	require.NoError(t, err)
	return sp
}

func TestNewSupplierPayable(t *testing.T) {
	sp := newLumpPayable(t, 500000)

	assert.Equal(t, PaymentModeLumpSum, sp.Mode)
	assert.Equal(t, PayableStatusPending, sp.Status)
	assert.Equal(t, valueobject.Zero, sp.TotalPaid)
	assert.Equal(t, valueobject.Money(500000), sp.Outstanding)
	assert.Equal(t, 1, sp.GetVersion())
	require.Len(t, sp.GetDomainEvents(), 1)
	assert.Equal(t, "SupplierPayableCreated", sp.GetDomainEvents()[0].EventType())

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := NewSupplierPayable(uuid.Nil, uuid.New(), "X", 100)
		assertDomainCode(t, err, "INVALID_UNIT")
		_, err = NewSupplierPayable(uuid.New(), uuid.Nil, "X", 100)
		assertDomainCode(t, err, "INVALID_SUPPLIER")
		_, err = NewSupplierPayable(uuid.New(), uuid.New(), "", 100)
		assertDomainCode(t, err, "INVALID_SUPPLIER_NAME")
		_, err = NewSupplierPayable(uuid.New(), uuid.New(), "X", 0)
		assertDomainCode(t, err, "INVALID_AMOUNT")
	})
}

func TestSupplierPayable_RecordPayment_PartialThenFull(t *testing.T) {
	sp := newLumpPayable(t, 500000)
	now := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	require.NoError(t, sp.RecordPayment(PaymentInstrumentSet{Cash: 200000}, now))
	assert.Equal(t, PayableStatusPartial, sp.Status)
	assert.Equal(t, valueobject.Money(200000), sp.TotalPaid)
	assert.Equal(t, valueobject.Money(300000), sp.Outstanding)

	later := now.AddDate(0, 0, 7)
	require.NoError(t, sp.RecordPayment(PaymentInstrumentSet{Wire: 300000, WireReference: "TX1"}, later))
	assert.Equal(t, PayableStatusPaid, sp.Status)
	assert.Equal(t, valueobject.Money(500000), sp.TotalPaid)
	assert.Equal(t, valueobject.Zero, sp.Outstanding)

	// Invariant holds after every record.
	assert.Equal(t, sp.TargetCost, sp.TotalPaid.Add(sp.Outstanding))

	// Paid date is last-write-wins.
	require.NotNil(t, sp.LumpPaidDate)
	assert.Equal(t, later, *sp.LumpPaidDate)

	// Lump amounts accumulated, never replaced.
	assert.Equal(t, valueobject.Money(200000), sp.Lump.Cash)
	assert.Equal(t, valueobject.Money(300000), sp.Lump.Wire)
	assert.Equal(t, "TX1", sp.Lump.WireReference)

	assert.Equal(t, 3, sp.GetVersion())
}

func TestSupplierPayable_RecordPayment_KeepsAccumulatingPastPaid(t *testing.T) {
	sp := newLumpPayable(t, 500000)
	now := time.Now()

	require.NoError(t, sp.RecordPayment(PaymentInstrumentSet{Cash: 500000}, now))
	assert.Equal(t, PayableStatusPaid, sp.Status)

	// Recording once PAID stays legal; the persisted outstanding goes
	// negative and only the display projection clamps it.
	require.NoError(t, sp.RecordPayment(PaymentInstrumentSet{Cash: 100000}, now))
	assert.Equal(t, PayableStatusPaid, sp.Status)
	assert.Equal(t, valueobject.Money(600000), sp.TotalPaid)
	assert.Equal(t, valueobject.Money(-100000), sp.Outstanding)
	assert.Equal(t, valueobject.Zero, sp.DisplayOutstanding())
}

func TestSupplierPayable_RecordPayment_Validation(t *testing.T) {
	sp := newLumpPayable(t, 500000)
	now := time.Now()

	err := sp.RecordPayment(PaymentInstrumentSet{}, now)
	assertDomainCode(t, err, "NON_POSITIVE_TOTAL")

	err = sp.RecordPayment(PaymentInstrumentSet{Wire: 100000}, now)
	assertDomainCode(t, err, "MISSING_WIRE_REFERENCE")

	// Nothing changed on the rejected attempts.
	assert.Equal(t, PayableStatusPending, sp.Status)
	assert.Equal(t, 1, sp.GetVersion())

	inst := newInstallmentPayable(t, 900000, 3)
	err = inst.RecordPayment(PaymentInstrumentSet{Cash: 100000}, now)
	assertDomainCode(t, err, "WRONG_PAYMENT_MODE")
}

func TestSupplierPayable_RecordInstallmentPayment(t *testing.T) {
	sp := newInstallmentPayable(t, 1000000, 3)
	now := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, valueobject.Money(999999), sp.Outstanding)

	require.NoError(t, sp.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 333333}, now))
	assert.Equal(t, PayableStatusPartial, sp.Status)
	assert.Equal(t, valueobject.Money(333333), sp.TotalPaid)
	assert.Equal(t, valueobject.Money(666666), sp.Outstanding)

	require.NoError(t, sp.RecordInstallmentPayment(2, PaymentInstrumentSet{Wire: 333333, WireReference: "TX7"}, now))
	require.NoError(t, sp.RecordInstallmentPayment(3, PaymentInstrumentSet{Cash: 333333}, now))

	assert.Equal(t, PayableStatusPaid, sp.Status)
	assert.Equal(t, valueobject.Money(999999), sp.TotalPaid)
	assert.Equal(t, valueobject.Zero, sp.Outstanding)
}

func TestSupplierPayable_RecordInstallmentPayment_PartialCoverage(t *testing.T) {
	sp := newInstallmentPayable(t, 900000, 3)
	now := time.Now()

	// A partial payment leaves the installment PENDING. Nominal totalling
	// means the ledger sees nothing paid yet.
	require.NoError(t, sp.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 100000}, now))
	assert.Equal(t, PayableStatusPending, sp.Status)
	assert.Equal(t, valueobject.Zero, sp.TotalPaid)
	assert.Equal(t, valueobject.Money(900000), sp.Outstanding)

	// Completing the installment flips its full nominal amount into the total.
	require.NoError(t, sp.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 200000}, now))
	assert.Equal(t, PayableStatusPartial, sp.Status)
	assert.Equal(t, valueobject.Money(300000), sp.TotalPaid)
	assert.Equal(t, valueobject.Money(600000), sp.Outstanding)
}

func TestSupplierPayable_RecordInstallmentPayment_Rejections(t *testing.T) {
	sp := newInstallmentPayable(t, 900000, 3)
	now := time.Now()

	require.NoError(t, sp.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 300000}, now))
	versionBefore := sp.GetVersion()

	t.Run("already paid leaves the ledger unchanged", func(t *testing.T) {
		err := sp.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 1000}, now)
		assertDomainCode(t, err, "INSTALLMENT_ALREADY_PAID")
		assert.Equal(t, valueobject.Money(300000), sp.TotalPaid)
		assert.Equal(t, valueobject.Money(600000), sp.Outstanding)
		assert.Equal(t, versionBefore, sp.GetVersion())
	})

	t.Run("out of range", func(t *testing.T) {
		err := sp.RecordInstallmentPayment(4, PaymentInstrumentSet{Cash: 1000}, now)
		assertDomainCode(t, err, "INSTALLMENT_NOT_FOUND")
	})

	t.Run("exceeds installment remaining", func(t *testing.T) {
		err := sp.RecordInstallmentPayment(2, PaymentInstrumentSet{Cash: 300001}, now)
		assertDomainCode(t, err, "EXCEEDS_INSTALLMENT")
	})

	t.Run("lump record against installment payable", func(t *testing.T) {
		lump := newLumpPayable(t, 500000)
		err := lump.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 1000}, now)
		assertDomainCode(t, err, "WRONG_PAYMENT_MODE")
	})
}

func TestSupplierPayable_Redistribute(t *testing.T) {
	sp := newInstallmentPayable(t, 900000, 3)
	now := time.Now()

	require.NoError(t, sp.RecordInstallmentPayment(1, PaymentInstrumentSet{Cash: 300000}, now))
	assert.True(t, sp.HasCollectedInstallments())

	// Redistribution discards everything, PAID installments included.
	require.NoError(t, sp.Redistribute(2, 30, now))
	require.Len(t, sp.Installments, 2)
	assert.Equal(t, valueobject.Money(450000), sp.Installments[0].Amount)
	assert.Equal(t, PayableStatusPending, sp.Status)
	assert.Equal(t, valueobject.Zero, sp.TotalPaid)
	assert.Equal(t, valueobject.Money(900000), sp.Outstanding)
	assert.False(t, sp.HasCollectedInstallments())
}

func TestSupplierPayable_Redistribute_ConvertsFromLumpSum(t *testing.T) {
	sp := newLumpPayable(t, 600000)

	require.NoError(t, sp.Redistribute(3, 30, time.Now()))
	assert.Equal(t, PaymentModeInstallments, sp.Mode)
	assert.True(t, sp.IsInstallments())
	require.Len(t, sp.Installments, 3)
	assert.Nil(t, sp.LumpPaidDate)
	assert.True(t, sp.Lump.IsEmpty())
}

func TestSupplierPayable_Redistribute_Repeatable(t *testing.T) {
	sp := newInstallmentPayable(t, 1000000, 3)
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, sp.Redistribute(4, 15, start))
	first := make([]Installment, len(sp.Installments))
	copy(first, sp.Installments)

	// Replaying the same request rebuilds the exact same schedule.
	require.NoError(t, sp.Redistribute(4, 15, start))
	require.Len(t, sp.Installments, len(first))
	for i, inst := range sp.Installments {
		assert.Equal(t, first[i].Number, inst.Number)
		assert.Equal(t, first[i].Amount, inst.Amount)
		assert.Equal(t, first[i].DueDate, inst.DueDate)
	}
	assert.Equal(t, PayableStatusPending, sp.Status)
	assert.Equal(t, valueobject.Money(1000000), sp.Outstanding)
}

func TestSupplierPayable_PaidPercentage(t *testing.T) {
	sp := newLumpPayable(t, 500000)
	require.NoError(t, sp.RecordPayment(PaymentInstrumentSet{Cash: 200000}, time.Now()))

	assert.True(t, sp.PaidPercentage().Equal(decimal.NewFromInt(40)))
}
