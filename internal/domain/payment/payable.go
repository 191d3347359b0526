package payment

import (
	"fmt"
	"time"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode selects how a supplier payable is settled
type PaymentMode string

const (
	PaymentModeLumpSum      PaymentMode = "LUMP_SUM"
	PaymentModeInstallments PaymentMode = "INSTALLMENTS"
)

// IsValid checks if the mode is a valid PaymentMode
func (m PaymentMode) IsValid() bool {
	return m == PaymentModeLumpSum || m == PaymentModeInstallments
}

// String returns the string representation of PaymentMode
func (m PaymentMode) String() string {
	return string(m)
}

// PayableStatus represents the status of a supplier payable
type PayableStatus string

const (
	PayableStatusPending PayableStatus = "PENDING" // Nothing collected yet
	PayableStatusPartial PayableStatus = "PARTIAL" // Something collected, target not covered
	PayableStatusPaid    PayableStatus = "PAID"    // Target covered
)

// IsValid checks if the status is a valid PayableStatus
func (s PayableStatus) IsValid() bool {
	return s == PayableStatusPending || s == PayableStatusPartial || s == PayableStatusPaid
}

// String returns the string representation of PayableStatus
func (s PayableStatus) String() string {
	return string(s)
}

// SupplierPayable tracks what the shop still owes the supplier of one
// purchased unit. Exactly one payable exists per unit; the target cost is
// captured at intake and never changes afterwards.
//
// The two payment modes keep deliberately divergent totalling rules. Lump-sum
// totals run on the amounts actually collected, so overpaying drives the
// persisted outstanding negative. Installment totals run on the NOMINAL
// amounts of installments flagged PAID, so overpayment and rounding slack on
// a single installment never reach the ledger total. Both behaviors are load
// bearing for the ledger reports and must stay as two named paths.
type SupplierPayable struct {
	shared.BaseAggregateRoot
	UnitID       uuid.UUID            `json:"unit_id"`
	SupplierID   uuid.UUID            `json:"supplier_id"`
	SupplierName string               `json:"supplier_name"`
	TargetCost   valueobject.Money    `json:"target_cost"`
	Mode         PaymentMode          `json:"mode"`
	Lump         PaymentInstrumentSet `json:"lump"`
	LumpPaidDate *time.Time           `json:"lump_paid_date,omitempty"`
	Installments Installments         `json:"installments"`
	TotalPaid    valueobject.Money    `json:"total_paid"`
	Outstanding  valueobject.Money    `json:"outstanding"`
	Status       PayableStatus        `json:"status"`
}

// NewSupplierPayable creates a lump-sum payable for a freshly purchased unit
func NewSupplierPayable(unitID, supplierID uuid.UUID, supplierName string, targetCost valueobject.Money) (*SupplierPayable, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID cannot be empty")
	}
	if supplierID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SUPPLIER", "Supplier ID cannot be empty")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if !targetCost.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Target cost must be positive")
	}

	sp := &SupplierPayable{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UnitID:            unitID,
		SupplierID:        supplierID,
		SupplierName:      supplierName,
		TargetCost:        targetCost,
		Mode:              PaymentModeLumpSum,
		Installments:      Installments{},
		TotalPaid:         valueobject.Zero,
		Outstanding:       targetCost,
		Status:            PayableStatusPending,
	}

	sp.AddDomainEvent(NewSupplierPayableCreatedEvent(sp))

	return sp, nil
}

// NewInstallmentPayable creates a payable settled in installments
func NewInstallmentPayable(unitID, supplierID uuid.UUID, supplierName string, targetCost valueobject.Money, count, cadenceDays int, startDate time.Time) (*SupplierPayable, error) {
	sp, err := NewSupplierPayable(unitID, supplierID, supplierName, targetCost)
	if err != nil {
		return nil, err
	}

	schedule, err := GenerateSchedule(targetCost, count, cadenceDays, startDate)
	if err != nil {
		return nil, err
	}

	sp.Mode = PaymentModeInstallments
	sp.Installments = schedule
	sp.Outstanding = schedule.PendingNominal()

	return sp, nil
}

// RecordPayment applies a lump-sum payment. Amounts accumulate into the lump
// set, the paid date is last-write-wins. Recording past PAID is legal and
// keeps accumulating; the persisted outstanding goes negative in that case
// and only the display projection clamps it.
func (sp *SupplierPayable) RecordPayment(set PaymentInstrumentSet, date time.Time) error {
	if sp.Mode != PaymentModeLumpSum {
		return shared.NewDomainError("WRONG_PAYMENT_MODE",
			"Payable is settled in installments, record against an installment instead")
	}
	if err := set.ValidateExpected(); err != nil {
		return err
	}

	sp.Lump = sp.Lump.Accumulate(set)
	d := date
	sp.LumpPaidDate = &d
	sp.recomputeLump()

	sp.AddDomainEvent(NewSupplierPaymentRecordedEvent(sp, set, 0))
	if sp.Status == PayableStatusPaid {
		sp.AddDomainEvent(NewSupplierPayablePaidEvent(sp))
	}

	sp.UpdatedAt = time.Now()
	sp.IncrementVersion()

	return nil
}

// RecordInstallmentPayment applies a payment against the installment with the
// given 1-based number. A PAID installment rejects further payments and a
// single payment cannot exceed what the installment has left.
func (sp *SupplierPayable) RecordInstallmentPayment(number int, set PaymentInstrumentSet, date time.Time) error {
	if sp.Mode != PaymentModeInstallments {
		return shared.NewDomainError("WRONG_PAYMENT_MODE",
			"Payable is settled as a lump sum, record a direct payment instead")
	}

	inst, err := sp.Installments.ByNumber(number)
	if err != nil {
		return err
	}
	if inst.IsPaid() {
		return shared.NewDomainError("INSTALLMENT_ALREADY_PAID",
			fmt.Sprintf("Installment %d is already paid", number))
	}
	if err := set.ValidateAgainstRemaining(inst.Remaining()); err != nil {
		return err
	}

	inst.applyPayment(set, date)
	sp.recomputeInstallments()

	sp.AddDomainEvent(NewSupplierPaymentRecordedEvent(sp, set, number))
	if sp.Status == PayableStatusPaid {
		sp.AddDomainEvent(NewSupplierPayablePaidEvent(sp))
	}

	sp.UpdatedAt = time.Now()
	sp.IncrementVersion()

	return nil
}

// Redistribute discards the current schedule, including PAID installments and
// anything collected against them, and regenerates it from the target cost.
// Destructive; callers warn the operator when HasCollectedInstallments is true.
func (sp *SupplierPayable) Redistribute(count, cadenceDays int, startDate time.Time) error {
	schedule, err := GenerateSchedule(sp.TargetCost, count, cadenceDays, startDate)
	if err != nil {
		return err
	}

	previousCount := len(sp.Installments)
	sp.Mode = PaymentModeInstallments
	sp.Installments = schedule
	sp.Lump = PaymentInstrumentSet{}
	sp.LumpPaidDate = nil
	sp.recomputeInstallments()

	sp.AddDomainEvent(NewScheduleRedistributedEvent(sp, previousCount))

	sp.UpdatedAt = time.Now()
	sp.IncrementVersion()

	return nil
}

// recomputeLump derives totals and status from the collected lump amounts
func (sp *SupplierPayable) recomputeLump() {
	sp.TotalPaid = sp.Lump.CashWireTotal()
	sp.Outstanding = sp.TargetCost.Sub(sp.TotalPaid)

	switch {
	case sp.Outstanding.Int64() <= 0:
		sp.Status = PayableStatusPaid
	case sp.TotalPaid.IsPositive():
		sp.Status = PayableStatusPartial
	default:
		sp.Status = PayableStatusPending
	}
}

// recomputeInstallments derives totals and status from the nominal amounts
// of the schedule, not from what was actually collected
func (sp *SupplierPayable) recomputeInstallments() {
	sp.TotalPaid = sp.Installments.PaidNominal()
	sp.Outstanding = sp.Installments.PendingNominal()

	switch {
	case sp.Installments.AllPaid():
		sp.Status = PayableStatusPaid
	case sp.TotalPaid.IsPositive():
		sp.Status = PayableStatusPartial
	default:
		sp.Status = PayableStatusPending
	}
}

// HasCollectedInstallments returns true when any installment holds a payment,
// partial ones included
func (sp *SupplierPayable) HasCollectedInstallments() bool {
	return sp.Installments.HasPayments()
}

// DisplayOutstanding is the outstanding amount for UI projections, clamped at
// zero. The persisted Outstanding keeps its sign.
func (sp *SupplierPayable) DisplayOutstanding() valueobject.Money {
	return sp.Outstanding.ClampZero()
}

// IsPaid returns true if the payable is fully paid
func (sp *SupplierPayable) IsPaid() bool {
	return sp.Status == PayableStatusPaid
}

// IsInstallments returns true when the payable is settled in installments
func (sp *SupplierPayable) IsInstallments() bool {
	return sp.Mode == PaymentModeInstallments
}

// PaidPercentage returns how much of the target cost is covered (0-100)
func (sp *SupplierPayable) PaidPercentage() decimal.Decimal {
	if sp.TargetCost.IsZero() {
		return decimal.NewFromInt(100)
	}
	return sp.TotalPaid.Decimal().
		Div(sp.TargetCost.Decimal()).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
