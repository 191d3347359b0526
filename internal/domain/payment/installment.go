package payment

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
)

// DefaultCadenceDays is the spacing between installment due dates when the
// operator does not choose one.
const DefaultCadenceDays = 30

// InstallmentStatus represents the paid state of one installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "PENDING"
	InstallmentStatusPaid    InstallmentStatus = "PAID"
)

// IsValid checks if the status is a valid InstallmentStatus
func (s InstallmentStatus) IsValid() bool {
	return s == InstallmentStatusPending || s == InstallmentStatusPaid
}

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// Installment is one scheduled partial payment (cuota) within a supplier
// payable. Installments are owned wholesale by their payable: redistribution
// replaces the full sequence, they are never deleted one by one.
type Installment struct {
	Number   int                  `json:"number"` // 1-based position in the schedule
	Amount   valueobject.Money    `json:"amount"`
	DueDate  time.Time            `json:"due_date"`
	Paid     PaymentInstrumentSet `json:"paid"`
	PaidDate *time.Time           `json:"paid_date,omitempty"`
	Status   InstallmentStatus    `json:"status"`
}

// IsPaid returns true once the installment is fully covered
func (i *Installment) IsPaid() bool {
	return i.Status == InstallmentStatusPaid
}

// Remaining returns the nominal amount still uncovered by cash+wire
func (i *Installment) Remaining() valueobject.Money {
	return i.Amount.Sub(i.Paid.CashWireTotal())
}

// applyPayment accumulates a payment and re-derives the installment status.
// PAID iff the collected cash+wire covers the nominal amount.
func (i *Installment) applyPayment(set PaymentInstrumentSet, date time.Time) {
	i.Paid = i.Paid.Accumulate(set)
	d := date
	i.PaidDate = &d
	if i.Paid.CashWireTotal().Int64() >= i.Amount.Int64() {
		i.Status = InstallmentStatusPaid
	} else {
		i.Status = InstallmentStatusPending
	}
}

// Installments is the ordered installment sequence of a payable. It is stored
// as a jsonb column, hence the Valuer/Scanner implementations.
type Installments []Installment

// GenerateSchedule derives count installments from a total. Every installment
// gets the identical truncated share of the total (no remainder
// redistribution: 1.000.000 over 3 yields 333.333 each, 999.999 in total;
// the schedule must reproduce that peso-level slack, not absorb it).
// Due dates step cadenceDays from startDate, first one a full cadence out.
func GenerateSchedule(total valueobject.Money, count int, cadenceDays int, startDate time.Time) (Installments, error) {
	if count <= 0 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENT_COUNT",
			fmt.Sprintf("Installment count must be positive, got %d", count))
	}
	if !total.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Schedule total must be positive")
	}
	if cadenceDays <= 0 {
		cadenceDays = DefaultCadenceDays
	}

	amount, err := total.DivideEven(count)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INSTALLMENT_COUNT", err.Error())
	}

	schedule := make(Installments, count)
	for i := range count {
		schedule[i] = Installment{
			Number:  i + 1,
			Amount:  amount,
			DueDate: startDate.AddDate(0, 0, cadenceDays*(i+1)),
			Status:  InstallmentStatusPending,
		}
	}
	return schedule, nil
}

// ByNumber returns the installment with the given 1-based number
func (ins Installments) ByNumber(number int) (*Installment, error) {
	if number < 1 || number > len(ins) {
		return nil, shared.NewDomainError("INSTALLMENT_NOT_FOUND",
			fmt.Sprintf("Installment %d does not exist (schedule has %d)", number, len(ins)))
	}
	return &ins[number-1], nil
}

// PaidNominal sums the nominal amounts of installments flagged PAID. The
// ledger totals in installment mode run on nominal amounts, so overpayment
// or rounding slack on one installment never leaks into the payable total.
func (ins Installments) PaidNominal() valueobject.Money {
	var total valueobject.Money
	for i := range ins {
		if ins[i].IsPaid() {
			total = total.Add(ins[i].Amount)
		}
	}
	return total
}

// PendingNominal sums the nominal amounts of installments still PENDING
func (ins Installments) PendingNominal() valueobject.Money {
	var total valueobject.Money
	for i := range ins {
		if !ins[i].IsPaid() {
			total = total.Add(ins[i].Amount)
		}
	}
	return total
}

// AllPaid returns true when every installment is PAID
func (ins Installments) AllPaid() bool {
	if len(ins) == 0 {
		return false
	}
	for i := range ins {
		if !ins[i].IsPaid() {
			return false
		}
	}
	return true
}

// HasPayments returns true if any installment has collected anything,
// including partially. Callers warn before redistributing such a schedule.
func (ins Installments) HasPayments() bool {
	for i := range ins {
		if !ins[i].Paid.IsEmpty() {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer for jsonb storage
func (ins Installments) Value() (driver.Value, error) {
	if ins == nil {
		return "[]", nil
	}
	b, err := json.Marshal(ins)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for jsonb retrieval
func (ins *Installments) Scan(value any) error {
	if value == nil {
		*ins = Installments{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Installments", value)
	}
	return json.Unmarshal(data, ins)
}
