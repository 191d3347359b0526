package payment

import (
	"strings"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
)

// PaymentInstrumentSet holds the amounts an operator entered per payment
// instrument for a single settlement step. Debit only applies at the point of
// sale; supplier payables and trade-ins move through cash and wire.
type PaymentInstrumentSet struct {
	Cash          valueobject.Money `json:"cash"`
	Wire          valueobject.Money `json:"wire"`
	Debit         valueobject.Money `json:"debit"`
	WireReference string            `json:"wire_reference,omitempty"`
}

// Total sums all three instruments
func (s PaymentInstrumentSet) Total() valueobject.Money {
	return s.Cash.Add(s.Wire).Add(s.Debit)
}

// CashWireTotal sums cash and wire only. Supplier-payable accounting ignores
// debit entirely.
func (s PaymentInstrumentSet) CashWireTotal() valueobject.Money {
	return s.Cash.Add(s.Wire)
}

// IsEmpty returns true when no instrument carries an amount
func (s PaymentInstrumentSet) IsEmpty() bool {
	return s.Total().IsZero()
}

// Validate checks instrument-level constraints that hold regardless of the
// settlement context: a wire amount is unidentifiable without its transfer
// reference.
func (s PaymentInstrumentSet) Validate() error {
	if s.Wire.IsPositive() && strings.TrimSpace(s.WireReference) == "" {
		return shared.NewDomainError("MISSING_WIRE_REFERENCE",
			"A wire transfer amount requires its transfer reference")
	}
	return nil
}

// ValidateExpected checks Validate plus that something was actually paid.
// Used on paths where the operator submitted the form intending to record a
// payment.
func (s PaymentInstrumentSet) ValidateExpected() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s.Total().IsZero() {
		return shared.NewDomainError("NON_POSITIVE_TOTAL",
			"At least one instrument must carry a positive amount")
	}
	return nil
}

// ValidateAgainstRemaining checks ValidateExpected plus the per-installment
// cap: a single installment cannot collect more than it has left. The
// lump-sum accumulation path deliberately skips this cap.
func (s PaymentInstrumentSet) ValidateAgainstRemaining(remaining valueobject.Money) error {
	if err := s.ValidateExpected(); err != nil {
		return err
	}
	if s.Total().Int64() > remaining.Int64() {
		return shared.NewDomainError("EXCEEDS_INSTALLMENT",
			"Payment of $"+s.Total().Format()+" exceeds the installment's remaining $"+remaining.Format())
	}
	return nil
}

// Accumulate adds the other set's amounts on top of this one and returns the
// result. Amounts add, never replace; the wire reference is last-write-wins
// whenever the incoming set carries one.
func (s PaymentInstrumentSet) Accumulate(other PaymentInstrumentSet) PaymentInstrumentSet {
	out := PaymentInstrumentSet{
		Cash:          s.Cash.Add(other.Cash),
		Wire:          s.Wire.Add(other.Wire),
		Debit:         s.Debit.Add(other.Debit),
		WireReference: s.WireReference,
	}
	if strings.TrimSpace(other.WireReference) != "" {
		out.WireReference = other.WireReference
	}
	return out
}
