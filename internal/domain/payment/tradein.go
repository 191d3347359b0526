package payment

import (
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// TradeDirection tells who owes the difference after a trade-in evaluation
type TradeDirection string

const (
	TradeDirectionCustomerOwes TradeDirection = "CUSTOMER_OWES"
	TradeDirectionBusinessOwes TradeDirection = "BUSINESS_OWES"
	TradeDirectionEven         TradeDirection = "EVEN"
)

// IsValid checks if the direction is a valid TradeDirection
func (d TradeDirection) IsValid() bool {
	return d == TradeDirectionCustomerOwes || d == TradeDirectionBusinessOwes || d == TradeDirectionEven
}

// String returns the string representation of TradeDirection
func (d TradeDirection) String() string {
	return string(d)
}

// EvaluateTradeIn compares the outgoing unit's price with the appraised value
// of the customer's device. The difference keeps its sign; direction is a
// pure sign tie-break with zero mapped to EVEN.
func EvaluateTradeIn(outgoingPrice, appraisedValue valueobject.Money) (valueobject.Money, TradeDirection) {
	difference := outgoingPrice.Sub(appraisedValue)
	switch {
	case difference.IsPositive():
		return difference, TradeDirectionCustomerOwes
	case difference.IsNegative():
		return difference, TradeDirectionBusinessOwes
	default:
		return difference, TradeDirectionEven
	}
}

// ProfitOnSale is the margin on the outgoing unit, independent of the
// trade-in math but reported alongside it
func ProfitOnSale(outgoingPrice, outgoingCost, outgoingRepairCost valueobject.Money) valueobject.Money {
	return outgoingPrice.Sub(outgoingCost).Sub(outgoingRepairCost)
}

// TradeIn records a device swap: the shop hands over an outgoing unit and
// takes the customer's device at an appraised value, settling the difference
// in cash and wire. The record is immutable once the linked sale and unit
// rows are written; the outstanding balance is a derived display value, never
// a persisted settled flag.
type TradeIn struct {
	shared.BaseAggregateRoot
	OutgoingUnitID uuid.UUID            `json:"outgoing_unit_id"`
	OutgoingPrice  valueobject.Money    `json:"outgoing_price"`
	IncomingUnitID uuid.UUID            `json:"incoming_unit_id"`
	AppraisedValue valueobject.Money    `json:"appraised_value"`
	CustomerID     uuid.UUID            `json:"customer_id"`
	Difference     valueobject.Money    `json:"difference"`
	Direction      TradeDirection       `json:"direction"`
	Settlement     PaymentInstrumentSet `json:"settlement"`
}

// NewTradeIn evaluates and records a trade-in
func NewTradeIn(outgoingUnitID, incomingUnitID, customerID uuid.UUID, outgoingPrice, appraisedValue valueobject.Money, settlement PaymentInstrumentSet) (*TradeIn, error) {
	if outgoingUnitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Outgoing unit ID cannot be empty")
	}
	if incomingUnitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Incoming unit ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if !outgoingPrice.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Outgoing price must be positive")
	}
	if appraisedValue.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Appraised value cannot be negative")
	}
	if err := settlement.Validate(); err != nil {
		return nil, err
	}

	difference, direction := EvaluateTradeIn(outgoingPrice, appraisedValue)

	ti := &TradeIn{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		OutgoingUnitID:    outgoingUnitID,
		OutgoingPrice:     outgoingPrice,
		IncomingUnitID:    incomingUnitID,
		AppraisedValue:    appraisedValue,
		CustomerID:        customerID,
		Difference:        difference,
		Direction:         direction,
		Settlement:        settlement,
	}

	ti.AddDomainEvent(NewTradeInRecordedEvent(ti))

	return ti, nil
}

// SettlementOutstanding is what remains of the difference after the recorded
// settlement. Meaningful only when the direction is not EVEN; for an EVEN
// trade there is nothing to settle and the result is zero.
func (ti *TradeIn) SettlementOutstanding() valueobject.Money {
	if ti.Direction == TradeDirectionEven {
		return valueobject.Zero
	}
	return ti.Difference.Abs().Sub(ti.Settlement.Total())
}

// Profit is the margin on the outgoing unit given its costs
func (ti *TradeIn) Profit(outgoingCost, outgoingRepairCost valueobject.Money) valueobject.Money {
	return ProfitOnSale(ti.OutgoingPrice, outgoingCost, outgoingRepairCost)
}

// TradeInRecordedEvent is raised when a trade-in is registered
type TradeInRecordedEvent struct {
	shared.BaseDomainEvent
	TradeInID      uuid.UUID         `json:"trade_in_id"`
	OutgoingUnitID uuid.UUID         `json:"outgoing_unit_id"`
	IncomingUnitID uuid.UUID         `json:"incoming_unit_id"`
	CustomerID     uuid.UUID         `json:"customer_id"`
	Difference     valueobject.Money `json:"difference"`
	Direction      TradeDirection    `json:"direction"`
}

// EventType returns the event type name
func (e *TradeInRecordedEvent) EventType() string {
	return "TradeInRecorded"
}

// NewTradeInRecordedEvent creates a new TradeInRecordedEvent
func NewTradeInRecordedEvent(ti *TradeIn) *TradeInRecordedEvent {
	return &TradeInRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("TradeInRecorded", "TradeIn", ti.ID),
		TradeInID:       ti.ID,
		OutgoingUnitID:  ti.OutgoingUnitID,
		IncomingUnitID:  ti.IncomingUnitID,
		CustomerID:      ti.CustomerID,
		Difference:      ti.Difference,
		Direction:       ti.Direction,
	}
}
