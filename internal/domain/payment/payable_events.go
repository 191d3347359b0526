package payment

import (
	"time"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SupplierPayableCreatedEvent is raised when a payable is opened for a unit
type SupplierPayableCreatedEvent struct {
	shared.BaseDomainEvent
	PayableID    uuid.UUID         `json:"payable_id"`
	UnitID       uuid.UUID         `json:"unit_id"`
	SupplierID   uuid.UUID         `json:"supplier_id"`
	SupplierName string            `json:"supplier_name"`
	TargetCost   valueobject.Money `json:"target_cost"`
	Mode         PaymentMode       `json:"mode"`
}

// EventType returns the event type name
func (e *SupplierPayableCreatedEvent) EventType() string {
	return "SupplierPayableCreated"
}

// NewSupplierPayableCreatedEvent creates a new SupplierPayableCreatedEvent
func NewSupplierPayableCreatedEvent(sp *SupplierPayable) *SupplierPayableCreatedEvent {
	return &SupplierPayableCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("SupplierPayableCreated", "SupplierPayable", sp.ID),
		PayableID:       sp.ID,
		UnitID:          sp.UnitID,
		SupplierID:      sp.SupplierID,
		SupplierName:    sp.SupplierName,
		TargetCost:      sp.TargetCost,
		Mode:            sp.Mode,
	}
}

// SupplierPaymentRecordedEvent is raised on every accepted payment, lump or
// installment. InstallmentNumber is 0 on the lump path.
type SupplierPaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PayableID         uuid.UUID         `json:"payable_id"`
	UnitID            uuid.UUID         `json:"unit_id"`
	SupplierID        uuid.UUID         `json:"supplier_id"`
	InstallmentNumber int               `json:"installment_number"`
	Cash              valueobject.Money `json:"cash"`
	Wire              valueobject.Money `json:"wire"`
	WireReference     string            `json:"wire_reference,omitempty"`
	TotalPaid         valueobject.Money `json:"total_paid"`
	Outstanding       valueobject.Money `json:"outstanding"`
	Status            PayableStatus     `json:"status"`
}

// EventType returns the event type name
func (e *SupplierPaymentRecordedEvent) EventType() string {
	return "SupplierPaymentRecorded"
}

// NewSupplierPaymentRecordedEvent creates a new SupplierPaymentRecordedEvent
func NewSupplierPaymentRecordedEvent(sp *SupplierPayable, set PaymentInstrumentSet, installmentNumber int) *SupplierPaymentRecordedEvent {
	return &SupplierPaymentRecordedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent("SupplierPaymentRecorded", "SupplierPayable", sp.ID),
		PayableID:         sp.ID,
		UnitID:            sp.UnitID,
		SupplierID:        sp.SupplierID,
		InstallmentNumber: installmentNumber,
		Cash:              set.Cash,
		Wire:              set.Wire,
		WireReference:     set.WireReference,
		TotalPaid:         sp.TotalPaid,
		Outstanding:       sp.Outstanding,
		Status:            sp.Status,
	}
}

// SupplierPayablePaidEvent is raised when the target cost is fully covered
type SupplierPayablePaidEvent struct {
	shared.BaseDomainEvent
	PayableID    uuid.UUID         `json:"payable_id"`
	UnitID       uuid.UUID         `json:"unit_id"`
	SupplierID   uuid.UUID         `json:"supplier_id"`
	SupplierName string            `json:"supplier_name"`
	TargetCost   valueobject.Money `json:"target_cost"`
	TotalPaid    valueobject.Money `json:"total_paid"`
	PaidAt       time.Time         `json:"paid_at"`
}

// EventType returns the event type name
func (e *SupplierPayablePaidEvent) EventType() string {
	return "SupplierPayablePaid"
}

// NewSupplierPayablePaidEvent creates a new SupplierPayablePaidEvent
func NewSupplierPayablePaidEvent(sp *SupplierPayable) *SupplierPayablePaidEvent {
	paidAt := time.Now()
	if sp.LumpPaidDate != nil {
		paidAt = *sp.LumpPaidDate
	}
	return &SupplierPayablePaidEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("SupplierPayablePaid", "SupplierPayable", sp.ID),
		PayableID:       sp.ID,
		UnitID:          sp.UnitID,
		SupplierID:      sp.SupplierID,
		SupplierName:    sp.SupplierName,
		TargetCost:      sp.TargetCost,
		TotalPaid:       sp.TotalPaid,
		PaidAt:          paidAt,
	}
}

// ScheduleRedistributedEvent is raised when an installment schedule is thrown
// away and regenerated
type ScheduleRedistributedEvent struct {
	shared.BaseDomainEvent
	PayableID     uuid.UUID         `json:"payable_id"`
	UnitID        uuid.UUID         `json:"unit_id"`
	PreviousCount int               `json:"previous_count"`
	NewCount      int               `json:"new_count"`
	TargetCost    valueobject.Money `json:"target_cost"`
}

// EventType returns the event type name
func (e *ScheduleRedistributedEvent) EventType() string {
	return "ScheduleRedistributed"
}

// NewScheduleRedistributedEvent creates a new ScheduleRedistributedEvent
func NewScheduleRedistributedEvent(sp *SupplierPayable, previousCount int) *ScheduleRedistributedEvent {
	return &ScheduleRedistributedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("ScheduleRedistributed", "SupplierPayable", sp.ID),
		PayableID:       sp.ID,
		UnitID:          sp.UnitID,
		PreviousCount:   previousCount,
		NewCount:        len(sp.Installments),
		TargetCost:      sp.TargetCost,
	}
}
