package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// UnitStatus represents where a unit stands in its lifecycle
type UnitStatus string

const (
	UnitStatusAvailable UnitStatus = "AVAILABLE"
	UnitStatusReserved  UnitStatus = "RESERVED"
	UnitStatusSold      UnitStatus = "SOLD"
	UnitStatusTradedIn  UnitStatus = "TRADED_IN" // Received from a customer, pending refurbishment
)

// IsValid checks if the status is a valid UnitStatus
func (s UnitStatus) IsValid() bool {
	switch s {
	case UnitStatusAvailable, UnitStatusReserved, UnitStatusSold, UnitStatusTradedIn:
		return true
	}
	return false
}

// String returns the string representation of UnitStatus
func (s UnitStatus) String() string {
	return string(s)
}

// ConditionGrade rates the cosmetic and functional state of a unit
type ConditionGrade string

const (
	ConditionGradeNew       ConditionGrade = "NEW"
	ConditionGradeLikeNew   ConditionGrade = "LIKE_NEW"
	ConditionGradeGood      ConditionGrade = "GOOD"
	ConditionGradeFair      ConditionGrade = "FAIR"
	ConditionGradeForRepair ConditionGrade = "FOR_REPAIR"
)

// IsValid checks if the grade is a valid ConditionGrade
func (g ConditionGrade) IsValid() bool {
	switch g {
	case ConditionGradeNew, ConditionGradeLikeNew, ConditionGradeGood,
		ConditionGradeFair, ConditionGradeForRepair:
		return true
	}
	return false
}

// String returns the string representation of ConditionGrade
func (g ConditionGrade) String() string {
	return string(g)
}

// UnitOrigin records how the unit entered the shop
type UnitOrigin string

const (
	UnitOriginPurchase UnitOrigin = "PURCHASE" // Bought from a supplier
	UnitOriginTradeIn  UnitOrigin = "TRADE_IN" // Taken in from a customer
)

// IsValid checks if the origin is a valid UnitOrigin
func (o UnitOrigin) IsValid() bool {
	return o == UnitOriginPurchase || o == UnitOriginTradeIn
}

// Unit is one physical phone identified by its IMEI. Acquisition cost is
// captured at intake; repair cost accumulates as work is done.
type Unit struct {
	shared.BaseAggregateRoot
	IMEI            string            `json:"imei"`
	Brand           string            `json:"brand"`
	Model           string            `json:"model"`
	Storage         string            `json:"storage"`
	Color           string            `json:"color"`
	Condition       ConditionGrade    `json:"condition"`
	Origin          UnitOrigin        `json:"origin"`
	AcquisitionCost valueobject.Money `json:"acquisition_cost"`
	RepairCost      valueobject.Money `json:"repair_cost"`
	ListPriceCash   valueobject.Money `json:"list_price_cash"`
	ListPriceCredit valueobject.Money `json:"list_price_credit"`
	Status          UnitStatus        `json:"status"`
	SoldAt          *time.Time        `json:"sold_at,omitempty"`
}

// NewUnit registers a unit at intake
func NewUnit(imei, brand, model, storage, color string, condition ConditionGrade, origin UnitOrigin, acquisitionCost valueobject.Money) (*Unit, error) {
	imei = strings.TrimSpace(imei)
	if imei == "" {
		return nil, shared.NewDomainError("INVALID_IMEI", "IMEI cannot be empty")
	}
	if brand == "" || model == "" {
		return nil, shared.NewDomainError("INVALID_MODEL", "Brand and model are required")
	}
	if !condition.IsValid() {
		return nil, shared.NewDomainError("INVALID_CONDITION", fmt.Sprintf("Unknown condition grade %q", condition))
	}
	if !origin.IsValid() {
		return nil, shared.NewDomainError("INVALID_ORIGIN", fmt.Sprintf("Unknown unit origin %q", origin))
	}
	if acquisitionCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Acquisition cost cannot be negative")
	}

	status := UnitStatusAvailable
	if origin == UnitOriginTradeIn {
		status = UnitStatusTradedIn
	}

	u := &Unit{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		IMEI:              imei,
		Brand:             brand,
		Model:             model,
		Storage:           storage,
		Color:             color,
		Condition:         condition,
		Origin:            origin,
		AcquisitionCost:   acquisitionCost,
		RepairCost:        valueobject.Zero,
		Status:            status,
	}

	u.AddDomainEvent(NewUnitRegisteredEvent(u))

	return u, nil
}

// SetListPrices sets the asking prices for cash and credit sales
func (u *Unit) SetListPrices(cash, credit valueobject.Money) error {
	if cash.IsNegative() || credit.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "List prices cannot be negative")
	}
	u.ListPriceCash = cash
	u.ListPriceCredit = credit
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// AddRepairCost accumulates refurbishment spend on the unit
func (u *Unit) AddRepairCost(amount valueobject.Money) error {
	if !amount.IsPositive() {
		return shared.NewDomainError("INVALID_AMOUNT", "Repair cost must be positive")
	}
	if u.Status == UnitStatusSold {
		return shared.NewDomainError("INVALID_STATE", "Cannot add repair cost to a sold unit")
	}
	u.RepairCost = u.RepairCost.Add(amount)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// MarkRefurbished moves a traded-in unit onto the sales floor
func (u *Unit) MarkRefurbished(condition ConditionGrade) error {
	if u.Status != UnitStatusTradedIn {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Only traded-in units can be refurbished, unit is %s", u.Status))
	}
	if !condition.IsValid() {
		return shared.NewDomainError("INVALID_CONDITION", fmt.Sprintf("Unknown condition grade %q", condition))
	}
	u.Condition = condition
	u.Status = UnitStatusAvailable
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Reserve holds the unit for a customer
func (u *Unit) Reserve() error {
	if u.Status != UnitStatusAvailable {
		return shared.NewDomainError("UNIT_NOT_AVAILABLE",
			fmt.Sprintf("Cannot reserve unit in %s status", u.Status))
	}
	u.Status = UnitStatusReserved
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// Release puts a reserved unit back on the floor
func (u *Unit) Release() error {
	if u.Status != UnitStatusReserved {
		return shared.NewDomainError("INVALID_STATE",
			fmt.Sprintf("Cannot release unit in %s status", u.Status))
	}
	u.Status = UnitStatusAvailable
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// MarkSold records the unit leaving the shop. Works from AVAILABLE and
// RESERVED; a reservation is consumed by the sale.
func (u *Unit) MarkSold() error {
	if u.Status != UnitStatusAvailable && u.Status != UnitStatusReserved {
		return shared.NewDomainError("UNIT_NOT_AVAILABLE",
			fmt.Sprintf("Cannot sell unit in %s status", u.Status))
	}
	now := time.Now()
	u.Status = UnitStatusSold
	u.SoldAt = &now
	u.UpdatedAt = now
	u.IncrementVersion()

	u.AddDomainEvent(NewUnitSoldEvent(u))

	return nil
}

// TotalCost is what the unit has cost the shop so far
func (u *Unit) TotalCost() valueobject.Money {
	return u.AcquisitionCost.Add(u.RepairCost)
}

// IsAvailable returns true when the unit can be sold or reserved
func (u *Unit) IsAvailable() bool {
	return u.Status == UnitStatusAvailable
}

// DisplayName is the human label used in listings
func (u *Unit) DisplayName() string {
	parts := []string{u.Brand, u.Model}
	if u.Storage != "" {
		parts = append(parts, u.Storage)
	}
	if u.Color != "" {
		parts = append(parts, u.Color)
	}
	return strings.Join(parts, " ")
}

// UnitRegisteredEvent is raised when a unit enters the inventory
type UnitRegisteredEvent struct {
	shared.BaseDomainEvent
	UnitID          uuid.UUID         `json:"unit_id"`
	IMEI            string            `json:"imei"`
	Brand           string            `json:"brand"`
	Model           string            `json:"model"`
	Origin          UnitOrigin        `json:"origin"`
	AcquisitionCost valueobject.Money `json:"acquisition_cost"`
}

// EventType returns the event type name
func (e *UnitRegisteredEvent) EventType() string {
	return "UnitRegistered"
}

// NewUnitRegisteredEvent creates a new UnitRegisteredEvent
func NewUnitRegisteredEvent(u *Unit) *UnitRegisteredEvent {
	return &UnitRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("UnitRegistered", "Unit", u.ID),
		UnitID:          u.ID,
		IMEI:            u.IMEI,
		Brand:           u.Brand,
		Model:           u.Model,
		Origin:          u.Origin,
		AcquisitionCost: u.AcquisitionCost,
	}
}

// UnitSoldEvent is raised when a unit is sold or handed over in a trade-in
type UnitSoldEvent struct {
	shared.BaseDomainEvent
	UnitID uuid.UUID `json:"unit_id"`
	IMEI   string    `json:"imei"`
	SoldAt time.Time `json:"sold_at"`
}

// EventType returns the event type name
func (e *UnitSoldEvent) EventType() string {
	return "UnitSold"
}

// NewUnitSoldEvent creates a new UnitSoldEvent
func NewUnitSoldEvent(u *Unit) *UnitSoldEvent {
	soldAt := time.Now()
	if u.SoldAt != nil {
		soldAt = *u.SoldAt
	}
	return &UnitSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("UnitSold", "Unit", u.ID),
		UnitID:          u.ID,
		IMEI:            u.IMEI,
		SoldAt:          soldAt,
	}
}
