package payment

import (
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PricingMode selects which price a sale charges
type PricingMode string

const (
	PricingModeCash     PricingMode = "CASH"
	PricingModeFinanced PricingMode = "FINANCED"
)

// IsValid checks if the mode is a valid PricingMode
func (m PricingMode) IsValid() bool {
	return m == PricingModeCash || m == PricingModeFinanced
}

// String returns the string representation of PricingMode
func (m PricingMode) String() string {
	return string(m)
}

// PriceDue returns the price the sale charges under the given mode
func PriceDue(mode PricingMode, cashPrice, financedPrice valueobject.Money) valueobject.Money {
	if mode == PricingModeFinanced {
		return financedPrice
	}
	return cashPrice
}

// Sale records the settlement of one unit leaving the shop. A financed sale
// counts as fully collected by definition: the financing institution's
// obligation to the shop is out of scope, so its outstanding is pinned at
// zero no matter what the operator enters as the allocation.
type Sale struct {
	shared.BaseAggregateRoot
	UnitID         uuid.UUID            `json:"unit_id"`
	CustomerID     uuid.UUID            `json:"customer_id"`
	Mode           PricingMode          `json:"mode"`
	CashPrice      valueobject.Money    `json:"cash_price"`
	FinancedPrice  valueobject.Money    `json:"financed_price"`
	Allocation     PaymentInstrumentSet `json:"allocation"`
	PriceDue       valueobject.Money    `json:"price_due"`
	CollectedTotal valueobject.Money    `json:"collected_total"`
	Outstanding    valueobject.Money    `json:"outstanding"`
}

// NewSale evaluates and records a sale
func NewSale(unitID, customerID uuid.UUID, mode PricingMode, cashPrice, financedPrice valueobject.Money, allocation PaymentInstrumentSet) (*Sale, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if !mode.IsValid() {
		return nil, shared.NewDomainError("INVALID_PRICING_MODE", "Pricing mode must be CASH or FINANCED")
	}
	due := PriceDue(mode, cashPrice, financedPrice)
	if !due.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Sale price must be positive")
	}
	if err := allocation.Validate(); err != nil {
		return nil, err
	}

	s := &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UnitID:            unitID,
		CustomerID:        customerID,
		Mode:              mode,
		CashPrice:         cashPrice,
		FinancedPrice:     financedPrice,
		Allocation:        allocation,
		PriceDue:          due,
	}

	if mode == PricingModeFinanced {
		s.CollectedTotal = financedPrice
		s.Outstanding = valueobject.Zero
	} else {
		s.CollectedTotal = allocation.Total()
		s.Outstanding = due.Sub(s.CollectedTotal)
	}

	s.AddDomainEvent(NewSaleRecordedEvent(s))

	return s, nil
}

// Profit is the margin of the sale given the unit's costs
func (s *Sale) Profit(unitCost, unitRepairCost valueobject.Money) valueobject.Money {
	return s.PriceDue.Sub(unitCost).Sub(unitRepairCost)
}

// IsSettled returns true when nothing remains to collect
func (s *Sale) IsSettled() bool {
	return s.Outstanding.Int64() <= 0
}

// SaleRecordedEvent is raised when a sale is registered
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	SaleID         uuid.UUID         `json:"sale_id"`
	UnitID         uuid.UUID         `json:"unit_id"`
	CustomerID     uuid.UUID         `json:"customer_id"`
	Mode           PricingMode       `json:"mode"`
	PriceDue       valueobject.Money `json:"price_due"`
	CollectedTotal valueobject.Money `json:"collected_total"`
	Outstanding    valueobject.Money `json:"outstanding"`
}

// EventType returns the event type name
func (e *SaleRecordedEvent) EventType() string {
	return "SaleRecorded"
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(s *Sale) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent("SaleRecorded", "Sale", s.ID),
		SaleID:          s.ID,
		UnitID:          s.UnitID,
		CustomerID:      s.CustomerID,
		Mode:            s.Mode,
		PriceDue:        s.PriceDue,
		CollectedTotal:  s.CollectedTotal,
		Outstanding:     s.Outstanding,
	}
}
