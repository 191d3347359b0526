package models

import (
	"time"

	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SupplierPayableModel is the persistence model for the SupplierPayable
// aggregate root. The lump instrument amounts are flattened into columns so
// the ledger can be summed in SQL; the installment schedule travels as jsonb
// because it is only ever read and written as a whole.
type SupplierPayableModel struct {
	AggregateModel
	UnitID        uuid.UUID             `gorm:"type:uuid;not null;uniqueIndex"`
	SupplierID    uuid.UUID             `gorm:"type:uuid;not null;index"`
	SupplierName  string                `gorm:"type:varchar(200);not null"`
	TargetCost    valueobject.Money     `gorm:"type:bigint;not null"`
	Mode          payment.PaymentMode   `gorm:"type:varchar(20);not null;default:'LUMP_SUM';index"`
	LumpCash      valueobject.Money     `gorm:"type:bigint;not null;default:0"`
	LumpWire      valueobject.Money     `gorm:"type:bigint;not null;default:0"`
	LumpDebit     valueobject.Money     `gorm:"type:bigint;not null;default:0"`
	WireReference string                `gorm:"type:varchar(100)"`
	LumpPaidDate  *time.Time
	Installments  payment.Installments  `gorm:"type:jsonb;default:'[]'"`
	TotalPaid     valueobject.Money     `gorm:"type:bigint;not null;default:0"`
	Outstanding   valueobject.Money     `gorm:"type:bigint;not null;index"`
	Status        payment.PayableStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
}

// TableName returns the table name for GORM
func (SupplierPayableModel) TableName() string {
	return "supplier_payables"
}

// ToDomain converts the persistence model to a domain SupplierPayable entity.
func (m *SupplierPayableModel) ToDomain() *payment.SupplierPayable {
	return &payment.SupplierPayable{
		BaseAggregateRoot: m.baseAggregateRoot(),
		UnitID:            m.UnitID,
		SupplierID:        m.SupplierID,
		SupplierName:      m.SupplierName,
		TargetCost:        m.TargetCost,
		Mode:              m.Mode,
		Lump: payment.PaymentInstrumentSet{
			Cash:          m.LumpCash,
			Wire:          m.LumpWire,
			Debit:         m.LumpDebit,
			WireReference: m.WireReference,
		},
		LumpPaidDate: m.LumpPaidDate,
		Installments: m.Installments,
		TotalPaid:    m.TotalPaid,
		Outstanding:  m.Outstanding,
		Status:       m.Status,
	}
}

// FromDomain populates the persistence model from a domain SupplierPayable.
func (m *SupplierPayableModel) FromDomain(sp *payment.SupplierPayable) {
	m.FromDomainAggregateRoot(sp.BaseAggregateRoot)
	m.UnitID = sp.UnitID
	m.SupplierID = sp.SupplierID
	m.SupplierName = sp.SupplierName
	m.TargetCost = sp.TargetCost
	m.Mode = sp.Mode
	m.LumpCash = sp.Lump.Cash
	m.LumpWire = sp.Lump.Wire
	m.LumpDebit = sp.Lump.Debit
	m.WireReference = sp.Lump.WireReference
	m.LumpPaidDate = sp.LumpPaidDate
	m.Installments = sp.Installments
	m.TotalPaid = sp.TotalPaid
	m.Outstanding = sp.Outstanding
	m.Status = sp.Status
}

// SupplierPayableModelFromDomain creates a new persistence model from a
// domain SupplierPayable.
func SupplierPayableModelFromDomain(sp *payment.SupplierPayable) *SupplierPayableModel {
	m := &SupplierPayableModel{}
	m.FromDomain(sp)
	return m
}

// TradeInModel is the persistence model for the TradeIn aggregate root.
type TradeInModel struct {
	AggregateModel
	OutgoingUnitID          uuid.UUID              `gorm:"type:uuid;not null;index"`
	OutgoingPrice           valueobject.Money      `gorm:"type:bigint;not null"`
	IncomingUnitID          uuid.UUID              `gorm:"type:uuid;not null;index"`
	AppraisedValue          valueobject.Money      `gorm:"type:bigint;not null"`
	CustomerID              uuid.UUID              `gorm:"type:uuid;not null;index"`
	Difference              valueobject.Money      `gorm:"type:bigint;not null"`
	Direction               payment.TradeDirection `gorm:"type:varchar(20);not null"`
	SettlementCash          valueobject.Money      `gorm:"type:bigint;not null;default:0"`
	SettlementWire          valueobject.Money      `gorm:"type:bigint;not null;default:0"`
	SettlementDebit         valueobject.Money      `gorm:"type:bigint;not null;default:0"`
	SettlementWireReference string                 `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (TradeInModel) TableName() string {
	return "trade_ins"
}

// ToDomain converts the persistence model to a domain TradeIn entity.
func (m *TradeInModel) ToDomain() *payment.TradeIn {
	return &payment.TradeIn{
		BaseAggregateRoot: m.baseAggregateRoot(),
		OutgoingUnitID:    m.OutgoingUnitID,
		OutgoingPrice:     m.OutgoingPrice,
		IncomingUnitID:    m.IncomingUnitID,
		AppraisedValue:    m.AppraisedValue,
		CustomerID:        m.CustomerID,
		Difference:        m.Difference,
		Direction:         m.Direction,
		Settlement: payment.PaymentInstrumentSet{
			Cash:          m.SettlementCash,
			Wire:          m.SettlementWire,
			Debit:         m.SettlementDebit,
			WireReference: m.SettlementWireReference,
		},
	}
}

// FromDomain populates the persistence model from a domain TradeIn.
func (m *TradeInModel) FromDomain(ti *payment.TradeIn) {
	m.FromDomainAggregateRoot(ti.BaseAggregateRoot)
	m.OutgoingUnitID = ti.OutgoingUnitID
	m.OutgoingPrice = ti.OutgoingPrice
	m.IncomingUnitID = ti.IncomingUnitID
	m.AppraisedValue = ti.AppraisedValue
	m.CustomerID = ti.CustomerID
	m.Difference = ti.Difference
	m.Direction = ti.Direction
	m.SettlementCash = ti.Settlement.Cash
	m.SettlementWire = ti.Settlement.Wire
	m.SettlementDebit = ti.Settlement.Debit
	m.SettlementWireReference = ti.Settlement.WireReference
}

// TradeInModelFromDomain creates a new persistence model from a domain TradeIn.
func TradeInModelFromDomain(ti *payment.TradeIn) *TradeInModel {
	m := &TradeInModel{}
	m.FromDomain(ti)
	return m
}

// SaleModel is the persistence model for the Sale aggregate root.
type SaleModel struct {
	AggregateModel
	UnitID                  uuid.UUID           `gorm:"type:uuid;not null;index"`
	CustomerID              uuid.UUID           `gorm:"type:uuid;not null;index"`
	Mode                    payment.PricingMode `gorm:"type:varchar(20);not null"`
	CashPrice               valueobject.Money   `gorm:"type:bigint;not null"`
	FinancedPrice           valueobject.Money   `gorm:"type:bigint;not null"`
	AllocationCash          valueobject.Money   `gorm:"type:bigint;not null;default:0"`
	AllocationWire          valueobject.Money   `gorm:"type:bigint;not null;default:0"`
	AllocationDebit         valueobject.Money   `gorm:"type:bigint;not null;default:0"`
	AllocationWireReference string              `gorm:"type:varchar(100)"`
	PriceDue                valueobject.Money   `gorm:"type:bigint;not null"`
	CollectedTotal          valueobject.Money   `gorm:"type:bigint;not null"`
	Outstanding             valueobject.Money   `gorm:"type:bigint;not null"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// ToDomain converts the persistence model to a domain Sale entity.
func (m *SaleModel) ToDomain() *payment.Sale {
	return &payment.Sale{
		BaseAggregateRoot: m.baseAggregateRoot(),
		UnitID:            m.UnitID,
		CustomerID:        m.CustomerID,
		Mode:              m.Mode,
		CashPrice:         m.CashPrice,
		FinancedPrice:     m.FinancedPrice,
		Allocation: payment.PaymentInstrumentSet{
			Cash:          m.AllocationCash,
			Wire:          m.AllocationWire,
			Debit:         m.AllocationDebit,
			WireReference: m.AllocationWireReference,
		},
		PriceDue:       m.PriceDue,
		CollectedTotal: m.CollectedTotal,
		Outstanding:    m.Outstanding,
	}
}

// FromDomain populates the persistence model from a domain Sale.
func (m *SaleModel) FromDomain(s *payment.Sale) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.UnitID = s.UnitID
	m.CustomerID = s.CustomerID
	m.Mode = s.Mode
	m.CashPrice = s.CashPrice
	m.FinancedPrice = s.FinancedPrice
	m.AllocationCash = s.Allocation.Cash
	m.AllocationWire = s.Allocation.Wire
	m.AllocationDebit = s.Allocation.Debit
	m.AllocationWireReference = s.Allocation.WireReference
	m.PriceDue = s.PriceDue
	m.CollectedTotal = s.CollectedTotal
	m.Outstanding = s.Outstanding
}

// SaleModelFromDomain creates a new persistence model from a domain Sale.
func SaleModelFromDomain(s *payment.Sale) *SaleModel {
	m := &SaleModel{}
	m.FromDomain(s)
	return m
}
