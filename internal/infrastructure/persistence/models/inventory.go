package models

import (
	"time"

	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// UnitModel is the persistence model for the Unit aggregate root.
type UnitModel struct {
	AggregateModel
	IMEI            string                   `gorm:"type:varchar(20);not null;uniqueIndex"`
	Brand           string                   `gorm:"type:varchar(100);not null;index"`
	Model           string                   `gorm:"type:varchar(100);not null;index"`
	Storage         string                   `gorm:"type:varchar(20)"`
	Color           string                   `gorm:"type:varchar(50)"`
	Condition       inventory.ConditionGrade `gorm:"type:varchar(20);not null"`
	Origin          inventory.UnitOrigin     `gorm:"type:varchar(20);not null;index"`
	AcquisitionCost valueobject.Money        `gorm:"type:bigint;not null"`
	RepairCost      valueobject.Money        `gorm:"type:bigint;not null;default:0"`
	ListPriceCash   valueobject.Money        `gorm:"type:bigint;not null;default:0"`
	ListPriceCredit valueobject.Money        `gorm:"type:bigint;not null;default:0"`
	Status          inventory.UnitStatus     `gorm:"type:varchar(20);not null;default:'AVAILABLE';index"`
	SoldAt          *time.Time               `gorm:"index"`
}

// TableName returns the table name for GORM
func (UnitModel) TableName() string {
	return "units"
}

// ToDomain converts the persistence model to a domain Unit entity.
func (m *UnitModel) ToDomain() *inventory.Unit {
	return &inventory.Unit{
		BaseAggregateRoot: m.baseAggregateRoot(),
		IMEI:              m.IMEI,
		Brand:             m.Brand,
		Model:             m.Model,
		Storage:           m.Storage,
		Color:             m.Color,
		Condition:         m.Condition,
		Origin:            m.Origin,
		AcquisitionCost:   m.AcquisitionCost,
		RepairCost:        m.RepairCost,
		ListPriceCash:     m.ListPriceCash,
		ListPriceCredit:   m.ListPriceCredit,
		Status:            m.Status,
		SoldAt:            m.SoldAt,
	}
}

// FromDomain populates the persistence model from a domain Unit.
func (m *UnitModel) FromDomain(u *inventory.Unit) {
	m.FromDomainAggregateRoot(u.BaseAggregateRoot)
	m.IMEI = u.IMEI
	m.Brand = u.Brand
	m.Model = u.Model
	m.Storage = u.Storage
	m.Color = u.Color
	m.Condition = u.Condition
	m.Origin = u.Origin
	m.AcquisitionCost = u.AcquisitionCost
	m.RepairCost = u.RepairCost
	m.ListPriceCash = u.ListPriceCash
	m.ListPriceCredit = u.ListPriceCredit
	m.Status = u.Status
	m.SoldAt = u.SoldAt
}

// UnitModelFromDomain creates a new persistence model from a domain Unit.
func UnitModelFromDomain(u *inventory.Unit) *UnitModel {
	m := &UnitModel{}
	m.FromDomain(u)
	return m
}

// ReservationModel is the persistence model for the Reservation aggregate root.
type ReservationModel struct {
	AggregateModel
	UnitID     uuid.UUID                   `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Deposit    valueobject.Money           `gorm:"type:bigint;not null;default:0"`
	ExpiresAt  time.Time                   `gorm:"not null"`
	Status     inventory.ReservationStatus `gorm:"type:varchar(20);not null;default:'ACTIVE';index"`
}

// TableName returns the table name for GORM
func (ReservationModel) TableName() string {
	return "reservations"
}

// ToDomain converts the persistence model to a domain Reservation entity.
func (m *ReservationModel) ToDomain() *inventory.Reservation {
	return &inventory.Reservation{
		BaseAggregateRoot: m.baseAggregateRoot(),
		UnitID:            m.UnitID,
		CustomerID:        m.CustomerID,
		Deposit:           m.Deposit,
		ExpiresAt:         m.ExpiresAt,
		Status:            m.Status,
	}
}

// FromDomain populates the persistence model from a domain Reservation.
func (m *ReservationModel) FromDomain(r *inventory.Reservation) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.UnitID = r.UnitID
	m.CustomerID = r.CustomerID
	m.Deposit = r.Deposit
	m.ExpiresAt = r.ExpiresAt
	m.Status = r.Status
}

// ReservationModelFromDomain creates a new persistence model from a domain
// Reservation.
func ReservationModelFromDomain(r *inventory.Reservation) *ReservationModel {
	m := &ReservationModel{}
	m.FromDomain(r)
	return m
}
