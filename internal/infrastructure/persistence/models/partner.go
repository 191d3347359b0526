package models

import (
	"github.com/celushop/backend/internal/domain/partner"
)

// CustomerModel is the persistence model for the Customer aggregate root.
type CustomerModel struct {
	AggregateModel
	Name  string `gorm:"type:varchar(200);not null;index"`
	RUT   string `gorm:"type:varchar(12);index"`
	Phone string `gorm:"type:varchar(30)"`
	Email string `gorm:"type:varchar(200)"`
	Notes string `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.baseAggregateRoot(),
		Name:              m.Name,
		RUT:               m.RUT,
		Phone:             m.Phone,
		Email:             m.Email,
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Customer.
func (m *CustomerModel) FromDomain(c *partner.Customer) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.RUT = c.RUT
	m.Phone = c.Phone
	m.Email = c.Email
	m.Notes = c.Notes
}

// CustomerModelFromDomain creates a new persistence model from a domain
// Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{}
	m.FromDomain(c)
	return m
}

// SupplierModel is the persistence model for the Supplier aggregate root.
type SupplierModel struct {
	AggregateModel
	Name    string `gorm:"type:varchar(200);not null;index"`
	RUT     string `gorm:"type:varchar(12);index"`
	Phone   string `gorm:"type:varchar(30)"`
	Email   string `gorm:"type:varchar(200)"`
	Address string `gorm:"type:varchar(300)"`
	Active  bool   `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (SupplierModel) TableName() string {
	return "suppliers"
}

// ToDomain converts the persistence model to a domain Supplier entity.
func (m *SupplierModel) ToDomain() *partner.Supplier {
	return &partner.Supplier{
		BaseAggregateRoot: m.baseAggregateRoot(),
		Name:              m.Name,
		RUT:               m.RUT,
		Phone:             m.Phone,
		Email:             m.Email,
		Address:           m.Address,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Supplier.
func (m *SupplierModel) FromDomain(s *partner.Supplier) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.Name = s.Name
	m.RUT = s.RUT
	m.Phone = s.Phone
	m.Email = s.Email
	m.Address = s.Address
	m.Active = s.Active
}

// SupplierModelFromDomain creates a new persistence model from a domain
// Supplier.
func SupplierModelFromDomain(s *partner.Supplier) *SupplierModel {
	m := &SupplierModel{}
	m.FromDomain(s)
	return m
}
