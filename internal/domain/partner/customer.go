package partner

import (
	"strings"
	"time"

	"github.com/celushop/backend/internal/domain/shared"
)

// Customer is a person the shop sells to, identified informally: only the
// name is mandatory, the rest is whatever the operator managed to collect at
// the counter.
type Customer struct {
	shared.BaseAggregateRoot
	Name  string `json:"name"`
	RUT   string `json:"rut,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// NewCustomer registers a customer
func NewCustomer(name, rut, phone, email string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if rut != "" && !IsPlausibleRUT(rut) {
		return nil, shared.NewDomainError("INVALID_RUT", "RUT format is not valid")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		RUT:               NormalizeRUT(rut),
		Phone:             strings.TrimSpace(phone),
		Email:             strings.TrimSpace(email),
	}, nil
}

// Update replaces the contact fields
func (c *Customer) Update(name, rut, phone, email, notes string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Customer name cannot be empty")
	}
	if rut != "" && !IsPlausibleRUT(rut) {
		return shared.NewDomainError("INVALID_RUT", "RUT format is not valid")
	}

	c.Name = name
	c.RUT = NormalizeRUT(rut)
	c.Phone = strings.TrimSpace(phone)
	c.Email = strings.TrimSpace(email)
	c.Notes = notes
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}
