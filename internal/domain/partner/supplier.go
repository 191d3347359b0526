package partner

import (
	"strings"
	"time"

	"github.com/celushop/backend/internal/domain/shared"
)

// Supplier is a party the shop buys stock from, from import wholesalers down
// to walk-in resellers
type Supplier struct {
	shared.BaseAggregateRoot
	Name    string `json:"name"`
	RUT     string `json:"rut,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address,omitempty"`
	Active  bool   `json:"active"`
}

// NewSupplier registers a supplier
func NewSupplier(name, rut, phone, email, address string) (*Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if rut != "" && !IsPlausibleRUT(rut) {
		return nil, shared.NewDomainError("INVALID_RUT", "RUT format is not valid")
	}

	return &Supplier{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		RUT:               NormalizeRUT(rut),
		Phone:             strings.TrimSpace(phone),
		Email:             strings.TrimSpace(email),
		Address:           strings.TrimSpace(address),
		Active:            true,
	}, nil
}

// Update replaces the contact fields
func (s *Supplier) Update(name, rut, phone, email, address string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Supplier name cannot be empty")
	}
	if rut != "" && !IsPlausibleRUT(rut) {
		return shared.NewDomainError("INVALID_RUT", "RUT format is not valid")
	}

	s.Name = name
	s.RUT = NormalizeRUT(rut)
	s.Phone = strings.TrimSpace(phone)
	s.Email = strings.TrimSpace(email)
	s.Address = strings.TrimSpace(address)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return nil
}

// Deactivate hides the supplier from intake pickers without losing history
func (s *Supplier) Deactivate() {
	s.Active = false
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// Activate restores a deactivated supplier
func (s *Supplier) Activate() {
	s.Active = true
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}
