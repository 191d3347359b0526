package partner

import (
	"context"

	"github.com/celushop/backend/internal/domain/partner"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerService provides customer and supplier management
type PartnerService struct {
	customerRepo partner.CustomerRepository
	supplierRepo partner.SupplierRepository
}

// NewPartnerService creates a new PartnerService
func NewPartnerService(customerRepo partner.CustomerRepository, supplierRepo partner.SupplierRepository) *PartnerService {
	return &PartnerService{
		customerRepo: customerRepo,
		supplierRepo: supplierRepo,
	}
}

// CustomerCommand carries customer create/update fields
type CustomerCommand struct {
	Name  string
	RUT   string
	Phone string
	Email string
	Notes string
}

// SupplierCommand carries supplier create/update fields
type SupplierCommand struct {
	Name    string
	RUT     string
	Phone   string
	Email   string
	Address string
}

// CreateCustomer registers a customer
func (s *PartnerService) CreateCustomer(ctx context.Context, cmd CustomerCommand) (*partner.Customer, error) {
	customer, err := partner.NewCustomer(cmd.Name, cmd.RUT, cmd.Phone, cmd.Email)
	if err != nil {
		return nil, err
	}
	customer.Notes = cmd.Notes
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// UpdateCustomer updates a customer's contact fields
func (s *PartnerService) UpdateCustomer(ctx context.Context, id uuid.UUID, cmd CustomerCommand) (*partner.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := customer.Update(cmd.Name, cmd.RUT, cmd.Phone, cmd.Email, cmd.Notes); err != nil {
		return nil, err
	}
	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// GetCustomer gets a customer by ID
func (s *PartnerService) GetCustomer(ctx context.Context, id uuid.UUID) (*partner.Customer, error) {
	return s.customerRepo.FindByID(ctx, id)
}

// SearchCustomers finds customers by name or RUT
func (s *PartnerService) SearchCustomers(ctx context.Context, query string, filter shared.Filter) ([]partner.Customer, error) {
	if filter.Page <= 0 || filter.PageSize <= 0 {
		filter = shared.DefaultFilter()
	}
	return s.customerRepo.Search(ctx, query, filter)
}

// CreateSupplier registers a supplier
func (s *PartnerService) CreateSupplier(ctx context.Context, cmd SupplierCommand) (*partner.Supplier, error) {
	supplier, err := partner.NewSupplier(cmd.Name, cmd.RUT, cmd.Phone, cmd.Email, cmd.Address)
	if err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// UpdateSupplier updates a supplier's contact fields
func (s *PartnerService) UpdateSupplier(ctx context.Context, id uuid.UUID, cmd SupplierCommand) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := supplier.Update(cmd.Name, cmd.RUT, cmd.Phone, cmd.Email, cmd.Address); err != nil {
		return nil, err
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// GetSupplier gets a supplier by ID
func (s *PartnerService) GetSupplier(ctx context.Context, id uuid.UUID) (*partner.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

// ListActiveSuppliers lists active suppliers for intake pickers
func (s *PartnerService) ListActiveSuppliers(ctx context.Context, filter shared.Filter) ([]partner.Supplier, error) {
	if filter.Page <= 0 || filter.PageSize <= 0 {
		filter = shared.DefaultFilter()
	}
	return s.supplierRepo.FindActive(ctx, filter)
}

// DeactivateSupplier hides a supplier from intake pickers
func (s *PartnerService) DeactivateSupplier(ctx context.Context, id uuid.UUID) error {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	supplier.Deactivate()
	return s.supplierRepo.Save(ctx, supplier)
}
