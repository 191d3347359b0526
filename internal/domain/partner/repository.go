package partner

import (
	"context"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindByRUT finds a customer by normalized RUT
	FindByRUT(ctx context.Context, rut string) (*Customer, error)

	// Search finds customers whose name or RUT matches the query
	Search(ctx context.Context, query string, filter shared.Filter) ([]Customer, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete soft deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error
}

// SupplierRepository defines the interface for supplier persistence
type SupplierRepository interface {
	// FindByID finds a supplier by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Supplier, error)

	// FindActive lists active suppliers for intake pickers
	FindActive(ctx context.Context, filter shared.Filter) ([]Supplier, error)

	// Save creates or updates a supplier
	Save(ctx context.Context, supplier *Supplier) error

	// Delete soft deletes a supplier
	Delete(ctx context.Context, id uuid.UUID) error
}
