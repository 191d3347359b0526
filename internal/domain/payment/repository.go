package payment

import (
	"context"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SupplierPayableFilter defines filtering options for payable queries
type SupplierPayableFilter struct {
	shared.Filter
	SupplierID *uuid.UUID     // Filter by supplier
	Status     *PayableStatus // Filter by status
	Mode       *PaymentMode   // Filter by payment mode
}

// PayableSummary aggregates the ledger for the UI badges
type PayableSummary struct {
	TotalCount       int64             `json:"total_count"`
	PendingCount     int64             `json:"pending_count"`
	PartialCount     int64             `json:"partial_count"`
	PaidCount        int64             `json:"paid_count"`
	TotalOutstanding valueobject.Money `json:"total_outstanding"`
}

// SupplierPayableRepository defines the interface for supplier payable persistence
type SupplierPayableRepository interface {
	// FindByID finds a payable by ID
	FindByID(ctx context.Context, id uuid.UUID) (*SupplierPayable, error)

	// FindByUnit finds the payable of a unit (1:1)
	FindByUnit(ctx context.Context, unitID uuid.UUID) (*SupplierPayable, error)

	// FindAll finds payables with filtering
	FindAll(ctx context.Context, filter SupplierPayableFilter) ([]SupplierPayable, error)

	// Count counts payables matching the filter
	Count(ctx context.Context, filter SupplierPayableFilter) (int64, error)

	// Summarize aggregates counts and total outstanding per status. Negative
	// outstanding values are clamped to zero in the sum, matching the display
	// rule for individual ledgers.
	Summarize(ctx context.Context) (*PayableSummary, error)

	// Save creates or updates a payable
	Save(ctx context.Context, payable *SupplierPayable) error

	// SaveWithLock saves with optimistic locking (version check); returns
	// shared.ErrConcurrencyConflict when the stored version moved on
	SaveWithLock(ctx context.Context, payable *SupplierPayable) error

	// Delete soft deletes a payable
	Delete(ctx context.Context, id uuid.UUID) error
}

// TradeInRepository defines the interface for trade-in persistence
type TradeInRepository interface {
	// FindByID finds a trade-in by ID
	FindByID(ctx context.Context, id uuid.UUID) (*TradeIn, error)

	// FindByCustomer finds trade-ins of a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]TradeIn, error)

	// FindAll finds trade-ins with paging
	FindAll(ctx context.Context, filter shared.Filter) ([]TradeIn, error)

	// Count counts all trade-ins
	Count(ctx context.Context) (int64, error)

	// Save creates a trade-in. Trade-ins are immutable once recorded; there
	// is no update path.
	Save(ctx context.Context, tradeIn *TradeIn) error
}

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindByUnit finds the sale of a unit
	FindByUnit(ctx context.Context, unitID uuid.UUID) (*Sale, error)

	// FindByCustomer finds sales of a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Sale, error)

	// FindAll finds sales with paging
	FindAll(ctx context.Context, filter shared.Filter) ([]Sale, error)

	// Count counts all sales
	Count(ctx context.Context) (int64, error)

	// Save creates a sale
	Save(ctx context.Context, sale *Sale) error
}
