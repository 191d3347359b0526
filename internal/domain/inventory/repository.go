package inventory

import (
	"context"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UnitFilter defines filtering options for unit queries
type UnitFilter struct {
	shared.Filter
	Brand     *string
	Model     *string
	Status    *UnitStatus
	Condition *ConditionGrade
	Origin    *UnitOrigin
}

// UnitRepository defines the interface for unit persistence
type UnitRepository interface {
	// FindByID finds a unit by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Unit, error)

	// FindByIMEI finds a unit by its IMEI
	FindByIMEI(ctx context.Context, imei string) (*Unit, error)

	// FindAll finds units with filtering
	FindAll(ctx context.Context, filter UnitFilter) ([]Unit, error)

	// Count counts units matching the filter
	Count(ctx context.Context, filter UnitFilter) (int64, error)

	// Save creates or updates a unit
	Save(ctx context.Context, unit *Unit) error

	// SaveWithLock saves with optimistic locking (version check)
	SaveWithLock(ctx context.Context, unit *Unit) error

	// Delete soft deletes a unit
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationRepository defines the interface for reservation persistence
type ReservationRepository interface {
	// FindByID finds a reservation by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Reservation, error)

	// FindActiveByUnit finds the active reservation of a unit, if any
	FindActiveByUnit(ctx context.Context, unitID uuid.UUID) (*Reservation, error)

	// FindByCustomer finds reservations of a customer
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Reservation, error)

	// Save creates or updates a reservation
	Save(ctx context.Context, reservation *Reservation) error
}
