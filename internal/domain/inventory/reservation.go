package inventory

import (
	"time"

	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// ReservationStatus represents the state of a reservation
type ReservationStatus string

const (
	ReservationStatusActive    ReservationStatus = "ACTIVE"
	ReservationStatusConsumed  ReservationStatus = "CONSUMED"  // Turned into a sale
	ReservationStatusCancelled ReservationStatus = "CANCELLED" // Released, deposit handled off-ledger
)

// IsValid checks if the status is a valid ReservationStatus
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusActive, ReservationStatusConsumed, ReservationStatusCancelled:
		return true
	}
	return false
}

// Reservation holds a unit for a customer against a deposit until an expiry
// date. Expiry is advisory: the shop decides whether to release, the record
// never flips on its own.
type Reservation struct {
	shared.BaseAggregateRoot
	UnitID     uuid.UUID         `json:"unit_id"`
	CustomerID uuid.UUID         `json:"customer_id"`
	Deposit    valueobject.Money `json:"deposit"`
	ExpiresAt  time.Time         `json:"expires_at"`
	Status     ReservationStatus `json:"status"`
}

// NewReservation holds a unit for a customer
func NewReservation(unitID, customerID uuid.UUID, deposit valueobject.Money, expiresAt time.Time) (*Reservation, error) {
	if unitID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UNIT", "Unit ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if deposit.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Deposit cannot be negative")
	}
	if !expiresAt.After(time.Now()) {
		return nil, shared.NewDomainError("INVALID_EXPIRY", "Expiry must be in the future")
	}

	return &Reservation{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UnitID:            unitID,
		CustomerID:        customerID,
		Deposit:           deposit,
		ExpiresAt:         expiresAt,
		Status:            ReservationStatusActive,
	}, nil
}

// Consume marks the reservation as turned into a sale
func (r *Reservation) Consume() error {
	if r.Status != ReservationStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active reservations can be consumed")
	}
	r.Status = ReservationStatusConsumed
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// Cancel releases the reservation
func (r *Reservation) Cancel() error {
	if r.Status != ReservationStatusActive {
		return shared.NewDomainError("INVALID_STATE", "Only active reservations can be cancelled")
	}
	r.Status = ReservationStatusCancelled
	r.UpdatedAt = time.Now()
	r.IncrementVersion()
	return nil
}

// IsExpired returns true when the hold has run out
func (r *Reservation) IsExpired() bool {
	return r.Status == ReservationStatusActive && time.Now().After(r.ExpiresAt)
}
