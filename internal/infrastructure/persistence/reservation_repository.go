package persistence

import (
	"context"
	"errors"

	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormReservationRepository implements ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// FindByID finds a reservation by its ID
func (r *GormReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByUnit finds the active reservation of a unit, if any
func (r *GormReservationRepository) FindActiveByUnit(ctx context.Context, unitID uuid.UUID) (*inventory.Reservation, error) {
	var model models.ReservationModel
	if err := r.db.WithContext(ctx).
		Where("unit_id = ? AND status = ?", unitID, inventory.ReservationStatusActive).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds reservations of a customer
func (r *GormReservationRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]inventory.Reservation, error) {
	var reservationModels []models.ReservationModel
	query := r.db.WithContext(ctx).Model(&models.ReservationModel{}).
		Where("customer_id = ?", customerID)
	query = applyTradeFilter(query, filter)

	if err := query.Find(&reservationModels).Error; err != nil {
		return nil, err
	}
	reservations := make([]inventory.Reservation, len(reservationModels))
	for i, model := range reservationModels {
		reservations[i] = *model.ToDomain()
	}
	return reservations, nil
}

// Save creates or updates a reservation
func (r *GormReservationRepository) Save(ctx context.Context, reservation *inventory.Reservation) error {
	model := models.ReservationModelFromDomain(reservation)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormReservationRepository implements ReservationRepository
var _ inventory.ReservationRepository = (*GormReservationRepository)(nil)
