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

// GormUnitRepository implements UnitRepository using GORM
type GormUnitRepository struct {
	db *gorm.DB
}

// NewGormUnitRepository creates a new GormUnitRepository
func NewGormUnitRepository(db *gorm.DB) *GormUnitRepository {
	return &GormUnitRepository{db: db}
}

// FindByID finds a unit by its ID
func (r *GormUnitRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByIMEI finds a unit by its IMEI
func (r *GormUnitRepository) FindByIMEI(ctx context.Context, imei string) (*inventory.Unit, error) {
	var model models.UnitModel
	if err := r.db.WithContext(ctx).First(&model, "imei = ?", imei).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds units with filtering
func (r *GormUnitRepository) FindAll(ctx context.Context, filter inventory.UnitFilter) ([]inventory.Unit, error) {
	var unitModels []models.UnitModel
	query := r.db.WithContext(ctx).Model(&models.UnitModel{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&unitModels).Error; err != nil {
		return nil, err
	}
	units := make([]inventory.Unit, len(unitModels))
	for i, model := range unitModels {
		units[i] = *model.ToDomain()
	}
	return units, nil
}

// Count counts units matching the filter
func (r *GormUnitRepository) Count(ctx context.Context, filter inventory.UnitFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.UnitModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a unit
func (r *GormUnitRepository) Save(ctx context.Context, unit *inventory.Unit) error {
	model := models.UnitModelFromDomain(unit)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking. The mutable columns are listed
// explicitly so zero values (a price reset, a cleared sold_at) still reach
// the UPDATE.
func (r *GormUnitRepository) SaveWithLock(ctx context.Context, unit *inventory.Unit) error {
	model := models.UnitModelFromDomain(unit)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", unit.ID, unit.Version-1).
		Updates(map[string]interface{}{
			"condition":         model.Condition,
			"repair_cost":       model.RepairCost,
			"list_price_cash":   model.ListPriceCash,
			"list_price_credit": model.ListPriceCredit,
			"status":            model.Status,
			"sold_at":           model.SoldAt,
			"version":           model.Version,
			"updated_at":        model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a unit
func (r *GormUnitRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.UnitModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormUnitRepository) applyFilter(query *gorm.DB, filter inventory.UnitFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, UnitSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormUnitRepository) applyFilterWithoutPagination(query *gorm.DB, filter inventory.UnitFilter) *gorm.DB {
	if filter.Search != "" {
		searchPattern := "%" + filter.Search + "%"
		query = query.Where("imei ILIKE ? OR brand ILIKE ? OR model ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}
	if filter.Brand != nil {
		query = query.Where("brand = ?", *filter.Brand)
	}
	if filter.Model != nil {
		query = query.Where("model = ?", *filter.Model)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Condition != nil {
		query = query.Where("condition = ?", *filter.Condition)
	}
	if filter.Origin != nil {
		query = query.Where("origin = ?", *filter.Origin)
	}
	return query
}

// Ensure GormUnitRepository implements UnitRepository
var _ inventory.UnitRepository = (*GormUnitRepository)(nil)
