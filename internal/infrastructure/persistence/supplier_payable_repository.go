package persistence

import (
	"context"
	"errors"

	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/celushop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSupplierPayableRepository implements SupplierPayableRepository using GORM
type GormSupplierPayableRepository struct {
	db *gorm.DB
}

// NewGormSupplierPayableRepository creates a new GormSupplierPayableRepository
func NewGormSupplierPayableRepository(db *gorm.DB) *GormSupplierPayableRepository {
	return &GormSupplierPayableRepository{db: db}
}

// FindByID finds a supplier payable by its ID
func (r *GormSupplierPayableRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.SupplierPayable, error) {
	var model models.SupplierPayableModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUnit finds the payable tied to a unit. Exactly one exists per unit.
func (r *GormSupplierPayableRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) (*payment.SupplierPayable, error) {
	var model models.SupplierPayableModel
	if err := r.db.WithContext(ctx).First(&model, "unit_id = ?", unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds supplier payables with filtering
func (r *GormSupplierPayableRepository) FindAll(ctx context.Context, filter payment.SupplierPayableFilter) ([]payment.SupplierPayable, error) {
	var payableModels []models.SupplierPayableModel
	query := r.db.WithContext(ctx).Model(&models.SupplierPayableModel{})
	query = r.applyFilter(query, filter)

	if err := query.Find(&payableModels).Error; err != nil {
		return nil, err
	}
	payables := make([]payment.SupplierPayable, len(payableModels))
	for i, model := range payableModels {
		payables[i] = *model.ToDomain()
	}
	return payables, nil
}

// Count counts supplier payables matching the filter
func (r *GormSupplierPayableRepository) Count(ctx context.Context, filter payment.SupplierPayableFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.SupplierPayableModel{})
	query = r.applyFilterWithoutPagination(query, filter)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Summarize aggregates counts per status and the total outstanding. Negative
// outstanding rows, overpaid lump payables, count as zero in the sum so the
// badge never shows the shop owing less than nothing.
func (r *GormSupplierPayableRepository) Summarize(ctx context.Context) (*payment.PayableSummary, error) {
	var result struct {
		TotalCount       int64
		PendingCount     int64
		PartialCount     int64
		PaidCount        int64
		TotalOutstanding valueobject.Money
	}
	if err := r.db.WithContext(ctx).
		Model(&models.SupplierPayableModel{}).
		Select(`COUNT(*) AS total_count,
			COUNT(*) FILTER (WHERE status = ?) AS pending_count,
			COUNT(*) FILTER (WHERE status = ?) AS partial_count,
			COUNT(*) FILTER (WHERE status = ?) AS paid_count,
			COALESCE(SUM(GREATEST(outstanding, 0)), 0) AS total_outstanding`,
			payment.PayableStatusPending, payment.PayableStatusPartial, payment.PayableStatusPaid).
		Scan(&result).Error; err != nil {
		return nil, err
	}
	return &payment.PayableSummary{
		TotalCount:       result.TotalCount,
		PendingCount:     result.PendingCount,
		PartialCount:     result.PartialCount,
		PaidCount:        result.PaidCount,
		TotalOutstanding: result.TotalOutstanding,
	}, nil
}

// Save creates or updates a supplier payable
func (r *GormSupplierPayableRepository) Save(ctx context.Context, payable *payment.SupplierPayable) error {
	model := models.SupplierPayableModelFromDomain(payable)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking. The ledger columns are listed
// explicitly: a struct update would skip zero values, and outstanding hits
// exactly zero the moment a payable is settled.
func (r *GormSupplierPayableRepository) SaveWithLock(ctx context.Context, payable *payment.SupplierPayable) error {
	model := models.SupplierPayableModelFromDomain(payable)
	result := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND version = ?", payable.ID, payable.Version-1).
		Updates(map[string]interface{}{
			"lump_cash":      model.LumpCash,
			"lump_wire":      model.LumpWire,
			"lump_debit":     model.LumpDebit,
			"wire_reference": model.WireReference,
			"lump_paid_date": model.LumpPaidDate,
			"installments":   model.Installments,
			"total_paid":     model.TotalPaid,
			"outstanding":    model.Outstanding,
			"status":         model.Status,
			"version":        model.Version,
			"updated_at":     model.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete deletes a supplier payable
func (r *GormSupplierPayableRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.SupplierPayableModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyFilter applies filter options to the query
func (r *GormSupplierPayableRepository) applyFilter(query *gorm.DB, filter payment.SupplierPayableFilter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, PayableSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormSupplierPayableRepository) applyFilterWithoutPagination(query *gorm.DB, filter payment.SupplierPayableFilter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("supplier_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Mode != nil {
		query = query.Where("mode = ?", *filter.Mode)
	}
	return query
}

// Ensure GormSupplierPayableRepository implements SupplierPayableRepository
var _ payment.SupplierPayableRepository = (*GormSupplierPayableRepository)(nil)
