package persistence

import (
	"context"
	"errors"

	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByUnit finds the sale of a unit
func (r *GormSaleRepository) FindByUnit(ctx context.Context, unitID uuid.UUID) (*payment.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).First(&model, "unit_id = ?", unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds sales of a customer
func (r *GormSaleRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]payment.Sale, error) {
	var saleModels []models.SaleModel
	query := r.db.WithContext(ctx).Model(&models.SaleModel{}).
		Where("customer_id = ?", customerID)
	query = applyTradeFilter(query, filter)

	if err := query.Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return salesToDomain(saleModels), nil
}

// FindAll finds sales with paging
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payment.Sale, error) {
	var saleModels []models.SaleModel
	query := applyTradeFilter(r.db.WithContext(ctx).Model(&models.SaleModel{}), filter)

	if err := query.Find(&saleModels).Error; err != nil {
		return nil, err
	}
	return salesToDomain(saleModels), nil
}

// Count counts all sales
func (r *GormSaleRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates a sale record
func (r *GormSaleRepository) Save(ctx context.Context, sale *payment.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).Save(model).Error
}

func salesToDomain(saleModels []models.SaleModel) []payment.Sale {
	sales := make([]payment.Sale, len(saleModels))
	for i, model := range saleModels {
		sales[i] = *model.ToDomain()
	}
	return sales
}

// Ensure GormSaleRepository implements SaleRepository
var _ payment.SaleRepository = (*GormSaleRepository)(nil)
