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

// GormTradeInRepository implements TradeInRepository using GORM. Trade-ins
// are append only; there is no update or delete path.
type GormTradeInRepository struct {
	db *gorm.DB
}

// NewGormTradeInRepository creates a new GormTradeInRepository
func NewGormTradeInRepository(db *gorm.DB) *GormTradeInRepository {
	return &GormTradeInRepository{db: db}
}

// FindByID finds a trade-in by its ID
func (r *GormTradeInRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.TradeIn, error) {
	var model models.TradeInModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds trade-ins of a customer
func (r *GormTradeInRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]payment.TradeIn, error) {
	var tradeModels []models.TradeInModel
	query := r.db.WithContext(ctx).Model(&models.TradeInModel{}).
		Where("customer_id = ?", customerID)
	query = applyTradeFilter(query, filter)

	if err := query.Find(&tradeModels).Error; err != nil {
		return nil, err
	}
	return tradeInsToDomain(tradeModels), nil
}

// FindAll finds trade-ins with paging
func (r *GormTradeInRepository) FindAll(ctx context.Context, filter shared.Filter) ([]payment.TradeIn, error) {
	var tradeModels []models.TradeInModel
	query := applyTradeFilter(r.db.WithContext(ctx).Model(&models.TradeInModel{}), filter)

	if err := query.Find(&tradeModels).Error; err != nil {
		return nil, err
	}
	return tradeInsToDomain(tradeModels), nil
}

// Count counts all trade-ins
func (r *GormTradeInRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TradeInModel{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates a trade-in record
func (r *GormTradeInRepository) Save(ctx context.Context, tradeIn *payment.TradeIn) error {
	model := models.TradeInModelFromDomain(tradeIn)
	return r.db.WithContext(ctx).Save(model).Error
}

func tradeInsToDomain(tradeModels []models.TradeInModel) []payment.TradeIn {
	tradeIns := make([]payment.TradeIn, len(tradeModels))
	for i, model := range tradeModels {
		tradeIns[i] = *model.ToDomain()
	}
	return tradeIns
}

// applyTradeFilter applies paging and ordering shared by the trade-in and
// sale repositories
func applyTradeFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, TradeSortFields, "created_at")
	orderDir := ValidateSortOrder(filter.OrderDir)
	return query.Order(orderBy + " " + orderDir)
}

// Ensure GormTradeInRepository implements TradeInRepository
var _ payment.TradeInRepository = (*GormTradeInRepository)(nil)
