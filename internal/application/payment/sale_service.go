package payment

import (
	"context"
	"errors"
	"time"

	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// SaleService records sales and settles the reservation, if any, that held
// the unit
type SaleService struct {
	saleRepo        payment.SaleRepository
	unitRepo        inventory.UnitRepository
	reservationRepo inventory.ReservationRepository
}

// NewSaleService creates a new SaleService
func NewSaleService(saleRepo payment.SaleRepository, unitRepo inventory.UnitRepository, reservationRepo inventory.ReservationRepository) *SaleService {
	return &SaleService{
		saleRepo:        saleRepo,
		unitRepo:        unitRepo,
		reservationRepo: reservationRepo,
	}
}

// RecordSaleCommand carries one sale registration
type RecordSaleCommand struct {
	UnitID        uuid.UUID
	CustomerID    uuid.UUID
	Mode          payment.PricingMode
	CashPrice     valueobject.Money
	FinancedPrice valueobject.Money
	Cash          valueobject.Money
	Wire          valueobject.Money
	Debit         valueobject.Money
	WireReference string
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID             uuid.UUID         `json:"id"`
	UnitID         uuid.UUID         `json:"unit_id"`
	CustomerID     uuid.UUID         `json:"customer_id"`
	Mode           string            `json:"mode"`
	PriceDue       valueobject.Money `json:"price_due"`
	CollectedTotal valueobject.Money `json:"collected_total"`
	Outstanding    valueobject.Money `json:"outstanding"`
	Profit         valueobject.Money `json:"profit"`
	CreatedAt      time.Time         `json:"created_at"`
}

// RecordSale registers a sale: the sale document is created, the unit is
// marked sold and an active reservation on it is consumed. Profit is computed
// against the unit's accumulated costs and echoed back, never persisted.
func (s *SaleService) RecordSale(ctx context.Context, cmd RecordSaleCommand) (*SaleResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, cmd.UnitID)
	if err != nil {
		return nil, err
	}

	allocation := payment.PaymentInstrumentSet{
		Cash:          cmd.Cash,
		Wire:          cmd.Wire,
		Debit:         cmd.Debit,
		WireReference: cmd.WireReference,
	}
	sale, err := payment.NewSale(unit.ID, cmd.CustomerID, cmd.Mode, cmd.CashPrice, cmd.FinancedPrice, allocation)
	if err != nil {
		return nil, err
	}

	if err := unit.MarkSold(); err != nil {
		return nil, err
	}

	reservation, err := s.reservationRepo.FindActiveByUnit(ctx, unit.ID)
	switch {
	case err == nil:
		if err := reservation.Consume(); err != nil {
			return nil, err
		}
		if err := s.reservationRepo.Save(ctx, reservation); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		// No active hold on the unit, nothing to consume.
	default:
		return nil, err
	}

	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}
	if err := s.saleRepo.Save(ctx, sale); err != nil {
		return nil, err
	}

	return s.toResponse(sale, unit), nil
}

// GetSale gets a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*SaleResponse, error) {
	sale, err := s.saleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	unit, err := s.unitRepo.FindByID(ctx, sale.UnitID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(sale, unit), nil
}

// ListSales lists sales with paging
func (s *SaleService) ListSales(ctx context.Context, filter shared.Filter) (*shared.Paginated[SaleResponse], error) {
	if filter.Page <= 0 || filter.PageSize <= 0 {
		filter = shared.DefaultFilter()
	}
	sales, err := s.saleRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.saleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]SaleResponse, 0, len(sales))
	for i := range sales {
		sale := &sales[i]
		items = append(items, SaleResponse{
			ID:             sale.ID,
			UnitID:         sale.UnitID,
			CustomerID:     sale.CustomerID,
			Mode:           sale.Mode.String(),
			PriceDue:       sale.PriceDue,
			CollectedTotal: sale.CollectedTotal,
			Outstanding:    sale.Outstanding,
			CreatedAt:      sale.CreatedAt,
		})
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

func (s *SaleService) toResponse(sale *payment.Sale, unit *inventory.Unit) *SaleResponse {
	return &SaleResponse{
		ID:             sale.ID,
		UnitID:         sale.UnitID,
		CustomerID:     sale.CustomerID,
		Mode:           sale.Mode.String(),
		PriceDue:       sale.PriceDue,
		CollectedTotal: sale.CollectedTotal,
		Outstanding:    sale.Outstanding,
		Profit:         sale.Profit(unit.AcquisitionCost, unit.RepairCost),
		CreatedAt:      sale.CreatedAt,
	}
}
