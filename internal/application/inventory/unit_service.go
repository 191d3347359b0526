package inventory

import (
	"context"
	"time"

	"github.com/celushop/backend/internal/domain/catalog"
	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/partner"
	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// UnitService handles device intake and unit lifecycle. Intake is the one
// flow that spans domains: registering a purchased unit opens its supplier
// payable in the same request.
type UnitService struct {
	unitRepo        inventory.UnitRepository
	reservationRepo inventory.ReservationRepository
	payableRepo     payment.SupplierPayableRepository
	supplierRepo    partner.SupplierRepository
	taxonomy        *catalog.Taxonomy
}

// NewUnitService creates a new UnitService
func NewUnitService(
	unitRepo inventory.UnitRepository,
	reservationRepo inventory.ReservationRepository,
	payableRepo payment.SupplierPayableRepository,
	supplierRepo partner.SupplierRepository,
	taxonomy *catalog.Taxonomy,
) *UnitService {
	return &UnitService{
		unitRepo:        unitRepo,
		reservationRepo: reservationRepo,
		payableRepo:     payableRepo,
		supplierRepo:    supplierRepo,
		taxonomy:        taxonomy,
	}
}

// IntakeCommand registers a purchased unit and opens its payable
type IntakeCommand struct {
	IMEI            string
	Brand           string
	Model           string
	Storage         string
	Color           string
	Condition       inventory.ConditionGrade
	AcquisitionCost valueobject.Money
	SupplierID      uuid.UUID
	// Installment settlement; zero Count selects the lump-sum mode
	InstallmentCount   int
	InstallmentCadence int
}

// UnitResponse represents a unit in API responses
type UnitResponse struct {
	ID              uuid.UUID         `json:"id"`
	IMEI            string            `json:"imei"`
	Brand           string            `json:"brand"`
	Model           string            `json:"model"`
	Storage         string            `json:"storage,omitempty"`
	Color           string            `json:"color,omitempty"`
	DisplayName     string            `json:"display_name"`
	Condition       string            `json:"condition"`
	Origin          string            `json:"origin"`
	AcquisitionCost valueobject.Money `json:"acquisition_cost"`
	RepairCost      valueobject.Money `json:"repair_cost"`
	TotalCost       valueobject.Money `json:"total_cost"`
	ListPriceCash   valueobject.Money `json:"list_price_cash"`
	ListPriceCredit valueobject.Money `json:"list_price_credit"`
	Status          string            `json:"status"`
	SoldAt          *time.Time        `json:"sold_at,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// IntakeResponse is the result of a device intake
type IntakeResponse struct {
	Unit      UnitResponse `json:"unit"`
	PayableID uuid.UUID    `json:"payable_id"`
}

// UnitListFilter defines filtering options for unit list queries
type UnitListFilter struct {
	Brand     string `form:"brand"`
	Model     string `form:"model"`
	Status    string `form:"status"`
	Condition string `form:"condition"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
}

// ReserveCommand holds a unit for a customer
type ReserveCommand struct {
	CustomerID uuid.UUID
	Deposit    valueobject.Money
	ExpiresAt  time.Time
}

// Intake registers a purchased unit and opens the supplier payable for it.
// The IMEI must be new to the shop and the model must exist in the taxonomy.
func (s *UnitService) Intake(ctx context.Context, cmd IntakeCommand) (*IntakeResponse, error) {
	if existing, err := s.unitRepo.FindByIMEI(ctx, cmd.IMEI); err == nil && existing != nil {
		return nil, shared.NewDomainError("DUPLICATE_IMEI", "A unit with this IMEI is already registered")
	}
	if !s.taxonomy.Contains(cmd.Brand, cmd.Model, cmd.Storage) {
		return nil, shared.NewDomainError("UNKNOWN_MODEL",
			"Brand, model or storage is not in the configured catalog")
	}

	supplier, err := s.supplierRepo.FindByID(ctx, cmd.SupplierID)
	if err != nil {
		return nil, err
	}

	unit, err := inventory.NewUnit(cmd.IMEI, cmd.Brand, cmd.Model, cmd.Storage, cmd.Color,
		cmd.Condition, inventory.UnitOriginPurchase, cmd.AcquisitionCost)
	if err != nil {
		return nil, err
	}

	var payable *payment.SupplierPayable
	if cmd.InstallmentCount > 0 {
		payable, err = payment.NewInstallmentPayable(unit.ID, supplier.ID, supplier.Name,
			cmd.AcquisitionCost, cmd.InstallmentCount, cmd.InstallmentCadence, time.Now())
	} else {
		payable, err = payment.NewSupplierPayable(unit.ID, supplier.ID, supplier.Name, cmd.AcquisitionCost)
	}
	if err != nil {
		return nil, err
	}

	if err := s.unitRepo.Save(ctx, unit); err != nil {
		return nil, err
	}
	if err := s.payableRepo.Save(ctx, payable); err != nil {
		return nil, err
	}

	return &IntakeResponse{
		Unit:      toUnitResponse(unit),
		PayableID: payable.ID,
	}, nil
}

// GetUnit gets a unit by ID
func (s *UnitService) GetUnit(ctx context.Context, id uuid.UUID) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUnitResponse(unit)
	return &resp, nil
}

// ListUnits lists units with filtering and paging
func (s *UnitService) ListUnits(ctx context.Context, filter UnitListFilter) (*shared.Paginated[UnitResponse], error) {
	repoFilter := inventory.UnitFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	if filter.Brand != "" {
		repoFilter.Brand = &filter.Brand
	}
	if filter.Model != "" {
		repoFilter.Model = &filter.Model
	}
	if filter.Status != "" {
		status := inventory.UnitStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown unit status "+filter.Status)
		}
		repoFilter.Status = &status
	}
	if filter.Condition != "" {
		condition := inventory.ConditionGrade(filter.Condition)
		if !condition.IsValid() {
			return nil, shared.NewDomainError("INVALID_CONDITION", "Unknown condition grade "+filter.Condition)
		}
		repoFilter.Condition = &condition
	}

	units, err := s.unitRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.unitRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	items := make([]UnitResponse, 0, len(units))
	for i := range units {
		items = append(items, toUnitResponse(&units[i]))
	}
	result := shared.NewPaginated(items, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// SetListPrices updates the asking prices of a unit
func (s *UnitService) SetListPrices(ctx context.Context, id uuid.UUID, cash, credit valueobject.Money) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := unit.SetListPrices(cash, credit); err != nil {
		return nil, err
	}
	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}
	resp := toUnitResponse(unit)
	return &resp, nil
}

// AddRepairCost records refurbishment spend on a unit
func (s *UnitService) AddRepairCost(ctx context.Context, id uuid.UUID, amount valueobject.Money) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := unit.AddRepairCost(amount); err != nil {
		return nil, err
	}
	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}
	resp := toUnitResponse(unit)
	return &resp, nil
}

// MarkRefurbished moves a traded-in unit onto the sales floor
func (s *UnitService) MarkRefurbished(ctx context.Context, id uuid.UUID, condition inventory.ConditionGrade) (*UnitResponse, error) {
	unit, err := s.unitRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := unit.MarkRefurbished(condition); err != nil {
		return nil, err
	}
	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}
	resp := toUnitResponse(unit)
	return &resp, nil
}

// Reserve holds a unit for a customer against a deposit
func (s *UnitService) Reserve(ctx context.Context, unitID uuid.UUID, cmd ReserveCommand) (*inventory.Reservation, error) {
	unit, err := s.unitRepo.FindByID(ctx, unitID)
	if err != nil {
		return nil, err
	}
	if err := unit.Reserve(); err != nil {
		return nil, err
	}

	reservation, err := inventory.NewReservation(unit.ID, cmd.CustomerID, cmd.Deposit, cmd.ExpiresAt)
	if err != nil {
		return nil, err
	}

	if err := s.unitRepo.SaveWithLock(ctx, unit); err != nil {
		return nil, err
	}
	if err := s.reservationRepo.Save(ctx, reservation); err != nil {
		return nil, err
	}
	return reservation, nil
}

// CancelReservation releases the hold and returns the unit to the floor
func (s *UnitService) CancelReservation(ctx context.Context, reservationID uuid.UUID) error {
	reservation, err := s.reservationRepo.FindByID(ctx, reservationID)
	if err != nil {
		return err
	}
	if err := reservation.Cancel(); err != nil {
		return err
	}

	unit, err := s.unitRepo.FindByID(ctx, reservation.UnitID)
	if err != nil {
		return err
	}
	if err := unit.Release(); err != nil {
		return err
	}

	if err := s.reservationRepo.Save(ctx, reservation); err != nil {
		return err
	}
	return s.unitRepo.SaveWithLock(ctx, unit)
}

// Taxonomy exposes the configured brand/model/storage reference data
func (s *UnitService) Taxonomy() *catalog.Taxonomy {
	return s.taxonomy
}

func toUnitResponse(u *inventory.Unit) UnitResponse {
	return UnitResponse{
		ID:              u.ID,
		IMEI:            u.IMEI,
		Brand:           u.Brand,
		Model:           u.Model,
		Storage:         u.Storage,
		Color:           u.Color,
		DisplayName:     u.DisplayName(),
		Condition:       u.Condition.String(),
		Origin:          string(u.Origin),
		AcquisitionCost: u.AcquisitionCost,
		RepairCost:      u.RepairCost,
		TotalCost:       u.TotalCost(),
		ListPriceCash:   u.ListPriceCash,
		ListPriceCredit: u.ListPriceCredit,
		Status:          u.Status.String(),
		SoldAt:          u.SoldAt,
		CreatedAt:       u.CreatedAt,
	}
}
