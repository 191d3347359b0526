package handler

import (
	"time"

	inventoryapp "github.com/celushop/backend/internal/application/inventory"
	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UnitHandler handles inventory unit API endpoints
type UnitHandler struct {
	BaseHandler
	unitService *inventoryapp.UnitService
}

// NewUnitHandler creates a new UnitHandler
func NewUnitHandler(unitService *inventoryapp.UnitService) *UnitHandler {
	return &UnitHandler{
		unitService: unitService,
	}
}

// IntakeRequest registers a purchased unit. An installment_count of zero
// opens the payable in lump-sum mode.
type IntakeRequest struct {
	IMEI               string    `json:"imei" binding:"required,min=8,max=20"`
	Brand              string    `json:"brand" binding:"required,max=100"`
	Model              string    `json:"model" binding:"required,max=100"`
	Storage            string    `json:"storage" binding:"max=20"`
	Color              string    `json:"color" binding:"max=50"`
	Condition          string    `json:"condition" binding:"required"`
	AcquisitionCost    int64     `json:"acquisition_cost" binding:"required,min=1"`
	SupplierID         uuid.UUID `json:"supplier_id" binding:"required"`
	InstallmentCount   int       `json:"installment_count" binding:"omitempty,min=1,max=48"`
	InstallmentCadence int       `json:"installment_cadence" binding:"omitempty,min=1"`
}

// SetPricesRequest updates the asking prices of a unit
type SetPricesRequest struct {
	Cash   int64 `json:"cash" binding:"required,min=1"`
	Credit int64 `json:"credit" binding:"required,min=1"`
}

// RepairCostRequest records refurbishment spend on a unit
type RepairCostRequest struct {
	Amount int64 `json:"amount" binding:"required,min=1"`
}

// RefurbishRequest moves a traded-in unit onto the sales floor
type RefurbishRequest struct {
	Condition string `json:"condition" binding:"required"`
}

// ReserveRequest holds a unit for a customer against a deposit
type ReserveRequest struct {
	CustomerID uuid.UUID `json:"customer_id" binding:"required"`
	Deposit    int64     `json:"deposit" binding:"omitempty,min=0"`
	ExpiresAt  time.Time `json:"expires_at" binding:"required"`
}

// RegisterRoutes attaches the unit and reservation routes
func (h *UnitHandler) RegisterRoutes(rg *gin.RouterGroup) {
	units := rg.Group("/units")
	units.POST("/intake", h.Intake)
	units.GET("", h.List)
	units.GET("/:id", h.GetByID)
	units.PUT("/:id/prices", h.SetPrices)
	units.POST("/:id/repairs", h.AddRepairCost)
	units.POST("/:id/refurbish", h.MarkRefurbished)
	units.POST("/:id/reserve", h.Reserve)

	reservations := rg.Group("/reservations")
	reservations.POST("/:id/cancel", h.CancelReservation)
}

// Intake registers a purchased unit and opens its supplier payable
func (h *UnitHandler) Intake(c *gin.Context) {
	var req IntakeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	condition := inventory.ConditionGrade(req.Condition)
	if !condition.IsValid() {
		h.HandleDomainError(c, shared.NewDomainError("INVALID_CONDITION",
			"Unknown condition grade "+req.Condition))
		return
	}

	cmd := inventoryapp.IntakeCommand{
		IMEI:               req.IMEI,
		Brand:              req.Brand,
		Model:              req.Model,
		Storage:            req.Storage,
		Color:              req.Color,
		Condition:          condition,
		AcquisitionCost:    valueobject.NewMoney(req.AcquisitionCost),
		SupplierID:         req.SupplierID,
		InstallmentCount:   req.InstallmentCount,
		InstallmentCadence: req.InstallmentCadence,
	}

	result, err := h.unitService.Intake(c.Request.Context(), cmd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, result)
}

// GetByID returns a unit by ID
func (h *UnitHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	unit, err := h.unitService.GetUnit(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// List returns units filtered by brand, model, status and condition
func (h *UnitHandler) List(c *gin.Context) {
	var filter inventoryapp.UnitListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.unitService.ListUnits(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// SetPrices updates the asking prices of a unit
func (h *UnitHandler) SetPrices(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req SetPricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.SetListPrices(c.Request.Context(), id,
		valueobject.NewMoney(req.Cash), valueobject.NewMoney(req.Credit))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// AddRepairCost records refurbishment spend on a unit
func (h *UnitHandler) AddRepairCost(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req RepairCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	unit, err := h.unitService.AddRepairCost(c.Request.Context(), id, valueobject.NewMoney(req.Amount))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// MarkRefurbished moves a traded-in unit onto the sales floor
func (h *UnitHandler) MarkRefurbished(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req RefurbishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	condition := inventory.ConditionGrade(req.Condition)
	if !condition.IsValid() {
		h.HandleDomainError(c, shared.NewDomainError("INVALID_CONDITION",
			"Unknown condition grade "+req.Condition))
		return
	}

	unit, err := h.unitService.MarkRefurbished(c.Request.Context(), id, condition)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, unit)
}

// Reserve holds a unit for a customer against a deposit
func (h *UnitHandler) Reserve(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	var req ReserveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	reservation, err := h.unitService.Reserve(c.Request.Context(), id, inventoryapp.ReserveCommand{
		CustomerID: req.CustomerID,
		Deposit:    valueobject.NewMoney(req.Deposit),
		ExpiresAt:  req.ExpiresAt,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, reservation)
}

// CancelReservation releases the hold and returns the unit to the floor
func (h *UnitHandler) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid reservation ID format")
		return
	}

	if err := h.unitService.CancelReservation(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
