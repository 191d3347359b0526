package handler

import (
	paymentapp "github.com/celushop/backend/internal/application/payment"
	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/celushop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *paymentapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *paymentapp.SaleService) *SaleHandler {
	return &SaleHandler{
		saleService: saleService,
	}
}

// RecordSaleRequest represents a request to register a sale. The pricing mode
// decides which of the two prices the customer owes.
type RecordSaleRequest struct {
	UnitID        uuid.UUID `json:"unit_id" binding:"required"`
	CustomerID    uuid.UUID `json:"customer_id" binding:"required"`
	Mode          string    `json:"mode" binding:"required"`
	CashPrice     int64     `json:"cash_price" binding:"required,min=1"`
	FinancedPrice int64     `json:"financed_price" binding:"omitempty,min=0"`
	Cash          int64     `json:"cash" binding:"omitempty,min=0"`
	Wire          int64     `json:"wire" binding:"omitempty,min=0"`
	Debit         int64     `json:"debit" binding:"omitempty,min=0"`
	WireReference string    `json:"wire_reference" binding:"max=100"`
}

// RegisterRoutes attaches the sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	sales.POST("", h.Record)
	sales.GET("", h.List)
	sales.GET("/:id", h.GetByID)
}

// Record registers a sale against a unit
func (h *SaleHandler) Record(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	mode := payment.PricingMode(req.Mode)
	if !mode.IsValid() {
		h.HandleDomainError(c, shared.NewDomainError("INVALID_PRICING_MODE",
			"Unknown pricing mode "+req.Mode))
		return
	}

	cmd := paymentapp.RecordSaleCommand{
		UnitID:        req.UnitID,
		CustomerID:    req.CustomerID,
		Mode:          mode,
		CashPrice:     valueobject.NewMoney(req.CashPrice),
		FinancedPrice: valueobject.NewMoney(req.FinancedPrice),
		Cash:          valueobject.NewMoney(req.Cash),
		Wire:          valueobject.NewMoney(req.Wire),
		Debit:         valueobject.NewMoney(req.Debit),
		WireReference: req.WireReference,
	}

	sale, err := h.saleService.RecordSale(c.Request.Context(), cmd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sale)
}

// GetByID returns a sale by ID
func (h *SaleHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID format")
		return
	}

	sale, err := h.saleService.GetSale(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sale)
}

// List returns sales with paging
func (h *SaleHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.saleService.ListSales(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
