package handler

import (
	partnerapp "github.com/celushop/backend/internal/application/partner"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PartnerHandler handles customer and supplier API endpoints
type PartnerHandler struct {
	BaseHandler
	partnerService *partnerapp.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(partnerService *partnerapp.PartnerService) *PartnerHandler {
	return &PartnerHandler{
		partnerService: partnerService,
	}
}

// CustomerRequest carries customer create/update fields
type CustomerRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	RUT   string `json:"rut" binding:"omitempty,rut,max=12"`
	Phone string `json:"phone" binding:"max=30"`
	Email string `json:"email" binding:"omitempty,email,max=200"`
	Notes string `json:"notes"`
}

// SupplierRequest carries supplier create/update fields
type SupplierRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	RUT     string `json:"rut" binding:"omitempty,rut,max=12"`
	Phone   string `json:"phone" binding:"max=30"`
	Email   string `json:"email" binding:"omitempty,email,max=200"`
	Address string `json:"address" binding:"max=300"`
}

// RegisterRoutes attaches the customer and supplier routes
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.POST("", h.CreateCustomer)
	customers.GET("", h.SearchCustomers)
	customers.GET("/:id", h.GetCustomer)
	customers.PUT("/:id", h.UpdateCustomer)

	suppliers := rg.Group("/suppliers")
	suppliers.POST("", h.CreateSupplier)
	suppliers.GET("", h.ListSuppliers)
	suppliers.GET("/:id", h.GetSupplier)
	suppliers.PUT("/:id", h.UpdateSupplier)
	suppliers.POST("/:id/deactivate", h.DeactivateSupplier)
}

// CreateCustomer registers a customer
func (h *PartnerHandler) CreateCustomer(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.partnerService.CreateCustomer(c.Request.Context(), partnerapp.CustomerCommand{
		Name:  req.Name,
		RUT:   req.RUT,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, customer)
}

// GetCustomer returns a customer by ID
func (h *PartnerHandler) GetCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	customer, err := h.partnerService.GetCustomer(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// UpdateCustomer updates a customer's contact fields
func (h *PartnerHandler) UpdateCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid customer ID format")
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customer, err := h.partnerService.UpdateCustomer(c.Request.Context(), id, partnerapp.CustomerCommand{
		Name:  req.Name,
		RUT:   req.RUT,
		Phone: req.Phone,
		Email: req.Email,
		Notes: req.Notes,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customer)
}

// SearchCustomers finds customers by name or RUT
func (h *PartnerHandler) SearchCustomers(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	customers, err := h.partnerService.SearchCustomers(c.Request.Context(), req.Search, shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, customers)
}

// CreateSupplier registers a supplier
func (h *PartnerHandler) CreateSupplier(c *gin.Context) {
	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.partnerService.CreateSupplier(c.Request.Context(), partnerapp.SupplierCommand{
		Name:    req.Name,
		RUT:     req.RUT,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, supplier)
}

// GetSupplier returns a supplier by ID
func (h *PartnerHandler) GetSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	supplier, err := h.partnerService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// UpdateSupplier updates a supplier's contact fields
func (h *PartnerHandler) UpdateSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	var req SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	supplier, err := h.partnerService.UpdateSupplier(c.Request.Context(), id, partnerapp.SupplierCommand{
		Name:    req.Name,
		RUT:     req.RUT,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// ListSuppliers returns active suppliers for intake pickers
func (h *PartnerHandler) ListSuppliers(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	suppliers, err := h.partnerService.ListActiveSuppliers(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, suppliers)
}

// DeactivateSupplier hides a supplier from intake pickers
func (h *PartnerHandler) DeactivateSupplier(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid supplier ID format")
		return
	}

	if err := h.partnerService.DeactivateSupplier(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
