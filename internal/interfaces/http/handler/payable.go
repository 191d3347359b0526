package handler

import (
	"time"

	paymentapp "github.com/celushop/backend/internal/application/payment"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PayableHandler handles supplier payable API endpoints
type PayableHandler struct {
	BaseHandler
	payableService *paymentapp.PayableService
}

// NewPayableHandler creates a new PayableHandler
func NewPayableHandler(payableService *paymentapp.PayableService) *PayableHandler {
	return &PayableHandler{
		payableService: payableService,
	}
}

// RecordPaymentRequest represents a request to record a payment against a
// payable. Amounts are whole CLP. An installment_number of zero records a
// lump-sum payment.
type RecordPaymentRequest struct {
	InstallmentNumber int        `json:"installment_number" binding:"omitempty,min=1"`
	Cash              int64      `json:"cash" binding:"omitempty,min=0"`
	Wire              int64      `json:"wire" binding:"omitempty,min=0"`
	WireReference     string     `json:"wire_reference" binding:"max=100"`
	Date              *time.Time `json:"date"`
}

// RedistributeRequest represents a request to regenerate an installment schedule
type RedistributeRequest struct {
	Count           int        `json:"count" binding:"required,min=1,max=48"`
	CadenceDays     int        `json:"cadence_days" binding:"required,min=1"`
	StartDate       *time.Time `json:"start_date"`
	AcknowledgeLoss bool       `json:"acknowledge_loss"`
}

// RegisterRoutes attaches the payable routes
func (h *PayableHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payables := rg.Group("/payables")
	payables.GET("", h.List)
	payables.GET("/summary", h.GetSummary)
	payables.GET("/by-unit/:unit_id", h.GetByUnit)
	payables.GET("/:id", h.GetByID)
	payables.POST("/:id/payments", h.RecordPayment)
	payables.POST("/:id/redistribute", h.Redistribute)
}

// GetByID returns a payable with its full recomputed ledger
func (h *PayableHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	payable, err := h.payableService.GetPayable(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// GetByUnit returns the payable opened for a unit
func (h *PayableHandler) GetByUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unit_id"))
	if err != nil {
		h.BadRequest(c, "Invalid unit ID format")
		return
	}

	payable, err := h.payableService.GetPayableByUnit(c.Request.Context(), unitID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// List returns payables filtered by supplier, status and mode
func (h *PayableHandler) List(c *gin.Context) {
	var filter paymentapp.PayableListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.payableService.ListPayables(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// GetSummary returns the ledger aggregates for the dashboard
func (h *PayableHandler) GetSummary(c *gin.Context) {
	summary, err := h.payableService.GetSummary(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, summary)
}

// RecordPayment applies a payment to a payable. A replay carrying the same
// Idempotency-Key header returns the current ledger without accumulating.
func (h *PayableHandler) RecordPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cmd := paymentapp.RecordPaymentCommand{
		InstallmentNumber: req.InstallmentNumber,
		Cash:              valueobject.NewMoney(req.Cash),
		Wire:              valueobject.NewMoney(req.Wire),
		WireReference:     req.WireReference,
		IdempotencyKey:    c.GetHeader("Idempotency-Key"),
	}
	if req.Date != nil {
		cmd.Date = *req.Date
	}

	payable, err := h.payableService.RecordPayment(c.Request.Context(), id, cmd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}

// Redistribute discards and regenerates the installment schedule
func (h *PayableHandler) Redistribute(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid payable ID format")
		return
	}

	var req RedistributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	cmd := paymentapp.RedistributeCommand{
		Count:           req.Count,
		CadenceDays:     req.CadenceDays,
		AcknowledgeLoss: req.AcknowledgeLoss,
	}
	if req.StartDate != nil {
		cmd.StartDate = *req.StartDate
	}

	payable, err := h.payableService.RedistributeSchedule(c.Request.Context(), id, cmd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, payable)
}
