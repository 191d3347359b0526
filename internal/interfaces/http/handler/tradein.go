package handler

import (
	paymentapp "github.com/celushop/backend/internal/application/payment"
	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/celushop/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TradeInHandler handles trade-in API endpoints
type TradeInHandler struct {
	BaseHandler
	tradeInService *paymentapp.TradeInService
}

// NewTradeInHandler creates a new TradeInHandler
func NewTradeInHandler(tradeInService *paymentapp.TradeInService) *TradeInHandler {
	return &TradeInHandler{
		tradeInService: tradeInService,
	}
}

// EvaluateTradeInRequest previews a trade-in difference without writing
type EvaluateTradeInRequest struct {
	OutgoingPrice  int64 `json:"outgoing_price" binding:"required,min=1"`
	AppraisedValue int64 `json:"appraised_value" binding:"required,min=1"`
}

// IncomingUnitRequest describes the customer's device entering inventory
type IncomingUnitRequest struct {
	IMEI           string `json:"imei" binding:"required,min=8,max=20"`
	Brand          string `json:"brand" binding:"required,max=100"`
	Model          string `json:"model" binding:"required,max=100"`
	Storage        string `json:"storage" binding:"max=20"`
	Color          string `json:"color" binding:"max=50"`
	Condition      string `json:"condition" binding:"required"`
	AppraisedValue int64  `json:"appraised_value" binding:"required,min=1"`
}

// RecordTradeInRequest represents a request to register a trade-in
type RecordTradeInRequest struct {
	OutgoingUnitID uuid.UUID           `json:"outgoing_unit_id" binding:"required"`
	OutgoingPrice  int64               `json:"outgoing_price" binding:"required,min=1"`
	CustomerID     uuid.UUID           `json:"customer_id" binding:"required"`
	Incoming       IncomingUnitRequest `json:"incoming" binding:"required"`
	SettlementCash int64               `json:"settlement_cash" binding:"omitempty,min=0"`
	SettlementWire int64               `json:"settlement_wire" binding:"omitempty,min=0"`
	WireReference  string              `json:"wire_reference" binding:"max=100"`
}

// RegisterRoutes attaches the trade-in routes
func (h *TradeInHandler) RegisterRoutes(rg *gin.RouterGroup) {
	trades := rg.Group("/trade-ins")
	trades.POST("", h.Record)
	trades.POST("/evaluate", h.Evaluate)
	trades.GET("", h.List)
	trades.GET("/:id", h.GetByID)
}

// Evaluate previews the difference and direction of a trade-in
func (h *TradeInHandler) Evaluate(c *gin.Context) {
	var req EvaluateTradeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result := h.tradeInService.Evaluate(
		valueobject.NewMoney(req.OutgoingPrice),
		valueobject.NewMoney(req.AppraisedValue),
	)

	h.Success(c, result)
}

// Record registers a trade-in and settles the difference on the spot
func (h *TradeInHandler) Record(c *gin.Context) {
	var req RecordTradeInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	condition := inventory.ConditionGrade(req.Incoming.Condition)
	if !condition.IsValid() {
		h.HandleDomainError(c, shared.NewDomainError("INVALID_CONDITION",
			"Unknown condition grade "+req.Incoming.Condition))
		return
	}

	cmd := paymentapp.RecordTradeInCommand{
		OutgoingUnitID: req.OutgoingUnitID,
		OutgoingPrice:  valueobject.NewMoney(req.OutgoingPrice),
		CustomerID:     req.CustomerID,
		Incoming: paymentapp.IncomingUnitAppraisal{
			IMEI:           req.Incoming.IMEI,
			Brand:          req.Incoming.Brand,
			Model:          req.Incoming.Model,
			Storage:        req.Incoming.Storage,
			Color:          req.Incoming.Color,
			Condition:      condition,
			AppraisedValue: valueobject.NewMoney(req.Incoming.AppraisedValue),
		},
		SettlementCash: valueobject.NewMoney(req.SettlementCash),
		SettlementWire: valueobject.NewMoney(req.SettlementWire),
		WireReference:  req.WireReference,
	}

	tradeIn, err := h.tradeInService.EvaluateAndRecord(c.Request.Context(), cmd)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, tradeIn)
}

// GetByID returns a trade-in by ID
func (h *TradeInHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid trade-in ID format")
		return
	}

	tradeIn, err := h.tradeInService.GetTradeIn(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tradeIn)
}

// List returns trade-ins with paging
func (h *TradeInHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	result, err := h.tradeInService.ListTradeIns(c.Request.Context(), shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}
