package payment

import (
	"context"
	"time"

	"github.com/celushop/backend/internal/domain/inventory"
	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// TradeInService coordinates a trade-in across the payment and inventory
// domains: the outgoing unit leaves, the incoming device enters, and the
// difference is settled on the spot.
type TradeInService struct {
	tradeInRepo payment.TradeInRepository
	unitRepo    inventory.UnitRepository
}

// NewTradeInService creates a new TradeInService
func NewTradeInService(tradeInRepo payment.TradeInRepository, unitRepo inventory.UnitRepository) *TradeInService {
	return &TradeInService{
		tradeInRepo: tradeInRepo,
		unitRepo:    unitRepo,
	}
}

// IncomingUnitAppraisal describes the customer's device and its agreed value
type IncomingUnitAppraisal struct {
	IMEI           string
	Brand          string
	Model          string
	Storage        string
	Color          string
	Condition      inventory.ConditionGrade
	AppraisedValue valueobject.Money
}

// RecordTradeInCommand carries one trade-in registration
type RecordTradeInCommand struct {
	OutgoingUnitID uuid.UUID
	OutgoingPrice  valueobject.Money
	CustomerID     uuid.UUID
	Incoming       IncomingUnitAppraisal
	SettlementCash valueobject.Money
	SettlementWire valueobject.Money
	WireReference  string
}

// TradeInResponse represents a trade-in in API responses
type TradeInResponse struct {
	ID                    uuid.UUID         `json:"id"`
	OutgoingUnitID        uuid.UUID         `json:"outgoing_unit_id"`
	OutgoingPrice         valueobject.Money `json:"outgoing_price"`
	IncomingUnitID        uuid.UUID         `json:"incoming_unit_id"`
	AppraisedValue        valueobject.Money `json:"appraised_value"`
	CustomerID            uuid.UUID         `json:"customer_id"`
	Difference            valueobject.Money `json:"difference"`
	Direction             string            `json:"direction"`
	SettlementCash        valueobject.Money `json:"settlement_cash"`
	SettlementWire        valueobject.Money `json:"settlement_wire"`
	WireReference         string            `json:"wire_reference,omitempty"`
	SettlementOutstanding valueobject.Money `json:"settlement_outstanding"`
	Profit                valueobject.Money `json:"profit"`
	CreatedAt             time.Time         `json:"created_at"`
}

// EvaluationResponse is the preview of a trade-in before anything is written
type EvaluationResponse struct {
	Difference valueobject.Money `json:"difference"`
	Direction  string            `json:"direction"`
}

// Evaluate previews the difference and direction without writing anything
func (s *TradeInService) Evaluate(outgoingPrice, appraisedValue valueobject.Money) EvaluationResponse {
	difference, direction := payment.EvaluateTradeIn(outgoingPrice, appraisedValue)
	return EvaluationResponse{
		Difference: difference,
		Direction:  direction.String(),
	}
}

// EvaluateAndRecord registers a trade-in: the outgoing unit is marked sold,
// the incoming device becomes an inventory record valued at its appraisal,
// and the trade-in document is persisted with the settlement totals.
// Validation happens before any write; a failure mid-way leaves earlier
// writes in place, matching the interactive tool's report-verbatim posture.
func (s *TradeInService) EvaluateAndRecord(ctx context.Context, cmd RecordTradeInCommand) (*TradeInResponse, error) {
	outgoing, err := s.unitRepo.FindByID(ctx, cmd.OutgoingUnitID)
	if err != nil {
		return nil, err
	}
	if outgoing.Status != inventory.UnitStatusAvailable && outgoing.Status != inventory.UnitStatusReserved {
		return nil, shared.NewDomainError("UNIT_NOT_AVAILABLE",
			"Outgoing unit is not available for a trade-in")
	}

	incoming, err := inventory.NewUnit(
		cmd.Incoming.IMEI,
		cmd.Incoming.Brand,
		cmd.Incoming.Model,
		cmd.Incoming.Storage,
		cmd.Incoming.Color,
		cmd.Incoming.Condition,
		inventory.UnitOriginTradeIn,
		cmd.Incoming.AppraisedValue,
	)
	if err != nil {
		return nil, err
	}

	settlement := payment.PaymentInstrumentSet{
		Cash:          cmd.SettlementCash,
		Wire:          cmd.SettlementWire,
		WireReference: cmd.WireReference,
	}
	tradeIn, err := payment.NewTradeIn(outgoing.ID, incoming.ID, cmd.CustomerID,
		cmd.OutgoingPrice, cmd.Incoming.AppraisedValue, settlement)
	if err != nil {
		return nil, err
	}

	if err := outgoing.MarkSold(); err != nil {
		return nil, err
	}

	if err := s.unitRepo.SaveWithLock(ctx, outgoing); err != nil {
		return nil, err
	}
	if err := s.unitRepo.Save(ctx, incoming); err != nil {
		return nil, err
	}
	if err := s.tradeInRepo.Save(ctx, tradeIn); err != nil {
		return nil, err
	}

	return s.toResponse(tradeIn, outgoing), nil
}

// GetTradeIn gets a trade-in by ID
func (s *TradeInService) GetTradeIn(ctx context.Context, id uuid.UUID) (*TradeInResponse, error) {
	tradeIn, err := s.tradeInRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	outgoing, err := s.unitRepo.FindByID(ctx, tradeIn.OutgoingUnitID)
	if err != nil {
		return nil, err
	}
	return s.toResponse(tradeIn, outgoing), nil
}

// ListTradeIns lists trade-ins with paging
func (s *TradeInService) ListTradeIns(ctx context.Context, filter shared.Filter) (*shared.Paginated[TradeInResponse], error) {
	if filter.Page <= 0 || filter.PageSize <= 0 {
		filter = shared.DefaultFilter()
	}
	tradeIns, err := s.tradeInRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}
	total, err := s.tradeInRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]TradeInResponse, 0, len(tradeIns))
	for i := range tradeIns {
		ti := &tradeIns[i]
		items = append(items, TradeInResponse{
			ID:                    ti.ID,
			OutgoingUnitID:        ti.OutgoingUnitID,
			OutgoingPrice:         ti.OutgoingPrice,
			IncomingUnitID:        ti.IncomingUnitID,
			AppraisedValue:        ti.AppraisedValue,
			CustomerID:            ti.CustomerID,
			Difference:            ti.Difference,
			Direction:             ti.Direction.String(),
			SettlementCash:        ti.Settlement.Cash,
			SettlementWire:        ti.Settlement.Wire,
			WireReference:         ti.Settlement.WireReference,
			SettlementOutstanding: ti.SettlementOutstanding(),
			CreatedAt:             ti.CreatedAt,
		})
	}
	result := shared.NewPaginated(items, total, filter.Page, filter.PageSize)
	return &result, nil
}

func (s *TradeInService) toResponse(ti *payment.TradeIn, outgoing *inventory.Unit) *TradeInResponse {
	return &TradeInResponse{
		ID:                    ti.ID,
		OutgoingUnitID:        ti.OutgoingUnitID,
		OutgoingPrice:         ti.OutgoingPrice,
		IncomingUnitID:        ti.IncomingUnitID,
		AppraisedValue:        ti.AppraisedValue,
		CustomerID:            ti.CustomerID,
		Difference:            ti.Difference,
		Direction:             ti.Direction.String(),
		SettlementCash:        ti.Settlement.Cash,
		SettlementWire:        ti.Settlement.Wire,
		WireReference:         ti.Settlement.WireReference,
		SettlementOutstanding: ti.SettlementOutstanding(),
		Profit:                ti.Profit(outgoing.AcquisitionCost, outgoing.RepairCost),
		CreatedAt:             ti.CreatedAt,
	}
}
