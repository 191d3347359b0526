package payment

import (
	"context"
	"time"

	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/celushop/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PayableService provides application-level supplier ledger operations
type PayableService struct {
	payableRepo payment.SupplierPayableRepository
	idempotency shared.IdempotencyStore
	idemConfig  shared.IdempotencyConfig
}

// NewPayableService creates a new PayableService
func NewPayableService(payableRepo payment.SupplierPayableRepository, idempotency shared.IdempotencyStore, idemConfig shared.IdempotencyConfig) *PayableService {
	return &PayableService{
		payableRepo: payableRepo,
		idempotency: idempotency,
		idemConfig:  idemConfig,
	}
}

// InstallmentResponse represents one installment in API responses
type InstallmentResponse struct {
	Number        int               `json:"number"`
	Amount        valueobject.Money `json:"amount"`
	DueDate       time.Time         `json:"due_date"`
	Cash          valueobject.Money `json:"cash"`
	Wire          valueobject.Money `json:"wire"`
	WireReference string            `json:"wire_reference,omitempty"`
	PaidDate      *time.Time        `json:"paid_date,omitempty"`
	Status        string            `json:"status"`
}

// PayableResponse echoes the full recomputed ledger
type PayableResponse struct {
	ID                 uuid.UUID             `json:"id"`
	UnitID             uuid.UUID             `json:"unit_id"`
	SupplierID         uuid.UUID             `json:"supplier_id"`
	SupplierName       string                `json:"supplier_name"`
	TargetCost         valueobject.Money     `json:"target_cost"`
	Mode               string                `json:"mode"`
	Cash               valueobject.Money     `json:"cash"`
	Wire               valueobject.Money     `json:"wire"`
	WireReference      string                `json:"wire_reference,omitempty"`
	PaidDate           *time.Time            `json:"paid_date,omitempty"`
	Installments       []InstallmentResponse `json:"installments,omitempty"`
	TotalPaid          valueobject.Money     `json:"total_paid"`
	Outstanding        valueobject.Money     `json:"outstanding"`
	DisplayOutstanding valueobject.Money     `json:"display_outstanding"`
	PaidPercentage     string                `json:"paid_percentage"`
	Status             string                `json:"status"`
	CreatedAt          time.Time             `json:"created_at"`
	UpdatedAt          time.Time             `json:"updated_at"`
	Version            int                   `json:"version"`
}

// RecordPaymentCommand carries one payment recording request. An
// InstallmentNumber of zero selects the lump-sum path.
type RecordPaymentCommand struct {
	InstallmentNumber int
	Cash              valueobject.Money
	Wire              valueobject.Money
	WireReference     string
	Date              time.Time
	IdempotencyKey    string
}

// RedistributeCommand regenerates an installment schedule
type RedistributeCommand struct {
	Count           int
	CadenceDays     int
	StartDate       time.Time
	AcknowledgeLoss bool
}

// PayableListFilter defines filtering options for payable list queries
type PayableListFilter struct {
	SupplierID *uuid.UUID `form:"supplier_id"`
	Status     string     `form:"status"`
	Mode       string     `form:"mode"`
	Page       int        `form:"page"`
	PageSize   int        `form:"page_size"`
}

// GetPayable gets a payable by ID
func (s *PayableService) GetPayable(ctx context.Context, id uuid.UUID) (*PayableResponse, error) {
	sp, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toPayableResponse(sp), nil
}

// GetPayableByUnit gets the payable of a unit
func (s *PayableService) GetPayableByUnit(ctx context.Context, unitID uuid.UUID) (*PayableResponse, error) {
	sp, err := s.payableRepo.FindByUnit(ctx, unitID)
	if err != nil {
		return nil, err
	}
	return toPayableResponse(sp), nil
}

// RecordPayment applies a payment to a payable, lump or installment depending
// on the command. A replayed idempotency key returns the current ledger
// without accumulating again. On a version conflict the write is rejected and
// the operator retries from a fresh read; nothing is retried here.
func (s *PayableService) RecordPayment(ctx context.Context, id uuid.UUID, cmd RecordPaymentCommand) (*PayableResponse, error) {
	if s.idemConfig.Enabled && cmd.IdempotencyKey != "" {
		seen, err := s.idempotency.IsProcessed(ctx, paymentIdemKey(id, cmd.IdempotencyKey))
		if err != nil {
			return nil, err
		}
		if seen {
			return s.GetPayable(ctx, id)
		}
	}

	sp, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	set := payment.PaymentInstrumentSet{
		Cash:          cmd.Cash,
		Wire:          cmd.Wire,
		WireReference: cmd.WireReference,
	}
	date := cmd.Date
	if date.IsZero() {
		date = time.Now()
	}

	if cmd.InstallmentNumber > 0 {
		err = sp.RecordInstallmentPayment(cmd.InstallmentNumber, set, date)
	} else {
		err = sp.RecordPayment(set, date)
	}
	if err != nil {
		return nil, err
	}

	if err := s.payableRepo.SaveWithLock(ctx, sp); err != nil {
		return nil, err
	}

	if s.idemConfig.Enabled && cmd.IdempotencyKey != "" {
		// Best effort: a failed mark means a replay may accumulate twice,
		// which the version check will not catch. Surfacing the error would
		// report a recorded payment as failed, so it is swallowed.
		_, _ = s.idempotency.MarkProcessed(ctx, paymentIdemKey(id, cmd.IdempotencyKey), s.idemConfig.TTL)
	}

	return toPayableResponse(sp), nil
}

// RedistributeSchedule discards and regenerates the installment schedule.
// When payments were already collected the caller must acknowledge their loss
// explicitly; the first call without the flag reports what would be lost.
func (s *PayableService) RedistributeSchedule(ctx context.Context, id uuid.UUID, cmd RedistributeCommand) (*PayableResponse, error) {
	sp, err := s.payableRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if sp.HasCollectedInstallments() && !cmd.AcknowledgeLoss {
		return nil, shared.NewDomainError("SCHEDULE_HAS_PAYMENTS",
			"Redistributing discards installments with recorded payments; confirm to proceed")
	}

	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}
	if err := sp.Redistribute(cmd.Count, cmd.CadenceDays, startDate); err != nil {
		return nil, err
	}

	if err := s.payableRepo.SaveWithLock(ctx, sp); err != nil {
		return nil, err
	}

	return toPayableResponse(sp), nil
}

// ListPayables lists payables with filtering and paging
func (s *PayableService) ListPayables(ctx context.Context, filter PayableListFilter) (*shared.Paginated[PayableResponse], error) {
	repoFilter := payment.SupplierPayableFilter{Filter: shared.DefaultFilter()}
	if filter.Page > 0 {
		repoFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		repoFilter.PageSize = filter.PageSize
	}
	repoFilter.SupplierID = filter.SupplierID
	if filter.Status != "" {
		status := payment.PayableStatus(filter.Status)
		if !status.IsValid() {
			return nil, shared.NewDomainError("INVALID_STATUS", "Unknown payable status "+filter.Status)
		}
		repoFilter.Status = &status
	}
	if filter.Mode != "" {
		mode := payment.PaymentMode(filter.Mode)
		if !mode.IsValid() {
			return nil, shared.NewDomainError("INVALID_MODE", "Unknown payment mode "+filter.Mode)
		}
		repoFilter.Mode = &mode
	}

	payables, err := s.payableRepo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	total, err := s.payableRepo.Count(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	items := make([]PayableResponse, 0, len(payables))
	for i := range payables {
		items = append(items, *toPayableResponse(&payables[i]))
	}
	result := shared.NewPaginated(items, total, repoFilter.Page, repoFilter.PageSize)
	return &result, nil
}

// GetSummary aggregates the ledger for the dashboard badges
func (s *PayableService) GetSummary(ctx context.Context) (*payment.PayableSummary, error) {
	return s.payableRepo.Summarize(ctx)
}

func paymentIdemKey(payableID uuid.UUID, key string) string {
	return "payable:" + payableID.String() + ":payment:" + key
}

func toPayableResponse(sp *payment.SupplierPayable) *PayableResponse {
	resp := &PayableResponse{
		ID:                 sp.ID,
		UnitID:             sp.UnitID,
		SupplierID:         sp.SupplierID,
		SupplierName:       sp.SupplierName,
		TargetCost:         sp.TargetCost,
		Mode:               sp.Mode.String(),
		Cash:               sp.Lump.Cash,
		Wire:               sp.Lump.Wire,
		WireReference:      sp.Lump.WireReference,
		PaidDate:           sp.LumpPaidDate,
		TotalPaid:          sp.TotalPaid,
		Outstanding:        sp.Outstanding,
		DisplayOutstanding: sp.DisplayOutstanding(),
		PaidPercentage:     sp.PaidPercentage().String(),
		Status:             sp.Status.String(),
		CreatedAt:          sp.CreatedAt,
		UpdatedAt:          sp.UpdatedAt,
		Version:            sp.Version,
	}
	for _, inst := range sp.Installments {
		resp.Installments = append(resp.Installments, InstallmentResponse{
			Number:        inst.Number,
			Amount:        inst.Amount,
			DueDate:       inst.DueDate,
			Cash:          inst.Paid.Cash,
			Wire:          inst.Paid.Wire,
			WireReference: inst.Paid.WireReference,
			PaidDate:      inst.PaidDate,
			Status:        inst.Status.String(),
		})
	}
	return resp
}
