package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/celushop/backend/internal/domain/payment"
	"github.com/celushop/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockPayableRepository creates a GormSupplierPayableRepository with a mocked SQL connection
func newMockPayableRepository(t *testing.T) (*GormSupplierPayableRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormSupplierPayableRepository(gormDB), mock, mockDB
}

func payableRows(id, unitID, supplierID uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "version", "unit_id", "supplier_id", "supplier_name",
		"target_cost", "mode", "lump_cash", "lump_wire", "lump_debit",
		"installments", "total_paid", "outstanding", "status",
	}).AddRow(
		id, 1, unitID, supplierID, "Importadora Andes",
		int64(500000), "LUMP_SUM", int64(200000), int64(0), int64(0),
		[]byte(`[]`), int64(200000), int64(300000), "PARTIAL",
	)
}

func TestGormSupplierPayableRepository_FindByID(t *testing.T) {
	t.Run("finds existing payable", func(t *testing.T) {
		repo, mock, mockDB := newMockPayableRepository(t)
		defer mockDB.Close()

		payableID := uuid.New()
		unitID := uuid.New()
		supplierID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "supplier_payables" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(payableID, 1).
			WillReturnRows(payableRows(payableID, unitID, supplierID))

		payable, err := repo.FindByID(context.Background(), payableID)

		assert.NoError(t, err)
		require.NotNil(t, payable)
		assert.Equal(t, payableID, payable.ID)
		assert.Equal(t, unitID, payable.UnitID)
		assert.Equal(t, "Importadora Andes", payable.SupplierName)
		assert.Equal(t, int64(300000), payable.Outstanding.Int64())
		assert.Equal(t, payment.PayableStatusPartial, payable.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for missing payable", func(t *testing.T) {
		repo, mock, mockDB := newMockPayableRepository(t)
		defer mockDB.Close()

		payableID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "supplier_payables" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(payableID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		payable, err := repo.FindByID(context.Background(), payableID)

		assert.Error(t, err)
		assert.Nil(t, payable)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierPayableRepository_FindByUnit(t *testing.T) {
	t.Run("finds payable for unit", func(t *testing.T) {
		repo, mock, mockDB := newMockPayableRepository(t)
		defer mockDB.Close()

		payableID := uuid.New()
		unitID := uuid.New()
		supplierID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "supplier_payables" WHERE unit_id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(unitID, 1).
			WillReturnRows(payableRows(payableID, unitID, supplierID))

		payable, err := repo.FindByUnit(context.Background(), unitID)

		assert.NoError(t, err)
		require.NotNil(t, payable)
		assert.Equal(t, unitID, payable.UnitID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierPayableRepository_SaveWithLock(t *testing.T) {
	t.Run("returns concurrency conflict when version moved on", func(t *testing.T) {
		repo, mock, mockDB := newMockPayableRepository(t)
		defer mockDB.Close()

		payable, err := payment.NewSupplierPayable(
			uuid.New(), uuid.New(), "Importadora Andes", 500000)
		require.NoError(t, err)
		payable.Version = 3

		mock.ExpectExec(`UPDATE "supplier_payables" SET .* WHERE .*id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.SaveWithLock(context.Background(), payable)

		assert.Equal(t, shared.ErrConcurrencyConflict, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("writes zero-valued ledger columns when payable settles", func(t *testing.T) {
		repo, mock, mockDB := newMockPayableRepository(t)
		defer mockDB.Close()

		payable, err := payment.NewSupplierPayable(
			uuid.New(), uuid.New(), "Importadora Andes", 500000)
		require.NoError(t, err)

		err = payable.RecordPayment(payment.PaymentInstrumentSet{Cash: 500000}, time.Now())
		require.NoError(t, err)
		require.Equal(t, int64(0), payable.Outstanding.Int64())
		require.Equal(t, payment.PayableStatusPaid, payable.Status)

		// The settled ledger zeroes outstanding; the UPDATE must still carry
		// the column, together with the untouched wire amount.
		mock.ExpectExec(`UPDATE "supplier_payables" SET .*"lump_wire"=\$\d+,"outstanding"=\$\d+,.* WHERE \(id = \$\d+ AND version = \$\d+\)`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.SaveWithLock(context.Background(), payable)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormSupplierPayableRepository_Summarize(t *testing.T) {
	t.Run("aggregates counts and clamped outstanding", func(t *testing.T) {
		repo, mock, mockDB := newMockPayableRepository(t)
		defer mockDB.Close()

		rows := sqlmock.NewRows([]string{
			"total_count", "pending_count", "partial_count", "paid_count", "total_outstanding",
		}).AddRow(int64(5), int64(2), int64(2), int64(1), int64(1250000))

		mock.ExpectQuery(`(?s)SELECT COUNT\(\*\) AS total_count.*FROM "supplier_payables"`).
			WillReturnRows(rows)

		summary, err := repo.Summarize(context.Background())

		assert.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, int64(5), summary.TotalCount)
		assert.Equal(t, int64(2), summary.PendingCount)
		assert.Equal(t, int64(1), summary.PaidCount)
		assert.Equal(t, int64(1250000), summary.TotalOutstanding.Int64())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
