package reconcile_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/reconcile"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
	configMock "github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// These tests run the sweep against the real repository so the statements
// gorm issues are visible: everything between BEGIN and COMMIT has to ride
// the service's transaction, with no per-row commits in between.

func sweepConfig() shiftclock.Config {
	return shiftclock.Config{Start: "09:00", End: "17:00", Timezone: "UTC"}
}

func setupSweepDB(t *testing.T) (reconcile.Service, sqlmock.Sqlmock, func()) {
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	configs := configMock.NewMockService(ctrl)
	configs.EXPECT().Get(gomock.Any()).Return(sweepConfig(), nil)

	svc := reconcile.NewService(db, reconcile.NewRepository(gormDB), configs, nil)
	return svc, sqlMock, func() { db.Close() }
}

func staleRecordRows(ownerID string, ids ...uuid.UUID) *sqlmock.Rows {
	checkIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "employee_id", "employee_name", "shift_date",
		"check_in", "check_out", "status", "total_hours", "overtime_hours",
	})
	for _, id := range ids {
		// Stored total is stale: 09:00 to 17:00 is 8 hours, not 5.
		rows.AddRow(id.String(), ownerID, "Aisha Khan", checkIn.Truncate(24*time.Hour),
			checkIn, checkOut, "ON_TIME", 5.0, nil)
	}
	return rows
}

func rosterRows(ownerID string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "employee_number", "full_name"}).
		AddRow(ownerID, "BS-031", "Aisha Khan")
}

func TestSweep_CommitsRepairsInOneTransaction(t *testing.T) {
	svc, sqlMock, teardown := setupSweepDB(t)
	defer teardown()

	ownerID := uuid.NewString()

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`SELECT \* FROM "attendance_records"`).
		WillReturnRows(staleRecordRows(ownerID, uuid.New()))
	sqlMock.ExpectQuery(`SELECT "id","employee_number","full_name" FROM "employees"`).
		WillReturnRows(rosterRows(ownerID))
	sqlMock.ExpectExec(`UPDATE "attendance_records" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	res, err := svc.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, res.RecordsRefreshed)
	assert.Equal(t, 1, res.RecordsSaved)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSweep_AbortsWithoutPartialPersistence(t *testing.T) {
	svc, sqlMock, teardown := setupSweepDB(t)
	defer teardown()

	ownerID := uuid.NewString()

	// Two stale rows: the first UPDATE succeeds on the open transaction,
	// the second fails. The only statement allowed after that is ROLLBACK,
	// so the first repair never becomes visible.
	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`SELECT \* FROM "attendance_records"`).
		WillReturnRows(staleRecordRows(ownerID, uuid.New(), uuid.New()))
	sqlMock.ExpectQuery(`SELECT "id","employee_number","full_name" FROM "employees"`).
		WillReturnRows(rosterRows(ownerID))
	sqlMock.ExpectExec(`UPDATE "attendance_records" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`UPDATE "attendance_records" SET`).
		WillReturnError(errors.New("disk full"))
	sqlMock.ExpectRollback()

	_, err := svc.Run(context.Background())

	assert.Error(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
