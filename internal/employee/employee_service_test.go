package employee_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/employee"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Delete runs against the real repositories here so the cascade deletes and
// the outbox insert are observably inside the same transaction.

func setupDeleteTest(t *testing.T) (employee.Service, sqlmock.Sqlmock, func()) {
	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		SkipDefaultTransaction: true,
	})
	assert.NoError(t, err)

	svc := employee.NewServiceWithOutbox(db, employee.NewRepository(gormDB), kafka.NewOutboxRepository(db))
	return svc, sqlMock, func() { db.Close() }
}

func employeeRow(id uuid.UUID) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "employee_number", "full_name", "work_mode", "created_at", "updated_at"}).
		AddRow(id.String(), "BS-031", "Aisha Khan", "ONSITE", time.Now(), time.Now())
}

func TestEmployeeService_DeleteCascadesAndEventShareTransaction(t *testing.T) {
	svc, sqlMock, teardown := setupDeleteTest(t)
	defer teardown()

	id := uuid.New()

	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(employeeRow(id))
	sqlMock.ExpectExec(`DELETE FROM "attendance_records" WHERE employee_id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	sqlMock.ExpectExec(`DELETE FROM "attendance_records" WHERE employee_id = \$1`).
		WithArgs("BS-031").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`DELETE FROM "employees" WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectCommit()

	err := svc.Delete(context.Background(), id.String())

	assert.NoError(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestEmployeeService_DeleteRollsBackCascadesWhenEventFails(t *testing.T) {
	svc, sqlMock, teardown := setupDeleteTest(t)
	defer teardown()

	id := uuid.New()

	// The outbox insert fails after both cascades ran, so the whole delete
	// rolls back: no records vanish without a matching lifecycle event.
	sqlMock.ExpectBegin()
	sqlMock.ExpectQuery(`SELECT \* FROM "employees" WHERE id = \$1`).
		WithArgs(id.String(), 1).
		WillReturnRows(employeeRow(id))
	sqlMock.ExpectExec(`DELETE FROM "attendance_records" WHERE employee_id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 3))
	sqlMock.ExpectExec(`DELETE FROM "attendance_records" WHERE employee_id = \$1`).
		WithArgs("BS-031").
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`DELETE FROM "employees" WHERE id = \$1`).
		WithArgs(id.String()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	sqlMock.ExpectExec(`INSERT INTO outbox_events`).
		WillReturnError(errors.New("relation outbox_events does not exist"))
	sqlMock.ExpectRollback()

	err := svc.Delete(context.Background(), id.String())

	assert.Error(t, err)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}
