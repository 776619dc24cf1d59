package attendance_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance"
	attendanceerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance/errors"
	attendanceMock "github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance/mock"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
	configMock "github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db      *sql.DB
	sqlMock sqlmock.Sqlmock
	service attendance.Service
	repo    *attendanceMock.MockRepository
	configs *configMock.MockService
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := attendanceMock.NewMockRepository(ctrl)
	configs := configMock.NewMockService(ctrl)

	svc := attendance.NewService(db, repo, configs)

	return &serviceDeps{
		db:      db,
		sqlMock: sqlMock,
		service: svc,
		repo:    repo,
		configs: configs,
	}
}

func testConfig() shiftclock.Config {
	return shiftclock.Config{
		Start:                          "09:00",
		End:                            "17:00",
		GracePeriodMinutes:             30,
		EarlyCheckoutRelaxationMinutes: 30,
		Timezone:                       "UTC",
	}
}

func TestAttendanceService_CheckIn(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	ref := &attendance.EmployeeRef{
		ID:             uuid.MustParse(employeeID),
		EmployeeNumber: "BS-031",
		FullName:       "Aisha Khan",
		WorkMode:       "ONSITE",
	}

	t.Run("creates the open record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().GetEmployeeRef(ctx, employeeID).Return(ref, nil)
		deps.repo.EXPECT().
			FindOpenByEmployee(ctx, employeeID).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *attendance.Record) error {
				assert.Equal(t, employeeID, rec.EmployeeID)
				assert.Equal(t, "Aisha Khan", rec.EmployeeName)
				assert.Nil(t, rec.CheckOut)
				assert.NotEmpty(t, rec.Status)
				return nil
			})

		resp, err := deps.service.CheckIn(ctx, employeeID, attendance.CheckInRequest{})

		assert.NoError(t, err)
		assert.Equal(t, attendance.CheckoutActive, resp.CheckOutStatus)
		assert.Nil(t, resp.TotalHours)
	})

	t.Run("second open check-in rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().GetEmployeeRef(ctx, employeeID).Return(ref, nil)
		deps.repo.EXPECT().
			FindOpenByEmployee(ctx, employeeID).
			Return(&attendance.Record{ID: uuid.New()}, nil)

		_, err := deps.service.CheckIn(ctx, employeeID, attendance.CheckInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("unique index race maps to already checked in", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().GetEmployeeRef(ctx, employeeID).Return(ref, nil)
		deps.repo.EXPECT().
			FindOpenByEmployee(ctx, employeeID).
			Return(nil, gorm.ErrRecordNotFound)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "idx_open_record"})

		_, err := deps.service.CheckIn(ctx, employeeID, attendance.CheckInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrAlreadyCheckedIn)
	})

	t.Run("unknown employee rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			GetEmployeeRef(ctx, employeeID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CheckIn(ctx, employeeID, attendance.CheckInRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrEmployeeNotFound)
	})
}

func TestAttendanceService_CheckOut(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("closes the record and caches hours", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		open := &attendance.Record{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			CheckIn:    time.Now().UTC().Add(-10 * time.Hour),
			Status:     attendance.StatusOnTime,
		}

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindOpenByEmployee(ctx, employeeID).Return(open, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *attendance.Record) error {
				assert.NotNil(t, rec.CheckOut)
				assert.NotNil(t, rec.TotalHours)
				assert.InDelta(t, 10, *rec.TotalHours, 0.01)
				return nil
			})

		resp, err := deps.service.CheckOut(ctx, employeeID, attendance.CheckOutRequest{})

		assert.NoError(t, err)
		assert.NotNil(t, resp.TotalHours)
	})

	t.Run("no open record", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			FindOpenByEmployee(ctx, employeeID).
			Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.CheckOut(ctx, employeeID, attendance.CheckOutRequest{})

		assert.ErrorIs(t, err, attendanceerrors.ErrNoOpenRecord)
	})
}

func TestAttendanceService_Correct(t *testing.T) {
	ctx := context.Background()
	recordID := uuid.New().String()

	t.Run("recomputes status and hours", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		employeeID := uuid.New().String()
		stale := &attendance.Record{
			ID:         uuid.MustParse(recordID),
			EmployeeID: employeeID,
			CheckIn:    time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
			Status:     attendance.StatusOnTime,
		}

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)
		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, recordID).Return(stale, nil)
		deps.repo.EXPECT().
			GetEmployeeRef(ctx, employeeID).
			Return(&attendance.EmployeeRef{EmployeeNumber: "BS-031", WorkMode: "ONSITE"}, nil)
		deps.repo.EXPECT().
			Update(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *attendance.Record) error {
				assert.Equal(t, attendance.StatusLate, rec.Status)
				assert.NotNil(t, rec.TotalHours)
				assert.InDelta(t, 7, *rec.TotalHours, 0.01)
				return nil
			})

		out := "2024-01-10T17:00:00Z"
		resp, err := deps.service.Correct(ctx, recordID, attendance.CorrectRecordRequest{
			CheckIn:  "2024-01-10T10:00:00Z",
			CheckOut: &out,
		})

		assert.NoError(t, err)
		assert.Equal(t, attendance.StatusLate, resp.Status)
	})

	t.Run("checkout before checkin rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)

		out := "2024-01-10T08:00:00Z"
		_, err := deps.service.Correct(ctx, recordID, attendance.CorrectRecordRequest{
			CheckIn:  "2024-01-10T10:00:00Z",
			CheckOut: &out,
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrCheckOutBeforeCheckIn)
	})

	t.Run("garbage timestamp rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.configs.EXPECT().Get(ctx).Return(testConfig(), nil)

		_, err := deps.service.Correct(ctx, recordID, attendance.CorrectRecordRequest{
			CheckIn: "yesterday-ish",
		})

		assert.ErrorIs(t, err, attendanceerrors.ErrInvalidTimestamp)
	})
}
