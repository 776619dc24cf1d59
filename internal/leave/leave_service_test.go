package leave_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/leave"
	leaveerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/leave/errors"
	leaveMock "github.com/danishbarkat/bytechsol-portal-sub000/internal/leave/mock"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/notification"
	notificationMock "github.com/danishbarkat/bytechsol-portal-sub000/internal/notification/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type serviceDeps struct {
	db            *sql.DB
	sqlMock       sqlmock.Sqlmock
	service       leave.Service
	repo          *leaveMock.MockRepository
	notifications *notificationMock.MockService
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	repo := leaveMock.NewMockRepository(ctrl)
	notifications := notificationMock.NewMockService(ctrl)

	svc := leave.NewService(db, repo, notifications)

	return &serviceDeps{
		db:            db,
		sqlMock:       sqlMock,
		service:       svc,
		repo:          repo,
		notifications: notifications,
	}
}

func TestLeaveService_Create(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()
	req := leave.CreateLeaveRequest{
		StartDate: "2024-03-04",
		EndDate:   "2024-03-06",
		Reason:    "family",
	}

	t.Run("first leave of the month is paid", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().GetEmployeeRef(ctx, employeeID).Return(&leave.EmployeeRef{}, nil)
		deps.repo.EXPECT().
			HasOverlappingLeave(ctx, employeeID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(false, nil)
		deps.repo.EXPECT().
			CountPaidLeavesStartingInMonth(ctx, employeeID, gomock.Any(), gomock.Any()).
			Return(int64(0), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, l *leave.Leave) error {
				assert.Equal(t, leave.StatusPending, l.Status)
				assert.True(t, l.IsPaid)
				return nil
			})

		resp, err := deps.service.Create(ctx, employeeID, req)

		assert.NoError(t, err)
		assert.True(t, resp.IsPaid)
		assert.Equal(t, 3, resp.TotalDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("second leave of the month is unpaid", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().GetEmployeeRef(ctx, employeeID).Return(&leave.EmployeeRef{}, nil)
		deps.repo.EXPECT().
			HasOverlappingLeave(ctx, employeeID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(false, nil)
		deps.repo.EXPECT().
			CountPaidLeavesStartingInMonth(ctx, employeeID, gomock.Any(), gomock.Any()).
			Return(int64(1), nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Create(ctx, employeeID, req)

		assert.NoError(t, err)
		assert.False(t, resp.IsPaid)
	})

	t.Run("overlapping leave rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().GetEmployeeRef(ctx, employeeID).Return(&leave.EmployeeRef{}, nil)
		deps.repo.EXPECT().
			HasOverlappingLeave(ctx, employeeID, gomock.Any(), gomock.Any(), gomock.Nil()).
			Return(true, nil)

		_, err := deps.service.Create(ctx, employeeID, req)

		assert.ErrorIs(t, err, leaveerrors.ErrLeaveOverlap)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, employeeID, leave.CreateLeaveRequest{
			StartDate: "2024-03-10",
			EndDate:   "2024-03-08",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})

	t.Run("bad employee id rejected", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		_, err := deps.service.Create(ctx, "not-a-uuid", req)

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidEmployeeID)
	})
}

func TestLeaveService_Approve(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New().String()

	pendingLeave := func() *leave.Leave {
		return &leave.Leave{
			ID:         uuid.New(),
			EmployeeID: uuid.New(),
			StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
			EndDate:    time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC),
			Status:     leave.StatusPending,
			IsPaid:     true,
		}
	}

	t.Run("approval notifies the employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		l := pendingLeave()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.notifications.EXPECT().
			Upsert(ctx, gomock.Any(), true).
			DoAndReturn(func(_ context.Context, n notification.Notification, forceUnread bool) error {
				assert.Equal(t, "leave-approved:"+l.ID.String(), n.ID)
				assert.Equal(t, l.EmployeeID.String(), n.EmployeeID)
				return nil
			})

		resp, err := deps.service.Approve(ctx, actorID, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})

	t.Run("already decided leave cannot be approved", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		l := pendingLeave()
		l.Status = leave.StatusRejected

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)

		_, err := deps.service.Approve(ctx, actorID, l.ID.String())

		assert.ErrorIs(t, err, leaveerrors.ErrInvalidStatusTransition)
	})

	t.Run("notification failure does not fail the approval", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		l := pendingLeave()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.notifications.EXPECT().
			Upsert(ctx, gomock.Any(), true).
			Return(assert.AnError)

		resp, err := deps.service.Approve(ctx, actorID, l.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, resp.Status)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	l := &leave.Leave{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		StartDate:  time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC),
		Status:     leave.StatusPending,
	}

	deps.sqlMock.ExpectBegin()
	deps.sqlMock.ExpectCommit()

	deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
	deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
	deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	resp, err := deps.service.Cancel(ctx, l.EmployeeID.String(), l.ID.String())

	assert.NoError(t, err)
	assert.Equal(t, leave.StatusCancelled, resp.Status)
	assert.Equal(t, 1, resp.TotalDays)
}
