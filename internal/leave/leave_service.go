package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	leaveerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/leave/errors"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/notification"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// paidLeaveQuotaPerMonth caps how many leaves per calendar month are paid
// at submission time.
const paidLeaveQuotaPerMonth = 1

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error)
	GetAll(ctx context.Context) ([]LeaveResponse, error)
	GetAllByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	Approve(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Reject(ctx context.Context, actorID, id string) (LeaveResponse, error)
	Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	notifications notification.Service
	logger        *zap.Logger
}

func NewService(db *sql.DB, repo Repository, notifications notification.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, notifications: notifications, logger: l}
}

func (s *service) Create(ctx context.Context, employeeID string, req CreateLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("create leave requested",
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.GetEmployeeRef(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
		}
		return LeaveResponse{}, err
	}

	overlap, err := qtx.HasOverlappingLeave(ctx, employeeID, startDate, endDate, nil)
	if err != nil {
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	// Paid status is decided once at submission: one paid leave per
	// calendar month, keyed by the month the leave starts in.
	monthStart := time.Date(startDate.Year(), startDate.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	paidCount, err := qtx.CountPaidLeavesStartingInMonth(ctx, employeeID, monthStart, monthEnd)
	if err != nil {
		return LeaveResponse{}, err
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: employeeUUID,
		StartDate:  startDate,
		EndDate:    endDate,
		Status:     StatusPending,
		IsPaid:     paidCount < paidLeaveQuotaPerMonth,
		Reason:     req.Reason,
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave created",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Bool("is_paid", l.IsPaid),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Approve(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.transition(ctx, actorID, id, StatusPending, StatusApproved)
	if err != nil {
		return LeaveResponse{}, err
	}

	// An approval is a real state transition, so the notice re-surfaces
	// even if an older one with the same id was dismissed.
	if s.notifications != nil {
		notifyErr := s.notifications.Upsert(ctx, notification.Notification{
			ID:         fmt.Sprintf("leave-approved:%s", l.ID),
			EmployeeID: l.EmployeeID.String(),
			Title:      "Leave approved",
			Message: fmt.Sprintf("Your leave from %s to %s has been approved.",
				l.StartDate.Format("2006-01-02"), l.EndDate.Format("2006-01-02")),
		}, true)
		if notifyErr != nil {
			s.logger.Warn("leave approval notification failed",
				zap.String("leave_id", id),
				zap.Error(notifyErr),
			)
		}
	}

	return mapToResponse(*l), nil
}

func (s *service) Reject(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.transition(ctx, actorID, id, StatusPending, StatusRejected)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) Cancel(ctx context.Context, actorID, id string) (LeaveResponse, error) {
	l, err := s.transition(ctx, actorID, id, StatusPending, StatusCancelled)
	if err != nil {
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) transition(ctx context.Context, actorID, id, from, to string) (*Leave, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave transition begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	if l.Status != from {
		return nil, leaveerrors.ErrInvalidStatusTransition
	}

	l.Status = to
	if actorUUID, err := uuid.Parse(actorID); err == nil {
		l.DecidedBy = &actorUUID
	}
	now := time.Now().UTC()
	l.DecidedAt = &now

	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("leave transition persist failed", zap.Error(err))
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("leave transitioned",
		zap.String("leave_id", id),
		zap.String("status", to),
	)
	return l, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  l.StartDate.Format("2006-01-02"),
		EndDate:    l.EndDate.Format("2006-01-02"),
		TotalDays:  int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1,
		Status:     l.Status,
		IsPaid:     l.IsPaid,
		Reason:     l.Reason,
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	return resp
}

func mapToListResponse(rows []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(rows))
	for i, l := range rows {
		resp[i] = mapToResponse(l)
	}
	return resp
}
