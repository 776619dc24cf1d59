package payroll

import (
	"context"
	"database/sql"
	"errors"
	"time"

	payrollerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/payroll/errors"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const statusApproved = "APPROVED"

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	GetMonthlyStatement(ctx context.Context, employeeID, month string) (StatementResponse, error)
	GetWeeklyOvertime(ctx context.Context, employeeID string) (WeeklyOvertimeResponse, error)
	UpsertSalary(ctx context.Context, employeeID string, req UpsertSalaryRequest) (SalaryResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	configs shiftconfig.Service
	logger  *zap.Logger

	// now is swappable so week boundaries are testable.
	now func() time.Time
}

func NewService(db *sql.DB, repo Repository, configs shiftconfig.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, configs: configs, logger: l, now: time.Now}
}

func (s *service) GetMonthlyStatement(ctx context.Context, employeeID, month string) (StatementResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return StatementResponse{}, payrollerrors.ErrInvalidEmployeeID
	}
	target, err := time.Parse("2006-01", month)
	if err != nil {
		return StatementResponse{}, payrollerrors.ErrInvalidMonth
	}

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return StatementResponse{}, err
	}

	ref, err := s.repo.GetEmployeeRef(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatementResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return StatementResponse{}, err
	}

	salary, err := s.repo.GetSalary(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return StatementResponse{}, payrollerrors.ErrSalaryNotFound
		}
		return StatementResponse{}, err
	}

	rows, err := s.repo.FindRecordsByEmployee(ctx, employeeID)
	if err != nil {
		return StatementResponse{}, err
	}
	leaveRows, err := s.repo.FindLeavesByEmployee(ctx, employeeID)
	if err != nil {
		return StatementResponse{}, err
	}

	entries := make([]TimeEntry, len(rows))
	for i, r := range rows {
		entries[i] = TimeEntry{
			CheckIn:       r.CheckIn,
			CheckOut:      r.CheckOut,
			TotalHours:    r.TotalHours,
			OvertimeHours: r.OvertimeHours,
		}
	}
	leaves := make([]LeaveSpan, len(leaveRows))
	for i, l := range leaveRows {
		leaves[i] = LeaveSpan{
			StartDate: l.StartDate,
			EndDate:   l.EndDate,
			Approved:  l.Status == statusApproved,
			IsPaid:    l.IsPaid,
		}
	}

	stmt := MonthlyStatement(
		salary.BasicSalary, salary.Allowances,
		entries, leaves,
		target.Year(), target.Month(),
		cfg,
	)

	s.logger.Debug("monthly statement computed",
		zap.String("employee_id", employeeID),
		zap.String("month", month),
		zap.Float64("net_pay", stmt.NetPay),
	)

	return StatementResponse{
		EmployeeID:      employeeID,
		EmployeeName:    ref.FullName,
		Month:           month,
		Basic:           stmt.Basic,
		Allowances:      stmt.Allowances,
		OvertimeHours:   stmt.OvertimeHours,
		OvertimePay:     stmt.OvertimePay,
		UnpaidLeaveDays: stmt.UnpaidLeaveDays,
		LeaveDeduction:  stmt.LeaveDeduction,
		Tax:             stmt.Tax,
		NetPay:          stmt.NetPay,
	}, nil
}

func (s *service) GetWeeklyOvertime(ctx context.Context, employeeID string) (WeeklyOvertimeResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return WeeklyOvertimeResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return WeeklyOvertimeResponse{}, err
	}

	rows, err := s.repo.FindRecordsByEmployee(ctx, employeeID)
	if err != nil {
		return WeeklyOvertimeResponse{}, err
	}

	entries := make([]TimeEntry, len(rows))
	for i, r := range rows {
		entries[i] = TimeEntry{
			CheckIn:    r.CheckIn,
			CheckOut:   r.CheckOut,
			TotalHours: r.TotalHours,
		}
	}

	return WeeklyOvertimeResponse{
		EmployeeID:    employeeID,
		OvertimeHours: WeeklyOvertime(entries, s.now(), cfg),
	}, nil
}

func (s *service) UpsertSalary(ctx context.Context, employeeID string, req UpsertSalaryRequest) (SalaryResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return SalaryResponse{}, payrollerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("upsert salary begin tx failed", zap.Error(err))
		return SalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.GetEmployeeRef(ctx, employeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return SalaryResponse{}, payrollerrors.ErrEmployeeNotFound
		}
		return SalaryResponse{}, err
	}

	salary := &EmployeeSalary{
		EmployeeID:  employeeUUID,
		BasicSalary: req.BasicSalary,
		Allowances:  req.Allowances,
	}
	if err := qtx.UpsertSalary(ctx, salary); err != nil {
		s.logger.Error("upsert salary persist failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("upsert salary commit failed", zap.Error(err))
		return SalaryResponse{}, err
	}

	s.logger.Info("salary upserted",
		zap.String("employee_id", employeeID),
		zap.Float64("basic_salary", req.BasicSalary),
	)

	return SalaryResponse{
		EmployeeID:  employeeID,
		BasicSalary: salary.BasicSalary,
		Allowances:  salary.Allowances,
	}, nil
}
