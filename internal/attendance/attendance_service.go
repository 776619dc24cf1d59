package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance/errors"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/payroll"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const workModeRemote = "REMOTE"

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (RecordResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (RecordResponse, error)
	GetAll(ctx context.Context, actorID string, canReadAll bool) ([]RecordResponse, error)
	Correct(ctx context.Context, recordID string, req CorrectRecordRequest) (RecordResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	configs shiftconfig.Service
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, configs shiftconfig.Service, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, configs: configs, logger: l}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (RecordResponse, error) {
	s.logger.Debug("check-in requested", zap.String("employee_id", employeeID))

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-in begin tx failed", zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ref, err := qtx.GetEmployeeRef(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return RecordResponse{}, err
	}

	_, err = qtx.FindOpenByEmployee(ctx, employeeID)
	if err == nil {
		return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return RecordResponse{}, err
	}

	now := time.Now().UTC()
	rec := &Record{
		ID:           uuid.New(),
		EmployeeID:   employeeID,
		EmployeeName: ref.FullName,
		ShiftDate:    shiftclock.ShiftDayTime(now, cfg),
		CheckIn:      now,
		Status: ClassifyCheckIn(now, cfg, ClassifyOptions{
			Remote:      ref.WorkMode == workModeRemote,
			BadgeSuffix: badgeSuffix(ref.EmployeeNumber),
		}),
		Notes: req.Notes,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		// The partial unique index closes the race two devices can open.
		if isOpenRecordViolation(err) {
			return RecordResponse{}, attendanceerrors.ErrAlreadyCheckedIn
		}
		s.logger.Error("check-in persist failed", zap.Error(err))
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("check-in commit failed", zap.Error(err))
		return RecordResponse{}, err
	}

	s.logger.Info("check-in recorded",
		zap.String("employee_id", employeeID),
		zap.String("shift_date", rec.ShiftDate.Format("2006-01-02")),
		zap.String("status", rec.Status),
	)
	return mapToResponse(*rec, cfg), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (RecordResponse, error) {
	s.logger.Debug("check-out requested", zap.String("employee_id", employeeID))

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return RecordResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check-out begin tx failed", zap.Error(err))
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindOpenByEmployee(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrNoOpenRecord
		}
		return RecordResponse{}, err
	}

	now := time.Now().UTC()
	rec.CheckOut = &now
	applyDerivedHours(rec, cfg)
	if req.Notes != nil {
		rec.Notes = req.Notes
	}

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("check-out persist failed", zap.Error(err))
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("check-out commit failed", zap.Error(err))
		return RecordResponse{}, err
	}

	s.logger.Info("check-out recorded",
		zap.String("employee_id", employeeID),
		zap.Float64p("total_hours", rec.TotalHours),
	)
	return mapToResponse(*rec, cfg), nil
}

func (s *service) GetAll(ctx context.Context, actorID string, canReadAll bool) ([]RecordResponse, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}

	var rows []Record
	if canReadAll {
		rows, err = s.repo.FindAll(ctx)
	} else {
		rows, err = s.repo.FindAllByEmployee(ctx, actorID)
	}
	if err != nil {
		return nil, err
	}

	res := make([]RecordResponse, len(rows))
	for i, rec := range rows {
		res[i] = mapToResponse(rec, cfg)
	}
	return res, nil
}

// Correct rewrites the punches of a record and recomputes the cached hours
// and arrival status from the corrected instants.
func (s *service) Correct(ctx context.Context, recordID string, req CorrectRecordRequest) (RecordResponse, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return RecordResponse{}, err
	}

	checkIn, err := time.Parse(time.RFC3339, req.CheckIn)
	if err != nil {
		return RecordResponse{}, attendanceerrors.ErrInvalidTimestamp
	}
	var checkOut *time.Time
	if req.CheckOut != nil && *req.CheckOut != "" {
		t, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err != nil {
			return RecordResponse{}, attendanceerrors.ErrInvalidTimestamp
		}
		if t.Before(checkIn) {
			return RecordResponse{}, attendanceerrors.ErrCheckOutBeforeCheckIn
		}
		checkOut = &t
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return RecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rec, err := qtx.FindByID(ctx, recordID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return RecordResponse{}, attendanceerrors.ErrRecordNotFound
		}
		return RecordResponse{}, err
	}

	ref, refErr := qtx.GetEmployeeRef(ctx, rec.EmployeeID)

	rec.CheckIn = checkIn
	rec.CheckOut = checkOut
	rec.ShiftDate = shiftclock.ShiftDayTime(checkIn, cfg)

	opts := ClassifyOptions{}
	if refErr == nil {
		opts.Remote = ref.WorkMode == workModeRemote
		opts.BadgeSuffix = badgeSuffix(ref.EmployeeNumber)
	}
	rec.Status = ClassifyCheckIn(checkIn, cfg, opts)

	rec.TotalHours = nil
	rec.OvertimeHours = nil
	if checkOut != nil {
		applyDerivedHours(rec, cfg)
	}

	if err := qtx.Update(ctx, rec); err != nil {
		s.logger.Error("correct record persist failed", zap.Error(err))
		return RecordResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return RecordResponse{}, err
	}

	s.logger.Info("attendance record corrected", zap.String("record_id", recordID))
	return mapToResponse(*rec, cfg), nil
}

// applyDerivedHours refreshes the cached figures from the punches. Overtime
// stays nil when there is none, so "no overtime" and "not yet computed"
// stay distinguishable downstream.
func applyDerivedHours(rec *Record, cfg shiftclock.Config) {
	if rec.CheckOut == nil {
		return
	}
	total := payroll.TotalHours(rec.CheckIn, *rec.CheckOut, cfg)
	rec.TotalHours = &total

	rec.OvertimeHours = nil
	if ot := payroll.OvertimeHours(rec.CheckIn, *rec.CheckOut, cfg); ot > 0 {
		rec.OvertimeHours = &ot
	}
}

// badgeSuffix extracts the numeric tail of a badge ("BS-031" -> "031").
func badgeSuffix(number string) string {
	if idx := strings.LastIndex(number, "-"); idx >= 0 {
		return number[idx+1:]
	}
	return number
}

func isOpenRecordViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" && pgErr.ConstraintName == "idx_open_record"
	}

	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key value") && strings.Contains(msg, "idx_open_record")
}

func mapToResponse(rec Record, cfg shiftclock.Config) RecordResponse {
	resp := RecordResponse{
		ID:             rec.ID.String(),
		EmployeeID:     rec.EmployeeID,
		EmployeeName:   rec.EmployeeName,
		ShiftDate:      rec.ShiftDate.Format("2006-01-02"),
		CheckIn:        rec.CheckIn.Format(time.RFC3339),
		Status:         rec.Status,
		CheckOutStatus: ClassifyCheckOut(rec.CheckOut, cfg),
		TotalHours:     rec.TotalHours,
		OvertimeHours:  rec.OvertimeHours,
		Notes:          rec.Notes,
	}
	if rec.CheckOut != nil {
		v := rec.CheckOut.Format(time.RFC3339)
		resp.CheckOut = &v
	}
	return resp
}
