package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/employee/errors"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/events"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	titler cases.Caser
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		titler: cases.Title(language.English),
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("employee_number", req.EmployeeNumber),
	)

	workMode := req.WorkMode
	if workMode == "" {
		workMode = WorkModeOnsite
	}

	empl := &Employee{
		ID:             uuid.New(),
		EmployeeNumber: strings.ToUpper(strings.TrimSpace(req.EmployeeNumber)),
		FullName:       s.normalizeName(req.FullName),
		WorkMode:       workMode,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		if isDuplicateNumber(err) {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateEmployeeNumber
		}
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, err
	}

	empl.EmployeeNumber = strings.ToUpper(strings.TrimSpace(req.EmployeeNumber))
	empl.FullName = s.normalizeName(req.FullName)
	empl.WorkMode = req.WorkMode

	if err := qtx.Update(ctx, empl); err != nil {
		if isDuplicateNumber(err) {
			return EmployeeResponse{}, employeeerrors.ErrDuplicateEmployeeNumber
		}
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	if err := s.queueLifecycleEvent(ctx, tx, rid, events.EmployeeUpdated, empl); err != nil {
		return EmployeeResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("employee updated",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return err
	}

	// Attendance rows may reference the employee either by uuid or by a
	// legacy badge id, both are swept in the same transaction.
	removed, err := qtx.DeleteAttendanceByEmployee(ctx, empl.ID.String())
	if err != nil {
		s.logger.Error("delete employee attendance cascade failed", zap.Error(err))
		return err
	}
	removedByBadge, err := qtx.DeleteAttendanceByEmployee(ctx, empl.EmployeeNumber)
	if err != nil {
		s.logger.Error("delete employee attendance cascade failed", zap.Error(err))
		return err
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee persist failed", zap.Error(err))
		return err
	}

	if err := s.queueLifecycleEvent(ctx, tx, rid, events.EmployeeDeleted, empl); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("employee deleted",
		zap.String("request_id", rid),
		zap.String("employee_id", id),
		zap.Int64("attendance_rows_removed", removed+removedByBadge),
	)
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, rid, eventType string, empl *Employee) error {
	if s.outbox == nil {
		return nil
	}

	event := events.EmployeeLifecycleEvent{
		EventType:      eventType,
		EmployeeID:     empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		OccurredAt:     time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal lifecycle event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "employee",
		AggregateID:   empl.ID.String(),
		EventType:     eventType,
		Topic:         events.EmployeeLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) normalizeName(name string) string {
	return s.titler.String(strings.Join(strings.Fields(name), " "))
}

func isDuplicateNumber(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		WorkMode:       empl.WorkMode,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	resp := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		resp[i] = mapToResponse(e)
	}
	return resp
}
