package notification

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/apperror"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, n Notification, forceUnread bool) error
	GetAllByEmployee(ctx context.Context, employeeID string) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, employeeID, id string) error
	RegenerateAutoForEmployee(ctx context.Context, employeeID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, n Notification, forceUnread bool) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	list, err := qtx.FindAllByEmployee(ctx, n.EmployeeID)
	if err != nil {
		return err
	}

	merged := Upsert(list, n, forceUnread)
	for _, m := range merged {
		if m.ID != n.ID {
			continue
		}
		if err := qtx.Save(ctx, &m); err != nil {
			s.logger.Error("upsert notification persist failed",
				zap.String("notification_id", n.ID),
				zap.Error(err),
			)
			return err
		}
	}

	return tx.Commit()
}

func (s *service) GetAllByEmployee(ctx context.Context, employeeID string) ([]NotificationResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	res := make([]NotificationResponse, len(rows))
	for i, n := range rows {
		res[i] = mapToResponse(n)
	}
	return res, nil
}

func (s *service) MarkRead(ctx context.Context, employeeID, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	list, err := qtx.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}

	marked, found := MarkRead(list, id)
	if !found {
		return apperror.ErrNotFound
	}
	for _, n := range marked {
		if n.ID != id {
			continue
		}
		if err := qtx.Save(ctx, &n); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// RegenerateAutoForEmployee rebuilds the auto-generated notices from the
// current roster state and replaces the prior auto set, leaving manual
// notices untouched.
func (s *service) RegenerateAutoForEmployee(ctx context.Context, employeeID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ref, err := qtx.GetEmployeeRef(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Departed employee: the reconcile sweep cleans up records,
			// nothing to regenerate here.
			return tx.Commit()
		}
		return err
	}

	list, err := qtx.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return err
	}

	fresh := autoNotices(*ref)
	merged := RegenerateAuto(list, fresh)

	keep := make(map[string]bool, len(merged))
	for _, n := range merged {
		keep[n.ID] = true
	}

	var stale []string
	for _, n := range list {
		if n.AutoGenerated && !keep[n.ID] {
			stale = append(stale, n.ID)
		}
	}
	if err := qtx.DeleteByIDs(ctx, stale); err != nil {
		return err
	}

	for i := range merged {
		if !merged[i].AutoGenerated {
			continue
		}
		if err := qtx.Save(ctx, &merged[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.logger.Debug("auto notifications regenerated",
		zap.String("employee_id", employeeID),
		zap.Int("auto_count", len(fresh)),
		zap.Int("removed", len(stale)),
	)
	return nil
}

// autoNotices derives the profile-completeness notices for an employee.
func autoNotices(ref EmployeeRef) []Notification {
	now := time.Now().UTC()
	var out []Notification

	if ref.EmployeeNumber == "" {
		out = append(out, Notification{
			ID:            fmt.Sprintf("profile-incomplete:badge:%s", ref.ID),
			EmployeeID:    ref.ID,
			Title:         "Profile incomplete",
			Message:       "Your badge number is missing. Contact HR to have it assigned.",
			CreatedAt:     now,
			AutoGenerated: true,
		})
	}
	if ref.WorkMode == "" {
		out = append(out, Notification{
			ID:            fmt.Sprintf("profile-incomplete:workmode:%s", ref.ID),
			EmployeeID:    ref.ID,
			Title:         "Profile incomplete",
			Message:       "Your work mode is not set. Attendance status cannot be classified correctly.",
			CreatedAt:     now,
			AutoGenerated: true,
		})
	}

	return out
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:            n.ID,
		EmployeeID:    n.EmployeeID,
		Title:         n.Title,
		Message:       n.Message,
		CreatedAt:     n.CreatedAt.Format(time.RFC3339),
		Read:          n.Read,
		AutoGenerated: n.AutoGenerated,
	}
}
