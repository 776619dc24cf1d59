package reconcile

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/notification"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"

	"go.uber.org/zap"
)

// Result summarizes what a sweep changed.
type Result struct {
	RecordsRelinked  int
	RecordsRefreshed int
	RecordsSaved     int
}

//go:generate mockgen -source=reconcile_service.go -destination=mock/reconcile_service_mock.go -package=mock
type Service interface {
	Run(ctx context.Context) (Result, error)
	RemoveDepartedOwner(ctx context.Context, employeeID, employeeNumber string) (int64, error)
}

type service struct {
	db            *sql.DB
	repo          Repository
	config        shiftconfig.Service
	notifications notification.Service
	logger        *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	config shiftconfig.Service,
	notifications notification.Service,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("reconcile.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reconcile.service")
	}
	return &service{
		db:            db,
		repo:          repo,
		config:        config,
		notifications: notifications,
		logger:        l,
	}
}

// Run executes a full sweep: relink legacy owner ids to the roster, then
// recompute stale derived hours, all inside one transaction so a partial
// sweep is never visible.
func (s *service) Run(ctx context.Context) (Result, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		s.logger.Error("sweep load shift config failed", zap.Error(err))
		return Result{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("sweep begin tx failed", zap.Error(err))
		return Result{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	records, err := qtx.ListRecords(ctx)
	if err != nil {
		s.logger.Error("sweep load records failed", zap.Error(err))
		return Result{}, err
	}
	roster, err := qtx.ListRoster(ctx)
	if err != nil {
		s.logger.Error("sweep load roster failed", zap.Error(err))
		return Result{}, err
	}

	relinked := RelinkOwners(records, roster)
	refreshed := RefreshDerived(records, cfg)

	changed := dedupe(relinked, refreshed)
	if err := qtx.SaveRecords(ctx, changed); err != nil {
		s.logger.Error("sweep save records failed", zap.Error(err))
		return Result{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("sweep commit failed", zap.Error(err))
		return Result{}, err
	}

	if s.notifications != nil {
		for _, entry := range roster {
			if err := s.notifications.RegenerateAutoForEmployee(ctx, entry.ID); err != nil {
				s.logger.Warn("sweep notification regeneration failed",
					zap.String("employee_id", entry.ID),
					zap.Error(err),
				)
			}
		}
	}

	res := Result{
		RecordsRelinked:  len(relinked),
		RecordsRefreshed: len(refreshed),
		RecordsSaved:     len(changed),
	}
	s.logger.Info("reconciliation sweep finished",
		zap.Int("relinked", res.RecordsRelinked),
		zap.Int("refreshed", res.RecordsRefreshed),
		zap.Int("saved", res.RecordsSaved),
	)
	return res, nil
}

// dedupe merges the two change sets so a record touched by both passes is
// saved once.
func dedupe(groups ...[]*attendance.Record) []*attendance.Record {
	seen := make(map[*attendance.Record]struct{})
	var out []*attendance.Record
	for _, group := range groups {
		for _, rec := range group {
			if _, ok := seen[rec]; ok {
				continue
			}
			seen[rec] = struct{}{}
			out = append(out, rec)
		}
	}
	return out
}

// RemoveDepartedOwner drops every attendance row still owned by a deleted
// employee, whether keyed by uuid or by badge.
func (s *service) RemoveDepartedOwner(ctx context.Context, employeeID, employeeNumber string) (int64, error) {
	owners := []string{employeeID}
	if badge := CanonicalBadge(employeeNumber); badge != "" {
		owners = append(owners, badge)
	}

	removed, err := s.repo.DeleteRecordsByOwner(ctx, owners)
	if err != nil {
		s.logger.Error("remove departed owner failed",
			zap.String("employee_id", employeeID),
			zap.Error(err),
		)
		return 0, err
	}

	s.logger.Info("departed owner records removed",
		zap.String("employee_id", employeeID),
		zap.Int64("removed", removed),
	)
	return removed, nil
}
