package reconcile

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/attendance"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=reconcile_repo.go -destination=mock/reconcile_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListRecords(ctx context.Context) ([]*attendance.Record, error)
	ListRoster(ctx context.Context) ([]RosterEntry, error)
	SaveRecords(ctx context.Context, records []*attendance.Record) error
	DeleteRecordsByOwner(ctx context.Context, ownerIDs []string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.GORMOverTx(tx)}
}

func (r *repository) ListRecords(ctx context.Context) ([]*attendance.Record, error) {
	var records []*attendance.Record
	err := r.db.WithContext(ctx).
		Order("shift_date ASC, check_in ASC").
		Find(&records).Error
	return records, err
}

func (r *repository) ListRoster(ctx context.Context) ([]RosterEntry, error) {
	var roster []RosterEntry
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id", "employee_number", "full_name").
		Find(&roster).Error
	return roster, err
}

func (r *repository) SaveRecords(ctx context.Context, records []*attendance.Record) error {
	for _, rec := range records {
		if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteRecordsByOwner(ctx context.Context, ownerIDs []string) (int64, error) {
	if len(ownerIDs) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).
		Where("employee_id IN ?", ownerIDs).
		Delete(&attendance.Record{})
	return res.RowsAffected, res.Error
}
