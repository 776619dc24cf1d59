package notification

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Notification, error)
	Save(ctx context.Context, n *Notification) error
	DeleteByIDs(ctx context.Context, ids []string) error
	GetEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error)
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

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Notification, error) {
	var rows []Notification
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Save(ctx context.Context, n *Notification) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(n).Error
}

func (r *repository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Delete(&Notification{}).Error
}

func (r *repository) GetEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&ref).Error
	return &ref, err
}
