package leave

import (
	"context"
	"database/sql"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	Update(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	FindAll(ctx context.Context) ([]Leave, error)
	CountPaidLeavesStartingInMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (int64, error)
	HasOverlappingLeave(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&l).Error
	return &l, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAll(ctx context.Context) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) CountPaidLeavesStartingInMonth(ctx context.Context, employeeID string, monthStart, monthEnd time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("is_paid = ?", true).
		Where("status <> ?", StatusCancelled).
		Where("start_date BETWEEN ? AND ?", monthStart.Format("2006-01-02"), monthEnd.Format("2006-01-02")).
		Count(&count).Error
	return count, err
}

func (r *repository) HasOverlappingLeave(ctx context.Context, employeeID string, start, end time.Time, excludeID *string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status <> ?", StatusCancelled).
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02"))
	if excludeID != nil {
		q = q.Where("id <> ?", *excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) GetEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&ref).Error
	return &ref, err
}
