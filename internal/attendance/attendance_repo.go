package attendance

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *Record) error
	Update(ctx context.Context, rec *Record) error
	FindByID(ctx context.Context, id string) (*Record, error)
	FindOpenByEmployee(ctx context.Context, employeeID string) (*Record, error)
	FindAll(ctx context.Context) ([]Record, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Record, error)
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

func (r *repository) Create(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) Update(ctx context.Context, rec *Record) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindOpenByEmployee(ctx context.Context, employeeID string) (*Record, error) {
	var rec Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("check_out IS NULL").
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindAll(ctx context.Context) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Order("shift_date DESC, check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Record, error) {
	var rows []Record
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("shift_date DESC, check_in DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&ref).Error
	return &ref, err
}
