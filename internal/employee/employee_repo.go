package employee

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	Update(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error)
	Delete(ctx context.Context, id string) error
	DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("employee_number ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&empl).Error
	return &empl, err
}

func (r *repository) FindByEmployeeNumber(ctx context.Context, number string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Where("employee_number = ?", number).
		First(&empl).Error
	return &empl, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Employee{}).Error
}

// DeleteAttendanceByEmployee removes the attendance rows that reference the
// employee either by uuid or by a legacy badge-shaped id.
func (r *repository) DeleteAttendanceByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Delete(&AttendanceRef{})
	return res.RowsAffected, res.Error
}
