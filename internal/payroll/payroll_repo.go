package payroll

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	GetSalary(ctx context.Context, employeeID string) (*EmployeeSalary, error)
	UpsertSalary(ctx context.Context, s *EmployeeSalary) error
	GetEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error)
	FindRecordsByEmployee(ctx context.Context, employeeID string) ([]AttendanceRow, error)
	FindLeavesByEmployee(ctx context.Context, employeeID string) ([]LeaveRow, error)
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

func (r *repository) GetSalary(ctx context.Context, employeeID string) (*EmployeeSalary, error) {
	var s EmployeeSalary
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		First(&s).Error
	return &s, err
}

func (r *repository) UpsertSalary(ctx context.Context, s *EmployeeSalary) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}},
			UpdateAll: true,
		}).
		Create(s).Error
}

func (r *repository) GetEmployeeRef(ctx context.Context, employeeID string) (*EmployeeRef, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Where("id = ?", employeeID).
		First(&ref).Error
	return &ref, err
}

func (r *repository) FindRecordsByEmployee(ctx context.Context, employeeID string) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("check_in").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindLeavesByEmployee(ctx context.Context, employeeID string) ([]LeaveRow, error) {
	var rows []LeaveRow
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("start_date").
		Find(&rows).Error
	return rows, err
}
