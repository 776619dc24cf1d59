package shiftconfig

import (
	"context"
	"database/sql"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=shiftconfig_repo.go -destination=mock/shiftconfig_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Get(ctx context.Context) (*ShiftSetting, error)
	Upsert(ctx context.Context, s *ShiftSetting) error
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

func (r *repository) Get(ctx context.Context) (*ShiftSetting, error) {
	var s ShiftSetting
	err := r.db.WithContext(ctx).
		Where("name = ?", SettingName).
		First(&s).Error
	return &s, err
}

func (r *repository) Upsert(ctx context.Context, s *ShiftSetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			UpdateAll: true,
		}).
		Create(s).Error
}
