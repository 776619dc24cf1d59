package shiftconfig_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"
	configerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig/errors"
	configMock "github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   shiftconfig.Service
	repo      *configMock.MockRepository
	redisMock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	rdb, redisMock := redismock.NewClientMock()
	repo := configMock.NewMockRepository(ctrl)

	svc := shiftconfig.NewService(db, repo, rdb)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		redisMock: redisMock,
	}
}

func storedSetting() *shiftconfig.ShiftSetting {
	return &shiftconfig.ShiftSetting{
		Name:                           shiftconfig.SettingName,
		StartTime:                      "20:00",
		EndTime:                        "05:00",
		GracePeriodMinutes:             30,
		EarlyCheckoutRelaxationMinutes: 30,
		Timezone:                       "Asia/Karachi",
		FridayExemptSuffixes:           "031,007",
		FridayCutoff:                   "22:00",
	}
}

func TestShiftConfigService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("cache miss falls through to the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet("shift-config").RedisNil()
		setting := storedSetting()
		deps.repo.EXPECT().Get(ctx).Return(setting, nil)

		payload, _ := json.Marshal(setting.ToConfig())
		deps.redisMock.ExpectSet("shift-config", payload, 5*time.Minute).SetVal("OK")

		cfg, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "20:00", cfg.Start)
		assert.True(t, cfg.IsOvernight())
		assert.Equal(t, []string{"031", "007"}, cfg.FridayExemptSuffixes)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache hit skips the repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		cached := shiftclock.Config{Start: "09:00", End: "17:00", Timezone: "UTC"}
		payload, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet("shift-config").SetVal(string(payload))

		cfg, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, cfg)
	})

	t.Run("no saved row falls back to the default window", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redisMock.ExpectGet("shift-config").RedisNil()
		deps.repo.EXPECT().Get(ctx).Return(nil, gorm.ErrRecordNotFound)

		cfg, err := deps.service.Get(ctx)

		assert.NoError(t, err)
		assert.Equal(t, shiftconfig.DefaultConfig(), cfg)
	})
}

func TestShiftConfigService_Update(t *testing.T) {
	ctx := context.Background()

	validReq := shiftconfig.UpdateShiftConfigRequest{
		Start:                          "20:00",
		End:                            "05:00",
		GracePeriodMinutes:             30,
		EarlyCheckoutRelaxationMinutes: 30,
		Timezone:                       "Asia/Karachi",
		FridayExemptSuffixes:           []string{"031"},
		FridayCutoff:                   "22:00",
	}

	t.Run("persists and invalidates cache", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Upsert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s *shiftconfig.ShiftSetting) error {
				assert.Equal(t, "20:00", s.StartTime)
				assert.Equal(t, "031", s.FridayExemptSuffixes)
				assert.Equal(t, "admin-1", s.UpdatedBy)
				return nil
			})
		deps.redisMock.ExpectDel("shift-config").SetVal(1)

		resp, err := deps.service.Update(ctx, "admin-1", validReq)

		assert.NoError(t, err)
		assert.True(t, resp.Overnight)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		req := validReq
		req.Start = "25:00"

		_, err := deps.service.Update(ctx, "admin-1", req)

		assert.ErrorIs(t, err, configerrors.ErrInvalidShiftTime)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)

		req := validReq
		req.Timezone = "Mars/Olympus"

		_, err := deps.service.Update(ctx, "admin-1", req)

		assert.ErrorIs(t, err, configerrors.ErrInvalidTimezone)
	})
}
