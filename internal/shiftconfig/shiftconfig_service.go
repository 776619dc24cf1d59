package shiftconfig

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/events"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka"
	configerrors "github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig/errors"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/contextutil"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftclock"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	configCacheKey = "shift-config"
	configCacheTTL = 5 * time.Minute
)

//go:generate mockgen -source=shiftconfig_service.go -destination=mock/shiftconfig_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (shiftclock.Config, error)
	Update(ctx context.Context, actorID string, req UpdateShiftConfigRequest) (ShiftConfigResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("shiftconfig.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("shiftconfig.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// Get returns the live shift configuration. Reads go through a short redis
// cache; concurrent cache misses collapse into one database fetch.
func (s *service) Get(ctx context.Context) (shiftclock.Config, error) {
	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, configCacheKey).Result(); err == nil {
			var cfg shiftclock.Config
			if err := json.Unmarshal([]byte(val), &cfg); err == nil {
				return cfg, nil
			}
		}
	}

	v, err, _ := s.sf.Do(configCacheKey, func() (interface{}, error) {
		setting, err := s.repo.Get(ctx)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return DefaultConfig(), nil
			}
			return shiftclock.Config{}, err
		}

		cfg := setting.ToConfig()
		if s.rdb != nil {
			if payload, err := json.Marshal(cfg); err == nil {
				_ = s.rdb.Set(ctx, configCacheKey, payload, configCacheTTL).Err()
			}
		}
		return cfg, nil
	})
	if err != nil {
		return shiftclock.Config{}, err
	}
	return v.(shiftclock.Config), nil
}

func (s *service) Update(ctx context.Context, actorID string, req UpdateShiftConfigRequest) (ShiftConfigResponse, error) {
	s.logger.Debug("update shift config requested",
		zap.String("actor_id", actorID),
		zap.String("start", req.Start),
		zap.String("end", req.End),
		zap.String("timezone", req.Timezone),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update shift config begin tx failed", zap.Error(err))
		return ShiftConfigResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, ok := shiftclock.ParseHHMM(req.Start); !ok {
		return ShiftConfigResponse{}, configerrors.ErrInvalidShiftTime
	}
	if _, ok := shiftclock.ParseHHMM(req.End); !ok {
		return ShiftConfigResponse{}, configerrors.ErrInvalidShiftTime
	}
	if req.FridayCutoff != "" {
		if _, ok := shiftclock.ParseHHMM(req.FridayCutoff); !ok {
			return ShiftConfigResponse{}, configerrors.ErrInvalidShiftTime
		}
	}
	if _, err := time.LoadLocation(req.Timezone); err != nil {
		return ShiftConfigResponse{}, configerrors.ErrInvalidTimezone
	}

	setting := &ShiftSetting{
		Name:                           SettingName,
		StartTime:                      req.Start,
		EndTime:                        req.End,
		GracePeriodMinutes:             req.GracePeriodMinutes,
		EarlyCheckoutRelaxationMinutes: req.EarlyCheckoutRelaxationMinutes,
		Timezone:                       req.Timezone,
		FridayExemptSuffixes:           strings.Join(req.FridayExemptSuffixes, ","),
		FridayCutoff:                   req.FridayCutoff,
		UpdatedBy:                      actorID,
	}

	if err := qtx.Upsert(ctx, setting); err != nil {
		s.logger.Error("update shift config persist failed", zap.Error(err))
		return ShiftConfigResponse{}, err
	}

	if s.outbox != nil {
		event := events.ShiftConfigUpdatedEvent{
			EventType:  "shift_config.updated",
			Start:      req.Start,
			End:        req.End,
			Timezone:   req.Timezone,
			UpdatedBy:  actorID,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			return ShiftConfigResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.New().String(),
			RequestID:     contextutil.GetRequestID(ctx),
			AggregateType: "shift_config",
			AggregateID:   SettingName,
			EventType:     event.EventType,
			Topic:         events.ShiftConfigUpdatedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("update shift config enqueue event failed", zap.Error(err))
			return ShiftConfigResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update shift config commit failed", zap.Error(err))
		return ShiftConfigResponse{}, err
	}

	if s.rdb != nil {
		_ = s.rdb.Del(ctx, configCacheKey).Err()
	}

	s.logger.Info("shift config updated",
		zap.String("actor_id", actorID),
		zap.String("start", req.Start),
		zap.String("end", req.End),
	)

	return mapToResponse(setting.ToConfig()), nil
}

func mapToResponse(cfg shiftclock.Config) ShiftConfigResponse {
	return ShiftConfigResponse{
		Start:                          cfg.Start,
		End:                            cfg.End,
		GracePeriodMinutes:             cfg.GracePeriodMinutes,
		EarlyCheckoutRelaxationMinutes: cfg.EarlyCheckoutRelaxationMinutes,
		Timezone:                       cfg.Timezone,
		FridayExemptSuffixes:           cfg.FridayExemptSuffixes,
		FridayCutoff:                   cfg.FridayCutoff,
		Overnight:                      cfg.IsOvernight(),
	}
}
