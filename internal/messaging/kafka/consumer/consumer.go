package consumer

import (
	"context"
	"encoding/json"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/events"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/reconcile"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeShiftConfigUpdated re-runs the reconciliation sweep whenever the
// shift window changes, since every cached derived hour may now be stale.
func ConsumeShiftConfigUpdated(
	ctx context.Context,
	reader *kafkago.Reader,
	reconcileService reconcile.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.shift_config_updated")
	log.Info("shift config consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("shift config consumer stopped")
				return
			}
			log.Error("fetch shift config message failed", zap.Error(err))
			continue
		}

		var event events.ShiftConfigUpdatedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode shift config event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		res, err := reconcileService.Run(ctx)
		if err != nil {
			log.Error("sweep after shift config update failed", zap.Error(err))
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit shift config message failed", zap.Error(err))
			continue
		}

		log.Info("sweep after shift config update finished",
			zap.String("start", event.Start),
			zap.String("end", event.End),
			zap.Int("records_saved", res.RecordsSaved),
		)
	}
}

// ConsumeEmployeeLifecycle keeps attendance ownership aligned with the
// roster: an update relinks legacy rows, a delete removes the departed
// employee's rows entirely.
func ConsumeEmployeeLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	reconcileService reconcile.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.employee_lifecycle")
	log.Info("employee lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("employee lifecycle consumer stopped")
				return
			}
			log.Error("fetch employee lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.EmployeeLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode employee lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		switch event.EventType {
		case events.EmployeeDeleted:
			removed, err := reconcileService.RemoveDepartedOwner(ctx, event.EmployeeID, event.EmployeeNumber)
			if err != nil {
				log.Error("remove departed employee records failed",
					zap.String("employee_id", event.EmployeeID),
					zap.Error(err),
				)
				continue
			}
			log.Info("departed employee records removed",
				zap.String("employee_id", event.EmployeeID),
				zap.Int64("removed", removed),
			)
		case events.EmployeeUpdated:
			if _, err := reconcileService.Run(ctx); err != nil {
				log.Error("sweep after employee update failed",
					zap.String("employee_id", event.EmployeeID),
					zap.Error(err),
				)
				continue
			}
		default:
			log.Warn("unknown employee lifecycle event type, skipping",
				zap.String("event_type", event.EventType),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit employee lifecycle message failed", zap.Error(err))
		}
	}
}
