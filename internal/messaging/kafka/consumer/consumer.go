package consumer

import (
	"context"
	"encoding/json"
	"time"

	"iakwe-hr/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// LeaveDecisionHandler must be idempotent: a message is redelivered when its
// commit does not happen.
type LeaveDecisionHandler interface {
	CreateFromLeaveDecision(ctx context.Context, event events.LeaveDecidedEvent) error
}

// Handler failures are retried on the same message so a later commit never
// skips past it.
var (
	retryInitialDelay = time.Second
	retryMaxDelay     = 30 * time.Second
)

func ConsumeLeaveDecisions(
	ctx context.Context,
	reader MessageReader,
	handler LeaveDecisionHandler,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decided")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode leave.decided event failed",
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if !handleWithRetry(ctx, handler, event, log) {
			log.Info("leave decision consumer stopped before message was handled",
				zap.Int64("offset", msg.Offset),
			)
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision notification recorded",
			zap.String("leave_id", event.LeaveID),
			zap.String("status", event.Status),
			zap.String("request_id", event.RequestID),
		)
	}
}

// handleWithRetry keeps calling the handler with doubling delays until it
// succeeds. It returns false when ctx ends first.
func handleWithRetry(ctx context.Context, handler LeaveDecisionHandler, event events.LeaveDecidedEvent, log *zap.Logger) bool {
	delay := retryInitialDelay
	for attempt := 1; ; attempt++ {
		err := handler.CreateFromLeaveDecision(ctx, event)
		if err == nil {
			return true
		}
		log.Error("record leave decision notification failed",
			zap.String("leave_id", event.LeaveID),
			zap.String("company_id", event.CompanyID),
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		delay *= 2
		if delay > retryMaxDelay {
			delay = retryMaxDelay
		}
	}
}
