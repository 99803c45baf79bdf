package producer

import (
	"context"
	"time"

	"iakwe-hr/internal/messaging/kafka"

	"go.uber.org/zap"
)

const (
	batchSize = 50

	purgeInterval = time.Hour
	// sentRetention keeps delivered rows around for replay investigations.
	sentRetention = 7 * 24 * time.Hour
)

// ProcessOutboxEvents relays pending outbox rows to Kafka until ctx is done
// and hourly removes rows delivered more than a week ago.
func ProcessOutboxEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
	pollInterval time.Duration,
) {
	if pollInterval <= 0 {
		pollInterval = 3 * time.Second
	}

	log := logger.Named("kafka.producer.worker")
	poll := time.NewTicker(pollInterval)
	defer poll.Stop()
	purge := time.NewTicker(purgeInterval)
	defer purge.Stop()

	log.Info("outbox worker started", zap.Duration("poll_interval", pollInterval))

	for {
		select {
		case <-ctx.Done():
			log.Info("outbox worker stopped")
			return
		case <-poll.C:
			if err := processPendingEvents(ctx, repo, writer, log); err != nil {
				log.Error("process outbox events failed", zap.Error(err))
			}
		case now := <-purge.C:
			purgeSentEvents(ctx, repo, log, now)
		}
	}
}

func processPendingEvents(
	ctx context.Context,
	repo kafka.OutboxRepository,
	writer MessageWriter,
	logger *zap.Logger,
) error {
	pending, err := repo.ListPending(ctx, batchSize)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		return nil
	}

	logger.Debug("processing pending outbox events", zap.Int("count", len(pending)))

	var sent, failed int
	for _, event := range pending {
		fields := []zap.Field{
			zap.String("outbox_id", event.ID),
			zap.String("event_type", event.EventType),
			zap.String("aggregate_id", event.AggregateID),
			zap.String("request_id", event.RequestID),
		}

		if err := publishEvent(ctx, writer, event); err != nil {
			failed++
			level := logger.Warn
			if event.RetryCount+1 >= kafka.MaxPublishAttempts {
				level = logger.Error
				fields = append(fields, zap.Bool("dead_letter", true))
			}
			level("publish outbox event failed", append(fields, zap.Int("attempt", event.RetryCount+1), zap.Error(err))...)

			if markErr := repo.MarkFailed(ctx, event.ID, err.Error()); markErr != nil {
				logger.Error("record outbox failure failed", zap.String("outbox_id", event.ID), zap.Error(markErr))
			}
			continue
		}

		// A failed MarkSent means the row is sent again; consumers dedupe.
		if err := repo.MarkSent(ctx, event.ID); err != nil {
			logger.Error("mark outbox sent failed", zap.String("outbox_id", event.ID), zap.Error(err))
			continue
		}
		sent++
		logger.Debug("outbox event sent", fields...)
	}

	logger.Info("outbox batch relayed", zap.Int("sent", sent), zap.Int("failed", failed))
	return nil
}

func purgeSentEvents(ctx context.Context, repo kafka.OutboxRepository, logger *zap.Logger, now time.Time) {
	n, err := repo.PurgeSent(ctx, now.Add(-sentRetention))
	if err != nil {
		logger.Error("purge sent outbox events failed", zap.Error(err))
		return
	}
	if n > 0 {
		logger.Info("purged sent outbox events", zap.Int64("count", n))
	}
}
