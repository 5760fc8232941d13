package redisplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/domain"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// Queue implements secondary.NotificationQueue on the same sorted set the
// platform schedules into. The dispatcher drains it; the scheduler never
// reads it back.
type Queue struct {
	client *redis.Client
	logger *zap.Logger
}

// NewQueue creates the dispatcher-side view of the pending set.
func NewQueue(client *redis.Client, logger *zap.Logger) secondary.NotificationQueue {
	return &Queue{
		client: client,
		logger: logger.Named("redis-queue"),
	}
}

// FetchDue retrieves notifications whose firing time has passed, removes
// each from the pending set before returning it, and skips malformed
// entries rather than failing the batch.
func (q *Queue) FetchDue(ctx context.Context, limit int) ([]entity.ScheduledReminder, error) {
	now := fmt.Sprintf("%d", time.Now().Unix())

	ids, err := q.client.ZRangeByScore(ctx, domain.RedisPendingKey, &redis.ZRangeBy{
		Min:    "-inf",
		Max:    now,
		Offset: 0,
		Count:  int64(limit),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("fetching due notifications from redis: %w", err)
	}

	reminders := make([]entity.ScheduledReminder, 0, len(ids))
	for _, id := range ids {
		// Remove before delivering so a concurrent poll cannot double-fire.
		removed, err := q.client.ZRem(ctx, domain.RedisPendingKey, id).Result()
		if err != nil {
			q.logger.Error("failed to remove notification from pending set",
				zap.Error(err),
				zap.String("notification_id", id),
			)
			continue
		}
		if removed == 0 {
			// Another poller or a cancel got there first.
			continue
		}

		raw, err := q.client.HGet(ctx, domain.RedisPayloadKey, id).Result()
		q.client.HDel(ctx, domain.RedisPayloadKey, id)
		if err != nil {
			q.logger.Warn("missing payload for due notification",
				zap.String("notification_id", id),
				zap.Error(err),
			)
			continue
		}

		var dto notificationDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			q.logger.Warn("invalid notification payload in redis",
				zap.String("notification_id", id),
				zap.Error(err),
			)
			continue
		}

		reminders = append(reminders, toReminder(dto))
	}

	return reminders, nil
}
