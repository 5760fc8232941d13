package redisplatform

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/domain"
	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// notificationDTO is the Redis-specific representation of a pending
// notification. It translates between domain values and JSON stored in
// the payload hash.
type notificationDTO struct {
	ID         string            `json:"id"`
	FiringTime int64             `json:"firing_time"` // unix seconds
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Sound      string            `json:"sound,omitempty"`
	Vibration  []int             `json:"vibration,omitempty"`
	Priority   string            `json:"priority"`
	Data       map[string]string `json:"data,omitempty"`
}

func toDTO(id string, content entity.NotificationContent, firingTime time.Time) notificationDTO {
	return notificationDTO{
		ID:         id,
		FiringTime: firingTime.Unix(),
		Title:      content.Title,
		Body:       content.Body,
		Sound:      content.Sound,
		Vibration:  content.Vibration,
		Priority:   string(content.Priority),
		Data:       content.Data,
	}
}

func toReminder(dto notificationDTO) entity.ScheduledReminder {
	return entity.ScheduledReminder{
		ID:         dto.ID,
		FiringTime: time.Unix(dto.FiringTime, 0),
		Content: entity.NotificationContent{
			Title:     dto.Title,
			Body:      dto.Body,
			Sound:     dto.Sound,
			Vibration: dto.Vibration,
			Priority:  entity.Priority(dto.Priority),
			Data:      dto.Data,
		},
	}
}

// Platform implements secondary.NotificationPlatform on Redis. Pending
// notification ids live in a sorted set scored by firing time; rendered
// payloads live in a hash keyed by id. Permission state and channel
// registrations are plain keys so they survive restarts.
type Platform struct {
	client *redis.Client
	logger *zap.Logger
}

// NewPlatform creates the Redis-backed notification platform.
func NewPlatform(client *redis.Client, logger *zap.Logger) *Platform {
	return &Platform{
		client: client,
		logger: logger.Named("redis-platform"),
	}
}

// Available reports that this runtime has a notification capability.
func (p *Platform) Available() bool {
	return true
}

// Permission returns the stored permission state. A missing key means the
// user has never been asked.
func (p *Platform) Permission(ctx context.Context) (entity.PermissionStatus, error) {
	val, err := p.client.Get(ctx, domain.RedisPermissionKey).Result()
	if err == redis.Nil {
		return entity.PermissionUndetermined, nil
	}
	if err != nil {
		return entity.PermissionUndetermined, fmt.Errorf("reading permission state: %w", err)
	}

	switch entity.PermissionStatus(val) {
	case entity.PermissionGranted, entity.PermissionDenied:
		return entity.PermissionStatus(val), nil
	default:
		return entity.PermissionUndetermined, nil
	}
}

// RequestPermission records a grant unless a decision already exists. The
// actual prompt happens outside this process; an operator simulating a
// denial seeds the key with "denied" beforehand.
func (p *Platform) RequestPermission(ctx context.Context) (entity.PermissionStatus, error) {
	if err := p.client.SetNX(ctx, domain.RedisPermissionKey, string(entity.PermissionGranted), 0).Err(); err != nil {
		return entity.PermissionUndetermined, fmt.Errorf("storing permission state: %w", err)
	}
	return p.Permission(ctx)
}

// RegisterChannel records the channel id and importance. HSetNX keeps the
// call idempotent across app starts.
func (p *Platform) RegisterChannel(ctx context.Context, channelID, importance string) error {
	if err := p.client.HSetNX(ctx, domain.RedisChannelKey, channelID, importance).Err(); err != nil {
		return fmt.Errorf("registering channel %q: %w", channelID, err)
	}
	return nil
}

// Schedule stores the notification under a fresh opaque id: the id goes
// into the sorted set scored by firing time, the payload into the hash.
func (p *Platform) Schedule(ctx context.Context, content entity.NotificationContent, firingTime time.Time) (string, error) {
	id := uuid.NewString()

	data, err := json.Marshal(toDTO(id, content, firingTime))
	if err != nil {
		return "", fmt.Errorf("marshaling notification: %w", err)
	}

	_, err = p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZAdd(ctx, domain.RedisPendingKey, redis.Z{
			Score:  float64(firingTime.Unix()),
			Member: id,
		})
		pipe.HSet(ctx, domain.RedisPayloadKey, id, data)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scheduling notification in redis: %w", err)
	}

	p.logger.Debug("notification scheduled",
		zap.String("notification_id", id),
		zap.Time("firing_time", firingTime),
	)

	return id, nil
}

// Cancel removes one pending notification by id.
func (p *Platform) Cancel(ctx context.Context, id string) error {
	_, err := p.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.ZRem(ctx, domain.RedisPendingKey, id)
		pipe.HDel(ctx, domain.RedisPayloadKey, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cancelling notification %q: %w", id, err)
	}
	return nil
}

// CancelAll drops the whole pending set and payload hash.
func (p *Platform) CancelAll(ctx context.Context) error {
	if err := p.client.Del(ctx, domain.RedisPendingKey, domain.RedisPayloadKey).Err(); err != nil {
		return fmt.Errorf("cancelling all notifications: %w", err)
	}
	return nil
}

// ListScheduled returns every pending notification ordered by firing time.
func (p *Platform) ListScheduled(ctx context.Context) ([]entity.ScheduledReminder, error) {
	ids, err := p.client.ZRangeByScore(ctx, domain.RedisPendingKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: "+inf",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("listing pending notifications: %w", err)
	}

	reminders := make([]entity.ScheduledReminder, 0, len(ids))
	for _, id := range ids {
		raw, err := p.client.HGet(ctx, domain.RedisPayloadKey, id).Result()
		if err == redis.Nil {
			// Cancelled between the range read and the payload read.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("reading payload for %q: %w", id, err)
		}

		var dto notificationDTO
		if err := json.Unmarshal([]byte(raw), &dto); err != nil {
			p.logger.Warn("invalid notification payload in redis",
				zap.String("notification_id", id),
				zap.Error(err),
			)
			continue
		}

		reminders = append(reminders, toReminder(dto))
	}

	return reminders, nil
}

var _ secondary.NotificationPlatform = (*Platform)(nil)
