package domain

import "time"

const (
	// ReminderTitle is the fixed notification title. Priority markers are
	// prefixed to it, never substituted for it.
	ReminderTitle = "Task Reminder"

	// ChannelID groups all task reminders on platforms that require
	// notification channels.
	ChannelID = "task-reminders"

	// ChannelImportanceHigh is the importance level registered for the
	// reminder channel.
	ChannelImportanceHigh = "high"

	// DefaultSound is the platform default notification sound.
	DefaultSound = "default"

	// RedisPendingKey is the sorted set of pending notification ids,
	// scored by firing time.
	RedisPendingKey = "remind:pending"

	// RedisPayloadKey is the hash of notification id to rendered payload.
	RedisPayloadKey = "remind:payload"

	// RedisPermissionKey holds the stored notification permission state.
	RedisPermissionKey = "remind:permission"

	// RedisChannelKey is the hash of registered notification channels.
	RedisChannelKey = "remind:channels"

	// DefaultPollInterval is the interval between dispatcher poll cycles.
	DefaultPollInterval = 1 * time.Second

	// DefaultBatchSize is the maximum number of due reminders fetched per
	// poll cycle.
	DefaultBatchSize = 10
)

// StandardVibration is the vibration pattern applied when vibration is
// enabled: delay, vibrate, pause, vibrate (milliseconds).
var StandardVibration = []int{0, 250, 250, 250}
