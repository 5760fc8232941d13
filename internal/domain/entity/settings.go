package entity

import (
	"fmt"
	"time"
)

// ReminderSettings controls whether and how far ahead of a task's start
// time its reminder fires. The value is passed explicitly into every
// scheduler call; nothing holds it as ambient state.
type ReminderSettings struct {
	Enabled          bool
	ReminderMinutes  int
	SoundEnabled     bool
	VibrationEnabled bool
}

// ReminderMinutePresets are the lead times host UIs offer. They are
// advisory: the scheduler accepts any positive ReminderMinutes.
var ReminderMinutePresets = []int{15, 30, 60, 120}

// DefaultSettings returns the settings applied before the host has
// stored its own.
func DefaultSettings() ReminderSettings {
	return ReminderSettings{
		Enabled:          true,
		ReminderMinutes:  30,
		SoundEnabled:     true,
		VibrationEnabled: true,
	}
}

// Validate checks the settings for caller errors.
func (s ReminderSettings) Validate() error {
	if s.ReminderMinutes <= 0 {
		return fmt.Errorf("reminder_minutes must be positive, got %d", s.ReminderMinutes)
	}
	return nil
}

// LeadTime is ReminderMinutes as a duration.
func (s ReminderSettings) LeadTime() time.Duration {
	return time.Duration(s.ReminderMinutes) * time.Minute
}
