package http

import "github.com/taskpilot/remindd/internal/domain/entity"

// TaskDTO is the wire shape of one host task.
type TaskDTO struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Priority      string `json:"priority"`
	Status        string `json:"status"`
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}

// SettingsDTO is the wire shape of the reminder settings.
type SettingsDTO struct {
	Enabled          bool `json:"enabled"`
	ReminderMinutes  int  `json:"reminder_minutes"`
	SoundEnabled     bool `json:"sound_enabled"`
	VibrationEnabled bool `json:"vibration_enabled"`
}

// ResyncResponse is returned after a successful resync.
type ResyncResponse struct {
	Message   string `json:"message"`
	Tasks     int    `json:"tasks"`
	Scheduled int    `json:"scheduled"`
}

// ReminderDTO is the wire shape of one pending reminder.
type ReminderDTO struct {
	ID         string            `json:"id"`
	FiringTime int64             `json:"firing_time"`
	Title      string            `json:"title"`
	Body       string            `json:"body"`
	Priority   string            `json:"priority"`
	Data       map[string]string `json:"data,omitempty"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// toEntity converts a TaskDTO to a domain task.
func (t *TaskDTO) toEntity() entity.Task {
	return entity.Task{
		ID:            t.ID,
		Title:         t.Title,
		Priority:      entity.Priority(t.Priority),
		Status:        entity.Status(t.Status),
		ScheduledDate: t.ScheduledDate,
		ScheduledTime: t.ScheduledTime,
	}
}

// toEntity converts a SettingsDTO to domain settings.
func (s *SettingsDTO) toEntity() entity.ReminderSettings {
	return entity.ReminderSettings{
		Enabled:          s.Enabled,
		ReminderMinutes:  s.ReminderMinutes,
		SoundEnabled:     s.SoundEnabled,
		VibrationEnabled: s.VibrationEnabled,
	}
}

func toReminderDTO(r entity.ScheduledReminder) ReminderDTO {
	return ReminderDTO{
		ID:         r.ID,
		FiringTime: r.FiringTime.Unix(),
		Title:      r.Content.Title,
		Body:       r.Content.Body,
		Priority:   string(r.Content.Priority),
		Data:       r.Content.Data,
	}
}
