// Package memstore holds the in-memory snapshot of the host application's
// tasks and reminder settings. The host replaces the task list wholesale
// whenever its task set changes; the scheduler only ever reads copies.
package memstore

import (
	"sync"

	"github.com/taskpilot/remindd/internal/domain/entity"
	"github.com/taskpilot/remindd/internal/port/secondary"
)

// Store implements secondary.SnapshotStore.
type Store struct {
	mu       sync.RWMutex
	tasks    []entity.Task
	settings entity.ReminderSettings
}

// New creates an empty store with default reminder settings.
func New() *Store {
	return &Store{
		settings: entity.DefaultSettings(),
	}
}

// Tasks returns a copy of the current task snapshot.
func (s *Store) Tasks() []entity.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]entity.Task, len(s.tasks))
	copy(tasks, s.tasks)
	return tasks
}

// ReplaceTasks swaps the task snapshot wholesale.
func (s *Store) ReplaceTasks(tasks []entity.Task) {
	snapshot := make([]entity.Task, len(tasks))
	copy(snapshot, tasks)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = snapshot
}

// Settings returns the current reminder settings.
func (s *Store) Settings() entity.ReminderSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

// UpdateSettings stores new reminder settings.
func (s *Store) UpdateSettings(settings entity.ReminderSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

var _ secondary.SnapshotStore = (*Store)(nil)
