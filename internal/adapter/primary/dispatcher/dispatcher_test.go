package dispatcher

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/internal/domain/entity"
)

// mockQueue implements secondary.NotificationQueue for dispatcher tests.
type mockQueue struct {
	fetchFunc  func(ctx context.Context, limit int) ([]entity.ScheduledReminder, error)
	fetchCalls atomic.Int32
}

func (m *mockQueue) FetchDue(ctx context.Context, limit int) ([]entity.ScheduledReminder, error) {
	m.fetchCalls.Add(1)
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, limit)
	}
	return nil, nil
}

// mockDeliverer implements secondary.NotificationDeliverer for dispatcher tests.
type mockDeliverer struct {
	deliverFunc func(ctx context.Context, reminder entity.ScheduledReminder) error

	mu        sync.Mutex
	delivered []string
}

func (m *mockDeliverer) Deliver(ctx context.Context, reminder entity.ScheduledReminder) error {
	var err error
	if m.deliverFunc != nil {
		err = m.deliverFunc(ctx, reminder)
	}
	if err == nil {
		m.mu.Lock()
		m.delivered = append(m.delivered, reminder.ID)
		m.mu.Unlock()
	}
	return err
}

func (m *mockDeliverer) Close() error {
	return nil
}

func (m *mockDeliverer) deliveredIDs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.delivered...)
}

func TestDispatcher_Run(t *testing.T) {
	tests := []struct {
		name         string
		pollInterval time.Duration
		runDuration  time.Duration
		fetchErr     error
		wantMinCalls int32
	}{
		{
			name:         "polls at the configured interval",
			pollInterval: 50 * time.Millisecond,
			runDuration:  200 * time.Millisecond,
			wantMinCalls: 2,
		},
		{
			name:         "continues on fetch error",
			pollInterval: 50 * time.Millisecond,
			runDuration:  200 * time.Millisecond,
			fetchErr:     errors.New("redis timeout"),
			wantMinCalls: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			queue := &mockQueue{}
			if tt.fetchErr != nil {
				queue.fetchFunc = func(context.Context, int) ([]entity.ScheduledReminder, error) {
					return nil, tt.fetchErr
				}
			}
			deliverer := &mockDeliverer{}

			d := New(queue, deliverer, tt.pollInterval, 10, zap.NewNop())

			ctx, cancel := context.WithTimeout(context.Background(), tt.runDuration)
			defer cancel()

			err := d.Run(ctx)
			if !errors.Is(err, context.DeadlineExceeded) {
				t.Fatalf("expected DeadlineExceeded, got %v", err)
			}

			if calls := queue.fetchCalls.Load(); calls < tt.wantMinCalls {
				t.Fatalf("expected at least %d fetch calls, got %d", tt.wantMinCalls, calls)
			}
		})
	}
}

func TestDispatcher_Run_deliveryFailureIsolation(t *testing.T) {
	reminders := []entity.ScheduledReminder{
		{ID: "notif-1", FiringTime: time.Now()},
		{ID: "notif-2", FiringTime: time.Now()},
		{ID: "notif-3", FiringTime: time.Now()},
	}

	var served atomic.Bool
	queue := &mockQueue{
		fetchFunc: func(context.Context, int) ([]entity.ScheduledReminder, error) {
			// Serve the batch once; later polls find nothing due.
			if served.CompareAndSwap(false, true) {
				return reminders, nil
			}
			return nil, nil
		},
	}
	deliverer := &mockDeliverer{
		deliverFunc: func(_ context.Context, reminder entity.ScheduledReminder) error {
			if reminder.ID == "notif-2" {
				return errors.New("push gateway down")
			}
			return nil
		},
	}

	d := New(queue, deliverer, 20*time.Millisecond, 10, zap.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 150*time.Millisecond)
	defer cancel()
	_ = d.Run(ctx)

	delivered := deliverer.deliveredIDs()
	if len(delivered) != 2 {
		t.Fatalf("expected 2 delivered reminders, got %v", delivered)
	}
	if delivered[0] != "notif-1" || delivered[1] != "notif-3" {
		t.Fatalf("unexpected delivered reminders: %v", delivered)
	}
}

func TestDispatcher_Run_respectsCancellation(t *testing.T) {
	queue := &mockQueue{}
	deliverer := &mockDeliverer{}
	d := New(queue, deliverer, 1*time.Hour, 10, zap.NewNop()) // Very long interval

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx)
	}()

	// Cancel immediately
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("dispatcher did not stop within 2 seconds after cancellation")
	}
}
