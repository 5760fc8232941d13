package remind_test

import (
	"context"
	"fmt"
	"log"
	"time"

	"go.uber.org/zap"

	"github.com/taskpilot/remindd/pkg/remind"
)

// Example_noop demonstrates the no-op platform used on runtimes without a
// notification capability: every operation completes without side effects.
func Example_noop() {
	svc, err := remind.New(&remind.Config{
		Noop:   true,
		Logger: zap.NewNop(),
	})
	if err != nil {
		log.Fatalf("failed to create service: %v", err)
	}
	defer svc.Close()

	ctx := context.Background()

	status := svc.EnsureReady(ctx)
	fmt.Println(status)

	tasks := []remind.Task{{
		ID:            "task-1",
		Title:         "Pay rent",
		Priority:      "high",
		Status:        "pending",
		ScheduledDate: time.Now().AddDate(0, 0, 1).Format("2006-01-02"),
		ScheduledTime: "09:30",
	}}
	settings := remind.Settings{
		Enabled:         true,
		ReminderMinutes: 30,
		SoundEnabled:    true,
	}

	ids, err := svc.Resync(ctx, tasks, settings)
	if err != nil {
		log.Fatalf("resync failed: %v", err)
	}
	fmt.Println(len(ids))

	// Output:
	// unsupported
	// 0
}
