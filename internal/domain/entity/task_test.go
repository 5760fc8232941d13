package entity

import (
	"testing"
	"time"
)

func TestTask_StartTime(t *testing.T) {
	tests := []struct {
		name          string
		scheduledDate string
		scheduledTime string
		want          time.Time
		wantErr       bool
	}{
		{
			name:          "valid date and time",
			scheduledDate: "2024-03-10",
			scheduledTime: "09:30",
			want:          time.Date(2024, 3, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			name:          "just after midnight",
			scheduledDate: "2024-03-10",
			scheduledTime: "00:10",
			want:          time.Date(2024, 3, 10, 0, 10, 0, 0, time.UTC),
		},
		{
			name:          "empty date",
			scheduledDate: "",
			scheduledTime: "09:30",
			wantErr:       true,
		},
		{
			name:          "empty time",
			scheduledDate: "2024-03-10",
			scheduledTime: "",
			wantErr:       true,
		},
		{
			name:          "non-ISO date",
			scheduledDate: "10/03/2024",
			scheduledTime: "09:30",
			wantErr:       true,
		},
		{
			name:          "12-hour time rejected",
			scheduledDate: "2024-03-10",
			scheduledTime: "9:30 AM",
			wantErr:       true,
		},
		{
			name:          "out of range hour",
			scheduledDate: "2024-03-10",
			scheduledTime: "25:00",
			wantErr:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{
				ID:            "task-1",
				ScheduledDate: tt.scheduledDate,
				ScheduledTime: tt.scheduledTime,
			}

			got, err := task.StartTime(time.UTC)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTask_StartTime_respectsLocation(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	task := Task{ScheduledDate: "2024-03-10", ScheduledTime: "09:30"}

	got, err := task.StartTime(loc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := time.Date(2024, 3, 10, 9, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestTask_IsCompleted(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusInProgress, false},
		{StatusCompleted, true},
	}

	for _, tt := range tests {
		task := Task{Status: tt.status}
		if got := task.IsCompleted(); got != tt.want {
			t.Fatalf("IsCompleted() with status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
