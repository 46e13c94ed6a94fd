package domain

import (
	"testing"
	"time"
)

func validTask() *Task {
	return &Task{
		ID:               "task-1",
		UserID:           "user-1",
		Title:            "Read chapter 4",
		DueDate:          time.Now().Add(48 * time.Hour),
		Priority:         PriorityMedium,
		EstimatedMinutes: 90,
		Status:           StatusPending,
	}
}

func TestTaskValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Task)
		wantErr bool
	}{
		{"valid", func(tk *Task) {}, false},
		{"missing title", func(tk *Task) { tk.Title = "" }, true},
		{"missing user", func(tk *Task) { tk.UserID = "" }, true},
		{"priority too low", func(tk *Task) { tk.Priority = 0 }, true},
		{"priority too high", func(tk *Task) { tk.Priority = 5 }, true},
		{"estimate below minimum", func(tk *Task) { tk.EstimatedMinutes = 10 }, true},
		{"zero due date", func(tk *Task) { tk.DueDate = time.Time{} }, true},
		{"unknown status", func(tk *Task) { tk.Status = "paused" }, true},
		{"completed status", func(tk *Task) { tk.Status = StatusCompleted }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task := validTask()
			tc.mutate(task)
			err := task.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestTaskIsSchedulable(t *testing.T) {
	task := validTask()
	if !task.IsSchedulable() {
		t.Error("pending task with remaining effort should be schedulable")
	}

	task.Status = StatusInProgress
	if !task.IsSchedulable() {
		t.Error("in-progress task should be schedulable")
	}

	task.Status = StatusCompleted
	if task.IsSchedulable() {
		t.Error("completed task should not be schedulable")
	}

	task.Status = StatusPending
	task.EstimatedMinutes = 0
	if task.IsSchedulable() {
		t.Error("task with no remaining effort should not be schedulable")
	}

	var nilTask *Task
	if nilTask.IsSchedulable() {
		t.Error("nil task should not be schedulable")
	}
}
