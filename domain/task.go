package domain

import "time"

// Task priorities, ordinal. Higher means more important.
const (
	PriorityLow    = 1
	PriorityMedium = 2
	PriorityHigh   = 3
	PriorityUrgent = 4
)

// Task statuses.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

// MinTaskMinutes is the smallest estimated duration a task may carry.
const MinTaskMinutes = 15

// Task represents a user-owned unit of study work with a deadline.
// EstimatedMinutes is the remaining effort; the planner decrements it as
// it allocates study sessions.
type Task struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	CourseID         *string   `json:"course_id,omitempty"`
	Title            string    `json:"title"`
	Description      string    `json:"description,omitempty"`
	DueDate          time.Time `json:"due_date"`
	Priority         int       `json:"priority"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (t *Task) IsCompleted() bool {
	return t != nil && t.Status == StatusCompleted
}

// IsSchedulable reports whether the planner may allocate time to this task.
func (t *Task) IsSchedulable() bool {
	if t == nil {
		return false
	}
	return (t.Status == StatusPending || t.Status == StatusInProgress) && t.EstimatedMinutes > 0
}

func (t *Task) Validate() error {
	if t == nil || t.UserID == "" || t.Title == "" {
		return ErrInvalidPayload
	}
	if t.Priority < PriorityLow || t.Priority > PriorityUrgent {
		return NewError(ErrCodeInvalid, "priority must be between 1 (low) and 4 (urgent)")
	}
	if t.EstimatedMinutes < MinTaskMinutes {
		return NewError(ErrCodeInvalid, "estimated duration must be at least 15 minutes")
	}
	if t.DueDate.IsZero() {
		return NewError(ErrCodeInvalid, "due date is required")
	}
	switch t.Status {
	case StatusPending, StatusInProgress, StatusCompleted:
	default:
		return NewError(ErrCodeInvalid, "unknown task status")
	}
	return nil
}
