package repository

import (
	"context"
	"time"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

type TaskFilter struct {
	UserID   string
	Statuses []string
	DueAfter time.Time
	// Limit < 0 disables paging entirely; 0 falls back to the store default.
	Limit  int
	Offset int
}

type TaskRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	// List returns tasks matching the filter ordered by due date ascending.
	List(ctx context.Context, filter TaskFilter) ([]domain.Task, error)
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, userID, id string) error
	// UpdateEstimatedMinutes overwrites only the remaining-effort field,
	// leaving status and the rest of the task untouched.
	UpdateEstimatedMinutes(ctx context.Context, id string, minutes int) error
}
