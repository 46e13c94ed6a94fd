package repository

import (
	"context"
	"time"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

type SessionFilter struct {
	UserID string
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

type StudySessionRepository interface {
	GetByID(ctx context.Context, id string) (*domain.StudySession, error)
	// List returns sessions matching the filter ordered by start time ascending.
	List(ctx context.Context, filter SessionFilter) ([]domain.StudySession, error)
	Create(ctx context.Context, session *domain.StudySession) error
	Update(ctx context.Context, session *domain.StudySession) error
	Delete(ctx context.Context, userID, id string) error
	// DeleteUpcoming removes the user's not-completed sessions starting at or
	// after the given instant. The planner calls this before regenerating.
	DeleteUpcoming(ctx context.Context, userID string, from time.Time) error
}
