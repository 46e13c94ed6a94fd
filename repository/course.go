package repository

import (
	"context"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

type CourseRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	// List returns the user's courses ordered by name.
	List(ctx context.Context, userID string) ([]domain.Course, error)
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	Update(ctx context.Context, course *domain.Course) error
	Delete(ctx context.Context, userID, id string) error
}
