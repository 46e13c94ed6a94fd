package repository

import (
	"context"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, profile *domain.Profile) error
	// ListAutoReplan returns the profiles of users who opted into nightly
	// schedule regeneration.
	ListAutoReplan(ctx context.Context) ([]domain.Profile, error)
}
