package repository

import (
	"context"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

type AuthSessionRepository interface {
	Get(ctx context.Context, id string) (*domain.AuthSession, error)
	Save(ctx context.Context, session *domain.AuthSession) error
	Delete(ctx context.Context, id string) error
	Extend(ctx context.Context, id string, ttlSeconds int) error
}
