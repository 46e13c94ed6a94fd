package studysession

import (
	"context"

	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

// UseCase covers manual study session CRUD. Generated sessions are written
// by the planner; both kinds share the same repository.
type UseCase struct {
	sessions repository.StudySessionRepository
	logger   *zap.Logger
}

func New(sessions repository.StudySessionRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		sessions: sessions,
		logger:   logger,
	}
}

func (uc *UseCase) ListSessions(ctx context.Context, filter repository.SessionFilter) ([]domain.StudySession, error) {
	return uc.sessions.List(ctx, filter)
}

func (uc *UseCase) CreateSession(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := uc.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *UseCase) UpdateSession(ctx context.Context, session *domain.StudySession) (*domain.StudySession, error) {
	if err := session.Validate(); err != nil {
		return nil, err
	}
	if err := uc.sessions.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (uc *UseCase) DeleteSession(ctx context.Context, userID, id string) error {
	return uc.sessions.Delete(ctx, userID, id)
}
