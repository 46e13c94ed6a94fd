package planner

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
	"github.com/faisalthe1/AI-Study-Planner/scheduler"
)

// UseCase wires the schedule generator to the persistence layer. Generation
// is destructive for the user's upcoming auto-created sessions and is
// expected to run at most once at a time per user; concurrent runs for the
// same user race on the delete-then-insert sequence.
type UseCase struct {
	planner *scheduler.Planner
	logger  *zap.Logger
}

func New(
	tasks repository.TaskRepository,
	sessions repository.StudySessionRepository,
	profiles repository.ProfileRepository,
	logger *zap.Logger,
) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		planner: scheduler.New(
			taskSource{repo: tasks},
			sessionSink{repo: sessions},
			profiles,
			logger,
		),
		logger: logger,
	}
}

// GenerateSchedule rebuilds the user's study schedule over the next days
// calendar days and returns the created sessions.
func (uc *UseCase) GenerateSchedule(ctx context.Context, userID string, days int) ([]domain.StudySession, error) {
	sessions, err := uc.planner.Generate(ctx, userID, days)
	if err != nil {
		uc.logger.Error("schedule generation failed",
			zap.String("user_id", userID),
			zap.Int("sessions_written", len(sessions)),
			zap.Error(err))
		return sessions, err
	}
	return sessions, nil
}

// taskSource adapts TaskRepository to the scheduler's narrower port.
type taskSource struct {
	repo repository.TaskRepository
}

func (s taskSource) ListSchedulable(ctx context.Context, userID string, now time.Time) ([]domain.Task, error) {
	// Ranking must see every eligible task, so paging is disabled here.
	return s.repo.List(ctx, repository.TaskFilter{
		UserID:   userID,
		Statuses: []string{domain.StatusPending, domain.StatusInProgress},
		DueAfter: now,
		Limit:    -1,
	})
}

func (s taskSource) UpdateEstimatedMinutes(ctx context.Context, id string, minutes int) error {
	return s.repo.UpdateEstimatedMinutes(ctx, id, minutes)
}

// sessionSink adapts StudySessionRepository to the scheduler's write port.
type sessionSink struct {
	repo repository.StudySessionRepository
}

func (s sessionSink) DeleteUpcoming(ctx context.Context, userID string, from time.Time) error {
	return s.repo.DeleteUpcoming(ctx, userID, from)
}

func (s sessionSink) Create(ctx context.Context, session *domain.StudySession) error {
	return s.repo.Create(ctx, session)
}
