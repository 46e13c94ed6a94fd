package planner

import (
	"context"
	"testing"
	"time"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

type stubTaskRepo struct {
	repository.TaskRepository

	lastFilter repository.TaskFilter
	updates    map[string]int
}

func (s *stubTaskRepo) List(ctx context.Context, filter repository.TaskFilter) ([]domain.Task, error) {
	s.lastFilter = filter
	return nil, nil
}

func (s *stubTaskRepo) UpdateEstimatedMinutes(ctx context.Context, id string, minutes int) error {
	if s.updates == nil {
		s.updates = make(map[string]int)
	}
	s.updates[id] = minutes
	return nil
}

type stubSessionRepo struct {
	repository.StudySessionRepository

	deleted int
}

func (s *stubSessionRepo) DeleteUpcoming(ctx context.Context, userID string, from time.Time) error {
	s.deleted++
	return nil
}

func (s *stubSessionRepo) Create(ctx context.Context, session *domain.StudySession) error {
	return nil
}

type stubProfileRepo struct {
	repository.ProfileRepository

	profile *domain.Profile
}

func (s *stubProfileRepo) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	return s.profile, nil
}

func TestGenerateScheduleQueriesSchedulableTasks(t *testing.T) {
	tasks := &stubTaskRepo{}
	sessions := &stubSessionRepo{}
	profiles := &stubProfileRepo{profile: domain.DefaultProfile("u1")}

	uc := New(tasks, sessions, profiles, nil)
	if _, err := uc.GenerateSchedule(context.Background(), "u1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sessions.deleted != 1 {
		t.Errorf("DeleteUpcoming called %d times, want 1", sessions.deleted)
	}

	f := tasks.lastFilter
	if f.UserID != "u1" {
		t.Errorf("filter user %q, want u1", f.UserID)
	}
	if len(f.Statuses) != 2 || f.Statuses[0] != domain.StatusPending || f.Statuses[1] != domain.StatusInProgress {
		t.Errorf("filter statuses %v, want pending and in_progress", f.Statuses)
	}
	if f.DueAfter.IsZero() {
		t.Error("filter must exclude overdue tasks")
	}
	if f.Limit >= 0 {
		t.Errorf("filter limit %d, want unpaged (negative)", f.Limit)
	}
}

func TestGenerateSchedulePropagatesMissingProfile(t *testing.T) {
	uc := New(&stubTaskRepo{}, &stubSessionRepo{}, &stubProfileRepo{}, nil)

	_, err := uc.GenerateSchedule(context.Background(), "ghost", 7)
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}
