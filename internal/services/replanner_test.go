package services

import (
	"context"
	"errors"
	"testing"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

type stubProfileRepo struct {
	repository.ProfileRepository

	profiles []domain.Profile
}

func (s *stubProfileRepo) ListAutoReplan(ctx context.Context) ([]domain.Profile, error) {
	return s.profiles, nil
}

type stubGenerator struct {
	calls   []string
	failFor string
}

func (s *stubGenerator) GenerateSchedule(ctx context.Context, userID string, days int) ([]domain.StudySession, error) {
	s.calls = append(s.calls, userID)
	if userID == s.failFor {
		return nil, errors.New("generation failed")
	}
	return nil, nil
}

func TestReplannerRunSweepsOptedInUsers(t *testing.T) {
	profiles := &stubProfileRepo{profiles: []domain.Profile{
		*domain.DefaultProfile("u1"),
		*domain.DefaultProfile("u2"),
		*domain.DefaultProfile("u3"),
	}}
	gen := &stubGenerator{failFor: "u2"}

	r := NewReplanner(profiles, gen, nil, ReplannerConfig{})
	r.Run(context.Background())

	want := []string{"u1", "u2", "u3"}
	if len(gen.calls) != len(want) {
		t.Fatalf("generator called for %v, want %v", gen.calls, want)
	}
	for i, userID := range want {
		if gen.calls[i] != userID {
			t.Errorf("call %d went to %q, want %q", i, gen.calls[i], userID)
		}
	}
}

func TestReplannerRunStopsOnCancelledContext(t *testing.T) {
	profiles := &stubProfileRepo{profiles: []domain.Profile{
		*domain.DefaultProfile("u1"),
	}}
	gen := &stubGenerator{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewReplanner(profiles, gen, nil, ReplannerConfig{})
	r.Run(ctx)

	if len(gen.calls) != 0 {
		t.Errorf("generator called %d times after cancellation, want 0", len(gen.calls))
	}
}

func TestReplannerBadScheduleFallsBack(t *testing.T) {
	r := NewReplanner(&stubProfileRepo{}, &stubGenerator{}, nil, ReplannerConfig{Spec: "not a cron spec"})

	if got := len(r.cron.Entries()); got != 1 {
		t.Fatalf("cron entries = %d, want 1", got)
	}
	if r.cfg.Spec != defaultReplanSpec {
		t.Errorf("spec = %q, want fallback %q", r.cfg.Spec, defaultReplanSpec)
	}
}
