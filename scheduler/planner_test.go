package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

// Monday 2026-01-05 08:00 UTC, one hour before the default window opens.
var testNow = time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)

type fakeProfiles struct {
	profile *domain.Profile
	err     error
}

func (f *fakeProfiles) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.profile, nil
}

type fakeTasks struct {
	tasks   []domain.Task
	updates map[string][]int
}

func (f *fakeTasks) ListSchedulable(ctx context.Context, userID string, now time.Time) ([]domain.Task, error) {
	out := make([]domain.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

func (f *fakeTasks) UpdateEstimatedMinutes(ctx context.Context, id string, minutes int) error {
	if f.updates == nil {
		f.updates = make(map[string][]int)
	}
	f.updates[id] = append(f.updates[id], minutes)
	return nil
}

type fakeSessions struct {
	created []domain.StudySession
	deletes []time.Time
	ops     []string
}

func (f *fakeSessions) DeleteUpcoming(ctx context.Context, userID string, from time.Time) error {
	f.deletes = append(f.deletes, from)
	f.ops = append(f.ops, "delete")
	return nil
}

func (f *fakeSessions) Create(ctx context.Context, session *domain.StudySession) error {
	f.created = append(f.created, *session)
	f.ops = append(f.ops, "create")
	return nil
}

func newTask(id string, priority int, dueIn time.Duration, minutes int) domain.Task {
	return domain.Task{
		ID:               id,
		UserID:           "u1",
		Title:            "Read chapter " + id,
		DueDate:          testNow.Add(dueIn),
		Priority:         priority,
		EstimatedMinutes: minutes,
		Status:           domain.StatusPending,
	}
}

func newTestPlanner(tasks *fakeTasks, sessions *fakeSessions, profiles *fakeProfiles) *Planner {
	return New(tasks, sessions, profiles, nil).WithClock(func() time.Time { return testNow })
}

func TestGenerateMissingProfile(t *testing.T) {
	sessions := &fakeSessions{}
	planner := newTestPlanner(&fakeTasks{}, sessions, &fakeProfiles{err: domain.ErrProfileNotFound})

	_, err := planner.Generate(context.Background(), "u1", 7)
	if !domain.IsDomainError(err, domain.ErrCodeNotFound) {
		t.Fatalf("expected profile-not-found error, got %v", err)
	}
	if len(sessions.deletes) != 0 {
		t.Error("no cleanup should happen when the profile is missing")
	}
}

func TestGenerateNoTasks(t *testing.T) {
	sessions := &fakeSessions{}
	planner := newTestPlanner(&fakeTasks{}, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 0 {
		t.Fatalf("expected empty schedule, got %d sessions", len(created))
	}
	if len(sessions.deletes) != 1 {
		t.Fatal("cleanup must still run before the task query")
	}
}

func TestGenerateCleanupRunsFirst(t *testing.T) {
	sessions := &fakeSessions{}
	tasks := &fakeTasks{tasks: []domain.Task{newTask("a", domain.PriorityMedium, 24*time.Hour, 50)}}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	if _, err := planner.Generate(context.Background(), "u1", 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sessions.ops) == 0 || sessions.ops[0] != "delete" {
		t.Fatalf("expected cleanup before any create, got ops %v", sessions.ops)
	}
	if !sessions.deletes[0].Equal(testNow) {
		t.Errorf("cleanup cutoff %v, want now %v", sessions.deletes[0], testNow)
	}
}

func TestGenerateUrgentTaskScheduledFirst(t *testing.T) {
	// A low-priority task due in 5 days is listed first (due-date order in the
	// repository would differ, but ranking is what decides placement).
	low := newTask("low", domain.PriorityLow, 2*time.Hour, 50)
	low.DueDate = testNow.Add(5 * 24 * time.Hour)
	urgent := newTask("urgent", domain.PriorityUrgent, 2*time.Hour, 50)

	tasks := &fakeTasks{tasks: []domain.Task{low, urgent}}
	sessions := &fakeSessions{}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 sessions, got %d", len(created))
	}
	if created[0].TaskID == nil || *created[0].TaskID != "urgent" {
		t.Errorf("earliest slot went to %v, want the urgent task", created[0].TaskID)
	}
	wantStart := time.Date(2026, time.January, 5, 9, 0, 0, 0, time.UTC)
	if !created[0].StartTime.Equal(wantStart) {
		t.Errorf("urgent session starts %v, want %v", created[0].StartTime, wantStart)
	}
	if created[1].TaskID == nil || *created[1].TaskID != "low" {
		t.Errorf("second slot went to %v, want the low task", created[1].TaskID)
	}
}

func TestGenerateTaskSpansThreeSlots(t *testing.T) {
	tasks := &fakeTasks{tasks: []domain.Task{newTask("a", domain.PriorityHigh, 48*time.Hour, 150)}}
	sessions := &fakeSessions{}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("150 min task with 50 min slots: expected 3 sessions, got %d", len(created))
	}

	day := time.Date(2026, time.January, 5, 0, 0, 0, 0, time.UTC)
	wantStarts := []time.Time{
		day.Add(9 * time.Hour),
		day.Add(10*time.Hour + 5*time.Minute),
		day.Add(11*time.Hour + 10*time.Minute),
	}
	for i, s := range created {
		if !s.StartTime.Equal(wantStarts[i]) {
			t.Errorf("session %d starts %v, want %v", i, s.StartTime, wantStarts[i])
		}
		if got := s.Duration(); got != 50*time.Minute {
			t.Errorf("session %d duration %v, want 50m", i, got)
		}
	}

	if got := tasks.updates["a"]; len(got) != 3 || got[2] != 0 {
		t.Errorf("remaining-effort updates = %v, want [100 50 0]", got)
	}
}

func TestGenerateSkipsWeekends(t *testing.T) {
	// Enough work to spill over every weekday of the horizon.
	tasks := &fakeTasks{tasks: []domain.Task{newTask("a", domain.PriorityHigh, 14*24*time.Hour, 5000)}}
	sessions := &fakeSessions{}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) == 0 {
		t.Fatal("expected sessions")
	}
	days := map[time.Weekday]bool{}
	for _, s := range created {
		days[s.StartTime.Weekday()] = true
		if wd := s.StartTime.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("session scheduled on %v at %v", wd, s.StartTime)
		}
	}
	if len(days) != 5 {
		t.Errorf("expected sessions across 5 weekdays, got %d", len(days))
	}
}

func TestGenerateSessionsWithinWindowAndNonOverlapping(t *testing.T) {
	tasks := &fakeTasks{tasks: []domain.Task{
		newTask("a", domain.PriorityHigh, 24*time.Hour, 120),
		newTask("b", domain.PriorityMedium, 72*time.Hour, 120),
	}}
	sessions := &fakeSessions{}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byDay := map[string][]domain.StudySession{}
	for _, s := range created {
		if !s.EndTime.After(s.StartTime) {
			t.Errorf("session %s has non-positive duration", s.ID)
		}
		day := s.StartTime.Format("2006-01-02")
		windowStart, _ := time.Parse(time.RFC3339, day+"T09:00:00Z")
		windowEnd, _ := time.Parse(time.RFC3339, day+"T21:00:00Z")
		if s.StartTime.Before(windowStart) || s.EndTime.After(windowEnd) {
			t.Errorf("session %v-%v outside study window", s.StartTime, s.EndTime)
		}
		byDay[day] = append(byDay[day], s)
	}

	for day, list := range byDay {
		for i := 0; i < len(list); i++ {
			for j := i + 1; j < len(list); j++ {
				a, b := list[i], list[j]
				if a.StartTime.Before(b.EndTime) && b.StartTime.Before(a.EndTime) {
					t.Errorf("overlapping sessions on %s: %v-%v and %v-%v",
						day, a.StartTime, a.EndTime, b.StartTime, b.EndTime)
				}
			}
		}
	}
}

func TestGenerateAllocationMatchesEstimate(t *testing.T) {
	const estimate = 170
	tasks := &fakeTasks{tasks: []domain.Task{newTask("a", domain.PriorityMedium, 48*time.Hour, estimate)}}
	sessions := &fakeSessions{}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: domain.DefaultProfile("u1")})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var allocated int
	for _, s := range created {
		allocated += int(s.Duration().Minutes())
	}
	if allocated != estimate {
		t.Errorf("allocated %d minutes, want %d", allocated, estimate)
	}

	updates := tasks.updates["a"]
	if len(updates) == 0 || updates[len(updates)-1] != 0 {
		t.Errorf("final stored estimate = %v, want 0", updates)
	}
}

func TestGeneratePartialTaskContinuesNextDay(t *testing.T) {
	// One slot per day: 09:00-10:00 window with 50 min sessions.
	profile := domain.DefaultProfile("u1")
	profile.WindowEnd = profile.WindowStart + 60

	tasks := &fakeTasks{tasks: []domain.Task{newTask("a", domain.PriorityHigh, 96*time.Hour, 120)}}
	sessions := &fakeSessions{}
	planner := newTestPlanner(tasks, sessions, &fakeProfiles{profile: profile})

	created, err := planner.Generate(context.Background(), "u1", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("expected 3 sessions over 3 days, got %d", len(created))
	}
	wantDays := []int{5, 6, 7} // Mon, Tue, Wed
	wantMinutes := []int{50, 50, 20}
	for i, s := range created {
		if s.StartTime.Day() != wantDays[i] {
			t.Errorf("session %d on day %d, want %d", i, s.StartTime.Day(), wantDays[i])
		}
		if got := int(s.Duration().Minutes()); got != wantMinutes[i] {
			t.Errorf("session %d duration %d min, want %d", i, got, wantMinutes[i])
		}
	}
}

func TestScore(t *testing.T) {
	urgent := newTask("u", domain.PriorityUrgent, 2*time.Hour, 60)
	low := newTask("l", domain.PriorityLow, 5*24*time.Hour, 60)

	if su, sl := Score(urgent, testNow), Score(low, testNow); su <= sl {
		t.Errorf("urgent task due soon scored %.3f, low task due later %.3f; want urgent higher", su, sl)
	}

	// The urgency term is clamped at one hour out, so a task due in 30
	// minutes scores the same as one due in exactly an hour.
	soon := newTask("s", domain.PriorityMedium, 30*time.Minute, 60)
	hour := newTask("h", domain.PriorityMedium, time.Hour, 60)
	if ss, sh := Score(soon, testNow), Score(hour, testNow); ss != sh {
		t.Errorf("clamped urgency differs: %.3f vs %.3f", ss, sh)
	}
}
