// Package scheduler generates study schedules: it ranks a user's open tasks
// by urgency and priority, then greedily packs them into the availability
// slots derived from the user's profile.
package scheduler

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

// DefaultHorizonDays is the planning window used when the caller passes no
// day count.
const DefaultHorizonDays = 7

// TaskSource supplies schedulable tasks and persists remaining-effort updates.
type TaskSource interface {
	// ListSchedulable returns the user's pending and in-progress tasks due at
	// or after now, ordered by due date ascending.
	ListSchedulable(ctx context.Context, userID string, now time.Time) ([]domain.Task, error)
	UpdateEstimatedMinutes(ctx context.Context, id string, minutes int) error
}

// SessionSink persists generated sessions and clears stale ones.
type SessionSink interface {
	DeleteUpcoming(ctx context.Context, userID string, from time.Time) error
	Create(ctx context.Context, session *domain.StudySession) error
}

// ProfileSource resolves the user's study preferences.
type ProfileSource interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
}

// Planner builds study schedules against injected persistence collaborators.
// Writes are individually committed as the run progresses; there is no
// enclosing transaction, so a failed run leaves the sessions and task
// updates already written in place.
type Planner struct {
	tasks    TaskSource
	sessions SessionSink
	profiles ProfileSource
	logger   *zap.Logger
	now      func() time.Time
}

func New(tasks TaskSource, sessions SessionSink, profiles ProfileSource, logger *zap.Logger) *Planner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Planner{
		tasks:    tasks,
		sessions: sessions,
		profiles: profiles,
		logger:   logger,
		now:      time.Now,
	}
}

// WithClock overrides the planner's time source. Intended for tests.
func (p *Planner) WithClock(now func() time.Time) *Planner {
	p.now = now
	return p
}

// Score ranks a task for greedy allocation. Priority contributes linearly;
// urgency contributes the inverse of hours until due, clamped so a task due
// within the hour scores no urgency bonus beyond 0.6.
func Score(task domain.Task, now time.Time) float64 {
	hoursUntilDue := task.DueDate.Sub(now).Hours()
	return float64(task.Priority)*0.4 + (1/math.Max(1, hoursUntilDue))*0.6
}

// rankedTask tracks the unallocated minutes of a task across the day loop.
type rankedTask struct {
	task      domain.Task
	remaining int
	score     float64
}

// Generate regenerates the user's study schedule over the next days calendar
// days and returns the created sessions in creation order.
//
// The run first deletes the user's not-completed future sessions, so calling
// Generate twice replaces the first run's output. Weekends are skipped.
// Scores are computed once up front and reused for every day of the horizon.
func (p *Planner) Generate(ctx context.Context, userID string, days int) ([]domain.StudySession, error) {
	if days <= 0 {
		days = DefaultHorizonDays
	}

	profile, err := p.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	loc := profile.Location()
	now := p.now().In(loc)

	if err := p.sessions.DeleteUpcoming(ctx, userID, now); err != nil {
		return nil, err
	}

	tasks, err := p.tasks.ListSchedulable(ctx, userID, now)
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}

	ranked := rank(tasks, now)
	today := midnight(now)

	var created []domain.StudySession
	for day := 0; day < days; day++ {
		date := today.AddDate(0, 0, day)
		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		slots := SlotsForDay(date, profile, now)
		for i := range ranked {
			rt := &ranked[i]
			if rt.remaining <= 0 {
				continue
			}
			sessions, err := p.packTask(ctx, rt, slots, userID)
			created = append(created, sessions...)
			if err != nil {
				return created, err
			}
		}
	}

	p.logger.Info("schedule generated",
		zap.String("user_id", userID),
		zap.Int("days", days),
		zap.Int("tasks", len(tasks)),
		zap.Int("sessions", len(created)))

	return created, nil
}

// packTask allocates the task's remaining minutes into the day's slots,
// persisting each session and the task's decremented effort as it goes.
// Partial results are returned alongside any persistence error.
func (p *Planner) packTask(ctx context.Context, rt *rankedTask, slots []Slot, userID string) ([]domain.StudySession, error) {
	var created []domain.StudySession
	for i := range slots {
		if rt.remaining <= 0 {
			break
		}
		slot := &slots[i]

		available := slot.Minutes()
		if available <= 0 {
			continue
		}

		use := rt.remaining
		if available < use {
			use = available
		}

		session := &domain.StudySession{
			ID:        uuid.NewString(),
			UserID:    userID,
			TaskID:    &rt.task.ID,
			CourseID:  rt.task.CourseID,
			Title:     "Study: " + rt.task.Title,
			StartTime: slot.Start,
			EndTime:   slot.Start.Add(time.Duration(use) * time.Minute),
			Notes:     "Scheduled by AI planner for " + rt.task.Title,
		}

		if err := p.sessions.Create(ctx, session); err != nil {
			return created, err
		}
		created = append(created, *session)

		slot.Start = session.EndTime
		rt.remaining -= use
		if rt.remaining < 0 {
			rt.remaining = 0
		}

		if err := p.tasks.UpdateEstimatedMinutes(ctx, rt.task.ID, rt.remaining); err != nil {
			return created, err
		}
	}
	return created, nil
}

// rank scores the due-date-ordered tasks and sorts them descending by score.
// The stable sort keeps the due-date ordering for equal scores.
func rank(tasks []domain.Task, now time.Time) []rankedTask {
	ranked := make([]rankedTask, 0, len(tasks))
	for _, t := range tasks {
		ranked = append(ranked, rankedTask{
			task:      t,
			remaining: t.EstimatedMinutes,
			score:     Score(t, now),
		})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
