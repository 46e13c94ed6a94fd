package services

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
	"github.com/faisalthe1/AI-Study-Planner/scheduler"
)

const defaultReplanSpec = "0 0 5 * * *"

// ScheduleGenerator abstracts the planner use case for the nightly sweep.
type ScheduleGenerator interface {
	GenerateSchedule(ctx context.Context, userID string, days int) ([]domain.StudySession, error)
}

// ReplannerConfig controls the nightly schedule regeneration job.
type ReplannerConfig struct {
	Spec        string
	HorizonDays int
	Timeout     time.Duration
}

// Replanner rebuilds schedules overnight for every user that opted into
// automatic replanning. A failed run for one user does not stop the sweep.
type Replanner struct {
	profiles  repository.ProfileRepository
	generator ScheduleGenerator
	logger    *zap.Logger
	cron      *cron.Cron
	cfg       ReplannerConfig
}

func NewReplanner(
	profiles repository.ProfileRepository,
	generator ScheduleGenerator,
	logger *zap.Logger,
	cfg ReplannerConfig,
) *Replanner {
	if cfg.Spec == "" {
		cfg.Spec = defaultReplanSpec
	}
	if cfg.HorizonDays <= 0 {
		cfg.HorizonDays = scheduler.DefaultHorizonDays
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	r := &Replanner{
		profiles:  profiles,
		generator: generator,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	job := func() {
		ctx, cancel := context.WithTimeout(context.Background(), r.cfg.Timeout)
		defer cancel()
		r.Run(ctx)
	}
	if _, err := r.cron.AddFunc(r.cfg.Spec, job); err != nil {
		logger.Error("invalid replan schedule, falling back to default",
			zap.String("schedule", r.cfg.Spec), zap.Error(err))
		r.cfg.Spec = defaultReplanSpec
		_, _ = r.cron.AddFunc(defaultReplanSpec, job)
	}

	return r
}

func (r *Replanner) Start() {
	if r == nil || r.cron == nil {
		return
	}
	r.cron.Start()
	r.logger.Info("replanner started", zap.String("schedule", r.cfg.Spec))
}

func (r *Replanner) Stop(ctx context.Context) {
	if r == nil || r.cron == nil {
		return
	}
	stopCtx := r.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	r.logger.Info("replanner stopped")
}

// Run regenerates schedules for all opted-in users synchronously.
func (r *Replanner) Run(ctx context.Context) {
	profiles, err := r.profiles.ListAutoReplan(ctx)
	if err != nil {
		r.logger.Error("failed to list auto-replan users", zap.Error(err))
		return
	}
	if len(profiles) == 0 {
		return
	}

	r.logger.Info("nightly replan sweep started", zap.Int("users", len(profiles)))

	var failed int
	for _, profile := range profiles {
		if ctx.Err() != nil {
			r.logger.Warn("replan sweep aborted", zap.Error(ctx.Err()))
			return
		}
		sessions, err := r.generator.GenerateSchedule(ctx, profile.UserID, r.cfg.HorizonDays)
		if err != nil {
			failed++
			r.logger.Error("replan failed for user",
				zap.String("user_id", profile.UserID),
				zap.Error(err))
			continue
		}
		r.logger.Debug("replan completed for user",
			zap.String("user_id", profile.UserID),
			zap.Int("sessions_created", len(sessions)))
	}

	r.logger.Info("nightly replan sweep finished",
		zap.Int("users", len(profiles)),
		zap.Int("failed", failed))
}
