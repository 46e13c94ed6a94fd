package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

type profileRepository struct {
	pool *pgxpool.Pool
}

// NewProfileRepository returns a Postgres-backed implementation of ProfileRepository.
func NewProfileRepository(pool *pgxpool.Pool) repository.ProfileRepository {
	return &profileRepository{pool: pool}
}

const profileColumns = `
	user_id, window_start_minutes, window_end_minutes, session_minutes,
	break_minutes, daily_hours_goal, timezone, auto_replan, created_at, updated_at`

func (r *profileRepository) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE user_id = $1`
	profile, err := scanProfile(r.pool.QueryRow(ctx, query, userID))
	if err != nil {
		return nil, err
	}
	return profile, nil
}

func (r *profileRepository) Upsert(ctx context.Context, profile *domain.Profile) error {
	if profile == nil || profile.UserID == "" {
		return domain.ErrInvalidPayload
	}

	const query = `
	INSERT INTO profiles (user_id, window_start_minutes, window_end_minutes,
		session_minutes, break_minutes, daily_hours_goal, timezone, auto_replan)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (user_id) DO UPDATE
	SET window_start_minutes = EXCLUDED.window_start_minutes,
		window_end_minutes = EXCLUDED.window_end_minutes,
		session_minutes = EXCLUDED.session_minutes,
		break_minutes = EXCLUDED.break_minutes,
		daily_hours_goal = EXCLUDED.daily_hours_goal,
		timezone = EXCLUDED.timezone,
		auto_replan = EXCLUDED.auto_replan,
		updated_at = NOW()
	RETURNING created_at, updated_at
	`

	return r.pool.QueryRow(ctx, query,
		profile.UserID,
		int(profile.WindowStart),
		int(profile.WindowEnd),
		profile.SessionMinutes,
		profile.BreakMinutes,
		profile.DailyHoursGoal,
		profile.Timezone,
		profile.AutoReplan,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)
}

func (r *profileRepository) ListAutoReplan(ctx context.Context) ([]domain.Profile, error) {
	query := `SELECT` + profileColumns + ` FROM profiles WHERE auto_replan ORDER BY user_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []domain.Profile
	for rows.Next() {
		profile, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *profile)
	}
	return profiles, rows.Err()
}

func scanProfile(row pgx.Row) (*domain.Profile, error) {
	var (
		profile          domain.Profile
		startMin, endMin int
	)
	if err := row.Scan(
		&profile.UserID,
		&startMin,
		&endMin,
		&profile.SessionMinutes,
		&profile.BreakMinutes,
		&profile.DailyHoursGoal,
		&profile.Timezone,
		&profile.AutoReplan,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	profile.WindowStart = domain.MinuteOfDay(startMin)
	profile.WindowEnd = domain.MinuteOfDay(endMin)
	return &profile, nil
}
