package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

type studySessionRepository struct {
	pool *pgxpool.Pool
}

// NewStudySessionRepository returns a Postgres-backed implementation of StudySessionRepository.
func NewStudySessionRepository(pool *pgxpool.Pool) repository.StudySessionRepository {
	return &studySessionRepository{pool: pool}
}

const sessionColumns = `
	id, user_id, task_id, course_id, title, start_time, end_time,
	completed, notes, created_at`

func (r *studySessionRepository) GetByID(ctx context.Context, id string) (*domain.StudySession, error) {
	query := `SELECT` + sessionColumns + ` FROM study_sessions WHERE id = $1`
	return scanSession(r.pool.QueryRow(ctx, query, id))
}

func (r *studySessionRepository) List(ctx context.Context, filter repository.SessionFilter) ([]domain.StudySession, error) {
	const query = `
	SELECT` + sessionColumns + `
	FROM study_sessions
	WHERE user_id = $1
	  AND ($2::timestamptz IS NULL OR start_time >= $2)
	  AND ($3::timestamptz IS NULL OR start_time < $3)
	ORDER BY start_time
	LIMIT $4 OFFSET $5
	`
	rows, err := r.pool.Query(ctx, query,
		filter.UserID,
		nullTime(filter.From),
		nullTime(filter.To),
		clampLimit(filter.Limit),
		filter.Offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []domain.StudySession
	for rows.Next() {
		session, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *session)
	}
	return sessions, rows.Err()
}

func (r *studySessionRepository) Create(ctx context.Context, session *domain.StudySession) error {
	if session == nil {
		return domain.ErrInvalidPayload
	}
	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	const query = `
	INSERT INTO study_sessions (id, user_id, task_id, course_id, title,
		start_time, end_time, completed, notes)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING created_at
	`

	return r.pool.QueryRow(ctx, query,
		session.ID,
		session.UserID,
		nullString(session.TaskID),
		nullString(session.CourseID),
		session.Title,
		session.StartTime,
		session.EndTime,
		session.Completed,
		session.Notes,
	).Scan(&session.CreatedAt)
}

func (r *studySessionRepository) Update(ctx context.Context, session *domain.StudySession) error {
	if session == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE study_sessions
	SET title = $3,
		start_time = $4,
		end_time = $5,
		completed = $6,
		notes = $7
	WHERE id = $1 AND user_id = $2
	`

	tag, err := r.pool.Exec(ctx, query,
		session.ID,
		session.UserID,
		session.Title,
		session.StartTime,
		session.EndTime,
		session.Completed,
		session.Notes,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *studySessionRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM study_sessions WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *studySessionRepository) DeleteUpcoming(ctx context.Context, userID string, from time.Time) error {
	const query = `
	DELETE FROM study_sessions
	WHERE user_id = $1 AND start_time >= $2 AND NOT completed
	`
	_, err := r.pool.Exec(ctx, query, userID, from)
	return err
}

func scanSession(row pgx.Row) (*domain.StudySession, error) {
	var (
		session  domain.StudySession
		taskID   *string
		courseID *string
	)
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&taskID,
		&courseID,
		&session.Title,
		&session.StartTime,
		&session.EndTime,
		&session.Completed,
		&session.Notes,
		&session.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, err
	}
	session.TaskID = taskID
	session.CourseID = courseID
	return &session, nil
}
