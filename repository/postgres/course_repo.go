package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
)

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository returns a Postgres-backed implementation of CourseRepository.
func NewCourseRepository(pool *pgxpool.Pool) repository.CourseRepository {
	return &courseRepository{pool: pool}
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	const query = `
	SELECT id, user_id, name, code, description, color, created_at, updated_at
	FROM courses
	WHERE id = $1
	`
	return scanCourse(r.pool.QueryRow(ctx, query, id))
}

func (r *courseRepository) List(ctx context.Context, userID string) ([]domain.Course, error) {
	const query = `
	SELECT id, user_id, name, code, description, color, created_at, updated_at
	FROM courses
	WHERE user_id = $1
	ORDER BY name
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		course, err := scanCourse(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, *course)
	}
	return courses, rows.Err()
}

func (r *courseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if course == nil {
		return nil, domain.ErrInvalidPayload
	}
	if course.ID == "" {
		course.ID = uuid.NewString()
	}
	if course.Color == "" {
		course.Color = domain.DefaultCourseColor
	}

	const query = `
	INSERT INTO courses (id, user_id, name, code, description, color)
	VALUES ($1, $2, $3, $4, $5, $6)
	RETURNING created_at, updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		course.ID,
		course.UserID,
		course.Name,
		course.Code,
		course.Description,
		course.Color,
	).Scan(&course.CreatedAt, &course.UpdatedAt); err != nil {
		return nil, err
	}
	return course, nil
}

func (r *courseRepository) Update(ctx context.Context, course *domain.Course) error {
	if course == nil {
		return domain.ErrInvalidPayload
	}

	const query = `
	UPDATE courses
	SET name = $3,
		code = $4,
		description = $5,
		color = $6,
		updated_at = NOW()
	WHERE id = $1 AND user_id = $2
	RETURNING updated_at
	`

	if err := r.pool.QueryRow(ctx, query,
		course.ID,
		course.UserID,
		course.Name,
		course.Code,
		course.Description,
		course.Color,
	).Scan(&course.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrCourseNotFound
		}
		return err
	}
	return nil
}

func (r *courseRepository) Delete(ctx context.Context, userID, id string) error {
	const query = `DELETE FROM courses WHERE id = $1 AND user_id = $2`
	tag, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

func scanCourse(row pgx.Row) (*domain.Course, error) {
	var course domain.Course
	if err := row.Scan(
		&course.ID,
		&course.UserID,
		&course.Name,
		&course.Code,
		&course.Description,
		&course.Color,
		&course.CreatedAt,
		&course.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}
