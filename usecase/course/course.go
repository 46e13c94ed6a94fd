package course

import (
	"context"

	"go.uber.org/zap"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/repository"
	"github.com/faisalthe1/AI-Study-Planner/usecase"
)

type UseCase struct {
	courses repository.CourseRepository
	buffer  usecase.OperationBuffer
	logger  *zap.Logger
}

func New(courses repository.CourseRepository, buffer usecase.OperationBuffer, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		courses: courses,
		buffer:  buffer,
		logger:  logger,
	}
}

func (uc *UseCase) ListCourses(ctx context.Context, userID string) ([]domain.Course, error) {
	return uc.courses.List(ctx, userID)
}

func (uc *UseCase) CreateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if err := course.Validate(); err != nil {
		return nil, err
	}
	created, err := uc.courses.Create(ctx, course)
	if err != nil {
		if uc.shouldBuffer(ctx, usecase.OperationCreate, course) {
			return course, nil
		}
		return nil, err
	}
	return created, nil
}

func (uc *UseCase) UpdateCourse(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	if err := course.Validate(); err != nil {
		return nil, err
	}
	if err := uc.courses.Update(ctx, course); err != nil {
		if err == domain.ErrCourseNotFound {
			return nil, err
		}
		if uc.shouldBuffer(ctx, usecase.OperationUpdate, course) {
			return course, nil
		}
		return nil, err
	}
	return course, nil
}

func (uc *UseCase) DeleteCourse(ctx context.Context, userID, id string) error {
	return uc.courses.Delete(ctx, userID, id)
}

func (uc *UseCase) shouldBuffer(ctx context.Context, operation string, course *domain.Course) bool {
	if uc.buffer == nil {
		return false
	}
	if err := uc.buffer.BufferCourse(ctx, operation, course); err != nil {
		uc.logger.Error("failed to buffer course operation", zap.String("operation", operation), zap.Error(err))
		return false
	}
	uc.logger.Warn("course operation buffered", zap.String("operation", operation))
	return true
}
