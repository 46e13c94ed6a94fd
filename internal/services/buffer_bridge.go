package services

import (
	"context"
	"encoding/json"

	"github.com/faisalthe1/AI-Study-Planner/domain"
	"github.com/faisalthe1/AI-Study-Planner/internal/infrastructure/buffer"
	"github.com/faisalthe1/AI-Study-Planner/usecase"
)

// BufferBridge adapts the buffer processor to the use-case OperationBuffer port.
type BufferBridge struct {
	processor *BufferProcessor
}

func NewBufferBridge(processor *BufferProcessor) *BufferBridge {
	return &BufferBridge{processor: processor}
}

func (b *BufferBridge) BufferProfile(ctx context.Context, operation string, profile *domain.Profile) error {
	if b.processor == nil || profile == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	item := buffer.Item{
		UserID:    profile.UserID,
		Entity:    buffer.EntityProfile,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferCourse(ctx context.Context, operation string, course *domain.Course) error {
	if b.processor == nil || course == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(course)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        course.ID,
		UserID:    course.UserID,
		Entity:    buffer.EntityCourse,
		Operation: operation,
		Data:      payload,
		Priority:  3,
	}
	return b.processor.BufferOperation(ctx, item)
}

func (b *BufferBridge) BufferTask(ctx context.Context, operation string, task *domain.Task) error {
	if b.processor == nil || task == nil {
		return domain.ErrInvalidPayload
	}
	payload, err := json.Marshal(task)
	if err != nil {
		return err
	}
	item := buffer.Item{
		ID:        task.ID,
		UserID:    task.UserID,
		Entity:    buffer.EntityTask,
		Operation: operation,
		Data:      payload,
		Priority:  4,
	}
	return b.processor.BufferOperation(ctx, item)
}

var _ usecase.OperationBuffer = (*BufferBridge)(nil)
