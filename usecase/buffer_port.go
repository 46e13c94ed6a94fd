package usecase

import (
	"context"

	"github.com/faisalthe1/AI-Study-Planner/domain"
)

// Buffered operation names shared with the write-behind buffer.
const (
	OperationCreate = "create"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// OperationBuffer abstracts the write-behind buffer so use cases stay
// storage-agnostic. Schedule generation never buffers; only user-driven
// CRUD writes fall back to the buffer when Postgres is unreachable.
type OperationBuffer interface {
	BufferProfile(ctx context.Context, operation string, profile *domain.Profile) error
	BufferCourse(ctx context.Context, operation string, course *domain.Course) error
	BufferTask(ctx context.Context, operation string, task *domain.Task) error
}
