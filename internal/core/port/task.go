package port

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
)

// TaskRepository is the storage contract for tasks. Save is an upsert
// keyed by the task id. FindByID returns (nil, nil) when the id is
// unknown. FindAll and FindByUserID return entities in insertion order
// and never return a nil slice. Delete is a no-op for unknown ids.
type TaskRepository interface {
	Save(ctx context.Context, task *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id domain.TaskID) (*domain.Task, error)
	FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Task, error)
	FindAll(ctx context.Context) ([]*domain.Task, error)
	Delete(ctx context.Context, id domain.TaskID) error
}

type TaskService interface {
	Create(ctx context.Context, params request.CreateTaskRequest) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, params request.UpdateTaskRequest) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
}
