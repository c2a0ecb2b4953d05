package service

import (
	"context"
	"log/slog"
	"time"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
	"taskapp/internal/core/port"
	tel "taskapp/internal/core/telemetry"
)

// TaskService orchestrates the task use cases. Errors from the domain
// and the repositories pass through untouched, translation to HTTP
// status codes happens at the handler layer.
type TaskService struct {
	tasks     port.TaskRepository
	users     port.UserRepository
	telemetry port.Telemetry
}

func NewTaskService(tasks port.TaskRepository, users port.UserRepository, telemetry port.Telemetry) *TaskService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TaskService{
		tasks:     tasks,
		users:     users,
		telemetry: telemetry,
	}
}

// Create builds a task owned by an existing user. The owner lookup runs
// first so a missing user is reported before any validation of the task
// fields is attempted against the store.
func (ts *TaskService) Create(ctx context.Context, params request.CreateTaskRequest) (*domain.Task, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "task", "Create", map[string]interface{}{
		"user.id": params.UserID,
	})
	defer span.End()

	startTime := time.Now()

	owner, err := ts.users.FindByID(ctx, domain.UserIDFrom(params.UserID))
	if err != nil {
		ts.telemetry.RecordServiceOperation(ctx, "task", "Create", time.Since(startTime), err)
		return nil, err
	}

	if owner == nil {
		ts.telemetry.RecordServiceOperation(ctx, "task", "Create", time.Since(startTime), domain.ErrUserNotFound)
		return nil, domain.ErrUserNotFound
	}

	task, err := domain.NewTask(params.Title, params.Description, owner.ID())
	if err != nil {
		ts.telemetry.RecordServiceOperation(ctx, "task", "Create", time.Since(startTime), err)
		return nil, err
	}

	task, err = ts.tasks.Save(ctx, task)
	if err != nil {
		slog.Error("Repository save failed", "error", err, "title", params.Title)
		ts.telemetry.RecordServiceOperation(ctx, "task", "Create", time.Since(startTime), err)
		return nil, err
	}

	ts.telemetry.RecordBusinessEvent(ctx, "task.created", "task", task.ID().String(), map[string]interface{}{
		"user.id": task.UserID().String(),
	})
	ts.telemetry.RecordServiceOperation(ctx, "task", "Create", time.Since(startTime), nil)

	return task, nil
}

func (ts *TaskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := ts.tasks.FindByID(ctx, domain.TaskIDFrom(id))
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return task, nil
}

// List returns every task, or only the tasks owned by userID when the
// filter is non-empty. The repository result is forwarded as is, an
// empty collection is a valid outcome, not an error.
func (ts *TaskService) List(ctx context.Context, userID string) ([]*domain.Task, error) {
	if userID != "" {
		return ts.tasks.FindByUserID(ctx, domain.UserIDFrom(userID))
	}

	return ts.tasks.FindAll(ctx)
}

// Update applies partial updates. A nil field is left untouched, a
// present field always goes through the corresponding entity mutator,
// so an explicit empty title is rejected rather than skipped.
func (ts *TaskService) Update(ctx context.Context, id string, params request.UpdateTaskRequest) (*domain.Task, error) {
	ctx, span := ts.telemetry.StartServiceSpan(ctx, "task", "Update", map[string]interface{}{
		"task.id": id,
	})
	defer span.End()

	task, err := ts.tasks.FindByID(ctx, domain.TaskIDFrom(id))
	if err != nil {
		return nil, err
	}

	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	if params.Title != nil {
		if err := task.UpdateTitle(*params.Title); err != nil {
			return nil, err
		}
	}

	if params.Description != nil {
		if err := task.UpdateDescription(*params.Description); err != nil {
			return nil, err
		}
	}

	if params.Status != nil {
		status, err := domain.ParseTaskStatus(*params.Status)
		if err != nil {
			return nil, err
		}

		switch status {
		case domain.TaskStatusCompleted:
			task.MarkAsCompleted()
		case domain.TaskStatusInProgress:
			task.MarkAsInProgress()
		case domain.TaskStatusTodo:
			task.MarkAsTodo()
		}
	}

	return ts.tasks.Save(ctx, task)
}

func (ts *TaskService) Delete(ctx context.Context, id string) error {
	task, err := ts.tasks.FindByID(ctx, domain.TaskIDFrom(id))
	if err != nil {
		return err
	}

	if task == nil {
		return domain.ErrTaskNotFound
	}

	if err := ts.tasks.Delete(ctx, task.ID()); err != nil {
		return err
	}

	ts.telemetry.RecordBusinessEvent(ctx, "task.deleted", "task", task.ID().String(), nil)

	return nil
}
