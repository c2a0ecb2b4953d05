package memory

import (
	"context"
	"sync"
	"time"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	tel "taskapp/internal/core/telemetry"
)

// TaskRepository keeps tasks in an in-process map, insertion order
// preserved for scans. Save stores the exact reference it is given, no
// copy is taken, so the contract matches what a serializing adapter
// would need: callers must Save after mutating.
//
// Known gap: no per-entity versioning, two concurrent updates to the
// same id can lose one of the writes.
type TaskRepository struct {
	mu        sync.RWMutex
	items     map[string]*domain.Task
	order     []string
	telemetry port.Telemetry
}

func NewTaskRepository(telemetry port.Telemetry) port.TaskRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &TaskRepository{
		items:     make(map[string]*domain.Task),
		telemetry: telemetry,
	}
}

func (tr *TaskRepository) Save(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Save", "task", map[string]interface{}{
		"task.id": task.ID().String(),
	})
	defer span.End()

	startTime := time.Now()

	tr.mu.Lock()
	key := task.ID().String()

	if _, exists := tr.items[key]; !exists {
		tr.order = append(tr.order, key)
	}

	tr.items[key] = task
	tr.mu.Unlock()

	tr.telemetry.RecordRepositoryOperation(ctx, "Save", "task", time.Since(startTime), nil)

	return task, nil
}

func (tr *TaskRepository) FindByID(ctx context.Context, id domain.TaskID) (*domain.Task, error) {
	tr.mu.RLock()
	defer tr.mu.RUnlock()

	task, exists := tr.items[id.String()]
	if !exists {
		return nil, nil
	}

	return task, nil
}

func (tr *TaskRepository) FindByUserID(ctx context.Context, userID domain.UserID) ([]*domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "FindByUserID", "task", map[string]interface{}{
		"user.id": userID.String(),
	})
	defer span.End()

	startTime := time.Now()

	tr.mu.RLock()
	tasks := make([]*domain.Task, 0)

	for _, key := range tr.order {
		task := tr.items[key]
		if task.IsOwnedBy(userID) {
			tasks = append(tasks, task)
		}
	}
	tr.mu.RUnlock()

	tr.telemetry.RecordRepositoryOperation(ctx, "FindByUserID", "task", time.Since(startTime), nil)

	return tasks, nil
}

func (tr *TaskRepository) FindAll(ctx context.Context) ([]*domain.Task, error) {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "FindAll", "task", nil)
	defer span.End()

	startTime := time.Now()

	tr.mu.RLock()
	tasks := make([]*domain.Task, 0, len(tr.order))

	for _, key := range tr.order {
		tasks = append(tasks, tr.items[key])
	}
	tr.mu.RUnlock()

	tr.telemetry.RecordRepositoryOperation(ctx, "FindAll", "task", time.Since(startTime), nil)

	return tasks, nil
}

// Delete removes the task. Unknown ids are a no-op, not an error.
func (tr *TaskRepository) Delete(ctx context.Context, id domain.TaskID) error {
	ctx, span := tr.telemetry.StartRepositorySpan(ctx, "Delete", "task", map[string]interface{}{
		"task.id": id.String(),
	})
	defer span.End()

	startTime := time.Now()

	tr.mu.Lock()
	key := id.String()

	if _, exists := tr.items[key]; exists {
		delete(tr.items, key)

		for i, k := range tr.order {
			if k == key {
				tr.order = append(tr.order[:i], tr.order[i+1:]...)
				break
			}
		}
	}
	tr.mu.Unlock()

	tr.telemetry.RecordRepositoryOperation(ctx, "Delete", "task", time.Since(startTime), nil)

	return nil
}
