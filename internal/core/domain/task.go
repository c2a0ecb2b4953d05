package domain

import (
	"strings"
	"time"
)

// Task is the aggregate root for a single task. Identity and ownership
// are fixed at creation, every other field mutates through the methods
// below, which re-validate and bump UpdatedAt.
type Task struct {
	id          TaskID
	title       string
	description string
	status      TaskStatus
	userID      UserID
	createdAt   time.Time
	updatedAt   time.Time
	completedAt *time.Time
}

func NewTask(title, description string, userID UserID) (*Task, error) {
	title, err := validateTitle(title)
	if err != nil {
		return nil, err
	}

	description, err = validateDescription(description)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &Task{
		id:          NewTaskID(),
		title:       title,
		description: description,
		status:      TaskStatusTodo,
		userID:      userID,
		createdAt:   now,
		updatedAt:   now,
		completedAt: nil,
	}, nil
}

// RestoreTask rebuilds a task from already-persisted state. Meant for
// adapters that rehydrate entities, it stamps nothing.
func RestoreTask(id TaskID, title, description string, status TaskStatus, userID UserID, createdAt, updatedAt time.Time, completedAt *time.Time) *Task {
	return &Task{
		id:          id,
		title:       title,
		description: description,
		status:      status,
		userID:      userID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		completedAt: completedAt,
	}
}

func (t *Task) ID() TaskID {
	return t.id
}

func (t *Task) Title() string {
	return t.title
}

func (t *Task) Description() string {
	return t.description
}

func (t *Task) Status() TaskStatus {
	return t.status
}

func (t *Task) UserID() UserID {
	return t.userID
}

func (t *Task) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Task) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Task) CompletedAt() *time.Time {
	return t.completedAt
}

// UpdateTitle validates and replaces the title. The entity is left
// untouched when validation fails.
func (t *Task) UpdateTitle(title string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}

	t.title = title
	t.updatedAt = time.Now()

	return nil
}

func (t *Task) UpdateDescription(description string) error {
	description, err := validateDescription(description)
	if err != nil {
		return err
	}

	t.description = description
	t.updatedAt = time.Now()

	return nil
}

// MarkAsInProgress clears CompletedAt so a reopened task never carries a
// stale completion timestamp.
func (t *Task) MarkAsInProgress() {
	t.status = TaskStatusInProgress
	t.completedAt = nil
	t.updatedAt = time.Now()
}

func (t *Task) MarkAsCompleted() {
	now := time.Now()

	t.status = TaskStatusCompleted
	t.completedAt = &now
	t.updatedAt = now
}

func (t *Task) MarkAsTodo() {
	t.status = TaskStatusTodo
	t.completedAt = nil
	t.updatedAt = time.Now()
}

func (t *Task) IsOwnedBy(userID UserID) bool {
	return t.userID.Equals(userID)
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)

	if len(title) == 0 {
		return "", NewValidationError("title", "Task title cannot be empty")
	}

	if len(title) > 200 {
		return "", NewValidationError("title", "Task title cannot exceed 200 characters")
	}

	return title, nil
}

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)

	if len(description) > 2000 {
		return "", NewValidationError("description", "Task description cannot exceed 2000 characters")
	}

	return description, nil
}
