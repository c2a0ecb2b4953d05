package domain

import "fmt"

// TaskStatus is a closed enumeration. Values outside the three constants
// cannot be obtained through ParseTaskStatus.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

func ParseTaskStatus(value string) (TaskStatus, error) {
	switch TaskStatus(value) {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return TaskStatus(value), nil
	default:
		return "", NewValidationError("status", fmt.Sprintf("invalid status: %s", value))
	}
}

func (s TaskStatus) String() string {
	return string(s)
}

func (s TaskStatus) IsTodo() bool {
	return s == TaskStatusTodo
}

func (s TaskStatus) IsInProgress() bool {
	return s == TaskStatusInProgress
}

func (s TaskStatus) IsCompleted() bool {
	return s == TaskStatusCompleted
}
