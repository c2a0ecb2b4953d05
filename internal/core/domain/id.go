package domain

import (
	"github.com/google/uuid"
)

// TaskID identifies a task. Generated as a random UUID when not seeded.
type TaskID struct {
	value string
}

func NewTaskID() TaskID {
	return TaskID{value: uuid.NewString()}
}

// TaskIDFrom wraps an existing identifier value. The value is opaque,
// no format check is applied.
func TaskIDFrom(value string) TaskID {
	if value == "" {
		return NewTaskID()
	}

	return TaskID{value: value}
}

func (id TaskID) String() string {
	return id.value
}

func (id TaskID) Equals(other TaskID) bool {
	return id.value == other.value
}

// UserID identifies a user. Same semantics as TaskID.
type UserID struct {
	value string
}

func NewUserID() UserID {
	return UserID{value: uuid.NewString()}
}

func UserIDFrom(value string) UserID {
	if value == "" {
		return NewUserID()
	}

	return UserID{value: value}
}

func (id UserID) String() string {
	return id.value
}

func (id UserID) Equals(other UserID) bool {
	return id.value == other.value
}
