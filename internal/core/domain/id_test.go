package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTaskID(t *testing.T) {
	t.Run("should generate a valid uuid", func(t *testing.T) {
		id := NewTaskID()

		_, err := uuid.Parse(id.String())
		assert.NoError(t, err)
	})

	t.Run("should wrap an existing value", func(t *testing.T) {
		id := TaskIDFrom("task-1")

		assert.Equal(t, "task-1", id.String())
	})

	t.Run("should generate when the value is empty", func(t *testing.T) {
		id := TaskIDFrom("")

		assert.NotEmpty(t, id.String())
	})

	t.Run("should compare by value", func(t *testing.T) {
		assert.True(t, TaskIDFrom("a").Equals(TaskIDFrom("a")))
		assert.False(t, TaskIDFrom("a").Equals(TaskIDFrom("b")))
	})
}

func TestUserID(t *testing.T) {
	t.Run("should generate distinct ids", func(t *testing.T) {
		assert.False(t, NewUserID().Equals(NewUserID()))
	})

	t.Run("should compare by value", func(t *testing.T) {
		assert.True(t, UserIDFrom("u").Equals(UserIDFrom("u")))
	})
}
