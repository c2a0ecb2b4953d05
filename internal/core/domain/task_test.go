package domain

import (
	"strings"
	"testing"
	"time"

	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

func TestNewTask(t *testing.T) {
	RegisterTestingT(t)

	owner := NewUserID()

	t.Run("should create a task with TODO status and no completion", func(t *testing.T) {
		task, err := NewTask("Buy groceries", "Milk and eggs", owner)

		assert.NoError(t, err)
		assert.Equal(t, "Buy groceries", task.Title())
		assert.Equal(t, "Milk and eggs", task.Description())
		assert.Equal(t, TaskStatusTodo, task.Status())
		assert.True(t, task.UserID().Equals(owner))
		assert.Nil(t, task.CompletedAt())
		assert.NotEmpty(t, task.ID().String())
	})

	t.Run("should trim title and description", func(t *testing.T) {
		task, err := NewTask("  Buy groceries  ", "  details  ", owner)

		assert.NoError(t, err)
		assert.Equal(t, "Buy groceries", task.Title())
		assert.Equal(t, "details", task.Description())
	})

	t.Run("should reject empty title", func(t *testing.T) {
		_, err := NewTask("", "", owner)

		assert.Error(t, err)
		assert.Equal(t, "Task title cannot be empty", err.Error())
		assert.True(t, IsValidationError(err))
	})

	t.Run("should reject whitespace-only title", func(t *testing.T) {
		_, err := NewTask("   ", "", owner)

		assert.Error(t, err)
		assert.Equal(t, "Task title cannot be empty", err.Error())
	})

	t.Run("should accept a 200 character title", func(t *testing.T) {
		task, err := NewTask(strings.Repeat("a", 200), "", owner)

		assert.NoError(t, err)
		assert.Len(t, task.Title(), 200)
	})

	t.Run("should reject a 201 character title", func(t *testing.T) {
		_, err := NewTask(strings.Repeat("a", 201), "", owner)

		assert.Error(t, err)
		assert.Equal(t, "Task title cannot exceed 200 characters", err.Error())
	})

	t.Run("should accept an empty description", func(t *testing.T) {
		task, err := NewTask("Buy groceries", "", owner)

		assert.NoError(t, err)
		assert.Equal(t, "", task.Description())
	})

	t.Run("should accept a 2000 character description", func(t *testing.T) {
		task, err := NewTask("Buy groceries", strings.Repeat("d", 2000), owner)

		assert.NoError(t, err)
		assert.Len(t, task.Description(), 2000)
	})

	t.Run("should reject a 2001 character description", func(t *testing.T) {
		_, err := NewTask("Buy groceries", strings.Repeat("d", 2001), owner)

		assert.Error(t, err)
		assert.Equal(t, "Task description cannot exceed 2000 characters", err.Error())
	})

	t.Run("should generate a distinct id per task", func(t *testing.T) {
		first, _ := NewTask("One", "", owner)
		second, _ := NewTask("Two", "", owner)

		Expect(first.ID().Equals(second.ID())).To(BeFalse())
	})
}

func TestTask_UpdateTitle(t *testing.T) {
	owner := NewUserID()

	t.Run("should replace the title and bump UpdatedAt", func(t *testing.T) {
		task, _ := NewTask("Old title", "", owner)
		before := task.UpdatedAt()

		time.Sleep(time.Millisecond)

		err := task.UpdateTitle("New title")

		assert.NoError(t, err)
		assert.Equal(t, "New title", task.Title())
		assert.True(t, task.UpdatedAt().After(before))
	})

	t.Run("should leave the task untouched on invalid title", func(t *testing.T) {
		task, _ := NewTask("Old title", "", owner)
		before := task.UpdatedAt()

		err := task.UpdateTitle("   ")

		assert.Error(t, err)
		assert.Equal(t, "Old title", task.Title())
		assert.Equal(t, before, task.UpdatedAt())
	})
}

func TestTask_UpdateDescription(t *testing.T) {
	owner := NewUserID()

	t.Run("should replace the description", func(t *testing.T) {
		task, _ := NewTask("Title", "old", owner)

		err := task.UpdateDescription("new")

		assert.NoError(t, err)
		assert.Equal(t, "new", task.Description())
	})

	t.Run("should allow clearing the description", func(t *testing.T) {
		task, _ := NewTask("Title", "old", owner)

		err := task.UpdateDescription("")

		assert.NoError(t, err)
		assert.Equal(t, "", task.Description())
	})

	t.Run("should leave the task untouched on oversized description", func(t *testing.T) {
		task, _ := NewTask("Title", "old", owner)

		err := task.UpdateDescription(strings.Repeat("d", 2001))

		assert.Error(t, err)
		assert.Equal(t, "old", task.Description())
	})
}

func TestTask_StatusTransitions(t *testing.T) {
	owner := NewUserID()

	t.Run("should set CompletedAt when completed", func(t *testing.T) {
		task, _ := NewTask("Title", "", owner)

		task.MarkAsCompleted()

		assert.Equal(t, TaskStatusCompleted, task.Status())
		assert.NotNil(t, task.CompletedAt())
		assert.Equal(t, *task.CompletedAt(), task.UpdatedAt())
	})

	t.Run("should clear CompletedAt when reopened to TODO", func(t *testing.T) {
		task, _ := NewTask("Title", "", owner)

		task.MarkAsCompleted()
		task.MarkAsTodo()

		assert.Equal(t, TaskStatusTodo, task.Status())
		assert.Nil(t, task.CompletedAt())
	})

	t.Run("should clear CompletedAt when moved to IN_PROGRESS", func(t *testing.T) {
		task, _ := NewTask("Title", "", owner)

		task.MarkAsCompleted()
		task.MarkAsInProgress()

		assert.Equal(t, TaskStatusInProgress, task.Status())
		assert.Nil(t, task.CompletedAt())
	})

	t.Run("should keep completing idempotent on timestamp presence", func(t *testing.T) {
		task, _ := NewTask("Title", "", owner)

		task.MarkAsCompleted()
		first := *task.CompletedAt()

		time.Sleep(time.Millisecond)
		task.MarkAsCompleted()

		assert.NotNil(t, task.CompletedAt())
		assert.True(t, task.CompletedAt().After(first) || task.CompletedAt().Equal(first))
	})
}

func TestTask_IsOwnedBy(t *testing.T) {
	t.Run("should match the creating user", func(t *testing.T) {
		owner := NewUserID()
		task, _ := NewTask("Title", "", owner)

		assert.True(t, task.IsOwnedBy(owner))
		assert.False(t, task.IsOwnedBy(NewUserID()))
	})

	t.Run("should compare ids structurally", func(t *testing.T) {
		owner := UserIDFrom("user-1")
		task, _ := NewTask("Title", "", owner)

		assert.True(t, task.IsOwnedBy(UserIDFrom("user-1")))
	})
}

func TestRestoreTask(t *testing.T) {
	t.Run("should rebuild the task without touching timestamps", func(t *testing.T) {
		created := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
		updated := created.Add(time.Hour)
		completed := updated

		task := RestoreTask(TaskIDFrom("task-1"), "Title", "desc", TaskStatusCompleted, UserIDFrom("user-1"), created, updated, &completed)

		assert.Equal(t, "task-1", task.ID().String())
		assert.Equal(t, TaskStatusCompleted, task.Status())
		assert.Equal(t, created, task.CreatedAt())
		assert.Equal(t, updated, task.UpdatedAt())
		assert.Equal(t, completed, *task.CompletedAt())
	})
}
