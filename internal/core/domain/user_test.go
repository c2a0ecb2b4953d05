package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	t.Run("should create a user with trimmed name", func(t *testing.T) {
		user, err := NewUser("  Jane Doe  ", "jane@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", user.Name())
		assert.Equal(t, "jane@example.com", user.Email().String())
		assert.NotEmpty(t, user.ID().String())
	})

	t.Run("should reject a single character name", func(t *testing.T) {
		_, err := NewUser("J", "jane@example.com")

		assert.Error(t, err)
		assert.Equal(t, "Name must be at least 2 characters long", err.Error())
		assert.True(t, IsValidationError(err))
	})

	t.Run("should reject a name that trims below two characters", func(t *testing.T) {
		_, err := NewUser("  J  ", "jane@example.com")

		assert.Error(t, err)
		assert.Equal(t, "Name must be at least 2 characters long", err.Error())
	})

	t.Run("should accept a two character name", func(t *testing.T) {
		user, err := NewUser("Jo", "jo@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "Jo", user.Name())
	})

	t.Run("should reject an invalid email", func(t *testing.T) {
		_, err := NewUser("Jane Doe", "not-an-email")

		assert.Error(t, err)
		assert.Equal(t, "Invalid email format", err.Error())
	})
}

func TestUser_UpdateName(t *testing.T) {
	t.Run("should replace the name and bump UpdatedAt", func(t *testing.T) {
		user, _ := NewUser("Jane Doe", "jane@example.com")
		before := user.UpdatedAt()

		time.Sleep(time.Millisecond)

		err := user.UpdateName("Janet Doe")

		assert.NoError(t, err)
		assert.Equal(t, "Janet Doe", user.Name())
		assert.True(t, user.UpdatedAt().After(before))
	})

	t.Run("should leave the user untouched on invalid name", func(t *testing.T) {
		user, _ := NewUser("Jane Doe", "jane@example.com")

		err := user.UpdateName(" ")

		assert.Error(t, err)
		assert.Equal(t, "Jane Doe", user.Name())
	})
}

func TestUser_UpdateEmail(t *testing.T) {
	t.Run("should replace the email", func(t *testing.T) {
		user, _ := NewUser("Jane Doe", "jane@example.com")

		err := user.UpdateEmail("janet@example.com")

		assert.NoError(t, err)
		assert.Equal(t, "janet@example.com", user.Email().String())
	})

	t.Run("should leave the user untouched on invalid email", func(t *testing.T) {
		user, _ := NewUser("Jane Doe", "jane@example.com")

		err := user.UpdateEmail("janet@example")

		assert.Error(t, err)
		assert.Equal(t, "jane@example.com", user.Email().String())
	})
}

func TestUser_AccountAge(t *testing.T) {
	restore := func(createdAt time.Time) *User {
		email, _ := NewEmail("jane@example.com")
		return RestoreUser(UserIDFrom("user-1"), "Jane Doe", email, createdAt, createdAt)
	}

	t.Run("should be zero at the moment of creation", func(t *testing.T) {
		user, _ := NewUser("Jane Doe", "jane@example.com")

		assert.Equal(t, 0, user.AccountAge())
	})

	t.Run("should round a partial day up to one", func(t *testing.T) {
		user := restore(time.Now().Add(-time.Hour))

		assert.Equal(t, 1, user.AccountAge())
	})

	t.Run("should round up past a whole day", func(t *testing.T) {
		user := restore(time.Now().Add(-25 * time.Hour))

		assert.Equal(t, 2, user.AccountAge())
	})

	t.Run("should count ten days", func(t *testing.T) {
		user := restore(time.Now().Add(-9*24*time.Hour - 23*time.Hour))

		assert.Equal(t, 10, user.AccountAge())
	})
}
