package domain

import (
	"math"
	"strings"
	"time"
)

type User struct {
	id        UserID
	name      string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewUser(name, email string) (*User, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	emailVO, err := NewEmail(email)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	return &User{
		id:        NewUserID(),
		name:      name,
		email:     emailVO,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from already-persisted state.
func RestoreUser(id UserID, name string, email Email, createdAt, updatedAt time.Time) *User {
	return &User{
		id:        id,
		name:      name,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (u *User) ID() UserID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() Email {
	return u.email
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) UpdateName(name string) error {
	name, err := validateName(name)
	if err != nil {
		return err
	}

	u.name = name
	u.updatedAt = time.Now()

	return nil
}

// UpdateEmail replaces the email value object. Format validation is
// delegated to the Email constructor.
func (u *User) UpdateEmail(email string) error {
	emailVO, err := NewEmail(email)
	if err != nil {
		return err
	}

	u.email = emailVO
	u.updatedAt = time.Now()

	return nil
}

// AccountAge returns whole days since creation, rounded up. Recomputed
// on every call, the elapsed time is truncated to milliseconds so the
// age is 0 at the moment of creation.
func (u *User) AccountAge() int {
	elapsed := time.Since(u.createdAt).Truncate(time.Millisecond)

	return int(math.Ceil(elapsed.Hours() / 24))
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)

	if len(name) < 2 {
		return "", NewValidationError("name", "Name must be at least 2 characters long")
	}

	return name, nil
}
