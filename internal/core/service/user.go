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

type UserService struct {
	users     port.UserRepository
	telemetry port.Telemetry
}

func NewUserService(users port.UserRepository, telemetry port.Telemetry) *UserService {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserService{
		users:     users,
		telemetry: telemetry,
	}
}

// Create registers a user. The email conflict check runs before entity
// construction and nothing is saved when it fires.
func (us *UserService) Create(ctx context.Context, params request.CreateUserRequest) (*domain.User, error) {
	ctx, span := us.telemetry.StartServiceSpan(ctx, "user", "Create", nil)
	defer span.End()

	startTime := time.Now()

	email, err := domain.NewEmail(params.Email)
	if err != nil {
		us.telemetry.RecordServiceOperation(ctx, "user", "Create", time.Since(startTime), err)
		return nil, err
	}

	existing, err := us.users.FindByEmail(ctx, email)
	if err != nil {
		us.telemetry.RecordServiceOperation(ctx, "user", "Create", time.Since(startTime), err)
		return nil, err
	}

	if existing != nil {
		us.telemetry.RecordServiceOperation(ctx, "user", "Create", time.Since(startTime), domain.ErrEmailAlreadyRegistered)
		return nil, domain.ErrEmailAlreadyRegistered
	}

	user, err := domain.NewUser(params.Name, params.Email)
	if err != nil {
		us.telemetry.RecordServiceOperation(ctx, "user", "Create", time.Since(startTime), err)
		return nil, err
	}

	user, err = us.users.Save(ctx, user)
	if err != nil {
		slog.Error("Repository save failed", "error", err)
		us.telemetry.RecordServiceOperation(ctx, "user", "Create", time.Since(startTime), err)
		return nil, err
	}

	us.telemetry.RecordBusinessEvent(ctx, "user.created", "user", user.ID().String(), nil)
	us.telemetry.RecordServiceOperation(ctx, "user", "Create", time.Since(startTime), nil)

	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := us.users.FindByID(ctx, domain.UserIDFrom(id))
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

// List forwards the repository result unmodified.
func (us *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return us.users.FindAll(ctx)
}

func (us *UserService) Update(ctx context.Context, id string, params request.UpdateUserRequest) (*domain.User, error) {
	ctx, span := us.telemetry.StartServiceSpan(ctx, "user", "Update", map[string]interface{}{
		"user.id": id,
	})
	defer span.End()

	user, err := us.users.FindByID(ctx, domain.UserIDFrom(id))
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	if params.Name != nil {
		if err := user.UpdateName(*params.Name); err != nil {
			return nil, err
		}
	}

	if params.Email != nil {
		if err := user.UpdateEmail(*params.Email); err != nil {
			return nil, err
		}
	}

	return us.users.Save(ctx, user)
}

// Delete reports a missing user as not found. Tasks owned by the user
// are left in place, there is no cascade.
func (us *UserService) Delete(ctx context.Context, id string) error {
	user, err := us.users.FindByID(ctx, domain.UserIDFrom(id))
	if err != nil {
		return err
	}

	if user == nil {
		return domain.ErrUserNotFound
	}

	if err := us.users.Delete(ctx, user.ID()); err != nil {
		return err
	}

	us.telemetry.RecordBusinessEvent(ctx, "user.deleted", "user", user.ID().String(), nil)

	return nil
}
