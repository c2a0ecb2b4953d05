package port

import (
	"context"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/model/request"
)

// UserRepository is the storage contract for users. FindByEmail is an
// exact, case-sensitive match and returns (nil, nil) when absent.
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Delete(ctx context.Context, id domain.UserID) error
}

type UserService interface {
	Create(ctx context.Context, params request.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, params request.UpdateUserRequest) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
