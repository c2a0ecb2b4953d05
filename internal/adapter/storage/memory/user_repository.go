package memory

import (
	"context"
	"sync"
	"time"

	"taskapp/internal/core/domain"
	"taskapp/internal/core/port"
	tel "taskapp/internal/core/telemetry"
)

// UserRepository mirrors TaskRepository for the user aggregate:
// string-keyed reference store with insertion-order scans.
type UserRepository struct {
	mu        sync.RWMutex
	items     map[string]*domain.User
	order     []string
	telemetry port.Telemetry
}

func NewUserRepository(telemetry port.Telemetry) port.UserRepository {
	if telemetry == nil {
		telemetry = tel.NewNoOpProbe()
	}

	return &UserRepository{
		items:     make(map[string]*domain.User),
		telemetry: telemetry,
	}
}

func (ur *UserRepository) Save(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "Save", "user", map[string]interface{}{
		"user.id": user.ID().String(),
	})
	defer span.End()

	startTime := time.Now()

	ur.mu.Lock()
	key := user.ID().String()

	if _, exists := ur.items[key]; !exists {
		ur.order = append(ur.order, key)
	}

	ur.items[key] = user
	ur.mu.Unlock()

	ur.telemetry.RecordRepositoryOperation(ctx, "Save", "user", time.Since(startTime), nil)

	return user, nil
}

func (ur *UserRepository) FindByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	ur.mu.RLock()
	defer ur.mu.RUnlock()

	user, exists := ur.items[id.String()]
	if !exists {
		return nil, nil
	}

	return user, nil
}

// FindByEmail is an exact, case-sensitive match over an insertion-order
// scan. Returns (nil, nil) when no user carries the address.
func (ur *UserRepository) FindByEmail(ctx context.Context, email domain.Email) (*domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "FindByEmail", "user", nil)
	defer span.End()

	startTime := time.Now()

	ur.mu.RLock()
	defer ur.mu.RUnlock()

	for _, key := range ur.order {
		user := ur.items[key]
		if user.Email().Equals(email) {
			ur.telemetry.RecordRepositoryOperation(ctx, "FindByEmail", "user", time.Since(startTime), nil)
			return user, nil
		}
	}

	ur.telemetry.RecordRepositoryOperation(ctx, "FindByEmail", "user", time.Since(startTime), nil)

	return nil, nil
}

func (ur *UserRepository) FindAll(ctx context.Context) ([]*domain.User, error) {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "FindAll", "user", nil)
	defer span.End()

	startTime := time.Now()

	ur.mu.RLock()
	users := make([]*domain.User, 0, len(ur.order))

	for _, key := range ur.order {
		users = append(users, ur.items[key])
	}
	ur.mu.RUnlock()

	ur.telemetry.RecordRepositoryOperation(ctx, "FindAll", "user", time.Since(startTime), nil)

	return users, nil
}

func (ur *UserRepository) Delete(ctx context.Context, id domain.UserID) error {
	ctx, span := ur.telemetry.StartRepositorySpan(ctx, "Delete", "user", map[string]interface{}{
		"user.id": id.String(),
	})
	defer span.End()

	startTime := time.Now()

	ur.mu.Lock()
	key := id.String()

	if _, exists := ur.items[key]; exists {
		delete(ur.items, key)

		for i, k := range ur.order {
			if k == key {
				ur.order = append(ur.order[:i], ur.order[i+1:]...)
				break
			}
		}
	}
	ur.mu.Unlock()

	ur.telemetry.RecordRepositoryOperation(ctx, "Delete", "user", time.Since(startTime), nil)

	return nil
}
