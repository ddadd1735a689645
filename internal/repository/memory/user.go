// Package memory holds in-memory repository implementations. They back the
// unit and handler tests; production uses the mongodb package.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pawfecthome/backend/internal/models"
	"github.com/pawfecthome/backend/internal/repository"
)

type UserRepo struct {
	mu   sync.RWMutex
	byID map[string]models.User
}

func NewUserRepo() *UserRepo {
	return &UserRepo{byID: make(map[string]models.User)}
}

func (r *UserRepo) Create(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	r.byID[user.ID.Hex()] = *user
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, repository.ErrNotFound
	}
	return user, nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byID {
		if user.Email == email {
			return user, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *UserRepo) Update(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[user.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	for _, existing := range r.byID {
		if existing.Email == user.Email && existing.ID != user.ID {
			return repository.ErrDuplicate
		}
	}
	r.byID[user.ID.Hex()] = *user
	return nil
}

func (r *UserRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *UserRepo) ListByRole(ctx context.Context, role string) ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, 0)
	for _, user := range r.byID {
		if user.Role == role {
			users = append(users, user)
		}
	}
	return users, nil
}
