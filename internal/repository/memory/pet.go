package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/pawfecthome/backend/internal/models"
	"github.com/pawfecthome/backend/internal/repository"
)

type PetRepo struct {
	mu   sync.RWMutex
	byID map[string]models.Pet
}

func NewPetRepo() *PetRepo {
	return &PetRepo{byID: make(map[string]models.Pet)}
}

func (r *PetRepo) Create(ctx context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pet.ID.IsZero() {
		pet.ID = primitive.NewObjectID()
	}
	r.byID[pet.ID.Hex()] = *pet
	return nil
}

func (r *PetRepo) FindByID(ctx context.Context, id string) (models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.byID[id]
	if !ok {
		return models.Pet{}, repository.ErrNotFound
	}
	return pet, nil
}

func (r *PetRepo) FindAll(ctx context.Context) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pets := make([]models.Pet, 0, len(r.byID))
	for _, pet := range r.byID {
		pets = append(pets, pet)
	}
	// Stable order for callers; Mongo returns insertion order anyway.
	sort.Slice(pets, func(i, j int) bool {
		return pets[i].CreatedAt.Before(pets[j].CreatedAt)
	})
	return pets, nil
}

func (r *PetRepo) Update(ctx context.Context, pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[pet.ID.Hex()]; !ok {
		return repository.ErrNotFound
	}
	r.byID[pet.ID.Hex()] = *pet
	return nil
}

func (r *PetRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}
